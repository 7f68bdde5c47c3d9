package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"mesa-ledger/internal/config/configs"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library;
// nested structs are parsed with their envPrefix. Use Load to construct a
// Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// Seed creates demo campaigns on an empty ledger.
	Seed bool `env:"SEED" envDefault:"false"`
	// SeedDeposit funds each demo campaign, as a decimal token string.
	SeedDeposit string `env:"SEED_DEPOSIT" envDefault:"0"`

	HTTP    configs.HTTP     `envPrefix:"HTTP_"`
	Log     configs.Logger   `envPrefix:"LOG_"`
	Storage configs.Storage  `envPrefix:"STORAGE_"`
	Psql    configs.Postgres `envPrefix:"PSQL_"`
	SQLite  configs.SQLite   `envPrefix:"SQLITE_"`
	Redis   configs.Redis    `envPrefix:"REDIS_"`
	Auth    configs.Auth     `envPrefix:"AUTH_"`
	Ledger  configs.Ledger   `envPrefix:"LEDGER_"`
}

// Load reads an optional .env file from the working directory, then parses
// the environment into a Config. Variables already set in the environment
// win over the file.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
