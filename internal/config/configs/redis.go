package configs

// Redis configures the event stream. Events are only streamed when Enabled.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	Stream   string `env:"STREAM" envDefault:"mesa.ledger.events"`
	// MaxLen trims the stream approximately; zero keeps everything.
	MaxLen int64 `env:"MAX_LEN" envDefault:"100000"`
}
