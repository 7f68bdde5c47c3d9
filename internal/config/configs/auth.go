package configs

// Auth configures bearer token verification. Tokens are HMAC signed JWTs
// whose subject is the caller's address.
type Auth struct {
	Secret string `env:"SECRET,required"`
	Issuer string `env:"ISSUER" envDefault:"mesa-ledger"`
}
