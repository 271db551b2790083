package auth

import "time"

// Config holds account settings.
type Config struct {
	ActivationSecret string        `env:"ACTIVATION_SECRET,required"`
	ActivationTTL    time.Duration `env:"ACTIVATION_TTL" envDefault:"72h"`
	BcryptCost       int           `env:"BCRYPT_COST" envDefault:"10"`
}
