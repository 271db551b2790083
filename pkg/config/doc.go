// Package config loads typed configuration from environment variables using
// github.com/caarlos0/env/v11, after applying an optional .env file through
// github.com/joho/godotenv.
//
// Every package that needs settings declares its own Config struct with env
// tags; cmd/server embeds them into one struct and calls Load once at boot:
//
//	type Config struct {
//		pg.Config
//		email.Config
//		AppEnv string `env:"APP_ENV" envDefault:"development"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg)
package config
