package main

import (
	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/hashlattice/coinrpc/pkg/log"
	"github.com/hashlattice/coinrpc/pkg/rpc"
)

// Config is the tool's environment configuration. A .env file in the
// working directory is loaded first; real environment variables win
// over it.
type Config struct {
	Endpoint string `env:"COINRPC_URL" env-default:"http://127.0.0.1:8332" validate:"required,url"`
	Username string `env:"COINRPC_USER" validate:"required"`
	Password string `env:"COINRPC_PASS"`

	Log log.Config
}

// LoadConfig reads and validates the environment configuration.
func LoadConfig(logger log.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug(".env file not found")
	}

	var conf Config
	if err := cleanenv.ReadEnv(&conf); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(&conf); err != nil {
		return nil, err
	}

	return &conf, nil
}

// Credentials converts the configuration into RPC credentials.
func (c *Config) Credentials() rpc.Credentials {
	return rpc.Credentials{
		Endpoint: c.Endpoint,
		Username: c.Username,
		Password: c.Password,
	}
}
