package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=4000"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	PublicDir string `env:"PUBLIC_DIR, default=public"`

	Google GoogleConfig
	Mongo  MongoConfig
	Redis  RedisConfig
}

type GoogleConfig struct {
	// ClientID is the OAuth client the frontend obtains ID tokens for;
	// verified tokens must carry it as their audience.
	ClientID string `env:"GOOGLE_CLIENT_ID"`
	// ClientSecret doubles as the session-token signing secret.
	ClientSecret string `env:"GOOGLE_CLIENT_SECRET"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=resumebuilder"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
