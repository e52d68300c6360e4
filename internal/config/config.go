// Package config provides functionality for managing configuration options
// for the application using command-line flags, an optional JSON file,
// and environment variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"server_address" env:"SERVER_ADDRESS"`

	// DatabaseDSN holds the database connection string for the application.
	DatabaseDSN string `json:"database_dsn" env:"DATABASE_DSN"`

	// UploadDir is the directory where uploaded files are stored.
	UploadDir string `json:"upload_dir" env:"UPLOAD_DIR"`

	// TokenSecret is the shared key used to sign access tokens.
	TokenSecret string `json:"token_secret" env:"TOKEN_SECRET"`

	// TokenTTLMinutes is the lifetime embedded into issued tokens.
	TokenTTLMinutes int `json:"token_ttl_minutes" env:"TOKEN_TTL_MINUTES"`

	// Config is the path to the Config file.
	Config string `json:"-" env:"CONFIG"`
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Port, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.DatabaseDSN, "d", "", "db address")
	flag.StringVar(&options.UploadDir, "u", "./uploads", "upload directory")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags, the optional JSON config file,
// and environment variables to set configuration values. Environment
// variables win over the file, the file wins over flags. It returns a
// pointer to the Options struct containing the parsed values.
func Parse() *Options {
	flag.Parse()

	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if err := env.Parse(options); err != nil {
		log.Fatalf("error while parsing environment: %v", err)
	}

	if options.TokenSecret == "" {
		options.TokenSecret = "your_secret_key"
	}
	if options.TokenTTLMinutes <= 0 {
		options.TokenTTLMinutes = 30
	}

	return options
}
