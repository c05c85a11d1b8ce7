package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App   AppConfig
	Mongo MongoConfig
	JWT   JWTConfig
	CORS  CORSConfig

	// AllowPublicWrites leaves POST /doctors and POST /articles open to
	// unauthenticated callers. This mirrors the mobile app's current
	// admin-less content flow; set it to false once an admin role exists.
	AllowPublicWrites bool
}

type AppConfig struct {
	Port string
	Env  string
}

type MongoConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type CORSConfig struct {
	AllowOrigins []string
}

// Load reads configuration from the environment. A .env file, if any,
// is loaded into the environment by the caller before this runs.
func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("API_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("MONGO_DATABASE", "mediconnect")
	viper.SetDefault("ALLOW_PUBLIC_WRITES", true)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000")

	expiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY"))
	if err != nil {
		expiry = 24 * time.Hour
	}

	cfg := &Config{
		App: AppConfig{
			Port: viper.GetString("API_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Mongo: MongoConfig{
			URI:      viper.GetString("MONGO_URI"),
			Database: viper.GetString("MONGO_DATABASE"),
		},
		JWT: JWTConfig{
			Secret: viper.GetString("JWT_SECRET"),
			Expiry: expiry,
		},
		CORS: CORSConfig{
			AllowOrigins: splitOrigins(viper.GetString("CORS_ALLOW_ORIGINS")),
		},
		AllowPublicWrites: viper.GetBool("ALLOW_PUBLIC_WRITES"),
	}

	if cfg.Mongo.URI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated origin list, tolerating spaces
// around the commas.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
