package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	sessionsDriverSQLite = "sqlite"
	sessionsDriverRedis  = "redis"
)

// envBindings maps config keys to the environment variables that override them.
var envBindings = map[string]string{
	"port":            "PORT",
	"db.path":         "DATABASE_URL",
	"log.level":       "LOG_LEVEL",
	"log.format":      "LOG_FORMAT",
	"sessions.driver": "SESSIONS_DRIVER",
	"redis.addr":      "REDIS_ADDR",
	"redis.password":  "REDIS_PASSWORD",
	"redis.db":        "REDIS_DB",
}

func setDefaults() {
	viper.SetDefault("port", "5000")
	viper.SetDefault("db.path", "mywallet.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
	viper.SetDefault("sessions.driver", sessionsDriverSQLite)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
}

// loadConfig reads .env (optional), then configs/config.yml (optional), then
// environment overrides. A missing file is not an error; a malformed one is.
func loadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	setDefaults()
	for key, env := range envBindings {
		if err := viper.BindEnv(key, env); err != nil {
			return err
		}
	}

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}
