package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	Server   ServerConfig
	Store    StoreConfig
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

type ServerConfig struct {
	Port    string        `mapstructure:"SERVER_PORT"`
	Timeout time.Duration `mapstructure:"SERVER_TIMEOUT"`
}

type StoreConfig struct {
	Driver     string `mapstructure:"STORE_DRIVER"`
	SQLitePath string `mapstructure:"SQLITE_PATH"`
	RedisHost  string `mapstructure:"REDIS_HOST"`
	RedisPort  string `mapstructure:"REDIS_PORT"`
	RedisDB    int    `mapstructure:"REDIS_DB"`
	Namespace  string `mapstructure:"STORE_NAMESPACE"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("could not load .env file: %w", err)
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_TIMEOUT", "30s")
	viper.SetDefault("STORE_DRIVER", "memory")
	viper.SetDefault("SQLITE_PATH", "library.db")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("STORE_NAMESPACE", "bookflow")

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	cfg.Server.Port = viper.GetString("SERVER_PORT")
	cfg.Server.Timeout = viper.GetDuration("SERVER_TIMEOUT")

	cfg.Store.Driver = viper.GetString("STORE_DRIVER")
	cfg.Store.SQLitePath = viper.GetString("SQLITE_PATH")
	cfg.Store.RedisHost = viper.GetString("REDIS_HOST")
	cfg.Store.RedisPort = viper.GetString("REDIS_PORT")
	cfg.Store.RedisDB = viper.GetInt("REDIS_DB")
	cfg.Store.Namespace = viper.GetString("STORE_NAMESPACE")

	return &cfg, nil
}
