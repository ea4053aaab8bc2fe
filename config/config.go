package config

import (
	"os"

	"github.com/spf13/viper"
)

// Storage driver names accepted in STORAGE_DRIVER.
const (
	StorageDriverMemory = "memory"
	StorageDriverRedis  = "redis"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Redis   RedisConfig
}

type AppConfig struct {
	Env string
}

type StorageConfig struct {
	Driver string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing .env is fine, the environment alone can carry the config.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}
	}

	driver := viper.GetString("STORAGE_DRIVER")
	if driver == "" {
		driver = StorageDriverMemory
	}

	config := &Config{
		App: AppConfig{
			Env: viper.GetString("APP_ENV"),
		},
		Storage: StorageConfig{
			Driver: driver,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
	}

	return config, nil
}
