// Package config предоставляет структуры и функцию для парсинга и
// загрузки конфига приложения.
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — общая структура для хранения настроек.
type Config struct {
	Env             string `yaml:"env" env-default:"local"`
	HTTPServer      `yaml:"http_server"`
	RedisConnection `yaml:"redis_connection"`
	JWTToken        `yaml:"jwttoken"`
	Mock            `yaml:"mock"`
	Storage         `yaml:"storage"`
}

// HTTPServer — настройки HTTP-сервера.
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:"localhost:8080"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection — настройки подключения к redis (бэкенд redis
// хранилища CRUD-сервисов).
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken — настройки выпуска токенов мокового входа.
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key" env-default:"demo_secret"`
	TokenTTL     time.Duration `yaml:"token_ttl" env-default:"24h"`
}

// Mock — настройки симуляции: сид генератора и границы искусственной
// задержки фасада. Сид 0 означает инициализацию от текущего времени.
type Mock struct {
	Seed       int64         `yaml:"seed" env-default:"0"`
	LatencyMin time.Duration `yaml:"latency_min" env-default:"200ms"`
	LatencyMax time.Duration `yaml:"latency_max" env-default:"600ms"`
}

// Storage — выбор бэкенда key-value хранилища: memory или redis.
type Storage struct {
	Backend string `yaml:"backend" env-default:"memory"`
}

// MustLoad загружает конфиг по пути из CONFIG_PATH и завершает процесс
// при любой ошибке.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}
