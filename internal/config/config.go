package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	HTTP  HTTPServer `envPrefix:"HTTP_"`
	Log   Log        `envPrefix:"LOG_"`
	DB    Database   `envPrefix:"DB_"`
	Cache Cache      `envPrefix:"CACHE_"`

	KafkaURL     string `env:"KAFKA_URL"`
	KafkaTopic   string `env:"KAFKA_TOPIC" envDefault:"orders"`
	RabbitURL    string `env:"RABBIT_URL"`
	MongoURL     string `env:"MONGO"`
	OtelEndpoint string `env:"OTEL_ENDPOINT"` // пусто - трассировка выключена

	// воркеры фоновых заданий
	RedeemWorkers    int `env:"REDEEM_WORKERS" envDefault:"5"`
	ReconcileWorkers int `env:"RECONCILE_WORKERS" envDefault:"3"`
}

type HTTPServer struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port string `env:"PORT" envDefault:"8080"`
}

type Log struct {
	Format string `env:"FORMAT" envDefault:"console"` // console | json
}

type Database struct {
	URL     string `env:"URL,notEmpty"`
	Migrate bool   `env:"MIGRATE" envDefault:"false"`
}

type Cache struct {
	URL      string `env:"URL"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
}

// console - для разработки, json - для сборщика логов
func (l Log) Logger() (*zap.Logger, error) {
	if l.Format == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func (h HTTPServer) Addr() string {
	return h.Host + ":" + h.Port
}

// Конфиг из переменных окружения CHECKOUT_*; .env подхватывается, если есть
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	err := env.ParseWithOptions(cfg, env.Options{Prefix: "CHECKOUT_"})
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.RedeemWorkers <= 0 {
		cfg.RedeemWorkers = 1
	}
	if cfg.ReconcileWorkers <= 0 {
		cfg.ReconcileWorkers = 1
	}
	return cfg, nil
}
