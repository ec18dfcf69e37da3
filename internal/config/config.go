package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr         string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel           string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN        string `env:"DATABASE_DSN" envDefault:""`
	JWTSecret          string `env:"JWT_SECRET" envDefault:"secret"`
	GatewayAddr        string `env:"PAYMENT_GATEWAY_ADDRESS" envDefault:"https://api.mercadopago.com"`
	GatewayAccessToken string `env:"PAYMENT_GATEWAY_TOKEN" envDefault:""`
	ObjectStoreAddr    string `env:"OBJECT_STORE_ADDRESS" envDefault:""`
	ObjectStoreBucket  string `env:"OBJECT_STORE_BUCKET" envDefault:"listing-images"`
	RedisAddr          string `env:"REDIS_ADDRESS" envDefault:""`
}

// ServerConfig - server settings model
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
}

// GatewayConfig - payment gateway settings, used both for minting checkout
// preferences and for authoritative payment lookups
type GatewayConfig struct {
	GatewayAddr  string
	AccessToken  string
	BatchSize    int
	PollInterval time.Duration
	FetchTimeout time.Duration
}

// StoreConfig - object storage and balance cache settings
type StoreConfig struct {
	ObjectStoreAddr   string
	ObjectStoreBucket string
	RedisAddr         string
}

// Config - service settings model
type Config struct {
	Server  ServerConfig
	Gateway GatewayConfig
	Store   StoreConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server   = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		DSN      = pflag.StringP("dsn", "d", args.DatabaseDSN, "Database DSN")
		secret   = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		gateway  = pflag.StringP("gateway", "g", args.GatewayAddr, "Payment gateway base URL.")
		token    = pflag.StringP("token", "t", args.GatewayAccessToken, "Payment gateway access token.")
		objects  = pflag.StringP("objects", "o", args.ObjectStoreAddr, "Object storage base URL.")
		bucket   = pflag.StringP("bucket", "b", args.ObjectStoreBucket, "Object storage bucket for uploads.")
		redis    = pflag.StringP("redis", "r", args.RedisAddr, "Redis address for the balance cache (empty disables).")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
		},
		Gateway: GatewayConfig{
			GatewayAddr:  *gateway,
			AccessToken:  *token,
			BatchSize:    10,
			PollInterval: 30 * time.Second,
			FetchTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			ObjectStoreAddr:   *objects,
			ObjectStoreBucket: *bucket,
			RedisAddr:         *redis,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:  "localhost:8080",
			LogLevel:    "info",
			DatabaseDSN: "",
			JWTSecret:   "secret",
		},
		Gateway: GatewayConfig{
			GatewayAddr:  "http://localhost:8081",
			AccessToken:  "test-token",
			BatchSize:    10,
			PollInterval: 30 * time.Second,
			FetchTimeout: 10 * time.Second,
		},
		Store: StoreConfig{
			ObjectStoreBucket: "listing-images",
		},
	}
}
