package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr  string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseDSN string        `env:"DATABASE_DSN" envDefault:""`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"secret"`
	BackendAddr string        `env:"LAUNDRY_API_ADDRESS" envDefault:"http://localhost:8000"`
	GeocodeAddr string        `env:"GEOCODER_ADDRESS" envDefault:"https://nominatim.openstreetmap.org"`
	SessionTTL  time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr  string
	LogLevel    string
	JWTSecret   string
	DatabaseDSN string
	SessionTTL  time.Duration
}

// BackendConfig модель настроек работы с бекендом прачечной
type BackendConfig struct {
	BackendAddr string
}

// GeocodeConfig модель настроек обратного геокодера
type GeocodeConfig struct {
	GeocodeAddr string
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Geocode GeocodeConfig
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
		backend  = pflag.StringP("backend", "b", args.BackendAddr, "Laundry backend origin.")
		geocode  = pflag.StringP("geocoder", "g", args.GeocodeAddr, "Reverse geocoder origin.")
		ttl      = pflag.DurationP("session_ttl", "t", args.SessionTTL, "Session lifetime.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:  *server,
			LogLevel:    *logLevel,
			DatabaseDSN: *DSN,
			JWTSecret:   *secret,
			SessionTTL:  *ttl,
		},
		Backend: BackendConfig{
			BackendAddr: *backend,
		},
		Geocode: GeocodeConfig{
			GeocodeAddr: *geocode,
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
			SessionTTL:  24 * time.Hour,
		},
		Backend: BackendConfig{
			BackendAddr: "http://localhost:8000",
		},
		Geocode: GeocodeConfig{
			GeocodeAddr: "https://nominatim.openstreetmap.org",
		},
	}
}
