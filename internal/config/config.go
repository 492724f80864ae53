package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

type Config struct {
	Env       string
	DB        DB
	Server    Server
	Auth      Auth
	Sweep     Sweep
	Logger    Logger
	RateLimit RateLimit
}

type DB struct {
	DatabaseURI string
	Migrations  string
}

type Server struct {
	RunAddress string
}

type Auth struct {
	TokenTTL time.Duration
}

type Sweep struct {
	Interval time.Duration
}

type Logger struct {
	LogLevel string
}

type RateLimit struct {
	LoginPerSecond float64
	LoginBurst     int
}

// MustLoad reads configuration from the environment, with .env as a fallback
// source for local runs. Optional values fall back to defaults; DATABASE_URI
// is validated later, when the connection pool is created.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("RUN_ADDRESS", "localhost:8080")
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("TOKEN_TTL", "1h")
	viper.SetDefault("SWEEP_INTERVAL", "60s")
	viper.SetDefault("LOGIN_RATE_PER_SEC", 2.0)
	viper.SetDefault("LOGIN_RATE_BURST", 5)

	return &Config{
		Env: viper.GetString("APP_ENV"),
		DB: DB{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
		},
		Server: Server{
			RunAddress: viper.GetString("RUN_ADDRESS"),
		},
		Auth: Auth{
			TokenTTL: viper.GetDuration("TOKEN_TTL"),
		},
		Sweep: Sweep{
			Interval: viper.GetDuration("SWEEP_INTERVAL"),
		},
		Logger: Logger{
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		RateLimit: RateLimit{
			LoginPerSecond: viper.GetFloat64("LOGIN_RATE_PER_SEC"),
			LoginBurst:     viper.GetInt("LOGIN_RATE_BURST"),
		},
	}
}
