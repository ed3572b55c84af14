package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host            string
	Port            int
	ReadTimeoutSec  int
	WriteTimeoutSec int
	IdleTimeoutSec  int
}

type Mongo struct {
	URI      string
	Database string
}

type JWT struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

type Log struct {
	Level string
	JSON  bool
}

type Config struct {
	HTTP         HTTP
	Mongo        Mongo
	JWT          JWT
	Log          Log
	ClientOrigin string
}

// Load reads the whole configuration from the environment once at startup.
// The process refuses to start without the store URI or the signing secret.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HOST", "0.0.0.0")
	v.SetDefault("PORT", 5000)
	v.SetDefault("READ_TIMEOUT_SEC", 10)
	v.SetDefault("WRITE_TIMEOUT_SEC", 20)
	v.SetDefault("IDLE_TIMEOUT_SEC", 60)
	v.SetDefault("MONGODB_DATABASE", "eventplanner")
	v.SetDefault("JWT_ISSUER", "eventplanner-api")
	v.SetDefault("JWT_TTL_HOURS", 24*30)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("CLIENT_ORIGIN", "http://localhost:5173")

	if v.GetString("MONGODB_URI") == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}
	if v.GetString("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	return &Config{
		HTTP: HTTP{
			Host:            v.GetString("HOST"),
			Port:            v.GetInt("PORT"),
			ReadTimeoutSec:  v.GetInt("READ_TIMEOUT_SEC"),
			WriteTimeoutSec: v.GetInt("WRITE_TIMEOUT_SEC"),
			IdleTimeoutSec:  v.GetInt("IDLE_TIMEOUT_SEC"),
		},
		Mongo: Mongo{
			URI:      v.GetString("MONGODB_URI"),
			Database: v.GetString("MONGODB_DATABASE"),
		},
		JWT: JWT{
			Secret: v.GetString("JWT_SECRET"),
			Issuer: v.GetString("JWT_ISSUER"),
			TTL:    time.Duration(v.GetInt("JWT_TTL_HOURS")) * time.Hour,
		},
		Log: Log{
			Level: v.GetString("LOG_LEVEL"),
			JSON:  v.GetBool("LOG_JSON"),
		},
		ClientOrigin: v.GetString("CLIENT_ORIGIN"),
	}
}
