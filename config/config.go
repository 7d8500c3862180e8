package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   Server
	Database Database
	Auth     Auth
	Cors     Cors
	// Production switches error verbosity and gin mode.
	Production bool
	// Serverless suppresses the listen call (the host owns the socket).
	Serverless bool
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Auth points at the GoTrue-compatible identity provider that issues and
// validates the bearer tokens this API trusts.
type Auth struct {
	URL     string
	AnonKey string
}

type Cors struct {
	AllowedOrigin string
}

// Configured reports whether the identity provider credentials are set.
// When false, login and every protected route answer 503.
func (a Auth) Configured() bool {
	return a.URL != "" && a.AnonKey != ""
}

func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "3001")
	viper.SetDefault("DATABASE_HOST", "localhost")
	viper.SetDefault("DATABASE_PORT", "5432")
	viper.SetDefault("DATABASE_SSLMODE", "disable")
	viper.SetDefault("FRONTEND_ORIGIN", "http://localhost:5173")

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")
	config.Database.SSLMode = viper.GetString("DATABASE_SSLMODE")

	config.Auth.URL = viper.GetString("SUPABASE_URL")
	config.Auth.AnonKey = viper.GetString("SUPABASE_ANON_KEY")

	config.Cors.AllowedOrigin = viper.GetString("FRONTEND_ORIGIN")
	config.Production = viper.GetString("APP_ENV") == "production"
	config.Serverless = viper.GetString("VERCEL") == "1"

	log.Info().
		Str("port", config.Server.Port).
		Bool("auth_configured", config.Auth.Configured()).
		Bool("production", config.Production).
		Msg("Config loaded")
	return &config, nil
}
