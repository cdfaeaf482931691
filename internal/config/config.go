package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Env      string         // Env is the current environment: local, development, production.
	Postgres PostgresConfig // Postgres holds the database configuration.
	HTTP     HTTPConfig     // HTTP holds the directory service listener configuration.
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string // Host is the database server address.
	Port     string // Port is the database server port.
	User     string // User is the database user.
	Password string // Password is the database user's password.
	Dbname   string // Dbname is the name of the database.
}

// HTTPConfig struct holds the configuration details for the HTTP listener.
type HTTPConfig struct {
	Port      string // Port is the port the directory service listens on.
	StaticDir string // StaticDir is the directory the client page is served from.
}

// MustLoad loads the configuration from the environment, with an optional
// YAML file pointed to by CONFIG_PATH and an optional .env file in the
// working directory. Every value has a default; only an unreadable config
// file panics.
func MustLoad() *Config {
	viper.Reset()

	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(); err != nil {
			panic("failed to load .env file: " + err.Error())
		}
	}

	if configPath := os.Getenv("CONFIG_PATH"); configPath != "" {
		viper.SetConfigFile(configPath)
		if err := viper.ReadInConfig(); err != nil {
			panic("config error: " + err.Error())
		}
	}

	viper.AutomaticEnv()

	viper.SetDefault("env", "local")
	viper.SetDefault("db_host", "localhost")
	viper.SetDefault("db_port", "5432")
	viper.SetDefault("db_username", "postgres")
	viper.SetDefault("db_password", "postgres")
	viper.SetDefault("db_name", "employee_db")
	viper.SetDefault("http_port", "3000")
	viper.SetDefault("static_dir", "public")

	return &Config{
		Env: viper.GetString("env"),
		Postgres: PostgresConfig{
			Host:     viper.GetString("db_host"),
			Port:     viper.GetString("db_port"),
			User:     viper.GetString("db_username"),
			Password: viper.GetString("db_password"),
			Dbname:   viper.GetString("db_name"),
		},
		HTTP: HTTPConfig{
			Port:      viper.GetString("http_port"),
			StaticDir: viper.GetString("static_dir"),
		},
	}
}
