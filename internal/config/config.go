package config

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"
)

// Store names accepted by the STORE setting.
const (
	StoreMemory = "memory"
	StoreMySQL  = "mysql"
)

// Config holds the settings of the contacts service. Every value can be set with the environment
// variable of the same name as the mapstructure tag, upper case.
type Config struct {
	Port       int    `mapstructure:"port"`
	Store      string `mapstructure:"store"`
	Seed       bool   `mapstructure:"seed"`
	DBHost     string `mapstructure:"dbhost"`
	DBUser     string `mapstructure:"dbuser"`
	DBPwd      string `mapstructure:"dbpwd"` // Secret: must not be logged
	DBName     string `mapstructure:"dbname"`
	GinLogging string `mapstructure:"gin_logging"`
	LogLevel   string `mapstructure:"log_level"`
}

// keys are all settings which are bound to environment variables.
var keys = []string{"port", "store", "seed", "dbhost", "dbuser", "dbpwd", "dbname", "gin_logging", "log_level"}

// Load reads the configuration. If the environment variable CONFIG_FILE names a file then its
// values are read first; environment variables always take precedence.
//
// Usage example:
// > PORT=8080 STORE=mysql DBHOST=localhost DBUSER=dirk DBPWD=bullo92 go run main.go
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("port", 8080)
	v.SetDefault("store", StoreMemory)
	v.SetDefault("seed", true)
	v.SetDefault("dbhost", "localhost")
	v.SetDefault("dbname", "test")
	v.SetDefault("gin_logging", "on")
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()
	for _, key := range keys {
		if err := v.BindEnv(key, strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration can be used to start the service.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	switch c.Store {
	case StoreMemory:
	case StoreMySQL:
		if c.DBHost == "" {
			return fmt.Errorf("DBHOST is required for store %q", c.Store)
		}
	default:
		return fmt.Errorf("unknown STORE %q", c.Store)
	}
	return nil
}

// RequestLogging returns false if HTTP request logging has been turned off.
func (c *Config) RequestLogging() bool {
	return !strings.EqualFold(c.GinLogging, "off")
}

// Addr returns the listen address of the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// DSN returns the MySQL data source name built from the database settings.
func (c *Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.DBUser
	mc.Passwd = c.DBPwd
	mc.Net = "tcp"
	mc.Addr = c.DBHost
	mc.DBName = c.DBName
	mc.ParseTime = true
	return mc.FormatDSN()
}
