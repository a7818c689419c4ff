package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type APIConfig struct {
	JWTSigningKey  string   `mapstructure:"jwt_signing_key"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	RateLimitRPS   float64  `mapstructure:"rate_limit_rps"`
	RateLimitBurst int      `mapstructure:"rate_limit_burst"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

func (c *PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type MailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUsername string `mapstructure:"smtp_username"`
	SMTPPassword string `mapstructure:"smtp_password"`
	From         string `mapstructure:"from"`
	ReplyTo      string `mapstructure:"reply_to"`
	MaxAttempts  int    `mapstructure:"max_attempts"`
	BackoffSec   int    `mapstructure:"backoff_sec"`
}

type StorageConfig struct {
	BasePath      string `mapstructure:"base_path"`
	BaseURL       string `mapstructure:"base_url"`
	SigningSecret string `mapstructure:"signing_secret"`
}

type LogConfig struct {
	Environment string `mapstructure:"environment"`
	Filename    string `mapstructure:"filename"`
	MaxSizeMB   int    `mapstructure:"max_size_mb"`
	MaxBackups  int    `mapstructure:"max_backups"`
	MaxAgeDays  int    `mapstructure:"max_age_days"`
}

type Config struct {
	Server   *ServerConfig   `mapstructure:"server"`
	API      *APIConfig      `mapstructure:"api"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Mail     *MailConfig     `mapstructure:"mail"`
	Storage  *StorageConfig  `mapstructure:"storage"`
	Log      *LogConfig      `mapstructure:"log"`
}

// Load reads the YAML config at path. Every key can be overridden through the
// environment, e.g. API_JWT_SIGNING_KEY overrides api.jwt_signing_key.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yml")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &Config{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func (c *Config) Validate() error {
	if c.Server == nil || c.Server.Port == "" {
		return errors.New("config: server.port is required")
	}
	if c.API == nil || c.API.JWTSigningKey == "" {
		return errors.New("config: api.jwt_signing_key is required")
	}
	if c.Postgres == nil || c.Postgres.Host == "" || c.Postgres.DBName == "" {
		return errors.New("config: postgres connection settings are required")
	}
	if c.Redis == nil || c.Redis.Addr == "" {
		return errors.New("config: redis.addr is required")
	}
	if c.Storage == nil || c.Storage.BasePath == "" || c.Storage.SigningSecret == "" {
		return errors.New("config: storage.base_path and storage.signing_secret are required")
	}
	if c.Mail == nil || c.Mail.SMTPHost == "" || c.Mail.From == "" {
		return errors.New("config: mail.smtp_host and mail.from are required")
	}
	if c.Mail.SMTPPort <= 0 {
		return errors.New("config: mail.smtp_port must be a positive port number")
	}

	return nil
}
