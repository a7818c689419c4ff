package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: &ServerConfig{Host: "0.0.0.0", Port: "8080"},
		API:    &APIConfig{JWTSigningKey: "test-key", RateLimitRPS: 10, RateLimitBurst: 20},
		Postgres: &PostgresConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			DBName:  "donation",
			SSLMode: "disable",
		},
		Redis: &RedisConfig{Addr: "localhost:6379"},
		Mail: &MailConfig{
			SMTPHost:    "localhost",
			SMTPPort:    1025,
			From:        "no-reply@doarbem.org",
			MaxAttempts: 5,
			BackoffSec:  2,
		},
		Storage: &StorageConfig{
			BasePath:      "/tmp/uploads",
			BaseURL:       "http://localhost:8080",
			SigningSecret: "storage-secret",
		},
		Log: &LogConfig{Environment: "development"},
	}
}

func TestValidateAcceptsFullConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidateRejectsMissingSections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no server port", func(c *Config) { c.Server.Port = "" }},
		{"no jwt signing key", func(c *Config) { c.API.JWTSigningKey = "" }},
		{"no postgres host", func(c *Config) { c.Postgres.Host = "" }},
		{"no postgres db name", func(c *Config) { c.Postgres.DBName = "" }},
		{"no redis addr", func(c *Config) { c.Redis.Addr = "" }},
		{"no storage base path", func(c *Config) { c.Storage.BasePath = "" }},
		{"no storage signing secret", func(c *Config) { c.Storage.SigningSecret = "" }},
		{"no smtp host", func(c *Config) { c.Mail.SMTPHost = "" }},
		{"no mail from", func(c *Config) { c.Mail.From = "" }},
		{"nil mail section", func(c *Config) { c.Mail = nil }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conf := validConfig()
			tc.mutate(conf)
			assert.Error(t, conf.Validate())
		})
	}
}

func TestValidateRejectsNonPositiveSMTPPort(t *testing.T) {
	for _, port := range []int{0, -25} {
		conf := validConfig()
		conf.Mail.SMTPPort = port
		assert.Error(t, conf.Validate(), "port %d", port)
	}
}

func TestPostgresDSN(t *testing.T) {
	pg := &PostgresConfig{
		Host:     "db",
		Port:     "5432",
		User:     "postgres",
		Password: "secret",
		DBName:   "donation",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=db port=5432 user=postgres password=secret dbname=donation sslmode=disable",
		pg.DSN())
}
