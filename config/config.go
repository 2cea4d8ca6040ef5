// Package config loads the process-wide configuration for the tenant backend.
// Configuration is resolved once at startup and treated as immutable: built-in
// defaults, then an optional YAML file named by CONFIG_FILE, then env vars.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v2"
)

// ArangoConfig holds the document store connection settings
type ArangoConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
	User string `yaml:"user"`
	Pass string `yaml:"pass"`
	URL  string `yaml:"url"`
}

// JWTConfig holds the token signing settings. The secret is symmetric and
// never rotated during the process lifetime.
type JWTConfig struct {
	Secret          string `yaml:"secret"`
	LifetimeMinutes int    `yaml:"lifetime_minutes"`
}

// KafkaConfig holds the optional lifecycle event producer settings.
// Events are disabled when Brokers is empty.
type KafkaConfig struct {
	Brokers string `yaml:"brokers"`
	Topic   string `yaml:"topic"`
}

// Config is the root configuration for the service
type Config struct {
	Arango ArangoConfig `yaml:"arango"`
	JWT    JWTConfig    `yaml:"jwt"`
	Kafka  KafkaConfig  `yaml:"kafka"`
	Port   string       `yaml:"port"`
}

// Load resolves the configuration from defaults, the optional CONFIG_FILE
// YAML overlay, and finally environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Arango: ArangoConfig{
			Host: "localhost",
			Port: "8529",
			User: "root",
			Pass: "mypassword",
		},
		JWT: JWTConfig{
			Secret:          "change-this-secret-in-production",
			LifetimeMinutes: 60,
		},
		Kafka: KafkaConfig{
			Topic: "tenant-lifecycle",
		},
		Port: "3000",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path) // #nosec G304
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg.Arango.Host, "ARANGO_HOST")
	applyEnv(&cfg.Arango.Port, "ARANGO_PORT")
	applyEnv(&cfg.Arango.User, "ARANGO_USER")
	applyEnv(&cfg.Arango.Pass, "ARANGO_PASS")
	applyEnv(&cfg.Arango.URL, "ARANGO_URL")
	applyEnv(&cfg.JWT.Secret, "JWT_SECRET")
	applyEnv(&cfg.Kafka.Brokers, "KAFKA_BROKERS")
	applyEnv(&cfg.Kafka.Topic, "KAFKA_TOPIC")
	applyEnv(&cfg.Port, "MS_PORT")

	if v := os.Getenv("JWT_LIFETIME_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil || minutes <= 0 {
			return nil, fmt.Errorf("invalid JWT_LIFETIME_MINUTES: %q", v)
		}
		cfg.JWT.LifetimeMinutes = minutes
	}

	if cfg.Arango.URL == "" {
		cfg.Arango.URL = "http://" + cfg.Arango.Host + ":" + cfg.Arango.Port
	}

	return cfg, nil
}

func applyEnv(target *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*target = v
	}
}
