package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Webhooks WebhooksConfig `mapstructure:"webhooks"`
	Voice    VoiceConfig    `mapstructure:"voice"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// RedisConfig configures the optional rate-limit store. An empty host
// disables rate limiting entirely.
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Enabled reports whether a Redis endpoint is configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// WebhookSource describes one external form source. Path is the suffix under
// /api/webhooks/; Secret is the shared secret expected in x-webhook-secret.
// An empty Secret disables authentication for that path.
type WebhookSource struct {
	Path   string `mapstructure:"path"`
	Secret string `mapstructure:"secret"`
}

type WebhooksConfig struct {
	Sources []WebhookSource `mapstructure:"sources"`
}

// VoiceConfig configures the third-party voice-agent API. Both APIKey and
// AgentID must be set for the web-call proxy to work.
type VoiceConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	AgentID string        `mapstructure:"agent_id"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Configured reports whether the voice proxy can be used.
func (v VoiceConfig) Configured() bool {
	return v.APIKey != "" && v.AgentID != ""
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: MP_ (Marketing Portal).
// Nested keys use underscore: MP_DATABASE_HOST, MP_JWT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "marketing_portal")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "marketing-portal")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("voice.api_key", "")
	v.SetDefault("voice.agent_id", "")
	v.SetDefault("voice.base_url", "https://api.retellai.com")
	v.SetDefault("voice.timeout", "10s")

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: MP_DATABASE_HOST -> database.host
	v.SetEnvPrefix("MP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required — env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if len(cfg.Webhooks.Sources) == 0 {
		cfg.Webhooks.Sources = defaultWebhookSources()
	}
	resolveWebhookSecrets(cfg.Webhooks.Sources)

	return &cfg, nil
}

// defaultWebhookSources returns the intake sources served when none are
// configured explicitly.
func defaultWebhookSources() []WebhookSource {
	return []WebhookSource{
		{Path: "website/main-contact-form"},
		{Path: "website/protective-order-guide"},
	}
}

// resolveWebhookSecrets fills each source's secret from the environment when
// the config file left it empty. Viper's env override does not reach into
// slices, so per-source secrets use dedicated variables derived from the
// path, e.g. MP_WEBHOOK_SECRET_WEBSITE_MAIN_CONTACT_FORM.
func resolveWebhookSecrets(sources []WebhookSource) {
	for i := range sources {
		if sources[i].Secret == "" {
			sources[i].Secret = os.Getenv(SecretEnvKey(sources[i].Path))
		}
	}
}

// SecretEnvKey derives the environment variable name holding the shared
// secret for a webhook path.
func SecretEnvKey(path string) string {
	key := strings.ToUpper(path)
	key = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, key)
	return "MP_WEBHOOK_SECRET_" + key
}
