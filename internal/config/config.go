// Package config loads server configuration from an optional YAML file and CONVO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the fully resolved server configuration.
type Config struct {
	Addr     string
	Dev      bool
	DB       DB
	Auth     Auth
	Redis    Redis
	Presence Presence
	Ops      Ops
	Reads    Reads
	Limits   Limits
	Kafka    Kafka
	S3       S3
	TLS      TLS
	Log      Log
}

type DB struct {
	DSN      string
	MaxConns int32 `mapstructure:"max_conns"`
}

type Auth struct {
	JWTKey string `mapstructure:"jwt_key"`
}

type Redis struct {
	URL string
}

// Presence selects and tunes the presence channel backend ("memory" or "redis").
type Presence struct {
	Backend        string
	Channel        string
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
	ResyncInterval time.Duration `mapstructure:"resync_interval"`
	MaxRetries     uint64        `mapstructure:"max_retries"`
}

// Ops bounds every load/send/mark-read call.
type Ops struct {
	Timeout     time.Duration
	MaxRetries  uint64        `mapstructure:"max_retries"`
	BackoffBase time.Duration `mapstructure:"backoff_base"`
}

type Reads struct {
	RetryInterval time.Duration `mapstructure:"retry_interval"`
}

// Limits are per-user action budgets; a zero budget disables that limit.
type Limits struct {
	Window         time.Duration
	SendPerWindow  int `mapstructure:"send_per_window"`
	StartPerWindow int `mapstructure:"start_per_window"`
}

type Kafka struct {
	Brokers []string
	Topic   string
}

type S3 struct {
	Endpoint      string
	Bucket        string
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

type TLS struct {
	Cert string
	Key  string
}

type Log struct {
	Dev bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8443")
	v.SetDefault("dev", false)
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.max_conns", 8)
	v.SetDefault("auth.jwt_key", "")
	v.SetDefault("redis.url", "")
	v.SetDefault("presence.backend", "memory")
	v.SetDefault("presence.channel", "online-users")
	v.SetDefault("presence.session_ttl", 30*time.Second)
	v.SetDefault("presence.resync_interval", 10*time.Second)
	v.SetDefault("presence.max_retries", 8)
	v.SetDefault("ops.timeout", 5*time.Second)
	v.SetDefault("ops.max_retries", 3)
	v.SetDefault("ops.backoff_base", 200*time.Millisecond)
	v.SetDefault("reads.retry_interval", 15*time.Second)
	v.SetDefault("limits.window", time.Minute)
	v.SetDefault("limits.send_per_window", 60)
	v.SetDefault("limits.start_per_window", 20)
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "convo.messages")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.bucket", "convo-attachments")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("s3.use_ssl", false)
	v.SetDefault("s3.public_base_url", "")
	v.SetDefault("tls.cert", "")
	v.SetDefault("tls.key", "")
	v.SetDefault("log.dev", false)
}

// Load reads the optional config file at path, applies CONVO_* env overrides and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("convo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Kafka.Brokers = splitBrokers(c.Kafka.Brokers)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate reports the first configuration problem found.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DB.DSN) == "" {
		return errors.New("config: db.dsn is required")
	}
	if strings.TrimSpace(c.Auth.JWTKey) == "" {
		return errors.New("config: auth.jwt_key is required")
	}
	switch c.Presence.Backend {
	case "memory":
	case "redis":
		if c.Redis.URL == "" {
			return errors.New("config: redis.url is required for the redis presence backend")
		}
	default:
		return fmt.Errorf("config: unknown presence.backend %q", c.Presence.Backend)
	}
	for name, d := range map[string]time.Duration{
		"ops.timeout":              c.Ops.Timeout,
		"ops.backoff_base":         c.Ops.BackoffBase,
		"presence.session_ttl":     c.Presence.SessionTTL,
		"presence.resync_interval": c.Presence.ResyncInterval,
		"reads.retry_interval":     c.Reads.RetryInterval,
		"limits.window":            c.Limits.Window,
	} {
		if d <= 0 {
			return fmt.Errorf("config: %s must be positive", name)
		}
	}
	if (c.TLS.Cert == "") != (c.TLS.Key == "") {
		return errors.New("config: tls.cert and tls.key must be set together")
	}
	return nil
}

// env values arrive as one comma separated string
func splitBrokers(in []string) []string {
	out := make([]string, 0, len(in))
	for _, raw := range in {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
