package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Load reads the YAML config at path (optional) and applies environment
// overrides (dots become underscores, e.g. STRIPE_SECRET_KEY). A missing
// Redis address or Stripe key is not an error here: the affected capability
// degrades at the boundary instead of blocking startup.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
		_ = v.ReadInConfig()
	}

	v.SetDefault("app.name", "api")
	v.SetDefault("app.env", "dev")
	v.SetDefault("app.version", "1.0.0")

	v.SetDefault("server.http_addr", ":8001")
	v.SetDefault("server.read_timeout", "5s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.graceful_timeout", "15s")
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost:3000",
		"http://localhost:8081",
		"http://localhost:19006",
	})

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.dial_timeout", "3s")
	v.SetDefault("redis.read_timeout", "500ms")
	v.SetDefault("redis.write_timeout", "500ms")
	v.SetDefault("redis.op_timeout", "2s")

	v.SetDefault("status.store", "redis")
	v.SetDefault("status.list_cap", 1000)

	v.SetDefault("stripe.secret_key", "")
	v.SetDefault("stripe.max_amount", 999900)

	v.SetDefault("otel.enable", false)
	v.SetDefault("otel.service_name", "api")
	v.SetDefault("otel.sample_ratio", 1.0)
	v.SetDefault("otel.otlp_endpoint", "localhost:4317")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
