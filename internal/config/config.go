package config

import (
	"time"

	"github.com/alacase/backend/internal/obs"
)

type App struct {
	Name    string `mapstructure:"name"`
	Env     string `mapstructure:"env"`
	Version string `mapstructure:"version"`
}

type Server struct {
	HTTPAddr        string        `mapstructure:"http_addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	GracefulTimeout time.Duration `mapstructure:"graceful_timeout"`
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`
}

type Redis struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	OpTimeout    time.Duration `mapstructure:"op_timeout"`
}

type Status struct {
	// Store selects the persistence backend: "redis" or "memory" (dev/test).
	Store   string `mapstructure:"store"`
	ListCap int    `mapstructure:"list_cap"`
}

type Stripe struct {
	SecretKey string `mapstructure:"secret_key"`
	MaxAmount int64  `mapstructure:"max_amount"`
}

type OTEL struct {
	Enable       bool    `mapstructure:"enable"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	ServiceName  string  `mapstructure:"service_name"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

func (oc *OTEL) AsOTELConfig() *obs.OTELConfig {
	return &obs.OTELConfig{
		Enable:      oc.Enable,
		Endpoint:    oc.OTLPEndpoint,
		ServiceName: oc.ServiceName,
		SampleRatio: oc.SampleRatio,
	}
}

type Log struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

type Config struct {
	App    App    `mapstructure:"app"`
	Server Server `mapstructure:"server"`
	Redis  Redis  `mapstructure:"redis"`
	Status Status `mapstructure:"status"`
	Stripe Stripe `mapstructure:"stripe"`
	OTEL   OTEL   `mapstructure:"otel"`
	Log    Log    `mapstructure:"log"`
}

func (c *Config) AsLoggerConfig() *obs.LogConfig {
	return &obs.LogConfig{
		Level:   c.Log.Level,
		Pretty:  c.Log.Pretty,
		Service: c.App.Name,
		Env:     c.App.Env,
		Version: c.App.Version,
	}
}
