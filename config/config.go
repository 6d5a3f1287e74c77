// Package config loads the server settings. Defaults are port 80, backlog 3,
// 1024 byte reads and the embedded page. A YAML or TOML file, the environment
// and finally explicit overrides are layered on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/freekieb7/homepage/content"
	"github.com/freekieb7/homepage/http"
	"github.com/freekieb7/homepage/net/socket"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("config: unsupported file format")

type Config struct {
	Server    ServerConfig    `yaml:"server" toml:"server"`
	Content   ContentConfig   `yaml:"content" toml:"content"`
	Log       LogConfig       `yaml:"log" toml:"log"`
	Telemetry TelemetryConfig `yaml:"telemetry" toml:"telemetry"`
	Admin     AdminConfig     `yaml:"admin" toml:"admin"`
	Stats     StatsConfig     `yaml:"stats" toml:"stats"`
}

type ServerConfig struct {
	Host      string `yaml:"host" toml:"host" validate:"omitempty,ipv4"`
	Port      int    `yaml:"port" toml:"port" validate:"min=0,max=65535"`
	Backlog   int    `yaml:"backlog" toml:"backlog" validate:"min=1"`
	ReuseAddr bool   `yaml:"reuse_addr" toml:"reuse_addr"`
	ReusePort bool   `yaml:"reuse_port" toml:"reuse_port"`

	ReadBufferSize int `yaml:"read_buffer_size" toml:"read_buffer_size" validate:"min=1,max=1048576"`
	MaxConnections int `yaml:"max_connections" toml:"max_connections" validate:"min=1"`

	// 0 disables the limit
	ReadTimeout     Duration `yaml:"read_timeout" toml:"read_timeout" validate:"min=0"`
	WriteTimeout    Duration `yaml:"write_timeout" toml:"write_timeout" validate:"min=0"`
	MaxConnLifetime Duration `yaml:"max_conn_lifetime" toml:"max_conn_lifetime" validate:"min=0"`
}

type ContentConfig struct {
	Source string `yaml:"source" toml:"source" validate:"oneof=embedded literal file"`
	Path   string `yaml:"path" toml:"path" validate:"required_if=Source file"`
}

type LogConfig struct {
	Level  string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" toml:"format" validate:"oneof=text json"`
}

type TelemetryConfig struct {
	// Exporters read their endpoint from the OTEL_EXPORTER_OTLP_* variables.
	Enabled     bool   `yaml:"enabled" toml:"enabled"`
	ServiceName string `yaml:"service_name" toml:"service_name" validate:"required"`
}

type AdminConfig struct {
	Enabled bool   `yaml:"enabled" toml:"enabled"`
	Addr    string `yaml:"addr" toml:"addr" validate:"required_if=Enabled true,omitempty,hostname_port"`
}

type StatsConfig struct {
	Interval Duration `yaml:"interval" toml:"interval" validate:"min=0"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            socket.DefaultPort,
			Backlog:         socket.DefaultBacklog,
			ReuseAddr:       true,
			ReusePort:       true,
			ReadBufferSize:  http.DefaultReadBufferSize,
			MaxConnections:  http.DefaultMaxConnections,
			ReadTimeout:     Duration(http.DefaultReadTimeout),
			WriteTimeout:    Duration(http.DefaultWriteTimeout),
			MaxConnLifetime: Duration(http.DefaultMaxConnLifetime),
		},
		Content: ContentConfig{
			Source: string(content.SourceEmbedded),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "homepage",
		},
		Admin: AdminConfig{
			Addr: "127.0.0.1:8081",
		},
		Stats: StatsConfig{
			Interval: Duration(time.Minute),
		},
	}
}

// Load builds the configuration: defaults, then the file at path (skipped when
// empty), then environment variables, then overrides in order. The result is
// validated.
func Load(path string, overrides ...func(*Config)) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	for _, override := range overrides {
		override(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return nil
}

// applyEnv overrides settings from HOMEPAGE_* variables. PORT is honored as
// a fallback for HOMEPAGE_PORT.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("HOMEPAGE_HOST"); ok {
		c.Server.Host = v
	}

	port, ok := lookup("HOMEPAGE_PORT")
	if !ok {
		port, ok = lookup("PORT")
	}
	if ok {
		n, err := atoi("port", port)
		if err != nil {
			return err
		}
		c.Server.Port = n
	}

	if v, ok := lookup("HOMEPAGE_BACKLOG"); ok {
		n, err := atoi("backlog", v)
		if err != nil {
			return err
		}
		c.Server.Backlog = n
	}

	if v, ok := lookup("HOMEPAGE_MAX_CONNECTIONS"); ok {
		n, err := atoi("max connections", v)
		if err != nil {
			return err
		}
		c.Server.MaxConnections = n
	}

	if v, ok := lookup("HOMEPAGE_CONTENT_SOURCE"); ok {
		c.Content.Source = v
	}
	if v, ok := lookup("HOMEPAGE_CONTENT_PATH"); ok {
		c.Content.Path = v
	}
	if v, ok := lookup("HOMEPAGE_LOG_LEVEL"); ok {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup("HOMEPAGE_ADMIN_ADDR"); ok {
		c.Admin.Addr = v
		c.Admin.Enabled = v != ""
	}

	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}

// ServerAddress returns the listen address of the page server.
func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// ServerOptions maps the configuration onto the page server options.
func (c *Config) ServerOptions() http.Options {
	opts := http.DefaultOptions()
	opts.Socket = socket.Config{
		Host:      c.Server.Host,
		Port:      c.Server.Port,
		Backlog:   c.Server.Backlog,
		ReuseAddr: c.Server.ReuseAddr,
		ReusePort: c.Server.ReusePort,
	}
	opts.ReadBufferSize = c.Server.ReadBufferSize
	opts.MaxConnections = c.Server.MaxConnections
	opts.ReadTimeout = c.Server.ReadTimeout.Duration()
	opts.WriteTimeout = c.Server.WriteTimeout.Duration()
	opts.MaxConnLifetime = c.Server.MaxConnLifetime.Duration()

	return opts
}

// Duration is a time.Duration written as "5s" in configuration files.
type Duration time.Duration

func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func atoi(key, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}
