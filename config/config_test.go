package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/freekieb7/homepage/http"
	"github.com/freekieb7/homepage/test"
	"github.com/go-playground/validator/v10"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range []string{
		"HOMEPAGE_HOST",
		"HOMEPAGE_PORT",
		"PORT",
		"HOMEPAGE_BACKLOG",
		"HOMEPAGE_MAX_CONNECTIONS",
		"HOMEPAGE_CONTENT_SOURCE",
		"HOMEPAGE_CONTENT_PATH",
		"HOMEPAGE_LOG_LEVEL",
		"HOMEPAGE_ADMIN_ADDR",
	} {
		if v, ok := os.LookupEnv(key); ok {
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, v) })
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	test.AssertNoError(t, cfg.Validate())
	test.AssertEqual(t, "0.0.0.0:80", cfg.ServerAddress())
	test.AssertEqual(t, 3, cfg.Server.Backlog)
	test.AssertEqual(t, 1024, cfg.Server.ReadBufferSize)
	test.AssertEqual(t, "embedded", cfg.Content.Source)
	test.AssertEqual(t, false, cfg.Admin.Enabled)
	test.AssertEqual(t, false, cfg.Telemetry.Enabled)
	test.AssertEqual(t, time.Minute, cfg.Stats.Interval.Duration())
}

func TestLoadWithoutFile(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	test.AssertNoError(t, err)
	test.AssertEqual(t, *Default(), *cfg)
}

func TestLoadYAML(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "homepage.yaml", `
server:
  host: 127.0.0.1
  port: 8080
  backlog: 128
  max_connections: 64
  read_timeout: 2s
  max_conn_lifetime: 0s
content:
  source: file
  path: /srv/index.html
log:
  level: debug
  format: json
admin:
  enabled: true
  addr: 127.0.0.1:9090
stats:
  interval: 30s
`)

	cfg, err := Load(path)
	test.AssertNoError(t, err)

	test.AssertEqual(t, "127.0.0.1:8080", cfg.ServerAddress())
	test.AssertEqual(t, 128, cfg.Server.Backlog)
	test.AssertEqual(t, 64, cfg.Server.MaxConnections)
	test.AssertEqual(t, 2*time.Second, cfg.Server.ReadTimeout.Duration())
	test.AssertEqual(t, http.DefaultWriteTimeout, cfg.Server.WriteTimeout.Duration())
	test.AssertEqual(t, time.Duration(0), cfg.Server.MaxConnLifetime.Duration())
	test.AssertEqual(t, "file", cfg.Content.Source)
	test.AssertEqual(t, "/srv/index.html", cfg.Content.Path)
	test.AssertEqual(t, "debug", cfg.Log.Level)
	test.AssertEqual(t, "json", cfg.Log.Format)
	test.AssertEqual(t, true, cfg.Admin.Enabled)
	test.AssertEqual(t, "127.0.0.1:9090", cfg.Admin.Addr)
	test.AssertEqual(t, 30*time.Second, cfg.Stats.Interval.Duration())
}

func TestLoadTOML(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, "homepage.toml", `
[server]
port = 8443
write_timeout = "750ms"
reuse_port = false

[telemetry]
enabled = true
service_name = "homepage-edge"
`)

	cfg, err := Load(path)
	test.AssertNoError(t, err)

	test.AssertEqual(t, 8443, cfg.Server.Port)
	test.AssertEqual(t, 750*time.Millisecond, cfg.Server.WriteTimeout.Duration())
	test.AssertEqual(t, false, cfg.Server.ReusePort)
	test.AssertEqual(t, true, cfg.Server.ReuseAddr)
	test.AssertEqual(t, true, cfg.Telemetry.Enabled)
	test.AssertEqual(t, "homepage-edge", cfg.Telemetry.ServiceName)
}

func TestLoadFileErrors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	test.AssertErrorIs(t, err, fs.ErrNotExist)

	_, err = Load(writeFile(t, "homepage.json", `{}`))
	test.AssertErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "broken.yaml", "server: [unterminated"))
	if err == nil {
		t.Fatal("expected parse error")
	}

	_, err = Load(writeFile(t, "duration.yaml", "server:\n  read_timeout: soon\n"))
	if err == nil {
		t.Fatal("expected duration error")
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)

	t.Setenv("HOMEPAGE_HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("HOMEPAGE_BACKLOG", "16")
	t.Setenv("HOMEPAGE_MAX_CONNECTIONS", "8")
	t.Setenv("HOMEPAGE_CONTENT_SOURCE", "literal")
	t.Setenv("HOMEPAGE_LOG_LEVEL", "WARN")
	t.Setenv("HOMEPAGE_ADMIN_ADDR", "127.0.0.1:9191")

	path := writeFile(t, "homepage.yml", "server:\n  port: 8080\n  backlog: 4\n")

	cfg, err := Load(path)
	test.AssertNoError(t, err)

	test.AssertEqual(t, "127.0.0.1:9000", cfg.ServerAddress())
	test.AssertEqual(t, 16, cfg.Server.Backlog)
	test.AssertEqual(t, 8, cfg.Server.MaxConnections)
	test.AssertEqual(t, "literal", cfg.Content.Source)
	test.AssertEqual(t, "warn", cfg.Log.Level)
	test.AssertEqual(t, true, cfg.Admin.Enabled)
	test.AssertEqual(t, "127.0.0.1:9191", cfg.Admin.Addr)

	t.Setenv("HOMEPAGE_PORT", "7000")
	cfg, err = Load(path)
	test.AssertNoError(t, err)
	test.AssertEqual(t, 7000, cfg.Server.Port)
}

func TestLoadEnvInvalidNumber(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOMEPAGE_PORT", "eighty")

	_, err := Load("")
	if err == nil {
		t.Fatal("expected error for non-numeric port")
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOMEPAGE_PORT", "9000")

	cfg, err := Load("", func(c *Config) {
		c.Server.Port = 8080
	})
	test.AssertNoError(t, err)
	test.AssertEqual(t, 8080, cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"ipv6 host", func(c *Config) { c.Server.Host = "::1" }, "Host"},
		{"hostname", func(c *Config) { c.Server.Host = "localhost" }, "Host"},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "Port"},
		{"zero backlog", func(c *Config) { c.Server.Backlog = 0 }, "Backlog"},
		{"zero buffer", func(c *Config) { c.Server.ReadBufferSize = 0 }, "ReadBufferSize"},
		{"zero connections", func(c *Config) { c.Server.MaxConnections = 0 }, "MaxConnections"},
		{"negative timeout", func(c *Config) { c.Server.ReadTimeout = Duration(-time.Second) }, "ReadTimeout"},
		{"unknown source", func(c *Config) { c.Content.Source = "s3" }, "Source"},
		{"file without path", func(c *Config) { c.Content.Source = "file" }, "Path"},
		{"unknown level", func(c *Config) { c.Log.Level = "trace" }, "Level"},
		{"unknown format", func(c *Config) { c.Log.Format = "xml" }, "Format"},
		{"no service name", func(c *Config) { c.Telemetry.ServiceName = "" }, "ServiceName"},
		{"admin without addr", func(c *Config) { c.Admin.Enabled = true; c.Admin.Addr = "" }, "Addr"},
		{"admin bad addr", func(c *Config) { c.Admin.Addr = "no-port" }, "Addr"},
		{"negative interval", func(c *Config) { c.Stats.Interval = Duration(-1) }, "Interval"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.modify(cfg)

			err := cfg.Validate()
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("expected validation errors, got %v", err)
			}
			test.AssertEqual(t, tc.field, verrs[0].Field())
		})
	}
}

func TestValidateAllowsDisabledLimits(t *testing.T) {
	cfg := Default()
	cfg.Server.Port = 0
	cfg.Server.Host = ""
	cfg.Server.ReadTimeout = 0
	cfg.Server.WriteTimeout = 0
	cfg.Server.MaxConnLifetime = 0
	cfg.Stats.Interval = 0
	cfg.Admin.Addr = ""

	test.AssertNoError(t, cfg.Validate())
}

func TestServerOptions(t *testing.T) {
	cfg := Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 8080
	cfg.Server.Backlog = 10
	cfg.Server.ReusePort = false
	cfg.Server.MaxConnections = 5
	cfg.Server.ReadBufferSize = 512
	cfg.Server.ReadTimeout = Duration(time.Second)
	cfg.Server.WriteTimeout = Duration(2 * time.Second)
	cfg.Server.MaxConnLifetime = 0

	opts := cfg.ServerOptions()

	test.AssertEqual(t, "127.0.0.1", opts.Socket.Host)
	test.AssertEqual(t, 8080, opts.Socket.Port)
	test.AssertEqual(t, 10, opts.Socket.Backlog)
	test.AssertEqual(t, true, opts.Socket.ReuseAddr)
	test.AssertEqual(t, false, opts.Socket.ReusePort)
	test.AssertEqual(t, 5, opts.MaxConnections)
	test.AssertEqual(t, 512, opts.ReadBufferSize)
	test.AssertEqual(t, time.Second, opts.ReadTimeout)
	test.AssertEqual(t, 2*time.Second, opts.WriteTimeout)
	test.AssertEqual(t, time.Duration(0), opts.MaxConnLifetime)
}

func TestDurationText(t *testing.T) {
	var d Duration
	test.AssertNoError(t, d.UnmarshalText([]byte("1m30s")))
	test.AssertEqual(t, 90*time.Second, d.Duration())

	text, err := d.MarshalText()
	test.AssertNoError(t, err)
	test.AssertEqual(t, "1m30s", string(text))

	if err := d.UnmarshalText([]byte("ninety")); err == nil {
		t.Fatal("expected parse error")
	}
}
