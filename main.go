package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freekieb7/homepage/admin"
	"github.com/freekieb7/homepage/config"
	"github.com/freekieb7/homepage/content"
	"github.com/freekieb7/homepage/http"
	"github.com/freekieb7/homepage/schedule"
	"github.com/freekieb7/homepage/telemetry"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		slog.Error("homepage stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			slog.Error("failed to shut down telemetry", "error", err)
		}
	}()

	logger := telemetry.NewLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	logger.Info("starting homepage",
		"addr", cfg.ServerAddress(),
		"content", cfg.Content.Source,
		"max_connections", cfg.Server.MaxConnections,
		"admin", cfg.Admin.Enabled,
		"telemetry", cfg.Telemetry.Enabled)

	page, err := content.Load(content.Source(cfg.Content.Source), cfg.Content.Path)
	if err != nil {
		return err
	}

	opts := cfg.ServerOptions()
	opts.Logger = logger

	server, err := http.NewServer("homepage", page, opts)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.ListenAndServe(ctx)
	})

	if cfg.Admin.Enabled {
		adminServer := admin.New(cfg.Admin.Addr, server, logger)
		g.Go(func() error {
			return adminServer.Start(ctx)
		})
	}

	if interval := cfg.Stats.Interval.Duration(); interval > 0 {
		scheduler := schedule.NewScheduler(logger)
		err := scheduler.AddJob(schedule.NewJob("stats").
			WithInterval(interval).
			WithTasks(func(ctx context.Context) error {
				logStats(ctx, logger, server.Stats())
				return nil
			}))
		if err != nil {
			return err
		}

		g.Go(func() error {
			if err := scheduler.Run(ctx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("homepage stopped")
	return nil
}

// loadConfig layers -host and -port over the file named by -config and the
// environment. Flags left unset do not override anything.
func loadConfig(args []string) (*config.Config, error) {
	flags := flag.NewFlagSet("homepage", flag.ContinueOnError)
	configPath := flags.String("config", os.Getenv("HOMEPAGE_CONFIG"), "path to a .yaml or .toml config file")
	host := flags.String("host", "", "IPv4 address to listen on")
	port := flags.Int("port", 0, "TCP port to listen on")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})

	return config.Load(*configPath, func(cfg *config.Config) {
		if set["host"] {
			cfg.Server.Host = *host
		}
		if set["port"] {
			cfg.Server.Port = *port
		}
	})
}

func logStats(ctx context.Context, logger *slog.Logger, stats http.Stats) {
	logger.InfoContext(ctx, "connection stats",
		"accepted", stats.Accepted,
		"rejected", stats.Rejected,
		"accept_errors", stats.AcceptErrors,
		"served", stats.Served,
		"active", stats.Active,
		"bytes_written", stats.BytesWritten)
}
