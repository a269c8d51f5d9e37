package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/zeusync/gameai/internal/config"
	"github.com/zeusync/gameai/internal/core/agent"
	"github.com/zeusync/gameai/internal/core/observability/log"
	"github.com/zeusync/gameai/internal/injector"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "doorbreaker:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	app, cleanup, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	if err = addAgents(cfg, app.Driver, app.Logger); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Monitor.Listen != "" {
		srv := serveMonitor(cfg.Monitor, app)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				app.Logger.Warn("monitor shutdown failed", log.Error(err))
			}
		}()
	}

	ticks, err := app.Driver.Run(ctx, agent.RunOptions{
		Ticks:           cfg.Ticks,
		Interval:        cfg.Interval,
		StopWhenSettled: cfg.StopWhenSettled,
	})
	if errors.Is(err, context.Canceled) {
		app.Logger.Info("interrupted", log.Int("ticks", ticks))
		return nil
	}
	if err != nil {
		return err
	}

	for _, a := range app.Driver.Agents() {
		last, _ := a.Last()
		app.Logger.Info("agent finished",
			log.String("agent", a.Name()),
			log.Uint64("ticks", a.Ticks()),
			log.Stringer("last", last),
		)
	}
	return nil
}

func serveMonitor(cfg config.MonitorConfig, app *injector.App) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, app.Hub)
	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		app.Logger.Info("monitor listening", log.String("addr", cfg.Listen), log.String("path", cfg.Path))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Error("monitor stopped", log.Error(err))
		}
	}()
	return srv
}
