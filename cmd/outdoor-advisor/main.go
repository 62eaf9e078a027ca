package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"outdoor-advisor/config"
	_ "outdoor-advisor/docs"
	v1 "outdoor-advisor/internal/controllers/http/v1"
	"outdoor-advisor/internal/repositories"
	"outdoor-advisor/internal/services/advisor"
	"outdoor-advisor/internal/services/power"
	"outdoor-advisor/pkg/httpserver"
	"outdoor-advisor/pkg/logger"
	"outdoor-advisor/pkg/observe"
)

// @title Outdoor Advisor API
// @version 1.0.0
// @description Weather forecast or climatology for a place and date, with matching outdoor activities.
// @description Also hosts the caching NASA POWER proxy the advisor reads climatology through.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

// @tag.name Advice
// @tag.description Forecast selection and activity suggestions
// @tag.name Climatology
// @tag.description NASA POWER proxy
// @tag.name Search
// @tag.description Place search
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf := config.NewConfig()

	writers := []io.Writer{os.Stdout}

	var sentryHook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook, err := observe.NewSentryHook(cnf.App.Env, cnf.App.Name, cnf.Sentry.Debug, cnf.Sentry.DSN)
		if err != nil {
			fmt.Fprintln(os.Stderr, "sentry disabled:", err)
		} else {
			sentryHook = hook
			writers = append(writers, hook)
		}
	}

	l := logger.New(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
		Writers: writers,
	})

	loc, err := time.LoadLocation(cnf.App.Timezone)
	if err != nil {
		l.Fatal("unknown timezone", map[string]any{"timezone": cnf.App.Timezone, "err": err})
	}

	clock := clockwork.NewRealClock()
	metrics := observe.NewMetrics()

	repos := repositories.InitRepositories(cnf, metrics, l)

	proxy := power.NewProxy(repos.Power, power.Options{
		CacheSize: cnf.Power.CacheSize,
		CacheTTL:  time.Duration(cnf.Power.CacheTTLMins) * time.Minute,
		Clock:     clock,
	}, metrics, l)

	service := advisor.NewService(repos.Forecasts, repos.Climatology, clock, loc, metrics, l)

	app := httpserver.InitFiberServer(httpserver.Options{
		AppName:      cnf.App.Name,
		ReadTimeout:  time.Duration(cnf.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cnf.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cnf.Server.IdleTimeout) * time.Second,
	})

	v1.NewRouter(
		app,
		v1.Deps{
			Advisor:  service,
			Places:   repos.Places,
			Proxy:    proxy,
			Clock:    clock,
			Debounce: time.Duration(cnf.Search.DebounceMs) * time.Millisecond,
		},
		l,
	)

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":     cnf.Server.Port,
		"proxyURL": cnf.Power.ProxyURL,
		"timezone": loc.String(),
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if sentryHook != nil {
			sentryHook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
