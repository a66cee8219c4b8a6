package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/zacademygit/Zacademy-sub001/internal/actions"
	"github.com/zacademygit/Zacademy-sub001/internal/app"
	"github.com/zacademygit/Zacademy-sub001/internal/content"
	"github.com/zacademygit/Zacademy-sub001/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "zacademy: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := pflag.StringP("config", "c", os.Getenv("ZACADEMY_CONFIG"), "path to a YAML config file")
	port := pflag.String("port", "", "listen port (overrides config and PORT)")
	pflag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *port != "" {
		cfg.Port = *port
	}

	logger := logging.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loadCtx, cancelLoad := context.WithTimeout(ctx, 30*time.Second)
	articles, err := app.LoadArticles(loadCtx, cfg, logger.With("component", "content"))
	cancelLoad()
	if err != nil {
		return fmt.Errorf("load articles: %w", err)
	}

	site, err := content.LoadSite(cfg.Content.SitePath)
	if err != nil {
		return fmt.Errorf("load site: %w", err)
	}

	gateway := actions.NewGateway(
		actions.NewWebhookShare(cfg.Share.WebhookURL, nil),
		actions.WithLogger(logger.With("component", "actions")),
		actions.WithShareTimeout(cfg.Share.Timeout),
	)

	handler, err := app.NewServer(cfg, app.Deps{
		Site:     site,
		Articles: articles,
		Gateway:  gateway,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("zacademy listening", "addr", srv.Addr, "articles", articles.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown failed", "error", err)
	}
	if err := gateway.Wait(shutdownCtx); err != nil {
		logger.Warn("pending shares abandoned", "error", err)
	}
	return nil
}
