package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/zacademygit/Zacademy-sub001/internal/content"
)

// NewDB opens a MySQL connection sized for a one-off startup read.
func NewDB(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.Content.DSN)
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(2)

	return db, nil
}

// LoadArticles builds the article store from the configured sources.
// The database, when configured, is read once and closed.
func LoadArticles(ctx context.Context, cfg Config, logger *slog.Logger) (*content.MemoryStore, error) {
	var sources []content.Source
	if cfg.Content.ArticlesPath != "" {
		sources = append(sources, content.FileArticles(cfg.Content.ArticlesPath))
	} else {
		sources = append(sources, content.EmbeddedArticles())
	}

	if cfg.Content.DSN != "" {
		db, err := NewDB(cfg)
		if err != nil {
			return nil, fmt.Errorf("open db: %w", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("ping db: %w", err)
		}
		sources = append(sources, content.NewMySQLSource(db))
	}

	store, err := content.Load(ctx, sources...)
	if err != nil {
		return nil, err
	}
	logger.Info("articles loaded", "count", store.Len(), "sources", len(sources))
	return store, nil
}
