package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"blog-writer/models"

	"gorm.io/gorm"
)

// Postgres writes straight into the blogs table, bypassing the REST facade.
type Postgres struct {
	db       *gorm.DB
	location string
	logger   *slog.Logger
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db *gorm.DB, dsn string, logger *slog.Logger) *Postgres {
	if logger == nil {
		logger = slog.Default()
	}
	return &Postgres{db: db, location: redactDSN(dsn), logger: logger}
}

func (p *Postgres) Location() string {
	return p.location
}

func (p *Postgres) Insert(ctx context.Context, r Record) error {
	blog := models.Blog{Title: r.Title, Content: r.Content}
	if err := p.db.WithContext(ctx).Create(&blog).Error; err != nil {
		return fmt.Errorf("insert blog: %w", err)
	}
	p.logger.Info("Blog saved to postgres", "id", blog.ID, "title", r.Title)
	return nil
}

func (p *Postgres) Probe(ctx context.Context) (*ProbeResult, error) {
	sqlDB, err := p.db.DB()
	if err != nil {
		return nil, err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	var count int64
	if err := p.db.WithContext(ctx).Model(&models.Blog{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count blogs: %w", err)
	}

	body, _ := json.Marshal(map[string]int64{"count": count})
	return &ProbeResult{Status: http.StatusOK, Body: string(body)}, nil
}

// redactDSN hides the password of URL-style DSNs. Key/value DSNs are reduced
// to their host.
func redactDSN(dsn string) string {
	if strings.Contains(dsn, "://") {
		if u, err := url.Parse(dsn); err == nil {
			return u.Redacted()
		}
		return "postgres"
	}
	for _, part := range strings.Fields(dsn) {
		if host, ok := strings.CutPrefix(part, "host="); ok {
			return "postgres://" + host
		}
	}
	return "postgres"
}
