package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/pocketbase/dbx"
	"github.com/pocketbase/pocketbase/core"
)

const (
	localCollection = "blogs"

	// localTextMax mirrors the remote table's unbounded text columns.
	localTextMax = 1 << 24
)

// Local keeps posts in the app's own database, in a `blogs` collection that
// is created on first use.
type Local struct {
	app    core.App
	logger *slog.Logger

	mu         sync.Mutex
	collection *core.Collection
}

var _ Store = (*Local)(nil)

type localRow struct {
	ID      string `db:"id" json:"id"`
	Title   string `db:"title" json:"title"`
	Created string `db:"created" json:"created"`
}

func NewLocal(app core.App, logger *slog.Logger) *Local {
	if logger == nil {
		logger = app.Logger()
	}
	return &Local{app: app, logger: logger}
}

func (l *Local) Location() string {
	return "local://" + localCollection
}

func (l *Local) ensureCollection(ctx context.Context) (*core.Collection, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.collection != nil {
		return l.collection, nil
	}

	collection, err := l.app.FindCollectionByNameOrId(localCollection)
	if err == nil {
		l.collection = collection
		return collection, nil
	}

	collection = core.NewBaseCollection(localCollection)
	collection.Fields.Add(
		&core.TextField{Name: "title", Required: true, Max: localTextMax},
		&core.TextField{Name: "content", Max: localTextMax},
		&core.AutodateField{Name: "created", OnCreate: true},
	)
	if err := l.app.SaveWithContext(ctx, collection); err != nil {
		return nil, fmt.Errorf("create %s collection: %w", localCollection, err)
	}
	l.logger.Info("Created local collection", "collection", localCollection)

	l.collection = collection
	return collection, nil
}

func (l *Local) Insert(ctx context.Context, r Record) error {
	collection, err := l.ensureCollection(ctx)
	if err != nil {
		return err
	}

	record := core.NewRecord(collection)
	record.Set("title", r.Title)
	record.Set("content", r.Content)
	if err := l.app.SaveWithContext(ctx, record); err != nil {
		return fmt.Errorf("save blog record: %w", err)
	}

	l.logger.Info("Blog saved locally", "id", record.Id, "title", r.Title)
	return nil
}

// Probe lists the five most recent titles, the way a REST read would.
func (l *Local) Probe(ctx context.Context) (*ProbeResult, error) {
	if _, err := l.ensureCollection(ctx); err != nil {
		return nil, err
	}

	rows := []localRow{}
	err := l.app.DB().
		Select("id", "title", "created").
		From(localCollection).
		Where(dbx.NewExp("title != {:empty}", dbx.Params{"empty": ""})).
		OrderBy("created DESC").
		Limit(5).
		Build().
		WithContext(ctx).
		All(&rows)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", localCollection, err)
	}

	body, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	return &ProbeResult{Status: http.StatusOK, Body: string(body)}, nil
}
