package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"blog-writer/helpers"
)

type SupabaseOptions struct {
	BaseURL    string
	Key        string
	Table      string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Supabase writes to a PostgREST table at {BaseURL}/rest/v1/{Table}.
type Supabase struct {
	endpoint string
	key      string
	http     *http.Client
	logger   *slog.Logger
}

var _ Store = (*Supabase)(nil)

func NewSupabase(opts SupabaseOptions) (*Supabase, error) {
	if opts.BaseURL == "" {
		return nil, errors.New("supabase: missing base URL")
	}
	if opts.Key == "" {
		return nil, errors.New("supabase: missing key")
	}
	table := opts.Table
	if table == "" {
		table = "blogs"
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Supabase{
		endpoint: strings.TrimRight(opts.BaseURL, "/") + "/rest/v1/" + table,
		key:      opts.Key,
		http:     helpers.BearerClient(opts.HTTPClient, opts.Key),
		logger:   logger,
	}, nil
}

func (s *Supabase) Location() string {
	return s.endpoint
}

func (s *Supabase) headers() map[string]string {
	return map[string]string{
		"apikey":       s.key,
		"Content-Type": "application/json",
	}
}

// Insert posts the record and asks for the created row back. Only 201
// counts as saved.
func (s *Supabase) Insert(ctx context.Context, r Record) error {
	headers := s.headers()
	headers["Prefer"] = "return=representation"

	resp, err := helpers.DoHTTPRequest(ctx, s.http, s.logger, http.MethodPost, s.endpoint, headers, r)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", s.endpoint, err)
	}

	s.logger.Info("Supabase response", "status", resp.StatusCode, "body", string(resp.Body), "title", r.Title)
	if resp.StatusCode != http.StatusCreated {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(resp.Body)}
	}
	return nil
}

func (s *Supabase) Probe(ctx context.Context) (*ProbeResult, error) {
	resp, err := helpers.DoHTTPRequest(ctx, s.http, s.logger, http.MethodGet, s.endpoint, s.headers(), nil)
	if err != nil {
		return nil, err
	}
	return &ProbeResult{Status: resp.StatusCode, Body: string(resp.Body)}, nil
}
