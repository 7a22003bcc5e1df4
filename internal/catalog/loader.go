// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"brandforge/internal/apperr"
	"brandforge/internal/models"
)

// Source provides one tier's worth of template records.
type Source interface {
	Fetch(ctx context.Context) ([]models.Template, error)
}

const (
	// loadAttempts bounds how often a failing source is tried in total.
	loadAttempts = 3
	// defaultBaseDelay is the first retry delay; it doubles per attempt.
	defaultBaseDelay = time.Second
)

// Loader assembles the catalog from a free and a premium source with a
// bounded exponential-backoff retry per source. When both loads fail it
// falls back to the baked-in dataset, unless AllowFallback is false
// (production), in which case a typed load error is returned.
type Loader struct {
	Free          Source
	Premium       Source
	AllowFallback bool
	BaseDelay     time.Duration // zero means defaultBaseDelay
}

// Load fetches and merges both tiers into an immutable catalog.
func (l *Loader) Load(ctx context.Context) (*Catalog, error) {
	free, errFree := l.fetchWithRetry(ctx, l.Free, "free")
	premium, errPremium := l.fetchWithRetry(ctx, l.Premium, "premium")

	if errFree != nil || errPremium != nil {
		err := errFree
		if err == nil {
			err = errPremium
		}
		if !l.AllowFallback {
			return nil, apperr.Wrap(apperr.CodeLoadError,
				"failed to load templates after retries", err)
		}
		slog.Warn("catalog sources unavailable, using baked-in dataset", "error", err)
		return New(Defaults())
	}

	return New(append(free, premium...))
}

// fetchWithRetry runs one source with the bounded backoff schedule.
// Sources signal terminal errors by returning a non-retryable error.
func (l *Loader) fetchWithRetry(ctx context.Context, src Source, tier string) ([]models.Template, error) {
	base := l.BaseDelay
	if base == 0 {
		base = defaultBaseDelay
	}

	var out []models.Template
	backoff := retry.WithMaxRetries(loadAttempts-1, retry.NewExponential(base))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		templates, err := src.Fetch(ctx)
		if err != nil {
			slog.Warn("catalog source fetch failed", "tier", tier, "error", err)
			return retry.RetryableError(err)
		}
		out = templates
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load %s templates: %w", tier, err)
	}
	return out, nil
}

// HTTPSource fetches template metadata from a remote collaborator endpoint
// returning the {"success": bool, "data": [...]} envelope, keeping only the
// records of the configured tier.
type HTTPSource struct {
	Client *http.Client
	URL    string
	Tier   models.Tier
}

// metadataEnvelope mirrors the collaborator's response shape. The envelope
// is validated at the boundary so nothing downstream inspects loose fields.
type metadataEnvelope struct {
	Success bool              `json:"success"`
	Data    []models.Template `json:"data"`
	Error   string            `json:"error,omitempty"`
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]models.Template, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog fetch: status %d", resp.StatusCode)
	}

	var envelope metadataEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("catalog decode: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("catalog fetch: server reported failure: %s", envelope.Error)
	}

	var out []models.Template
	for _, t := range envelope.Data {
		if t.Tier == s.Tier {
			out = append(out, t)
		}
	}
	return out, nil
}

// TemplateLister is the slice of the template store the StoreSource needs.
type TemplateLister interface {
	ListByTier(tier models.Tier) ([]models.Template, error)
}

// StoreSource reads one tier from the local database.
type StoreSource struct {
	Store TemplateLister
	Tier  models.Tier
}

// Fetch implements Source.
func (s *StoreSource) Fetch(ctx context.Context) ([]models.Template, error) {
	return s.Store.ListByTier(s.Tier)
}

// StaticSource serves one tier of the baked-in dataset. Used in tests and
// as the explicit source when no database or remote endpoint is configured.
type StaticSource struct {
	Tier models.Tier
}

// Fetch implements Source.
func (s *StaticSource) Fetch(ctx context.Context) ([]models.Template, error) {
	var out []models.Template
	for _, t := range Defaults() {
		if t.Tier == s.Tier {
			out = append(out, t)
		}
	}
	return out, nil
}
