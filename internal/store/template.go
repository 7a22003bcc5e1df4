// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"brandforge/internal/models"
)

// TemplateStore handles all template-related database operations.
// Tag lists (industries, features) are stored as JSONB columns.
type TemplateStore struct {
	db *sql.DB
}

// NewTemplateStore creates a new TemplateStore with the given database connection.
func NewTemplateStore(db *sql.DB) *TemplateStore {
	return &TemplateStore{db: db}
}

const templateColumns = `id, name, tier, industries, features, layout_style,
	thumbnail_url, preview_url, download_url, price_cents, description,
	created_at, updated_at`

// scanTemplate reads one template row, decoding the JSONB tag columns.
func scanTemplate(row interface{ Scan(...any) error }) (*models.Template, error) {
	t := &models.Template{}
	var industries, features []byte
	err := row.Scan(
		&t.ID, &t.Name, &t.Tier, &industries, &features, &t.LayoutStyle,
		&t.ThumbnailURL, &t.PreviewURL, &t.DownloadURL, &t.PriceCents,
		&t.Description, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(industries, &t.Industries); err != nil {
		return nil, fmt.Errorf("decode industries: %w", err)
	}
	if err := json.Unmarshal(features, &t.Features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	return t, nil
}

// ListByTier returns all templates of the given tier ordered by id.
func (s *TemplateStore) ListByTier(tier models.Tier) ([]models.Template, error) {
	rows, err := s.db.Query(`
		SELECT `+templateColumns+`
		FROM templates WHERE tier = $1
		ORDER BY id
	`, tier)
	if err != nil {
		return nil, fmt.Errorf("list templates by tier: %w", err)
	}
	defer rows.Close()

	var templates []models.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, *t)
	}
	return templates, rows.Err()
}

// Upsert inserts or updates a template record. Used by seeding and by
// catalog refreshes from a remote metadata source.
func (s *TemplateStore) Upsert(t *models.Template) error {
	industries, err := json.Marshal(t.Industries)
	if err != nil {
		return fmt.Errorf("encode industries: %w", err)
	}
	features, err := json.Marshal(t.Features)
	if err != nil {
		return fmt.Errorf("encode features: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO templates (id, name, tier, industries, features, layout_style,
			thumbnail_url, preview_url, download_url, price_cents, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, tier = EXCLUDED.tier,
			industries = EXCLUDED.industries, features = EXCLUDED.features,
			layout_style = EXCLUDED.layout_style,
			thumbnail_url = EXCLUDED.thumbnail_url,
			preview_url = EXCLUDED.preview_url,
			download_url = EXCLUDED.download_url,
			price_cents = EXCLUDED.price_cents,
			description = EXCLUDED.description,
			updated_at = NOW()
	`, t.ID, t.Name, t.Tier, industries, features, t.LayoutStyle,
		t.ThumbnailURL, t.PreviewURL, t.DownloadURL, t.PriceCents, t.Description)
	if err != nil {
		return fmt.Errorf("upsert template: %w", err)
	}
	return nil
}

// Count returns the total number of templates.
func (s *TemplateStore) Count() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM templates`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count templates: %w", err)
	}
	return count, nil
}
