// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog loads and serves the template catalog. The catalog is
// assembled once at startup by merging a free-tier and a premium-tier
// source, and is immutable afterwards: handlers and the selector only read
// from it.
package catalog

import (
	"fmt"

	"brandforge/internal/models"
)

// Catalog is the merged, read-only template catalog.
type Catalog struct {
	templates []models.Template
	byID      map[string]int
}

// New builds a catalog from the given records. Returns an error when two
// records share an ID — IDs must be unique across the free and premium sets.
func New(templates []models.Template) (*Catalog, error) {
	byID := make(map[string]int, len(templates))
	for i, t := range templates {
		if t.ID == "" {
			return nil, fmt.Errorf("catalog: record %d has empty id", i)
		}
		if _, dup := byID[t.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate template id %q", t.ID)
		}
		byID[t.ID] = i
	}
	return &Catalog{templates: templates, byID: byID}, nil
}

// Templates returns all records. Callers must not mutate the result.
func (c *Catalog) Templates() []models.Template {
	return c.templates
}

// ByID returns the template with the given ID, or nil when absent.
func (c *Catalog) ByID(id string) *models.Template {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	return &c.templates[i]
}

// Len returns the number of catalog records.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Filter returns the templates matching the given constraints. An empty
// tier (or "all") matches both tiers; an empty industry matches everything.
func (c *Catalog) Filter(tier models.Tier, industry string) []models.Template {
	var out []models.Template
	for _, t := range c.templates {
		if tier != "" && tier != "all" && t.Tier != tier {
			continue
		}
		if industry != "" && !t.HasIndustry(industry) {
			continue
		}
		out = append(out, t)
	}
	return out
}
