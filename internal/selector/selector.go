// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package selector picks random catalog templates while avoiding immediate
// repeats. Each Picker owns its own bounded selection history, so separate
// sessions (and separate tests) never share state.
package selector

import (
	"math/rand"
	"sync"
	"time"

	"brandforge/internal/catalog"
	"brandforge/internal/models"
)

// historySize bounds how many recent picks are excluded from selection.
const historySize = 5

// Picker selects random templates from a catalog. Safe for concurrent use.
type Picker struct {
	mu      sync.Mutex
	catalog *catalog.Catalog
	rng     *rand.Rand
	history []string // most recent last, len <= historySize
}

// New creates a Picker over the given catalog. A nil rng gets a time-seeded
// source; tests inject a fixed seed for reproducible choices.
func New(c *catalog.Catalog, rng *rand.Rand) *Picker {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Picker{catalog: c, rng: rng}
}

// Pick returns a random template matching the tier and industry constraints
// that has not been picked recently. When every matching template is in the
// recent history, the history is cleared and the filter applied once more,
// so a match is always returned as long as the raw filter is non-empty.
// Returns nil only when no catalog record matches the constraints at all.
func (p *Picker) Pick(tier models.Tier, industry string) *models.Template {
	p.mu.Lock()
	defer p.mu.Unlock()

	candidates := p.eligible(tier, industry)
	if len(candidates) == 0 {
		// Everything matching has been shown recently; reset and retry the
		// exclusion once. Two passes guarantee termination.
		p.history = p.history[:0]
		candidates = p.eligible(tier, industry)
		if len(candidates) == 0 {
			return nil
		}
	}

	chosen := candidates[p.rng.Intn(len(candidates))]
	p.remember(chosen.ID)
	return &chosen
}

// History returns a copy of the current selection history, oldest first.
func (p *Picker) History() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.history))
	copy(out, p.history)
	return out
}

// eligible filters the catalog and drops recently-picked IDs.
// Caller holds p.mu.
func (p *Picker) eligible(tier models.Tier, industry string) []models.Template {
	var out []models.Template
	for _, t := range p.catalog.Filter(tier, industry) {
		if p.recentlyPicked(t.ID) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (p *Picker) recentlyPicked(id string) bool {
	for _, h := range p.history {
		if h == id {
			return true
		}
	}
	return false
}

// remember appends id to the history, evicting the oldest entry past capacity.
func (p *Picker) remember(id string) {
	p.history = append(p.history, id)
	if len(p.history) > historySize {
		p.history = p.history[1:]
	}
}
