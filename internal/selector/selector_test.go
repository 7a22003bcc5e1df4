// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package selector

import (
	"math/rand"
	"testing"

	"brandforge/internal/catalog"
	"brandforge/internal/models"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Defaults())
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return c
}

func TestPickRespectsFilters(t *testing.T) {
	p := New(testCatalog(t), rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		tmpl := p.Pick(models.TierPremium, "app")
		if tmpl == nil {
			t.Fatal("expected a pick")
		}
		if tmpl.Tier != models.TierPremium {
			t.Errorf("tier: got %s", tmpl.Tier)
		}
		if !tmpl.HasIndustry("app") {
			t.Errorf("industry: %s not tagged app", tmpl.ID)
		}
	}
}

func TestPickNoMatchReturnsNil(t *testing.T) {
	p := New(testCatalog(t), rand.New(rand.NewSource(1)))
	if tmpl := p.Pick(models.TierFree, "spacetravel"); tmpl != nil {
		t.Errorf("expected nil, got %s", tmpl.ID)
	}
	// A failed pick must not pollute the history.
	if len(p.History()) != 0 {
		t.Errorf("history after failed pick: %v", p.History())
	}
}

func TestHistoryBoundedAtFive(t *testing.T) {
	p := New(testCatalog(t), rand.New(rand.NewSource(42)))

	var picks []string
	for i := 0; i < 6; i++ {
		tmpl := p.Pick(models.TierPremium, "")
		if tmpl == nil {
			t.Fatal("expected a pick")
		}
		picks = append(picks, tmpl.ID)
	}

	h := p.History()
	if len(h) != 5 {
		t.Fatalf("history length: got %d, want 5", len(h))
	}
	// After six distinct picks the first one must have been evicted.
	for _, id := range h {
		if id == picks[0] {
			t.Errorf("oldest pick %s still in history %v", picks[0], h)
		}
	}
}

func TestPickAvoidsRecentRepeats(t *testing.T) {
	p := New(testCatalog(t), rand.New(rand.NewSource(7)))

	seen := make(map[string]bool)
	// The premium pool has 20 entries, so five consecutive picks can always
	// avoid the history and must be distinct.
	for i := 0; i < 5; i++ {
		tmpl := p.Pick(models.TierPremium, "")
		if tmpl == nil {
			t.Fatal("expected a pick")
		}
		if seen[tmpl.ID] {
			t.Errorf("pick %d repeated %s within history window", i, tmpl.ID)
		}
		seen[tmpl.ID] = true
	}
}

func TestSingleCandidateAutoClearsHistory(t *testing.T) {
	p := New(testCatalog(t), rand.New(rand.NewSource(3)))

	// Exactly one premium food template exists in the catalog.
	first := p.Pick(models.TierPremium, "food")
	if first == nil {
		t.Fatal("first pick should succeed")
	}
	second := p.Pick(models.TierPremium, "food")
	if second == nil {
		t.Fatal("second pick must auto-clear the history, never return nil")
	}
	if first.ID != second.ID {
		t.Errorf("single candidate: got %s then %s", first.ID, second.ID)
	}
}
