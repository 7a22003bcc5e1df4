// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Tier classifies a template as freely usable or purchase-gated.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Template is a single catalog record for a downloadable landing-page
// template. The ID is a stable string identifier ("free_template_1",
// "premium_04") and is unique across the whole catalog. Tier is the sole
// gate for entitlement checks: free templates never require an unlock.
type Template struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Tier         Tier      `json:"tier"`
	Industries   []string  `json:"industries"`
	Features     []string  `json:"features"`
	LayoutStyle  string    `json:"layoutStyle"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	PreviewURL   string    `json:"previewUrl,omitempty"`
	DownloadURL  string    `json:"downloadUrl,omitempty"`
	PriceCents   int       `json:"priceCents"`
	Description  string    `json:"description,omitempty"` // markdown source
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// IsPremium reports whether downloading this template requires entitlement.
func (t *Template) IsPremium() bool {
	return t.Tier == TierPremium
}

// HasIndustry reports whether the template is tagged with the given industry.
func (t *Template) HasIndustry(industry string) bool {
	for _, tag := range t.Industries {
		if tag == industry {
			return true
		}
	}
	return false
}
