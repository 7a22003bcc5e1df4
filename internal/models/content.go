// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// Feature is one generated landing-page feature block.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// FontPairing holds a heading/body font combination.
type FontPairing struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// GeneratedContent is the output of one brand copy generation run.
// ColorPalette always holds exactly three hex colors; Features holds
// three to five entries with non-empty title and description.
type GeneratedContent struct {
	BrandName    string      `json:"brandName"`
	Headline     string      `json:"headline"`
	Subheadline  string      `json:"subheadline"`
	Features     []Feature   `json:"features"`
	CTA          string      `json:"cta"`
	ColorPalette []string    `json:"colorPalette"`
	FontPairing  FontPairing `json:"fontPairing"`
	BrandTone    string      `json:"brandTone"`
	EmojiSet     string      `json:"emojiSet"`

	// Provenance: which style produced the copy and, when the caller pinned
	// a catalog template, which template informed the style choice.
	StyleID        string `json:"styleId"`
	StyleName      string `json:"styleName"`
	LayoutStyle    string `json:"layoutStyle"`
	AnimationLevel string `json:"animationLevel"`
	TemplateID     string `json:"templateId,omitempty"`

	OriginalIdea     string `json:"originalIdea"`
	OriginalIndustry string `json:"originalIndustry"`
}
