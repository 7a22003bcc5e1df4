// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package brandgen produces deterministic-given-a-seed brand copy: name,
// headline, features, palette, fonts, tone. All output is assembled from
// fixed per-style vocabulary, no external calls.
package brandgen

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"brandforge/internal/apperr"
	"brandforge/internal/models"
)

const (
	minFeatures = 3
	maxFeatures = 5
	// maxIdeaHeadlineLen caps how much of the raw idea is quoted verbatim
	// in a headline before it gets truncated with an ellipsis.
	maxIdeaHeadlineLen = 30
	// titleRetries bounds the attempts to find an unused feature title
	// prefix before repeats are accepted.
	titleRetries = 10
)

// Request describes one generation run. Idea is required. Industry defaults
// to "general". StyleID pins a specific style; when empty a style suited to
// the industry is chosen at random. TemplateID is carried through to the
// output for provenance only.
type Request struct {
	Idea       string
	Industry   string
	StyleID    string
	TemplateID string
}

// Generator produces brand copy. Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Generator. A nil rng gets a time-seeded source; tests inject
// a fixed seed for reproducible output.
func New(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rng: rng}
}

// Generate assembles a full set of brand copy for the request.
func (g *Generator) Generate(req Request) (*models.GeneratedContent, error) {
	idea := strings.TrimSpace(req.Idea)
	if idea == "" {
		return nil, apperr.New(apperr.CodeInvalidInput, "idea is required")
	}
	industry := strings.ToLower(strings.TrimSpace(req.Industry))
	if industry == "" {
		industry = "general"
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	style, err := g.chooseStyle(req.StyleID, industry)
	if err != nil {
		return nil, err
	}

	brandName := g.pick(style.NamePrefixes) + g.pick(style.NameSuffixes)
	palette := style.ColorPalettes[g.rng.Intn(len(style.ColorPalettes))]

	return &models.GeneratedContent{
		BrandName:    brandName,
		Headline:     g.fill(g.pick(style.HeadlineFormats), brandName, idea, industry),
		Subheadline:  g.fill(g.pick(style.SubheadlineFormats), brandName, idea, industry),
		Features:     g.features(style, industry),
		CTA:          g.pick(style.CTAs),
		ColorPalette: palette[:],
		FontPairing:  style.FontPairings[g.rng.Intn(len(style.FontPairings))],
		BrandTone:    g.pick(style.BrandTones),
		EmojiSet:     g.pick(style.EmojiSets),

		StyleID:        style.ID,
		StyleName:      style.Name,
		LayoutStyle:    style.LayoutStyle,
		AnimationLevel: style.AnimationLevel,
		TemplateID:     req.TemplateID,

		OriginalIdea:     idea,
		OriginalIndustry: industry,
	}, nil
}

// chooseStyle resolves an explicit style ID or picks one suited to the
// industry. Caller holds g.mu.
func (g *Generator) chooseStyle(styleID, industry string) (*Style, error) {
	if styleID != "" {
		style := StyleByID(styleID)
		if style == nil {
			return nil, apperr.New(apperr.CodeInvalidInput, "unknown style: "+styleID)
		}
		return style, nil
	}
	ids := StylesForIndustry(industry)
	return styles[ids[g.rng.Intn(len(ids))]], nil
}

// fill substitutes the {brandName}, {idea} and {category} placeholders. Long
// ideas are truncated so headlines stay headline-sized.
func (g *Generator) fill(format, brandName, idea, industry string) string {
	shortIdea := idea
	if runes := []rune(shortIdea); len(runes) > maxIdeaHeadlineLen {
		shortIdea = string(runes[:maxIdeaHeadlineLen]) + "..."
	}
	r := strings.NewReplacer(
		"{brandName}", brandName,
		"{idea}", shortIdea,
		"{category}", industry,
	)
	return r.Replace(format)
}

// features builds three to five feature blocks. Title prefixes are kept
// distinct within a run when the pool allows it; descriptions prefer the
// industry-specific pool and cycle into the generic one once exhausted.
func (g *Generator) features(style *Style, industry string) []models.Feature {
	count := minFeatures + g.rng.Intn(maxFeatures-minFeatures+1)

	nouns := append([]string{}, genericFeatureNouns...)
	if industry != "general" {
		nouns = append(nouns, capitalize(industry))
	}

	specific := industryFeatureDescriptions[industry]

	usedPrefixes := make(map[string]bool)
	out := make([]models.Feature, 0, count)
	for i := 0; i < count; i++ {
		prefix := g.pick(style.FeatureTitlePrefixes)
		for attempt := 0; usedPrefixes[prefix] && attempt < titleRetries; attempt++ {
			prefix = g.pick(style.FeatureTitlePrefixes)
		}
		if usedPrefixes[prefix] {
			// Random retries exhausted; take any unused prefix. Repeats only
			// happen once the pool itself is smaller than the feature count.
			for _, p := range style.FeatureTitlePrefixes {
				if !usedPrefixes[p] {
					prefix = p
					break
				}
			}
		}
		usedPrefixes[prefix] = true

		var desc string
		if i < len(specific) {
			desc = specific[i]
		} else {
			pool := genericFeatureDescriptions
			desc = strings.ReplaceAll(pool[(i-len(specific))%len(pool)], "%s", industry)
		}

		out = append(out, models.Feature{
			Title:       prefix + " " + g.pick(nouns),
			Description: desc,
		})
	}
	return out
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
