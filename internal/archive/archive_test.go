// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"brandforge/internal/catalog"
	"brandforge/internal/models"
)

func testContent() *models.GeneratedContent {
	return &models.GeneratedContent{
		BrandName:   "TerraLife",
		Headline:    "TerraLife: Sustainable food for a Better Tomorrow",
		Subheadline: "Eco-friendly food solutions for a sustainable future",
		Features: []models.Feature{
			{Title: "Sustainable Design", Description: "Menu updates publish instantly."},
			{Title: "Natural Analytics", Description: "Reservations flow to the kitchen."},
			{Title: "Organic Experience", Description: "Seasonal specials get a spotlight."},
		},
		CTA:          "Join the Movement",
		ColorPalette: []string{"#588157", "#A3B18A", "#DAD7CD"},
		FontPairing:  models.FontPairing{Heading: "Playfair Display", Body: "Lora"},
		BrandTone:    "Natural & Sustainable",
		EmojiSet:     "🌱🌿🍃",

		StyleID:        "eco-friendly",
		StyleName:      "Eco-Friendly",
		LayoutStyle:    "asymmetric",
		AnimationLevel: "subtle",

		OriginalIdea:     "a farm-to-table meal kit",
		OriginalIndustry: "food",
	}
}

func readZip(t *testing.T, buf *bytes.Buffer) map[string]string {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}
	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("read %s: %v", f.Name, err)
		}
		out[f.Name] = string(body)
	}
	return out
}

func TestBuildFreeBundle(t *testing.T) {
	b, err := NewBuilder(nil)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	c, _ := catalog.New(catalog.Defaults())
	tmpl := c.ByID("free_template_1")

	var buf bytes.Buffer
	if err := b.Build(context.Background(), &buf, tmpl, testContent()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	files := readZip(t, &buf)
	for _, name := range []string{"index.html", "styles.css", "README.md", "reset.css"} {
		if _, ok := files[name]; !ok {
			t.Errorf("bundle missing %s; has %v", name, keys(files))
		}
	}

	index := files["index.html"]
	if !strings.Contains(index, "TerraLife") {
		t.Error("index.html should contain the brand name")
	}
	if !strings.Contains(index, "Playfair+Display") {
		t.Error("index.html should reference the heading font on Google Fonts")
	}
	if !strings.Contains(index, `class="layout-asymmetric animation-subtle"`) {
		t.Error("index.html should carry the layout and animation classes")
	}

	styles := files["styles.css"]
	if !strings.Contains(styles, "--color-primary: #588157;") {
		t.Errorf("styles.css should pin the palette, got:\n%s", styles)
	}

	if strings.Contains(files["README.md"], "assets/") {
		t.Error("free bundle README should not mention assets")
	}
}

type stubAssets struct {
	objects map[string][]byte
	fail    bool
}

func (s *stubAssets) List(ctx context.Context, prefix string) ([]string, error) {
	if s.fail {
		return nil, errors.New("storage down")
	}
	var keys []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *stubAssets) Download(ctx context.Context, key string) ([]byte, error) {
	if s.fail {
		return nil, errors.New("storage down")
	}
	return s.objects[key], nil
}

func TestBuildPremiumBundleIncludesAssets(t *testing.T) {
	assets := &stubAssets{objects: map[string][]byte{
		"templates/premium_01/logo.svg":    []byte("<svg/>"),
		"templates/premium_01/hero.jpg":    []byte{0xFF, 0xD8},
		"templates/premium_02/other.png":   []byte{0x89},
		"templates/free_template_1/x.webp": []byte{0x52},
	}}
	b, err := NewBuilder(assets)
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	c, _ := catalog.New(catalog.Defaults())
	tmpl := c.ByID("premium_01")

	var buf bytes.Buffer
	if err := b.Build(context.Background(), &buf, tmpl, testContent()); err != nil {
		t.Fatalf("Build: %v", err)
	}

	files := readZip(t, &buf)
	if files["assets/logo.svg"] != "<svg/>" {
		t.Errorf("missing premium asset, bundle has %v", keys(files))
	}
	if _, ok := files["assets/hero.jpg"]; !ok {
		t.Error("missing hero.jpg asset")
	}
	if _, ok := files["assets/other.png"]; ok {
		t.Error("bundle must not include other templates' assets")
	}
	if !strings.Contains(files["README.md"], "assets/") {
		t.Error("premium bundle README should mention assets")
	}
}

func TestBuildSurvivesAssetStorageFailure(t *testing.T) {
	b, err := NewBuilder(&stubAssets{fail: true})
	if err != nil {
		t.Fatalf("NewBuilder: %v", err)
	}

	c, _ := catalog.New(catalog.Defaults())
	var buf bytes.Buffer
	if err := b.Build(context.Background(), &buf, c.ByID("premium_01"), testContent()); err != nil {
		t.Fatalf("Build should degrade, not fail: %v", err)
	}
	files := readZip(t, &buf)
	if _, ok := files["index.html"]; !ok {
		t.Error("degraded bundle should still contain the site files")
	}
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
