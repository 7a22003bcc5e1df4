// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package archive assembles downloadable ZIP bundles: the generated landing
// page, theme stylesheet, README and, for premium templates with object
// storage configured, the template's asset files.
package archive

import (
	"archive/zip"
	"context"
	"fmt"
	htmltemplate "html/template"
	"io"
	"log/slog"
	"path"
	"strings"
	texttemplate "text/template"
	"time"

	"brandforge/internal/models"
	"brandforge/web"
)

// AssetSource is the slice of object storage the builder needs. A nil
// source produces bundles without an assets/ directory.
type AssetSource interface {
	List(ctx context.Context, prefix string) ([]string, error)
	Download(ctx context.Context, key string) ([]byte, error)
}

// Builder renders site bundles. Safe for concurrent use once constructed.
type Builder struct {
	assets AssetSource

	indexTmpl  *htmltemplate.Template
	stylesTmpl *texttemplate.Template
	readmeTmpl *texttemplate.Template
	resetCSS   []byte
}

// bundleData is the rendering context shared by every bundle file.
type bundleData struct {
	Template *models.Template
	Content  *models.GeneratedContent
	Year     int
	// Google Fonts URL parameters, e.g. "Playfair+Display". Typed as URL
	// substrings so html/template does not percent-escape the plus signs.
	HeadingFontParam htmltemplate.URL
	BodyFontParam    htmltemplate.URL
	HasAssets        bool
}

// NewBuilder parses the embedded bundle templates. The asset source may be
// nil when object storage is not configured.
func NewBuilder(assets AssetSource) (*Builder, error) {
	indexSrc, err := web.StaticFS.ReadFile("static/bundle/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("bundle index template: %w", err)
	}
	stylesSrc, err := web.StaticFS.ReadFile("static/bundle/styles.css.tmpl")
	if err != nil {
		return nil, fmt.Errorf("bundle styles template: %w", err)
	}
	readmeSrc, err := web.StaticFS.ReadFile("static/bundle/README.md.tmpl")
	if err != nil {
		return nil, fmt.Errorf("bundle readme template: %w", err)
	}
	resetCSS, err := web.StaticFS.ReadFile("static/bundle/reset.css")
	if err != nil {
		return nil, fmt.Errorf("bundle reset.css: %w", err)
	}

	indexTmpl, err := htmltemplate.New("index").Parse(string(indexSrc))
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}
	stylesTmpl, err := texttemplate.New("styles").Parse(string(stylesSrc))
	if err != nil {
		return nil, fmt.Errorf("parse styles template: %w", err)
	}
	readmeTmpl, err := texttemplate.New("readme").Parse(string(readmeSrc))
	if err != nil {
		return nil, fmt.Errorf("parse readme template: %w", err)
	}

	return &Builder{
		assets:     assets,
		indexTmpl:  indexTmpl,
		stylesTmpl: stylesTmpl,
		readmeTmpl: readmeTmpl,
		resetCSS:   resetCSS,
	}, nil
}

// Build writes a complete ZIP bundle for the template and generated content
// to w. Asset fetch failures degrade the bundle rather than failing it: the
// generated site files always ship.
func (b *Builder) Build(ctx context.Context, w io.Writer, tmpl *models.Template, content *models.GeneratedContent) error {
	assets := b.loadAssets(ctx, tmpl)

	data := bundleData{
		Template:         tmpl,
		Content:          content,
		Year:             time.Now().Year(),
		HeadingFontParam: fontParam(content.FontPairing.Heading),
		BodyFontParam:    fontParam(content.FontPairing.Body),
		HasAssets:        len(assets) > 0,
	}

	zw := zip.NewWriter(w)

	if err := b.renderEntry(zw, "index.html", func(fw io.Writer) error {
		return b.indexTmpl.Execute(fw, data)
	}); err != nil {
		return err
	}
	if err := b.renderEntry(zw, "styles.css", func(fw io.Writer) error {
		return b.stylesTmpl.Execute(fw, data)
	}); err != nil {
		return err
	}
	if err := b.renderEntry(zw, "README.md", func(fw io.Writer) error {
		return b.readmeTmpl.Execute(fw, data)
	}); err != nil {
		return err
	}
	if err := b.renderEntry(zw, "reset.css", func(fw io.Writer) error {
		_, err := fw.Write(b.resetCSS)
		return err
	}); err != nil {
		return err
	}

	for name, body := range assets {
		if err := b.renderEntry(zw, path.Join("assets", name), func(fw io.Writer) error {
			_, err := fw.Write(body)
			return err
		}); err != nil {
			return err
		}
	}

	return zw.Close()
}

// loadAssets pulls the template's asset objects from storage. Premium
// templates keep their extras under templates/<id>/ in the asset bucket.
func (b *Builder) loadAssets(ctx context.Context, tmpl *models.Template) map[string][]byte {
	if b.assets == nil || !tmpl.IsPremium() {
		return nil
	}

	prefix := "templates/" + tmpl.ID + "/"
	keys, err := b.assets.List(ctx, prefix)
	if err != nil {
		slog.Warn("bundle asset listing failed", "template", tmpl.ID, "error", err)
		return nil
	}

	out := make(map[string][]byte, len(keys))
	for _, key := range keys {
		name := strings.TrimPrefix(key, prefix)
		if name == "" {
			continue
		}
		body, err := b.assets.Download(ctx, key)
		if err != nil {
			slog.Warn("bundle asset download failed", "key", key, "error", err)
			continue
		}
		out[name] = body
	}
	return out
}

func (b *Builder) renderEntry(zw *zip.Writer, name string, render func(io.Writer) error) error {
	fw, err := zw.Create(name)
	if err != nil {
		return fmt.Errorf("zip entry %s: %w", name, err)
	}
	if err := render(fw); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

// fontParam converts a font family name to its Google Fonts URL form.
func fontParam(family string) htmltemplate.URL {
	return htmltemplate.URL(strings.ReplaceAll(family, " ", "+"))
}
