// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"brandforge/internal/apperr"
	"brandforge/internal/brandgen"
	"brandforge/internal/cache"
	"brandforge/internal/markdown"
	"brandforge/internal/metrics"
	"brandforge/internal/models"
)

// templateView is a catalog record as listed by the API, with the session's
// unlock status resolved.
type templateView struct {
	models.Template
	Unlocked bool `json:"unlocked"`
}

// templateMetadata extends a record with its rendered description.
type templateMetadata struct {
	models.Template
	DescriptionHTML string `json:"descriptionHtml,omitempty"`
}

// ListTemplates serves GET /api/templates?tier=&industry=. The raw catalog
// slice (without per-session unlock state) is cached in Valkey per filter
// combination.
func (a *API) ListTemplates(w http.ResponseWriter, r *http.Request) {
	tier := r.URL.Query().Get("tier")
	industry := r.URL.Query().Get("industry")

	templates, err := a.listTemplates(r, tier, industry)
	if err != nil {
		writeError(w, err)
		return
	}

	ctx := r.Context()
	key := sessionKey(r)
	views := make([]templateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, templateView{
			Template: t,
			Unlocked: a.Entitlements.IsUnlocked(ctx, key, t.ID),
		})
	}
	writeJSON(w, http.StatusOK, views)
}

// listTemplates resolves the filtered catalog slice through the cache.
func (a *API) listTemplates(r *http.Request, tier, industry string) ([]models.Template, error) {
	if a.Cache == nil {
		return a.Catalog.Filter(models.Tier(tier), industry), nil
	}

	ctx := r.Context()
	cacheKey := cache.ListKey(tier, industry)
	if body, ok := a.Cache.Get(ctx, cacheKey); ok {
		var templates []models.Template
		if err := json.Unmarshal(body, &templates); err == nil {
			return templates, nil
		}
		slog.Warn("catalog cache entry corrupt, refetching", "key", cacheKey)
	}

	templates := a.Catalog.Filter(models.Tier(tier), industry)
	if body, err := json.Marshal(templates); err == nil {
		a.Cache.Set(ctx, cacheKey, body)
	}
	return templates, nil
}

// TemplateMetadata serves GET /api/template-metadata?id=. Without an id it
// returns metadata for the full catalog; with one, a single record whose
// Markdown description is rendered to HTML.
func (a *API) TemplateMetadata(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		templates := a.Catalog.Templates()
		out := make([]templateMetadata, 0, len(templates))
		for _, t := range templates {
			out = append(out, templateMetadata{Template: t})
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	tmpl := a.Catalog.ByID(id)
	if tmpl == nil {
		writeError(w, apperr.New(apperr.CodeNotFound, "unknown template: "+id))
		return
	}

	descriptionHTML, err := markdown.ToHTML(tmpl.Description)
	if err != nil {
		slog.Warn("description render failed", "template", id, "error", err)
	}
	writeJSON(w, http.StatusOK, templateMetadata{
		Template:        *tmpl,
		DescriptionHTML: descriptionHTML,
	})
}

type pickRequest struct {
	Tier     string `json:"tier"`
	Industry string `json:"industry"`
}

// PickTemplate serves POST /api/templates/pick: a random template matching
// the filters, avoiding recent repeats.
func (a *API) PickTemplate(w http.ResponseWriter, r *http.Request) {
	var req pickRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	tmpl := a.Picker.Pick(models.Tier(req.Tier), req.Industry)
	if tmpl == nil {
		writeError(w, apperr.New(apperr.CodeNotFound, "no template matches the requested filters"))
		return
	}

	// Record the view so the recently-viewed list follows browsing, not
	// just downloads. Best-effort.
	if err := a.Entitlements.PushRecentView(r.Context(), sessionKey(r), tmpl.ID); err != nil {
		slog.Warn("recent view record failed", "template", tmpl.ID, "error", err)
	}

	writeJSON(w, http.StatusOK, templateView{
		Template: *tmpl,
		Unlocked: a.Entitlements.IsUnlocked(r.Context(), sessionKey(r), tmpl.ID),
	})
}

type generateRequest struct {
	Idea       string `json:"idea"`
	Industry   string `json:"industry"`
	StyleID    string `json:"styleId"`
	TemplateID string `json:"templateId"`
}

// Generate serves POST /api/generate: full brand copy for an idea.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.TemplateID != "" && a.Catalog.ByID(req.TemplateID) == nil {
		writeError(w, apperr.New(apperr.CodeNotFound, "unknown template: "+req.TemplateID))
		return
	}

	content, err := a.Generator.Generate(brandgen.Request{
		Idea:       req.Idea,
		Industry:   req.Industry,
		StyleID:    req.StyleID,
		TemplateID: req.TemplateID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.Generations.WithLabelValues(content.StyleID).Inc()
	writeJSON(w, http.StatusOK, content)
}

type downloadRequest struct {
	TemplateID string                   `json:"templateId"`
	Content    *models.GeneratedContent `json:"content"`
}

// httpDelivery streams a bundle into the HTTP response with the headers a
// browser needs to treat it as a file download.
type httpDelivery struct {
	w http.ResponseWriter
}

func (d *httpDelivery) Deliver(filename string, r io.Reader) error {
	d.w.Header().Set("Content-Type", "application/zip")
	d.w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, err := io.Copy(d.w, r)
	return err
}

// DownloadTemplate serves POST /api/download-template: runs the download
// workflow and streams the resulting ZIP. Errors are reported as JSON only
// while no bundle bytes have been written.
func (a *API) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.TemplateID == "" {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "templateId is required"))
		return
	}

	receipt, err := a.Workflow.Download(r.Context(), sessionKey(r), req.TemplateID, req.Content, &httpDelivery{w: w})
	if err != nil {
		writeError(w, err)
		return
	}

	tmpl := a.Catalog.ByID(receipt.TemplateID)
	metrics.Downloads.WithLabelValues(string(tmpl.Tier)).Inc()
}
