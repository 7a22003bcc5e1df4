// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the BrandForge JSON API. Every response uses
// the {"success": bool, ...} envelope; failures carry a machine-readable
// error code from the apperr taxonomy.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"brandforge/internal/apperr"
	"brandforge/internal/brandgen"
	"brandforge/internal/cache"
	"brandforge/internal/catalog"
	"brandforge/internal/entitlement"
	"brandforge/internal/metrics"
	"brandforge/internal/middleware"
	"brandforge/internal/selector"
	"brandforge/internal/session"
	"brandforge/internal/store"
	"brandforge/internal/workflow"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// API groups the JSON endpoint handlers and their dependencies.
// Users and Purchases may be nil when Postgres is not configured; the
// account endpoints then respond with 404.
type API struct {
	Catalog      *catalog.Catalog
	Cache        *cache.CatalogCache
	Picker       *selector.Picker
	Generator    *brandgen.Generator
	Workflow     *workflow.Manager
	Entitlements *entitlement.Store
	Sessions     *session.Store
	Users        *store.UserStore
	Purchases    *store.PurchaseStore
	BaseURL      string
}

// envelope is the uniform JSON response shape.
type envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Error   *errBody `json:"error,omitempty"`
}

type errBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes a success envelope with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		slog.Error("json encode failed", "error", err)
	}
}

// writeError maps an error onto the envelope and HTTP status. Errors
// outside the apperr taxonomy become opaque 500s.
func writeError(w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	status := http.StatusInternalServerError
	message := "internal error"

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		status = appErr.Code.HTTPStatus()
		message = appErr.Message
	} else {
		slog.Error("unhandled error", "error", err)
		code = "INTERNAL"
	}
	metrics.Failures.WithLabelValues(string(code)).Inc()

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{
		Success: false,
		Error:   &errBody{Code: string(code), Message: message},
	})
}

// decodeJSON reads and validates a JSON request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.Wrap(apperr.CodeInvalidInput, "malformed JSON body", err)
	}
	return nil
}

// sessionKey returns the request's session key, or "" when no session
// could be resolved (entitlement checks then fail locked).
func sessionKey(r *http.Request) string {
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil {
		return sess.Key
	}
	return ""
}

// Health reports liveness.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
