// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"brandforge/internal/apperr"
	"brandforge/internal/metrics"
	"brandforge/internal/middleware"
	"brandforge/internal/models"
	"brandforge/internal/payment"
	"brandforge/internal/store"
	"brandforge/internal/workflow"
)

// creditUnlockCost is the credit price of one premium template. One referral
// bonus covers one unlock.
const creditUnlockCost = referralBonusCredits

type purchaseRequest struct {
	TemplateID string          `json:"templateId"`
	Payment    payment.Request `json:"payment"`
}

// PurchaseTemplate serves POST /api/templates/purchase: charges the mock
// processor and unlocks the template for the session.
func (a *API) PurchaseTemplate(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.TemplateID == "" {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "templateId is required"))
		return
	}

	receipt, err := a.Workflow.Purchase(r.Context(), sessionKey(r), req.TemplateID, req.Payment)
	if err != nil {
		writeError(w, err)
		return
	}

	if !receipt.AlreadyUnlocked {
		metrics.Purchases.WithLabelValues("template").Inc()
	}
	writeJSON(w, http.StatusOK, receipt)
}

type subscribeRequest struct {
	Plan    string          `json:"plan"` // "monthly" or "annual"
	Payment payment.Request `json:"payment"`
}

// Subscribe serves POST /api/subscribe: starts a mock subscription that
// unlocks every premium template for the session. When the session carries
// an account, the plan is persisted on it as well.
func (a *API) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	plan := models.SubscriptionType(req.Plan)
	receipt, err := a.Workflow.Subscribe(r.Context(), sessionKey(r), plan, req.Payment)
	if err != nil {
		writeError(w, err)
		return
	}

	if sess := middleware.SessionFromCtx(r.Context()); sess != nil && sess.Authenticated() && a.Users != nil {
		if err := a.Users.SetSubscription(sess.UserID, plan); err != nil {
			slog.Warn("account subscription update failed", "user", sess.UserID, "error", err)
		}
	}

	metrics.Purchases.WithLabelValues("subscription").Inc()
	writeJSON(w, http.StatusOK, receipt)
}

type creditUnlockRequest struct {
	TemplateID string `json:"templateId"`
}

// creditUnlockReceipt reports a credit-paid unlock.
type creditUnlockReceipt struct {
	State           workflow.State `json:"state"`
	TemplateID      string         `json:"templateId"`
	CreditsSpent    int            `json:"creditsSpent"`
	AlreadyUnlocked bool           `json:"alreadyUnlocked,omitempty"`
}

// UnlockWithCredits serves POST /api/templates/unlock-with-credits: spends
// earned referral credits instead of money to unlock a premium template.
// Requires an account, since credits live on it. Re-unlocking an owned
// template is a no-op that spends nothing.
func (a *API) UnlockWithCredits(w http.ResponseWriter, r *http.Request) {
	if !a.requireUsers(w) {
		return
	}
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil || !sess.Authenticated() {
		writeError(w, apperr.New(apperr.CodeAuthRequired, "sign in to spend credits"))
		return
	}

	var req creditUnlockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.TemplateID == "" {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "templateId is required"))
		return
	}

	tmpl := a.Catalog.ByID(req.TemplateID)
	if tmpl == nil {
		writeError(w, apperr.New(apperr.CodeNotFound, "unknown template: "+req.TemplateID))
		return
	}
	if !tmpl.IsPremium() {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "free templates are already unlocked"))
		return
	}

	ctx := r.Context()
	if a.Entitlements.IsUnlocked(ctx, sess.Key, tmpl.ID) {
		writeJSON(w, http.StatusOK, creditUnlockReceipt{
			State:           workflow.StateUnlocked,
			TemplateID:      tmpl.ID,
			AlreadyUnlocked: true,
		})
		return
	}

	// Debit first. The unlock write is idempotent, so on failure the debit
	// is refunded and the client can simply retry.
	if err := a.Users.AddCredits(sess.UserID, -creditUnlockCost); err != nil {
		if errors.Is(err, store.ErrInsufficientCredits) {
			writeError(w, apperr.New(apperr.CodeInvalidInput, "not enough credits"))
			return
		}
		writeError(w, apperr.Wrap(apperr.CodePurchaseFailed, "spending credits", err))
		return
	}
	if err := a.Entitlements.Unlock(ctx, sess.Key, tmpl.ID); err != nil {
		if rerr := a.Users.AddCredits(sess.UserID, creditUnlockCost); rerr != nil {
			slog.Warn("credit refund failed", "user", sess.UserID, "error", rerr)
		}
		writeError(w, err)
		return
	}

	metrics.Purchases.WithLabelValues("credits").Inc()
	writeJSON(w, http.StatusOK, creditUnlockReceipt{
		State:        workflow.StateUnlocked,
		TemplateID:   tmpl.ID,
		CreditsSpent: creditUnlockCost,
	})
}

type verifyRequest struct {
	TransactionID string `json:"transactionId"`
}

// VerifyPayment serves POST /api/verify-payment.
func (a *API) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.TransactionID == "" {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "transactionId is required"))
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"transactionId": req.TransactionID,
		"paid":          a.Workflow.Verify(req.TransactionID),
	})
}

// RecentViews serves GET /api/recent-views: the session's recently viewed
// template IDs, newest first.
func (a *API) RecentViews(w http.ResponseWriter, r *http.Request) {
	views, err := a.Entitlements.RecentViews(r.Context(), sessionKey(r))
	if err != nil {
		// Best-effort data: an unavailable store yields an empty list, not
		// an error page.
		slog.Warn("recent views lookup failed", "error", err)
		views = nil
	}
	if views == nil {
		views = []string{}
	}
	writeJSON(w, http.StatusOK, views)
}

// PurchaseHistory serves GET /api/purchases: the session's purchase rows,
// newest first. Available only with Postgres configured.
func (a *API) PurchaseHistory(w http.ResponseWriter, r *http.Request) {
	if a.Purchases == nil {
		writeError(w, apperr.New(apperr.CodeNotFound, "purchase history is not available"))
		return
	}

	purchases, err := a.Purchases.ListBySession(sessionKey(r))
	if err != nil {
		writeError(w, apperr.Wrap(apperr.CodePurchaseFailed, "loading purchase history", err))
		return
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}
	writeJSON(w, http.StatusOK, purchases)
}
