// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package workflow orchestrates the purchase and download lifecycle:
// entitlement checks, mock payment, bundle assembly or remote fetch, and
// delivery. Each operation drives the template through its forward-only
// state machine and reports the final state in its receipt.
package workflow

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"brandforge/internal/apperr"
	"brandforge/internal/archive"
	"brandforge/internal/catalog"
	"brandforge/internal/entitlement"
	"brandforge/internal/models"
	"brandforge/internal/payment"
	"brandforge/internal/slug"
)

// PurchaseRecorder persists purchase rows. Nil disables durable receipts
// (the unlock itself still lands in the entitlement store).
type PurchaseRecorder interface {
	Create(p *models.Purchase) (*models.Purchase, error)
}

// Manager wires the purchase/download workflow together.
type Manager struct {
	Catalog      *catalog.Catalog
	Entitlements *entitlement.Store
	Processor    *payment.Processor
	Purchases    PurchaseRecorder
	Fetcher      *Fetcher
	Builder      *archive.Builder
}

// PurchaseReceipt reports the outcome of a purchase operation.
type PurchaseReceipt struct {
	State           State  `json:"state"`
	TemplateID      string `json:"templateId,omitempty"`
	Plan            string `json:"plan,omitempty"`
	TransactionID   string `json:"transactionId,omitempty"`
	AmountCents     int    `json:"amountCents"`
	AlreadyUnlocked bool   `json:"alreadyUnlocked,omitempty"`
}

// Purchase charges for a premium template and unlocks it for the session.
// The price is taken from the catalog, never from the client. Purchasing a
// template the session already owns is a no-op success without a charge.
func (m *Manager) Purchase(ctx context.Context, sessionKey, templateID string, pay payment.Request) (*PurchaseReceipt, error) {
	tmpl := m.Catalog.ByID(templateID)
	if tmpl == nil {
		return nil, apperr.New(apperr.CodeNotFound, "unknown template: "+templateID)
	}
	if !tmpl.IsPremium() {
		return nil, apperr.New(apperr.CodeInvalidInput, "free templates do not require purchase")
	}
	if m.Entitlements.IsUnlocked(ctx, sessionKey, templateID) {
		return &PurchaseReceipt{
			State:           StateUnlocked,
			TemplateID:      templateID,
			AlreadyUnlocked: true,
		}, nil
	}

	pay.AmountCents = tmpl.PriceCents
	result, err := m.Processor.Process(ctx, pay)
	if err != nil {
		return nil, err
	}

	// The unlock write is synchronous: an immediately following download
	// must see it. A failed write after a successful charge is surfaced so
	// the client retries the (idempotent) unlock rather than paying twice.
	if err := m.Entitlements.Unlock(ctx, sessionKey, templateID); err != nil {
		return nil, err
	}

	m.record(ctx, sessionKey, templateID, pay, result)

	return &PurchaseReceipt{
		State:         StateUnlocked,
		TemplateID:    templateID,
		TransactionID: result.TransactionID,
		AmountCents:   result.AmountCents,
	}, nil
}

// Subscribe charges for a subscription plan and marks the session as
// subscribed, unlocking every premium template at once.
func (m *Manager) Subscribe(ctx context.Context, sessionKey string, plan models.SubscriptionType, pay payment.Request) (*PurchaseReceipt, error) {
	switch plan {
	case models.SubscriptionMonthly:
		pay.AmountCents = payment.MonthlyPriceCents
	case models.SubscriptionAnnual:
		pay.AmountCents = payment.AnnualPriceCents
	default:
		return nil, apperr.New(apperr.CodeInvalidInput, "unknown plan: "+string(plan))
	}

	result, err := m.Processor.Process(ctx, pay)
	if err != nil {
		return nil, err
	}
	if err := m.Entitlements.SetSubscription(ctx, sessionKey, plan); err != nil {
		return nil, apperr.Wrap(apperr.CodePurchaseFailed, "recording subscription", err)
	}

	m.record(ctx, sessionKey, "subscription:"+string(plan), pay, result)

	return &PurchaseReceipt{
		State:         StateUnlocked,
		Plan:          string(plan),
		TransactionID: result.TransactionID,
		AmountCents:   result.AmountCents,
	}, nil
}

// Verify reports whether a transaction ID corresponds to a completed mock
// payment.
func (m *Manager) Verify(transactionID string) bool {
	return payment.Verify(transactionID)
}

// record persists a purchase row. Best-effort: the charge and unlock have
// already succeeded, so a failed receipt write is logged, not surfaced.
func (m *Manager) record(ctx context.Context, sessionKey, templateID string, pay payment.Request, result *payment.Result) {
	if m.Purchases == nil {
		return
	}
	_, err := m.Purchases.Create(&models.Purchase{
		SessionKey:    sessionKey,
		TemplateID:    templateID,
		TransactionID: result.TransactionID,
		PaymentMethod: pay.Method,
		AmountCents:   result.AmountCents,
		Email:         pay.Email,
	})
	if err != nil {
		slog.Warn("purchase receipt write failed", "transaction", result.TransactionID, "error", err)
	}
}

// DownloadReceipt reports a completed download.
type DownloadReceipt struct {
	State      State  `json:"state"`
	TemplateID string `json:"templateId"`
	Filename   string `json:"filename"`
}

// Download assembles or fetches the template's bundle and hands it to the
// delivery. Locked premium templates fail with AUTH_REQUIRED before any
// bytes move. Templates with a remote bundle URL are fetched with bounded
// retries; all others are rendered locally from the generated content.
func (m *Manager) Download(ctx context.Context, sessionKey, templateID string, content *models.GeneratedContent, delivery Delivery) (*DownloadReceipt, error) {
	tmpl := m.Catalog.ByID(templateID)
	if tmpl == nil {
		return nil, apperr.New(apperr.CodeNotFound, "unknown template: "+templateID)
	}
	if !m.Entitlements.IsUnlocked(ctx, sessionKey, templateID) {
		return nil, apperr.New(apperr.CodeAuthRequired, "template is locked; purchase required")
	}

	var (
		body     []byte
		filename string
	)
	if tmpl.DownloadURL != "" {
		fetched, name, err := m.Fetcher.Fetch(ctx, tmpl.DownloadURL)
		if err != nil {
			return nil, err
		}
		body, filename = fetched, name
	} else {
		if content == nil {
			return nil, apperr.New(apperr.CodeInvalidInput, "generated content is required to build a bundle")
		}
		var buf bytes.Buffer
		if err := m.Builder.Build(ctx, &buf, tmpl, content); err != nil {
			return nil, apperr.Wrap(apperr.CodeDownloadFailed, "building bundle", err)
		}
		body = buf.Bytes()
		filename = fmt.Sprintf("%s-%s.zip", slug.Generate(content.BrandName), tmpl.ID)
	}
	if filename == "" {
		filename = fmt.Sprintf("%s.zip", tmpl.ID)
	}

	if err := delivery.Deliver(filename, bytes.NewReader(body)); err != nil {
		return nil, apperr.Wrap(apperr.CodeDownloadFailed, "delivering bundle", err)
	}

	// Best-effort: a full recent-views list or a flaky store never fails a
	// completed download.
	if err := m.Entitlements.PushRecentView(ctx, sessionKey, templateID); err != nil {
		slog.Warn("recent view record failed", "template", templateID, "error", err)
	}

	return &DownloadReceipt{
		State:      StateDownloaded,
		TemplateID: templateID,
		Filename:   filename,
	}, nil
}
