// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package payment implements the mock payment processor. No real money
// moves: card details are validated for shape only, processing is a
// configurable sleep, and every approved charge gets a "mock_" transaction
// ID that later verifies as paid.
package payment

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"brandforge/internal/apperr"
)

// Plan prices in cents for mock subscriptions.
const (
	MonthlyPriceCents = 999
	AnnualPriceCents  = 9900
)

// declineCard always fails with PURCHASE_FAILED, mirroring the classic test
// processor decline number, so the failure path can be exercised end to end.
const declineCard = "4000000000000002"

var (
	cardNumberRe = regexp.MustCompile(`^\d{13,19}$`)
	expiryRe     = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvcRe        = regexp.MustCompile(`^\d{3,4}$`)
	emailRe      = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// Request describes one charge. Card fields are required for method "card"
// and ignored for method "paypal".
type Request struct {
	Method      string `json:"method"` // "card" or "paypal"
	AmountCents int    `json:"amountCents"`
	Email       string `json:"email"`

	CardNumber string `json:"cardNumber,omitempty"`
	CardExpiry string `json:"cardExpiry,omitempty"` // MM/YY
	CardCVC    string `json:"cardCvc,omitempty"`
}

// Result is an approved charge.
type Result struct {
	TransactionID string `json:"transactionId"`
	AmountCents   int    `json:"amountCents"`
	ProcessedAt   string `json:"processedAt"`
}

// Processor simulates a payment provider with configurable latency.
type Processor struct {
	Delay time.Duration
}

// New creates a Processor with the given simulated latency.
func New(delay time.Duration) *Processor {
	return &Processor{Delay: delay}
}

// Process validates and "charges" the request. Returns INVALID_INPUT for
// malformed details and PURCHASE_FAILED for the simulated decline card.
func (p *Processor) Process(ctx context.Context, req Request) (*Result, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	// Simulated provider round trip; honors cancellation.
	if p.Delay > 0 {
		select {
		case <-time.After(p.Delay):
		case <-ctx.Done():
			return nil, apperr.Wrap(apperr.CodePurchaseFailed, "payment cancelled", ctx.Err())
		}
	}

	if normalizeCard(req.CardNumber) == declineCard {
		return nil, apperr.New(apperr.CodePurchaseFailed, "card declined")
	}

	return &Result{
		TransactionID: "mock_" + strings.ReplaceAll(uuid.NewString(), "-", ""),
		AmountCents:   req.AmountCents,
		ProcessedAt:   time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Verify reports whether a transaction ID was issued by this processor.
// Real providers would call out here; the mock accepts its own prefix.
func Verify(transactionID string) bool {
	return strings.HasPrefix(transactionID, "mock_") && len(transactionID) > len("mock_")
}

func validate(req Request) error {
	if req.AmountCents <= 0 {
		return apperr.New(apperr.CodeInvalidInput, "amount must be positive")
	}
	if !emailRe.MatchString(req.Email) {
		return apperr.New(apperr.CodeInvalidInput, "valid email is required")
	}

	switch req.Method {
	case "paypal":
		return nil
	case "card":
		if !cardNumberRe.MatchString(normalizeCard(req.CardNumber)) {
			return apperr.New(apperr.CodeInvalidInput, "card number must be 13-19 digits")
		}
		if !expiryRe.MatchString(req.CardExpiry) {
			return apperr.New(apperr.CodeInvalidInput, "expiry must be MM/YY")
		}
		if !cvcRe.MatchString(req.CardCVC) {
			return apperr.New(apperr.CodeInvalidInput, "cvc must be 3-4 digits")
		}
		return nil
	default:
		return apperr.New(apperr.CodeInvalidInput, "unsupported payment method: "+req.Method)
	}
}

func normalizeCard(number string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(number)
}
