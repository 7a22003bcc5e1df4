// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records one completed mock payment for a template or subscription.
type Purchase struct {
	ID            uuid.UUID `json:"id"`
	SessionKey    string    `json:"-"`
	TemplateID    string    `json:"templateId"`
	TransactionID string    `json:"transactionId"`
	PaymentMethod string    `json:"paymentMethod"`
	AmountCents   int       `json:"amountCents"`
	Email         string    `json:"email,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
