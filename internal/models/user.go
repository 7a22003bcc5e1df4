// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SubscriptionType is the billing cadence of a (mock) subscription.
type SubscriptionType string

const (
	SubscriptionNone    SubscriptionType = "none"
	SubscriptionMonthly SubscriptionType = "monthly"
	SubscriptionAnnual  SubscriptionType = "annual"
)

// User is a registered BrandForge account. Accounts are demo-grade: the
// password is bcrypt-hashed but there is no email verification, recovery,
// or real billing behind the subscription fields.
type User struct {
	ID            uuid.UUID        `json:"id"`
	Email         string           `json:"email"`
	PasswordHash  string           `json:"-"`
	DisplayName   string           `json:"displayName"`
	Subscription  SubscriptionType `json:"subscription"`
	Credits       int              `json:"credits"`
	ReferralCode  string           `json:"referralCode"`
	ReferralCount int              `json:"referralCount"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     time.Time        `json:"updatedAt"`
}

// HasActiveSubscription reports whether the account carries any paid plan.
func (u *User) HasActiveSubscription() bool {
	return u.Subscription == SubscriptionMonthly || u.Subscription == SubscriptionAnnual
}
