// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package entitlement tracks which premium templates a session has unlocked,
// backed by Valkey. Free templates are always unlocked, an active
// subscription unlocks every premium template, and explicit unlocks are
// recorded per session. Lookups fail locked: when the backing store cannot
// be read, premium templates report as locked rather than leaking access.
package entitlement

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"brandforge/internal/apperr"
	"brandforge/internal/catalog"
	"brandforge/internal/models"
)

const (
	unlockKeyPrefix = "bf:unlocks:"
	subKeyPrefix    = "bf:sub:"
	recentKeyPrefix = "bf:recent:"

	// entitlementTTL keeps unlock and subscription records alive well past
	// any session; each write refreshes it.
	entitlementTTL = 30 * 24 * time.Hour

	// recentViewLimit bounds the per-session recently-viewed list.
	recentViewLimit = 10
)

// Store answers unlock questions for a session. Safe for concurrent use.
type Store struct {
	client  *redis.Client
	catalog *catalog.Catalog
}

// New creates a Store over the given Valkey client and template catalog.
func New(client *redis.Client, c *catalog.Catalog) *Store {
	return &Store{client: client, catalog: c}
}

// IsUnlocked reports whether the session may download the template.
// Precedence: active subscription, then explicit unlock, then free tier.
// Unknown template IDs are locked. Store read failures are logged and
// treated as "not unlocked" for premium templates; free templates never
// need the store and stay unlocked even when it is down.
func (s *Store) IsUnlocked(ctx context.Context, sessionKey, templateID string) bool {
	tmpl := s.catalog.ByID(templateID)
	if tmpl == nil {
		return false
	}

	sub, err := s.client.Exists(ctx, subKeyPrefix+sessionKey).Result()
	if err != nil {
		slog.Warn("entitlement subscription lookup failed", "error", err)
	} else if sub > 0 {
		return true
	}

	unlocked, err := s.client.SIsMember(ctx, unlockKeyPrefix+sessionKey, templateID).Result()
	if err != nil {
		slog.Warn("entitlement unlock lookup failed", "error", err)
	} else if unlocked {
		return true
	}

	return tmpl.Tier == models.TierFree
}

// Unlock records that the session owns the template. Idempotent: unlocking
// an already-unlocked template is a no-op. The write is synchronous so a
// download attempted immediately after a purchase sees the unlock.
func (s *Store) Unlock(ctx context.Context, sessionKey, templateID string) error {
	if s.catalog.ByID(templateID) == nil {
		return apperr.New(apperr.CodeNotFound, "unknown template: "+templateID)
	}

	key := unlockKeyPrefix + sessionKey
	pipe := s.client.TxPipeline()
	pipe.SAdd(ctx, key, templateID)
	pipe.Expire(ctx, key, entitlementTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Wrap(apperr.CodePurchaseFailed, "recording unlock", err)
	}
	return nil
}

// Unlocked returns the template IDs the session has explicitly unlocked.
func (s *Store) Unlocked(ctx context.Context, sessionKey string) ([]string, error) {
	return s.client.SMembers(ctx, unlockKeyPrefix+sessionKey).Result()
}

// HasSubscription reports whether the session has an active subscription.
// Read failures fail locked.
func (s *Store) HasSubscription(ctx context.Context, sessionKey string) bool {
	n, err := s.client.Exists(ctx, subKeyPrefix+sessionKey).Result()
	if err != nil {
		slog.Warn("entitlement subscription lookup failed", "error", err)
		return false
	}
	return n > 0
}

// SetSubscription marks the session as subscribed with the given plan.
func (s *Store) SetSubscription(ctx context.Context, sessionKey string, plan models.SubscriptionType) error {
	if plan == models.SubscriptionNone {
		return s.client.Del(ctx, subKeyPrefix+sessionKey).Err()
	}
	return s.client.Set(ctx, subKeyPrefix+sessionKey, string(plan), entitlementTTL).Err()
}

// PushRecentView records a template view at the head of the session's
// recently-viewed list, deduplicating and keeping at most recentViewLimit
// entries. Callers treat failures as best-effort.
func (s *Store) PushRecentView(ctx context.Context, sessionKey, templateID string) error {
	key := recentKeyPrefix + sessionKey
	pipe := s.client.TxPipeline()
	pipe.LRem(ctx, key, 0, templateID)
	pipe.LPush(ctx, key, templateID)
	pipe.LTrim(ctx, key, 0, recentViewLimit-1)
	pipe.Expire(ctx, key, entitlementTTL)
	_, err := pipe.Exec(ctx)
	return err
}

// RecentViews returns the session's recently-viewed template IDs, newest
// first.
func (s *Store) RecentViews(ctx context.Context, sessionKey string) ([]string, error) {
	return s.client.LRange(ctx, recentKeyPrefix+sessionKey, 0, recentViewLimit-1).Result()
}
