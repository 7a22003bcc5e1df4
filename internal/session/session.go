// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package session provides Valkey-backed HTTP session management.
// Sessions are anonymous-first: every visitor gets one on first contact,
// identified by a secure cookie, and it later carries the account identity
// when the visitor registers or logs in. Entitlements and recent views key
// off the session, so anonymous purchases survive a login.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// CookieName is the name of the session cookie sent to the browser.
	CookieName = "bf_session"

	// DefaultTTL matches the entitlement retention window so unlocks never
	// outlive the session that owns them.
	DefaultTTL = 30 * 24 * time.Hour

	// keyPrefix namespaces session keys in Valkey to avoid collisions.
	keyPrefix = "bf:session:"

	// idLength is the byte length of the random session ID (32 bytes = 64 hex chars).
	idLength = 32
)

// Data holds the session payload stored in Valkey. Key is the session's
// own identifier; the account fields stay zero for anonymous visitors.
type Data struct {
	Key         string    `json:"key"`
	UserID      uuid.UUID `json:"user_id,omitempty"`
	Email       string    `json:"email,omitempty"`
	DisplayName string    `json:"display_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Authenticated reports whether the session is bound to an account.
func (d *Data) Authenticated() bool {
	return d.UserID != uuid.Nil
}

// Store manages session lifecycle in Valkey.
type Store struct {
	client *redis.Client
	ttl    time.Duration
	secure bool
}

// NewStore creates a session store backed by the given Valkey client.
// secure controls the cookie's Secure flag; set it behind TLS.
func NewStore(client *redis.Client, secure bool) *Store {
	return &Store{
		client: client,
		ttl:    DefaultTTL,
		secure: secure,
	}
}

// Ensure returns the request's session, creating an anonymous one (and
// setting the cookie) when none exists or the stored payload is gone.
func (s *Store) Ensure(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Data, error) {
	data, err := s.Get(ctx, r)
	if err != nil {
		return nil, err
	}
	if data != nil {
		return data, nil
	}
	return s.Create(ctx, w, &Data{})
}

// Create generates a new session, stores it in Valkey, and sets the
// session cookie on the response.
func (s *Store) Create(ctx context.Context, w http.ResponseWriter, data *Data) (*Data, error) {
	id, err := generateID()
	if err != nil {
		return nil, fmt.Errorf("session create: %w", err)
	}

	data.Key = id
	data.CreatedAt = time.Now()

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("session marshal: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+id, payload, s.ttl).Err(); err != nil {
		return nil, fmt.Errorf("session store: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	})

	return data, nil
}

// Get retrieves session data from Valkey using the session ID from the
// request cookie. Returns nil if no valid session exists.
func (s *Store) Get(ctx context.Context, r *http.Request) (*Data, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil, nil // No cookie = no session (not an error)
	}

	payload, err := s.client.Get(ctx, keyPrefix+cookie.Value).Bytes()
	if err == redis.Nil {
		return nil, nil // Session expired or doesn't exist
	}
	if err != nil {
		return nil, fmt.Errorf("session get: %w", err)
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("session unmarshal: %w", err)
	}

	return &data, nil
}

// Update replaces the session payload in Valkey without changing the
// session key or cookie. Resets the TTL. Used when an anonymous session
// picks up an account identity.
func (s *Store) Update(ctx context.Context, data *Data) error {
	if data.Key == "" {
		return fmt.Errorf("session update: no key")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("session marshal: %w", err)
	}

	if err := s.client.Set(ctx, keyPrefix+data.Key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("session update: %w", err)
	}

	return nil
}

// Destroy removes the session from Valkey and clears the cookie.
func (s *Store) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil // No cookie, nothing to destroy
	}

	s.client.Del(ctx, keyPrefix+cookie.Value)

	// Expire the cookie immediately.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	return nil
}

// generateID creates a cryptographically random session identifier.
func generateID() (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
