// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewStore(client, false)
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("expected session cookie to be set")
	return nil
}

func TestEnsureCreatesAnonymousSession(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/templates", nil)

	data, err := store.Ensure(ctx, w, r)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if data.Key == "" {
		t.Error("expected a session key")
	}
	if data.Authenticated() {
		t.Error("fresh session must be anonymous")
	}

	cookie := sessionCookie(t, w)
	if !cookie.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
	if cookie.Value != data.Key {
		t.Error("cookie must carry the session key")
	}

	// A second request with the cookie resolves to the same session.
	w2 := httptest.NewRecorder()
	r2 := httptest.NewRequest("GET", "/api/templates", nil)
	r2.AddCookie(cookie)

	again, err := store.Ensure(ctx, w2, r2)
	if err != nil {
		t.Fatalf("Ensure #2: %v", err)
	}
	if again.Key != data.Key {
		t.Errorf("session key changed: %s -> %s", data.Key, again.Key)
	}
	if len(w2.Result().Cookies()) != 0 {
		t.Error("existing session must not reset the cookie")
	}
}

func TestUpdateBindsAccount(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	data, err := store.Create(ctx, w, &Data{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	data.UserID = uuid.New()
	data.Email = "demo@brandforge.local"
	data.DisplayName = "Demo"
	if err := store.Update(ctx, data); err != nil {
		t.Fatalf("Update: %v", err)
	}

	r := httptest.NewRequest("GET", "/", nil)
	r.AddCookie(sessionCookie(t, w))
	got, err := store.Get(ctx, r)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || !got.Authenticated() {
		t.Fatalf("expected authenticated session, got %+v", got)
	}
	if got.Email != "demo@brandforge.local" {
		t.Errorf("email: got %q", got.Email)
	}
}

func TestGetNoCookie(t *testing.T) {
	store := testStore(t)
	data, err := store.Get(context.Background(), httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil session, got %+v", data)
	}
}

func TestDestroy(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	w := httptest.NewRecorder()
	if _, err := store.Create(ctx, w, &Data{}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	cookie := sessionCookie(t, w)

	r := httptest.NewRequest("POST", "/api/account/logout", nil)
	r.AddCookie(cookie)
	w2 := httptest.NewRecorder()
	if err := store.Destroy(ctx, w2, r); err != nil {
		t.Fatalf("Destroy: %v", err)
	}

	got, err := store.Get(ctx, r)
	if err != nil {
		t.Fatalf("Get after destroy: %v", err)
	}
	if got != nil {
		t.Error("session should be gone after destroy")
	}

	cleared := sessionCookie(t, w2)
	if cleared.MaxAge != -1 {
		t.Error("destroy must expire the cookie")
	}
}
