// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"

	"brandforge/internal/database"
	"brandforge/internal/middleware"
	"brandforge/internal/models"
	"brandforge/internal/session"
	"brandforge/internal/store"
)

// newAccountAPI extends the test API with a real user store. Skips when
// Postgres is unavailable.
func newAccountAPI(t *testing.T) *API {
	t.Helper()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("POSTGRES_USER", "brandforge"),
		envOr("POSTGRES_PASSWORD", "changeme"),
		envOr("POSTGRES_HOST", "localhost"),
		envOr("POSTGRES_PORT", "5432"),
		envOr("POSTGRES_DB", "brandforge"),
	)
	db, err := database.Connect(dsn)
	if err != nil {
		t.Skipf("skipping integration test: Postgres not reachable: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	api := newTestAPI(t)
	api.Users = store.NewUserStore(db)
	api.Purchases = store.NewPurchaseStore(db)
	return api
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func uniqueEmail() string {
	return "test-" + uuid.NewString()[:8] + "@accounts.local"
}

func TestRegisterLoginFlow(t *testing.T) {
	api := newAccountAPI(t)
	email := uniqueEmail()

	w, env := doJSON(t, api.Register, "POST", "/api/account/register", "sess-reg",
		map[string]string{"email": email, "password": "hunter2hunter2", "displayName": "Tester"})
	if w.Code != http.StatusCreated {
		t.Fatalf("register status: %d, body %s", w.Code, w.Body.String())
	}

	var user models.User
	reencode(t, env.Data, &user)
	if user.Email != email {
		t.Errorf("email: got %s", user.Email)
	}
	if len(user.ReferralCode) != 8 || user.ReferralCode[:2] != "BF" {
		t.Errorf("referral code: got %q", user.ReferralCode)
	}
	if strings.Contains(w.Body.String(), "hunter2") || strings.Contains(w.Body.String(), "passwordHash") {
		t.Error("password material must never serialize")
	}

	// Duplicate registration is rejected.
	w2, env2 := doJSON(t, api.Register, "POST", "/api/account/register", "sess-reg2",
		map[string]string{"email": email, "password": "hunter2hunter2"})
	if w2.Code != http.StatusBadRequest || errCode(env2) != "INVALID_INPUT" {
		t.Errorf("duplicate register: status %d, code %s", w2.Code, errCode(env2))
	}

	// Login with the right password succeeds, wrong password fails closed.
	w3, _ := doJSON(t, api.Login, "POST", "/api/account/login", "sess-login",
		map[string]string{"email": email, "password": "hunter2hunter2"})
	if w3.Code != http.StatusOK {
		t.Errorf("login status: %d", w3.Code)
	}
	w4, env4 := doJSON(t, api.Login, "POST", "/api/account/login", "sess-login",
		map[string]string{"email": email, "password": "wrong-password"})
	if w4.Code != http.StatusForbidden || errCode(env4) != "AUTH_REQUIRED" {
		t.Errorf("bad login: status %d, code %s", w4.Code, errCode(env4))
	}
}

func TestRegisterValidation(t *testing.T) {
	api := newAccountAPI(t)

	cases := []map[string]string{
		{"email": "", "password": "hunter2hunter2"},
		{"email": "not-an-email", "password": "hunter2hunter2"},
		{"email": uniqueEmail(), "password": "short"},
	}
	for i, body := range cases {
		w, env := doJSON(t, api.Register, "POST", "/api/account/register", "sess-reg", body)
		if w.Code != http.StatusBadRequest || errCode(env) != "INVALID_INPUT" {
			t.Errorf("case %d: status %d, code %s", i, w.Code, errCode(env))
		}
	}
}

func TestReferralCredit(t *testing.T) {
	api := newAccountAPI(t)

	// Referrer signs up first.
	_, env := doJSON(t, api.Register, "POST", "/api/account/register", "sess-a",
		map[string]string{"email": uniqueEmail(), "password": "hunter2hunter2"})
	var referrer models.User
	reencode(t, env.Data, &referrer)

	// A friend registers with the referrer's code.
	w, _ := doJSON(t, api.Register, "POST", "/api/account/register", "sess-b",
		map[string]string{
			"email":        uniqueEmail(),
			"password":     "hunter2hunter2",
			"referralCode": referrer.ReferralCode,
		})
	if w.Code != http.StatusCreated {
		t.Fatalf("referred register: %d", w.Code)
	}

	updated, err := api.Users.FindByID(referrer.ID)
	if err != nil || updated == nil {
		t.Fatalf("reload referrer: %v", err)
	}
	if updated.ReferralCount != referrer.ReferralCount+1 {
		t.Errorf("referral count: got %d, want %d", updated.ReferralCount, referrer.ReferralCount+1)
	}
	if updated.Credits != referrer.Credits+referralBonusCredits {
		t.Errorf("credits: got %d, want %d", updated.Credits, referrer.Credits+referralBonusCredits)
	}
}

func TestReferralEndpointAndQR(t *testing.T) {
	api := newAccountAPI(t)

	_, env := doJSON(t, api.Register, "POST", "/api/account/register", "sess-a",
		map[string]string{"email": uniqueEmail(), "password": "hunter2hunter2"})
	var user models.User
	reencode(t, env.Data, &user)

	get := func(handler http.HandlerFunc, target string) *httptest.ResponseRecorder {
		r := httptest.NewRequest("GET", target, nil)
		data := &session.Data{Key: "sess-a", UserID: user.ID, Email: user.Email}
		r = r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, data))
		w := httptest.NewRecorder()
		handler(w, r)
		return w
	}

	w := get(api.Referral, "/api/account/referral")
	if w.Code != http.StatusOK {
		t.Fatalf("referral status: %d, body %s", w.Code, w.Body.String())
	}
	var env2 envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env2); err != nil {
		t.Fatalf("decode: %v", err)
	}
	var info referralInfo
	reencode(t, env2.Data, &info)
	if info.Code != user.ReferralCode {
		t.Errorf("code: got %s, want %s", info.Code, user.ReferralCode)
	}
	if !strings.Contains(info.Link, "?ref="+user.ReferralCode) {
		t.Errorf("link: got %s", info.Link)
	}

	qr := get(api.ReferralQR, "/api/account/referral-qr")
	if qr.Code != http.StatusOK {
		t.Fatalf("qr status: %d", qr.Code)
	}
	if ct := qr.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("qr content type: %q", ct)
	}
	if !bytes.HasPrefix(qr.Body.Bytes(), []byte("\x89PNG")) {
		t.Error("qr body is not a PNG")
	}
}

// doAuthJSON performs a handler call carrying an account-bound session.
func doAuthJSON(t *testing.T, api *API, handler http.HandlerFunc, target, sessionKey string, user *models.User, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	r := httptest.NewRequest("POST", target, &buf)
	data := &session.Data{Key: sessionKey, UserID: user.ID, Email: user.Email}
	r = r.WithContext(context.WithValue(r.Context(), middleware.SessionKey, data))
	w := httptest.NewRecorder()
	handler(w, r)

	var env envelope
	if ct := w.Header().Get("Content-Type"); ct == "application/json; charset=utf-8" {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode envelope: %v\nbody: %s", err, w.Body.String())
		}
	}
	return w, env
}

func TestUnlockWithCredits(t *testing.T) {
	api := newAccountAPI(t)

	_, env := doJSON(t, api.Register, "POST", "/api/account/register", "sess-credit",
		map[string]string{"email": uniqueEmail(), "password": "hunter2hunter2"})
	var user models.User
	reencode(t, env.Data, &user)

	// Two unlocks' worth of earned credits.
	if err := api.Users.AddCredits(user.ID, 2*creditUnlockCost); err != nil {
		t.Fatalf("AddCredits: %v", err)
	}

	unlock := func(templateID string) (*httptest.ResponseRecorder, envelope) {
		return doAuthJSON(t, api, api.UnlockWithCredits, "/api/templates/unlock-with-credits",
			"sess-credit", &user, map[string]string{"templateId": templateID})
	}

	w, env2 := unlock("premium_04")
	if w.Code != http.StatusOK {
		t.Fatalf("unlock status: %d, body %s", w.Code, w.Body.String())
	}
	var receipt creditUnlockReceipt
	reencode(t, env2.Data, &receipt)
	if receipt.CreditsSpent != creditUnlockCost || receipt.AlreadyUnlocked {
		t.Errorf("receipt: %+v", receipt)
	}
	if !api.Entitlements.IsUnlocked(context.Background(), "sess-credit", "premium_04") {
		t.Error("credit unlock must land in the entitlement store")
	}

	// Re-unlocking an owned template spends nothing.
	_, env3 := unlock("premium_04")
	var again creditUnlockReceipt
	reencode(t, env3.Data, &again)
	if !again.AlreadyUnlocked || again.CreditsSpent != 0 {
		t.Errorf("repeat unlock: %+v", again)
	}

	// The second batch of credits covers one more template, then the
	// balance runs dry.
	if w, _ := unlock("premium_05"); w.Code != http.StatusOK {
		t.Fatalf("second unlock: %d", w.Code)
	}
	w4, env4 := unlock("premium_06")
	if w4.Code != http.StatusBadRequest || errCode(env4) != "INVALID_INPUT" {
		t.Errorf("broke unlock: status %d, code %s", w4.Code, errCode(env4))
	}
	if api.Entitlements.IsUnlocked(context.Background(), "sess-credit", "premium_06") {
		t.Error("a failed debit must not unlock")
	}

	balance, err := api.Users.FindByID(user.ID)
	if err != nil || balance == nil {
		t.Fatalf("reload user: %v", err)
	}
	if balance.Credits != user.Credits {
		t.Errorf("credits: got %d, want %d back where it started", balance.Credits, user.Credits)
	}
}

func TestUnlockWithCreditsValidation(t *testing.T) {
	api := newAccountAPI(t)

	_, env := doJSON(t, api.Register, "POST", "/api/account/register", "sess-credit",
		map[string]string{"email": uniqueEmail(), "password": "hunter2hunter2"})
	var user models.User
	reencode(t, env.Data, &user)

	w, env2 := doAuthJSON(t, api, api.UnlockWithCredits, "/api/templates/unlock-with-credits",
		"sess-credit", &user, map[string]string{"templateId": "free_template_1"})
	if w.Code != http.StatusBadRequest || errCode(env2) != "INVALID_INPUT" {
		t.Errorf("free template: status %d, code %s", w.Code, errCode(env2))
	}

	w3, env3 := doAuthJSON(t, api, api.UnlockWithCredits, "/api/templates/unlock-with-credits",
		"sess-credit", &user, map[string]string{"templateId": "nope"})
	if w3.Code != http.StatusNotFound || errCode(env3) != "NOT_FOUND" {
		t.Errorf("unknown template: status %d, code %s", w3.Code, errCode(env3))
	}

	// Anonymous sessions have no credit balance to spend.
	w4, env4 := doJSON(t, api.UnlockWithCredits, "POST", "/api/templates/unlock-with-credits",
		"sess-anon", map[string]string{"templateId": "premium_04"})
	if w4.Code != http.StatusForbidden || errCode(env4) != "AUTH_REQUIRED" {
		t.Errorf("anonymous: status %d, code %s", w4.Code, errCode(env4))
	}
}

func TestAccountEndpointsWithoutDatabase(t *testing.T) {
	api := newTestAPI(t)
	for name, h := range map[string]http.HandlerFunc{
		"register": api.Register,
		"login":    api.Login,
		"me":       api.Me,
		"referral": api.Referral,
	} {
		w, env := doJSON(t, h, "POST", "/api/account/"+name, "sess-1",
			map[string]string{"email": "a@b.c", "password": "hunter2hunter2"})
		if w.Code != http.StatusNotFound || errCode(env) != "NOT_FOUND" {
			t.Errorf("%s: status %d, code %s", name, w.Code, errCode(env))
		}
	}
}
