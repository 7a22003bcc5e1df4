// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/skip2/go-qrcode"

	"brandforge/internal/apperr"
	"brandforge/internal/middleware"
	"brandforge/internal/models"
)

const (
	minPasswordLen = 8
	// referralBonusCredits is granted to the referrer per signup.
	referralBonusCredits = 3
)

// requireUsers guards the account endpoints when Postgres is absent.
func (a *API) requireUsers(w http.ResponseWriter) bool {
	if a.Users == nil {
		writeError(w, apperr.New(apperr.CodeNotFound, "accounts are not available"))
		return false
	}
	return true
}

type registerRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	DisplayName  string `json:"displayName"`
	ReferralCode string `json:"referralCode"`
}

// Register serves POST /api/account/register. The new account is bound to
// the current session, so anonymous unlocks carry over. An optional
// referral code credits its owner.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	if !a.requireUsers(w) {
		return
	}
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "valid email is required"))
		return
	}
	if len(req.Password) < minPasswordLen {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "password must be at least 8 characters"))
		return
	}

	existing, err := a.Users.FindByEmail(email)
	if err != nil {
		writeError(w, err)
		return
	}
	if existing != nil {
		writeError(w, apperr.New(apperr.CodeInvalidInput, "email is already registered"))
		return
	}

	user, err := a.Users.Create(email, req.Password, strings.TrimSpace(req.DisplayName))
	if err != nil {
		writeError(w, err)
		return
	}

	if code := strings.ToUpper(strings.TrimSpace(req.ReferralCode)); code != "" {
		a.creditReferrer(code, user)
	}

	if err := a.bindSession(r, user); err != nil {
		slog.Warn("session bind failed after register", "error", err)
	}
	writeJSON(w, http.StatusCreated, user)
}

// creditReferrer grants the referral bonus to the code's owner.
// Best-effort: a bad code does not fail the registration.
func (a *API) creditReferrer(code string, newUser *models.User) {
	referrer, err := a.Users.FindByReferralCode(code)
	if err != nil || referrer == nil {
		slog.Warn("referral code not honored", "code", code, "error", err)
		return
	}
	if referrer.ID == newUser.ID {
		return
	}
	if err := a.Users.RecordReferral(referrer.ID, referralBonusCredits); err != nil {
		slog.Warn("referral credit failed", "referrer", referrer.ID, "error", err)
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login serves POST /api/account/login.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	if !a.requireUsers(w) {
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	user, err := a.Users.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil || !a.Users.CheckPassword(user, req.Password) {
		// Same answer for unknown email and wrong password.
		writeError(w, apperr.New(apperr.CodeAuthRequired, "invalid email or password"))
		return
	}

	if err := a.bindSession(r, user); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// bindSession attaches the account identity to the current session.
func (a *API) bindSession(r *http.Request, user *models.User) error {
	sess := middleware.SessionFromCtx(r.Context())
	if sess == nil {
		return apperr.New(apperr.CodeAuthRequired, "no session")
	}
	sess.UserID = user.ID
	sess.Email = user.Email
	sess.DisplayName = user.DisplayName
	return a.Sessions.Update(r.Context(), sess)
}

// Logout serves POST /api/account/logout, destroying the session entirely.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.Sessions.Destroy(r.Context(), w, r); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Me serves GET /api/account: the current account.
func (a *API) Me(w http.ResponseWriter, r *http.Request) {
	if !a.requireUsers(w) {
		return
	}
	sess := middleware.SessionFromCtx(r.Context())
	user, err := a.Users.FindByID(sess.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeError(w, apperr.New(apperr.CodeNotFound, "account no longer exists"))
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// referralInfo is the payload of the referral endpoint.
type referralInfo struct {
	Code  string `json:"code"`
	Link  string `json:"link"`
	Count int    `json:"count"`
}

// Referral serves GET /api/account/referral: the account's code, shareable
// link and referral count.
func (a *API) Referral(w http.ResponseWriter, r *http.Request) {
	if !a.requireUsers(w) {
		return
	}
	sess := middleware.SessionFromCtx(r.Context())
	user, err := a.Users.FindByID(sess.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeError(w, apperr.New(apperr.CodeNotFound, "account no longer exists"))
		return
	}

	writeJSON(w, http.StatusOK, referralInfo{
		Code:  user.ReferralCode,
		Link:  a.referralLink(user.ReferralCode),
		Count: user.ReferralCount,
	})
}

// ReferralQR serves GET /api/account/referral-qr: the referral link as a
// PNG QR code for sharing offline.
func (a *API) ReferralQR(w http.ResponseWriter, r *http.Request) {
	if !a.requireUsers(w) {
		return
	}
	sess := middleware.SessionFromCtx(r.Context())
	user, err := a.Users.FindByID(sess.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	if user == nil {
		writeError(w, apperr.New(apperr.CodeNotFound, "account no longer exists"))
		return
	}

	png, err := qrcode.Encode(a.referralLink(user.ReferralCode), qrcode.Medium, 256)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

func (a *API) referralLink(code string) string {
	return strings.TrimRight(a.BaseURL, "/") + "/?ref=" + code
}
