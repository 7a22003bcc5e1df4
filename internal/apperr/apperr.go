// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package apperr defines the typed error taxonomy surfaced by BrandForge.
// Semantic failures (auth, not-found, invalid input) carry a machine code
// and a human message and are never retried; transient failures are retried
// by the caller and only wrapped into one of these after exhaustion.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a failure class. Codes are part of the API contract.
type Code string

const (
	CodeAuthRequired   Code = "AUTH_REQUIRED"
	CodeNotFound       Code = "NOT_FOUND"
	CodeInvalidInput   Code = "INVALID_INPUT"
	CodeLoadError      Code = "TEMPLATE_LOAD_ERROR"
	CodeDownloadFailed Code = "DOWNLOAD_FAILED"
	CodePurchaseFailed Code = "PURCHASE_FAILED"
)

// Error is a typed application error with a machine code and human message.
type Error struct {
	Code    Code
	Message string
	cause   error
}

// New creates a typed error.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates a typed error that records an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches two typed errors by code, so errors.Is(err, apperr.New(code, ""))
// style comparisons work regardless of message text.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// CodeOf extracts the code from an error chain, or empty string if the
// chain holds no typed error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HTTPStatus maps a failure code to the HTTP status the API responds with.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeAuthRequired:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
