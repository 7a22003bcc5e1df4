// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package workflow

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"

	"brandforge/internal/apperr"
)

const (
	// fetchAttempts bounds the total tries for one download, counting the
	// first. Only network-class failures consume retries; semantic failures
	// (auth, not-found) abort immediately.
	fetchAttempts = 3
	// defaultFetchDelay is the first retry delay; it doubles per attempt.
	defaultFetchDelay = time.Second
	// maxBundleSize caps a remote bundle at 100 MiB.
	maxBundleSize = 100 << 20
)

// Fetcher downloads template bundles from remote URLs with a bounded
// exponential-backoff retry for transient failures.
type Fetcher struct {
	Client    *http.Client
	BaseDelay time.Duration // zero means defaultFetchDelay
	MaxSize   int64         // zero means maxBundleSize
}

// Fetch retrieves the bundle at url. The returned filename comes from the
// Content-Disposition header when present; callers fall back to a derived
// name otherwise. Authorization failures surface as AUTH_REQUIRED, missing
// bundles as NOT_FOUND; neither is ever retried.
func (f *Fetcher) Fetch(ctx context.Context, url string) (body []byte, filename string, err error) {
	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	base := f.BaseDelay
	if base == 0 {
		base = defaultFetchDelay
	}
	maxSize := f.MaxSize
	if maxSize == 0 {
		maxSize = maxBundleSize
	}

	backoff := retry.WithMaxRetries(fetchAttempts-1, retry.NewExponential(base))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return apperr.Wrap(apperr.CodeDownloadFailed, "building download request", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			slog.Warn("bundle fetch failed", "url", url, "error", err)
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return apperr.New(apperr.CodeAuthRequired, "not authorized to download this template")
		case resp.StatusCode == http.StatusNotFound:
			return apperr.New(apperr.CodeNotFound, "template bundle not found")
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			slog.Warn("bundle fetch failed", "url", url, "status", resp.StatusCode)
			return retry.RetryableError(fmt.Errorf("bundle fetch: status %d", resp.StatusCode))
		default:
			return apperr.New(apperr.CodeDownloadFailed,
				fmt.Sprintf("bundle fetch: unexpected status %d", resp.StatusCode))
		}

		// Read one byte past the cap so an oversized bundle is detected
		// instead of silently truncated into a corrupt ZIP.
		data, err := io.ReadAll(io.LimitReader(resp.Body, maxSize+1))
		if err != nil {
			// A connection dropped mid-body is as transient as a failed dial.
			slog.Warn("bundle read failed", "url", url, "error", err)
			return retry.RetryableError(err)
		}
		if int64(len(data)) > maxSize {
			return apperr.New(apperr.CodeDownloadFailed,
				fmt.Sprintf("bundle exceeds the %d byte limit", maxSize))
		}

		body = data
		filename = dispositionFilename(resp.Header.Get("Content-Disposition"))
		return nil
	})
	if err != nil {
		if apperr.CodeOf(err) != "" {
			return nil, "", err
		}
		return nil, "", apperr.Wrap(apperr.CodeDownloadFailed, "download failed after retries", err)
	}
	return body, filename, nil
}

// dispositionFilename extracts the filename parameter from a
// Content-Disposition header, or "" when absent or malformed.
func dispositionFilename(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
