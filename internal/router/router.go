// Package router sets up all HTTP routes and middleware chains for the
// BrandForge API server. API routes share a rate-limited, session-aware
// middleware stack; metrics and health sit outside it.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"

	"brandforge/internal/handlers"
	"brandforge/internal/metrics"
	"brandforge/internal/middleware"
	"brandforge/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(sessionStore *session.Store, api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health and metrics need neither sessions nor rate limiting.
	r.Get("/health", api.Health)
	r.Method("GET", "/metrics", metrics.Handler())

	limiter := middleware.NewRateLimiter(120, time.Minute)

	r.Route("/api", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Use(middleware.EnsureSession(sessionStore))

		// Catalog browsing and generation.
		r.Get("/templates", api.ListTemplates)
		r.Get("/template-metadata", api.TemplateMetadata)
		r.Post("/templates/pick", api.PickTemplate)
		r.Post("/generate", api.Generate)
		r.Get("/recent-views", api.RecentViews)

		// Purchase and download workflow.
		r.Post("/templates/purchase", api.PurchaseTemplate)
		r.Post("/templates/unlock-with-credits", api.UnlockWithCredits)
		r.Post("/subscribe", api.Subscribe)
		r.Post("/verify-payment", api.VerifyPayment)
		r.Post("/download-template", api.DownloadTemplate)
		r.Get("/purchases", api.PurchaseHistory)

		// Accounts.
		r.Route("/account", func(r chi.Router) {
			r.Post("/register", api.Register)
			r.Post("/login", api.Login)
			r.Post("/logout", api.Logout)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAccount)
				r.Get("/", api.Me)
				r.Get("/referral", api.Referral)
				r.Get("/referral-qr", api.ReferralQR)
			})
		})
	})

	return r
}
