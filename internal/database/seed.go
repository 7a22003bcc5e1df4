package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"brandforge/internal/catalog"
	"brandforge/internal/store"
)

// Seed populates the database with initial development data: the baked-in
// template catalog and a demo account. Template rows are upserted, so
// re-running after a dataset change refreshes the catalog without
// duplicating records.
func Seed(db *sql.DB) error {
	templates := store.NewTemplateStore(db)
	for _, t := range catalog.Defaults() {
		if err := templates.Upsert(&t); err != nil {
			return fmt.Errorf("seed template %s: %w", t.ID, err)
		}
	}
	count, err := templates.Count()
	if err != nil {
		return fmt.Errorf("seed count templates: %w", err)
	}
	slog.Info("template catalog seeded", "count", count)

	// Create the demo account only once.
	var users int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&users); err != nil {
		return fmt.Errorf("seed check users: %w", err)
	}
	if users > 0 {
		slog.Info("users already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	code, err := store.NewReferralCode()
	if err != nil {
		return fmt.Errorf("seed referral code: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (email, password_hash, display_name, credits, referral_code)
		VALUES ($1, $2, $3, $4, $5)
	`, "demo@brandforge.local", string(hash), "Demo User", 5, code)
	if err != nil {
		return fmt.Errorf("seed insert demo user: %w", err)
	}

	slog.Info("database seeded with demo account",
		"email", "demo@brandforge.local",
		"password", "demo",
	)

	return nil
}
