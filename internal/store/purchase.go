// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"brandforge/internal/models"
)

// PurchaseStore records completed mock payments.
type PurchaseStore struct {
	db *sql.DB
}

// NewPurchaseStore creates a new PurchaseStore with the given database connection.
func NewPurchaseStore(db *sql.DB) *PurchaseStore {
	return &PurchaseStore{db: db}
}

// Create inserts a purchase record and returns it with the generated ID.
func (s *PurchaseStore) Create(p *models.Purchase) (*models.Purchase, error) {
	result := &models.Purchase{}
	err := s.db.QueryRow(`
		INSERT INTO purchases (session_key, template_id, transaction_id,
			payment_method, amount_cents, email)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, session_key, template_id, transaction_id,
			payment_method, amount_cents, email, created_at
	`, p.SessionKey, p.TemplateID, p.TransactionID, p.PaymentMethod,
		p.AmountCents, p.Email).Scan(
		&result.ID, &result.SessionKey, &result.TemplateID, &result.TransactionID,
		&result.PaymentMethod, &result.AmountCents, &result.Email, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create purchase: %w", err)
	}
	return result, nil
}

// ListBySession returns all purchases made under a session key, newest first.
func (s *PurchaseStore) ListBySession(sessionKey string) ([]models.Purchase, error) {
	rows, err := s.db.Query(`
		SELECT id, session_key, template_id, transaction_id,
			payment_method, amount_cents, email, created_at
		FROM purchases WHERE session_key = $1
		ORDER BY created_at DESC
	`, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.Purchase
	for rows.Next() {
		var p models.Purchase
		if err := rows.Scan(
			&p.ID, &p.SessionKey, &p.TemplateID, &p.TransactionID,
			&p.PaymentMethod, &p.AmountCents, &p.Email, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}
