// Package store provides database access methods for all BrandForge
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"math/big"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"brandforge/internal/models"
)

// ErrInsufficientCredits is returned by AddCredits when a debit would take
// the balance below zero.
var ErrInsufficientCredits = errors.New("insufficient credits")

// UserStore handles all user-related database operations.
type UserStore struct {
	db *sql.DB
}

// NewUserStore creates a new UserStore with the given database connection.
func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

const userColumns = `id, email, password_hash, display_name, subscription,
	credits, referral_code, referral_count, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.Subscription,
		&u.Credits, &u.ReferralCode, &u.ReferralCount, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// FindByEmail retrieves a user by their email address. Returns nil if not found.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(`
		SELECT `+userColumns+` FROM users WHERE email = $1
	`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return u, nil
}

// FindByID retrieves a user by their UUID. Returns nil if not found.
func (s *UserStore) FindByID(id uuid.UUID) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(`
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

// FindByReferralCode retrieves a user by their referral code. Returns nil if
// no account owns the code.
func (s *UserStore) FindByReferralCode(code string) (*models.User, error) {
	u, err := scanUser(s.db.QueryRow(`
		SELECT `+userColumns+` FROM users WHERE referral_code = $1
	`, code))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by referral code: %w", err)
	}
	return u, nil
}

// Create inserts a new user with a bcrypt-hashed password and a freshly
// generated referral code.
func (s *UserStore) Create(email, password, displayName string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	code, err := NewReferralCode()
	if err != nil {
		return nil, fmt.Errorf("referral code: %w", err)
	}

	u, err := scanUser(s.db.QueryRow(`
		INSERT INTO users (email, password_hash, display_name, referral_code)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userColumns+`
	`, email, string(hash), displayName, code))
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// SetSubscription updates the account's (mock) subscription plan.
func (s *UserStore) SetSubscription(userID uuid.UUID, plan models.SubscriptionType) error {
	_, err := s.db.Exec(`
		UPDATE users SET subscription = $1, updated_at = NOW() WHERE id = $2
	`, plan, userID)
	if err != nil {
		return fmt.Errorf("set subscription: %w", err)
	}
	return nil
}

// AddCredits adjusts the account's credit balance by delta (may be negative).
// Fails when the balance would go below zero.
func (s *UserStore) AddCredits(userID uuid.UUID, delta int) error {
	result, err := s.db.Exec(`
		UPDATE users SET credits = credits + $1, updated_at = NOW()
		WHERE id = $2 AND credits + $1 >= 0
	`, delta, userID)
	if err != nil {
		return fmt.Errorf("add credits: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("add credits: %w", ErrInsufficientCredits)
	}
	return nil
}

// RecordReferral increments the referral counter and grants the referral
// credit bonus in one statement.
func (s *UserStore) RecordReferral(userID uuid.UUID, bonusCredits int) error {
	_, err := s.db.Exec(`
		UPDATE users SET referral_count = referral_count + 1,
			credits = credits + $1, updated_at = NOW()
		WHERE id = $2
	`, bonusCredits, userID)
	if err != nil {
		return fmt.Errorf("record referral: %w", err)
	}
	return nil
}

// CheckPassword verifies a plaintext password against the user's stored hash.
func (s *UserStore) CheckPassword(user *models.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// referralAlphabet excludes easily-confused characters (0/O, 1/I).
const referralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// NewReferralCode generates a "BF"-prefixed six-character referral code.
func NewReferralCode() (string, error) {
	buf := make([]byte, 6)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(referralAlphabet))))
		if err != nil {
			return "", err
		}
		buf[i] = referralAlphabet[n.Int64()]
	}
	return "BF" + string(buf), nil
}
