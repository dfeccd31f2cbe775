package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/epickup/epickup-backend/internal/pkg/apperrors"
	"github.com/epickup/epickup-backend/internal/pkg/models"
)

// GetAccount retrieves an account record by its identity key
func (r *AccountRepo) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	query := `
		SELECT id, original_uid, phone_number, full_name, role,
			is_verified, is_active, created_at, updated_at, last_login_at, payload
		FROM accounts
		WHERE id = $1
	`

	var account models.Account
	err := r.db.GetContext(ctx, &account, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.AccountNotFound()
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}

// CreateAccount inserts a new account record keyed by the identity key.
// A concurrent create for the same key is not an error: the insert is
// skipped and false is returned so the caller re-reads the surviving row.
func (r *AccountRepo) CreateAccount(ctx context.Context, account *models.Account) (bool, error) {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	account.LastLoginAt = now

	query := `
		INSERT INTO accounts (id, original_uid, phone_number, full_name, role,
			is_verified, is_active, created_at, updated_at, last_login_at, payload
		) VALUES (:id, :original_uid, :phone_number, :full_name, :role,
			:is_verified, :is_active, :created_at, :updated_at, :last_login_at, :payload)
		ON CONFLICT (id) DO NOTHING
	`
	result, err := r.db.NamedExecContext(ctx, query, account)
	if err != nil {
		return false, fmt.Errorf("failed to insert account: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return rows > 0, nil
}

// TouchLastLogin updates the last-seen timestamp for an existing account
func (r *AccountRepo) TouchLastLogin(ctx context.Context, id string) error {
	query := `UPDATE accounts SET last_login_at = $2, updated_at = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, time.Now()); err != nil {
		return fmt.Errorf("failed to touch last login: %w", err)
	}
	return nil
}

// GetAccountsByPhone lists every role-scoped account a phone number holds
func (r *AccountRepo) GetAccountsByPhone(ctx context.Context, phone string) ([]*models.Account, error) {
	query := `
		SELECT id, original_uid, phone_number, full_name, role,
			is_verified, is_active, created_at, updated_at, last_login_at, payload
		FROM accounts
		WHERE phone_number = $1
		ORDER BY created_at
	`

	var accounts []*models.Account
	if err := r.db.SelectContext(ctx, &accounts, query, phone); err != nil {
		return nil, fmt.Errorf("failed to list accounts by phone: %w", err)
	}
	return accounts, nil
}

// SetAccountActive flips the active flag. Deactivation is a flag, never a
// deletion; the record and its key survive.
func (r *AccountRepo) SetAccountActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE accounts SET is_active = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, active, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update account active flag: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return apperrors.AccountNotFound()
	}
	return nil
}

// UpdateRolePayload replaces the role-specific payload object
func (r *AccountRepo) UpdateRolePayload(ctx context.Context, id string, payload json.RawMessage) error {
	query := `UPDATE accounts SET payload = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, payload, time.Now())
	if err != nil {
		return fmt.Errorf("failed to update role payload: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return apperrors.AccountNotFound()
	}
	return nil
}
