package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/epickup/epickup-backend/internal/pkg/apperrors"
	"github.com/epickup/epickup-backend/internal/pkg/models"
	"github.com/epickup/epickup-backend/internal/utils"
)

// GetAccount loads an account record by its identity key
func (u *IdentityUC) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	account, err := u.accountRepo.GetAccount(ctx, id)
	if err != nil {
		if apperrors.HasCode(err, apperrors.CodeAccountNotFound) {
			return nil, err
		}
		return nil, apperrors.UpstreamUnavailable(err)
	}
	return account, nil
}

// RolesForPhone lists every role-scoped identity a phone number holds.
func (u *IdentityUC) RolesForPhone(ctx context.Context, phone string) ([]models.RoleEntry, error) {
	normalized, err := utils.NormalizePhone(phone)
	if err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	accounts, err := u.accountRepo.GetAccountsByPhone(ctx, normalized)
	if err != nil {
		return nil, apperrors.UpstreamUnavailable(err)
	}

	entries := make([]models.RoleEntry, 0, len(accounts))
	for _, account := range accounts {
		entries = append(entries, models.RoleEntry{
			Role: account.Role,
			UID:  account.ID,
		})
	}
	return entries, nil
}

// SetDriverAvailability flips the availability flag inside a driver's
// role payload without disturbing its other fields.
func (u *IdentityUC) SetDriverAvailability(ctx context.Context, id string, available bool) (*models.Account, error) {
	account, err := u.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}
	if account.Role != models.RoleDriver {
		return nil, apperrors.Forbidden()
	}

	var payload models.DriverPayload
	if len(account.Payload) > 0 {
		if err := json.Unmarshal(account.Payload, &payload); err != nil {
			return nil, apperrors.Internal(errors.New("corrupt driver payload"))
		}
	}
	payload.IsAvailable = available

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if err := u.accountRepo.UpdateRolePayload(ctx, id, raw); err != nil {
		return nil, apperrors.UpstreamUnavailable(err)
	}

	account.Payload = raw
	return account, nil
}

// SetAccountActive activates or deactivates an account. Deactivation is a
// flag: the record survives and the token exchange starts failing with an
// inactive-account error.
func (u *IdentityUC) SetAccountActive(ctx context.Context, id string, active bool) (*models.Account, error) {
	if err := u.accountRepo.SetAccountActive(ctx, id, active); err != nil {
		if apperrors.HasCode(err, apperrors.CodeAccountNotFound) {
			return nil, err
		}
		return nil, apperrors.UpstreamUnavailable(err)
	}
	return u.GetAccount(ctx, id)
}
