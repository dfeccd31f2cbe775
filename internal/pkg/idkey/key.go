// Package idkey derives the deterministic identity key that lets one phone
// number hold independent customer, driver and admin accounts without
// collision. The key is a stable, non-secret identifier: anyone who knows
// the phone and role can recompute it, so no authorization decision may
// rely on it being unguessable.
package idkey

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/epickup/epickup-backend/internal/pkg/models"
)

const (
	// keyLength matches the width of Firebase-style UIDs so derived keys
	// fit the same key-space as oracle subjects.
	keyLength = 28

	separator = ":"

	// sentinel replaces a leading digit; store keys must start with a letter.
	sentinel = 'u'
)

var (
	// ErrEmptyPhone is returned when no phone number is supplied.
	ErrEmptyPhone = errors.New("phone number is required")

	// ErrInvalidRole is returned for a role outside the closed set. The
	// derivation never falls back to a default role.
	ErrInvalidRole = errors.New("invalid role for key derivation")
)

// Derive maps (phone, role) to the stable account key. Pure and
// deterministic: same input yields the same key across restarts, distinct
// roles for one phone yield distinct keys.
func Derive(phone string, role models.Role) (string, error) {
	if phone == "" {
		return "", ErrEmptyPhone
	}
	if !role.Valid() {
		return "", ErrInvalidRole
	}

	sum := sha256.Sum256([]byte(phone + separator + role.String()))
	key := hex.EncodeToString(sum[:])[:keyLength]

	if key[0] >= '0' && key[0] <= '9' {
		key = string(sentinel) + key[1:]
	}
	return key, nil
}
