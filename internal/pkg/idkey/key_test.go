package idkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/epickup/epickup-backend/internal/pkg/models"
)

func TestDerive_Deterministic(t *testing.T) {
	first, err := Derive("+919876543210", models.RoleCustomer)
	require.NoError(t, err)

	second, err := Derive("+919876543210", models.RoleCustomer)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same (phone, role) must always yield the same key")
	assert.Len(t, first, 28)
}

func TestDerive_RoleSeparation(t *testing.T) {
	phone := "+919876543210"
	roles := []models.Role{models.RoleCustomer, models.RoleDriver, models.RoleAdmin}

	seen := make(map[string]models.Role)
	for _, role := range roles {
		key, err := Derive(phone, role)
		require.NoError(t, err)

		prev, dup := seen[key]
		assert.False(t, dup, "roles %s and %s collided on key %s", prev, role, key)
		seen[key] = role
	}
	assert.Len(t, seen, len(roles))
}

func TestDerive_DifferentPhones(t *testing.T) {
	a, err := Derive("+919876543210", models.RoleDriver)
	require.NoError(t, err)

	b, err := Derive("+919876543211", models.RoleDriver)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestDerive_FirstCharacterIsLetter(t *testing.T) {
	// Exercise a spread of phones; every derived key must start with a
	// letter regardless of what the digest happens to open with.
	phones := []string{
		"+919876543210", "+919876543211", "+919812345678",
		"+628123456789", "+14155550123", "+447911123456",
		"+919000000001", "+919000000002", "+919000000003",
	}
	for _, phone := range phones {
		for _, role := range []models.Role{models.RoleCustomer, models.RoleDriver, models.RoleAdmin} {
			key, err := Derive(phone, role)
			require.NoError(t, err)
			c := key[0]
			assert.True(t, (c >= 'a' && c <= 'z'), "key %q for %s/%s starts with %q", key, phone, role, c)
		}
	}
}

func TestDerive_EmptyPhone(t *testing.T) {
	_, err := Derive("", models.RoleCustomer)
	assert.ErrorIs(t, err, ErrEmptyPhone)
}

func TestDerive_InvalidRole(t *testing.T) {
	cases := []models.Role{"", "passenger", "CUSTOMER", "superadmin"}
	for _, role := range cases {
		_, err := Derive("+919876543210", role)
		assert.ErrorIs(t, err, ErrInvalidRole, "role %q must be rejected, not defaulted", role)
	}
}
