package models

import (
	"encoding/json"
	"errors"
	"time"
)

// ErrUnknownPayloadRole is returned when a payload is requested for a role
// outside the closed set.
var ErrUnknownPayloadRole = errors.New("no payload shape for role")

// Account represents one role-scoped identity. The ID is the deterministic
// identity key derived from (phone, role); the raw Firebase UID is kept for
// audit only and never used for lookups. Role is immutable after creation:
// the key encodes it, so a role change means a new record under a new key.
type Account struct {
	ID          string          `json:"uid" db:"id"`
	OriginalUID string          `json:"original_uid" db:"original_uid"`
	PhoneNumber string          `json:"phone_number" db:"phone_number"`
	FullName    string          `json:"name" db:"full_name"`
	Role        Role            `json:"user_type" db:"role"`
	IsVerified  bool            `json:"is_verified" db:"is_verified"`
	IsActive    bool            `json:"is_active" db:"is_active"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
	LastLoginAt time.Time       `json:"last_login_at" db:"last_login_at"`
	Payload     json.RawMessage `json:"payload" db:"payload"`
}

// DriverPayload holds driver-specific profile data stored in the account payload
type DriverPayload struct {
	VehicleType        string  `json:"vehicle_type"`
	VehiclePlate       string  `json:"vehicle_plate"`
	VerificationStatus string  `json:"verification_status"`
	IsAvailable        bool    `json:"is_available"`
	WalletBalance      float64 `json:"wallet_balance"`
	Rating             float64 `json:"rating"`
	TotalTrips         int     `json:"total_trips"`
}

// CustomerPayload holds customer-specific profile data stored in the account payload
type CustomerPayload struct {
	Preferences map[string]string `json:"preferences"`
	TotalSpend  float64           `json:"total_spend"`
	TotalOrders int               `json:"total_orders"`
}

// AdminPayload holds admin-specific profile data stored in the account payload
type AdminPayload struct {
	Permissions []string `json:"permissions"`
}

// DefaultPayload returns the initial role-specific payload for a new account.
// Creation payloads carry no counters, so a concurrent duplicate create for
// the same key converges to the same logical record.
func DefaultPayload(role Role) (json.RawMessage, error) {
	switch role {
	case RoleDriver:
		return json.Marshal(DriverPayload{VerificationStatus: "pending"})
	case RoleCustomer:
		return json.Marshal(CustomerPayload{Preferences: map[string]string{}})
	case RoleAdmin:
		return json.Marshal(AdminPayload{Permissions: []string{}})
	default:
		return nil, ErrUnknownPayloadRole
	}
}
