package models

// OracleIdentity is the trusted identity yielded by the external verification
// oracle after a bearer credential checks out.
type OracleIdentity struct {
	UID         string
	PhoneNumber string
	Name        string
	Email       string
	Picture     string
	Claims      map[string]interface{}
}

// SessionSubject is what a backend session token is bound to: the derived
// identity key, never the oracle's raw subject.
type SessionSubject struct {
	UID         string
	Role        Role
	PhoneNumber string
	Name        string
	OriginalUID string
}

// VerifyTokenRequest is the token-exchange request body
type VerifyTokenRequest struct {
	IDToken  string `json:"idToken" validate:"required"`
	UserType string `json:"userType" validate:"required"`
	Name     string `json:"name,omitempty"`
}

// RefreshRequest is the session refresh request body
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// AuthUser is the identity block returned from the token exchange
type AuthUser struct {
	UID         string `json:"uid"`
	OriginalUID string `json:"originalUID"`
	PhoneNumber string `json:"phone_number"`
	UserType    string `json:"userType"`
	Name        string `json:"name,omitempty"`
}

// AuthResponse is returned after a successful token exchange
type AuthResponse struct {
	Token        string   `json:"token"`
	RefreshToken string   `json:"refreshToken"`
	ExpiresIn    int64    `json:"expiresIn"`
	User         AuthUser `json:"user"`
}

// RefreshResponse is returned after a successful refresh rotation
type RefreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// RoleEntry pairs a role with the identity key a phone number holds for it
type RoleEntry struct {
	Role Role   `json:"role"`
	UID  string `json:"uid"`
}

// AvailabilityRequest toggles a driver's availability flag
type AvailabilityRequest struct {
	IsAvailable bool `json:"isAvailable"`
}
