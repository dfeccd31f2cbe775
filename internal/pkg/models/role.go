package models

import "fmt"

// Role is the closed set of identities a phone number can hold.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a user-supplied role string against the closed set.
// An empty or unrecognized role is always an error; it is never defaulted
// to customer, since that would hand a driver a customer identity.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return Role(s), nil
	case "":
		return "", fmt.Errorf("user type is required")
	default:
		return "", fmt.Errorf("unknown user type %q", s)
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleDriver, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}
