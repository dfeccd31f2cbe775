package constants

// Redis key formats
const (
	// Session token state. Blacklisted ids cover both explicit logout and
	// spent refresh tokens; the TTL always equals the token's remaining life.
	KeyTokenBlacklist = "auth:token:blacklist:%s" // Format: auth:token:blacklist:{jti}
)
