package types

// TokenClaims carries the identity extracted from a validated JWT.
type TokenClaims struct {
	UserID uint `json:"user_id"`
}
