package models

import (
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of an access token.
type TokenClaims struct {
	UserID     int64  `json:"id"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
	jwt.RegisteredClaims
}

// SubjectID parses the numeric user id out of the sub claim, falling back to
// the id claim.
func (c *TokenClaims) SubjectID() (int64, error) {
	if c.Subject == "" {
		return c.UserID, nil
	}
	return strconv.ParseInt(c.Subject, 10, 64)
}

// AuthToken is the body returned by login and email verification.
type AuthToken struct {
	AccessToken string `json:"access_token"`
}
