package utils

import (
	"github.com/gin-gonic/gin"
)

// ProfileClaims is the identity resolved from the request token. Token
// issuance belongs to the external accounts service; this side only verifies.
type ProfileClaims struct {
	ProfileID uint `json:"profile_id"`
}

type contextKey string

const ProfileContextKey contextKey = "profile"

func GetProfile(c *gin.Context) *ProfileClaims {
	profile, exists := c.Get(string(ProfileContextKey))
	if !exists {
		return nil
	}
	if claims, ok := profile.(*ProfileClaims); ok {
		return claims
	}
	return nil
}
