package utils

import (
	"os"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	AccessTokenLifetime  = time.Hour * 24 * 7
	RefreshTokenLifetime = time.Hour * 24 * 30
)

type UserClaims struct {
	UserID  uint `json:"user_id"`
	IsStaff bool `json:"is_staff"`
}

type contextKey string

const UserContextKey contextKey = "user"

// GetUser returns the authenticated principal, or nil when the request
// carried no valid token (possible on read-open routes).
func GetUser(c *gin.Context) *UserClaims {
	user, exists := c.Get(string(UserContextKey))
	if !exists {
		return nil
	}
	if userClaims, ok := user.(*UserClaims); ok {
		return userClaims
	}
	return nil
}

// GenerateTokenPair signs a fresh access/refresh token pair for the user.
// Each token carries a jti so that two pairs issued for the same user are
// never identical, even within the same exp second; rotation depends on the
// new refresh token being a distinct string.
func GenerateTokenPair(userID uint, isStaff bool) (accessToken string, refreshToken string, err error) {
	secret := []byte(os.Getenv("JWT_SECRET"))

	accessTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  userID,
		"is_staff": isStaff,
		"jti":      uuid.NewString(),
		"exp":      time.Now().Add(AccessTokenLifetime).Unix(),
	})
	accessToken, err = accessTokenBase.SignedString(secret)
	if err != nil {
		return "", "", err
	}

	refreshTokenBase := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(RefreshTokenLifetime).Unix(),
	})
	refreshToken, err = refreshTokenBase.SignedString(secret)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
