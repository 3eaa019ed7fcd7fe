package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/techguardpro/techguard-api/config"
	"github.com/techguardpro/techguard-api/models"
)

// SessionClaims is the payload of a signed session token.
type SessionClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthError represents an authentication/authorization error
type AuthError struct {
	Code    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IssueSessionToken signs a session token for the given account. The token is
// the server-side analog of the original dashboard's cached login record.
func IssueSessionToken(user models.User, secret string) (string, error) {
	claims := SessionClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(12 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// RequireSession validates the bearer session token and loads the matching
// account into the request context. Any malformed, expired or unknown token is
// treated as "not logged in": a 401, never a crash.
func RequireSession(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "MISSING_TOKEN", "Authorization header with bearer token is required")
			return
		}

		raw := strings.TrimPrefix(header, "Bearer ")
		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "INVALID_TOKEN", "Session token is invalid or expired")
			return
		}

		// The account must still exist; a stale subject degrades to
		// logged-out rather than erroring.
		var user models.User
		if err := config.GetDB().Where("username = ?", claims.Username).First(&user).Error; err != nil {
			abortUnauthorized(c, "UNKNOWN_SESSION", "Session does not match a known account")
			return
		}

		c.Set("current_user", user)
		c.Next()
	}
}

// CurrentUser extracts the authenticated account from the Gin context.
func CurrentUser(c *gin.Context) (models.User, error) {
	value, exists := c.Get("current_user")
	if !exists {
		return models.User{}, &AuthError{Code: "MISSING_SESSION", Message: "No authenticated user in context"}
	}

	user, ok := value.(models.User)
	if !ok {
		return models.User{}, &AuthError{Code: "INVALID_SESSION", Message: "Authenticated user has unexpected type"}
	}

	return user, nil
}

func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    code,
			"message": message,
		},
	})
}
