package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"productivity_api/internal/infrastructure/logger"
	"productivity_api/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "auth.user_id"

// AccessClaims are the claims of an access token. Older clients put the user
// id in userId, newer ones only in sub.
type AccessClaims struct {
	UserID string `json:"userId,omitempty"`
	jwt.RegisteredClaims
}

func (c AccessClaims) subject() string {
	if id := strings.TrimSpace(c.UserID); id != "" {
		return id
	}
	return strings.TrimSpace(c.Subject)
}

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "missing or invalid access token", http.StatusUnauthorized)

// Auth verifies HS256 bearer tokens signed with secret and stores the caller's
// user id on the gin context.
func Auth(secret string, log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With("middleware", "Auth")
	key := []byte(secret)

	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		userID, err := parseAccessToken(token, key)
		if err != nil {
			log.Debug("access token rejected", "error", err)
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		SetUserID(c, userID)
		c.Next()
	}
}

func SetUserID(c *gin.Context, userID string) {
	c.Set(userIDKey, userID)
}

// UserID returns the authenticated user id, empty outside of Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func parseAccessToken(token string, key []byte) (string, error) {
	claims := &AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid {
		return "", fmt.Errorf("invalid token")
	}
	id := claims.subject()
	if id == "" {
		return "", fmt.Errorf("token has no user id")
	}
	return id, nil
}

func bearerToken(header string) string {
	if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}
