package identity

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const contextKey = "identity"

// Identity is the resolved caller: a user id plus an optional organization.
// Exactly one ownership scope applies: organization when OrganizationID is
// set, personal otherwise.
type Identity struct {
	UserID         string
	OrganizationID *string
}

// Personal reports whether the caller acts in their personal scope.
func (id Identity) Personal() bool {
	return id.OrganizationID == nil
}

// SignToken mints an HS256 bearer token for a user, optionally bound to an
// organization. Used by ops tooling and tests.
func SignToken(userID, orgID string) (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}
	if orgID != "" {
		claims["orgId"] = orgID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Middleware resolves the caller identity from a bearer token. It never
// aborts: operations treat a missing identity as a silent no-op, so requests
// without usable credentials simply proceed anonymous.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.Next()
			return
		}

		if len(tokenString) > 7 && strings.EqualFold(tokenString[0:6], "BEARER") {
			tokenString = tokenString[7:]
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})
		if err != nil || !token.Valid {
			c.Next()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.Next()
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			c.Next()
			return
		}

		ident := Identity{UserID: sub}
		if org, _ := claims["orgId"].(string); org != "" {
			ident.OrganizationID = &org
		}

		c.Set(contextKey, ident)
		c.Next()
	}
}

// FromContext returns the resolved identity, if any.
func FromContext(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(contextKey)
	if !exists {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}
