package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"cafe-directory-api/config"
	"cafe-directory-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie is the cookie name the session token travels in when the
// client is a browser rather than an API consumer.
const SessionCookie = "session"

// SessionLifetime is how long a login stays valid.
const SessionLifetime = 24 * time.Hour

const claimsKey = "claims"

type Claims struct {
	UserID   uint            `json:"user_id"`
	Email    string          `json:"email"`
	Nickname string          `json:"nickname"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session JWT for a given user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Nickname: user.Nickname,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(SessionLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.SessionSecret)
}

// ParseToken validates a session token and returns its claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.SessionSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// tokenFromRequest pulls the session token from the Authorization header or,
// failing that, the session cookie.
func tokenFromRequest(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if cookie, err := c.Cookie(SessionCookie); err == nil {
		return cookie
	}
	return ""
}

// CurrentUser resolves the authenticated identity once at the request
// boundary and stores it in the request context. Anonymous requests pass
// through with no claims set; nothing downstream should touch the token.
func CurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := tokenFromRequest(c); tokenStr != "" {
			if claims, err := ParseToken(tokenStr); err == nil {
				c.Set(claimsKey, claims)
			}
		}
		c.Next()
	}
}

// GetClaims returns the resolved identity, or nil when anonymous.
func GetClaims(c *gin.Context) *Claims {
	val, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	return val.(*Claims)
}

// AuthRequired rejects anonymous requests
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetClaims(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Login required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool
	Reason  string
}

// Authorize decides whether the given identity may use admin routes.
// A nil claims value means anonymous and is always forbidden.
func Authorize(claims *Claims) Decision {
	switch {
	case claims == nil:
		return Decision{Reason: "login required"}
	case claims.Role != models.RoleAdmin:
		return Decision{Reason: "admin access required"}
	default:
		return Decision{Allowed: true}
	}
}

// AdminRequired guards destructive and approval routes with a 403
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if d := Authorize(GetClaims(c)); !d.Allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied: " + d.Reason})
			c.Abort()
			return
		}
		c.Next()
	}
}
