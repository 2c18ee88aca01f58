package middleware

import (
	"errors"
	"strconv"
	"time"

	"cafe-directory-api/config"

	"github.com/golang-jwt/jwt/v5"
)

// ResetTokenLifetime is how long a password-reset link stays usable.
const ResetTokenLifetime = 300 * time.Second

const resetPurpose = "password-reset"

// ErrInvalidToken covers every way a reset token can fail verification:
// bad signature, expiry, malformed payload, or a token minted for another
// purpose. Callers must treat it as "no user identified".
var ErrInvalidToken = errors.New("invalid or expired reset token")

type resetClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// GenerateResetToken mints a short-lived token proving possession of the
// password-reset email link for the given user.
func GenerateResetToken(userID uint) (string, error) {
	claims := resetClaims{
		Purpose: resetPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ResetTokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.SessionSecret)
}

// VerifyResetToken fails closed: any parse, signature, purpose or expiry
// problem returns ErrInvalidToken. A valid token yields the embedded user id;
// whether that user still exists is the caller's lookup to make.
func VerifyResetToken(tokenStr string) (uint, error) {
	claims := &resetClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return config.SessionSecret, nil
	})
	if err != nil || !token.Valid || claims.Purpose != resetPurpose {
		return 0, ErrInvalidToken
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
