// Package auth implements session-token issuance/validation (HS256 JWTs
// carrying the user's email as subject) and bcrypt password hashing.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/homeboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs an HS256 JWT with the given subject (the user's email)
// and an absolute expiry of now + validityDuration.
func GenerateToken(subject string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetSubjectFromToken verifies signature and expiry and returns the subject
// claim. Expired tokens yield common.ErrTokenExpired; anything else wrong
// with the token (bad signature, malformed string, missing subject) yields
// common.ErrInvalidToken.
func GetSubjectFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", common.ErrInvalidToken
	}

	return claims.Subject, nil
}
