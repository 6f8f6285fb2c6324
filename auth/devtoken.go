// Package auth mints HS256 bearer tokens for local development and tests.
// Production tokens come from the external identity provider; this exists so
// the API can be exercised without one.
package auth

import (
	"time"

	"noteshare/config"

	"github.com/golang-jwt/jwt/v5"
)

// CreateDevToken signs a token the dev-mode validator accepts for subject.
// Nickname and email land in the same claims the provider would use.
func CreateDevToken(cfg config.AuthConfig, subject, nickname, email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"iss":      cfg.DevIssuer,
			"aud":      cfg.Audience,
			"sub":      subject,
			"iat":      now.Unix(),
			"exp":      now.Add(24 * time.Hour).Unix(),
			"nickname": nickname,
			"email":    email,
		})

	return token.SignedString([]byte(cfg.DevSecret))
}
