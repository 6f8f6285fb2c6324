package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"time"

	"noteshare/config"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

// CustomClaims holds the profile claims the identity provider attaches to
// access tokens. We only ever read them; the provider owns them.
type CustomClaims struct {
	Nickname string `json:"nickname"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

func (c *CustomClaims) Validate(ctx context.Context) error {
	return nil
}

// EnsureValidToken builds the bearer-token middleware. Credentials are
// optional at this layer: public routes pass through without claims, and
// protected handlers reject requests that carry none. A present but invalid
// token is always a 401.
func EnsureValidToken(cfg config.AuthConfig) (func(next http.Handler) http.Handler, error) {
	jwtValidator, err := newValidator(cfg)
	if err != nil {
		return nil, err
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("EnsureValidToken: token validation failed: %v", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid token"})
	}

	mw := jwtmiddleware.New(
		jwtValidator.ValidateToken,
		jwtmiddleware.WithErrorHandler(errorHandler),
		jwtmiddleware.WithCredentialsOptional(true),
	)

	return mw.CheckJWT, nil
}

func newValidator(cfg config.AuthConfig) (*validator.Validator, error) {
	customClaims := func() validator.CustomClaims { return &CustomClaims{} }

	if cfg.Domain != "" {
		issuerURL, err := url.Parse("https://" + cfg.Domain + "/")
		if err != nil {
			return nil, err
		}
		provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
		return validator.New(
			provider.KeyFunc,
			validator.RS256,
			issuerURL.String(),
			[]string{cfg.Audience},
			validator.WithCustomClaims(customClaims),
			validator.WithAllowedClockSkew(time.Minute),
		)
	}

	// Dev mode: shared-secret HS256, same token shape as the provider.
	keyFunc := func(ctx context.Context) (interface{}, error) {
		return []byte(cfg.DevSecret), nil
	}
	return validator.New(
		keyFunc,
		validator.HS256,
		cfg.DevIssuer,
		[]string{cfg.Audience},
		validator.WithCustomClaims(customClaims),
		validator.WithAllowedClockSkew(time.Minute),
	)
}
