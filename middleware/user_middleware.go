package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"noteshare/config"
	"noteshare/models"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"
	"github.com/auth0/go-jwt-middleware/v2/validator"
)

type contextKey string

const userKey contextKey = "user"

// UserFromContext returns the profile attached by SyncUserMiddleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// SyncUserMiddleware ensures the authenticated caller exists in the DB and
// attaches the profile to the request context. Profiles are created lazily
// on first sight of a subject; the username is seeded from the token's email
// local part when available.
func SyncUserMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*validator.ValidatedClaims)
		if !ok || claims.RegisteredClaims.Subject == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Missing token"})
			return
		}

		authID := claims.RegisteredClaims.Subject

		var user models.User
		result := config.Database.Where("auth_id = ?", authID).First(&user)
		if result.Error != nil {
			user = models.User{
				AuthID:    authID,
				Username:  usernameFromClaims(claims),
				AvatarURL: models.DefaultAvatarURL,
			}
			if err := config.Database.Create(&user).Error; err != nil {
				log.Println("SyncUserMiddleware: failed to create user:", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(map[string]string{"error": "Failed to create user"})
				return
			}
			log.Printf("SyncUserMiddleware: created profile for %s as %q\n", authID, user.Username)
		}

		ctx := context.WithValue(r.Context(), userKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func usernameFromClaims(claims *validator.ValidatedClaims) string {
	custom, ok := claims.CustomClaims.(*CustomClaims)
	if !ok || custom == nil {
		return models.DefaultUsername
	}
	if custom.Nickname != "" {
		return custom.Nickname
	}
	if custom.Email != "" {
		if local, _, found := strings.Cut(custom.Email, "@"); found && local != "" {
			return local
		}
		return custom.Email
	}
	if custom.Name != "" {
		return custom.Name
	}
	return models.DefaultUsername
}
