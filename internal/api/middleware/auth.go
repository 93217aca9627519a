package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mentorgig/session-service/internal/api/handlers"
)

type contextKey string

const tokenContextKey contextKey = "auth_token"

const msgMissingToken = "You must be signed in to book a session"

// Auth извлекает Bearer-токен и кладёт его в контекст запроса.
// Токен здесь не проверяется — принципала резолвит AuthService
// в рамках use case. Middleware лишь отсекает запросы вовсе без токена
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		ctx := context.WithValue(r.Context(), tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// TokenFromContext возвращает Bearer-токен, положенный middleware Auth
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey).(string)
	return token
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
