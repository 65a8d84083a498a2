package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/buyclientuz-pixel/targetbot-sub002/internal/config"
)

type contextKey string

const (
	// ContextKeyCaller identifica o serviço autenticado na requisição
	ContextKeyCaller contextKey = "caller"
)

// publicPath informa se o caminho dispensa autenticação. O webhook de leads
// fica aberto porque o provedor o chama diretamente; a validação dele é a
// idempotência da mescla.
func publicPath(path string) bool {
	if path == "/healthcheck" {
		return true
	}
	return strings.HasPrefix(path, "/v1/leads/") && strings.HasSuffix(path, "/webhook")
}

// AuthMiddleware valida o token de serviço (JWT HMAC) do bot ou do painel
func AuthMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims := &jwt.RegisteredClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
				}
				return []byte(cfg.Auth.Secret), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyCaller, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
