package middleware

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"lucky_wheel/pkg/resp"
	"lucky_wheel/pkg/token"
)

type ctxKey int

const operatorKey ctxKey = iota

// Auth lets a request through only with a valid "Authorization: Bearer"
// operator token and puts the operator login into the request context.
func Auth(secretKey []byte, log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				log.Debugw("rejected operator token", "path", r.URL.Path, "error", err)
				resp.WriteError(w, http.StatusUnauthorized, "invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), operatorKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OperatorFromContext returns the login Auth stored in ctx.
func OperatorFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(operatorKey).(string)
	return login, ok
}
