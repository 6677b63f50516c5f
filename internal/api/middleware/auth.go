package middleware

import (
	"context"
	"net/http"

	"github.com/elitetenis/court-booking-service/internal/api/handlers"
	"github.com/elitetenis/court-booking-service/pkg/cpf"
)

// HeaderUserCPF заголовок с CPF действующего участника.
// Аутентификацию выполняет внешний шлюз; сервис доверяет заголовку.
const HeaderUserCPF = "X-User-CPF"

type ctxKey string

const userCPFKey ctxKey = "userCPF"

// Auth требует валидный CPF в заголовке X-User-CPF и кладет его в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserCPF)
		if raw == "" {
			handlers.RespondUnauthorized(w, "cabeçalho X-User-CPF ausente")
			return
		}
		if err := cpf.Validate(raw); err != nil {
			handlers.RespondUnauthorized(w, "CPF inválido no cabeçalho X-User-CPF")
			return
		}

		ctx := context.WithValue(r.Context(), userCPFKey, cpf.Format(raw))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserCPF возвращает CPF действующего участника из контекста
func GetUserCPF(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userCPFKey).(string)
	return v, ok
}
