package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/sportshunt/turf-booking-service/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	isHostKey contextKey = "isHost"
)

const (
	headerUserID = "X-User-ID"
	headerIsHost = "X-User-Is-Host"
)

// Auth извлекает идентификатор пользователя из заголовков запроса.
// Предполагается, что аутентификацию выполняет внешний gateway,
// сервису доверенно передаётся уже проверенный principal.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawUserID := r.Header.Get(headerUserID)
		if rawUserID == "" {
			handlers.RespondUnauthorized(w, "missing "+headerUserID+" header")
			return
		}

		userID, err := strconv.ParseInt(rawUserID, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+headerUserID+" header")
			return
		}

		isHost := r.Header.Get(headerIsHost) == "true"

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isHostKey, isHost)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// HostOnly пропускает только владельцев площадок.
// Навешивается после Auth.
func HostOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetIsHost(r.Context()) {
			handlers.RespondForbidden(w, "host account required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID возвращает идентификатор пользователя из контекста запроса
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetIsHost возвращает признак владельца площадки
func GetIsHost(ctx context.Context) bool {
	isHost, ok := ctx.Value(isHostKey).(bool)
	return ok && isHost
}
