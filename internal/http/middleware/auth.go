package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-reels-service/internal/config"
	apierrors "github.com/pribylovaa/go-reels-service/internal/errors"
	"github.com/pribylovaa/go-reels-service/internal/service"
)

type ctxKey int

// CtxViewerID — ключ контекста с uuid аутентифицированного зрителя.
const CtxViewerID ctxKey = iota

type accessClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// ViewerID возвращает uuid зрителя из контекста.
// Для анонимных запросов возвращает uuid.Nil.
func ViewerID(ctx context.Context) uuid.UUID {
	if id, ok := ctx.Value(CtxViewerID).(uuid.UUID); ok {
		return id
	}
	return uuid.Nil
}

// Auth извлекает Bearer-токен из Authorization, валидирует его (HS256 + issuer)
// и кладёт uuid зрителя в контекст по ключу CtxViewerID.
//
// Поведение:
//   - заголовок отсутствует — запрос проходит анонимно (лента доступна без входа);
//   - заголовок есть, но токен невалиден/просрочен — 401, чтобы фронт мог
//     обновить токен, а не молча терять лайки.
func Auth(cfg config.AuthConfig) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) || len(auth) == len(prefix) {
				apierrors.WriteError(w, r, service.ErrUnauthenticated)
				return
			}

			viewerID, err := parseAccessToken(strings.TrimSpace(auth[len(prefix):]), cfg)
			if err != nil {
				apierrors.WriteError(w, r, service.ErrUnauthenticated)
				return
			}

			ctx := context.WithValue(r.Context(), CtxViewerID, viewerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseAccessToken(tokenStr string, cfg config.AuthConfig) (uuid.UUID, error) {
	const op = "middleware.parseAccessToken"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: unexpected signing method", op)
			}

			return []byte(cfg.JWTSecret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
		jwt.WithIssuer(cfg.Issuer),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return uuid.Nil, fmt.Errorf("%s: invalid claims", op)
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%s: invalid uid claim", op)
	}

	return id, nil
}
