package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/godofwar007/Store-income-control/internal/domain"
	"github.com/godofwar007/Store-income-control/internal/server/authctx"
	"github.com/godofwar007/Store-income-control/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates JWT and sets current user in context.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeAuthError(w, http.StatusUnauthorized, "missing bearer token")
				return
			}
			tokenStr := strings.TrimPrefix(auth, "Bearer ")
			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				writeAuthError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok || claims["token_type"] != "access" {
				writeAuthError(w, http.StatusUnauthorized, "invalid token")
				return
			}
			sub, _ := claims["sub"].(string)
			username, _ := claims["username"].(string)
			levelStr, _ := claims["access_level"].(string)
			id, err := strconv.ParseInt(sub, 10, 64)
			if err != nil {
				writeAuthError(w, http.StatusUnauthorized, "invalid subject")
				return
			}

			level := domain.AccessLevel(levelStr)
			scope := domain.Unrestricted()
			if level != domain.AccessAdmin {
				if shopID, ok := claims["shop_id"].(float64); ok {
					scope = domain.Restricted(int64(shopID))
				}
			}

			ctx := authctx.WithCurrentUser(r.Context(), authctx.CurrentUser{
				ID:       id,
				Username: username,
				Access:   level,
				Scope:    scope,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUnrestricted gates admin-only routes: only users whose scope spans
// all shops may pass.
func RequireUnrestricted() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u := authctx.FromContext(r.Context())
			if u == nil || !u.Scope.IsUnrestricted() {
				writeAuthError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ShopAccessMiddleware resolves the {shopID} URL segment: the shop must
// exist and fall inside the caller's scope. Unknown shops are reported as
// not found, out-of-scope ones as forbidden.
func ShopAccessMiddleware(shops *service.ShopDirectory) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			shopID, err := strconv.ParseInt(chi.URLParam(r, "shopID"), 10, 64)
			if err != nil {
				writeAuthError(w, http.StatusBadRequest, "invalid shop id")
				return
			}
			if _, ok := shops.Get(shopID); !ok {
				writeAuthError(w, http.StatusNotFound, "shop not found")
				return
			}
			u := authctx.FromContext(r.Context())
			if u == nil || !u.Scope.Allows(shopID) {
				writeAuthError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + http.StatusText(status) + `","message":"` + message + `"}`))
}
