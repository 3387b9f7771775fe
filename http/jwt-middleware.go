package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5/request"
	"github.com/google/uuid"

	"github.com/sortify-ai/backend/user/auth"
)

func getJwtAuthMiddleware(jwtKey []byte) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, err := request.BearerExtractor{}.ExtractToken(r)
			if err != nil {
				if errors.Is(err, request.ErrNoTokenInRequest) {
					ctx := context.WithValue(r.Context(), auth.CtxJwtClaimsKey, (*auth.JwtClaims)(nil))
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			claims, err := auth.ValidateJWT(token, jwtKey)
			if err != nil {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), auth.CtxJwtClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		}
		return http.HandlerFunc(hfn)
	}
}

// requireAuth extracts the validated claims and the caller's uuid.
// Returns false after writing a 401 when the request is anonymous.
func (httpserver *HttpServer) requireAuth(w http.ResponseWriter, r *http.Request) (*auth.JwtClaims, uuid.UUID, bool) {
	claims, ok := r.Context().Value(auth.CtxJwtClaimsKey).(*auth.JwtClaims)
	if !ok || claims == nil {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return nil, uuid.Nil, false
	}
	userUuid, err := uuid.Parse(claims.UUID)
	if err != nil {
		http.Error(w, "invalid token subject", http.StatusUnauthorized)
		return nil, uuid.Nil, false
	}
	return claims, userUuid, true
}
