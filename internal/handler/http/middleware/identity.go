package middleware

import (
	"context"
	"net/http"

	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type identityContextKey struct{}

// ResolveIdentity parses the verified access token into an auth.Identity once
// per request. Handlers read it with IdentityFrom and pass it explicitly to
// services; nothing downstream touches raw claims.
func ResolveIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.Unauthorized(w, err.Error())
			return
		}

		ident, err := auth.IdentityFromClaims(claims)
		if err != nil {
			response.HandleError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey{}, ident)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// IdentityFrom returns the identity stored by ResolveIdentity.
func IdentityFrom(ctx context.Context) (auth.Identity, bool) {
	ident, ok := ctx.Value(identityContextKey{}).(auth.Identity)
	return ident, ok
}
