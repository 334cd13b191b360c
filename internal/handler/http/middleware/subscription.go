package middleware

import (
	"net/http"

	"github.com/allahdad01/construction-erp-go/internal/domain/company"
	"github.com/allahdad01/construction-erp-go/internal/handler/http/response"
)

// SubscriptionMiddleware gates mutating routes on the tenant's subscription.
type SubscriptionMiddleware struct {
	companyService company.CompanyService
}

func NewSubscriptionMiddleware(companyService company.CompanyService) *SubscriptionMiddleware {
	return &SubscriptionMiddleware{companyService: companyService}
}

// RequireOperational checks the company behind the request identity against
// the database. Super admins pass; reads stay open for expired tenants so
// they can still see their data.
func (m *SubscriptionMiddleware) RequireOperational(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := IdentityFrom(r.Context())
		if !ok {
			response.Unauthorized(w, "unauthorized")
			return
		}

		if ident.IsSuperAdmin() {
			next.ServeHTTP(w, r)
			return
		}
		if ident.CompanyID == nil {
			response.Forbidden(w, "no company associated with this user")
			return
		}

		if err := m.companyService.RequireOperational(r.Context(), *ident.CompanyID); err != nil {
			response.HandleError(w, err)
			return
		}

		next.ServeHTTP(w, r)
	})
}
