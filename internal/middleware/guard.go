package middleware

import (
	"bookstore/internal/guard"
	"bookstore/internal/model"
	"bookstore/internal/utils"
	"net/http"
)

// RequireRole lets the request through only for signed-in users with one of roles. Others get
// 401 or 403 with a Location header naming the page the client should show instead.
func RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			st, ok := utils.GetStoreFromContext(r.Context())
			if !ok {
				utils.WriteJSONError(w, http.StatusInternalServerError, "internal", "no session")
				return
			}

			switch d := guard.Evaluate(st.State().Auth, roles...); d {
			case guard.Allow:
				next.ServeHTTP(w, r)
			case guard.RedirectLogin:
				w.Header().Set("Location", d.Target())
				utils.WriteJSONError(w, http.StatusUnauthorized, "unauthenticated", "please sign in")
			default:
				w.Header().Set("Location", d.Target())
				utils.WriteJSONError(w, http.StatusForbidden, "forbidden", "this page is not available for your account")
			}
		})
	}
}

// RequireLogin admits any signed-in user.
func RequireLogin() func(http.Handler) http.Handler {
	return RequireRole(model.RoleUser, model.RoleSeller, model.RoleAdmin)
}
