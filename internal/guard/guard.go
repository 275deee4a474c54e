// Package guard decides whether the current session may open a role-scoped view.
package guard

import "bookstore/internal/model"

const (
	LoginPath = "/auth"
	HomePath  = "/home"
)

type Decision int

const (
	Allow Decision = iota
	RedirectLogin
	RedirectHome
)

func (d Decision) String() string {
	switch d {
	case Allow:
		return "allow"
	case RedirectLogin:
		return "redirect-login"
	case RedirectHome:
		return "redirect-home"
	}
	return "unknown"
}

// Target is the path to navigate to instead of the guarded view; empty for Allow.
func (d Decision) Target() string {
	switch d {
	case RedirectLogin:
		return LoginPath
	case RedirectHome:
		return HomePath
	}
	return ""
}

// Evaluate allows the view iff the session is authenticated and its user's role is allowed.
// Anonymous sessions go to the login page, authenticated ones with the wrong role go home.
func Evaluate(auth model.AuthState, allowed ...model.Role) Decision {
	if !auth.IsAuthenticated || auth.User == nil {
		return RedirectLogin
	}
	for _, r := range allowed {
		if auth.User.Role == r {
			return Allow
		}
	}
	return RedirectHome
}

// LandingPath is where a role lands after login.
func LandingPath(role model.Role) string {
	switch role {
	case model.RoleAdmin:
		return "/admin/dashboard"
	case model.RoleSeller:
		return "/seller/dashboard"
	default:
		return HomePath
	}
}
