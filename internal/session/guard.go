package session

import "github.com/edupract/exam_platform/internal/models"

// Decision is the outcome of a route-guard check.
type Decision int

const (
	// ShowLoading: initialization has not finished, render a placeholder.
	ShowLoading Decision = iota
	// GrantAccess: the session's role is in the allowed set.
	GrantAccess
	// RedirectToLogin: no session at all.
	RedirectToLogin
	// RedirectToForbidden: logged in, but the role is not allowed. Distinct
	// from RedirectToLogin so the user can tell the two apart.
	RedirectToForbidden
)

func (d Decision) String() string {
	switch d {
	case ShowLoading:
		return "loading"
	case GrantAccess:
		return "granted"
	case RedirectToLogin:
		return "login"
	case RedirectToForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Guard decides whether a role-restricted view may render. The check is
// advisory: the server enforces the same policy authoritatively on every
// request.
type Guard struct {
	Manager *Manager
}

func NewGuard(m *Manager) *Guard {
	return &Guard{Manager: m}
}

// Decide evaluates the current session against the allowed roles. A missing,
// invalid or expired session all look the same here: logged out.
func (g *Guard) Decide(allowed ...models.Role) Decision {
	if g.Manager.Loading() {
		return ShowLoading
	}
	sess := g.Manager.Session()
	if sess == nil {
		return RedirectToLogin
	}
	for _, role := range allowed {
		if sess.Role == role {
			return GrantAccess
		}
	}
	return RedirectToForbidden
}
