// Package access decides whether a session may reach a dashboard route.
//
// Decide is a pure function of a Policy and a SessionState. Guard wraps it
// with the redirect side effect: it re-evaluates on every observed change and
// navigates only when the outcome for the current path changes.
package access

import (
	"path"
	"strings"

	"cabinet/internal/domain/constants"
	"cabinet/internal/domain/entity"
	"cabinet/internal/errors"
)

// Decision is the guard's verdict for one evaluation.
type Decision int

const (
	// DecisionPending means no decision yet. Nothing is rendered and no
	// redirect is issued.
	DecisionPending Decision = iota
	// DecisionUnauthenticated redirects to the login route.
	DecisionUnauthenticated
	// DecisionForbidden redirects to the forbidden route.
	DecisionForbidden
	// DecisionAllowed renders the protected content.
	DecisionAllowed
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionUnauthenticated:
		return "unauthenticated"
	case DecisionForbidden:
		return "forbidden"
	case DecisionAllowed:
		return "allowed"
	default:
		return "unknown"
	}
}

// MarshalText renders the decision name in JSON payloads.
func (d Decision) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// RoleAbsentPolicy selects the verdict for an authenticated session without
// role information on an admin path.
type RoleAbsentPolicy string

const (
	// RoleAbsentAllow treats a missing role as "not staff".
	RoleAbsentAllow RoleAbsentPolicy = constants.RoleAbsentAllow
	// RoleAbsentDefer keeps the decision pending until the role resolves.
	RoleAbsentDefer RoleAbsentPolicy = constants.RoleAbsentDefer
)

// SessionState is the read-only view of the current session the guard consumes.
type SessionState struct {
	IsLoading       bool
	IsAuthenticated bool
	Role            entity.RoleClaim
	CurrentPath     string
}

// Policy holds the routes and role the guard decides with.
type Policy struct {
	AdminPrefix   string
	StaffRole     entity.Role
	LoginPath     string
	ForbiddenPath string
	RoleAbsent    RoleAbsentPolicy
}

// DefaultPolicy returns the dashboard defaults.
func DefaultPolicy() Policy {
	return Policy{
		AdminPrefix:   "/admin",
		StaffRole:     entity.RoleStaff,
		LoginPath:     "/login",
		ForbiddenPath: "/403",
		RoleAbsent:    RoleAbsentAllow,
	}
}

// NewPolicy builds a policy from configuration values, falling back to the
// defaults for empty ones.
func NewPolicy(adminPrefix, staffRole, loginPath, forbiddenPath, roleAbsent string) (Policy, error) {
	policy := DefaultPolicy()

	if adminPrefix != "" {
		policy.AdminPrefix = adminPrefix
	}
	if staffRole != "" {
		policy.StaffRole = entity.Role(staffRole)
	}
	if loginPath != "" {
		policy.LoginPath = loginPath
	}
	if forbiddenPath != "" {
		policy.ForbiddenPath = forbiddenPath
	}

	switch RoleAbsentPolicy(roleAbsent) {
	case "":
	case RoleAbsentAllow, RoleAbsentDefer:
		policy.RoleAbsent = RoleAbsentPolicy(roleAbsent)
	default:
		return Policy{}, errors.Errorf("unknown role absent policy %q", roleAbsent)
	}

	// "/admin/" and "/admin" name the same area.
	if len(policy.AdminPrefix) > 1 {
		policy.AdminPrefix = strings.TrimRight(policy.AdminPrefix, "/")
		if policy.AdminPrefix == "" {
			policy.AdminPrefix = "/"
		}
	}

	for name, route := range map[string]string{
		"admin prefix":   policy.AdminPrefix,
		"login path":     policy.LoginPath,
		"forbidden path": policy.ForbiddenPath,
	} {
		if !strings.HasPrefix(route, "/") {
			return Policy{}, errors.Errorf("%s must start with '/', got %q", name, route)
		}
	}

	return policy, nil
}

// Decide returns the verdict for state. Evaluation order matters: loading
// wins over everything, then authentication, then the admin-area role check.
func (p Policy) Decide(state SessionState) Decision {
	if state.IsLoading {
		return DecisionPending
	}
	if !state.IsAuthenticated {
		return DecisionUnauthenticated
	}
	if !p.IsAdminPath(state.CurrentPath) {
		return DecisionAllowed
	}
	if state.Role.IsZero() {
		if p.RoleAbsent == RoleAbsentDefer {
			return DecisionPending
		}

		return DecisionAllowed
	}
	if state.Role.Is(p.StaffRole) {
		return DecisionForbidden
	}

	return DecisionAllowed
}

// Outcome is a decision together with the route it redirects to, if any.
type Outcome struct {
	Decision Decision `json:"decision"`
	Target   string   `json:"target,omitempty"`
}

// Render reports whether the protected content may be shown.
func (o Outcome) Render() bool {
	return o.Decision == DecisionAllowed
}

// Evaluate decides and attaches the redirect target.
func (p Policy) Evaluate(state SessionState) Outcome {
	decision := p.Decide(state)

	switch decision {
	case DecisionUnauthenticated:
		return Outcome{Decision: decision, Target: p.LoginPath}
	case DecisionForbidden:
		return Outcome{Decision: decision, Target: p.ForbiddenPath}
	default:
		return Outcome{Decision: decision}
	}
}

// IsAdminPath reports whether p begins with the admin prefix. The match is a
// plain prefix test, so "/administrator" is admin too. The path is cleaned
// first so dot segments cannot step into the admin area unnoticed.
func (p Policy) IsAdminPath(routePath string) bool {
	return strings.HasPrefix(NormalizePath(routePath), p.AdminPrefix)
}

// NormalizePath strips query and fragment and cleans dot segments.
func NormalizePath(routePath string) string {
	if i := strings.IndexAny(routePath, "?#"); i >= 0 {
		routePath = routePath[:i]
	}
	if routePath == "" {
		return "/"
	}
	if !strings.HasPrefix(routePath, "/") {
		routePath = "/" + routePath
	}

	return path.Clean(routePath)
}
