// Package entity contains the core business objects of the project.
package entity

import (
	"bytes"
	"encoding/json"
	"strings"

	"cabinet/internal/errors"
)

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdmin manages accounts, the item catalog and reports.
	RoleAdmin Role = "admin"
	// RoleStaff is ward staff operating the cabinets.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff:
		return true
	default:
		return false
	}
}

// DisplayName is the human readable label carried in structured role claims.
func (r Role) DisplayName() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleStaff:
		return "Staff"
	default:
		return string(r)
	}
}

// RoleClaim is the role value as it arrives from an identity provider: either
// a bare code ("staff") or a structured {code, name} object. The zero value
// means no role information is present.
type RoleClaim struct {
	code       string
	name       string
	structured bool
}

// PlainRoleClaim builds a claim carrying only a role code.
func PlainRoleClaim(code string) RoleClaim {
	return RoleClaim{code: code}
}

// StructuredRoleClaim builds a claim carrying both a code and a display name.
func StructuredRoleClaim(code, name string) RoleClaim {
	return RoleClaim{code: code, name: name, structured: true}
}

// RoleClaimFor renders a known role in structured form.
func RoleClaimFor(role Role) RoleClaim {
	return StructuredRoleClaim(role.String(), role.DisplayName())
}

// IsZero reports whether the claim carries no role information at all.
func (r RoleClaim) IsZero() bool {
	return r.code == "" && r.name == ""
}

// IsStructured reports whether the claim was given in {code, name} form.
func (r RoleClaim) IsStructured() bool {
	return r.structured
}

// Name returns the display name of a structured claim.
func (r RoleClaim) Name() string {
	return r.name
}

// ResolveCode normalizes the claim to a single role code. A structured claim
// without a code falls back to its name.
func (r RoleClaim) ResolveCode() string {
	if r.code != "" {
		return r.code
	}

	return r.name
}

// Is reports whether the claim denotes role. Structured claims match on
// either the code or the name.
func (r RoleClaim) Is(role Role) bool {
	if r.IsZero() || role == "" {
		return false
	}

	if r.code == role.String() {
		return true
	}

	return r.structured && r.name == role.String()
}

// Role returns the claim as a known Role, if it resolves to one.
func (r RoleClaim) Role() (Role, bool) {
	for _, role := range []Role{RoleAdmin, RoleStaff} {
		if r.Is(role) {
			return role, true
		}
	}

	return "", false
}

type structuredRoleClaim struct {
	Code string `json:"code"`
	Name string `json:"name,omitempty"`
}

// MarshalJSON writes plain claims as a string and structured claims as an object.
func (r RoleClaim) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}

	if !r.structured {
		return json.Marshal(r.code)
	}

	return json.Marshal(structuredRoleClaim{Code: r.code, Name: r.name})
}

// UnmarshalJSON accepts a string, a {code, name} object or null.
func (r *RoleClaim) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*r = RoleClaim{}

		return nil
	case trimmed[0] == '"':
		var code string
		if err := json.Unmarshal(trimmed, &code); err != nil {
			return errors.Wrap(err, "decode role code")
		}
		*r = PlainRoleClaim(strings.TrimSpace(code))

		return nil
	case trimmed[0] == '{':
		var structured structuredRoleClaim
		if err := json.Unmarshal(trimmed, &structured); err != nil {
			return errors.Wrap(err, "decode structured role")
		}
		*r = StructuredRoleClaim(strings.TrimSpace(structured.Code), strings.TrimSpace(structured.Name))

		return nil
	default:
		return errors.Errorf("role claim must be a string or an object, got %s", string(trimmed))
	}
}

// RoleClaimFromValue converts a decoded JWT claim value (string or map) into a RoleClaim.
func RoleClaimFromValue(value any) (RoleClaim, error) {
	switch v := value.(type) {
	case nil:
		return RoleClaim{}, nil
	case string:
		return PlainRoleClaim(strings.TrimSpace(v)), nil
	case map[string]any:
		code, _ := v["code"].(string)
		name, _ := v["name"].(string)

		return StructuredRoleClaim(strings.TrimSpace(code), strings.TrimSpace(name)), nil
	default:
		return RoleClaim{}, errors.Errorf("unsupported role claim type %T", value)
	}
}
