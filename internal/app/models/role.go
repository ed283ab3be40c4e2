package models

import (
	"fmt"

	"protrack-service/internal/pkg/constvars"
)

// Role is the closed set of user roles. Authorization decisions go through
// Capabilities(), never through ad-hoc string comparisons.
type Role string

const (
	RoleAdmin   Role = constvars.ProtrackRoleAdmin
	RoleEditor  Role = constvars.ProtrackRoleEditor
	RoleViewer  Role = constvars.ProtrackRoleViewer
	RolePatient Role = constvars.ProtrackRolePatient
)

type Capabilities struct {
	CanCreate bool `json:"can_create"`
	CanEdit   bool `json:"can_edit"`
	CanDelete bool `json:"can_delete"`
	CanView   bool `json:"can_view"`
}

var roleCapabilities = map[Role]Capabilities{
	RoleAdmin:   {CanCreate: true, CanEdit: true, CanDelete: true, CanView: true},
	RoleEditor:  {CanCreate: true, CanEdit: true, CanDelete: false, CanView: true},
	RoleViewer:  {CanCreate: false, CanEdit: false, CanDelete: false, CanView: true},
	RolePatient: {CanCreate: false, CanEdit: false, CanDelete: false, CanView: true},
}

func ParseRole(value string) (Role, error) {
	role := Role(value)
	if _, ok := roleCapabilities[role]; !ok {
		return "", fmt.Errorf("unknown role %q", value)
	}
	return role, nil
}

func (r Role) Capabilities() Capabilities {
	return roleCapabilities[r]
}
