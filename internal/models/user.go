package models

import "time"

const KindUser = "user"

type Role string

const (
	RoleStudent     Role = "Student"
	RoleAlumni      Role = "Alumni"
	RoleSPOC        Role = "SPOC"
	RoleInstitution Role = "Institution"
	RoleAdmin       Role = "Admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAlumni, RoleSPOC, RoleInstitution, RoleAdmin:
		return true
	}
	return false
}

// User is the portal-side profile of an identity; Role drives admin access.
type User struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	Name        string    `json:"name"`
	Institution string    `json:"institution,omitempty"`
	Department  string    `json:"department,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
