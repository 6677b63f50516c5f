package domain

import "github.com/elitetenis/court-booking-service/pkg/cpf"

// MasterAdminCPF is the fixed, non-demotable administrator identity.
// The master admin can never be blocked or stripped of the admin role.
const MasterAdminCPF = "358.350.678-28"

// Role represents a member role tag
type Role string

const (
	RoleMember  Role = "member"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// Member represents a club member identified by CPF
type Member struct {
	CPF       string
	FirstName string
	LastName  string
	Phone     *string
	Roles     []Role
	IsBlocked bool
}

// HasRole returns true if the member carries the given role tag
func (m *Member) HasRole(role Role) bool {
	for _, r := range m.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsTeacher returns true if the member holds the teacher role
func (m *Member) IsTeacher() bool {
	return m.HasRole(RoleTeacher)
}

// IsAdmin returns true if the member holds the admin role
func (m *Member) IsAdmin() bool {
	return m.HasRole(RoleAdmin)
}

// IsMasterAdmin returns true if the member is the designated master admin.
// The comparison ignores CPF formatting.
func (m *Member) IsMasterAdmin() bool {
	return cpf.Equal(m.CPF, MasterAdminCPF)
}

// DisplayName returns the member name for user-facing messages
func (m *Member) DisplayName() string {
	if m.LastName == "" {
		return m.FirstName
	}
	return m.FirstName + " " + m.LastName
}
