package domain

import "fmt"

// Role is the access level attached to a user account. The set is closed;
// anything else must be rejected before it reaches the database.
type Role string

const (
	RoleClient             Role = "client"
	RoleEquipmentInspector Role = "equipment_inspector"
	RoleFinancialInspector Role = "financial_inspector"
	RoleManager            Role = "manager"
)

// Roles lists every valid role.
func Roles() []Role {
	return []Role{RoleClient, RoleEquipmentInspector, RoleFinancialInspector, RoleManager}
}

// ParseRole converts a raw string into a Role, failing on anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleEquipmentInspector, RoleFinancialInspector, RoleManager:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

type User struct {
	ID           int32  `json:"id"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	CreatedOn    string `json:"created_on"`
	UpdatedOn    string `json:"updated_on"`
}
