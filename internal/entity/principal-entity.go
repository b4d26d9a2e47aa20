package entity

// Role ist die Rolle eines Principals innerhalb seines Unternehmens.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleHR       Role = "hr"
	RoleManager  Role = "manager"
	RoleTeamLead Role = "team_lead"
	RoleEmployee Role = "employee"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleManager, RoleTeamLead, RoleEmployee:
		return true
	}
	return false
}

// PrincipalSource gibt an, aus welcher Tabelle ein Principal aufgelöst wurde.
type PrincipalSource string

const (
	SourceCompanyAdmin PrincipalSource = "admin"
	SourceStaff        PrincipalSource = "staff"
)

// AuthIdentity ist die verifizierte Identität aus dem Bearer-Token.
type AuthIdentity struct {
	UserID string
	Email  string
}

// Principal ist der aufgelöste Akteur einer Anfrage. Er gilt nur für die Dauer einer Anfrage.
type Principal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email"`
	Role         Role            `json:"role"`
	CompanyID    string          `json:"company_id"`
	DepartmentID *string         `json:"department_id,omitempty"`
	Source       PrincipalSource `json:"source"`
}

type Department struct {
	ID        string  `json:"id"`
	CompanyID string  `json:"company_id"`
	Name      string  `json:"name"`
	HeadID    *string `json:"head_id,omitempty"`
}

// SameDepartment vergleicht zwei nullable Abteilungs-IDs; zwei fehlende Abteilungen gelten als gleich.
func SameDepartment(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// InDepartment ist strenger als SameDepartment: beide IDs müssen gesetzt und gleich sein.
func InDepartment(a, b *string) bool {
	return a != nil && b != nil && *a == *b
}
