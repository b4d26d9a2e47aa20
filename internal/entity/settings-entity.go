package entity

import "time"

type RedirectionPolicy string

const (
	RedirectionNone     RedirectionPolicy = "none"
	RedirectionDirect   RedirectionPolicy = "direct"
	RedirectionTeamLead RedirectionPolicy = "team_lead"
)

func (r RedirectionPolicy) IsValid() bool {
	switch r {
	case RedirectionNone, RedirectionDirect, RedirectionTeamLead:
		return true
	}
	return false
}

// IntegrationSettingsEntity ist die Aufgaben-Konfiguration eines Unternehmens (eine Zeile pro company_id).
//
// AllowIntraDepartmentAssignments erlaubt, entgegen seinem Namen, abteilungsübergreifende
// Zuweisungen durch Team-Leads und Mitarbeiter, wenn true.
type IntegrationSettingsEntity struct {
	ID                              string            `json:"id"`
	CompanyID                       string            `json:"company_id"`
	AllowEmployeeTaskCreation       bool              `json:"allow_employee_task_creation"`
	AllowEmployeeTaskAssignment     bool              `json:"allow_employee_task_assignment"`
	AllowIntraDepartmentAssignments bool              `json:"allow_intra_department_assignments"`
	AllowMultiTaskAssignment        bool              `json:"allow_multi_task_assignment"`
	AllowTimelinePriorityEditing    bool              `json:"allow_timeline_priority_editing"`
	CrossDepartmentRedirection      RedirectionPolicy `json:"cross_department_redirection"`
	CreatedAt                       time.Time         `json:"created_at"`
	UpdatedAt                       time.Time         `json:"updated_at"`
	UpdatedBy                       *string           `json:"updated_by,omitempty"`
}

// SettingsDefaults sind die Werte für lazily angelegte Einstellungszeilen.
type SettingsDefaults struct {
	AllowEmployeeTaskCreation       bool
	AllowEmployeeTaskAssignment     bool
	AllowIntraDepartmentAssignments bool
	AllowMultiTaskAssignment        bool
	AllowTimelinePriorityEditing    bool
	CrossDepartmentRedirection      RedirectionPolicy
}

func DefaultSettingsDefaults() SettingsDefaults {
	return SettingsDefaults{
		AllowEmployeeTaskCreation:       true,
		AllowEmployeeTaskAssignment:     true,
		AllowIntraDepartmentAssignments: true,
		AllowMultiTaskAssignment:        false,
		AllowTimelinePriorityEditing:    true,
		CrossDepartmentRedirection:      RedirectionTeamLead,
	}
}

func (d SettingsDefaults) ForCompany(id, companyID string, now time.Time) *IntegrationSettingsEntity {
	return &IntegrationSettingsEntity{
		ID:                              id,
		CompanyID:                       companyID,
		AllowEmployeeTaskCreation:       d.AllowEmployeeTaskCreation,
		AllowEmployeeTaskAssignment:     d.AllowEmployeeTaskAssignment,
		AllowIntraDepartmentAssignments: d.AllowIntraDepartmentAssignments,
		AllowMultiTaskAssignment:        d.AllowMultiTaskAssignment,
		AllowTimelinePriorityEditing:    d.AllowTimelinePriorityEditing,
		CrossDepartmentRedirection:      d.CrossDepartmentRedirection,
		CreatedAt:                       now,
		UpdatedAt:                       now,
	}
}

type SettingsPatch struct {
	AllowEmployeeTaskCreation       *bool
	AllowEmployeeTaskAssignment     *bool
	AllowIntraDepartmentAssignments *bool
	AllowMultiTaskAssignment        *bool
	AllowTimelinePriorityEditing    *bool
	CrossDepartmentRedirection      *RedirectionPolicy
	UpdatedBy                       string
}

// Apply überträgt die gesetzten Felder auf s.
func (p SettingsPatch) Apply(s *IntegrationSettingsEntity, now time.Time) {
	if p.AllowEmployeeTaskCreation != nil {
		s.AllowEmployeeTaskCreation = *p.AllowEmployeeTaskCreation
	}
	if p.AllowEmployeeTaskAssignment != nil {
		s.AllowEmployeeTaskAssignment = *p.AllowEmployeeTaskAssignment
	}
	if p.AllowIntraDepartmentAssignments != nil {
		s.AllowIntraDepartmentAssignments = *p.AllowIntraDepartmentAssignments
	}
	if p.AllowMultiTaskAssignment != nil {
		s.AllowMultiTaskAssignment = *p.AllowMultiTaskAssignment
	}
	if p.AllowTimelinePriorityEditing != nil {
		s.AllowTimelinePriorityEditing = *p.AllowTimelinePriorityEditing
	}
	if p.CrossDepartmentRedirection != nil {
		s.CrossDepartmentRedirection = *p.CrossDepartmentRedirection
	}
	updatedBy := p.UpdatedBy
	s.UpdatedBy = &updatedBy
	s.UpdatedAt = now
}
