package settings_dto

import (
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
)

type SettingsResponse struct {
	CompanyID                       string    `json:"company_id"`
	AllowEmployeeTaskCreation       bool      `json:"allow_employee_task_creation"`
	AllowEmployeeTaskAssignment     bool      `json:"allow_employee_task_assignment"`
	AllowIntraDepartmentAssignments bool      `json:"allow_intra_department_assignments"`
	AllowMultiTaskAssignment        bool      `json:"allow_multi_task_assignment"`
	AllowTimelinePriorityEditing    bool      `json:"allow_timeline_priority_editing"`
	CrossDepartmentRedirection      string    `json:"cross_department_redirection"`
	UpdatedAt                       time.Time `json:"updated_at"`
	UpdatedBy                       *string   `json:"updated_by,omitempty"`
}

func ToSettingsResponse(s *entity.IntegrationSettingsEntity) *SettingsResponse {
	return &SettingsResponse{
		CompanyID:                       s.CompanyID,
		AllowEmployeeTaskCreation:       s.AllowEmployeeTaskCreation,
		AllowEmployeeTaskAssignment:     s.AllowEmployeeTaskAssignment,
		AllowIntraDepartmentAssignments: s.AllowIntraDepartmentAssignments,
		AllowMultiTaskAssignment:        s.AllowMultiTaskAssignment,
		AllowTimelinePriorityEditing:    s.AllowTimelinePriorityEditing,
		CrossDepartmentRedirection:      string(s.CrossDepartmentRedirection),
		UpdatedAt:                       s.UpdatedAt,
		UpdatedBy:                       s.UpdatedBy,
	}
}
