package settings_dto

import (
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

type UpdateSettingsRequest struct {
	AllowEmployeeTaskCreation       *bool   `json:"allow_employee_task_creation,omitempty"`
	AllowEmployeeTaskAssignment     *bool   `json:"allow_employee_task_assignment,omitempty"`
	AllowIntraDepartmentAssignments *bool   `json:"allow_intra_department_assignments,omitempty"`
	AllowMultiTaskAssignment        *bool   `json:"allow_multi_task_assignment,omitempty"`
	AllowTimelinePriorityEditing    *bool   `json:"allow_timeline_priority_editing,omitempty"`
	CrossDepartmentRedirection      *string `json:"cross_department_redirection,omitempty" validate:"omitempty,redirectionPolicy"`
}

func IsValidRedirectionPolicy(fl validator.FieldLevel) bool {
	return entity.RedirectionPolicy(fl.Field().String()).IsValid()
}
