package task_dto

import (
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	"github.com/go-playground/validator/v10"
)

// DateLayout ist das Format aller Datumsfelder (due_date, start_date).
const DateLayout = "2006-01-02"

type CreateTaskRequest struct {
	Title          string   `json:"title" validate:"required,max=255"`
	Description    *string  `json:"description,omitempty"`
	AssigneeIDs    []string `json:"assignee_ids" validate:"required,min=1,dive,uuid"`
	Priority       *string  `json:"priority,omitempty" validate:"omitempty,taskPriority"`
	DueDate        string   `json:"due_date" validate:"required,datetime=2006-01-02"`
	StartDate      *string  `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty" validate:"omitempty,gte=0"`
	Category       *string  `json:"category,omitempty" validate:"omitempty,max=100"`
	Tags           []string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
}

type UpdateTaskRequest struct {
	Title              *string   `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Description        *string   `json:"description,omitempty"`
	Status             *string   `json:"status,omitempty" validate:"omitempty,taskStatus"`
	Priority           *string   `json:"priority,omitempty" validate:"omitempty,taskPriority"`
	DueDate            *string   `json:"due_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartDate          *string   `json:"start_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ProgressPercentage *int      `json:"progress_percentage,omitempty" validate:"omitempty,min=0,max=100"`
	Category           *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	Tags               *[]string `json:"tags,omitempty" validate:"omitempty,dive,min=1,max=50"`
	EstimatedHours     *float64  `json:"estimated_hours,omitempty" validate:"omitempty,gte=0"`
	ActualHours        *float64  `json:"actual_hours,omitempty" validate:"omitempty,gte=0"`
	ExpectedVersion    *int      `json:"expected_version,omitempty" validate:"omitempty,min=1"`
}

type TaskListFilter struct {
	Status   *string `query:"status,omitempty" validate:"omitempty,taskStatus"`
	Priority *string `query:"priority,omitempty" validate:"omitempty,taskPriority"`
	Limit    int     `query:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	Page     int     `query:"page,omitempty" validate:"omitempty,min=1"`
}

type AddCommentRequest struct {
	Content  string   `json:"content" validate:"required,max=5000"`
	Mentions []string `json:"mentions,omitempty" validate:"omitempty,dive,uuid"`
}

type AddChecklistItemRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description *string `json:"description,omitempty"`
}

type ToggleChecklistItemRequest struct {
	IsCompleted *bool `json:"is_completed" validate:"required"`
}

type ParamTaskID struct {
	ID string `params:"task_id" validate:"required,uuid"`
}

type ParamCommentID struct {
	ID string `params:"comment_id" validate:"required,uuid"`
}

type ParamChecklistItemID struct {
	ID string `params:"item_id" validate:"required,uuid"`
}

func IsValidTaskStatus(fl validator.FieldLevel) bool {
	return entity.TaskStatus(fl.Field().String()).IsValid()
}

func IsValidTaskPriority(fl validator.FieldLevel) bool {
	return entity.TaskPriority(fl.Field().String()).IsValid()
}
