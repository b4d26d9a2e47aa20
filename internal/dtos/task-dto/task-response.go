package task_dto

import (
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
)

type TaskResponse struct {
	ID                      string    `json:"id"`
	Title                   string    `json:"title"`
	Description             *string   `json:"description,omitempty"`
	AssignedTo              string    `json:"assigned_to"`
	AssignedBy              string    `json:"assigned_by"`
	Status                  string    `json:"status"`
	StatusDisplay           string    `json:"status_display"`
	Priority                string    `json:"priority"`
	PriorityDisplay         string    `json:"priority_display"`
	DueDate                 string    `json:"due_date"`
	StartDate               *string   `json:"start_date,omitempty"`
	CompletedDate           *string   `json:"completed_date,omitempty"`
	EstimatedHours          *float64  `json:"estimated_hours,omitempty"`
	ActualHours             *float64  `json:"actual_hours,omitempty"`
	ProgressPercentage      int       `json:"progress_percentage"`
	Category                *string   `json:"category,omitempty"`
	Tags                    []string  `json:"tags"`
	AssignedDepartmentID    *string   `json:"assigned_department_id,omitempty"`
	IsCrossDepartment       bool      `json:"is_cross_department"`
	IsRedirectedToTeamLead  bool      `json:"is_redirected_to_team_lead"`
	TeamLeadID              *string   `json:"team_lead_id,omitempty"`
	TeamLeadApprovalPending bool      `json:"team_lead_approval_pending"`
	IsOverdue               bool      `json:"is_overdue"`
	Version                 int       `json:"version"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

type CreateTaskResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Content   string    `json:"content"`
	PostedBy  string    `json:"posted_by"`
	Mentions  []string  `json:"mentions"`
	CreatedAt time.Time `json:"created_at"`
}

type ChecklistItemResponse struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	CompletedBy *string    `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	OrderIndex  int        `json:"order_index"`
}

type TaskDetailResponse struct {
	TaskResponse
	Comments  []CommentResponse       `json:"comments"`
	Checklist []ChecklistItemResponse `json:"checklist"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// ToTaskResponse bildet eine Aufgabe ab; today bestimmt is_overdue.
func ToTaskResponse(t *entity.TaskEntity, today time.Time) TaskResponse {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return TaskResponse{
		ID:                      t.ID,
		Title:                   t.Title,
		Description:             t.Description,
		AssignedTo:              t.AssignedTo,
		AssignedBy:              t.AssignedBy,
		Status:                  string(t.Status),
		StatusDisplay:           t.Status.Display(),
		Priority:                string(t.Priority),
		PriorityDisplay:         t.Priority.Display(),
		DueDate:                 t.DueDate.Format(DateLayout),
		StartDate:               formatDate(t.StartDate),
		CompletedDate:           formatDate(t.CompletedDate),
		EstimatedHours:          t.EstimatedHours,
		ActualHours:             t.ActualHours,
		ProgressPercentage:      t.ProgressPercentage,
		Category:                t.Category,
		Tags:                    tags,
		AssignedDepartmentID:    t.AssignedDepartmentID,
		IsCrossDepartment:       t.IsCrossDepartment,
		IsRedirectedToTeamLead:  t.IsRedirectedToTeamLead,
		TeamLeadID:              t.TeamLeadID,
		TeamLeadApprovalPending: t.TeamLeadApprovalPending,
		IsOverdue:               t.Status != entity.TaskCompleted && entity.DateOnly(t.DueDate).Before(entity.DateOnly(today)),
		Version:                 t.Version,
		CreatedAt:               t.CreatedAt,
		UpdatedAt:               t.UpdatedAt,
	}
}

func ToCommentResponse(c *entity.TaskCommentEntity) CommentResponse {
	mentions := c.Mentions
	if mentions == nil {
		mentions = []string{}
	}
	return CommentResponse{
		ID:        c.ID,
		TaskID:    c.TaskID,
		Content:   c.Content,
		PostedBy:  c.PostedBy,
		Mentions:  mentions,
		CreatedAt: c.CreatedAt,
	}
}

func ToChecklistItemResponse(i *entity.TaskChecklistItemEntity) ChecklistItemResponse {
	return ChecklistItemResponse{
		ID:          i.ID,
		TaskID:      i.TaskID,
		Title:       i.Title,
		Description: i.Description,
		IsCompleted: i.IsCompleted,
		CompletedBy: i.CompletedBy,
		CompletedAt: i.CompletedAt,
		OrderIndex:  i.OrderIndex,
	}
}
