package entity

import (
	"slices"
	"time"
)

type TaskEntity struct {
	ID                      string       `json:"id"`
	CompanyID               string       `json:"company_id"`
	Title                   string       `json:"title"`
	Description             *string      `json:"description,omitempty"`
	AssignedTo              string       `json:"assigned_to"`
	AssignedBy              string       `json:"assigned_by"`
	Status                  TaskStatus   `json:"status"`
	Priority                TaskPriority `json:"priority"`
	DueDate                 time.Time    `json:"due_date"`
	StartDate               *time.Time   `json:"start_date,omitempty"`
	CompletedDate           *time.Time   `json:"completed_date,omitempty"`
	EstimatedHours          *float64     `json:"estimated_hours,omitempty"`
	ActualHours             *float64     `json:"actual_hours,omitempty"`
	ProgressPercentage      int          `json:"progress_percentage"`
	Category                *string      `json:"category,omitempty"`
	Tags                    []string     `json:"tags"`
	AssignedDepartmentID    *string      `json:"assigned_department_id,omitempty"`
	IsCrossDepartment       bool         `json:"is_cross_department"`
	IsRedirectedToTeamLead  bool         `json:"is_redirected_to_team_lead"`
	TeamLeadID              *string      `json:"team_lead_id,omitempty"`
	TeamLeadApprovalPending bool         `json:"team_lead_approval_pending"`
	Version                 int          `json:"version"`
	CreatedAt               time.Time    `json:"created_at"`
	UpdatedAt               time.Time    `json:"updated_at"`
	DeletedAt               *time.Time   `json:"deleted_at,omitempty"`
}

// TaskPatch enthält nur die Felder, die ein Update tatsächlich setzt.
type TaskPatch struct {
	Title              *string
	Description        *string
	Status             *TaskStatus
	Priority           *TaskPriority
	DueDate            *time.Time
	StartDate          *time.Time
	ProgressPercentage *int
	Category           *string
	Tags               *[]string
	EstimatedHours     *float64
	ActualHours        *float64
	// SetCompletedDate schreibt CompletedDate (auch nil) im selben UPDATE wie den Status.
	SetCompletedDate bool
	CompletedDate    *time.Time
}

func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil && p.Priority == nil &&
		p.DueDate == nil && p.StartDate == nil && p.ProgressPercentage == nil && p.Category == nil &&
		p.Tags == nil && p.EstimatedHours == nil && p.ActualHours == nil && !p.SetCompletedDate
}

type TaskCommentEntity struct {
	ID        string     `json:"id"`
	TaskID    string     `json:"task_id"`
	Content   string     `json:"content"`
	PostedBy  string     `json:"posted_by"`
	Mentions  []string   `json:"mentions"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

type TaskChecklistItemEntity struct {
	ID          string     `json:"id"`
	TaskID      string     `json:"task_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	CompletedBy *string    `json:"completed_by,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	OrderIndex  int        `json:"order_index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// OverdueTask ist eine überfällige Aufgabe, für die heute noch keine Erinnerung erzeugt wurde.
type OverdueTask struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	Title      string    `json:"title"`
	AssignedTo string    `json:"assigned_to"`
	AssignedBy string    `json:"assigned_by"`
	DueDate    time.Time `json:"due_date"`
}

type TaskStatus string

const (
	TaskPending     TaskStatus = "pending"
	TaskInProgress  TaskStatus = "in_progress"
	TaskUnderReview TaskStatus = "under_review"
	TaskCompleted   TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskUnderReview, TaskCompleted:
		return true
	}
	return false
}

func (s TaskStatus) Display() string {
	switch s {
	case TaskPending:
		return "Pending"
	case TaskInProgress:
		return "In Progress"
	case TaskUnderReview:
		return "Under Review"
	case TaskCompleted:
		return "Completed"
	}
	return string(s)
}

// taskStatusTransitions listet die erlaubten Folgezustände. Derzeit ist jeder gültige Status von jedem aus erreichbar.
var taskStatusTransitions = map[TaskStatus][]TaskStatus{
	TaskPending:     {TaskInProgress, TaskUnderReview, TaskCompleted},
	TaskInProgress:  {TaskPending, TaskUnderReview, TaskCompleted},
	TaskUnderReview: {TaskPending, TaskInProgress, TaskCompleted},
	TaskCompleted:   {TaskPending, TaskInProgress, TaskUnderReview},
}

func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	return slices.Contains(taskStatusTransitions[s], next)
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p TaskPriority) Display() string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	case PriorityUrgent:
		return "Urgent"
	}
	return string(p)
}

// TaskScopeKind beschreibt, welche Aufgaben ein Principal sehen darf.
type TaskScopeKind string

const (
	ScopeNone                 TaskScopeKind = "none"
	ScopeCompany              TaskScopeKind = "company"
	ScopeDepartmentOrAssigner TaskScopeKind = "department_or_assigner"
	ScopeAssignee             TaskScopeKind = "assignee"
)

type TaskScope struct {
	Kind         TaskScopeKind
	CompanyID    string
	PrincipalID  string
	DepartmentID *string
}

type TaskListFilter struct {
	Status   *TaskStatus
	Priority *TaskPriority
	Page     int
	Limit    int
}

// DateOnly schneidet die Uhrzeit ab; Fälligkeiten werden tagesgenau verglichen.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
