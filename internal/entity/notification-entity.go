package entity

import "time"

type NotificationKind string

const (
	NotificationTaskAssigned    NotificationKind = "task_assigned"
	NotificationStatusChanged   NotificationKind = "status_changed"
	NotificationTimelineUpdated NotificationKind = "timeline_updated"
	NotificationPriorityUpdated NotificationKind = "priority_updated"
	NotificationCommentAdded    NotificationKind = "comment_added"
	NotificationTaskOverdue     NotificationKind = "task_overdue"
)

type NotificationEntity struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	CompanyID        string           `json:"company_id"`
	Kind             NotificationKind `json:"type"`
	Title            string           `json:"title"`
	Message          string           `json:"message"`
	RelatedTaskID    *string          `json:"related_task_id,omitempty"`
	RelatedTaskTitle *string          `json:"related_task_title,omitempty"`
	TriggeredBy      *string          `json:"triggered_by,omitempty"`
	Read             bool             `json:"read"`
	CreatedAt        time.Time        `json:"created_at"`
	ReadAt           *time.Time       `json:"read_at,omitempty"`
	DeletedAt        *time.Time       `json:"deleted_at,omitempty"`
}
