package worker_task

import (
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
)

const TaskNotificationEvent = "notification:task_event"

const TaskOverdueTaskReminders = "low:overdue_task_reminders"

// TaskNotificationPayload beschreibt genau eine Benachrichtigung für einen Empfänger.
// NotificationID wird beim Einreihen vergeben, damit Wiederholungen keine Duplikate erzeugen.
type TaskNotificationPayload struct {
	NotificationID string                  `json:"notification_id"`
	Kind           entity.NotificationKind `json:"kind"`
	RecipientID    string                  `json:"recipient_id"`
	CompanyID      string                  `json:"company_id"`
	TaskID         string                  `json:"task_id"`
	TaskTitle      string                  `json:"task_title"`
	Title          string                  `json:"title"`
	Message        string                  `json:"message"`
	TriggeredBy    *string                 `json:"triggered_by,omitempty"`
	OccurredAt     time.Time               `json:"occurred_at"`
}

func (p *TaskNotificationPayload) Entity() *entity.NotificationEntity {
	taskID, taskTitle := p.TaskID, p.TaskTitle
	return &entity.NotificationEntity{
		ID:               p.NotificationID,
		UserID:           p.RecipientID,
		CompanyID:        p.CompanyID,
		Kind:             p.Kind,
		Title:            p.Title,
		Message:          p.Message,
		RelatedTaskID:    &taskID,
		RelatedTaskTitle: &taskTitle,
		TriggeredBy:      p.TriggeredBy,
		CreatedAt:        p.OccurredAt,
	}
}
