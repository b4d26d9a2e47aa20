package notification_dto

import (
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/dtos"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
)

type NotificationResponse struct {
	ID               string     `json:"id"`
	Type             string     `json:"type"`
	Title            string     `json:"title"`
	Message          string     `json:"message"`
	RelatedTaskID    *string    `json:"related_task_id,omitempty"`
	RelatedTaskTitle *string    `json:"related_task_title,omitempty"`
	TriggeredBy      *string    `json:"triggered_by,omitempty"`
	Read             bool       `json:"read"`
	ReadAt           *time.Time `json:"read_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type NotificationListResponse struct {
	Items       []NotificationResponse `json:"items"`
	UnreadCount int64                  `json:"unread_count"`
	Meta        *dtos.PaginationMeta   `json:"meta"`
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func ToNotificationResponse(n *entity.NotificationEntity) NotificationResponse {
	return NotificationResponse{
		ID:               n.ID,
		Type:             string(n.Kind),
		Title:            n.Title,
		Message:          n.Message,
		RelatedTaskID:    n.RelatedTaskID,
		RelatedTaskTitle: n.RelatedTaskTitle,
		TriggeredBy:      n.TriggeredBy,
		Read:             n.Read,
		ReadAt:           n.ReadAt,
		CreatedAt:        n.CreatedAt,
	}
}
