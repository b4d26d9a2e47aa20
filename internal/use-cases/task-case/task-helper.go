package task_case

import (
	"fmt"
	"slices"
	"time"

	task_dto "github.com/Xenn-00/arbeitsplatz-meister/internal/dtos/task-dto"
	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	app_errors "github.com/Xenn-00/arbeitsplatz-meister/internal/errors"
	worker_task "github.com/Xenn-00/arbeitsplatz-meister/internal/worker/tasks"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultPage  = 1
	defaultLimit = 20
)

func parseDate(field, value string) (time.Time, *app_errors.AppError) {
	d, err := time.Parse(task_dto.DateLayout, value)
	if err != nil {
		return time.Time{}, app_errors.NewInvalidInput(fmt.Sprintf("Invalid %s, expected YYYY-MM-DD", field))
	}
	return d, nil
}

func parseOptionalDate(field string, value *string) (*time.Time, *app_errors.AppError) {
	if value == nil {
		return nil, nil
	}
	d, err := parseDate(field, *value)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// validateSchedule prüft die Datumsinvarianten: Fälligkeit nicht in der Vergangenheit, Start nicht nach Fälligkeit.
func validateSchedule(today time.Time, due time.Time, start *time.Time, dueChanged bool) *app_errors.AppError {
	if dueChanged && due.Before(today) {
		return app_errors.NewInvalidInput("Due date cannot be in the past")
	}
	if start != nil && start.After(due) {
		return app_errors.NewInvalidInput("Start date cannot be after due date")
	}
	return nil
}

func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

// recipientsExcept liefert die Empfänger ohne Duplikate und ohne den Auslöser.
func recipientsExcept(actorID string, ids ...string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || id == actorID || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	return out
}

type notice struct {
	kind      entity.NotificationKind
	recipient string
	title     string
	message   string
}

// notify reiht Benachrichtigungen ein. Fehler werden nur protokolliert und nie an den Aufrufer gegeben.
func (s *TaskService) notify(task *entity.TaskEntity, actor *entity.Principal, notices ...notice) {
	triggeredBy := actor.ID
	for _, n := range notices {
		payload := &worker_task.TaskNotificationPayload{
			NotificationID: uuid.Must(uuid.NewV7()).String(),
			Kind:           n.kind,
			RecipientID:    n.recipient,
			CompanyID:      task.CompanyID,
			TaskID:         task.ID,
			TaskTitle:      task.Title,
			Title:          n.title,
			Message:        n.message,
			TriggeredBy:    &triggeredBy,
			OccurredAt:     s.now(),
		}
		if err := s.queue.EnqueueTaskNotification(payload); err != nil {
			log.Error().Err(err).
				Str("task_id", task.ID).
				Str("kind", string(n.kind)).
				Str("recipient", n.recipient).
				Msg("Benachrichtigung konnte nicht eingereiht werden")
		}
	}
}

func assignmentNotices(task *entity.TaskEntity, actor *entity.Principal, assignee *entity.Principal) []notice {
	notices := []notice{
		{
			kind:      entity.NotificationTaskAssigned,
			recipient: task.AssignedTo,
			title:     "New Task Assigned",
			message:   fmt.Sprintf("%s assigned you the task \"%s\"", actor.Name, task.Title),
		},
		{
			kind:      entity.NotificationTaskAssigned,
			recipient: task.AssignedBy,
			title:     "Task Assigned",
			message:   fmt.Sprintf("You assigned the task \"%s\" to %s", task.Title, assignee.Name),
		},
	}
	if task.IsRedirectedToTeamLead && task.TeamLeadID != nil {
		notices = append(notices, notice{
			kind:      entity.NotificationTaskAssigned,
			recipient: *task.TeamLeadID,
			title:     "Task Approval Required",
			message:   fmt.Sprintf("%s assigned the task \"%s\" to %s in your department, approval pending", actor.Name, task.Title, assignee.Name),
		})
	}
	return notices
}

func statusNotices(task *entity.TaskEntity, actor *entity.Principal, old, next entity.TaskStatus) []notice {
	var notices []notice
	for _, id := range recipientsExcept(actor.ID, task.AssignedBy, task.AssignedTo) {
		n := notice{kind: entity.NotificationStatusChanged, recipient: id}
		if id == task.AssignedBy {
			n.title = "Task Status Updated"
			n.message = fmt.Sprintf("Task \"%s\" status changed from %s to %s by %s", task.Title, old.Display(), next.Display(), actor.Name)
		} else {
			n.title = "Your Task Status Changed"
			n.message = fmt.Sprintf("Task \"%s\" status changed to %s by %s", task.Title, next.Display(), actor.Name)
		}
		notices = append(notices, n)
	}
	return notices
}

func priorityNotices(task *entity.TaskEntity, actor *entity.Principal, old, next entity.TaskPriority) []notice {
	var notices []notice
	for _, id := range recipientsExcept(actor.ID, task.AssignedBy, task.AssignedTo) {
		message := fmt.Sprintf("Task \"%s\" priority changed to %s by %s", task.Title, next.Display(), actor.Name)
		if id == task.AssignedBy {
			message = fmt.Sprintf("Task \"%s\" priority changed from %s to %s by %s", task.Title, old.Display(), next.Display(), actor.Name)
		}
		notices = append(notices, notice{kind: entity.NotificationPriorityUpdated, recipient: id, title: "Task Priority Updated", message: message})
	}
	return notices
}

func timelineNotices(task *entity.TaskEntity, actor *entity.Principal, old, next time.Time) []notice {
	var notices []notice
	for _, id := range recipientsExcept(actor.ID, task.AssignedBy, task.AssignedTo) {
		notices = append(notices, notice{
			kind:      entity.NotificationTimelineUpdated,
			recipient: id,
			title:     "Task Deadline Updated",
			message:   fmt.Sprintf("Task \"%s\" deadline changed from %s to %s by %s", task.Title, old.Format(task_dto.DateLayout), next.Format(task_dto.DateLayout), actor.Name),
		})
	}
	return notices
}

func commentNotices(task *entity.TaskEntity, actor *entity.Principal) []notice {
	var notices []notice
	for _, id := range recipientsExcept(actor.ID, task.AssignedTo, task.AssignedBy) {
		notices = append(notices, notice{
			kind:      entity.NotificationCommentAdded,
			recipient: id,
			title:     "Comment Added",
			message:   fmt.Sprintf("%s commented on task \"%s\"", actor.Name, task.Title),
		})
	}
	return notices
}
