package worker_handler

import (
	"context"
	"fmt"
	"time"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/entity"
	worker_task "github.com/Xenn-00/arbeitsplatz-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const overdueBatchSize = 500

// PersistTaskNotification schreibt eine eingereihte Benachrichtigung. Insert ist per ID idempotent.
func (wh *WorkerHander) PersistTaskNotification() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.TaskNotificationPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when trying to unmarshal task payload.")
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}

		if err := wh.nr.Insert(ctx, p.Entity()); err != nil {
			log.Error().Err(err).Str("recipient", p.RecipientID).Msg("Worker handler: Failed to persist notification")
			return err
		}
		return nil
	}
}

// OverdueTaskReminders erzeugt pro überfälliger Aufgabe höchstens eine Erinnerung am Tag.
func (wh *WorkerHander) OverdueTaskReminders() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		today := entity.DateOnly(wh.now())

		tasks, err := wh.tr.ListOverdueTasks(ctx, today, overdueBatchSize)
		if err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when list overdue tasks")
			return err
		}
		if len(tasks) == 0 {
			return nil
		}

		notified := make([]string, 0, len(tasks))
		for _, task := range tasks {
			n := overdueNotification(task, wh.now())
			if err := wh.nr.Insert(ctx, n); err != nil {
				log.Error().Err(err).Str("task_id", task.ID).Msg("Worker handler: Failed to create overdue reminder")
				continue
			}
			notified = append(notified, task.ID)
		}

		if err := wh.tr.MarkOverdueNotified(ctx, notified, today); err != nil {
			log.Error().Err(err).Msg("Worker handler: Error occured when update overdue tasks")
			return err
		}

		log.Info().Int("count", len(notified)).Msg("Worker handler: overdue reminders created")
		return nil
	}
}

func overdueNotification(task entity.OverdueTask, now time.Time) *entity.NotificationEntity {
	taskID, title := task.ID, task.Title
	return &entity.NotificationEntity{
		ID:               uuid.Must(uuid.NewV7()).String(),
		UserID:           task.AssignedTo,
		CompanyID:        task.CompanyID,
		Kind:             entity.NotificationTaskOverdue,
		Title:            "Task Overdue",
		Message:          fmt.Sprintf("Task \"%s\" was due on %s", task.Title, task.DueDate.Format("2006-01-02")),
		RelatedTaskID:    &taskID,
		RelatedTaskTitle: &title,
		CreatedAt:        now,
	}
}
