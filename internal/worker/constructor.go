package worker

import (
	"fmt"

	worker_handler "github.com/Xenn-00/arbeitsplatz-meister/internal/worker/handlers"
	worker_task "github.com/Xenn-00/arbeitsplatz-meister/internal/worker/tasks"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHander) {
	mux.HandleFunc(worker_task.TaskNotificationEvent, h.PersistTaskNotification())
	mux.HandleFunc(worker_task.TaskOverdueTaskReminders, h.OverdueTaskReminders())
}

func RegisterCronJobs(s *asynq.Scheduler, overdueSpec string) error {
	jobs := []struct {
		spec  string
		task  *asynq.Task
		queue string
		desc  string
	}{
		{
			spec:  overdueSpec,
			task:  asynq.NewTask(worker_task.TaskOverdueTaskReminders, nil),
			queue: "low",
			desc:  "create overdue task reminders",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
