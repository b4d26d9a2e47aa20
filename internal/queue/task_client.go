package queue

import (
	worker_task "github.com/Xenn-00/arbeitsplatz-meister/internal/worker/tasks"
	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

type TaskQueueClient interface {
	EnqueueTaskNotification(payload *worker_task.TaskNotificationPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueTaskNotification(payload *worker_task.TaskNotificationPayload) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(worker_task.TaskNotificationEvent, p, asynq.Queue("default"), asynq.MaxRetry(3))

	_, err = q.client.Enqueue(task)
	return err
}
