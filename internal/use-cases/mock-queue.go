package use_cases

import (
	"sync"

	"github.com/Xenn-00/arbeitsplatz-meister/internal/queue"
	worker_task "github.com/Xenn-00/arbeitsplatz-meister/internal/worker/tasks"
	"github.com/stretchr/testify/mock"
)

var _ queue.TaskQueueClient = (*MockTaskQueue)(nil)

// Mock TaskQueue for testing. Eingereihte Payloads werden zusätzlich in Enqueued gesammelt.
type MockTaskQueue struct {
	mock.Mock

	mu       sync.Mutex
	Enqueued []*worker_task.TaskNotificationPayload
}

func (m *MockTaskQueue) EnqueueTaskNotification(payload *worker_task.TaskNotificationPayload) error {
	m.mu.Lock()
	m.Enqueued = append(m.Enqueued, payload)
	m.mu.Unlock()

	args := m.Called(payload)
	return args.Error(0)
}

// Recipients liefert die Empfänger aller eingereihten Benachrichtigungen einer Art.
func (m *MockTaskQueue) Recipients(kind string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []string
	for _, p := range m.Enqueued {
		if string(p.Kind) == kind {
			ids = append(ids, p.RecipientID)
		}
	}
	return ids
}
