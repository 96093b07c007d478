package domain

import "time"

type TaskStatus int

const (
	TaskStatusPending TaskStatus = iota
	TaskStatusInProgress
	TaskStatusInReview
	TaskStatusCompleted
)

var taskStatusNames = []string{"pending", "in_progress", "in_review", "completed"}

func (s TaskStatus) String() string {
	if s < 0 || int(s) >= len(taskStatusNames) {
		return "unknown"
	}

	return taskStatusNames[s]
}

// Task is a row of the tasks table. Ownership lives in users_tasks.
type Task struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Status      TaskStatus `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}
