package domain

import "time"

// TaskStatus is the closed task state enumeration.
type TaskStatus string

const (
	TaskToDo       TaskStatus = "To Do"
	TaskInProgress TaskStatus = "In Progress"
	TaskBlocked    TaskStatus = "Blocked"
	TaskDone       TaskStatus = "Done"
)

// TaskPriority is the closed task priority enumeration.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "Low"
	PriorityMedium   TaskPriority = "Medium"
	PriorityHigh     TaskPriority = "High"
	PriorityCritical TaskPriority = "Critical"
)

// Task is a unit of work belonging to a project.
type Task struct {
	ID          string       `json:"id"`
	ProjectID   string       `json:"project_id"`
	Title       string       `json:"title"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	Owner       string       `json:"owner"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	LastUpdated time.Time    `json:"last_updated"`
}

func (t *Task) IsDone() bool {
	return t != nil && t.Status == TaskDone
}
