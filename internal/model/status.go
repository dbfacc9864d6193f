package model

// TaskStatus represents the lifecycle state of a single download
type TaskStatus string

const (
	// TaskStatusPending means the worker has been created but the engine was not invoked yet
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the engine call is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the engine returned without error
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the engine failed and the failure was reported
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task has not reached a terminal state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
