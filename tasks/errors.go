package tasks

import "github.com/goliatone/go-errors"

const (
	TextCodeTaskNotFound     = "TASK_NOT_FOUND"
	TextCodeAlreadyCompleted = "TASK_ALREADY_COMPLETED"
)

// ErrTaskNotFound is returned when a task id does not resolve to a record.
var ErrTaskNotFound = errors.New("task not found", errors.CategoryNotFound).
	WithTextCode(TextCodeTaskNotFound).
	WithCode(errors.CodeNotFound)

// ErrTaskAlreadyCompleted is returned when completing a completed task.
var ErrTaskAlreadyCompleted = errors.New("task is already completed", errors.CategoryConflict).
	WithTextCode(TextCodeAlreadyCompleted).
	WithCode(errors.CodeBadRequest)
