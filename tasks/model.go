package tasks

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/Pragadeesh-19/Task-Management/departments"
)

// TaskStatus is the lifecycle state of a task
type TaskStatus = string

const (
	// StatusPending is the initial state of every task
	StatusPending TaskStatus = "PENDING"
	// StatusInProgress marks a task someone started working on
	StatusInProgress TaskStatus = "IN_PROGRESS"
	// StatusCompleted is terminal; completed tasks cannot be completed again
	StatusCompleted TaskStatus = "COMPLETED"
)

// IsValidStatus checks if the status is one of the predefined states
func IsValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	default:
		return false
	}
}

// Task is the task model
type Task struct {
	bun.BaseModel `bun:"table:tasks,alias:tsk"`
	ID            uuid.UUID               `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Title         string                  `bun:"title,notnull" json:"title,omitempty"`
	Description   string                  `bun:"description" json:"description,omitempty"`
	DepartmentID  uuid.UUID               `bun:"department_id,notnull,type:uuid" json:"department_id,omitempty"`
	Department    *departments.Department `bun:"rel:belongs-to,join:department_id=id" json:"department,omitempty"`
	DueDate       *time.Time              `bun:"due_date,nullzero" json:"due_date,omitempty"`
	Status        TaskStatus              `bun:"status,notnull" json:"status,omitempty"`
	CreatedAt     *time.Time              `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time              `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}
