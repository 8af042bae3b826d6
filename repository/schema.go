package repository

import (
	"context"

	"github.com/uptrace/bun"

	"github.com/Pragadeesh-19/Task-Management/auth"
	"github.com/Pragadeesh-19/Task-Management/departments"
	"github.com/Pragadeesh-19/Task-Management/tasks"
)

// CreateSchema ensures the backing tables exist. Departments go first so the
// task foreign key has something to point at.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*auth.User)(nil),
		(*departments.Department)(nil),
		(*tasks.Task)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().
			Model(model).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}
