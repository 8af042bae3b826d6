// Package repository wires the individual stores into a single manager the
// application composes against.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"

	"github.com/Pragadeesh-19/Task-Management/auth"
	"github.com/Pragadeesh-19/Task-Management/departments"
	"github.com/Pragadeesh-19/Task-Management/tasks"
)

// Manager exposes the stores plus transaction scoping
type Manager interface {
	Users() auth.Users
	Tasks() tasks.Tasks
	Departments() departments.Departments
	RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error
	Validate() error
}

type mngr struct {
	db          *bun.DB
	users       auth.Users
	tasks       tasks.Tasks
	departments departments.Departments
}

func NewManager(db *bun.DB) Manager {
	return &mngr{
		db:          db,
		users:       auth.NewUsersRepository(db),
		tasks:       tasks.NewTasksRepository(db),
		departments: departments.NewDepartmentsRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.tasks == nil {
		return errors.New("repository tasks should be initialized")
	}

	if m.departments == nil {
		return errors.New("repository departments should be initialized")
	}

	return nil
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() auth.Users {
	return m.users
}

func (m mngr) Tasks() tasks.Tasks {
	return m.tasks
}

func (m mngr) Departments() departments.Departments {
	return m.departments
}
