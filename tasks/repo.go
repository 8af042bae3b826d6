package tasks

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Tasks is the task store
type Tasks interface {
	repository.Repository[*Task]

	Find(ctx context.Context, id uuid.UUID) (*Task, error)
	Insert(ctx context.Context, task *Task) (*Task, error)
	Save(ctx context.Context, task *Task) (*Task, error)
	List(ctx context.Context, criteria ...repository.SelectCriteria) ([]*Task, error)
	ListTx(ctx context.Context, tx bun.IDB, criteria ...repository.SelectCriteria) ([]*Task, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByIDTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error
}

type tasksRepo struct {
	repository.Repository[*Task]
	db *bun.DB
}

var (
	_ Tasks                        = (*tasksRepo)(nil)
	_ Store                        = (*tasksRepo)(nil)
	_ repository.Repository[*Task] = (*tasksRepo)(nil)
)

func NewTasksRepository(db *bun.DB) Tasks {
	repo := repository.NewRepository[*Task](db, repository.ModelHandlers[*Task]{
		NewRecord: func() *Task { return &Task{} },
		GetID: func(t *Task) uuid.UUID {
			if t == nil {
				return uuid.Nil
			}
			return t.ID
		},
		SetID: func(t *Task, id uuid.UUID) {
			if t != nil {
				t.ID = id
			}
		},
	})

	return &tasksRepo{
		Repository: repo,
		db:         db,
	}
}

func (r *tasksRepo) Find(ctx context.Context, id uuid.UUID) (*Task, error) {
	return r.Repository.GetByID(ctx, id.String())
}

func (r *tasksRepo) Insert(ctx context.Context, task *Task) (*Task, error) {
	return r.Repository.Create(ctx, task)
}

func (r *tasksRepo) Save(ctx context.Context, task *Task) (*Task, error) {
	return r.Repository.Update(ctx, task)
}

func (r *tasksRepo) List(ctx context.Context, criteria ...repository.SelectCriteria) ([]*Task, error) {
	return r.ListTx(ctx, r.db, criteria...)
}

func (r *tasksRepo) ListTx(ctx context.Context, tx bun.IDB, criteria ...repository.SelectCriteria) ([]*Task, error) {
	records := []*Task{}
	q := tx.NewSelect().Model(&records)

	for _, c := range criteria {
		q.Apply(c)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *tasksRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.DeleteByIDTx(ctx, r.db, id)
}

func (r *tasksRepo) DeleteByIDTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error {
	_, err := tx.NewDelete().
		Model((*Task)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return err
}
