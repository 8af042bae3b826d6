package departments

import (
	"context"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Departments is the department store
type Departments interface {
	repository.Repository[*Department]

	Find(ctx context.Context, id uuid.UUID) (*Department, error)
	Insert(ctx context.Context, department *Department) (*Department, error)
	Save(ctx context.Context, department *Department) (*Department, error)
	List(ctx context.Context, criteria ...repository.SelectCriteria) ([]*Department, error)
	ListTx(ctx context.Context, tx bun.IDB, criteria ...repository.SelectCriteria) ([]*Department, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	DeleteByIDTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error
}

type departmentsRepo struct {
	repository.Repository[*Department]
	db *bun.DB
}

var (
	_ Departments                        = (*departmentsRepo)(nil)
	_ Store                              = (*departmentsRepo)(nil)
	_ repository.Repository[*Department] = (*departmentsRepo)(nil)
)

func NewDepartmentsRepository(db *bun.DB) Departments {
	repo := repository.NewRepository[*Department](db, repository.ModelHandlers[*Department]{
		NewRecord: func() *Department { return &Department{} },
		GetID: func(d *Department) uuid.UUID {
			if d == nil {
				return uuid.Nil
			}
			return d.ID
		},
		SetID: func(d *Department, id uuid.UUID) {
			if d != nil {
				d.ID = id
			}
		},
	})

	return &departmentsRepo{
		Repository: repo,
		db:         db,
	}
}

func (r *departmentsRepo) Find(ctx context.Context, id uuid.UUID) (*Department, error) {
	return r.Repository.GetByID(ctx, id.String())
}

func (r *departmentsRepo) Insert(ctx context.Context, department *Department) (*Department, error) {
	return r.Repository.Create(ctx, department)
}

func (r *departmentsRepo) Save(ctx context.Context, department *Department) (*Department, error) {
	return r.Repository.Update(ctx, department)
}

func (r *departmentsRepo) List(ctx context.Context, criteria ...repository.SelectCriteria) ([]*Department, error) {
	return r.ListTx(ctx, r.db, criteria...)
}

func (r *departmentsRepo) ListTx(ctx context.Context, tx bun.IDB, criteria ...repository.SelectCriteria) ([]*Department, error) {
	records := []*Department{}
	q := tx.NewSelect().Model(&records)

	for _, c := range criteria {
		q.Apply(c)
	}

	if err := q.Scan(ctx); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *departmentsRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.DeleteByIDTx(ctx, r.db, id)
}

func (r *departmentsRepo) DeleteByIDTx(ctx context.Context, tx bun.IDB, id uuid.UUID) error {
	_, err := tx.NewDelete().
		Model((*Department)(nil)).
		Where("?TableAlias.id = ?", id).
		Exec(ctx)
	return err
}
