package departments

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

const TextCodeDepartmentNotFound = "DEPARTMENT_NOT_FOUND"

// ErrDepartmentNotFound is returned when a department id does not resolve.
var ErrDepartmentNotFound = errors.New("department not found", errors.CategoryNotFound).
	WithTextCode(TextCodeDepartmentNotFound).
	WithCode(errors.CodeNotFound)

// Store is the slice of the department repository the service needs
type Store interface {
	Find(ctx context.Context, id uuid.UUID) (*Department, error)
	Insert(ctx context.Context, department *Department) (*Department, error)
	Save(ctx context.Context, department *Department) (*Department, error)
	List(ctx context.Context, criteria ...repository.SelectCriteria) ([]*Department, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Service carries the department business rules on top of the store
type Service struct {
	repo Store
}

func NewService(repo Store) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Department, error) {
	record, err := s.repo.Find(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrDepartmentNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load department")
	}
	return record, nil
}

func (s *Service) List(ctx context.Context) ([]*Department, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, department *Department) (*Department, error) {
	if department.ID == uuid.Nil {
		department.ID = uuid.New()
	}

	record, err := s.repo.Insert(ctx, department)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create department")
	}
	return record, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, department *Department) (*Department, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = department.Name
	existing.Description = department.Description

	record, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update department")
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete department")
	}
	return nil
}
