package tasks

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

// Store is the slice of the task repository the service needs
type Store interface {
	Find(ctx context.Context, id uuid.UUID) (*Task, error)
	Insert(ctx context.Context, task *Task) (*Task, error)
	Save(ctx context.Context, task *Task) (*Task, error)
	List(ctx context.Context, criteria ...repository.SelectCriteria) ([]*Task, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
}

// Service carries the task business rules on top of the store
type Service struct {
	repo   Store
	logger Logger
}

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

func NewService(repo Store) *Service {
	return &Service{
		repo:   repo,
		logger: noopLogger{},
	}
}

func (s *Service) WithLogger(l Logger) *Service {
	if l != nil {
		s.logger = l
	}
	return s
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	task, err := s.repo.Find(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrTaskNotFound
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to load task")
	}
	return task, nil
}

func (s *Service) List(ctx context.Context) ([]*Task, error) {
	return s.repo.List(ctx)
}

// Create persists a new task. Status is always forced to pending regardless
// of what the caller supplied.
func (s *Service) Create(ctx context.Context, task *Task) (*Task, error) {
	task.Status = StatusPending
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		s.logger.Error("task create failed", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to create task")
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, updated *Task) (*Task, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Title = updated.Title
	existing.Description = updated.Description
	existing.DueDate = updated.DueDate
	if updated.Status != "" {
		if !IsValidStatus(updated.Status) {
			return nil, errors.New("unknown task status", errors.CategoryValidation).
				WithCode(errors.CodeBadRequest).
				WithMetadata(map[string]any{"status": updated.Status})
		}
		existing.Status = updated.Status
	}

	record, err := s.repo.Save(ctx, existing)
	if err != nil {
		s.logger.Error("task update failed", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to update task")
	}
	return record, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("task delete failed", "error", err)
		return errors.Wrap(err, errors.CategoryInternal, "failed to delete task")
	}
	return nil
}

// MarkCompleted transitions a task into the terminal completed state
func (s *Service) MarkCompleted(ctx context.Context, id uuid.UUID) (*Task, error) {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if task.Status == StatusCompleted {
		return nil, ErrTaskAlreadyCompleted
	}

	task.Status = StatusCompleted
	record, err := s.repo.Save(ctx, task)
	if err != nil {
		s.logger.Error("task complete failed", "error", err)
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to mark task as completed")
	}
	return record, nil
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
