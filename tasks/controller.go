package tasks

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// Controller exposes the task CRUD surface over HTTP. Every route is mounted
// behind the request authenticator.
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// RegisterRoutes mounts the task routes on the given router group
func (ctrl *Controller) RegisterRoutes(r fiber.Router) {
	r.Get("/", ctrl.List)
	r.Post("/", ctrl.Create)
	r.Get("/:id", ctrl.Show)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
	r.Patch("/:id/complete", ctrl.Complete)
}

// TaskRequest is the create/update payload
type TaskRequest struct {
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	DepartmentID string     `json:"department_id"`
	DueDate      *time.Time `json:"due_date"`
	Status       string     `json:"status"`
}

// Validate will run validation rules
func (r TaskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Title,
			validation.Required,
			validation.Length(1, 255),
		),
		validation.Field(
			&r.DepartmentID,
			validation.Required,
		),
	)
}

func (r TaskRequest) toModel() (*Task, error) {
	departmentID, err := uuid.Parse(r.DepartmentID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryValidation, "invalid department id").
			WithCode(errors.CodeBadRequest)
	}

	return &Task{
		Title:        r.Title,
		Description:  r.Description,
		DepartmentID: departmentID,
		DueDate:      r.DueDate,
		Status:       TaskStatus(r.Status),
	}, nil
}

func (ctrl *Controller) List(c *fiber.Ctx) error {
	records, err := ctrl.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(records)
}

func (ctrl *Controller) Show(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	record, err := ctrl.service.GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (ctrl *Controller) Create(c *fiber.Ctx) error {
	payload := new(TaskRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid task payload").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "task validation failed").
			WithCode(errors.CodeBadRequest)
	}

	task, err := payload.toModel()
	if err != nil {
		return err
	}

	record, err := ctrl.service.Create(c.UserContext(), task)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(record)
}

func (ctrl *Controller) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	payload := new(TaskRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid task payload").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "task validation failed").
			WithCode(errors.CodeBadRequest)
	}

	task, err := payload.toModel()
	if err != nil {
		return err
	}

	record, err := ctrl.service.Update(c.UserContext(), id, task)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := ctrl.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (ctrl *Controller) Complete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	record, err := ctrl.service.MarkCompleted(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(record)
}

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.CategoryValidation, "invalid task id").
			WithCode(errors.CodeBadRequest)
	}
	return id, nil
}
