package departments

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// Controller exposes the department CRUD surface over HTTP
type Controller struct {
	service *Service
}

func NewController(service *Service) *Controller {
	return &Controller{service: service}
}

// RegisterRoutes mounts the department routes on the given router group
func (ctrl *Controller) RegisterRoutes(r fiber.Router) {
	r.Get("/", ctrl.List)
	r.Post("/", ctrl.Create)
	r.Get("/:id", ctrl.Show)
	r.Put("/:id", ctrl.Update)
	r.Delete("/:id", ctrl.Delete)
}

// DepartmentRequest is the create/update payload
type DepartmentRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Validate will run validation rules
func (r DepartmentRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Name,
			validation.Required,
			validation.Length(1, 255),
		),
	)
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
	payload := new(DepartmentRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid department payload").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "department validation failed").
			WithCode(errors.CodeBadRequest)
	}

	record, err := ctrl.service.Create(c.UserContext(), &Department{
		Name:        payload.Name,
		Description: payload.Description,
	})
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

	payload := new(DepartmentRequest)
	if err := c.BodyParser(payload); err != nil {
		return errors.Wrap(err, errors.CategoryBadInput, "invalid department payload").
			WithCode(errors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return errors.Wrap(err, errors.CategoryValidation, "department validation failed").
			WithCode(errors.CodeBadRequest)
	}

	record, err := ctrl.service.Update(c.UserContext(), id, &Department{
		Name:        payload.Name,
		Description: payload.Description,
	})
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

func parseID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, errors.CategoryValidation, "invalid department id").
			WithCode(errors.CodeBadRequest)
	}
	return id, nil
}
