package customer

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Handler delegates customer-profile operations to the customer service.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/customers", h.upsertCustomer)
	app.Get("/api/v1/customers", h.getCustomer)
}

func (h *Handler) upsertCustomer(c *fiber.Ctx) error {
	payload := new(Profile)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	result, err := h.service.Upsert(*payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrBadEmail):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	status := fiber.StatusOK
	if result.Status == UpsertCreated {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(result)
}

func (h *Handler) getCustomer(c *fiber.Ctx) error {
	id := c.Query("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing required query parameter: id"})
	}

	profile, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "not_found", "message": "customer does not exist"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "found", "customer": profile})
}
