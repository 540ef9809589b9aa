package review

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/reviews", h.getReviews)
	app.Post("/api/v1/reviews", h.createReview)
}

func (h *Handler) getReviews(c *fiber.Ctx) error {
	productID := c.Query("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId query parameter is required"})
	}
	return c.JSON(h.service.ListByProductID(productID))
}

func (h *Handler) createReview(c *fiber.Ctx) error {
	payload := new(Review)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	created, err := h.service.Create(*payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingProduct), errors.Is(err, ErrMissingName), errors.Is(err, ErrBadRating):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}
