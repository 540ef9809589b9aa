package product

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
	app.Get("/api/v1/products", h.getProducts)
}

// getProducts dispatches on query parameters: ?id= and ?slug= return a
// single product, ?search= and ?tag= filter, otherwise the full catalog.
func (h *Handler) getProducts(c *fiber.Ctx) error {
	if id := c.Query("id"); id != "" {
		p, err := h.service.GetByID(id)
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(p)
	}

	if slug := c.Query("slug"); slug != "" {
		p, err := h.service.GetBySlug(slug)
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(p)
	}

	if query := c.Query("search"); query != "" {
		results, err := h.service.Search(query)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(results)
	}

	if tag := c.Query("tag"); tag != "" {
		return c.JSON(h.service.ListByTag(tag))
	}

	return c.JSON(h.service.List())
}
