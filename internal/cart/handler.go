package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/luxewalk/storefront-backend/internal/identity"
)

// Handler delegates cart operations to the cart service. This keeps
// cart-specific HTTP routing isolated.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Post("/api/v1/cart", h.addToCart)
	app.Post("/api/v1/cart/decrement", h.decrement)
	app.Delete("/api/v1/cart/:id", h.removeFromCart)
	app.Delete("/api/v1/cart", h.clearCart)
}

type cartView struct {
	Lines      []Line  `json:"lines"`
	Subtotal   float64 `json:"subtotal"`
	TotalItems int     `json:"totalItems"`
}

func view(c Cart) cartView {
	lines := c.Lines
	if lines == nil {
		lines = []Line{}
	}
	return cartView{Lines: lines, Subtotal: c.Subtotal(), TotalItems: c.TotalItems()}
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	key := identity.CartKey(c)
	return c.JSON(view(h.service.Get(c.UserContext(), key)))
}

func (h *Handler) addToCart(c *fiber.Ctx) error {
	payload := new(Line)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	key := identity.CartKey(c)
	updated, err := h.service.Add(c.UserContext(), key, *payload)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyProductID), errors.Is(err, ErrBadQuantity), errors.Is(err, ErrNoVariant):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.Status(fiber.StatusOK).JSON(view(updated))
}

type decrementRequest struct {
	ID string `json:"id"`
}

func (h *Handler) decrement(c *fiber.Ctx) error {
	payload := new(decrementRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "id is required"})
	}

	key := identity.CartKey(c)
	updated, err := h.service.Decrement(c.UserContext(), key, payload.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(view(updated))
}

func (h *Handler) removeFromCart(c *fiber.Ctx) error {
	id := c.Params("id")
	key := identity.CartKey(c)
	updated, err := h.service.Remove(c.UserContext(), key, id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(view(updated))
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	key := identity.CartKey(c)
	if err := h.service.Clear(c.UserContext(), key); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
