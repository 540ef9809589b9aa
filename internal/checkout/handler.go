package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/luxewalk/storefront-backend/internal/identity"
	"github.com/luxewalk/storefront-backend/internal/order"
)

// Handler exposes the checkout sequence and post-payment reconciliation.
// Both endpoints are public: guest checkout is allowed, and the success page
// calls confirm before any sign-in happens.
type Handler struct {
	sequencer *Sequencer
}

func NewHandler(s *Sequencer) *Handler {
	return &Handler{sequencer: s}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.submit)
	app.Post("/api/v1/checkout/confirm", h.confirm)
	app.Get("/api/v1/checkout/session", h.getSession)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	payload := new(SubmitRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// A verified identity token wins over whatever the body claims.
	if id, err := identity.CustomerIDFromCtx(c); err == nil {
		payload.CustomerID = id
	}

	result, err := h.sequencer.Submit(c.UserContext(), identity.CartKey(c), *payload)
	if err != nil {
		var fields FieldErrors
		switch {
		case errors.As(err, &fields):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error(), "fields": fields})
		case errors.Is(err, ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(result)
}

type confirmRequest struct {
	SessionID string `json:"sessionId"`
}

func (h *Handler) confirm(c *fiber.Ctx) error {
	payload := new(confirmRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.SessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing sessionId"})
	}

	result, err := h.sequencer.Confirm(c.UserContext(), payload.SessionID, identity.CartKey(c))
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}

	return c.JSON(result)
}

// getSession returns the raw session details, mirroring the original
// success-page lookup.
func (h *Handler) getSession(c *fiber.Ctx) error {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing session_id"})
	}

	sess, err := h.sequencer.payments.Retrieve(sessionID)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"id":            sess.ID,
		"paymentStatus": sess.PaymentStatus,
		"amountTotal":   sess.AmountTotal,
		"metadata":      sess.Metadata,
	})
}
