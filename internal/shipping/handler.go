package shipping

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the rate lookup used by the checkout page.
type Handler struct {
	client RateClient
}

func NewHandler(client RateClient) *Handler {
	return &Handler{client: client}
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Post("/api/v1/get-rates", h.getRates)
}

type rateLookupRequest struct {
	Address  *Address  `json:"address"`
	Packages []Package `json:"packages"`
}

func (h *Handler) getRates(c *fiber.Ctx) error {
	payload := new(rateLookupRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Address == nil || len(payload.Packages) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing address or package information"})
	}

	quote, err := h.client.Quote(c.UserContext(), *payload.Address, payload.Packages)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingAddress), errors.Is(err, ErrMissingPackages):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.Is(err, ErrNoRates):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
		}
	}

	return c.JSON(quote)
}
