package order

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/luxewalk/storefront-backend/internal/identity"
)

// Handler exposes the order-record API. These routes sit behind the identity
// middleware: direct order access always belongs to a signed-in customer,
// while guest orders flow through the checkout endpoints instead.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.createOrder)
	app.Put("/api/v1/orders", h.updateStatus)
	app.Get("/api/v1/orders", h.getOrders)
}

type createOrderRequest struct {
	OrderID  string    `json:"orderId"`
	Products []Product `json:"products"`
	Status   Status    `json:"status"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	customerID, err := identity.CustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	ord := Order{
		OrderID:    payload.OrderID,
		CustomerID: customerID,
		Products:   payload.Products,
		Status:     payload.Status,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if ord.OrderID == "" {
		ord.OrderID = NewOrderID(customerID)
	}

	created, err := h.service.Create(ord)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyOrder), errors.Is(err, ErrMissingFields), errors.Is(err, ErrBadStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

type updateStatusRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	orderID := c.Query("order_id")
	if orderID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "missing order_id"})
	}

	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	updated, err := h.service.UpdateStatus(orderID, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case errors.Is(err, ErrBadStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

// getOrders returns one order by order_id, or the authenticated customer's
// order history newest first.
func (h *Handler) getOrders(c *fiber.Ctx) error {
	if orderID := c.Query("order_id"); orderID != "" {
		ord, err := h.service.GetByOrderID(orderID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
		return c.JSON(ord)
	}

	customerID, err := identity.CustomerIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByCustomerID(customerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}
