package checkout

import (
	"context"
	"errors"

	"github.com/luxewalk/storefront-backend/internal/cart"
	"github.com/luxewalk/storefront-backend/internal/customer"
	"github.com/luxewalk/storefront-backend/internal/order"
	"github.com/luxewalk/storefront-backend/internal/payment"
)

var ErrEmptyCart = errors.New("cart is empty, nothing to check out")

// Collaborator contracts the sequencer depends on. They are satisfied by the
// customer/order services and the Stripe session client; tests swap in
// fakes.

type CustomerUpserter interface {
	Upsert(p customer.Profile) (customer.UpsertResult, error)
}

type OrderRecorder interface {
	Create(o order.Order) (order.Order, error)
	UpdateStatus(orderID string, status order.Status) (order.Order, error)
}

type CartStore interface {
	Snapshot(ctx context.Context, key string) (cart.Cart, error)
	Clear(ctx context.Context, key string) error
}

// SubmitRequest is the user-entered contact and shipping form plus the
// optional shipping rate fetched earlier in the session.
type SubmitRequest struct {
	CustomerID string `json:"customerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`

	// ShippingRate is a dollar amount; nil or NaN means checkout proceeds
	// without a shipping line in the payment session.
	ShippingRate *float64 `json:"shippingRate,omitempty"`
}

// SubmitResult hands the session back to the client for the provider
// redirect.
type SubmitResult struct {
	OrderID    string `json:"orderId"`
	SessionID  string `json:"sessionId"`
	SessionURL string `json:"sessionUrl"`
}

// ConfirmResult reports what reconciliation did.
type ConfirmResult struct {
	OrderID string `json:"orderId"`
	Updated bool   `json:"updated"`
}

// Sequencer runs checkout as a strictly ordered sequence of collaborator
// calls. Every step awaits the previous one; the first failure aborts the
// rest and leaves the cart untouched.
type Sequencer struct {
	customers CustomerUpserter
	orders    OrderRecorder
	payments  payment.Sessions
	carts     CartStore
}

func NewSequencer(customers CustomerUpserter, orders OrderRecorder, payments payment.Sessions, carts CartStore) *Sequencer {
	return &Sequencer{customers: customers, orders: orders, payments: payments, carts: carts}
}
