package checkout

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/luxewalk/storefront-backend/internal/customer"
	"github.com/luxewalk/storefront-backend/internal/order"
	"github.com/luxewalk/storefront-backend/internal/payment"
)

// Submit runs the checkout sequence: validate, upsert the customer profile,
// record the pending order, create the payment session, and hand the session
// back for the redirect. The order record must exist before the session is
// created, because the session embeds the order id that reconciliation
// resolves later. The cart is not cleared here; only a confirmed payment
// clears it, so an abandoned payment page leaves the cart intact for retry.
func (s *Sequencer) Submit(ctx context.Context, cartKey string, req SubmitRequest) (SubmitResult, error) {
	if err := validate(req); err != nil {
		return SubmitResult{}, err
	}

	// An unreachable cart store is not an empty cart; checkout must not
	// proceed on a guess.
	snapshot, err := s.carts.Snapshot(ctx, cartKey)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("read cart: %w", err)
	}
	if len(snapshot.Lines) == 0 {
		return SubmitResult{}, ErrEmptyCart
	}

	customerID := req.CustomerID
	if customerID == "" {
		customerID = customer.GuestID
	}

	if _, err := s.customers.Upsert(customer.Profile{
		CustomerID: customerID,
		Name:       req.Name,
		Email:      req.Email,
		Contact:    req.Contact,
		Address:    fmt.Sprintf("%s, %s, %s, %s", req.Address, req.City, req.State, req.ZipCode),
	}); err != nil {
		return SubmitResult{}, fmt.Errorf("persist customer profile: %w", err)
	}

	// The order id is generated once, before any further network call, and
	// reused verbatim in the payment session metadata.
	orderID := order.NewOrderID(customerID)

	pending := order.Order{
		OrderID:    orderID,
		CustomerID: customerID,
		Status:     order.StatusPending,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	for _, line := range snapshot.Lines {
		pending.Products = append(pending.Products, order.Product{
			ID:       line.ID,
			Name:     line.Name,
			Price:    line.Price,
			Image:    line.Image,
			Colors:   line.Colors,
			Sizes:    line.Sizes,
			Quantity: line.Quantity,
		})
	}
	if _, err := s.orders.Create(pending); err != nil {
		return SubmitResult{}, fmt.Errorf("record order: %w", err)
	}

	params := payment.SessionParams{
		OrderID:    orderID,
		CustomerID: customerID,
		Email:      req.Email,
	}
	for _, line := range snapshot.Lines {
		params.Items = append(params.Items, payment.LineItem{
			Name:      line.Name,
			UnitPrice: line.Price,
			Sizes:     line.Sizes,
			Quantity:  line.Quantity,
		})
	}
	// Only a real number becomes a shipping line; a missing or unparseable
	// rate means the session simply has no shipping cost.
	if req.ShippingRate != nil && !math.IsNaN(*req.ShippingRate) {
		params.ShippingRate = req.ShippingRate
	}

	sess, err := s.payments.Create(params)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("create payment session: %w", err)
	}

	return SubmitResult{OrderID: orderID, SessionID: sess.ID, SessionURL: sess.URL}, nil
}
