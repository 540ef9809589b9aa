package checkout

import (
	"context"
	"fmt"

	"github.com/luxewalk/storefront-backend/internal/order"
)

// Confirm finalizes an order after the customer returns from the payment
// page. The status write is a plain overwrite, so running Confirm again for
// the same session is harmless: the order ends up Paid either way and the
// cart clear is idempotent.
func (s *Sequencer) Confirm(ctx context.Context, sessionID, cartKey string) (ConfirmResult, error) {
	sess, err := s.payments.Retrieve(sessionID)
	if err != nil {
		return ConfirmResult{}, fmt.Errorf("retrieve payment session: %w", err)
	}

	orderID := sess.Metadata["orderId"]
	if orderID == "" {
		// Nothing to reconcile against. Logged, not surfaced: the customer
		// already saw the optimistic payment confirmation.
		fmt.Printf("warning: session %s carries no orderId metadata, skipping order update\n", sessionID)
		return ConfirmResult{}, nil
	}

	if _, err := s.orders.UpdateStatus(orderID, order.StatusPaid); err != nil {
		// Leave the cart alone: a failed reconciliation must not lose it.
		return ConfirmResult{OrderID: orderID}, fmt.Errorf("mark order paid: %w", err)
	}

	if err := s.carts.Clear(ctx, cartKey); err != nil {
		fmt.Printf("warning: could not clear cart %q after payment: %v\n", cartKey, err)
	}

	return ConfirmResult{OrderID: orderID, Updated: true}, nil
}
