package payment

// LineItem is one purchasable row in a payment session.
type LineItem struct {
	Name      string
	UnitPrice float64
	Sizes     []string
	Quantity  int
}

// SessionParams describes one checkout attempt. ShippingRate nil means the
// session carries no shipping line at all, not a zero-cost one.
type SessionParams struct {
	OrderID    string
	CustomerID string
	Email      string
	Items      []LineItem
	// ShippingRate is a dollar amount when set.
	ShippingRate *float64
}

// Session is the provider's view of a checkout attempt. Metadata carries the
// orderId correlation key that reconciliation depends on.
type Session struct {
	ID            string
	URL           string
	PaymentStatus string
	AmountTotal   int64
	Metadata      map[string]string
}

// Sessions is the payment-session collaborator contract.
type Sessions interface {
	Create(params SessionParams) (Session, error)
	Retrieve(sessionID string) (Session, error)
}
