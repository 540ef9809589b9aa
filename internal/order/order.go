package order

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Status is the order lifecycle state. Pending and Paid are the only
// transitions this service performs; the later states are written by the
// back office.
type Status string

const (
	StatusPending    Status = "Pending"
	StatusPaid       Status = "Paid"
	StatusProcessing Status = "Processing"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

// ValidStatus reports whether s is one of the known lifecycle states.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusPaid, StatusProcessing, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Product is one line item captured on the order at checkout time.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Image    string   `json:"image"`
	Colors   []string `json:"color"`
	Sizes    []string `json:"size"`
	Quantity int      `json:"quantity"`
}

// Order is the snapshot recorded at checkout, before payment confirmation.
type Order struct {
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Products   []Product `json:"products"`
	Status     Status    `json:"status"`
	CreatedAt  string    `json:"createdAt"`
}

// NewOrderID builds the order correlation key. The shape is
// order-<unixmillis>-<customerId>-<suffix>; reconciliation depends on the
// same value reaching both the order record and the payment session, so it
// is generated once, before any collaborator call. The suffix comes from a
// UUID rather than a short random string, but the overall shape is kept for
// compatibility with already-stored records.
func NewOrderID(customerID string) string {
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("order-%d-%s-%s", time.Now().UnixMilli(), customerID, suffix)
}
