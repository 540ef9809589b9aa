package order

import "errors"

var (
	ErrEmptyOrder    = errors.New("order has no products")
	ErrMissingFields = errors.New("orderId and customerId are required")
	ErrBadStatus     = errors.New("unknown order status")
)

// Service provides business logic for order records.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(o Order) (Order, error) {
	if o.OrderID == "" || o.CustomerID == "" {
		return Order{}, ErrMissingFields
	}
	if len(o.Products) == 0 {
		return Order{}, ErrEmptyOrder
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if !ValidStatus(o.Status) {
		return Order{}, ErrBadStatus
	}
	return s.repo.Create(o)
}

// UpdateStatus overwrites the status of an existing order. The write is a
// plain overwrite, so repeating it with the same status is harmless.
func (s *Service) UpdateStatus(orderID string, status Status) (Order, error) {
	if orderID == "" {
		return Order{}, ErrNotFound
	}
	if !ValidStatus(status) {
		return Order{}, ErrBadStatus
	}
	return s.repo.UpdateStatus(orderID, status)
}

func (s *Service) GetByOrderID(orderID string) (Order, error) {
	if orderID == "" {
		return Order{}, ErrNotFound
	}
	return s.repo.GetByOrderID(orderID)
}

func (s *Service) ListByCustomerID(customerID string) ([]Order, error) {
	if customerID == "" {
		return []Order{}, nil
	}
	return s.repo.ListByCustomerID(customerID)
}
