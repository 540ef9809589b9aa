package order

import (
	"errors"
	"testing"
)

func sampleOrder(orderID string) Order {
	return Order{
		OrderID:    orderID,
		CustomerID: "cust-1",
		Products: []Product{
			{ID: "p1", Name: "Oxford Shoe", Price: 120, Colors: []string{"Black"}, Sizes: []string{"42"}, Quantity: 1},
		},
	}
}

func TestServiceCreateDefaultsToPending(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	created, err := s.Create(sampleOrder("order-1"))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Status != StatusPending {
		t.Errorf("status = %q, want Pending", created.Status)
	}
}

func TestServiceCreateValidation(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	o := sampleOrder("")
	if _, err := s.Create(o); !errors.Is(err, ErrMissingFields) {
		t.Errorf("missing orderId: got %v, want ErrMissingFields", err)
	}

	o = sampleOrder("order-1")
	o.Products = nil
	if _, err := s.Create(o); !errors.Is(err, ErrEmptyOrder) {
		t.Errorf("no products: got %v, want ErrEmptyOrder", err)
	}

	o = sampleOrder("order-1")
	o.Status = "Shipped"
	if _, err := s.Create(o); !errors.Is(err, ErrBadStatus) {
		t.Errorf("unknown status: got %v, want ErrBadStatus", err)
	}
}

func TestServiceUpdateStatus(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))
	if _, err := s.Create(sampleOrder("order-1")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	updated, err := s.UpdateStatus("order-1", StatusPaid)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Status != StatusPaid {
		t.Errorf("status = %q, want Paid", updated.Status)
	}

	// overwrite with the same status is harmless
	if _, err := s.UpdateStatus("order-1", StatusPaid); err != nil {
		t.Errorf("repeat update failed: %v", err)
	}

	if _, err := s.UpdateStatus("order-missing", StatusPaid); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown order: got %v, want ErrNotFound", err)
	}
	if _, err := s.UpdateStatus("order-1", "Shipped"); !errors.Is(err, ErrBadStatus) {
		t.Errorf("unknown status: got %v, want ErrBadStatus", err)
	}
}

func TestServiceListByCustomerID(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))
	first := sampleOrder("order-1")
	second := sampleOrder("order-2")
	if _, err := s.Create(first); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := s.Create(second); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	orders, err := s.ListByCustomerID("cust-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].OrderID != "order-2" {
		t.Errorf("expected newest order first, got %q", orders[0].OrderID)
	}

	empty, err := s.ListByCustomerID("")
	if err != nil || len(empty) != 0 {
		t.Errorf("empty customer id should return an empty list, got %v, %v", empty, err)
	}
}
