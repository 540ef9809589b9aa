package order

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	o := sampleOrder("order-1")
	o.Status = StatusPending
	o.CreatedAt = "2026-01-15T10:00:00Z"

	mock.ExpectExec("INSERT INTO orders").
		WithArgs(o.OrderID, o.CustomerID, sqlmock.AnyArg(), "Pending", o.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if _, err := repo.Create(o); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"orderId", "customerId", "products", "status", "createdAt"}).
		AddRow("order-1", "cust-1", `[{"id":"p1","quantity":2}]`, "Paid", "2026-01-15T10:00:00Z")
	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs("Paid", "order-1").
		WillReturnRows(rows)

	o, err := repo.UpdateStatus("order-1", StatusPaid)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if o.Status != StatusPaid {
		t.Errorf("status = %q, want Paid", o.Status)
	}
	if len(o.Products) != 1 || o.Products[0].Quantity != 2 {
		t.Errorf("products not restored from stored JSON: %+v", o.Products)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateStatusNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("UPDATE orders SET status").
		WithArgs("Paid", "order-missing").
		WillReturnRows(sqlmock.NewRows([]string{"orderId", "customerId", "products", "status", "createdAt"}))

	if _, err := repo.UpdateStatus("order-missing", StatusPaid); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresListByCustomerID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	rows := sqlmock.NewRows([]string{"orderId", "customerId", "products", "status", "createdAt"}).
		AddRow("order-2", "cust-1", "[]", "Paid", "2026-01-16T10:00:00Z").
		AddRow("order-1", "cust-1", "[]", "Pending", "2026-01-15T10:00:00Z")
	mock.ExpectQuery("FROM orders WHERE").
		WithArgs("cust-1").
		WillReturnRows(rows)

	orders, err := repo.ListByCustomerID("cust-1")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("got %d orders, want 2", len(orders))
	}
	if orders[0].OrderID != "order-2" {
		t.Errorf("expected newest order first, got %q", orders[0].OrderID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
