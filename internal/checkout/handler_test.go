package checkout

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/luxewalk/storefront-backend/internal/payment"
)

func newTestApp(t *testing.T, payments *fakePayments) *fiber.App {
	t.Helper()
	app := fiber.New()
	seq := NewSequencer(&fakeCustomers{}, &fakeOrders{}, payments, newCartStore(t, "sess-1", seedLine()))
	NewHandler(seq).RegisterRoutes(app)
	return app
}

func TestSubmitEndpoint(t *testing.T) {
	app := newTestApp(t, &fakePayments{})

	body := `{"customerId":"cust-1","name":"Ayesha Khan","email":"ayesha@example.com",
		"contact":"0333-1234567","address":"House 12, Street 4","city":"Karachi",
		"state":"Sindh","zipCode":"74000"}`
	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-Session", "sess-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("status = %d, body = %s", resp.StatusCode, raw)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), "sessionUrl") || !strings.Contains(string(raw), "orderId") {
		t.Errorf("response missing redirect payload: %s", raw)
	}
}

func TestSubmitEndpointFieldErrors(t *testing.T) {
	app := newTestApp(t, &fakePayments{})

	body := `{"name":"A","email":"nope","contact":"123","address":"x","city":"K","state":"S","zipCode":"1"}`
	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-Session", "sess-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(raw), `"fields"`) || !strings.Contains(string(raw), "email") {
		t.Errorf("response missing per-field errors: %s", raw)
	}
}

func TestSubmitEndpointEmptyCart(t *testing.T) {
	app := newTestApp(t, &fakePayments{})

	body := `{"customerId":"cust-1","name":"Ayesha Khan","email":"ayesha@example.com",
		"contact":"0333-1234567","address":"House 12, Street 4","city":"Karachi",
		"state":"Sindh","zipCode":"74000"}`
	req := httptest.NewRequest("POST", "/api/v1/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-Session", "sess-empty")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400 for empty cart", resp.StatusCode)
	}
}

func TestConfirmEndpoint(t *testing.T) {
	payments := &fakePayments{session: paidSession("order-1")}
	app := newTestApp(t, payments)

	req := httptest.NewRequest("POST", "/api/v1/checkout/confirm", strings.NewReader(`{"sessionId":"cs_test_1"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Cart-Session", "sess-1")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), `"updated":true`) {
		t.Errorf("confirm did not report an update: %s", raw)
	}
}

func TestConfirmEndpointRequiresSessionID(t *testing.T) {
	app := newTestApp(t, &fakePayments{})

	req := httptest.NewRequest("POST", "/api/v1/checkout/confirm", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSessionLookupEndpoint(t *testing.T) {
	payments := &fakePayments{session: payment.Session{
		ID:            "cs_test_1",
		PaymentStatus: "paid",
		AmountTotal:   25055,
		Metadata:      map[string]string{"orderId": "order-1"},
	}}
	app := newTestApp(t, payments)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/checkout/session?session_id=cs_test_1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, body = %s", resp.StatusCode, raw)
	}
	if !strings.Contains(string(raw), `"paymentStatus":"paid"`) || !strings.Contains(string(raw), "order-1") {
		t.Errorf("unexpected session payload: %s", raw)
	}
}
