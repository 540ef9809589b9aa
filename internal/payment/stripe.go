package payment

import (
	"fmt"
	"math"
	"strings"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
)

// StripeConfig holds the configuration for the Stripe integration.
type StripeConfig struct {
	// SecretKey is the Stripe secret API key (sk_test_xxx or sk_live_xxx).
	SecretKey string

	// SuccessURL receives the customer after payment; Stripe substitutes the
	// session id into the {CHECKOUT_SESSION_ID} placeholder.
	SuccessURL string

	// CancelURL receives the customer when they abandon the payment page.
	CancelURL string

	Currency string
}

func (c *StripeConfig) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("stripe: secret key is required")
	}
	if c.SuccessURL == "" || c.CancelURL == "" {
		return fmt.Errorf("stripe: success and cancel URLs are required")
	}
	if c.Currency == "" {
		return fmt.Errorf("stripe: currency is required")
	}
	return nil
}

// StripeSessions implements Sessions against Stripe Checkout.
type StripeSessions struct {
	config *StripeConfig
}

func NewStripeSessions(config *StripeConfig) (*StripeSessions, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	stripe.Key = config.SecretKey
	return &StripeSessions{config: config}, nil
}

func (s *StripeSessions) Create(params SessionParams) (Session, error) {
	sess, err := session.New(buildSessionParams(s.config, params))
	if err != nil {
		return Session{}, fmt.Errorf("stripe: failed to create checkout session: %w", err)
	}
	return fromStripeSession(sess), nil
}

func (s *StripeSessions) Retrieve(sessionID string) (Session, error) {
	sess, err := session.Get(sessionID, nil)
	if err != nil {
		return Session{}, fmt.Errorf("stripe: failed to retrieve checkout session: %w", err)
	}
	return fromStripeSession(sess), nil
}

func buildSessionParams(cfg *StripeConfig, p SessionParams) *stripe.CheckoutSessionParams {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.Items))
	for _, item := range p.Items {
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(cfg.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name:        stripe.String(item.Name),
					Description: stripe.String("Size: " + strings.Join(item.Sizes, ", ")),
				},
				UnitAmount: stripe.Int64(toCents(item.UnitPrice)),
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(cfg.SuccessURL),
		CancelURL:          stripe.String(cfg.CancelURL),
		CustomerEmail:      stripe.String(p.Email),
		LineItems:          lineItems,
		Metadata: map[string]string{
			"customerId": p.CustomerID,
			"orderId":    p.OrderID,
		},
	}

	if p.ShippingRate != nil {
		params.ShippingOptions = []*stripe.CheckoutSessionShippingOptionParams{
			{
				ShippingRateData: &stripe.CheckoutSessionShippingOptionShippingRateDataParams{
					DisplayName: stripe.String("Standard Shipping"),
					Type:        stripe.String("fixed_amount"),
					FixedAmount: &stripe.CheckoutSessionShippingOptionShippingRateDataFixedAmountParams{
						Amount:   stripe.Int64(toCents(*p.ShippingRate)),
						Currency: stripe.String(cfg.Currency),
					},
				},
			},
		}
	}

	return params
}

func fromStripeSession(sess *stripe.CheckoutSession) Session {
	return Session{
		ID:            sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Metadata:      sess.Metadata,
	}
}

func toCents(dollars float64) int64 {
	return int64(math.Round(dollars * 100))
}
