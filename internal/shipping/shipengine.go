package shipping

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ShipEngineClient quotes rates against the ShipEngine rates API. The
// ship-from origin is fixed per deployment.
type ShipEngineClient struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	origin     Address
	carrierIDs []string
}

func NewShipEngineClient(apiKey, baseURL string, origin Address, carrierIDs []string) *ShipEngineClient {
	return &ShipEngineClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiKey:     apiKey,
		baseURL:    baseURL,
		origin:     origin,
		carrierIDs: carrierIDs,
	}
}

// DefaultOrigin is the warehouse the store ships from.
func DefaultOrigin() Address {
	return Address{
		Name:       "Luxewalk",
		Phone:      "03333306127",
		Street:     "A-422 Block A, North Nazimabad",
		City:       "Karachi",
		State:      "Sindh",
		PostalCode: "74000",
		Country:    "PK",
	}
}

type shipEngineAddress struct {
	Name                        string `json:"name"`
	Phone                       string `json:"phone,omitempty"`
	AddressLine1                string `json:"address_line1"`
	CityLocality                string `json:"city_locality"`
	StateProvince               string `json:"state_province"`
	PostalCode                  string `json:"postal_code"`
	CountryCode                 string `json:"country_code"`
	AddressResidentialIndicator string `json:"address_residential_indicator"`
}

type shipEnginePackage struct {
	Weight     Weight     `json:"weight"`
	Dimensions Dimensions `json:"dimensions"`
}

type rateRequest struct {
	RateOptions struct {
		CarrierIDs []string `json:"carrier_ids,omitempty"`
	} `json:"rate_options"`
	Shipment struct {
		ShipTo   shipEngineAddress   `json:"ship_to"`
		ShipFrom shipEngineAddress   `json:"ship_from"`
		Packages []shipEnginePackage `json:"packages"`
	} `json:"shipment"`
}

type rateResponse struct {
	RateResponse struct {
		Rates []struct {
			CarrierID      string `json:"carrier_id"`
			ShippingAmount struct {
				Amount float64 `json:"amount"`
			} `json:"shipping_amount"`
			DeliveryDays          int    `json:"delivery_days"`
			EstimatedDeliveryDate string `json:"estimated_delivery_date"`
		} `json:"rates"`
	} `json:"rate_response"`
}

type apiError struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// Quote asks for rates across the configured carriers and returns the
// cheapest one.
func (c *ShipEngineClient) Quote(ctx context.Context, destination Address, packages []Package) (Quote, error) {
	if destination.Street == "" || destination.City == "" || destination.PostalCode == "" {
		return Quote{}, ErrMissingAddress
	}
	if len(packages) == 0 {
		return Quote{}, ErrMissingPackages
	}
	if destination.Country == "" {
		destination.Country = c.origin.Country
	}

	var req rateRequest
	req.RateOptions.CarrierIDs = c.carrierIDs
	req.Shipment.ShipTo = toShipEngineAddress(destination)
	req.Shipment.ShipFrom = toShipEngineAddress(c.origin)
	for _, p := range packages {
		req.Shipment.Packages = append(req.Shipment.Packages, shipEnginePackage(p))
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Quote{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/rates", bytes.NewReader(body))
	if err != nil {
		return Quote{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("API-Key", c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Quote{}, fmt.Errorf("shipengine: rate request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Quote{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && len(apiErr.Errors) > 0 {
			return Quote{}, fmt.Errorf("shipengine: %s", apiErr.Errors[0].Message)
		}
		return Quote{}, fmt.Errorf("shipengine: unexpected status %d", resp.StatusCode)
	}

	var parsed rateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Quote{}, fmt.Errorf("shipengine: unreadable rate response: %w", err)
	}

	rates := parsed.RateResponse.Rates
	if len(rates) == 0 {
		return Quote{}, ErrNoRates
	}

	best := rates[0]
	for _, r := range rates[1:] {
		if r.ShippingAmount.Amount < best.ShippingAmount.Amount {
			best = r
		}
	}

	return Quote{
		Rate:              best.ShippingAmount.Amount,
		EstimatedDelivery: describeDelivery(best.DeliveryDays, best.EstimatedDeliveryDate),
		CarrierID:         best.CarrierID,
	}, nil
}

func toShipEngineAddress(a Address) shipEngineAddress {
	return shipEngineAddress{
		Name:                        a.Name,
		Phone:                       a.Phone,
		AddressLine1:                a.Street,
		CityLocality:                a.City,
		StateProvince:               a.State,
		PostalCode:                  a.PostalCode,
		CountryCode:                 a.Country,
		AddressResidentialIndicator: "no",
	}
}

func describeDelivery(days int, date string) string {
	if days > 0 {
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	if date != "" {
		return date
	}
	return "unknown"
}
