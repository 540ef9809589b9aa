package shipping

import (
	"context"
	"errors"
)

var (
	ErrMissingAddress  = errors.New("destination address is required")
	ErrMissingPackages = errors.New("at least one package is required")
	ErrNoRates         = errors.New("no shipping rates available for this destination")
)

// Address identifies one end of a shipment.
type Address struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type Weight struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Unit   string  `json:"unit"`
}

// Package is one parcel in a rate request.
type Package struct {
	Weight     Weight     `json:"weight"`
	Dimensions Dimensions `json:"dimensions"`
}

// Quote is a transient rate lookup result. It is never persisted; the client
// holds it for the duration of one checkout session.
type Quote struct {
	Rate              float64 `json:"rate"`
	EstimatedDelivery string  `json:"estimatedDelivery"`
	CarrierID         string  `json:"carrierId,omitempty"`
}

// RateClient is the shipping-rate collaborator contract.
type RateClient interface {
	Quote(ctx context.Context, destination Address, packages []Package) (Quote, error)
}
