package review

import "errors"

var (
	ErrMissingProduct = errors.New("productId is required")
	ErrMissingName    = errors.New("reviewer name is required")
	ErrBadRating      = errors.New("rating must be between 0 and 5")
)

// Review is one customer review attached to a product.
type Review struct {
	ID        int     `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Review    string  `json:"review"`
	Rating    float64 `json:"rating"`
	Date      string  `json:"date"`
}
