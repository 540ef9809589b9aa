package cart

import "errors"

var (
	ErrEmptyProductID = errors.New("product id is required")
	ErrBadQuantity    = errors.New("quantity must be a positive integer")
	ErrNoVariant      = errors.New("at least one color and one size are required")
)

// Line is one entry in the cart. JSON tags mirror the serialized shape the
// storefront persists, so a stored cart reloads byte-for-byte compatible.
type Line struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Price    float64  `json:"price"`
	Discount float64  `json:"discount"`
	Image    string   `json:"image"`
	Colors   []string `json:"color"`
	Sizes    []string `json:"size"`
	Quantity int      `json:"quantity"`
}

// Cart is an ordered collection of lines keyed by product id. Insertion order
// is kept for display; totals do not depend on it.
type Cart struct {
	Lines []Line `json:"lines"`
}

// Add inserts a line or merges it into the existing line with the same
// product id. Merging unions the color and size sets (existing order first,
// unseen values appended) and adds the incoming quantity to the existing one,
// so callers pass a delta line for quantity adjustments, never an absolute.
func (c *Cart) Add(line Line) error {
	if line.ID == "" {
		return ErrEmptyProductID
	}
	if line.Quantity < 1 {
		return ErrBadQuantity
	}
	if len(line.Colors) == 0 || len(line.Sizes) == 0 {
		return ErrNoVariant
	}

	for i := range c.Lines {
		if c.Lines[i].ID != line.ID {
			continue
		}
		c.Lines[i].Colors = appendMissing(c.Lines[i].Colors, line.Colors)
		c.Lines[i].Sizes = appendMissing(c.Lines[i].Sizes, line.Sizes)
		c.Lines[i].Quantity += line.Quantity
		return nil
	}

	c.Lines = append(c.Lines, line)
	return nil
}

// Decrement lowers the quantity of a line by one. A line at quantity 1 stays
// at 1: the quantity never crosses zero and a decrement never removes a line.
func (c *Cart) Decrement(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			if c.Lines[i].Quantity > 1 {
				c.Lines[i].Quantity--
			}
			return
		}
	}
}

// Remove deletes the whole line for id, regardless of how many colors or
// sizes it accumulated. Removing an absent id is a no-op.
func (c *Cart) Remove(id string) {
	for i := range c.Lines {
		if c.Lines[i].ID == id {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Safe to call on an already-empty cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Subtotal is the sum of price times quantity across all lines.
func (c *Cart) Subtotal() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	var n int
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

func appendMissing(existing, incoming []string) []string {
	for _, v := range incoming {
		seen := false
		for _, e := range existing {
			if e == v {
				seen = true
				break
			}
		}
		if !seen {
			existing = append(existing, v)
		}
	}
	return existing
}
