package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Service is the single mutation path for carts: load the stored lines,
// apply the change in memory, then mirror the whole cart back. The mirror is
// written only after the in-memory update, never before.
type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// load reads the stored cart. A missing key or an unreadable payload
// degrades to an empty cart: a corrupt mirror must not take the storefront
// down. A storage transport failure is a real error; degrading it to empty
// would let the next save overwrite a cart that still exists.
func (s *Service) load(ctx context.Context, key string) (Cart, error) {
	data, err := s.storage.Load(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotStored) {
			return Cart{}, nil
		}
		return Cart{}, fmt.Errorf("load cart %q: %w", key, err)
	}

	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		fmt.Printf("warning: discarding unreadable cart for %q: %v\n", key, err)
		return Cart{}, nil
	}
	return Cart{Lines: lines}, nil
}

// Get returns the cart for key for display. Storage failures are warned and
// shown as an empty cart; reads never block the page.
func (s *Service) Get(ctx context.Context, key string) Cart {
	c, err := s.load(ctx, key)
	if err != nil {
		fmt.Printf("warning: %v\n", err)
		return Cart{}
	}
	return c
}

// Snapshot returns the cart for key, surfacing storage failures. Callers
// that act on the contents, like checkout, must not mistake an unreachable
// store for an empty cart.
func (s *Service) Snapshot(ctx context.Context, key string) (Cart, error) {
	return s.load(ctx, key)
}

func (s *Service) Add(ctx context.Context, key string, line Line) (Cart, error) {
	c, err := s.load(ctx, key)
	if err != nil {
		return Cart{}, err
	}
	if err := c.Add(line); err != nil {
		return Cart{}, err
	}
	if err := s.save(ctx, key, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *Service) Decrement(ctx context.Context, key string, id string) (Cart, error) {
	c, err := s.load(ctx, key)
	if err != nil {
		return Cart{}, err
	}
	c.Decrement(id)
	if err := s.save(ctx, key, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *Service) Remove(ctx context.Context, key string, id string) (Cart, error) {
	c, err := s.load(ctx, key)
	if err != nil {
		return Cart{}, err
	}
	c.Remove(id)
	if err := s.save(ctx, key, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

// Clear empties the cart and erases the durable mirror. Idempotent: clearing
// an already-empty cart succeeds.
func (s *Service) Clear(ctx context.Context, key string) error {
	return s.storage.Erase(ctx, key)
}

func (s *Service) save(ctx context.Context, key string, c Cart) error {
	data, err := json.Marshal(c.Lines)
	if err != nil {
		return err
	}
	return s.storage.Save(ctx, key, data)
}
