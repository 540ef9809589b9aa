package review

import "sync"

type Repository interface {
	ListByProductID(productID string) []Review
	Create(r Review) (Review, error)
}

type InMemoryRepository struct {
	mu      sync.RWMutex
	nextID  int
	storage []Review
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) ListByProductID(productID string) []Review {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Review, 0)
	for _, rev := range r.storage {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	return out
}

func (r *InMemoryRepository) Create(rev Review) (Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev.ID = r.nextID
	r.nextID++
	r.storage = append(r.storage, rev)
	return rev, nil
}
