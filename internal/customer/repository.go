package customer

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("customer not found")

// Repository provides access to customer profiles. Lookup matches either the
// customer id or the email, mirroring how the profile store deduplicates.
type Repository interface {
	GetByID(customerID string) (Profile, error)
	GetByIDOrEmail(customerID, email string) (Profile, error)
	Create(p Profile) (Profile, error)
	Update(customerID string, p Profile) (Profile, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	profiles []Profile
}

func NewInMemoryRepository(seed []Profile) *InMemoryRepository {
	r := &InMemoryRepository{profiles: make([]Profile, 0, len(seed))}
	r.profiles = append(r.profiles, seed...)
	return r
}

func (r *InMemoryRepository) GetByID(customerID string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.profiles {
		if p.CustomerID == customerID {
			return p, nil
		}
	}
	return Profile{}, ErrNotFound
}

func (r *InMemoryRepository) GetByIDOrEmail(customerID, email string) (Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.profiles {
		if p.CustomerID == customerID || (email != "" && p.Email == email) {
			return p, nil
		}
	}
	return Profile{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Profile) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles = append(r.profiles, p)
	return p, nil
}

func (r *InMemoryRepository) Update(customerID string, p Profile) (Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.profiles {
		if r.profiles[i].CustomerID == customerID {
			p.CustomerID = customerID
			p.CreatedAt = r.profiles[i].CreatedAt
			r.profiles[i] = p
			return p, nil
		}
	}
	return Profile{}, ErrNotFound
}
