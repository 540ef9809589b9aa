package customer

import (
	"errors"
	"regexp"
	"time"
)

var (
	ErrMissingFields = errors.New("id, email and name are required")
	ErrBadEmail      = errors.New("invalid email format")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Service provides business logic for customer profiles.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Upsert creates the profile if unknown, updates only the fields that
// actually changed, and reports no_change when nothing differs. Matching is
// by customer id or email so a returning customer with a fresh session does
// not get duplicated.
func (s *Service) Upsert(p Profile) (UpsertResult, error) {
	if p.CustomerID == "" || p.Email == "" || p.Name == "" {
		return UpsertResult{}, ErrMissingFields
	}
	if !emailPattern.MatchString(p.Email) {
		return UpsertResult{}, ErrBadEmail
	}

	now := time.Now().UTC().Format(time.RFC3339)

	existing, err := s.repo.GetByIDOrEmail(p.CustomerID, p.Email)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return UpsertResult{}, err
		}
		p.CreatedAt = now
		p.UpdatedAt = now
		created, err := s.repo.Create(p)
		if err != nil {
			return UpsertResult{}, err
		}
		return UpsertResult{Status: UpsertCreated, Profile: created}, nil
	}

	merged := existing
	changed := false
	if p.Name != "" && p.Name != existing.Name {
		merged.Name = p.Name
		changed = true
	}
	if p.Contact != "" && p.Contact != existing.Contact {
		merged.Contact = p.Contact
		changed = true
	}
	if p.Address != "" && p.Address != existing.Address {
		merged.Address = p.Address
		changed = true
	}
	if !changed {
		return UpsertResult{Status: UpsertNoChange, Profile: existing}, nil
	}

	merged.UpdatedAt = now
	updated, err := s.repo.Update(existing.CustomerID, merged)
	if err != nil {
		return UpsertResult{}, err
	}
	return UpsertResult{Status: UpsertUpdated, Profile: updated}, nil
}

// GetByID returns the stored profile. An unknown id is a normal negative
// result, not a failure.
func (s *Service) GetByID(customerID string) (Profile, error) {
	if customerID == "" {
		return Profile{}, ErrNotFound
	}
	return s.repo.GetByID(customerID)
}
