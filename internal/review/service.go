package review

import "time"

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

func (s *Service) ListByProductID(productID string) []Review {
	if productID == "" {
		return []Review{}
	}
	return s.repository.ListByProductID(productID)
}

func (s *Service) Create(rev Review) (Review, error) {
	if rev.ProductID == "" {
		return Review{}, ErrMissingProduct
	}
	if rev.Name == "" {
		return Review{}, ErrMissingName
	}
	if rev.Rating < 0 || rev.Rating > 5 {
		return Review{}, ErrBadRating
	}
	if rev.Date == "" {
		rev.Date = time.Now().Format(time.RFC3339)
	}
	return s.repository.Create(rev)
}
