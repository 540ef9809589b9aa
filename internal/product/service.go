package product

import (
	"errors"
	"strings"
)

var ErrEmptyQuery = errors.New("search query must not be empty")

type Service struct {
	repository Repository
}

func NewService(repository Repository) *Service {
	return &Service{repository: repository}
}

func (s *Service) List() []Product {
	return s.repository.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	if id == "" {
		return Product{}, ErrNotFound
	}
	return s.repository.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Product, error) {
	if slug == "" {
		return Product{}, ErrNotFound
	}
	return s.repository.GetBySlug(slug)
}

func (s *Service) Search(query string) ([]Product, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	return s.repository.Search(query), nil
}

func (s *Service) ListByTag(tag string) []Product {
	if tag == "" {
		return []Product{}
	}
	return s.repository.ListByTag(tag)
}
