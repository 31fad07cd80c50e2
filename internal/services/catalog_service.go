package services

import (
	"database/sql"

	"shopledger/internal/domain"
	"shopledger/internal/repos"
	"shopledger/internal/validate"

	"github.com/google/uuid"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

// ProductInput carries partial fields for create/update; nil means
// "not provided", so updates only touch what the caller sent.
type ProductInput struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
	ImageURL *string  `json:"image"`
}

func (s *CatalogService) Create(ownerID string, in ProductInput) (*domain.Product, error) {
	p := domain.Product{ID: uuid.NewString(), UserID: ownerID}
	if in.Name == nil {
		return nil, &domain.ValidationError{Msg: "product name is required"}
	}
	name, ok := validate.ProductName(*in.Name)
	if !ok {
		return nil, &domain.ValidationError{Msg: "product name is required"}
	}
	p.Name = name
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Quantity != nil {
		p.Quantity = *in.Quantity
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	if p.Price < 0 {
		return nil, &domain.ValidationError{Msg: "price must not be negative"}
	}
	if p.Quantity < 0 {
		return nil, &domain.ValidationError{Msg: "quantity must not be negative"}
	}
	if err := s.Prods.Create(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *CatalogService) ListByOwner(ownerID string) ([]domain.Product, error) {
	return s.Prods.ListByOwner(ownerID)
}

func (s *CatalogService) Get(id, ownerID string) (*domain.Product, error) {
	p, err := s.Prods.Get(id, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &domain.NotFoundError{Kind: "product", ID: id}
		}
		return nil, err
	}
	return &p, nil
}

// Update merges the provided fields into the stored row.
func (s *CatalogService) Update(id, ownerID string, in ProductInput) (*domain.Product, error) {
	p, err := s.Prods.Get(id, ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &domain.NotFoundError{Kind: "product", ID: id}
		}
		return nil, err
	}
	if in.Name != nil {
		name, ok := validate.ProductName(*in.Name)
		if !ok {
			return nil, &domain.ValidationError{Msg: "product name is required"}
		}
		p.Name = name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return nil, &domain.ValidationError{Msg: "price must not be negative"}
		}
		p.Price = *in.Price
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, &domain.ValidationError{Msg: "quantity must not be negative"}
		}
		p.Quantity = *in.Quantity
	}
	if in.ImageURL != nil {
		p.ImageURL = *in.ImageURL
	}
	n, err := s.Prods.Update(p)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &domain.NotFoundError{Kind: "product", ID: id}
	}
	return s.Get(id, ownerID)
}

// Delete removes the owned row and returns the product that was deleted.
func (s *CatalogService) Delete(id, ownerID string) (*domain.Product, error) {
	p, err := s.Get(id, ownerID)
	if err != nil {
		return nil, err
	}
	n, err := s.Prods.Delete(id, ownerID)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &domain.NotFoundError{Kind: "product", ID: id}
	}
	return p, nil
}
