package service

import (
	"context"
	"fmt"

	"vibe-commerce/internal/domain"
	"vibe-commerce/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService defines the interface for catalog reads
type CatalogService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

type catalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(productRepo repository.ProductRepository) CatalogService {
	return &catalogService{productRepo: productRepo}
}

// List returns every product in the catalog
func (s *catalogService) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Get returns a single product. An id that does not parse as an ObjectID
// cannot reference any product, so it resolves to not-found.
func (s *catalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrProductNotFound
	}

	product, err := s.productRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	return product, nil
}
