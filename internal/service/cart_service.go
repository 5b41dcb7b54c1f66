package service

import (
	"context"
	"fmt"

	"vibe-commerce/internal/domain"
	"vibe-commerce/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartService defines the interface for cart business logic. Every mutation
// returns the refreshed cart view for the requesting user, with the total
// recomputed from the current lines.
type CartService interface {
	View(ctx context.Context, userID string) (domain.Cart, error)
	Add(ctx context.Context, userID, productID string, qty int) (domain.Cart, error)
	UpdateQuantity(ctx context.Context, userID, lineID string, qty int) (domain.Cart, error)
	Remove(ctx context.Context, userID, lineID string) (domain.Cart, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService creates a new instance of CartService
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// View returns the user's current lines and total. A user with no lines
// gets an empty cart with total 0, never an error.
func (s *cartService) View(ctx context.Context, userID string) (domain.Cart, error) {
	lines, err := s.cartRepo.FindByUser(ctx, userID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}

	return domain.NewCart(lines), nil
}

// Add puts qty units of a product into the user's cart. If a line already
// exists for the (user, product) pair its quantity is incremented and the
// name/price captured at original add time are kept; otherwise a new line
// is created from the product's current name and price.
func (s *cartService) Add(ctx context.Context, userID, productID string, qty int) (domain.Cart, error) {
	if qty < 1 {
		return domain.Cart{}, NewValidationError("Invalid request body")
	}

	objectID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return domain.Cart{}, repository.ErrProductNotFound
	}

	product, err := s.productRepo.FindByID(ctx, objectID)
	if err != nil {
		return domain.Cart{}, err
	}

	line := domain.CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       qty,
		UserID:    userID,
	}

	if err := s.cartRepo.AddLine(ctx, line); err != nil {
		return domain.Cart{}, err
	}

	return s.View(ctx, userID)
}

// UpdateQuantity sets a line's quantity to an absolute value. Quantities
// below 1 are rejected, not clamped or treated as removal. The refreshed
// view is computed for the requesting user, not the line's stored owner.
func (s *cartService) UpdateQuantity(ctx context.Context, userID, lineID string, qty int) (domain.Cart, error) {
	if qty < 1 {
		return domain.Cart{}, NewValidationError("Quantity must be at least 1")
	}

	objectID, err := primitive.ObjectIDFromHex(lineID)
	if err != nil {
		return domain.Cart{}, repository.ErrCartItemNotFound
	}

	if err := s.cartRepo.UpdateQty(ctx, objectID, qty); err != nil {
		return domain.Cart{}, err
	}

	return s.View(ctx, userID)
}

// Remove deletes a line unconditionally. There is no ownership check
// against the requesting user.
func (s *cartService) Remove(ctx context.Context, userID, lineID string) (domain.Cart, error) {
	objectID, err := primitive.ObjectIDFromHex(lineID)
	if err != nil {
		return domain.Cart{}, repository.ErrCartItemNotFound
	}

	if err := s.cartRepo.Remove(ctx, objectID); err != nil {
		return domain.Cart{}, err
	}

	return s.View(ctx, userID)
}
