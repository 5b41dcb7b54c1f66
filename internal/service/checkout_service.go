package service

import (
	"context"
	"fmt"
	"time"

	"vibe-commerce/internal/domain"
	"vibe-commerce/internal/repository"
)

// CheckoutService defines the interface for checkout business logic
type CheckoutService interface {
	Checkout(ctx context.Context, userID, name, email string, items []domain.ReceiptItem) (*domain.Receipt, error)
}

type checkoutService struct {
	receiptRepo repository.ReceiptRepository
	cartRepo    repository.CartRepository
}

// NewCheckoutService creates a new instance of CheckoutService
func NewCheckoutService(receiptRepo repository.ReceiptRepository, cartRepo repository.CartRepository) CheckoutService {
	return &checkoutService{
		receiptRepo: receiptRepo,
		cartRepo:    cartRepo,
	}
}

// Checkout freezes the caller-supplied line item snapshot into a receipt
// and then clears the user's cart. The total is computed over the submitted
// snapshot, not re-read from the cart store. Email is only checked for
// presence. Create-receipt and clear-cart are two separate store
// operations; if the clear fails the error surfaces to the caller and the
// already-created receipt stays.
func (s *checkoutService) Checkout(ctx context.Context, userID, name, email string, items []domain.ReceiptItem) (*domain.Receipt, error) {
	if name == "" || email == "" || len(items) == 0 {
		return nil, NewValidationError("Name, email, and cart items are required")
	}

	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Qty)
	}

	receipt := &domain.Receipt{
		Items:     items,
		Total:     domain.Round2(total),
		Name:      name,
		Email:     email,
		Timestamp: time.Now(),
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	if err := s.cartRepo.Clear(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear cart after checkout: %w", err)
	}

	return receipt, nil
}
