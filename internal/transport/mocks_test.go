package transport

import (
	"context"

	"vibe-commerce/internal/domain"
	"vibe-commerce/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mock repositories for handler tests. Handlers are exercised with real
// services over these mocks, the same pattern the service tests use.

type mockProductRepository struct {
	products []domain.Product
}

func newMockProductRepository() *mockProductRepository {
	return &mockProductRepository{}
}

func (m *mockProductRepository) add(name string, price float64) primitive.ObjectID {
	product := domain.Product{
		ID:    primitive.NewObjectID(),
		Name:  name,
		Price: price,
		Stock: 10,
	}
	m.products = append(m.products, product)
	return product.ID
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	return append([]domain.Product{}, m.products...), nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			product := m.products[i]
			return &product, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepository) ReplaceAll(ctx context.Context, products []domain.Product) (int, error) {
	m.products = append([]domain.Product{}, products...)
	return len(products), nil
}

type mockCartRepository struct {
	lines []*domain.CartLine
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{}
}

func (m *mockCartRepository) FindByUser(ctx context.Context, userID string) ([]domain.CartLine, error) {
	result := []domain.CartLine{}
	for _, line := range m.lines {
		if line.UserID == userID {
			result = append(result, *line)
		}
	}
	return result, nil
}

func (m *mockCartRepository) AddLine(ctx context.Context, line domain.CartLine) error {
	for _, existing := range m.lines {
		if existing.UserID == line.UserID && existing.ProductID == line.ProductID {
			existing.Qty += line.Qty
			return nil
		}
	}

	created := line
	created.ID = primitive.NewObjectID()
	m.lines = append(m.lines, &created)
	return nil
}

func (m *mockCartRepository) UpdateQty(ctx context.Context, lineID primitive.ObjectID, qty int) error {
	for _, line := range m.lines {
		if line.ID == lineID {
			line.Qty = qty
			return nil
		}
	}
	return repository.ErrCartItemNotFound
}

func (m *mockCartRepository) Remove(ctx context.Context, lineID primitive.ObjectID) error {
	for i, line := range m.lines {
		if line.ID == lineID {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			return nil
		}
	}
	return repository.ErrCartItemNotFound
}

func (m *mockCartRepository) Clear(ctx context.Context, userID string) error {
	kept := m.lines[:0]
	for _, line := range m.lines {
		if line.UserID != userID {
			kept = append(kept, line)
		}
	}
	m.lines = kept
	return nil
}

func (m *mockCartRepository) EnsureIndexes(ctx context.Context) error {
	return nil
}

type mockReceiptRepository struct {
	receipts []*domain.Receipt
}

func newMockReceiptRepository() *mockReceiptRepository {
	return &mockReceiptRepository{}
}

func (m *mockReceiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	if receipt.ID.IsZero() {
		receipt.ID = primitive.NewObjectID()
	}
	stored := *receipt
	m.receipts = append(m.receipts, &stored)
	return nil
}

func (m *mockReceiptRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Receipt, error) {
	for _, receipt := range m.receipts {
		if receipt.ID == id {
			found := *receipt
			return &found, nil
		}
	}
	return nil, repository.ErrReceiptNotFound
}
