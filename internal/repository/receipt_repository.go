package repository

import (
	"context"
	"errors"
	"fmt"

	"vibe-commerce/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrReceiptNotFound = errors.New("receipt not found")
)

// ReceiptRepository defines the interface for receipt data access.
// Receipts are append-only; there is no update or delete.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Receipt, error)
}

type receiptRepository struct {
	collection *mongo.Collection
}

// NewReceiptRepository creates a new instance of ReceiptRepository
func NewReceiptRepository(db *mongo.Database) ReceiptRepository {
	return &receiptRepository{collection: db.Collection("receipts")}
}

// Create persists a new receipt and fills in its generated id
func (r *receiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	if receipt.ID.IsZero() {
		receipt.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, receipt); err != nil {
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	return nil
}

// FindByID retrieves a receipt by its ObjectID
func (r *receiptRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Receipt, error) {
	receipt := &domain.Receipt{}
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(receipt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrReceiptNotFound
		}
		return nil, fmt.Errorf("failed to find receipt by ID: %w", err)
	}

	return receipt, nil
}
