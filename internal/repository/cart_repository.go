package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vibe-commerce/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart line data access. One
// document per (user, product) pair; the unique compound index enforces
// that at most one line exists per pair.
type CartRepository interface {
	FindByUser(ctx context.Context, userID string) ([]domain.CartLine, error)
	AddLine(ctx context.Context, line domain.CartLine) error
	UpdateQty(ctx context.Context, lineID primitive.ObjectID, qty int) error
	Remove(ctx context.Context, lineID primitive.ObjectID) error
	Clear(ctx context.Context, userID string) error
	EnsureIndexes(ctx context.Context) error
}

type cartRepository struct {
	collection *mongo.Collection
}

// NewCartRepository creates a new instance of CartRepository
func NewCartRepository(db *mongo.Database) CartRepository {
	return &cartRepository{collection: db.Collection("cart_items")}
}

// FindByUser retrieves all cart lines owned by the given user
func (r *cartRepository) FindByUser(ctx context.Context, userID string) ([]domain.CartLine, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find cart items: %w", err)
	}
	defer cursor.Close(ctx)

	lines := []domain.CartLine{}
	if err := cursor.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart items: %w", err)
	}

	return lines, nil
}

// AddLine increments the quantity of the (user, product) line, creating it
// with the captured name and price when absent. The conditional upsert is a
// single atomic document operation, so concurrent adds for the same pair
// cannot lose increments.
func (r *cartRepository) AddLine(ctx context.Context, line domain.CartLine) error {
	now := time.Now()

	filter := bson.M{
		"user_id":    line.UserID,
		"product_id": line.ProductID,
	}
	update := bson.M{
		"$inc": bson.M{"qty": line.Qty},
		"$set": bson.M{"updated_at": now},
		"$setOnInsert": bson.M{
			"name":       line.Name,
			"price":      line.Price,
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)

	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}

	return nil
}

// UpdateQty sets a line's quantity to an absolute value
func (r *cartRepository) UpdateQty(ctx context.Context, lineID primitive.ObjectID, qty int) error {
	update := bson.M{
		"$set": bson.M{
			"qty":        qty,
			"updated_at": time.Now(),
		},
	}

	result, err := r.collection.UpdateByID(ctx, lineID, update)
	if err != nil {
		return fmt.Errorf("failed to update cart item quantity: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// Remove deletes a single line by id, regardless of owner
func (r *cartRepository) Remove(ctx context.Context, lineID primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": lineID})
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}

	if result.DeletedCount == 0 {
		return ErrCartItemNotFound
	}

	return nil
}

// Clear deletes every line owned by the given user
func (r *cartRepository) Clear(ctx context.Context, userID string) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{"user_id": userID}); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

// EnsureIndexes creates the unique (user_id, product_id) index backing the
// one-line-per-pair invariant.
func (r *cartRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "product_id", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("failed to create cart indexes: %w", err)
	}

	return nil
}
