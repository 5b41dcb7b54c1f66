package domain

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartLine is one product-quantity pairing within a user's cart. Name and
// price are denormalized from the product at first add time and are never
// re-synced afterwards.
type CartLine struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID primitive.ObjectID `json:"productId" bson:"product_id"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Qty       int                `json:"qty" bson:"qty"`
	UserID    string             `json:"userId" bson:"user_id"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

// Cart is the derived view of one user's cart: its current lines plus the
// total recomputed from them. It is never persisted or cached.
type Cart struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// NewCart builds a cart view from the given lines, computing the total
// fresh. A nil slice yields an empty cart with total 0.
func NewCart(lines []CartLine) Cart {
	if lines == nil {
		lines = []CartLine{}
	}

	var total float64
	for _, line := range lines {
		total += line.Price * float64(line.Qty)
	}

	return Cart{
		Items: lines,
		Total: Round2(total),
	}
}

// Round2 rounds a monetary amount to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
