package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReceiptItem is a frozen line item inside a receipt. The product reference
// is kept as a plain string because the snapshot comes from the client and
// is stored verbatim.
type ReceiptItem struct {
	ProductID string  `json:"productId" bson:"product_id"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Qty       int     `json:"qty" bson:"qty"`
}

// Receipt records a completed checkout. Receipts are append-only and never
// mutated after creation, even if products or carts change afterwards.
type Receipt struct {
	ID        primitive.ObjectID `json:"receiptId" bson:"_id,omitempty"`
	Items     []ReceiptItem      `json:"items" bson:"items"`
	Total     float64            `json:"total" bson:"total"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}
