package transport

import (
	"errors"
	"net/http"

	"vibe-commerce/internal/domain"
	"vibe-commerce/internal/middleware"
	"vibe-commerce/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CheckoutItemRequest is one line of the client-submitted cart snapshot.
// The snapshot is stored verbatim on the receipt; the server does not
// cross-check it against the cart store.
type CheckoutItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// CheckoutRequest represents the checkout request payload
type CheckoutRequest struct {
	CartItems []CheckoutItemRequest `json:"cartItems" validate:"required,min=1"`
	Name      string                `json:"name" validate:"required"`
	Email     string                `json:"email" validate:"required"`
	UserID    string                `json:"userId"`
}

// CheckoutHandler handles HTTP requests for checkout
type CheckoutHandler struct {
	checkoutService service.CheckoutService
	logger          *zap.Logger
}

// NewCheckoutHandler creates a new CheckoutHandler
func NewCheckoutHandler(checkoutService service.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// RegisterRoutes registers the checkout route
func (h *CheckoutHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/checkout", h.Checkout)
}

// Checkout handles turning a cart snapshot into a receipt
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Checkout validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Name, email, and cart items are required")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = DefaultUserID
	}

	items := make([]domain.ReceiptItem, 0, len(req.CartItems))
	for _, item := range req.CartItems {
		items = append(items, domain.ReceiptItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Qty:       item.Qty,
		})
	}

	receipt, err := h.checkoutService.Checkout(r.Context(), userID, req.Name, req.Email, items)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			middleware.RespondWithError(w, http.StatusBadRequest, ve.Message)
			return
		}

		h.logger.Error("Checkout failed", zap.Error(err), zap.String("user_id", userID))
		middleware.RespondWithError(w, http.StatusInternalServerError, "checkout failed")
		return
	}

	h.logger.Info("Checkout completed",
		zap.String("user_id", userID),
		zap.String("receipt_id", receipt.ID.Hex()),
		zap.Float64("total", receipt.Total),
	)
	middleware.RespondWithJSON(w, http.StatusOK, receipt)
}
