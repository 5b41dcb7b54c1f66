package transport

import (
	"errors"
	"net/http"

	"vibe-commerce/internal/middleware"
	"vibe-commerce/internal/repository"
	"vibe-commerce/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DefaultUserID is the demo identity applied at the HTTP boundary when a
// request carries no userId. It is passed explicitly into every service
// call; no layer below transport knows about the default.
const DefaultUserID = "demo-user"

// AddToCartRequest represents the add-to-cart request payload
type AddToCartRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Qty       int    `json:"qty" validate:"required,gte=1"`
	UserID    string `json:"userId"`
}

// UpdateCartItemRequest represents the quantity update request payload
type UpdateCartItemRequest struct {
	Qty    int    `json:"qty" validate:"required,gte=1"`
	UserID string `json:"userId"`
}

// CartHandler handles HTTP requests for cart operations
type CartHandler struct {
	cartService service.CartService
	logger      *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(cartService service.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Post("/", h.AddToCart)
		r.Put("/{id}", h.UpdateItem)
		r.Delete("/{id}", h.RemoveItem)
	})
}

// GetCart handles fetching the current cart view
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = DefaultUserID
	}

	cart, err := h.cartService.View(r.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to load cart", zap.Error(err), zap.String("user_id", userID))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, cart)
}

// AddToCart handles adding a product to the cart
func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req AddToCartRequest

	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Add to cart validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = DefaultUserID
	}

	cart, err := h.cartService.Add(r.Context(), userID, req.ProductID, req.Qty)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			middleware.RespondWithError(w, http.StatusBadRequest, ve.Message)
			return
		}
		if errors.Is(err, repository.ErrProductNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Product not found")
			return
		}

		h.logger.Error("Failed to add to cart", zap.Error(err), zap.String("user_id", userID))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to add to cart")
		return
	}

	h.logger.Info("Item added to cart",
		zap.String("user_id", userID),
		zap.String("product_id", req.ProductID),
		zap.Int("qty", req.Qty),
	)
	middleware.RespondWithJSON(w, http.StatusOK, cart)
}

// UpdateItem handles setting a cart line's quantity
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "id")

	var req UpdateCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		h.logger.Debug("Update cart item validation failed", zap.Error(err))
		middleware.RespondWithError(w, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = DefaultUserID
	}

	cart, err := h.cartService.UpdateQuantity(r.Context(), userID, lineID, req.Qty)
	if err != nil {
		var ve *service.ValidationError
		if errors.As(err, &ve) {
			middleware.RespondWithError(w, http.StatusBadRequest, ve.Message)
			return
		}
		if errors.Is(err, repository.ErrCartItemNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Cart item not found")
			return
		}

		h.logger.Error("Failed to update cart item", zap.Error(err), zap.String("line_id", lineID))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to update cart item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, cart)
}

// RemoveItem handles deleting a cart line
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "id")

	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = DefaultUserID
	}

	cart, err := h.cartService.Remove(r.Context(), userID, lineID)
	if err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			middleware.RespondWithError(w, http.StatusNotFound, "Cart item not found")
			return
		}

		h.logger.Error("Failed to remove cart item", zap.Error(err), zap.String("line_id", lineID))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to remove cart item")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, cart)
}
