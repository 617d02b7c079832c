package foods

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/surplustoserve/backend/internal/middleware"
	"github.com/surplustoserve/backend/internal/models"
	"github.com/surplustoserve/backend/pkg/response"
)

// Store is the food persistence the handler needs.
type Store interface {
	Create(ctx context.Context, f *models.Food) error
	ListAvailable(ctx context.Context) ([]models.FoodWithDonor, error)
	ListByDonor(ctx context.Context, donorID uuid.UUID) ([]models.Food, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.FoodWithDonor, error)
	Claim(ctx context.Context, foodID, ngoID uuid.UUID) error
}

// CreateRequest is the body for POST /foods.
type CreateRequest struct {
	FoodName     string   `json:"food_name" binding:"required"`
	Quantity     string   `json:"quantity" binding:"required"`
	DistanceText string   `json:"distance_text"`
	Phone        string   `json:"phone" binding:"required"`
	Notes        string   `json:"notes"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// Handler handles food HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a food handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Create handles POST /foods (donor only).
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Food name, quantity, and phone are required")
		return
	}

	food := &models.Food{
		DonorID:      middleware.SubjectID(c),
		FoodName:     req.FoodName,
		Quantity:     req.Quantity,
		DistanceText: req.DistanceText,
		Phone:        req.Phone,
		Notes:        req.Notes,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
	}
	if err := h.store.Create(c.Request.Context(), food); err != nil {
		h.logger.Error("create food", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}

	response.Created(c, gin.H{
		"message": "Food added successfully",
		"food":    food.ToSummary(),
	})
}

// ListAvailable handles GET /foods/available (public).
func (h *Handler) ListAvailable(c *gin.Context) {
	list, err := h.store.ListAvailable(c.Request.Context())
	if err != nil {
		h.logger.Error("list available foods", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	if list == nil {
		list = []models.FoodWithDonor{}
	}
	response.OK(c, gin.H{"foods": list})
}

// ListMine handles GET /foods/my (donor only).
func (h *Handler) ListMine(c *gin.Context) {
	list, err := h.store.ListByDonor(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		h.logger.Error("list donor foods", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	summaries := make([]models.FoodSummary, 0, len(list))
	for i := range list {
		summaries = append(summaries, list[i].ToSummary())
	}
	response.OK(c, gin.H{"foods": summaries})
}

// GetByID handles GET /foods/:id (public).
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid food id")
		return
	}
	food, err := h.store.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Food not found")
		return
	}
	if err != nil {
		h.logger.Error("get food", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	response.OK(c, gin.H{"food": food})
}

// Claim handles POST /foods/:id/claim (NGO only).
func (h *Handler) Claim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid food id")
		return
	}

	err = h.store.Claim(c.Request.Context(), id, middleware.SubjectID(c))
	if errors.Is(err, ErrNotClaimable) {
		response.NotFound(c, "Food not found or already claimed")
		return
	}
	if err != nil {
		h.logger.Error("claim food", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}

	response.OK(c, gin.H{"message": "Food claimed successfully"})
}
