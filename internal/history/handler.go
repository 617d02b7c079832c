package history

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/surplustoserve/backend/internal/models"
	"github.com/surplustoserve/backend/pkg/response"
)

// Store is the ledger access the handler needs.
type Store interface {
	List(ctx context.Context) ([]models.HistoryWithParties, error)
}

// Handler handles history HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates a history handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// List handles GET /history (public).
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list history", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	if list == nil {
		list = []models.HistoryWithParties{}
	}
	response.OK(c, gin.H{"history": list})
}
