package donors

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/surplustoserve/backend/internal/auth"
	"github.com/surplustoserve/backend/internal/models"
	"github.com/surplustoserve/backend/pkg/response"
	"github.com/surplustoserve/backend/pkg/utils"
)

// Store is the donor persistence the handler needs.
type Store interface {
	Create(ctx context.Context, name, email, passwordHash, phone string) (*models.Donor, error)
	GetByEmail(ctx context.Context, email string) (*models.Donor, error)
}

// RegisterRequest is the body for POST /donors/register.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
}

// LoginRequest is the body for POST /donors/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Handler handles donor HTTP endpoints.
type Handler struct {
	store  Store
	tokens *auth.TokenService
	logger *zap.Logger
}

// NewHandler creates a donor handler.
func NewHandler(store Store, tokens *auth.TokenService, logger *zap.Logger) *Handler {
	return &Handler{store: store, tokens: tokens, logger: logger}
}

// Register handles POST /donors/register.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}

	_, err := h.store.GetByEmail(c.Request.Context(), req.Email)
	if err == nil {
		response.BadRequest(c, "Email already registered")
		return
	}
	if !errors.Is(err, ErrNotFound) {
		h.logger.Error("lookup donor", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "Server error")
		return
	}

	donor, err := h.store.Create(c.Request.Context(), req.Name, req.Email, hash, req.Phone)
	if err != nil {
		h.logger.Error("create donor", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}

	token, err := h.tokens.Generate(donor.ID, auth.KindDonor)
	if err != nil {
		response.Internal(c, "Server error")
		return
	}

	response.Created(c, gin.H{
		"message": "Donor registered successfully",
		"token":   token,
		"donor":   donor.ToPublic(),
	})
}

// Login handles POST /donors/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	donor, err := h.store.GetByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, ErrNotFound) {
		response.Unauthorized(c, "Invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("lookup donor", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	if !utils.CheckPassword(req.Password, donor.PasswordHash) {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.tokens.Generate(donor.ID, auth.KindDonor)
	if err != nil {
		response.Internal(c, "Server error")
		return
	}

	response.OK(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"donor":   donor.ToPublic(),
	})
}
