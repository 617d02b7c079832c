package ngos

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/surplustoserve/backend/internal/auth"
	"github.com/surplustoserve/backend/internal/models"
	"github.com/surplustoserve/backend/pkg/response"
	"github.com/surplustoserve/backend/pkg/utils"
)

// Store is the NGO persistence the handler needs.
type Store interface {
	Create(ctx context.Context, n *models.NGO) error
	GetByEmail(ctx context.Context, email string) (*models.NGO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.NGO, error)
}

// RegisterRequest is the body for POST /ngos/register.
type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Phone     string `json:"phone" binding:"required"`
	Address   string `json:"address" binding:"required"`
	SecretKey string `json:"secret_key" binding:"required"`
}

// LoginRequest is the body for POST /ngos/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ValidateSecretRequest is the body for POST /ngos/validate-secret.
type ValidateSecretRequest struct {
	NGOID     string `json:"ngoId" binding:"required"`
	SecretKey string `json:"secretKey" binding:"required"`
}

// Handler handles NGO HTTP endpoints.
type Handler struct {
	store  Store
	tokens *auth.TokenService
	logger *zap.Logger
}

// NewHandler creates an NGO handler.
func NewHandler(store Store, tokens *auth.TokenService, logger *zap.Logger) *Handler {
	return &Handler{store: store, tokens: tokens, logger: logger}
}

// Register handles POST /ngos/register.
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
		h.logger.Error("lookup ngo", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		response.Internal(c, "Server error")
		return
	}

	ngo := &models.NGO{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Address:      req.Address,
		SecretKey:    req.SecretKey,
	}
	if err := h.store.Create(c.Request.Context(), ngo); err != nil {
		h.logger.Error("create ngo", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}

	token, err := h.tokens.Generate(ngo.ID, auth.KindNGO)
	if err != nil {
		response.Internal(c, "Server error")
		return
	}

	response.Created(c, gin.H{
		"message": "NGO registered successfully",
		"token":   token,
		"ngo":     ngo.ToPublic(),
	})
}

// Login handles POST /ngos/login.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}

	ngo, err := h.store.GetByEmail(c.Request.Context(), req.Email)
	if errors.Is(err, ErrNotFound) {
		response.Unauthorized(c, "Invalid credentials")
		return
	}
	if err != nil {
		h.logger.Error("lookup ngo", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	if !utils.CheckPassword(req.Password, ngo.PasswordHash) {
		response.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := h.tokens.Generate(ngo.ID, auth.KindNGO)
	if err != nil {
		response.Internal(c, "Server error")
		return
	}

	response.OK(c, gin.H{
		"message": "Login successful",
		"token":   token,
		"ngo":     ngo.ToPublic(),
	})
}

// ValidateSecret handles POST /ngos/validate-secret. This is a plaintext
// equality check layered after login; it neither grants nor revokes the token.
func (h *Handler) ValidateSecret(c *gin.Context) {
	var req ValidateSecretRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "NGO ID and secret key are required")
		return
	}

	id, err := uuid.Parse(req.NGOID)
	if err != nil {
		response.BadRequest(c, "Invalid NGO ID")
		return
	}

	ngo, err := h.store.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "NGO not found")
		return
	}
	if err != nil {
		h.logger.Error("lookup ngo", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	if ngo.SecretKey != req.SecretKey {
		response.Unauthorized(c, "Invalid secret key")
		return
	}

	response.OK(c, gin.H{
		"message": "Secret key validated successfully",
		"valid":   true,
	})
}
