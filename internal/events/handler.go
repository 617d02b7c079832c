package events

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/surplustoserve/backend/internal/middleware"
	"github.com/surplustoserve/backend/internal/models"
	"github.com/surplustoserve/backend/pkg/response"
)

// Store is the event persistence the handler needs.
type Store interface {
	Create(ctx context.Context, e *models.Event) error
	List(ctx context.Context) ([]models.EventWithDonor, error)
	GetWithDonor(ctx context.Context, id uuid.UUID) (*models.EventWithDonor, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error)
	Update(ctx context.Context, id uuid.UUID, title, description string, eventDate time.Time, eventTime, venue string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// UpsertRequest is the body for POST /events and PUT /events/:id.
// Update is a full field replacement, so the two share a shape.
type UpsertRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	EventDate   string `json:"event_date" binding:"required"`
	EventTime   string `json:"event_time" binding:"required"`
	Venue       string `json:"venue" binding:"required"`
}

// eventView is the wire shape for events; event_date goes out as YYYY-MM-DD.
type eventView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	EventDate   string    `json:"event_date"`
	EventTime   string    `json:"event_time"`
	Venue       string    `json:"venue"`
	CreatedAt   time.Time `json:"created_at"`
	DonorName   string    `json:"donor_name,omitempty"`
	DonorPhone  string    `json:"donor_phone,omitempty"`
	DonorEmail  string    `json:"donor_email,omitempty"`
}

func toView(e *models.EventWithDonor) eventView {
	return eventView{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		EventDate:   e.EventDate.Format(models.EventDateLayout),
		EventTime:   e.EventTime,
		Venue:       e.Venue,
		CreatedAt:   e.CreatedAt,
		DonorName:   e.DonorName,
		DonorPhone:  e.DonorPhone,
		DonorEmail:  e.DonorEmail,
	}
}

// Handler handles event HTTP endpoints.
type Handler struct {
	store  Store
	logger *zap.Logger
}

// NewHandler creates an event handler.
func NewHandler(store Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// List handles GET /events (public).
func (h *Handler) List(c *gin.Context) {
	list, err := h.store.List(c.Request.Context())
	if err != nil {
		h.logger.Error("list events", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	views := make([]eventView, 0, len(list))
	for i := range list {
		views = append(views, toView(&list[i]))
	}
	response.OK(c, gin.H{"events": views})
}

// GetByID handles GET /events/:id (public).
func (h *Handler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}
	event, err := h.store.GetWithDonor(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Event not found")
		return
	}
	if err != nil {
		h.logger.Error("get event", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	response.OK(c, gin.H{"event": toView(event)})
}

// Create handles POST /events (donor only).
func (h *Handler) Create(c *gin.Context) {
	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}
	eventDate, err := time.Parse(models.EventDateLayout, req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date")
		return
	}

	event := &models.Event{
		DonorID:     middleware.SubjectID(c),
		Title:       req.Title,
		Description: req.Description,
		EventDate:   eventDate,
		EventTime:   req.EventTime,
		Venue:       req.Venue,
	}
	if err := h.store.Create(c.Request.Context(), event); err != nil {
		h.logger.Error("create event", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}

	response.Created(c, gin.H{
		"message": "Event added successfully",
		"event": gin.H{
			"id":         event.ID,
			"title":      event.Title,
			"event_date": req.EventDate,
			"event_time": event.EventTime,
		},
	})
}

// Update handles PUT /events/:id (owning donor only). Replaces all fields.
func (h *Handler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}
	var req UpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "All fields are required")
		return
	}
	eventDate, err := time.Parse(models.EventDateLayout, req.EventDate)
	if err != nil {
		response.BadRequest(c, "Invalid event date")
		return
	}

	event, err := h.store.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Event not found")
		return
	}
	if err != nil {
		h.logger.Error("get event", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	if event.DonorID != middleware.SubjectID(c) {
		response.Forbidden(c, "You can only edit your own events")
		return
	}

	if err := h.store.Update(c.Request.Context(), id, req.Title, req.Description, eventDate, req.EventTime, req.Venue); err != nil {
		h.logger.Error("update event", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	response.OK(c, gin.H{"message": "Event updated successfully"})
}

// Delete handles DELETE /events/:id (owning donor only).
func (h *Handler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid event id")
		return
	}

	event, err := h.store.GetByID(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		response.NotFound(c, "Event not found")
		return
	}
	if err != nil {
		h.logger.Error("get event", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	if event.DonorID != middleware.SubjectID(c) {
		response.Forbidden(c, "You can only delete your own events")
		return
	}

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.logger.Error("delete event", zap.Error(err))
		response.Internal(c, "Server error")
		return
	}
	response.OK(c, gin.H{"message": "Event deleted successfully"})
}
