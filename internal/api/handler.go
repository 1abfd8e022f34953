package api

import (
	"github.com/gin-gonic/gin"

	"event-hotels-backend/internal/service"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	hotels   service.HotelService
	statuses StatusTable
}

// NewHandler creates a new API handler.
func NewHandler(hotels service.HotelService, statuses StatusTable) *Handler {
	return &Handler{
		hotels:   hotels,
		statuses: statuses,
	}
}

// fail records err on the context for the request logger and replies with a bare status.
func (h *Handler) fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatus(h.statuses.Status(err))
}
