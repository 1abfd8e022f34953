package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"event-hotels-backend/internal/mw"
	"event-hotels-backend/internal/observability"
	"event-hotels-backend/internal/parse"
	"event-hotels-backend/internal/service"
)

// GetHotels handles GET /hotels.
func (h *Handler) GetHotels(c *gin.Context) {
	userID, ok := mw.UserID(c)
	if !ok {
		h.fail(c, fmt.Errorf("%w: no user on request", service.ErrUnauthorized))
		return
	}

	hotels, err := h.hotels.GetHotels(c.Request.Context(), userID)
	switch {
	case err == nil:
		observability.ObserveEligibility("granted")
	case errors.Is(err, service.ErrNotFound):
		observability.ObserveEligibility("denied")
	default:
		observability.ObserveEligibility("error")
	}
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, hotels)
}

// GetHotelsByHotelID handles GET /hotels/:hotelId and returns the hotel's rooms.
func (h *Handler) GetHotelsByHotelID(c *gin.Context) {
	hotelID, err := parse.ID(c.Param("hotelId"))
	if err != nil {
		h.fail(c, fmt.Errorf("%w: %v", service.ErrBadRequest, err))
		return
	}

	rooms, err := h.hotels.GetHotelsByHotelID(c.Request.Context(), hotelID)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}
