package handler

import (
	"context"
	"net/http"

	"localmarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

// BookingHandler handles bookings and ratings
type BookingHandler struct {
	service BookingService
}

// BookingService interface for dependency injection
type BookingService interface {
	Book(ctx context.Context, seeker *models.User, serviceID string) (*models.Booking, error)
	Rate(ctx context.Context, user *models.User, bookingID string, rating int, review string) (*models.Booking, error)
	ListForProvider(ctx context.Context, provider *models.User) ([]models.ProviderBooking, error)
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(svc BookingService) *BookingHandler {
	return &BookingHandler{service: svc}
}

// BookRequest is the body of POST /bookings.
type BookRequest struct {
	ServiceID string `json:"service_id"`
}

// RateRequest is the body of POST /bookings/{bookingID}/rate.
type RateRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// Book godoc
// @Summary      Book a service
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        booking  body      BookRequest  true  "Service to book"
// @Success      201      {object}  models.Booking
// @Failure      400      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Security     BearerAuth
// @Router       /bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	booking, err := h.service.Book(c.Request.Context(), CurrentUser(c), req.ServiceID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// Rate godoc
// @Summary      Rate a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        bookingID  path      string       true  "Booking ID"
// @Param        rating     body      RateRequest  true  "Rating 1-5 and optional review"
// @Success      200        {object}  models.Booking
// @Failure      400        {object}  map[string]string
// @Failure      403        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Security     BearerAuth
// @Router       /bookings/{bookingID}/rate [post]
func (h *BookingHandler) Rate(c *gin.Context) {
	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	booking, err := h.service.Rate(c.Request.Context(), CurrentUser(c), c.Param("bookingID"), req.Rating, req.Review)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// ListForProvider godoc
// @Summary      Bookings on the provider's services
// @Tags         provider
// @Produce      json
// @Success      200  {array}   models.ProviderBooking
// @Failure      403  {object}  map[string]string
// @Security     BearerAuth
// @Router       /provider/bookings [get]
func (h *BookingHandler) ListForProvider(c *gin.Context) {
	bookings, err := h.service.ListForProvider(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
