package handler

import (
	"net/http"

	"localmarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

// Handlers groups the route handlers registered by RegisterRoutes.
type Handlers struct {
	Neighborhoods *NeighborhoodHandler
	Users         *UserHandler
	Services      *ServiceHandler
	Bookings      *BookingHandler
}

// RegisterRoutes mounts the marketplace API on r.
func RegisterRoutes(r gin.IRouter, gate Gate, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/neighborhoods", h.Neighborhoods.List)
	r.GET("/services", h.Services.List)

	session := r.Group("", RequireUser(gate))
	session.POST("/users", h.Users.Onboard)
	session.GET("/users/me", h.Users.Me)
	session.GET("/services/nearby", h.Services.Nearby)

	provider := r.Group("/provider", RequireRole(gate, models.RoleProvider))
	provider.GET("/services", h.Services.ListMine)
	provider.POST("/services", h.Services.Create)
	provider.GET("/bookings", h.Bookings.ListForProvider)

	r.POST("/bookings", RequireRole(gate, models.RoleSeeker), h.Bookings.Book)
	r.POST("/bookings/:bookingID/rate", RequireRole(gate, models.RoleSeeker, models.RoleProvider), h.Bookings.Rate)
}
