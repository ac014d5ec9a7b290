package handler

import (
	"context"
	"net/http"
	"strconv"

	"localmarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

// DefaultRadiusKm is used when /services/nearby has no radius parameter.
const DefaultRadiusKm = 5

// ServiceHandler handles the service catalog
type ServiceHandler struct {
	catalog CatalogService
	nearby  NearbyService
}

// CatalogService interface for dependency injection
type CatalogService interface {
	CreateService(ctx context.Context, provider *models.User, in models.NewService) (*models.Service, error)
	ListAll(ctx context.Context) ([]models.ServiceListing, error)
	ListForProvider(ctx context.Context, provider *models.User) ([]models.ProviderService, error)
}

// NearbyService interface for dependency injection
type NearbyService interface {
	NearbyServices(ctx context.Context, user *models.User, radiusKm float64) ([]models.NearbyService, error)
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(catalog CatalogService, nearby NearbyService) *ServiceHandler {
	return &ServiceHandler{catalog: catalog, nearby: nearby}
}

// List godoc
// @Summary      List all services
// @Tags         services
// @Produce      json
// @Success      200  {array}   models.ServiceListing
// @Failure      500  {object}  map[string]string
// @Router       /services [get]
func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.catalog.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Nearby godoc
// @Summary      Services near the signed-in user
// @Description  Services whose neighborhood lies within the radius of the user's home neighborhood.
// @Tags         services
// @Produce      json
// @Param        radius  query     number  false  "Radius in km (5, 10 or 25)"  default(5)
// @Success      200     {array}   models.NearbyService
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Security     BearerAuth
// @Router       /services/nearby [get]
func (h *ServiceHandler) Nearby(c *gin.Context) {
	radiusKm := float64(DefaultRadiusKm)
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid 'radius' parameter"})
			return
		}
		radiusKm = parsed
	}

	services, err := h.nearby.NearbyServices(c.Request.Context(), CurrentUser(c), radiusKm)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// Create godoc
// @Summary      Publish a service
// @Tags         provider
// @Accept       json
// @Produce      json
// @Param        service  body      models.NewService  true  "Service"
// @Success      201      {object}  models.Service
// @Failure      400      {object}  map[string]string
// @Failure      403      {object}  map[string]string
// @Security     BearerAuth
// @Router       /provider/services [post]
func (h *ServiceHandler) Create(c *gin.Context) {
	var in models.NewService
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	svc, err := h.catalog.CreateService(c.Request.Context(), CurrentUser(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ListMine godoc
// @Summary      Provider's own services with bookings
// @Tags         provider
// @Produce      json
// @Success      200  {array}   models.ProviderService
// @Failure      403  {object}  map[string]string
// @Security     BearerAuth
// @Router       /provider/services [get]
func (h *ServiceHandler) ListMine(c *gin.Context) {
	services, err := h.catalog.ListForProvider(c.Request.Context(), CurrentUser(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}
