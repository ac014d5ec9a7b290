package handler

import (
	"context"
	"net/http"

	"localmarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

// NeighborhoodHandler serves the neighborhood list
type NeighborhoodHandler struct {
	service NeighborhoodService
}

// NeighborhoodService interface for dependency injection
type NeighborhoodService interface {
	List(ctx context.Context) ([]models.NeighborhoodSummary, error)
}

// NewNeighborhoodHandler creates a new neighborhood handler
func NewNeighborhoodHandler(svc NeighborhoodService) *NeighborhoodHandler {
	return &NeighborhoodHandler{service: svc}
}

// List godoc
// @Summary      List neighborhoods
// @Tags         neighborhoods
// @Produce      json
// @Success      200  {array}   models.NeighborhoodSummary
// @Failure      500  {object}  map[string]string
// @Router       /neighborhoods [get]
func (h *NeighborhoodHandler) List(c *gin.Context) {
	neighborhoods, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, neighborhoods)
}
