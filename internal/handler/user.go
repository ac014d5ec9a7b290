package handler

import (
	"context"
	"net/http"

	"localmarket-api/internal/models"

	"github.com/gin-gonic/gin"
)

// UserHandler handles onboarding and the current user's profile
type UserHandler struct {
	service UserService
}

// UserService interface for dependency injection
type UserService interface {
	Onboard(ctx context.Context, userID string, update models.ProfileUpdate) (*models.User, error)
}

// NewUserHandler creates a new user handler
func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{service: svc}
}

// Onboard godoc
// @Summary      Complete onboarding
// @Description  Sets name, role and home neighborhood of the signed-in user.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        profile  body      models.ProfileUpdate  true  "Profile"
// @Success      200      {object}  models.User
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) Onboard(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.service.Onboard(c.Request.Context(), CurrentUser(c).ID, update)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Me godoc
// @Summary      Current user
// @Tags         users
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, CurrentUser(c))
}
