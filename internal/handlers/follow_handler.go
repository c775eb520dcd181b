package handlers

import (
	"net/http"

	"github.com/anonto42/socially/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	follows *services.FollowService
	users   *services.UserService
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(follows *services.FollowService, users *services.UserService) *FollowHandler {
	return &FollowHandler{follows: follows, users: users}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.GET("/users/:id/follow", h.IsFollowing)
	g.POST("/users/:id/follow", h.ToggleFollow)
}

// ToggleFollow follows the user if the caller does not follow them yet, unfollows otherwise
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	targetID := c.Param("id")

	res := h.follows.ToggleFollow(ctx, subject, targetID)
	if !res.Success {
		return writeResult(c, http.StatusOK, res, nil)
	}
	following := h.users.IsFollowing(ctx, subject, targetID)
	return writeResult(c, http.StatusOK, res, echo.Map{"following": following})
}

func (h *FollowHandler) IsFollowing(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	following := h.users.IsFollowing(c.Request().Context(), subject, c.Param("id"))
	return writeData(c, echo.Map{"following": following})
}
