package handlers

import (
	"net/http"

	"github.com/anonto42/socially/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	users *services.UserService
	posts *services.PostService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(users *services.UserService, posts *services.PostService) *UserHandler {
	return &UserHandler{users: users, posts: posts}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/me", h.GetMe)
	g.GET("/users/suggested", h.GetSuggested)
	g.GET("/profiles/:username", h.GetProfile)
	g.GET("/users/:id/posts", h.GetUserPosts)
	g.GET("/users/:id/likes", h.GetUserLikedPosts)
}

// GetMe returns the caller's profile with counts
func (h *UserHandler) GetMe(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	user := h.users.GetUserByProviderID(c.Request().Context(), subject)
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	return writeData(c, user)
}

// GetSuggested returns a few users the caller does not follow yet
func (h *UserHandler) GetSuggested(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	return writeData(c, h.users.GetRandomUsers(c.Request().Context(), subject))
}

// GetProfile returns another user's profile by username
func (h *UserHandler) GetProfile(c echo.Context) error {
	user := h.users.GetProfileByUsername(c.Request().Context(), c.Param("username"))
	if user == nil {
		return echo.NewHTTPError(http.StatusNotFound, "User profile not found")
	}
	return writeData(c, user)
}

func (h *UserHandler) GetUserPosts(c echo.Context) error {
	return writeData(c, h.posts.GetUserPosts(c.Request().Context(), c.Param("id")))
}

func (h *UserHandler) GetUserLikedPosts(c echo.Context) error {
	return writeData(c, h.posts.GetUserLikedPosts(c.Request().Context(), c.Param("id")))
}
