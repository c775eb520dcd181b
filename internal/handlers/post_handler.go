package handlers

import (
	"net/http"

	"github.com/anonto42/socially/backend/internal/models"
	"github.com/anonto42/socially/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// PostHandler handles HTTP requests related to posts, their likes and comments
type PostHandler struct {
	posts *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(posts *services.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// RegisterPublicPostRoutes registers the routes readable without a session
func (h *PostHandler) RegisterPublicPostRoutes(g *echo.Group) {
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/posts/:id/comments", h.GetComments)
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.DELETE("/posts/:id", h.DeletePost)
	g.POST("/posts/:id/like", h.ToggleLike)
	g.POST("/posts/:id/comments", h.CreateComment)
}

// GetPosts returns the feed, newest first
func (h *PostHandler) GetPosts(c echo.Context) error {
	return writeData(c, h.posts.GetPosts(c.Request().Context()))
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post := h.posts.GetPost(c.Request().Context(), c.Param("id"))
	if post == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return writeData(c, post)
}

func (h *PostHandler) GetComments(c echo.Context) error {
	return writeData(c, h.posts.GetComments(c.Request().Context(), c.Param("id")))
}

// CreatePost creates a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	var req models.CreatePostRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.posts.CreatePost(c.Request().Context(), subject, req.Content, req.Image)
	return writeResult(c, http.StatusCreated, res.Result, echo.Map{"post": res.Post})
}

// DeletePost deletes a post written by the caller
func (h *PostHandler) DeletePost(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	res := h.posts.DeletePost(c.Request().Context(), subject, c.Param("id"))
	return writeResult(c, http.StatusOK, res, nil)
}

// ToggleLike likes the post, or removes the caller's like if there is one
func (h *PostHandler) ToggleLike(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	res := h.posts.ToggleLike(c.Request().Context(), subject, c.Param("id"))
	return writeResult(c, http.StatusOK, res, nil)
}

// CreateComment adds a comment to a post
func (h *PostHandler) CreateComment(c echo.Context) error {
	subject, err := subjectFromContext(c)
	if err != nil {
		return err
	}
	var req models.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res := h.posts.CreateComment(c.Request().Context(), subject, c.Param("id"), req.Content)
	return writeResult(c, http.StatusCreated, res.Result, echo.Map{"comment": res.Comment})
}
