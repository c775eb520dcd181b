package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/anonto42/socially/backend/internal/models"
)

// Result is the outcome of a mutation as reported by the API
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func (r Result) err() error {
	if r.Error == "" {
		return errors.New("request failed")
	}
	return errors.New(r.Error)
}

// Actions is the set of server operations the interaction components call
type Actions interface {
	ToggleLike(ctx context.Context, postID string) Result
	CreateComment(ctx context.Context, postID, content string) Result
	DeletePost(ctx context.Context, postID string) Result
	ToggleFollow(ctx context.Context, userID string) Result
	MarkNotificationsAsRead(ctx context.Context, ids []string) Result
	GetPosts(ctx context.Context) ([]models.Post, error)
	GetNotifications(ctx context.Context) ([]models.NotificationView, error)
}

// HTTPActions calls the socially API over HTTP with a session token
type HTTPActions struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewHTTPActions(baseURL, token string) *HTTPActions {
	return &HTTPActions{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (a *HTTPActions) ToggleLike(ctx context.Context, postID string) Result {
	return a.mutate(ctx, http.MethodPost, "/api/v1/posts/"+postID+"/like", nil)
}

func (a *HTTPActions) CreateComment(ctx context.Context, postID, content string) Result {
	return a.mutate(ctx, http.MethodPost, "/api/v1/posts/"+postID+"/comments", models.CreateCommentRequest{Content: content})
}

func (a *HTTPActions) DeletePost(ctx context.Context, postID string) Result {
	return a.mutate(ctx, http.MethodDelete, "/api/v1/posts/"+postID, nil)
}

func (a *HTTPActions) ToggleFollow(ctx context.Context, userID string) Result {
	return a.mutate(ctx, http.MethodPost, "/api/v1/users/"+userID+"/follow", nil)
}

func (a *HTTPActions) MarkNotificationsAsRead(ctx context.Context, ids []string) Result {
	return a.mutate(ctx, http.MethodPost, "/api/v1/notifications/read", models.MarkReadRequest{IDs: ids})
}

func (a *HTTPActions) GetPosts(ctx context.Context) ([]models.Post, error) {
	var body struct {
		Data []models.Post `json:"data"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/v1/posts", nil, &body); err != nil {
		return nil, err
	}
	return body.Data, nil
}

func (a *HTTPActions) GetNotifications(ctx context.Context) ([]models.NotificationView, error) {
	var body struct {
		Data struct {
			Notifications []models.NotificationView `json:"notifications"`
		} `json:"data"`
	}
	if err := a.do(ctx, http.MethodGet, "/api/v1/notifications", nil, &body); err != nil {
		return nil, err
	}
	return body.Data.Notifications, nil
}

// mutate never returns a transport error; anything that goes wrong is a failed Result
func (a *HTTPActions) mutate(ctx context.Context, method, path string, payload interface{}) Result {
	var res Result
	if err := a.do(ctx, method, path, payload, &res); err != nil {
		if res.Error == "" {
			res.Error = err.Error()
		}
		res.Success = false
	}
	return res
}

// do sends the request and decodes the JSON body into out, also on error statuses
func (a *HTTPActions) do(ctx context.Context, method, path string, payload, out interface{}) error {
	var body bytes.Buffer
	if payload != nil {
		if err := json.NewEncoder(&body).Encode(payload); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	decodeErr := json.NewDecoder(resp.Body).Decode(out)
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%s %s: %s", method, path, resp.Status)
	}
	return decodeErr
}
