// Package client is the HTTP client for the platform API, used by examctl.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/edupract/exam_platform/internal/models"
	"github.com/edupract/exam_platform/internal/transport"
)

// APIError is a non-2xx response decoded into the API's {message} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client talks to the platform API. The token func is consulted per request
// so the session manager stays the single owner of the token.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      func() string
}

func New(baseURL string, token func() string) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		token: token,
	}
}

// Login exchanges credentials for a session token. It does NOT store the
// token; the caller hands it to the session manager.
func (c *Client) Login(ctx context.Context, email, password string) (*transport.LoginResponse, error) {
	var out transport.LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", transport.LoginRequest{
		Email:    email,
		Password: password,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Users(ctx context.Context) ([]transport.UserResponse, error) {
	var out []transport.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/data/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Courses(ctx context.Context) ([]models.Course, error) {
	var out []models.Course
	if err := c.do(ctx, http.MethodGet, "/api/courses/getCourses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Topics(ctx context.Context) ([]models.Topic, error) {
	var out []models.Topic
	if err := c.do(ctx, http.MethodGet, "/api/topic/getTopics", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Exercises(ctx context.Context) ([]transport.ExerciseResponse, error) {
	var out []transport.ExerciseResponse
	if err := c.do(ctx, http.MethodGet, "/api/practice/practiceExercises", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr transport.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
