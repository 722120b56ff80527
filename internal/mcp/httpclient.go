package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/workoutguide/internal/catalog"
	"github.com/claude/workoutguide/internal/workout"
)

// HTTPClient implements DataSource by calling the WorkoutGuide REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// the catalog is served by a remote instance (e.g. over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, fmt.Errorf("httpclient: %s: %w", path, catalog.ErrNotFound)
	default:
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}
}

func (c *HTTPClient) ListWorkouts(ctx context.Context) ([]workout.Summary, error) {
	body, err := c.get(ctx, "/api/v1/workouts")
	if err != nil {
		return nil, err
	}

	var summaries []workout.Summary
	if err := json.Unmarshal(body, &summaries); err != nil {
		return nil, fmt.Errorf("httpclient: decode workouts: %w", err)
	}
	return summaries, nil
}

// GetWorkout fetches the workout preview, which decodes into the workout itself.
func (c *HTTPClient) GetWorkout(ctx context.Context, id string) (workout.Workout, error) {
	body, err := c.get(ctx, "/api/v1/workouts/"+url.PathEscape(id))
	if err != nil {
		return workout.Workout{}, err
	}

	var w workout.Workout
	if err := json.Unmarshal(body, &w); err != nil {
		return workout.Workout{}, fmt.Errorf("httpclient: decode workout: %w", err)
	}
	return w, nil
}
