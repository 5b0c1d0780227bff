package execution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/fittrack/internal/apierr"
	"github.com/2beens/fittrack/internal/auth"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg/observable"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Connectivity is true while the fittrack API was reachable on the last
// request made by any client in this process.
var Connectivity = observable.NewValue(true)

// StatusError is a non 2xx answer. It unwraps to the matching apierr class.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api status %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	switch e.Code {
	case http.StatusNotFound:
		return apierr.ErrNotFound
	case http.StatusBadRequest:
		return apierr.ErrValidation
	case http.StatusConflict:
		return apierr.ErrConflict
	case http.StatusUnauthorized:
		return apierr.ErrUnauthorized
	default:
		return nil
	}
}

// APIClient implements API over the fittrack HTTP endpoints.
type APIClient struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	connectivity *observable.Value[bool]
}

func NewAPIClient(baseURL, token string, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		connectivity: Connectivity,
	}
}

func (c *APIClient) GetInstance(ctx context.Context, id int) (*workouts.Instance, error) {
	var inst workouts.Instance
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/workout-instances/%d", id), nil, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

func (c *APIClient) UpdateSet(ctx context.Context, setID int, update workouts.SetUpdate) (*workouts.SetUpdateResult, error) {
	body := map[string]any{}
	if update.ActualReps != nil {
		body["actualReps"] = *update.ActualReps
	}
	if update.Weight != nil {
		body["weight"] = *update.Weight
	}
	if update.Unit != nil {
		body["unit"] = *update.Unit
	}
	if update.Completed != nil {
		body["completed"] = *update.Completed
	}

	var res workouts.SetUpdateResult
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/exercise-sets/%d", setID), body, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *APIClient) CompleteInstance(ctx context.Context, id int) (*workouts.Instance, error) {
	var inst workouts.Instance
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/workout-instances/%d/complete", id), nil, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set(auth.TokenHeader, c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == nil {
			c.setOnline(false)
		}
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()
	c.setOnline(true)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return &StatusError{
			Code:    resp.StatusCode,
			Message: strings.TrimSpace(string(respBody)),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c *APIClient) setOnline(online bool) {
	if c.connectivity.Get() != online {
		c.connectivity.Set(online)
	}
}
