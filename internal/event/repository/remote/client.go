package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"events-portal/internal/event/repository"
	"events-portal/internal/model"
)

// Operation names, used in errors and metric labels.
const (
	OpGetEvent    = "get_event"
	OpListEvents  = "list_events"
	OpMutateEvent = "mutate_event"
)

// Client is the HTTP wrapper for the events REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *Metrics
}

// NewClient creates a new events API client. A nil httpClient gets a default client with no
// timeout; a nil metrics disables instrumentation.
func NewClient(baseURL string, httpClient *http.Client, metrics *Metrics) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		metrics:    metrics,
	}
}

// StatusError is returned when the events API answers outside the 2xx range.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("events API %s error %d: %s", e.Op, e.StatusCode, e.Body)
}

// GetEvent fetches one event via GET /events/{id} and returns the "event" field of the body.
func (c *Client) GetEvent(ctx context.Context, id string) (ev model.EventDetail, err error) {
	defer c.metrics.track(OpGetEvent, time.Now(), &err)

	body, err := c.send(ctx, OpGetEvent, http.MethodGet, c.eventURL(id), "")
	if err != nil {
		return nil, err
	}

	var resp struct {
		Event json.RawMessage `json:"event"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode %s response: %v", repository.ErrMalformedBody, OpGetEvent, err)
	}
	return resp.Event, nil
}

// ListEvents fetches all events via GET /events and returns the "events" field of the body.
func (c *Client) ListEvents(ctx context.Context) (evs []model.EventSummary, err error) {
	defer c.metrics.track(OpListEvents, time.Now(), &err)

	body, err := c.send(ctx, OpListEvents, http.MethodGet, c.baseURL+"/events", "")
	if err != nil {
		return nil, err
	}

	var resp struct {
		Events []json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: decode %s response: %v", repository.ErrMalformedBody, OpListEvents, err)
	}
	return resp.Events, nil
}

// MutateEvent sends method to /events/{id} with a bearer credential. The response body is ignored.
func (c *Client) MutateEvent(ctx context.Context, method, id, token string) (err error) {
	defer c.metrics.track(OpMutateEvent, time.Now(), &err)

	_, err = c.send(ctx, OpMutateEvent, method, c.eventURL(id), token)
	return err
}

func (c *Client) eventURL(id string) string {
	return fmt.Sprintf("%s/events/%s", c.baseURL, url.PathEscape(id))
}

// send performs exactly one request and returns the body of a 2xx response.
// An empty token means the request is sent without credentials.
func (c *Client) send(ctx context.Context, op, method, target, token string) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", op, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if op == OpMutateEvent {
		(&oauth2.Token{AccessToken: token}).SetAuthHeader(httpReq)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call events %s API: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read events %s response: %w", op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Op: op, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	return raw, nil
}
