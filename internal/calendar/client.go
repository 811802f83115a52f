package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultColorID is the calendar color applied to every synced deliverable
const DefaultColorID = "3"

// Event is an all-day calendar event as accepted by the provider's insert endpoint
type Event struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       EventDate `json:"start"`
	End         EventDate `json:"end"`
	ColorID     string    `json:"colorId"`
}

// EventDate holds a plain "YYYY-MM-DD" date with no time-of-day
type EventDate struct {
	Date string `json:"date"`
}

// APIError is returned when the provider answers with a non-2xx status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("calendar API returned status %d: %s", e.StatusCode, e.Body)
}

// IsUnauthorized reports whether the access token was rejected
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Client talks to the Google Calendar REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a calendar client rooted at baseURL.
// A nil httpClient uses a client without timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// InsertEvent creates the event in the user's primary calendar.
// A non-2xx answer is reported as *APIError; transport failures are returned as is.
func (c *Client) InsertEvent(ctx context.Context, accessToken string, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calendars/primary/events", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calendar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
