// Package api fetches paginated user and task collections from the remote
// task service.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/balkashynov/taskreport/internal/models"
)

// DefaultBaseURL is the service the reports are built from.
const DefaultBaseURL = "https://json.medrocket.ru"

// StatusError reports a non-2xx response from the service. It aborts the
// whole batch; there are no retries.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.StatusCode, e.URL)
}

// Client fetches paginated collections from the task service.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for the service at baseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// FetchUsers retrieves every user record, one page per request, stopping at
// the first empty page.
func (c *Client) FetchUsers() ([]models.User, error) {
	var users []models.User
	for page := 1; ; page++ {
		params := url.Values{"_page": {strconv.Itoa(page)}}
		var batch []models.User
		if err := c.getPage("/users", params, &batch); err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			return users, nil
		}
		users = append(users, batch...)
	}
}

// FetchTodos retrieves every task owned by userID, one page per request,
// stopping at the first empty page.
func (c *Client) FetchTodos(userID int) ([]models.Task, error) {
	var tasks []models.Task
	for page := 1; ; page++ {
		params := url.Values{
			"userId": {strconv.Itoa(userID)},
			"_page":  {strconv.Itoa(page)},
		}
		var batch []models.Task
		if err := c.getPage("/todos", params, &batch); err != nil {
			return nil, err
		}
		if len(batch) == 0 {
			return tasks, nil
		}
		tasks = append(tasks, batch...)
	}
}

// getPage performs one paginated GET and decodes the JSON array response.
func (c *Client) getPage(path string, params url.Values, out interface{}) error {
	reqURL := c.BaseURL + path + "?" + params.Encode()

	resp, err := c.HTTPClient.Get(reqURL)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", reqURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response from %s: %w", reqURL, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", reqURL, err)
	}
	return nil
}
