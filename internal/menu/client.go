package menu

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Item is a single dish or drink on the menu.
type Item struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// Category groups menu items under a section heading.
type Category struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Menu is the structured menu as served by the restaurant's menu API.
type Menu struct {
	Categories []Category `json:"categories"`
}

// Client fetches the live menu from the restaurant's menu API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a menu API client. An empty baseURL leaves the client
// usable but every fetch fails, which the cache treats as "no menu".
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Fetch retrieves and decodes the current menu.
func (c *Client) Fetch(ctx context.Context) (*Menu, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("menu api url not configured")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("menu fetch: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("menu fetch: status=%d body=%s", resp.StatusCode, string(b))
	}

	var m Menu
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("menu decode: %w", err)
	}
	return &m, nil
}
