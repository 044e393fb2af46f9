// Package pixela posts daily login pixels to a Pixela graph per user.
package pixela

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
)

const DefaultBaseURL = "https://pixe.la/v1/users"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type pixelRequest struct {
	Date     string `json:"date"`
	Quantity string `json:"quantity"`
}

type Client struct {
	http     httpDoer
	baseURL  string
	username string
	token    string
}

func New(username, token string) *Client {
	return &Client{
		http:     &http.Client{Timeout: 10 * time.Second},
		baseURL:  DefaultBaseURL,
		username: username,
		token:    token,
	}
}

func (c *Client) SetHTTPClient(client httpDoer) {
	if client == nil {
		c.http = &http.Client{Timeout: 10 * time.Second}
		return
	}
	c.http = client
}

func (c *Client) SetBaseURL(base string) {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return
	}
	c.baseURL = base
}

// GraphID is the graph a user's logins are recorded in.
func GraphID(userID uuid.UUID) string {
	return "user_" + userID.String()[:8]
}

// RecordPixel marks day in the user's graph with quantity 1.
func (c *Client) RecordPixel(ctx context.Context, userID uuid.UUID, day time.Time) error {
	body, err := sonic.Marshal(pixelRequest{
		Date:     day.UTC().Format("20060102"),
		Quantity: "1",
	})
	if err != nil {
		return fmt.Errorf("pixela: encoding request: %w", err)
	}
	endpoint := c.baseURL + "/" + url.PathEscape(c.username) + "/graphs/" + GraphID(userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("pixela: creating request: %w", err)
	}
	req.Header.Set("X-USER-TOKEN", c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("pixela: request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("pixela: unexpected status %s", resp.Status)
	}
	return nil
}
