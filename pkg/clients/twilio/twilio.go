// Package twilio sends text messages through the Twilio Messages API.
package twilio

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

const DefaultBaseURL = "https://api.twilio.com"

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type messageResponse struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Client struct {
	http       httpDoer
	baseURL    string
	accountSID string
	authToken  string
	from       string
}

func New(accountSID, authToken, from string) *Client {
	return &Client{
		http:       &http.Client{Timeout: 15 * time.Second},
		baseURL:    DefaultBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
	}
}

func (c *Client) SetHTTPClient(client httpDoer) {
	if client == nil {
		c.http = &http.Client{Timeout: 15 * time.Second}
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

// SendSMS delivers message to phone and returns the message sid.
func (c *Client) SendSMS(ctx context.Context, phone, message string) (string, error) {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", c.from)
	form.Set("Body", message)

	endpoint := c.baseURL + "/2010-04-01/Accounts/" + url.PathEscape(c.accountSID) + "/Messages.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("twilio: creating request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio: request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("twilio: reading response: %w", err)
	}
	var msg messageResponse
	decodeErr := sonic.Unmarshal(raw, &msg)
	if resp.StatusCode >= http.StatusBadRequest {
		if decodeErr == nil && msg.Message != "" {
			return "", fmt.Errorf("twilio: %d: %s", msg.Code, msg.Message)
		}
		return "", fmt.Errorf("twilio: %s", resp.Status)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("twilio: decoding response: %w", decodeErr)
	}
	return msg.SID, nil
}
