// Package jellyfin is a small typed client for the Jellyfin (and Emby) REST API.
package jellyfin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jellytv/jellytv/constant"
	"github.com/jellytv/jellytv/network"
)

// maxErrorBody bounds how much of a failed response is kept on APIError.
const maxErrorBody = 4 << 10

// Client talks to a single server.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	token      string
	device     string
	deviceID   string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces network.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.httpClient = c }
}

// WithToken authenticates every request with an access token or API key.
func WithToken(token string) Option {
	return func(cl *Client) { cl.token = token }
}

// WithDevice sets the device name and id reported in the authorization header.
func WithDevice(name, id string) Option {
	return func(cl *Client) {
		cl.device = name
		cl.deviceID = id
	}
}

// New returns a client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("server url is empty")
	}

	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported server url scheme %q", u.Scheme)
	}

	c := &Client{
		baseURL:    u,
		httpClient: network.Client,
		device:     constant.App,
		deviceID:   constant.App,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// authorization builds the MediaBrowser authorization header value.
func (c *Client) authorization() string {
	var b strings.Builder
	fmt.Fprintf(&b, `MediaBrowser Client="%s", Device="%s", DeviceId="%s", Version="%s"`,
		constant.ClientName, c.device, c.deviceID, constant.Version)
	if c.token != "" {
		fmt.Fprintf(&b, `, Token="%s"`, c.token)
	}
	return b.String()
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()
	return u.String()
}

// do sends the request and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)
	req.Header.Set("X-Emby-Authorization", c.authorization())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// WebURL returns the address of the item's page in the server's web client.
func (c *Client) WebURL(itemID string) string {
	return c.baseURL.String() + "/web/#/details?id=" + url.QueryEscape(itemID)
}
