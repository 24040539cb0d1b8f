package jellyfin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AuthenticateByName logs in with a username and password.
// The returned token is not applied to c; build a new client WithToken.
func (c *Client) AuthenticateByName(ctx context.Context, username, password string) (*AuthenticationResult, error) {
	body, err := json.Marshal(struct {
		Username string `json:"Username"`
		Pw       string `json:"Pw"`
	}{username, password})
	if err != nil {
		return nil, err
	}

	var result AuthenticationResult
	if err := c.do(ctx, http.MethodPost, "/Users/AuthenticateByName", nil, bytes.NewReader(body), &result); err != nil {
		return nil, fmt.Errorf("authenticate %s: %w", username, err)
	}
	return &result, nil
}

// CurrentUser returns the user owning the client's token.
func (c *Client) CurrentUser(ctx context.Context) (*UserDto, error) {
	var user UserDto
	if err := c.do(ctx, http.MethodGet, "/Users/Me", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
