package jellyfin

import (
	"context"
	"net/http"
	"net/url"
)

// GetSeasons lists the seasons of a series as seen by userID.
func (c *Client) GetSeasons(ctx context.Context, userID, seriesID string) (*BaseItemDtoQueryResult, error) {
	query := url.Values{}
	if userID != "" {
		query.Set("userId", userID)
	}

	var result BaseItemDtoQueryResult
	path := "/Shows/" + url.PathEscape(seriesID) + "/Seasons"
	if err := c.do(ctx, http.MethodGet, path, query, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
