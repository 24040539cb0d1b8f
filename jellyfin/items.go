package jellyfin

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/samber/lo"
)

// ItemsQuery filters GetItems.
type ItemsQuery struct {
	UserID   string
	ParentID string
	Fields   []ItemFields
}

func (q ItemsQuery) values() url.Values {
	values := url.Values{}
	if q.ParentID != "" {
		values.Set("parentId", q.ParentID)
	}
	if len(q.Fields) > 0 {
		fields := lo.Map(q.Fields, func(f ItemFields, _ int) string { return string(f) })
		values.Set("fields", strings.Join(fields, ","))
	}
	return values
}

// GetItems lists the items visible to q.UserID, filtered by parent and with the requested fields.
func (c *Client) GetItems(ctx context.Context, q ItemsQuery) (*BaseItemDtoQueryResult, error) {
	var result BaseItemDtoQueryResult
	path := "/Users/" + url.PathEscape(q.UserID) + "/Items"
	if err := c.do(ctx, http.MethodGet, path, q.values(), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
