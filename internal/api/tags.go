package api

import (
	"context"
	"net/http"
)

// ListTags fetches every tag known to the server.
func (c *Client) ListTags(ctx context.Context) ([]TagDTO, error) {
	var dtos []TagDTO
	if err := c.getJSON(ctx, "/tags/", nil, &dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

// CreateTag registers a new tag name and returns the created tag.
func (c *Client) CreateTag(ctx context.Context, name string) (*TagDTO, error) {
	var dto TagDTO
	if err := c.sendJSON(ctx, http.MethodPost, "/tags/", TagCreateDTO{Name: name}, &dto); err != nil {
		return nil, err
	}
	return &dto, nil
}
