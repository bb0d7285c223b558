package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lexmentor/lexclient/pkg/model"
)

// GetClientByID fetches one client record.
func (c *Client) GetClientByID(ctx context.Context, clientID string) (*model.ClientRecord, error) {
	var out model.ClientRecord
	if err := c.getJSON(ctx, "/api/clients/"+url.PathEscape(clientID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateClient adds a client to the practice.
func (c *Client) CreateClient(ctx context.Context, data model.ClientCreate) (*model.ClientRecord, error) {
	var out model.ClientRecord
	if err := c.sendJSON(ctx, http.MethodPost, "/api/clients/", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateClient applies partial edits to a client record.
func (c *Client) UpdateClient(ctx context.Context, clientID int64, updates model.ClientUpdate) (*model.ClientRecord, error) {
	path := "/api/clients/" + strconv.FormatInt(clientID, 10)
	var out model.ClientRecord
	if err := c.sendJSON(ctx, http.MethodPut, path, updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteClient removes a client. The backend answers 204.
func (c *Client) DeleteClient(ctx context.Context, clientID int64) error {
	path := "/api/clients/" + strconv.FormatInt(clientID, 10)
	return c.sendJSON(ctx, http.MethodDelete, path, nil, nil)
}
