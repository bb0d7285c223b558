package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lexmentor/lexclient/pkg/model"
)

// GetNotifications lists the user's notifications.
func (c *Client) GetNotifications(ctx context.Context) ([]model.Notification, error) {
	var out []model.Notification
	if err := c.getJSON(ctx, "/api/notifications", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarkNotificationRead flags one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, notificationID string) error {
	path := "/api/notifications/" + url.PathEscape(notificationID) + "/read"
	return c.sendJSON(ctx, http.MethodPut, path, nil, nil)
}

// MarkAllNotificationsRead flags every notification as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/notifications/read-all", nil, nil)
}
