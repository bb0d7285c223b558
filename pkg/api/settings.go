package api

import (
	"context"
	"net/http"

	"github.com/lexmentor/lexclient/pkg/model"
)

// GetUserProfile fetches the settings-page profile record.
func (c *Client) GetUserProfile(ctx context.Context) (*model.UserWire, error) {
	var out model.UserWire
	if err := c.getJSON(ctx, "/api/settings/profile", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserProfile submits the settings-page profile form.
func (c *Client) UpdateUserProfile(ctx context.Context, data model.ProfileUpdate) (*model.UserWire, error) {
	var out model.UserWire
	if err := c.sendJSON(ctx, http.MethodPut, "/api/settings/profile", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword submits the change-password form.
func (c *Client) ChangePassword(ctx context.Context, data model.PasswordChange) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/settings/password", data, nil)
}

// GetUserPreferences fetches notification and appearance settings.
func (c *Client) GetUserPreferences(ctx context.Context) (*model.Preferences, error) {
	var out model.Preferences
	if err := c.getJSON(ctx, "/api/settings/preferences", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUserPreferences submits notification and appearance settings.
// Sections left nil stay untouched server-side.
func (c *Client) UpdateUserPreferences(ctx context.Context, prefs model.Preferences) (*model.Preferences, error) {
	var out model.Preferences
	if err := c.sendJSON(ctx, http.MethodPut, "/api/settings/preferences", prefs, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
