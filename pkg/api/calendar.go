package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lexmentor/lexclient/pkg/model"
)

// GetAppointments lists every calendar entry.
func (c *Client) GetAppointments(ctx context.Context) ([]model.Appointment, error) {
	var out []model.Appointment
	if err := c.getJSON(ctx, "/api/calendar/appointments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateAppointment books a calendar entry.
func (c *Client) CreateAppointment(ctx context.Context, data model.AppointmentCreate) (*model.Appointment, error) {
	var out model.Appointment
	if err := c.sendJSON(ctx, http.MethodPost, "/api/calendar/appointments", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAppointment applies partial edits to a calendar entry.
func (c *Client) UpdateAppointment(ctx context.Context, appointmentID int64, updates model.AppointmentUpdate) (*model.Appointment, error) {
	path := "/api/calendar/appointments/" + strconv.FormatInt(appointmentID, 10)
	var out model.Appointment
	if err := c.sendJSON(ctx, http.MethodPut, path, updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteAppointment cancels and removes a calendar entry. The backend
// answers 204.
func (c *Client) DeleteAppointment(ctx context.Context, appointmentID int64) error {
	path := "/api/calendar/appointments/" + strconv.FormatInt(appointmentID, 10)
	return c.sendJSON(ctx, http.MethodDelete, path, nil, nil)
}
