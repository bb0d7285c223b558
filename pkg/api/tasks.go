package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lexmentor/lexclient/pkg/model"
)

// GetTasks lists tasks matching the filters.
func (c *Client) GetTasks(ctx context.Context, filters model.TaskFilters) ([]model.Task, error) {
	params := url.Values{}
	if filters.Status != "" {
		params.Set("status", string(filters.Status))
	}
	if filters.CaseID != nil {
		params.Set("case_id", strconv.FormatInt(*filters.CaseID, 10))
	}
	if filters.IsPrivate != nil {
		params.Set("is_private", strconv.FormatBool(*filters.IsPrivate))
	}
	if filters.StartDate != "" {
		params.Set("start_date", filters.StartDate)
	}
	if filters.EndDate != "" {
		params.Set("end_date", filters.EndDate)
	}
	if filters.Skip != 0 {
		params.Set("skip", strconv.Itoa(filters.Skip))
	}
	if filters.Limit != 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}

	var out []model.Task
	if err := c.getJSON(ctx, "/api/tasks?"+params.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask adds a to-do item.
func (c *Client) CreateTask(ctx context.Context, data model.TaskCreate) (*model.Task, error) {
	var out model.Task
	if err := c.sendJSON(ctx, http.MethodPost, "/api/tasks", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask applies partial edits to a task.
func (c *Client) UpdateTask(ctx context.Context, taskID int64, updates model.TaskCreate) (*model.Task, error) {
	path := "/api/tasks/" + strconv.FormatInt(taskID, 10)
	var out model.Task
	if err := c.sendJSON(ctx, http.MethodPut, path, updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task. The backend answers 204.
func (c *Client) DeleteTask(ctx context.Context, taskID int64) error {
	path := "/api/tasks/" + strconv.FormatInt(taskID, 10)
	return c.sendJSON(ctx, http.MethodDelete, path, nil, nil)
}
