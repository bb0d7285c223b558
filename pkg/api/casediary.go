package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lexmentor/lexclient/pkg/model"
)

// ActivityFilters narrows a case-diary listing. Zero fields stay out of the
// query string.
type ActivityFilters struct {
	CaseID       int64
	ActivityType model.ActivityType
	DateRange    string // today, week, month, quarter, all
	SearchTerm   string
}

// CreateCaseActivity records a diary entry. The activity date is normalized
// to the backend's canonical second-precision UTC form no matter what
// precision the caller supplied.
func (c *Client) CreateCaseActivity(ctx context.Context, data model.CaseActivityCreate) (*model.CaseActivity, error) {
	if data.ActivityDate != "" {
		normalized, err := model.NormalizeActivityDate(data.ActivityDate)
		if err != nil {
			return nil, &APIError{Status: http.StatusBadRequest, Message: "invalid activity date: " + err.Error()}
		}
		data.ActivityDate = normalized
	}

	var out model.CaseActivity
	if err := c.sendJSON(ctx, http.MethodPost, "/api/case-diary/", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCaseActivityDetails fetches one diary entry.
func (c *Client) GetCaseActivityDetails(ctx context.Context, activityID string) (*model.CaseActivity, error) {
	var out model.CaseActivity
	if err := c.getJSON(ctx, "/api/case-diary/"+url.PathEscape(activityID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllCaseActivities lists diary entries matching the filters.
func (c *Client) GetAllCaseActivities(ctx context.Context, filters ActivityFilters) ([]model.CaseActivity, error) {
	params := url.Values{}
	if filters.CaseID != 0 {
		params.Set("case_id", strconv.FormatInt(filters.CaseID, 10))
	}
	if filters.ActivityType != "" {
		params.Set("activity_type", string(filters.ActivityType))
	}
	if filters.DateRange != "" {
		params.Set("date_range", filters.DateRange)
	}
	if filters.SearchTerm != "" {
		params.Set("search_term", filters.SearchTerm)
	}

	var out []model.CaseActivity
	if err := c.getJSON(ctx, "/api/case-diary/?"+params.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateCaseActivity applies partial edits to a diary entry, normalizing the
// activity date the same way CreateCaseActivity does.
func (c *Client) UpdateCaseActivity(ctx context.Context, activityID string, updates model.CaseActivityCreate) (*model.CaseActivity, error) {
	if updates.ActivityDate != "" {
		normalized, err := model.NormalizeActivityDate(updates.ActivityDate)
		if err != nil {
			return nil, &APIError{Status: http.StatusBadRequest, Message: "invalid activity date: " + err.Error()}
		}
		updates.ActivityDate = normalized
	}

	var out model.CaseActivity
	if err := c.sendJSON(ctx, http.MethodPut, "/api/case-diary/"+url.PathEscape(activityID), updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCaseActivity removes a diary entry. The backend answers 204.
func (c *Client) DeleteCaseActivity(ctx context.Context, activityID string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/api/case-diary/"+url.PathEscape(activityID), nil, nil)
}
