package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lexmentor/lexclient/pkg/model"
)

// CreateCase files a new case.
func (c *Client) CreateCase(ctx context.Context, data model.CaseCreate) (*model.CaseDetails, error) {
	var out model.CaseDetails
	if err := c.sendJSON(ctx, http.MethodPost, "/api/cases/", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCaseDetails fetches one case in full.
func (c *Client) GetCaseDetails(ctx context.Context, caseID string) (*model.CaseDetails, error) {
	var out model.CaseDetails
	if err := c.getJSON(ctx, "/api/cases/"+url.PathEscape(caseID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateCase applies partial edits to a case.
func (c *Client) UpdateCase(ctx context.Context, caseID string, updates map[string]any) (*model.CaseDetails, error) {
	var out model.CaseDetails
	if err := c.sendJSON(ctx, http.MethodPut, "/api/cases/"+url.PathEscape(caseID), updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetAllCases lists every case the user can see. The backend serves this
// from the dashboard listing with a raised limit.
func (c *Client) GetAllCases(ctx context.Context) ([]model.CaseDashboard, error) {
	var out []model.CaseDashboard
	if err := c.getJSON(ctx, "/api/dashboard/cases?limit=100", &out); err != nil {
		return nil, err
	}
	return out, nil
}
