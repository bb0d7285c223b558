package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lexmentor/lexclient/pkg/model"
)

// GetTeamMembers lists the practice's team.
func (c *Client) GetTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	var out []model.TeamMember
	if err := c.getJSON(ctx, "/api/team-members", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTeamMember invites a colleague into the practice.
func (c *Client) CreateTeamMember(ctx context.Context, data model.TeamMemberCreate) (*model.TeamMember, error) {
	var out model.TeamMember
	if err := c.sendJSON(ctx, http.MethodPost, "/api/team-members", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTeamMember applies partial edits to a member's profile.
func (c *Client) UpdateTeamMember(ctx context.Context, memberID int64, updates model.TeamMemberUpdate) (*model.TeamMember, error) {
	path := "/api/team-members/" + strconv.FormatInt(memberID, 10)
	var out model.TeamMember
	if err := c.sendJSON(ctx, http.MethodPut, path, updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTeamMember removes a member. The backend answers 204.
func (c *Client) DeleteTeamMember(ctx context.Context, memberID int64) error {
	path := "/api/team-members/" + strconv.FormatInt(memberID, 10)
	return c.sendJSON(ctx, http.MethodDelete, path, nil, nil)
}
