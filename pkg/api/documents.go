package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/lexmentor/lexclient/pkg/model"
)

// GetDocuments lists documents matching the filters.
func (c *Client) GetDocuments(ctx context.Context, filters model.DocumentFilters) ([]model.Document, error) {
	params := url.Values{}
	if filters.CaseID != nil {
		params.Set("case_id", strconv.FormatInt(*filters.CaseID, 10))
	}
	if filters.AppointmentID != nil {
		params.Set("appointment_id", strconv.FormatInt(*filters.AppointmentID, 10))
	}
	if filters.Search != "" {
		params.Set("search", filters.Search)
	}
	if filters.Skip != 0 {
		params.Set("skip", strconv.Itoa(filters.Skip))
	}
	if filters.Limit != 0 {
		params.Set("limit", strconv.Itoa(filters.Limit))
	}

	var out []model.Document
	if err := c.getJSON(ctx, "/api/documents?"+params.Encode(), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadDocument sends the file and its metadata as multipart form data.
// Optional metadata the caller left unset is omitted from the form entirely;
// the backend treats an empty string as a value, not an absence. The
// multipart writer picks the boundary, so the funnel must not force a JSON
// content type here.
func (c *Client) UploadDocument(ctx context.Context, payload model.DocumentUpload) (*model.Document, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", payload.FileName)
	if err != nil {
		return nil, fmt.Errorf("api: build upload form: %w", err)
	}
	if _, err := io.Copy(part, payload.File); err != nil {
		return nil, fmt.Errorf("api: read upload file: %w", err)
	}
	if err := w.WriteField("title", payload.Title); err != nil {
		return nil, fmt.Errorf("api: build upload form: %w", err)
	}
	if payload.Description != "" {
		if err := w.WriteField("description", payload.Description); err != nil {
			return nil, fmt.Errorf("api: build upload form: %w", err)
		}
	}
	if payload.CaseID != nil {
		if err := w.WriteField("case_id", strconv.FormatInt(*payload.CaseID, 10)); err != nil {
			return nil, fmt.Errorf("api: build upload form: %w", err)
		}
	}
	if payload.AppointmentID != nil {
		if err := w.WriteField("appointment_id", strconv.FormatInt(*payload.AppointmentID, 10)); err != nil {
			return nil, fmt.Errorf("api: build upload form: %w", err)
		}
	}
	if payload.ClientID != nil {
		if err := w.WriteField("client_id", strconv.FormatInt(*payload.ClientID, 10)); err != nil {
			return nil, fmt.Errorf("api: build upload form: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("api: build upload form: %w", err)
	}

	var out model.Document
	if err := c.do(ctx, http.MethodPost, "/api/documents", &buf, w.FormDataContentType(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteDocument removes a document. The backend answers 204.
func (c *Client) DeleteDocument(ctx context.Context, documentID int64) error {
	path := "/api/documents/" + strconv.FormatInt(documentID, 10)
	return c.sendJSON(ctx, http.MethodDelete, path, nil, nil)
}

// DownloadDocument fetches the raw file bytes. The response is binary, so
// this bypasses the JSON decoding of the shared funnel while keeping the
// same auth header and error classification.
func (c *Client) DownloadDocument(ctx context.Context, documentID int64) ([]byte, error) {
	path := "/api/documents/" + strconv.FormatInt(documentID, 10) + "/download"
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+path, nil, "")
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("api: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("api: GET %s: read response: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, classifyError(resp.StatusCode, raw)
	}
	return raw, nil
}
