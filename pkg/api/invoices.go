package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/lexmentor/lexclient/pkg/model"
)

// GetInvoices lists every invoice.
func (c *Client) GetInvoices(ctx context.Context) ([]model.Invoice, error) {
	var out []model.Invoice
	if err := c.getJSON(ctx, "/api/invoices", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateInvoice issues a new invoice.
func (c *Client) CreateInvoice(ctx context.Context, data model.InvoiceCreate) (*model.Invoice, error) {
	var out model.Invoice
	if err := c.sendJSON(ctx, http.MethodPost, "/api/invoices", data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateInvoice applies partial edits to an invoice.
func (c *Client) UpdateInvoice(ctx context.Context, invoiceID int64, updates model.InvoiceCreate) (*model.Invoice, error) {
	path := "/api/invoices/" + strconv.FormatInt(invoiceID, 10)
	var out model.Invoice
	if err := c.sendJSON(ctx, http.MethodPut, path, updates, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteInvoice removes an invoice. The backend answers 204.
func (c *Client) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	path := "/api/invoices/" + strconv.FormatInt(invoiceID, 10)
	return c.sendJSON(ctx, http.MethodDelete, path, nil, nil)
}
