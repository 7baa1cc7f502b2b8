package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/errs"
	"github.com/gf-b1-bridge/go/internal/models"
)

// CreateSalesQuotation posts a quotation document. A document without lines
// is rejected locally with *errs.NoLineItemsError before any network call.
func (c *ServiceLayerClient) CreateSalesQuotation(ctx context.Context, q *models.SalesQuotation) (*models.CreatedQuotation, error) {
	if len(q.DocumentLines) == 0 {
		return nil, &errs.NoLineItemsError{}
	}

	if err := c.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, constants.POST, constants.QuotationsEndpoint, q)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusCreated {
		return nil, sapError(resp.Status, resp.Body)
	}

	var created models.CreatedQuotation
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("failed to parse created quotation: %w", err)
	}
	c.log.Info().Int("doc_entry", created.DocEntry).Int("doc_num", created.DocNum).Msg("sales quotation created")
	return &created, nil
}

// GetSalesQuotation fetches one quotation by DocEntry.
func (c *ServiceLayerClient) GetSalesQuotation(ctx context.Context, docEntry int) (*models.CreatedQuotation, error) {
	if err := c.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s(%d)", constants.QuotationsEndpoint, docEntry)
	resp, err := c.do(ctx, constants.GET, endpoint, nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, sapError(resp.Status, resp.Body)
	}

	var doc models.CreatedQuotation
	if err := json.Unmarshal(resp.Body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse quotation: %w", err)
	}
	return &doc, nil
}
