package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/models"
)

// ListItems returns a page of the item master, code and name only.
func (c *ServiceLayerClient) ListItems(ctx context.Context, top int) ([]models.Item, error) {
	if top <= 0 {
		top = constants.DefaultItemsPageSize
	}
	if err := c.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	options := map[string]string{
		constants.QuerySelect:  "ItemCode,ItemName",
		constants.QueryOrderBy: "ItemCode",
		constants.QueryTop:     strconv.Itoa(top),
	}
	resp, err := c.do(ctx, constants.GET, constants.ItemsEndpoint+queryValues(options), nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, sapError(resp.Status, resp.Body)
	}

	var envelope models.CollectionResponse[models.Item]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse items response: %w", err)
	}
	return envelope.Value, nil
}

// ListUnitsOfMeasure returns a page of /UnitOfMeasurements.
func (c *ServiceLayerClient) ListUnitsOfMeasure(ctx context.Context, top int) ([]models.UnitOfMeasure, error) {
	if top <= 0 {
		top = constants.DefaultItemsPageSize
	}
	if err := c.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	options := map[string]string{
		constants.QuerySelect: "Code,Name",
		constants.QueryTop:    strconv.Itoa(top),
	}
	resp, err := c.do(ctx, constants.GET, constants.UnitsOfMeasureEndpoint+queryValues(options), nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, sapError(resp.Status, resp.Body)
	}

	var envelope models.CollectionResponse[models.UnitOfMeasure]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse units response: %w", err)
	}
	return envelope.Value, nil
}

// TestConnection attempts a login/logout round trip and reports a structured
// result rather than an error; connectivity tests are user-facing.
func (c *ServiceLayerClient) TestConnection(ctx context.Context) models.ConnectionTestResult {
	if _, err := c.Authenticate(ctx); err != nil {
		return models.ConnectionTestResult{Success: false, Message: err.Error()}
	}
	c.Logout(ctx)
	return models.ConnectionTestResult{Success: true, Message: "connected to Service Layer"}
}
