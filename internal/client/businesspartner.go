package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/errs"
	"github.com/gf-b1-bridge/go/internal/models"
	"github.com/gf-b1-bridge/go/internal/series"
)

// QueryBusinessPartners runs a filtered, projected GET over the
// BusinessPartners collection. It satisfies series.PartnerQuerier.
func (c *ServiceLayerClient) QueryBusinessPartners(ctx context.Context, filter, selectFields string, top int) ([]models.BusinessPartnerRef, error) {
	if err := c.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	options := map[string]string{
		constants.QueryFilter: filter,
		constants.QuerySelect: selectFields,
	}
	if top > 0 {
		options[constants.QueryTop] = strconv.Itoa(top)
	}

	resp, err := c.do(ctx, constants.GET, constants.BusinessPartnersEndpoint+queryValues(options), nil)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusOK {
		return nil, sapError(resp.Status, resp.Body)
	}

	var envelope models.CollectionResponse[models.BusinessPartnerRef]
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse partner query response: %w", err)
	}
	return envelope.Value, nil
}

// CreateBusinessPartner validates, resolves the numbering series for a
// requested CardCode prefix, and posts the partner. On 201 the created record
// (with the SAP-assigned CardCode) is returned. The CardCodePrefix
// instruction never reaches the wire and CardCode is never synthesized here;
// Series-based auto-numbering owns it.
func (c *ServiceLayerClient) CreateBusinessPartner(ctx context.Context, bp *models.BusinessPartner) (*models.BusinessPartner, error) {
	if bp.CardName == "" {
		return nil, &errs.ValidationError{Target: constants.TargetCardName, Reason: "CardName must be present and non-empty"}
	}
	if bp.CardType == "" {
		return nil, &errs.ValidationError{Target: "CardType", Reason: "CardType must be present and non-empty"}
	}

	if err := c.EnsureAuthenticated(ctx); err != nil {
		return nil, err
	}

	if bp.CardCodePrefix != "" && bp.Series == nil {
		resolver := series.NewResolver(c)
		resolved, err := resolver.Resolve(ctx, bp.CardCodePrefix)
		if err != nil {
			return nil, err
		}
		// A nil result means no series is determinable locally; the create
		// proceeds and SAP reports its own series error if one applies.
		bp.Series = resolved
	}
	bp.CardCodePrefix = ""

	resp, err := c.do(ctx, constants.POST, constants.BusinessPartnersEndpoint, bp)
	if err != nil {
		return nil, err
	}
	if resp.Status != http.StatusCreated {
		return nil, sapError(resp.Status, resp.Body)
	}

	var created models.BusinessPartner
	if err := json.Unmarshal(resp.Body, &created); err != nil {
		return nil, fmt.Errorf("failed to parse created partner: %w", err)
	}
	c.log.Info().Str("card_code", created.CardCode).Msg("business partner created")
	return &created, nil
}
