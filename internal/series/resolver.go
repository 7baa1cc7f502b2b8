// Package series resolves the SAP numbering Series to assign to a new
// Business Partner. The Series determines the CardCode prefix SAP assigns on
// creation, so the resolver works backwards: find a partner already carrying
// the requested prefix and reuse its Series.
package series

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/models"
)

// PartnerQuerier is the slice of the Service Layer client the resolver needs.
type PartnerQuerier interface {
	QueryBusinessPartners(ctx context.Context, filter, selectFields string, top int) ([]models.BusinessPartnerRef, error)
}

// Resolver picks numbering series. It holds no state; every resolution
// re-queries so a SAP configuration change between submissions is picked up.
type Resolver struct {
	querier PartnerQuerier
}

// NewResolver creates a resolver over a partner query source.
func NewResolver(q PartnerQuerier) *Resolver {
	return &Resolver{querier: q}
}

// SeriesForPrefix returns the Series of the first existing Business Partner
// whose CardCode starts with prefix, or nil when the prefix has never been
// used. Callers fall back to AvailableSeries.
func (r *Resolver) SeriesForPrefix(ctx context.Context, prefix string) (*int, error) {
	filter := fmt.Sprintf("startswith(CardCode,'%s')", escape(prefix))
	refs, err := r.querier.QueryBusinessPartners(ctx, filter, "CardCode,Series", 1)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners with prefix %q: %w", prefix, err)
	}
	if len(refs) == 0 {
		return nil, nil
	}
	s := refs[0].Series
	return &s, nil
}

// AvailableSeries enumerates the distinct Series values in use across a
// bounded page of Business Partners, ascending. An empty result means SAP has
// assigned no partner a series yet; creation will then surface SAP's own
// "define the numbering series" error verbatim.
func (r *Resolver) AvailableSeries(ctx context.Context) ([]int, error) {
	refs, err := r.querier.QueryBusinessPartners(ctx, "", "CardCode,Series", constants.DefaultSeriesPage)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate numbering series: %w", err)
	}

	seen := make(map[int]bool, len(refs))
	var out []int
	for _, ref := range refs {
		if !seen[ref.Series] {
			seen[ref.Series] = true
			out = append(out, ref.Series)
		}
	}
	sort.Ints(out)
	return out, nil
}

// Resolve applies the full policy: prefix match first, then the lowest series
// in use as a legal default. Returns nil when nothing could be determined.
func (r *Resolver) Resolve(ctx context.Context, prefix string) (*int, error) {
	if prefix != "" {
		s, err := r.SeriesForPrefix(ctx, prefix)
		if err != nil {
			return nil, err
		}
		if s != nil {
			return s, nil
		}
	}

	available, err := r.AvailableSeries(ctx)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, nil
	}
	s := available[0]
	return &s, nil
}

func escape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
