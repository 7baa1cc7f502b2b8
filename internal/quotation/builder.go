// Package quotation builds a multi-line Sales Quotation document from the
// per-line quotation mappings. A line's ItemCode mapping is its trigger: the
// line is materialized only when the mapped form field (commonly a checkbox
// sub-field with a dotted id) carries a value in the entry AND a literal item
// code is configured for that line.
package quotation

import (
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/gf-b1-bridge/go/internal/config"
	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/errs"
	"github.com/gf-b1-bridge/go/internal/mapping"
	"github.com/gf-b1-bridge/go/internal/models"
)

// line field names inside a DocumentLines.N.* target
const (
	fieldItemCode        = "ItemCode"
	fieldItemDescription = "ItemDescription"
	fieldQuantity        = "Quantity"
	fieldUnitPrice       = "UnitPrice"
	fieldDiscountPercent = "DiscountPercent"
	fieldTaxCode         = "TaxCode"

	targetComments = "Comments"
)

// BuildFromEntry assembles the /Quotations payload for a just-created (or
// pre-existing) Business Partner. It fails with *errs.NoLineItemsError when
// zero candidate lines qualify.
func BuildFromEntry(settings *config.FeedSettings, entry models.Entry, form models.Form, cardCode string) (*models.SalesQuotation, error) {
	doc := &models.SalesQuotation{CardCode: cardCode}

	if commentsField, ok := settings.QuotationFieldMapping[targetComments]; ok {
		doc.Comments = mapping.SanitizeScalar(entry.Get(commentsField))
	}

	for _, idx := range lineIndices(settings.QuotationFieldMapping) {
		line, ok := buildLine(settings, entry, idx)
		if ok {
			doc.DocumentLines = append(doc.DocumentLines, line)
		}
	}

	if len(doc.DocumentLines) == 0 {
		return nil, &errs.NoLineItemsError{}
	}
	return doc, nil
}

// lineIndices extracts the distinct numeric segments of DocumentLines.N.*
// keys, ascending, so output line order is stable.
func lineIndices(fieldMapping map[string]string) []int {
	seen := map[int]bool{}
	var out []int
	for target := range fieldMapping {
		idx, _, ok := splitLineTarget(target)
		if ok && !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	sort.Ints(out)
	return out
}

// splitLineTarget parses "DocumentLines.3.ItemCode" into (3, "ItemCode").
func splitLineTarget(target string) (int, string, bool) {
	if !strings.HasPrefix(target, constants.LineTargetPrefix) {
		return 0, "", false
	}
	rest := strings.TrimPrefix(target, constants.LineTargetPrefix)
	parts := strings.SplitN(rest, ".", 2)
	if len(parts) != 2 {
		return 0, "", false
	}
	idx, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", false
	}
	return idx, parts[1], true
}

func lineTarget(idx int, field string) string {
	return constants.LineTargetPrefix + strconv.Itoa(idx) + "." + field
}

// buildLine materializes one document line. The bool result is false when the
// line's trigger is unset in the entry or no item code is configured.
func buildLine(settings *config.FeedSettings, entry models.Entry, idx int) (models.DocumentLine, bool) {
	itemCodeTarget := lineTarget(idx, fieldItemCode)

	triggerField, ok := settings.QuotationFieldMapping[itemCodeTarget]
	if !ok || mapping.SanitizeScalar(entry.Get(triggerField)) == "" {
		return models.DocumentLine{}, false
	}
	itemCode, ok := settings.QuotationItemCodeMapping[itemCodeTarget]
	if !ok || itemCode == "" {
		return models.DocumentLine{}, false
	}

	line := models.DocumentLine{
		ItemCode: itemCode,
		Quantity: 1,
	}

	if field, ok := settings.QuotationFieldMapping[lineTarget(idx, fieldItemDescription)]; ok {
		line.ItemDescription = mapping.SanitizeScalar(entry.Get(field))
	}
	if field, ok := settings.QuotationFieldMapping[lineTarget(idx, fieldQuantity)]; ok {
		if qty, ok := parseDecimal(entry.Get(field)); ok && qty.IsPositive() {
			line.Quantity = qty.InexactFloat64()
		}
	}
	if field, ok := settings.QuotationFieldMapping[lineTarget(idx, fieldDiscountPercent)]; ok {
		if disc, ok := parseDecimal(entry.Get(field)); ok {
			line.DiscountPercent = disc.InexactFloat64()
		}
	}
	if field, ok := settings.QuotationFieldMapping[lineTarget(idx, fieldTaxCode)]; ok {
		line.TaxCode = mapping.SanitizeScalar(entry.Get(field))
	}

	line.UnitPrice = resolveUnitPrice(settings, entry, idx, itemCodeTarget)
	return line, true
}

// resolveUnitPrice prefers a mapped form value, then the literal per-line
// price mapping. nil means the Service Layer prices from the item master.
func resolveUnitPrice(settings *config.FeedSettings, entry models.Entry, idx int, itemCodeTarget string) *float64 {
	if field, ok := settings.QuotationFieldMapping[lineTarget(idx, fieldUnitPrice)]; ok {
		if price, ok := parseDecimal(entry.Get(field)); ok {
			f := price.InexactFloat64()
			return &f
		}
	}
	if literal, ok := settings.QuotationPriceMapping[itemCodeTarget]; ok {
		if price, ok := parseDecimal(literal); ok {
			f := price.InexactFloat64()
			return &f
		}
	}
	return nil
}

// parseDecimal reads a user-entered numeric value, tolerating currency
// symbols and thousands separators.
func parseDecimal(raw string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
