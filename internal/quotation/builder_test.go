package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gf-b1-bridge/go/internal/config"
	"github.com/gf-b1-bridge/go/internal/errs"
	"github.com/gf-b1-bridge/go/internal/models"
)

func settingsWithLines() *config.FeedSettings {
	return &config.FeedSettings{
		CreateQuotation: true,
		QuotationFieldMapping: map[string]string{
			"Comments":                        "20",
			"DocumentLines.1.ItemCode":        "15.1",
			"DocumentLines.1.Quantity":        "16",
			"DocumentLines.2.ItemCode":        "15.2",
			"DocumentLines.2.Quantity":        "17",
			"DocumentLines.3.ItemCode":        "15.3",
			"DocumentLines.3.UnitPrice":       "18",
			"DocumentLines.3.TaxCode":         "19",
			"DocumentLines.3.DiscountPercent": "21",
		},
		QuotationItemCodeMapping: map[string]string{
			"DocumentLines.1.ItemCode": "A1000",
			"DocumentLines.2.ItemCode": "B2000",
			"DocumentLines.3.ItemCode": "C3000",
		},
		QuotationPriceMapping: map[string]string{
			"DocumentLines.2.ItemCode": "99.50",
		},
	}
}

func TestBuildFromEntryLineInclusion(t *testing.T) {
	tests := []struct {
		name      string
		entry     models.Entry
		wantCodes []string
	}{
		{
			name:      "all triggers set",
			entry:     models.Entry{"15.1": "yes", "15.2": "yes", "15.3": "yes"},
			wantCodes: []string{"A1000", "B2000", "C3000"},
		},
		{
			name:      "only second trigger set",
			entry:     models.Entry{"15.1": "", "15.2": "on"},
			wantCodes: []string{"B2000"},
		},
		{
			name:      "first and third set, second empty",
			entry:     models.Entry{"15.1": "x", "15.3": "x"},
			wantCodes: []string{"A1000", "C3000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := BuildFromEntry(settingsWithLines(), tt.entry, models.Form{}, "C20000")
			require.NoError(t, err)
			require.Len(t, doc.DocumentLines, len(tt.wantCodes))
			for i, code := range tt.wantCodes {
				assert.Equal(t, code, doc.DocumentLines[i].ItemCode)
			}
			assert.Equal(t, "C20000", doc.CardCode)
		})
	}
}

func TestBuildFromEntryNoQualifyingLines(t *testing.T) {
	doc, err := BuildFromEntry(settingsWithLines(), models.Entry{"15.1": "", "15.2": ""}, models.Form{}, "C20000")
	assert.Nil(t, doc)

	var noLines *errs.NoLineItemsError
	require.ErrorAs(t, err, &noLines)
}

func TestBuildFromEntryLineWithoutItemCodeMappingIsSkipped(t *testing.T) {
	settings := settingsWithLines()
	delete(settings.QuotationItemCodeMapping, "DocumentLines.1.ItemCode")

	doc, err := BuildFromEntry(settings, models.Entry{"15.1": "yes", "15.2": "yes"}, models.Form{}, "C20000")
	require.NoError(t, err)
	require.Len(t, doc.DocumentLines, 1)
	assert.Equal(t, "B2000", doc.DocumentLines[0].ItemCode)
}

func TestBuildFromEntryLineFields(t *testing.T) {
	entry := models.Entry{
		"15.1": "yes",
		"16":   "3",
		"15.3": "yes",
		"18":   "$1,250.00",
		"19":   "VAT20",
		"21":   "12.5",
		"20":   "Please call before delivery",
	}

	doc, err := BuildFromEntry(settingsWithLines(), entry, models.Form{}, "C20000")
	require.NoError(t, err)
	require.Len(t, doc.DocumentLines, 2)

	assert.Equal(t, "Please call before delivery", doc.Comments)

	first := doc.DocumentLines[0]
	assert.Equal(t, "A1000", first.ItemCode)
	assert.Equal(t, 3.0, first.Quantity)
	assert.Nil(t, first.UnitPrice, "unpriced line defers to the item master")

	third := doc.DocumentLines[1]
	assert.Equal(t, "C3000", third.ItemCode)
	require.NotNil(t, third.UnitPrice)
	assert.Equal(t, 1250.0, *third.UnitPrice)
	assert.Equal(t, 12.5, third.DiscountPercent)
	assert.Equal(t, "VAT20", third.TaxCode)
}

func TestBuildFromEntryDefaultsAndLiteralPrice(t *testing.T) {
	// Line 2 has no quantity value and a literal price mapping.
	doc, err := BuildFromEntry(settingsWithLines(), models.Entry{"15.2": "yes"}, models.Form{}, "C20000")
	require.NoError(t, err)
	require.Len(t, doc.DocumentLines, 1)

	line := doc.DocumentLines[0]
	assert.Equal(t, 1.0, line.Quantity, "quantity defaults to 1")
	require.NotNil(t, line.UnitPrice)
	assert.Equal(t, 99.5, *line.UnitPrice)
}

func TestSplitLineTarget(t *testing.T) {
	tests := []struct {
		target    string
		wantIdx   int
		wantField string
		wantOK    bool
	}{
		{"DocumentLines.1.ItemCode", 1, "ItemCode", true},
		{"DocumentLines.12.TaxCode", 12, "TaxCode", true},
		{"Comments", 0, "", false},
		{"DocumentLines.x.ItemCode", 0, "", false},
		{"DocumentLines.3", 0, "", false},
	}

	for _, tt := range tests {
		idx, field, ok := splitLineTarget(tt.target)
		assert.Equal(t, tt.wantOK, ok, tt.target)
		if tt.wantOK {
			assert.Equal(t, tt.wantIdx, idx)
			assert.Equal(t, tt.wantField, field)
		}
	}
}
