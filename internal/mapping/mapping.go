// Package mapping translates a flat form entry into a Business Partner
// payload according to the per-form field mapping configuration. Targets are
// Service Layer field identifiers; dotted targets accumulate into the
// address and contact collections.
package mapping

import (
	"regexp"
	"strings"

	"github.com/gf-b1-bridge/go/internal/config"
	"github.com/gf-b1-bridge/go/internal/constants"
	"github.com/gf-b1-bridge/go/internal/models"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SanitizeScalar strips markup and control characters from a mapped form
// value. Length is not limited here; the Service Layer enforces its own
// field lengths.
func SanitizeScalar(value string) string {
	value = tagPattern.ReplaceAllString(value, "")
	value = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, value)
	return strings.TrimSpace(value)
}

// CardTypeFor resolves the per-form card_type setting to a wire value,
// defaulting to Customer for unset or unrecognized settings.
func CardTypeFor(setting string) string {
	if t, ok := constants.CardTypeFromSetting[strings.ToLower(strings.TrimSpace(setting))]; ok {
		return t
	}
	return constants.CardTypeCustomer
}

// MapEntryToBusinessPartner builds the outbound payload from the entry.
// Address and contact sub-targets accumulate into a single object each and
// are attached only when at least one sub-field resolved to a value.
func MapEntryToBusinessPartner(settings *config.FeedSettings, entry models.Entry, form models.Form) *models.BusinessPartner {
	bp := &models.BusinessPartner{
		CardType:       CardTypeFor(settings.CardType),
		CardCodePrefix: strings.TrimSpace(settings.CardCodePrefix),
	}

	var address models.BPAddress
	var contact models.ContactEmployee

	for target, fieldID := range settings.FieldMapping {
		value := SanitizeScalar(entry.Get(fieldID))
		if value == "" {
			continue
		}

		switch {
		case strings.HasPrefix(target, constants.AddressTargetPrefix):
			setAddressField(&address, strings.TrimPrefix(target, constants.AddressTargetPrefix), value)
		case strings.HasPrefix(target, constants.ContactTargetPrefix):
			setContactField(&contact, strings.TrimPrefix(target, constants.ContactTargetPrefix), value)
		default:
			setTopLevelField(bp, target, value)
		}
	}

	if !address.IsEmpty() {
		address.AddressType = constants.BillToAddressType
		bp.BPAddresses = []models.BPAddress{address}
	}
	if !contact.IsEmpty() {
		bp.Contacts = []models.ContactEmployee{contact}
	}
	return bp
}

func setTopLevelField(bp *models.BusinessPartner, target, value string) {
	switch target {
	case constants.TargetCardName:
		bp.CardName = value
	case constants.TargetEmailAddress:
		bp.EmailAddress = value
	case "Phone1":
		bp.Phone1 = value
	case "Phone2":
		bp.Phone2 = value
	case "Fax":
		bp.Fax = value
	case "Website":
		bp.Website = value
	case "FederalTaxID":
		bp.FederalTaxID = value
	case "Notes":
		bp.Notes = value
	case constants.TargetCardCodePrefix:
		// A mapped prefix overrides the static per-form setting.
		bp.CardCodePrefix = value
	}
}

func setAddressField(a *models.BPAddress, sub, value string) {
	switch sub {
	case "Street":
		a.Street = value
	case "City":
		a.City = value
	case "State":
		a.State = value
	case "ZipCode":
		a.ZipCode = value
	case "Country":
		a.Country = value
	}
}

func setContactField(c *models.ContactEmployee, sub, value string) {
	switch sub {
	case "FirstName":
		c.FirstName = value
	case "LastName":
		c.LastName = value
	case "Phone1":
		c.Phone1 = value
	case "E_Mail", "EMail":
		c.EMail = value
	case "Address":
		c.Address = value
	}
}
