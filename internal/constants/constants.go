package constants

// Service Layer endpoints (relative to the configured base URL)
const (
	LoginEndpoint            = "Login"
	LogoutEndpoint           = "Logout"
	BusinessPartnersEndpoint = "BusinessPartners"
	QuotationsEndpoint       = "Quotations"
	ItemsEndpoint            = "Items"
	UnitsOfMeasureEndpoint   = "UnitOfMeasurements"
)

// HTTP methods used against the Service Layer
const (
	GET  = "GET"
	POST = "POST"
)

// OData system query options
const (
	QueryFilter  = "$filter"
	QuerySelect  = "$select"
	QueryOrderBy = "$orderby"
	QueryTop     = "$top"
	QuerySkip    = "$skip"
)

// HTTP headers
const (
	ContentType = "Content-Type"
	Accept      = "Accept"
	UserAgent   = "User-Agent"
)

// Content types
const (
	ContentTypeJSON = "application/json"
)

// SessionCookieName is the cookie the Service Layer issues on /Login and
// expects back on every authenticated call.
const SessionCookieName = "B1SESSION"

// Business Partner card types. The Service Layer uses the one-letter-prefixed
// enum values on the wire.
const (
	CardTypeCustomer = "cCustomer"
	CardTypeSupplier = "cSupplier"
	CardTypeLead     = "cLid"
)

// CardTypeFromSetting maps the per-form card_type setting to a wire value.
// Unknown or empty settings fall back to Customer.
var CardTypeFromSetting = map[string]string{
	"customer": CardTypeCustomer,
	"supplier": CardTypeSupplier,
	"vendor":   CardTypeSupplier,
	"lead":     CardTypeLead,
}

// Mapping target keys with special handling in the mapping engine.
const (
	TargetCardName       = "CardName"
	TargetEmailAddress   = "EmailAddress"
	TargetCardCodePrefix = "CardCodePrefix"

	AddressTargetPrefix = "BPAddresses."
	ContactTargetPrefix = "ContactEmployees."
	LineTargetPrefix    = "DocumentLines."
)

// Address type assigned to the single address object the mapping engine
// accumulates. The form only ever captures a billing address.
const BillToAddressType = "bo_BillTo"

// Error messages
const (
	ErrLoginFailed       = "Service Layer login failed"
	ErrNoSessionInLogin  = "login response carried no SessionId"
	ErrNoQualifyingLines = "no quotation lines qualified for inclusion"
	ErrSAPGenericFailure = "Service Layer request failed"
	ErrFeedDisabled      = "integration is not enabled for this form"
)

// Default values
const (
	DefaultTimeout       = 30 // seconds, per Service Layer call
	DefaultUserAgent     = "GF-B1-Bridge/1.0 (Go)"
	DefaultItemsPageSize = 100
	DefaultSeriesPage    = 200 // bounded page when enumerating series in use
)

// Redaction markers for sanitized log output.
const (
	RedactedValue = "***REDACTED***"
	MaskSuffix    = "***"
)
