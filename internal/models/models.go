package models

// LoginRequest is the body of POST /Login.
type LoginRequest struct {
	CompanyDB string `json:"CompanyDB"`
	UserName  string `json:"UserName"`
	Password  string `json:"Password"`
}

// LoginResponse is the body of a successful /Login.
type LoginResponse struct {
	SessionID      string `json:"SessionId"`
	Version        string `json:"Version,omitempty"`
	SessionTimeout int    `json:"SessionTimeout,omitempty"`
}

// BPAddress is one entry of a Business Partner's BPAddresses collection.
type BPAddress struct {
	AddressType string `json:"AddressType,omitempty"`
	Street      string `json:"Street,omitempty"`
	City        string `json:"City,omitempty"`
	State       string `json:"State,omitempty"`
	ZipCode     string `json:"ZipCode,omitempty"`
	Country     string `json:"Country,omitempty"`
}

// IsEmpty reports whether no mapped sub-field produced a value. Empty
// addresses are never transmitted.
func (a BPAddress) IsEmpty() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.ZipCode == "" && a.Country == ""
}

// ContactEmployee is one entry of a Business Partner's ContactEmployees
// collection.
type ContactEmployee struct {
	FirstName string `json:"FirstName,omitempty"`
	LastName  string `json:"LastName,omitempty"`
	Phone1    string `json:"Phone1,omitempty"`
	EMail     string `json:"E_Mail,omitempty"`
	Address   string `json:"Address,omitempty"`
}

// IsEmpty reports whether no mapped sub-field produced a value.
func (c ContactEmployee) IsEmpty() bool {
	return c.FirstName == "" && c.LastName == "" && c.Phone1 == "" && c.EMail == "" && c.Address == ""
}

// BusinessPartner is the outbound /BusinessPartners payload and, on a 201,
// the created record echoed back by the Service Layer. CardCode is never set
// by the bridge on creation when Series-based auto-numbering is in use; the
// Service Layer assigns it and returns it here.
type BusinessPartner struct {
	CardCode     string            `json:"CardCode,omitempty"`
	CardName     string            `json:"CardName"`
	CardType     string            `json:"CardType"`
	Series       *int              `json:"Series,omitempty"`
	EmailAddress string            `json:"EmailAddress,omitempty"`
	Phone1       string            `json:"Phone1,omitempty"`
	Phone2       string            `json:"Phone2,omitempty"`
	Fax          string            `json:"Fax,omitempty"`
	Website      string            `json:"Website,omitempty"`
	FederalTaxID string            `json:"FederalTaxID,omitempty"`
	Notes        string            `json:"Notes,omitempty"`
	BPAddresses  []BPAddress       `json:"BPAddresses,omitempty"`
	Contacts     []ContactEmployee `json:"ContactEmployees,omitempty"`

	// CardCodePrefix is a bridge-side instruction resolved to Series before
	// transmission; the Service Layer schema has no such field.
	CardCodePrefix string `json:"-"`
}

// DocumentLine is one line of a Sales Quotation.
type DocumentLine struct {
	ItemCode        string   `json:"ItemCode"`
	ItemDescription string   `json:"ItemDescription,omitempty"`
	Quantity        float64  `json:"Quantity"`
	UnitPrice       *float64 `json:"UnitPrice,omitempty"` // nil = let SAP price from the item master
	DiscountPercent float64  `json:"DiscountPercent,omitempty"`
	TaxCode         string   `json:"TaxCode,omitempty"`
}

// SalesQuotation is the outbound /Quotations payload.
type SalesQuotation struct {
	CardCode      string         `json:"CardCode"`
	Comments      string         `json:"Comments,omitempty"`
	DocumentLines []DocumentLine `json:"DocumentLines"`
}

// CreatedQuotation is the record echoed back on a successful creation.
type CreatedQuotation struct {
	DocEntry      int            `json:"DocEntry"`
	DocNum        int            `json:"DocNum"`
	CardCode      string         `json:"CardCode"`
	DocTotal      float64        `json:"DocTotal,omitempty"`
	Comments      string         `json:"Comments,omitempty"`
	DocumentLines []DocumentLine `json:"DocumentLines,omitempty"`
}

// BusinessPartnerRef is the projection used by the numbering-series resolver
// when querying existing partners.
type BusinessPartnerRef struct {
	CardCode string `json:"CardCode"`
	Series   int    `json:"Series"`
}

// Item is one row of the /Items catalog listing.
type Item struct {
	ItemCode string `json:"ItemCode"`
	ItemName string `json:"ItemName"`
}

// UnitOfMeasure is one row of /UnitOfMeasurements.
type UnitOfMeasure struct {
	Code string `json:"Code"`
	Name string `json:"Name"`
}

// CollectionResponse is the OData envelope around GET results.
type CollectionResponse[T any] struct {
	Value []T `json:"value"`
}

// Entry is a single form submission: a flat map from field id to scalar
// value. Checkbox sub-options use dotted ids ("15.2") verbatim.
type Entry map[string]string

// Get resolves a field id against the entry. Dotted ids are plain keys.
func (e Entry) Get(fieldID string) string {
	return e[fieldID]
}

// FormField is the metadata the host form system exposes per field.
type FormField struct {
	ID      string   `json:"id"`
	Type    string   `json:"type"`
	Label   string   `json:"label"`
	Choices []string `json:"choices,omitempty"`
}

// Form is the host form's metadata, as delivered with a submission.
type Form struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Fields []FormField `json:"fields,omitempty"`
}

// GetField returns the metadata for a field id, if present.
func (f Form) GetField(fieldID string) (FormField, bool) {
	for _, fld := range f.Fields {
		if fld.ID == fieldID {
			return fld, true
		}
	}
	return FormField{}, false
}

// ConnectionTestResult is the structured outcome of a connectivity test.
// Tests report, they never raise.
type ConnectionTestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
