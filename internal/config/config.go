package config

// Config holds the Service Layer connection settings. One instance is built
// per process and passed by value into each component; nothing mutates it.
type Config struct {
	// Connection
	Endpoint  string `mapstructure:"sap_endpoint"`
	CompanyDB string `mapstructure:"sap_company_db"`
	Username  string `mapstructure:"sap_username"`

	// Password as persisted: either an enc:v1: envelope from the secrets
	// package or a legacy opaque value. Decrypted immediately before use.
	Password string `mapstructure:"sap_password"`

	// EncryptionSecret derives the key for the enc:v1: password envelope.
	EncryptionSecret string `mapstructure:"encryption_secret"`

	// Output and debugging
	Debug     bool `mapstructure:"sap_debug"`
	SSLVerify bool `mapstructure:"sap_ssl_verify"`

	// Webhook server
	ListenAddr string `mapstructure:"listen_addr"`

	// Item cache location (empty disables the cache)
	ItemCacheDir string `mapstructure:"item_cache_dir"`

	// FeedsFile points at the JSON export of per-form settings. Mapping
	// target keys are case-sensitive and dotted ("DocumentLines.1.ItemCode"),
	// so they are kept out of the main config file format.
	FeedsFile string `mapstructure:"feeds_file"`

	// Feeds is loaded from FeedsFile, keyed by form id.
	Feeds map[string]*FeedSettings `mapstructure:"-"`
}

// FeedSettings is the per-form integration configuration.
type FeedSettings struct {
	Enabled        bool   `mapstructure:"enabled" json:"enabled"`
	CardType       string `mapstructure:"card_type" json:"card_type"`
	CardCodePrefix string `mapstructure:"card_code_prefix" json:"card_code_prefix"`

	// FieldMapping maps a Business Partner target key ("CardName",
	// "BPAddresses.Street", ...) to the form field id supplying its value.
	FieldMapping map[string]string `mapstructure:"field_mapping" json:"field_mapping"`

	CreateQuotation bool `mapstructure:"create_quotation" json:"create_quotation"`

	// QuotationFieldMapping maps "DocumentLines.N.<field>" and "Comments"
	// targets to form field ids; the ItemCode entry per line is the trigger.
	QuotationFieldMapping map[string]string `mapstructure:"quotation_field_mapping" json:"quotation_field_mapping"`

	// QuotationItemCodeMapping maps "DocumentLines.N.ItemCode" to the
	// literal SAP item code for that line.
	QuotationItemCodeMapping map[string]string `mapstructure:"quotation_itemcode_mapping" json:"quotation_itemcode_mapping"`

	// QuotationPriceMapping optionally maps "DocumentLines.N.ItemCode" to a
	// literal unit price; absence means SAP prices from the item master.
	QuotationPriceMapping map[string]string `mapstructure:"quotation_price_mapping" json:"quotation_price_mapping"`
}

// HasCredentials reports whether the connection settings are complete enough
// to attempt a login.
func (c *Config) HasCredentials() bool {
	return c.Endpoint != "" && c.CompanyDB != "" && c.Username != ""
}

// FeedFor returns the feed settings for a form id, if configured.
func (c *Config) FeedFor(formID string) (*FeedSettings, bool) {
	f, ok := c.Feeds[formID]
	return f, ok
}
