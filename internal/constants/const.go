package constants

import "time"

type Field string

const (
	FieldName         Field = "name"
	FieldTaxID        Field = "tax-id"
	FieldPostalCode   Field = "postal-code"
	FieldStreetNumber Field = "street-number"
	FieldCardNumber   Field = "card-number"
	FieldExpiry       Field = "expiry"
	FieldSecurityCode Field = "security-code"
)

// Fields lists every field that gates submission, in display order.
var Fields = []Field{
	FieldName,
	FieldTaxID,
	FieldPostalCode,
	FieldStreetNumber,
	FieldCardNumber,
	FieldExpiry,
	FieldSecurityCode,
}

const (
	BrandVisa       = "Visa"
	BrandMastercard = "Mastercard"
	BrandElo        = "Elo"
	BrandAmex       = "American Express"
	BrandDiscover   = "Discover"
	BrandUnknown    = "Unknown"
)

const (
	LookupPostalCodePath = "/api/lookup-cep"
	ValidateTaxIDPath    = "/api/validate-cpf"
	ValidateCardPath     = "/api/validate-card"
	CheckoutPath         = "/api/checkout"
)

const (
	DefaultBackendAddr    = "http://localhost:8080"
	DefaultLookupDelay    = 600 * time.Millisecond
	DefaultRequestTimeout = 10 * time.Second
	DefaultLogLevel       = "info"
)

const (
	TaxIDLength      = 11
	PostalCodeLength = 8
	CardMinLength    = 13
	CardMaxLength    = 19
	ExpiryLength     = 4
	SecurityCodeMin  = 3
	SecurityCodeMax  = 4
	NameMinLength    = 3
)
