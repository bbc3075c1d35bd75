package models

// Address is the postal-code lookup result. Field names follow the ViaCEP
// payload the backend forwards.
type Address struct {
	PostalCode   string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	NotFound     bool   `json:"erro,omitempty"`
}

func (a Address) IsZero() bool {
	return a == Address{}
}

type PostalCodeRequest struct {
	PostalCode string `json:"cep"`
}

type TaxIDRequest struct {
	TaxID string `json:"cpf"`
}

type TaxIDResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type CardRequest struct {
	Card string `json:"card"`
}

type BinInfo struct {
	Brand   string `json:"brand,omitempty"`
	Type    string `json:"type,omitempty"`
	Bank    string `json:"bank,omitempty"`
	Country string `json:"country,omitempty"`
}

type CardValidation struct {
	Valid   bool    `json:"valid"`
	Bin     string  `json:"bin,omitempty"`
	BinInfo BinInfo `json:"bin_info"`
	Error   string  `json:"error,omitempty"`
}

// OrderPayload is the checkout request body. It is built from the form at
// submit time and never reused.
type OrderPayload struct {
	CardHolder     string `json:"card_holder" validate:"required,min=3"`
	CardNumber     string `json:"card_number" validate:"required,numeric,min=13,max=19"`
	ExpirationDate string `json:"expiration_date" validate:"required,len=5"`
	CVV            string `json:"cvv" validate:"required,numeric,min=3,max=4"`
	PostalCode     string `json:"cep" validate:"required,numeric,len=8"`
	Number         string `json:"number" validate:"required"`
}

type CheckoutResponse struct {
	Success     bool    `json:"success"`
	Message     string  `json:"message"`
	CardBrand   string  `json:"card_brand,omitempty"`
	AddressInfo Address `json:"address_info"`
}

// ErrorResponse is the body the backend sends with non-2xx lookups.
type ErrorResponse struct {
	Error string `json:"error"`
}
