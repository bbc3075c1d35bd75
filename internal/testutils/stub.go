package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/mask"
	"github.com/AlenaMolokova/checkout/internal/models"
	"github.com/AlenaMolokova/checkout/internal/utils"
	"github.com/AlenaMolokova/checkout/internal/validation"
)

// StubBackend is an in-memory checkout backend speaking the same JSON
// contract as the real one. Addresses is keyed by the 8-digit postal code.
type StubBackend struct {
	Addresses map[string]models.Address
	// Delay holds every response back, unless the request is cancelled first.
	Delay time.Duration

	mu      sync.Mutex
	calls   map[string]int
	orderID int
}

func NewStubBackend(addresses map[string]models.Address) *StubBackend {
	return &StubBackend{
		Addresses: addresses,
		calls:     make(map[string]int),
	}
}

func (s *StubBackend) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.count)
	r.Post(constants.LookupPostalCodePath, s.lookupPostalCode)
	r.Post(constants.ValidateTaxIDPath, s.validateTaxID)
	r.Post(constants.ValidateCardPath, s.validateCard)
	r.Post(constants.CheckoutPath, s.checkout)
	return r
}

// Start serves the stub on a local port until the returned server is closed.
func (s *StubBackend) Start() *httptest.Server {
	return httptest.NewServer(s.Router())
}

// Calls returns how many requests reached path.
func (s *StubBackend) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

func (s *StubBackend) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.calls[r.URL.Path]++
		s.mu.Unlock()

		if s.Delay > 0 {
			select {
			case <-time.After(s.Delay):
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *StubBackend) lookupPostalCode(w http.ResponseWriter, r *http.Request) {
	var req models.PostalCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "invalid json")
		return
	}

	addr, err := s.address(req.PostalCode)
	if err != nil {
		utils.WriteJSONError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.WriteJSON(w, http.StatusOK, addr)
}

func (s *StubBackend) validateTaxID(w http.ResponseWriter, r *http.Request) {
	var req models.TaxIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, models.TaxIDResponse{Error: "invalid json"})
		return
	}

	if !validation.TaxID(mask.Digits(req.TaxID)) {
		utils.WriteJSON(w, http.StatusOK, models.TaxIDResponse{Error: "invalid tax ID"})
		return
	}
	utils.WriteJSON(w, http.StatusOK, models.TaxIDResponse{OK: true})
}

func (s *StubBackend) validateCard(w http.ResponseWriter, r *http.Request) {
	var req models.CardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, models.CardValidation{Error: "invalid json"})
		return
	}

	digits := mask.Digits(req.Card)
	res := models.CardValidation{
		Valid:   validation.CardNumber(digits),
		BinInfo: models.BinInfo{Brand: validation.CardBrand(digits)},
	}
	if len(digits) >= 6 {
		res.Bin = digits[:6]
	}
	if !res.Valid {
		res.Error = "invalid card number"
	}
	utils.WriteJSON(w, http.StatusOK, res)
}

func (s *StubBackend) checkout(w http.ResponseWriter, r *http.Request) {
	var req models.OrderPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, models.CheckoutResponse{Message: "invalid json payload"})
		return
	}

	if strings.TrimSpace(req.Number) == "" {
		utils.WriteJSON(w, http.StatusBadRequest, models.CheckoutResponse{Message: "street number is required"})
		return
	}

	addr, err := s.address(req.PostalCode)
	if err != nil {
		utils.WriteJSON(w, http.StatusBadRequest, models.CheckoutResponse{Message: err.Error()})
		return
	}

	brand := validation.CardBrand(mask.Digits(req.CardNumber))
	if brand == constants.BrandUnknown {
		utils.WriteJSON(w, http.StatusBadRequest, models.CheckoutResponse{Message: "unknown card brand"})
		return
	}

	if len(req.CVV) < constants.SecurityCodeMin || len(req.ExpirationDate) < 5 {
		utils.WriteJSON(w, http.StatusPaymentRequired, models.CheckoutResponse{Message: "invalid security code or expiry"})
		return
	}

	s.mu.Lock()
	s.orderID++
	id := s.orderID
	s.mu.Unlock()

	utils.WriteJSON(w, http.StatusOK, models.CheckoutResponse{
		Success:     true,
		Message:     fmt.Sprintf("Order approved! Order ID: %d", id),
		CardBrand:   brand,
		AddressInfo: addr,
	})
}

func (s *StubBackend) address(cep string) (models.Address, error) {
	digits := mask.Digits(cep)
	if len(digits) != constants.PostalCodeLength {
		return models.Address{}, fmt.Errorf("invalid postal code")
	}
	addr, ok := s.Addresses[digits]
	if !ok {
		return models.Address{}, fmt.Errorf("postal code not found")
	}
	return addr, nil
}
