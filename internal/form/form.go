// Package form is the checkout form engine: it masks and validates each
// field, runs the debounced remote checks, tracks which fields are valid and
// drives the submit control through a View.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/AlenaMolokova/checkout/internal/backend"
	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/debounce"
	"github.com/AlenaMolokova/checkout/internal/logger"
	"github.com/AlenaMolokova/checkout/internal/mask"
	"github.com/AlenaMolokova/checkout/internal/models"
	"github.com/AlenaMolokova/checkout/internal/validation"
)

const (
	msgTaxIDWaiting       = "Waiting for 11 digits"
	msgTaxIDValid         = "Valid tax ID"
	msgTaxIDInvalid       = "Invalid tax ID"
	msgTaxIDChecking      = "Checking tax ID..."
	msgPostalCodeLength   = "Postal code must have 8 digits"
	msgPostalCodeSearch   = "Looking up postal code..."
	msgPostalCodeFound    = "Postal code found, address filled in."
	msgPostalCodeNotFound = "Could not look up postal code"
	msgCardValid          = "valid card"
	msgCardInvalid        = "invalid card"
	msgCardWaiting        = "waiting for 13+ digits"
	msgCardChecking       = "checking card..."
	msgExpiryInvalid      = "Invalid or expired date"
	msgConnectionError    = "Connection error"
)

var errPostalCodeLength = errors.New("postal code must have 8 digits")

// Backend is the remote side of the form.
type Backend interface {
	LookupPostalCode(ctx context.Context, cep string) (*models.Address, error)
	ValidateTaxID(ctx context.Context, cpf string) error
	ValidateCard(ctx context.Context, card string) (*models.CardValidation, error)
	Checkout(ctx context.Context, order models.OrderPayload) (*models.CheckoutResponse, error)
}

type Options struct {
	LookupDelay time.Duration
	// RemoteFieldChecks makes a locally valid tax ID or card number wait for
	// confirmation from the backend before it counts as valid.
	RemoteFieldChecks bool
	// Now is the clock used for expiry checks. Defaults to time.Now.
	Now func() time.Time
}

// Form owns the field values and their validity for one checkout session.
// Input methods are meant to be called from a single goroutine; remote check
// results arrive on timer goroutines and are serialized with mu.
type Form struct {
	mu      sync.Mutex
	ctx     context.Context
	backend Backend
	view    View
	now     func() time.Time

	state      *State
	values     map[constants.Field]string
	address    models.Address
	submitting bool
	completed  bool

	postalCode *debounce.Validator[*models.Address]
	taxID      *debounce.Validator[struct{}]
	card       *debounce.Validator[*models.CardValidation]
}

func New(ctx context.Context, b Backend, v View, opts Options) *Form {
	if opts.LookupDelay <= 0 {
		opts.LookupDelay = constants.DefaultLookupDelay
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	f := &Form{
		ctx:     ctx,
		backend: b,
		view:    v,
		now:     opts.Now,
		state:   NewState(),
		values:  make(map[constants.Field]string, len(constants.Fields)),
	}

	f.postalCode = debounce.New(ctx, opts.LookupDelay, f.lookupPostalCode, debounce.Handlers[*models.Address]{
		OnClear:   f.postalCodeCleared,
		OnStart:   f.postalCodeStarted,
		OnSuccess: f.postalCodeFound,
		OnFailure: f.postalCodeFailed,
	})

	if opts.RemoteFieldChecks {
		f.taxID = debounce.New(ctx, opts.LookupDelay, f.confirmTaxID, debounce.Handlers[struct{}]{
			OnSuccess: f.taxIDConfirmed,
			OnFailure: f.taxIDRejected,
		})
		f.card = debounce.New(ctx, opts.LookupDelay, b.ValidateCard, debounce.Handlers[*models.CardValidation]{
			OnSuccess: f.cardConfirmed,
			OnFailure: f.cardRejected,
		})
	}

	f.view.SetSubmitEnabled(false)
	return f
}

// Close cancels every pending remote check.
func (f *Form) Close() {
	f.postalCode.Stop()
	if f.taxID != nil {
		f.taxID.Stop()
	}
	if f.card != nil {
		f.card.Stop()
	}
}

func (f *Form) SetName(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[constants.FieldName] = value
	f.setValid(constants.FieldName, validation.Name(value))
}

func (f *Form) SetTaxID(value string) {
	masked := mask.TaxID(value)
	digits := mask.Digits(masked)
	valid := validation.TaxID(digits)
	remote := f.taxID != nil

	f.mu.Lock()
	f.setValue(constants.FieldTaxID, masked)
	switch {
	case len(digits) < constants.TaxIDLength:
		f.view.SetFieldStatus(constants.FieldTaxID, msgTaxIDWaiting, StatusNone)
	case !valid:
		f.view.SetFieldStatus(constants.FieldTaxID, msgTaxIDInvalid, StatusFail)
	case remote:
		f.view.SetFieldStatus(constants.FieldTaxID, msgTaxIDChecking, StatusNone)
	default:
		f.view.SetFieldStatus(constants.FieldTaxID, msgTaxIDValid, StatusOK)
	}
	f.setValid(constants.FieldTaxID, valid && !remote)
	f.mu.Unlock()

	if remote {
		if valid {
			f.taxID.Change(masked)
		} else {
			f.taxID.Change("")
		}
	}
}

func (f *Form) SetPostalCode(value string) {
	masked := mask.PostalCode(value)

	f.mu.Lock()
	f.setValue(constants.FieldPostalCode, masked)
	f.setValid(constants.FieldPostalCode, false)
	f.mu.Unlock()

	f.postalCode.Change(masked)
}

func (f *Form) SetStreetNumber(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values[constants.FieldStreetNumber] = value
	f.setValid(constants.FieldStreetNumber, validation.StreetNumber(value))
}

func (f *Form) SetCardNumber(value string) {
	masked := mask.CardNumber(value)
	digits := mask.Digits(masked)
	complete := len(digits) >= constants.CardMinLength
	valid := validation.CardNumber(digits)
	remote := f.card != nil

	text := "Brand: " + validation.CardBrand(digits)
	status := StatusFail
	switch {
	case !complete:
		text += " - " + msgCardWaiting
	case !valid:
		text += " - " + msgCardInvalid
	case remote:
		text += " - " + msgCardChecking
		status = StatusNone
	default:
		text += " - " + msgCardValid
		status = StatusOK
	}

	f.mu.Lock()
	f.setValue(constants.FieldCardNumber, masked)
	f.view.SetFieldStatus(constants.FieldCardNumber, text, status)
	f.setValid(constants.FieldCardNumber, valid && !remote)
	f.mu.Unlock()

	if remote {
		if valid {
			f.card.Change(masked)
		} else {
			f.card.Change("")
		}
	}
}

func (f *Form) SetExpiry(value string) {
	masked := mask.Expiry(value)
	valid := validation.Expiry(masked, f.now())

	f.mu.Lock()
	defer f.mu.Unlock()

	f.setValue(constants.FieldExpiry, masked)
	if !valid && len(mask.Digits(masked)) == constants.ExpiryLength {
		f.view.SetFieldStatus(constants.FieldExpiry, msgExpiryInvalid, StatusFail)
	} else {
		f.view.SetFieldStatus(constants.FieldExpiry, "", StatusNone)
	}
	f.setValid(constants.FieldExpiry, valid)
}

func (f *Form) SetSecurityCode(value string) {
	masked := mask.SecurityCode(value)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.setValue(constants.FieldSecurityCode, masked)
	f.setValid(constants.FieldSecurityCode, validation.SecurityCode(masked))
}

// Set dispatches to the setter for field.
func (f *Form) Set(field constants.Field, value string) error {
	switch field {
	case constants.FieldName:
		f.SetName(value)
	case constants.FieldTaxID:
		f.SetTaxID(value)
	case constants.FieldPostalCode:
		f.SetPostalCode(value)
	case constants.FieldStreetNumber:
		f.SetStreetNumber(value)
	case constants.FieldCardNumber:
		f.SetCardNumber(value)
	case constants.FieldExpiry:
		f.SetExpiry(value)
	case constants.FieldSecurityCode:
		f.SetSecurityCode(value)
	default:
		return fmt.Errorf("form: unknown field %q", field)
	}
	return nil
}

func (f *Form) Value(field constants.Field) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

func (f *Form) Address() models.Address {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.address
}

// State returns a copy of the validity flags.
func (f *Form) State() map[constants.Field]bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Snapshot()
}

func (f *Form) SubmitEnabled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitEnabled()
}

// Callers of the helpers below hold mu.

func (f *Form) setValue(field constants.Field, masked string) {
	f.values[field] = masked
	f.view.SetFieldValue(field, masked)
}

func (f *Form) setValid(field constants.Field, ok bool) {
	f.state.Set(field, ok)
	f.view.SetSubmitEnabled(f.submitEnabled())
}

func (f *Form) submitEnabled() bool {
	return f.state.Ready() && !f.submitting && !f.completed
}

func (f *Form) setAddress(addr models.Address) {
	f.address = addr
	f.view.SetAddress(addr)
}

// Postal code lookup.

func (f *Form) lookupPostalCode(ctx context.Context, value string) (*models.Address, error) {
	digits := mask.Digits(value)
	if len(digits) != constants.PostalCodeLength {
		return nil, errPostalCodeLength
	}
	return f.backend.LookupPostalCode(ctx, digits)
}

func (f *Form) postalCodeCleared() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.setAddress(models.Address{})
	f.view.SetFieldStatus(constants.FieldPostalCode, "", StatusNone)
	f.setValid(constants.FieldPostalCode, false)
}

func (f *Form) postalCodeStarted(value string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.setAddress(models.Address{})
	if len(mask.Digits(value)) == constants.PostalCodeLength {
		f.view.SetFieldStatus(constants.FieldPostalCode, msgPostalCodeSearch, StatusNone)
	}
}

func (f *Form) postalCodeFound(value string, addr *models.Address) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.setAddress(*addr)
	f.view.SetFieldStatus(constants.FieldPostalCode, msgPostalCodeFound, StatusOK)
	f.setValid(constants.FieldPostalCode, true)
}

func (f *Form) postalCodeFailed(value string, err error) {
	logger.Log(f.ctx).Infof("form: postal code %q lookup failed, %v", value, err)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.view.SetFieldStatus(constants.FieldPostalCode, failureReason(err, msgPostalCodeNotFound), StatusFail)
	f.setValid(constants.FieldPostalCode, false)
}

// Remote tax ID and card confirmation.

func (f *Form) confirmTaxID(ctx context.Context, value string) (struct{}, error) {
	return struct{}{}, f.backend.ValidateTaxID(ctx, value)
}

func (f *Form) taxIDConfirmed(value string, _ struct{}) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.view.SetFieldStatus(constants.FieldTaxID, msgTaxIDValid, StatusOK)
	f.setValid(constants.FieldTaxID, true)
}

func (f *Form) taxIDRejected(value string, err error) {
	logger.Log(f.ctx).Infof("form: tax ID rejected by backend, %v", err)

	f.mu.Lock()
	defer f.mu.Unlock()

	f.view.SetFieldStatus(constants.FieldTaxID, failureReason(err, msgTaxIDInvalid), StatusFail)
	f.setValid(constants.FieldTaxID, false)
}

func (f *Form) cardConfirmed(value string, res *models.CardValidation) {
	f.mu.Lock()
	defer f.mu.Unlock()

	brand := res.BinInfo.Brand
	if brand == "" {
		brand = validation.CardBrand(mask.Digits(value))
	}
	f.view.SetFieldStatus(constants.FieldCardNumber, "Brand: "+brand+" - "+msgCardValid, StatusOK)
	f.setValid(constants.FieldCardNumber, true)
}

func (f *Form) cardRejected(value string, err error) {
	logger.Log(f.ctx).Infof("form: card rejected by backend, %v", err)

	f.mu.Lock()
	defer f.mu.Unlock()

	text := "Brand: " + validation.CardBrand(mask.Digits(value)) + " - " + failureReason(err, msgCardInvalid)
	f.view.SetFieldStatus(constants.FieldCardNumber, text, StatusFail)
	f.setValid(constants.FieldCardNumber, false)
}

// failureReason turns a remote check error into the text shown to the user.
func failureReason(err error, generic string) string {
	var rejection *backend.RejectionError
	switch {
	case errors.As(err, &rejection):
		if reason := strings.TrimSpace(rejection.Reason); reason != "" {
			return reason
		}
		return generic
	case errors.Is(err, errPostalCodeLength):
		return msgPostalCodeLength
	default:
		return msgConnectionError
	}
}
