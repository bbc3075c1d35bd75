package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/AlenaMolokova/checkout/internal/backend"
	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/logger"
	"github.com/AlenaMolokova/checkout/internal/mask"
	"github.com/AlenaMolokova/checkout/internal/models"
)

var ErrSubmitDisabled = errors.New("submit is disabled")

const (
	msgProcessing      = "Processing payment..."
	msgDeclined        = "Payment declined"
	msgInvalidPayload  = "Please review the form fields"
	msgOrderSuccessful = "Payment approved"
)

// Submit sends the current field values as one order. The submit control
// stays disabled while the request is outstanding and, after an accepted
// order, for the rest of the form's life.
func (f *Form) Submit(ctx context.Context) (*models.CheckoutResponse, error) {
	f.mu.Lock()
	if !f.submitEnabled() {
		f.mu.Unlock()
		return nil, ErrSubmitDisabled
	}
	f.submitting = true
	f.view.SetSubmitEnabled(false)
	f.view.SetSummary(msgProcessing, StatusNone)
	order := f.payload()
	f.mu.Unlock()

	resp, err := f.backend.Checkout(ctx, order)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false

	if err != nil {
		logger.Log(ctx).Warnf("form: checkout failed, %v", err)
		f.view.SetSummary(submitFailure(err), StatusFail)
		f.view.SetSubmitEnabled(f.submitEnabled())
		return nil, fmt.Errorf("form: submit: %w", err)
	}

	f.completed = true
	f.view.SetSubmitEnabled(false)
	if !resp.AddressInfo.IsZero() {
		f.setAddress(resp.AddressInfo)
	}
	f.view.SetSummary(f.successSummary(resp), StatusOK)
	logger.Log(ctx).Infow("form: order accepted", "brand", resp.CardBrand)

	return resp, nil
}

// payload snapshots the fields. Callers hold mu.
func (f *Form) payload() models.OrderPayload {
	return models.OrderPayload{
		CardHolder:     strings.TrimSpace(f.values[constants.FieldName]),
		CardNumber:     mask.Digits(f.values[constants.FieldCardNumber]),
		ExpirationDate: f.values[constants.FieldExpiry],
		CVV:            f.values[constants.FieldSecurityCode],
		PostalCode:     mask.Digits(f.values[constants.FieldPostalCode]),
		Number:         strings.TrimSpace(f.values[constants.FieldStreetNumber]),
	}
}

func (f *Form) successSummary(resp *models.CheckoutResponse) string {
	message := resp.Message
	if message == "" {
		message = msgOrderSuccessful
	}
	lines := []string{message}

	if resp.CardBrand != "" {
		lines = append(lines, "Brand: "+resp.CardBrand)
	}

	addr := resp.AddressInfo
	if addr.IsZero() {
		addr = f.address
	}
	if !addr.IsZero() {
		lines = append(lines, fmt.Sprintf("Address: %s, %s - %s, %s - %s (CEP: %s)",
			addr.Street, f.values[constants.FieldStreetNumber], addr.Neighborhood,
			addr.City, addr.State, addr.PostalCode))
	}

	return strings.Join(lines, "\n")
}

func submitFailure(err error) string {
	var rejection *backend.RejectionError
	switch {
	case errors.As(err, &rejection):
		if rejection.Reason != "" {
			return msgDeclined + ": " + rejection.Reason
		}
		return msgDeclined
	case errors.Is(err, backend.ErrInvalidPayload):
		return msgInvalidPayload
	default:
		return msgConnectionError
	}
}
