package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/logger"
	"github.com/AlenaMolokova/checkout/internal/middleware"
	"github.com/AlenaMolokova/checkout/internal/models"
)

var ErrInvalidPayload = errors.New("invalid order payload")

const postalCodeNotFound = "postal code not found"

// RejectionError is an answer from the backend that refuses the request:
// a non-2xx status, ok:false, valid:false or success:false. Reason is the
// server-provided message and may be empty.
type RejectionError struct {
	StatusCode int
	Reason     string
}

func (e *RejectionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("backend rejected request with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend rejected request with status %d: %s", e.StatusCode, e.Reason)
}

type Client struct {
	http     *resty.Client
	validate *validator.Validate
}

func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &Client{
		http:     middleware.Use(c, log),
		validate: validator.New(),
	}
}

// LookupPostalCode resolves an 8-digit CEP to an address.
func (c *Client) LookupPostalCode(ctx context.Context, cep string) (*models.Address, error) {
	resp, err := c.post(ctx, constants.LookupPostalCodePath, models.PostalCodeRequest{PostalCode: cep})
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		var body models.ErrorResponse
		decode(ctx, resp, &body)
		return nil, &RejectionError{StatusCode: resp.StatusCode(), Reason: body.Error}
	}

	var addr models.Address
	if !decode(ctx, resp, &addr) {
		return nil, &RejectionError{StatusCode: resp.StatusCode()}
	}
	if addr.NotFound {
		return nil, &RejectionError{StatusCode: resp.StatusCode(), Reason: postalCodeNotFound}
	}
	return &addr, nil
}

func (c *Client) ValidateTaxID(ctx context.Context, cpf string) error {
	resp, err := c.post(ctx, constants.ValidateTaxIDPath, models.TaxIDRequest{TaxID: cpf})
	if err != nil {
		return err
	}

	var body models.TaxIDResponse
	if !decode(ctx, resp, &body) || !resp.IsSuccess() || !body.OK {
		return &RejectionError{StatusCode: resp.StatusCode(), Reason: body.Error}
	}
	return nil
}

// ValidateCard returns the backend's BIN data. A valid:false answer comes
// back together with a RejectionError so callers can still show the BIN.
func (c *Client) ValidateCard(ctx context.Context, card string) (*models.CardValidation, error) {
	resp, err := c.post(ctx, constants.ValidateCardPath, models.CardRequest{Card: card})
	if err != nil {
		return nil, err
	}

	var body models.CardValidation
	if !decode(ctx, resp, &body) {
		return nil, &RejectionError{StatusCode: resp.StatusCode()}
	}
	if !resp.IsSuccess() || !body.Valid {
		return &body, &RejectionError{StatusCode: resp.StatusCode(), Reason: body.Error}
	}
	return &body, nil
}

func (c *Client) Checkout(ctx context.Context, order models.OrderPayload) (*models.CheckoutResponse, error) {
	if err := c.validate.Struct(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	resp, err := c.post(ctx, constants.CheckoutPath, order)
	if err != nil {
		return nil, err
	}

	var body models.CheckoutResponse
	if !decode(ctx, resp, &body) || !resp.IsSuccess() || !body.Success {
		return nil, &RejectionError{StatusCode: resp.StatusCode(), Reason: body.Message}
	}
	return &body, nil
}

func (c *Client) post(ctx context.Context, path string, body any) (*resty.Response, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("backend: POST %s: %w", path, err)
	}
	return resp, nil
}

func decode(ctx context.Context, resp *resty.Response, v any) bool {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		logger.Log(ctx).Errorf("backend: failed parsing response from %s (status %d), %v",
			resp.Request.URL, resp.StatusCode(), err)
		return false
	}
	return true
}
