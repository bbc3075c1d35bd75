package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AlenaMolokova/checkout/internal/models"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) LookupPostalCode(ctx context.Context, cep string) (*models.Address, error) {
	args := m.Called(ctx, cep)
	addr, _ := args.Get(0).(*models.Address)
	return addr, args.Error(1)
}

func (m *MockBackend) ValidateTaxID(ctx context.Context, cpf string) error {
	args := m.Called(ctx, cpf)
	return args.Error(0)
}

func (m *MockBackend) ValidateCard(ctx context.Context, card string) (*models.CardValidation, error) {
	args := m.Called(ctx, card)
	res, _ := args.Get(0).(*models.CardValidation)
	return res, args.Error(1)
}

func (m *MockBackend) Checkout(ctx context.Context, order models.OrderPayload) (*models.CheckoutResponse, error) {
	args := m.Called(ctx, order)
	resp, _ := args.Get(0).(*models.CheckoutResponse)
	return resp, args.Error(1)
}
