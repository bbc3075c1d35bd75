package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/form"
	"github.com/AlenaMolokova/checkout/internal/models"
)

func TestTerminal(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	term.SetFieldValue(constants.FieldTaxID, "529.982.247-25")
	term.SetFieldStatus(constants.FieldTaxID, "Valid tax ID", form.StatusOK)
	term.SetFieldStatus(constants.FieldExpiry, "", form.StatusNone)
	term.SetSubmitEnabled(false)
	term.SetSubmitEnabled(false)
	term.SetAddress(models.Address{Street: "Avenida Paulista", Neighborhood: "Bela Vista", City: "São Paulo", State: "SP"})
	term.SetAddress(models.Address{})
	term.SetSubmitEnabled(true)
	term.SetSummary("Order approved!\nBrand: Visa", form.StatusOK)

	expected := "" +
		"[tax-id] 529.982.247-25\n" +
		"[tax-id] ok: Valid tax ID\n" +
		"[submit] disabled\n" +
		"[address] Avenida Paulista - Bela Vista, São Paulo - SP\n" +
		"[address] -\n" +
		"[submit] enabled\n" +
		"[summary] ok: Order approved!\n" +
		"[summary] ok: Brand: Visa\n"
	assert.Equal(t, expected, buf.String())
}
