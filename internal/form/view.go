package form

import (
	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/models"
)

type Status int

const (
	StatusNone Status = iota
	StatusOK
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusFail:
		return "fail"
	default:
		return "none"
	}
}

// View renders the form. Calls are serialized by the Form, never concurrent.
type View interface {
	// SetFieldValue shows the masked value of a field.
	SetFieldValue(field constants.Field, value string)
	// SetFieldStatus shows the inline message next to a field.
	SetFieldStatus(field constants.Field, text string, status Status)
	// SetAddress fills the derived address fields; the zero Address clears them.
	SetAddress(addr models.Address)
	SetSubmitEnabled(enabled bool)
	SetSummary(text string, status Status)
}
