package testutils

import (
	"sync"

	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/form"
	"github.com/AlenaMolokova/checkout/internal/models"
)

type FieldStatus struct {
	Text   string
	Status form.Status
}

// RecordingView keeps the last thing rendered for every part of the form.
// It is safe to read from the test goroutine while lookups complete.
type RecordingView struct {
	mu      sync.Mutex
	values  map[constants.Field]string
	status  map[constants.Field]FieldStatus
	address models.Address
	enabled bool
	summary FieldStatus
	// history of SetSubmitEnabled calls
	toggles []bool
}

func NewRecordingView() *RecordingView {
	return &RecordingView{
		values: make(map[constants.Field]string),
		status: make(map[constants.Field]FieldStatus),
	}
}

func (v *RecordingView) SetFieldValue(field constants.Field, value string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.values[field] = value
}

func (v *RecordingView) SetFieldStatus(field constants.Field, text string, status form.Status) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.status[field] = FieldStatus{Text: text, Status: status}
}

func (v *RecordingView) SetAddress(addr models.Address) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.address = addr
}

func (v *RecordingView) SetSubmitEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enabled = enabled
	v.toggles = append(v.toggles, enabled)
}

func (v *RecordingView) SetSummary(text string, status form.Status) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.summary = FieldStatus{Text: text, Status: status}
}

func (v *RecordingView) Value(field constants.Field) string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.values[field]
}

func (v *RecordingView) Status(field constants.Field) FieldStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.status[field]
}

func (v *RecordingView) Address() models.Address {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.address
}

func (v *RecordingView) SubmitEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enabled
}

func (v *RecordingView) Summary() FieldStatus {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.summary
}

func (v *RecordingView) Toggles() []bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]bool(nil), v.toggles...)
}
