// Package view renders the checkout form as plain text lines.
package view

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/form"
	"github.com/AlenaMolokova/checkout/internal/models"
)

// Terminal writes every form update as one line prefixed with the part of
// the form it belongs to. Repeated submit states are collapsed.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	enabled *bool
}

var _ form.View = (*Terminal)(nil)

func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

func (t *Terminal) SetFieldValue(field constants.Field, value string) {
	t.printf("[%s] %s\n", field, value)
}

func (t *Terminal) SetFieldStatus(field constants.Field, text string, status form.Status) {
	if text == "" {
		return
	}
	t.printf("[%s] %s: %s\n", field, status, text)
}

func (t *Terminal) SetAddress(addr models.Address) {
	if addr.IsZero() {
		t.printf("[address] -\n")
		return
	}
	t.printf("[address] %s - %s, %s - %s\n", addr.Street, addr.Neighborhood, addr.City, addr.State)
}

func (t *Terminal) SetSubmitEnabled(enabled bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.enabled != nil && *t.enabled == enabled {
		return
	}
	t.enabled = &enabled

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(t.out, "[submit] %s\n", state)
}

func (t *Terminal) SetSummary(text string, status form.Status) {
	for _, line := range strings.Split(text, "\n") {
		t.printf("[summary] %s: %s\n", status, line)
	}
}

func (t *Terminal) printf(format string, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, format, args...)
}
