package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/AlenaMolokova/checkout/internal/constants"
	"github.com/AlenaMolokova/checkout/internal/form"
	"github.com/AlenaMolokova/checkout/internal/logger"
)

const usage = `commands:
  <field>=<value>   fields: name, tax-id, postal-code, street-number, card-number, expiry, security-code
  submit            place the order
  state             show which fields are valid
  quit              exit`

// run reads commands from in until EOF, quit, or ctx is done. Field edits
// and submit failures are reported through the form's view; only read
// errors end the loop with an error.
func run(ctx context.Context, f *form.Form, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if done := handle(ctx, f, strings.TrimSpace(line), out); done {
				return nil
			}
		}
	}
}

func handle(ctx context.Context, f *form.Form, line string, out io.Writer) bool {
	switch line {
	case "":
		return false
	case "quit", "exit":
		return true
	case "submit":
		if _, err := f.Submit(ctx); errors.Is(err, form.ErrSubmitDisabled) {
			fmt.Fprintln(out, "[submit] not ready: fill in every field first")
		}
		return false
	case "state":
		state := f.State()
		for _, field := range constants.Fields {
			fmt.Fprintf(out, "[state] %s=%t\n", field, state[field])
		}
		return false
	}

	name, value, ok := strings.Cut(line, "=")
	if !ok {
		fmt.Fprintf(out, "unknown command %q\n%s\n", line, usage)
		return false
	}
	if err := f.Set(constants.Field(strings.TrimSpace(name)), value); err != nil {
		logger.Log(ctx).Debugf("checkout: %v", err)
		fmt.Fprintf(out, "unknown field %q\n", strings.TrimSpace(name))
	}
	return false
}
