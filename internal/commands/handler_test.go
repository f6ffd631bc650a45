package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goerrors "github.com/goliatone/go-errors"
)

type fakeMessage struct {
	name    string
	invalid bool
}

func (m fakeMessage) Type() string { return "builder.test." + m.name }

func (m fakeMessage) Validate() error {
	if m.invalid {
		return validation.Errors{
			"name": validation.NewError("builder.test.invalid", "message rejected"),
		}
	}
	return nil
}

func TestHandlerExecutesWrappedFunction(t *testing.T) {
	called := false
	handler := NewHandler(func(context.Context, fakeMessage) error {
		called = true
		return nil
	})
	if err := handler.Execute(context.Background(), fakeMessage{name: "ok"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !called {
		t.Fatal("wrapped function not invoked")
	}
}

func TestHandlerRejectsInvalidMessage(t *testing.T) {
	handler := NewHandler(func(context.Context, fakeMessage) error {
		t.Fatal("exec must not run for invalid messages")
		return nil
	})
	err := handler.Execute(context.Background(), fakeMessage{name: "bad", invalid: true})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestHandlerWrapsExecutionErrors(t *testing.T) {
	cause := errors.New("boom")
	handler := NewHandler(func(context.Context, fakeMessage) error {
		return cause
	})
	err := handler.Execute(context.Background(), fakeMessage{name: "fail"})
	if err == nil {
		t.Fatal("expected execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerHonorsTimeout(t *testing.T) {
	handler := NewHandler(func(ctx context.Context, _ fakeMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return errors.New("timeout not applied")
		}
	}, WithTimeout[fakeMessage](5*time.Millisecond))

	err := handler.Execute(context.Background(), fakeMessage{name: "slow"})
	if err == nil {
		t.Fatal("expected deadline error")
	}
}

func TestHandlerTelemetryCallback(t *testing.T) {
	var seen TelemetryInfo
	handler := NewHandler(func(context.Context, fakeMessage) error {
		return nil
	},
		WithMessageFields(func(m fakeMessage) map[string]any {
			return map[string]any{"name": m.name}
		}),
		WithTelemetry[fakeMessage](func(_ context.Context, _ fakeMessage, info TelemetryInfo) {
			seen = info
		}),
	)

	if err := handler.Execute(context.Background(), fakeMessage{name: "traced"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if seen.Status != TelemetryStatusSuccess {
		t.Fatalf("unexpected telemetry status %q", seen.Status)
	}
	if seen.Fields["name"] != "traced" {
		t.Fatalf("message fields missing: %v", seen.Fields)
	}
}
