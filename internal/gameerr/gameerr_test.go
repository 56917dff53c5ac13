package gameerr

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/samdwyer/monsterslayer/internal/event"
)

func TestRecoveryTable(t *testing.T) {
	tests := []struct {
		category Category
		action   Action
	}{
		{CategoryAsset, ActionRetry},
		{CategoryNetwork, ActionIgnore},
		{CategorySave, ActionResetSave},
		{CategoryValidation, ActionContinue},
		{CategoryInit, ActionRestart},
	}

	for _, tt := range tests {
		message, action := RecoveryFor(tt.category)
		if action != tt.action {
			t.Errorf("RecoveryFor(%s) action = %s, want %s", tt.category, action, tt.action)
		}
		if message == "" {
			t.Errorf("RecoveryFor(%s) has no message", tt.category)
		}
	}
}

func TestErrorWrapping(t *testing.T) {
	cause := errors.New("disk full")
	e := Save(cause)

	if !errors.Is(e, cause) {
		t.Error("classified error should unwrap to its cause")
	}
	if e.Category != CategorySave || e.Severity != SeverityError {
		t.Errorf("Save() = category %s severity %s", e.Category, e.Severity)
	}
	if e.Critical().Severity != SeverityCritical {
		t.Error("Critical() should escalate severity")
	}
}

func TestDefaultSeverities(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		err      *Error
		severity Severity
	}{
		{Asset(cause), SeverityError},
		{Network(cause), SeverityWarning},
		{Save(cause), SeverityError},
		{Validation(cause), SeverityWarning},
		{Init(cause), SeverityCritical},
	}
	for _, tt := range tests {
		if tt.err.Severity != tt.severity {
			t.Errorf("%s severity = %s, want %s", tt.err.Category, tt.err.Severity, tt.severity)
		}
	}
}

func TestHandlerPublishesCriticalOnly(t *testing.T) {
	bus := event.NewBus()
	var critical []event.CriticalErrorPayload
	bus.Subscribe(event.CriticalError, event.ListenerFunc(func(e event.Event) {
		critical = append(critical, e.Data.(event.CriticalErrorPayload))
	}))

	h := NewHandler(log.New(io.Discard, "", 0), bus)

	if action := h.Handle(Network(errors.New("timeout"))); action != ActionIgnore {
		t.Errorf("network action = %s, want ignore", action)
	}
	if len(critical) != 0 {
		t.Fatal("warning should not reach the critical-error channel")
	}

	if action := h.Handle(Init(errors.New("no content"))); action != ActionRestart {
		t.Errorf("init action = %s, want restart", action)
	}
	if len(critical) != 1 {
		t.Fatalf("critical events = %d, want 1", len(critical))
	}
	if critical[0].Category != "init" || critical[0].Action != "restart" {
		t.Errorf("critical payload = %+v", critical[0])
	}
}
