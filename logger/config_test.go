package logger

import (
	"bytes"
	"testing"

	"github.com/kbukum/utilkit/errors"
)

func TestConfigValidateIsInvalidInput(t *testing.T) {
	cfg := Config{Level: "loud", Format: "json", Output: "stderr"}
	appErr, ok := errors.AsAppError(cfg.Validate())
	if !ok {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidInput {
		t.Errorf("expected INVALID_INPUT, got %s", appErr.Code)
	}
	if !errors.IsInputCode(appErr.Code) {
		t.Errorf("expected %s to be an input code", appErr.Code)
	}
}

func TestIsTerminal(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
	if IsTerminal(nil) {
		t.Error("nil is not a terminal")
	}
}
