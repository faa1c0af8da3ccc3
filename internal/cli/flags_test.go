package cli

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otelassist/opsboard/internal/errors"
)

func TestIsValidOutputFormat(t *testing.T) {
	tests := []struct {
		format string
		want   bool
	}{
		{format: OutputText, want: true},
		{format: OutputJSON, want: true},
		{format: "xml", want: false},
		{format: "", want: false},
		{format: "JSON", want: false},
	}

	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			assert.Equal(t, tc.want, IsValidOutputFormat(tc.format))
		})
	}
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "invalid output format", err: errors.ErrInvalidOutputFormat, want: ExitInvalidInput},
		{name: "empty value", err: errors.Wrap(errors.ErrEmptyValue, "description"), want: ExitInvalidInput},
		{name: "cobra unknown flag", err: stderrors.New(`unknown flag: --bogus`), want: ExitInvalidInput},
		{name: "cobra mutually exclusive", err: stderrors.New("[quiet verbose] were all set"), want: ExitInvalidInput},
		{name: "generic error", err: stderrors.New("store unreachable"), want: ExitError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCodeForError(tc.err))
		})
	}
}
