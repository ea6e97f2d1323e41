// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ActionableError
		expected string
	}{
		{
			name: "operation only",
			err: &ActionableError{
				Operation: "launch assistant",
			},
			expected: "failed to launch assistant",
		},
		{
			name: "operation with resource",
			err: &ActionableError{
				Operation: "resolve binary",
				Resource:  "claude",
			},
			expected: "failed to resolve binary: claude",
		},
		{
			name: "operation with cause",
			err: &ActionableError{
				Operation: "load configuration",
				Cause:     errors.New("syntax error at line 5"),
			},
			expected: "failed to load configuration: syntax error at line 5",
		},
		{
			name: "full context",
			err: &ActionableError{
				Operation: "load configuration",
				Resource:  "./config.cue",
				Cause:     errors.New("file not found"),
			},
			expected: "failed to load configuration: ./config.cue: file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestActionableError_Format(t *testing.T) {
	ae := NewErrorContext().
		WithOperation("launch assistant").
		WithResource("claude").
		WithSuggestion("Install the assistant CLI").
		WithSuggestion("Check your PATH").
		Wrap(errors.New("exec: not found")).
		Build()

	short := ae.Format(false)
	if !strings.Contains(short, "failed to launch assistant") {
		t.Errorf("Format(false) missing headline: %q", short)
	}
	if !strings.Contains(short, "Install the assistant CLI") || !strings.Contains(short, "Check your PATH") {
		t.Errorf("Format(false) missing suggestions: %q", short)
	}
	if strings.Contains(short, "Error chain") {
		t.Errorf("Format(false) should not include the error chain: %q", short)
	}

	long := ae.Format(true)
	if !strings.Contains(long, "Error chain") {
		t.Errorf("Format(true) missing error chain: %q", long)
	}
}

func TestErrorContext_BuildRequiresOperation(t *testing.T) {
	if got := NewErrorContext().WithResource("claude").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().WithResource("claude").BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}
}

func TestWrapWithOperation(t *testing.T) {
	if got := WrapWithOperation(nil, "launch assistant"); got != nil {
		t.Errorf("WrapWithOperation(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	wrapped := WrapWithOperation(cause, "launch assistant")
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error does not unwrap to its cause")
	}
}
