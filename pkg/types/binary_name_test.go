// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestBinaryName_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		bin  BinaryName
		want bool
	}{
		{"plain name", BinaryName("claude"), true},
		{"name with extension", BinaryName("claude.exe"), true},
		{"name with dash", BinaryName("my-assistant"), true},
		{"empty is invalid", BinaryName(""), false},
		{"whitespace only is invalid", BinaryName("  "), false},
		{"forward slash is invalid", BinaryName("bin/claude"), false},
		{"backslash is invalid", BinaryName(`bin\claude`), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, errs := tt.bin.IsValid()
			if ok != tt.want {
				t.Errorf("BinaryName(%q).IsValid() = %v, want %v", tt.bin, ok, tt.want)
			}
			if !tt.want && (len(errs) == 0 || !errors.Is(errs[0], ErrInvalidBinaryName)) {
				t.Errorf("BinaryName(%q).IsValid() errors = %v, want ErrInvalidBinaryName", tt.bin, errs)
			}
		})
	}
}

func TestExitCode_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code ExitCode
		want bool
	}{
		{"success", ExitCode(0), true},
		{"generic failure", ExitCode(1), true},
		{"command not found convention", ExitCode(127), true},
		{"max", ExitCode(255), true},
		{"negative is invalid", ExitCode(-1), false},
		{"overflow is invalid", ExitCode(256), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, errs := tt.code.IsValid()
			if ok != tt.want {
				t.Errorf("ExitCode(%d).IsValid() = %v, want %v", tt.code, ok, tt.want)
			}
			if !tt.want && (len(errs) == 0 || !errors.Is(errs[0], ErrInvalidExitCode)) {
				t.Errorf("ExitCode(%d).IsValid() errors = %v, want ErrInvalidExitCode", tt.code, errs)
			}
		})
	}

	if !ExitCode(0).IsSuccess() || ExitCode(1).IsSuccess() {
		t.Error("IsSuccess() should be true only for exit code 0")
	}
}
