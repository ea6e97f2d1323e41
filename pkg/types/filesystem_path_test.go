// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestFilesystemPath_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path FilesystemPath
		want bool
	}{
		{"absolute posix path", FilesystemPath("/home/dev/project"), true},
		{"relative path", FilesystemPath("src/main.go"), true},
		{"windows drive path", FilesystemPath(`C:\Users\dev\project`), true},
		{"wsl mount path", FilesystemPath("/mnt/c/Users/dev"), true},
		{"path with spaces", FilesystemPath("/path/to/my project"), true},
		{"dot path", FilesystemPath("."), true},
		{"empty is invalid", FilesystemPath(""), false},
		{"whitespace only is invalid", FilesystemPath("   "), false},
		{"tab only is invalid", FilesystemPath("\t"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ok, errs := tt.path.IsValid()
			if ok != tt.want {
				t.Errorf("FilesystemPath(%q).IsValid() = %v, want %v", tt.path, ok, tt.want)
			}
			if !tt.want {
				if len(errs) == 0 {
					t.Fatalf("FilesystemPath(%q).IsValid() returned no errors, want one", tt.path)
				}
				if !errors.Is(errs[0], ErrInvalidFilesystemPath) {
					t.Errorf("error %v does not wrap ErrInvalidFilesystemPath", errs[0])
				}
			}
		})
	}
}
