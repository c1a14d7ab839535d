package types

import (
	"strings"
	"testing"
)

func TestIsHex64(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid lowercase hex", strings.Repeat("a", 64), true},
		{"all zeros", strings.Repeat("0", 64), true},
		{"too short", "abcd", false},
		{"too long", strings.Repeat("a", 66), false},
		{"invalid hex character", strings.Repeat("g", 64), false},
		{"empty string", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsHex64(tt.input); got != tt.want {
				t.Errorf("IsHex64(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateHex(t *testing.T) {
	if err := ValidateHex(strings.Repeat("0", 64)); err != nil {
		t.Errorf("unexpected error for valid hash: %v", err)
	}
	if err := ValidateHex("abcd"); err == nil {
		t.Error("expected error for short hash")
	}
	if err := ValidateHex(strings.Repeat("g", 64)); err == nil {
		t.Error("expected error for non-hex input")
	}
}
