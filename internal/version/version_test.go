package version

import "testing"

func TestGetCurrentVersion(t *testing.T) {
	tests := []struct {
		mode     string
		expected string
	}{
		{"dev", DevVersion},
		{"demo", DevVersion},
		{"prod", Version},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			if got := GetCurrentVersion(tt.mode); got != tt.expected {
				t.Errorf("GetCurrentVersion(%q) = %q, want %q", tt.mode, got, tt.expected)
			}
		})
	}
}

func TestIsVersionGreaterOrEqualThan(t *testing.T) {
	tests := []struct {
		version  string
		target   string
		expected bool
	}{
		{"0.2.0", "0.1.0", true},
		{"0.1.0", "0.1.0", true},
		{"0.1.0", "0.2.0", false},
		{"1.0.0", "0.9.9", true},
	}

	for _, tt := range tests {
		if got := IsVersionGreaterOrEqualThan(tt.version, tt.target); got != tt.expected {
			t.Errorf("IsVersionGreaterOrEqualThan(%q, %q) = %v, want %v", tt.version, tt.target, got, tt.expected)
		}
	}
}
