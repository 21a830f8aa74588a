package version

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		name     string
		v        Info
		expected string
	}{
		{
			name:     "empty",
			v:        Info{},
			expected: "dev",
		},
		{
			name:     "version only",
			v:        Info{Version: "v0.3.1"},
			expected: "v0.3.1",
		},
		{
			name:     "short commit kept as is",
			v:        Info{Version: "v0.3.1", GitCommit: "abc123"},
			expected: "v0.3.1 abc123",
		},
		{
			name:     "long commit truncated",
			v:        Info{GitCommit: "4f9c21ab9d3e77aa01bc"},
			expected: "dev 4f9c21ab9d3e",
		},
		{
			name:     "all fields",
			v:        Info{Version: "v1.0.0", GitCommit: "abc123", BuildTime: "2026-08-01T12:00:00Z"},
			expected: "v1.0.0 abc123 2026-08-01T12:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.String()
			if result != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, result)
			}
		})
	}
}
