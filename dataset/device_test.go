package dataset

import "testing"

func TestCanonicalDevice(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"BL1", "Bioness Left 1"},
		{"BR2", "Bioness Right 2"},
		{"BL12", "Bioness Left 12"},
		{"BLT", "Bioness Left T"},
		// Bare prefixes are not abbreviations.
		{"BL", "BL"},
		{"BR", "BR"},
		// Underscore rule for everything else.
		{"Bioness_Left", "Bioness Left"},
		{"Nintendo_Switch", "Nintendo Switch"},
		{"BL_2", "Bioness Left _2"},
		{"Kinect", "Kinect"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := CanonicalDevice(tt.input); got != tt.expected {
			t.Errorf("CanonicalDevice(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
