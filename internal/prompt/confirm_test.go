package prompt

import "testing"

func TestIsYes(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"y", true},
		{"Y", false},
		{" y ", false},
		{"yes", false},
		{"n", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isYes(tt.answer); got != tt.want {
			t.Errorf("isYes(%q) = %v, want %v", tt.answer, got, tt.want)
		}
	}
}
