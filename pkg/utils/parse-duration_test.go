package utils

import (
	"testing"
	"time"
)

func TestParseDurationString(t *testing.T) {
	tests := []struct {
		input      string
		expected   time.Duration
		shouldFail bool
	}{
		{"", 0, true},
		{"30", 0, true},
		{"30s", 30 * time.Second, false},
		{"5m", 5 * time.Minute, false},
		{"24h", 24 * time.Hour, false},
		{"1d", 0, true}, // not supported
		{"100ms", 100 * time.Millisecond, false},
	}

	for _, test := range tests {
		result, err := ParseDurationString(test.input)
		if test.shouldFail {
			if err == nil {
				t.Errorf("expected error for input %s, but got nil", test.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("expected no error for input %s, but got %s", test.input, err)
		}
		if result != test.expected {
			t.Errorf("expected %s for input %s, but got %s", test.expected, test.input, result)
		}
	}
}
