package utils

import (
	"fmt"
	"testing"
	"time"
)

func TestGenerateSurveyVersionID(t *testing.T) {
	prefix := time.Now().Format("06-01")

	t.Run("no used ids", func(t *testing.T) {
		id := GenerateSurveyVersionID(nil)
		if id != prefix+"-1" {
			t.Errorf("unexpected version id: %s", id)
		}
	})

	t.Run("counter skips used ids", func(t *testing.T) {
		used := []string{
			fmt.Sprintf("%s-1", prefix),
			fmt.Sprintf("%s-2", prefix),
		}
		id := GenerateSurveyVersionID(used)
		if id != prefix+"-3" {
			t.Errorf("unexpected version id: %s", id)
		}
	})
}
