package utils

import (
	"fmt"
	"time"
)

// GenerateSurveyVersionID produces a human readable version id for a
// published survey, "YY-MM-counter", bumping the counter until the id is
// not present among the already used ones.
func GenerateSurveyVersionID(usedVersionIDs []string) string {
	t := time.Now()

	date := t.Format("06-01")

	counter := 1
	newID := fmt.Sprintf("%s-%d", date, counter)
	for ContainsString(usedVersionIDs, newID) {
		counter += 1
		newID = fmt.Sprintf("%s-%d", date, counter)
	}

	return newID
}
