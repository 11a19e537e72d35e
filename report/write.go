package report

import (
	"encoding/json"
	"fmt"
	"os"

	"repohealth/models"
)

// WriteJSON serializes the report as indented JSON to path, replacing any
// existing file. The file handle is released on every exit path.
func WriteJSON(report *models.HealthReport, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return nil
}
