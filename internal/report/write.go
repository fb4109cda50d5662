package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// Filename returns the artifact name for a report generated at the
// report's timestamp, e.g. crop_recommendation_report_20250117_140305.txt.
func Filename(r Report) string {
	return fmt.Sprintf("crop_recommendation_report_%s.txt", r.GeneratedAt.Format("20060102_150405"))
}

// Write renders the report and writes it into dir atomically: the text
// goes to a temporary file first and is renamed into place, so a failure
// never leaves a partial report behind. Returns the final path.
func Write(dir string, r Report) (string, error) {
	text := Render(r)

	tmp, err := os.CreateTemp(dir, "report-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("write report: %w", err)
	}

	path := filepath.Join(dir, Filename(r))
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
