package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"aimon-defense/internal/config"

	"github.com/gocarina/gocsv"
)

// OutputManager writes telemetry rows to <dir>/telemetry.csv.
// A nil manager is valid and discards everything.
type OutputManager struct {
	dir           string
	telemetryFile *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and file.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "telemetry.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating telemetry.csv: %w", err)
	}
	return &OutputManager{dir: dir, telemetryFile: f}, nil
}

// WriteConfig saves the effective configuration next to the CSV.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteWindow appends one row; the first row also writes the header.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}
	records := []WindowStats{stats}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.telemetryFile); err != nil {
			return fmt.Errorf("writing telemetry: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.telemetryFile); err != nil {
		return fmt.Errorf("writing telemetry: %w", err)
	}
	return nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close closes the CSV file.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.telemetryFile.Close()
}
