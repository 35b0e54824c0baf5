//go:build darwin

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPaths returns macOS-conventional paths using ~/Library/.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine home directory: %w", err)
	}
	return &Paths{
		DataDir:      filepath.Join(homeDir, "Library", "Application Support", "PDFDesk"),
		DebugLogPath: filepath.Join(homeDir, "Library", "Logs", "PDFDesk", "pdfdesk.log"),
	}, nil
}
