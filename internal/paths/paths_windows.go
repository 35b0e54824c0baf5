//go:build windows

package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPaths returns Windows-conventional paths under %LOCALAPPDATA%.
func DefaultPaths() (*Paths, error) {
	localAppData := os.Getenv("LOCALAPPDATA")
	if localAppData == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot determine home directory: %w", err)
		}
		localAppData = filepath.Join(homeDir, "AppData", "Local")
	}

	dataDir := filepath.Join(localAppData, "PDFDesk")
	return &Paths{
		DataDir:      dataDir,
		DebugLogPath: filepath.Join(dataDir, "pdfdesk.log"),
	}, nil
}
