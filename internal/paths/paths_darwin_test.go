//go:build darwin

package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths_Darwin(t *testing.T) {
	p, err := DefaultPaths()
	if err != nil {
		t.Fatalf("DefaultPaths() error: %v", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("os.UserHomeDir() error: %v", err)
	}

	wantDataDir := filepath.Join(homeDir, "Library", "Application Support", "PDFDesk")
	if p.DataDir != wantDataDir {
		t.Errorf("DataDir = %q, want %q", p.DataDir, wantDataDir)
	}

	wantLogPath := filepath.Join(homeDir, "Library", "Logs", "PDFDesk", "pdfdesk.log")
	if p.DebugLogPath != wantLogPath {
		t.Errorf("DebugLogPath = %q, want %q", p.DebugLogPath, wantLogPath)
	}
}
