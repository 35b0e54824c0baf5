// Package paths provides platform-aware path resolution for pdfdesk.
// Each supported platform (darwin, linux, windows) has its own
// implementation that follows the platform's conventions for
// application data and log storage.
package paths

// Paths holds the platform-specific filesystem locations pdfdesk
// writes to.
type Paths struct {
	DataDir      string // Application data directory
	DebugLogPath string // Debug log file, written only with --debug
}
