//go:build !darwin && !linux && !windows

package paths

import "fmt"

// DefaultPaths returns an error on unsupported platforms.
func DefaultPaths() (*Paths, error) {
	return nil, fmt.Errorf("pdfdesk: unsupported platform")
}
