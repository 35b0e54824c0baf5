//go:build !windows

package reveal

import (
	"fmt"
	"runtime"
)

// ShowInFolder fails on platforms without a reveal implementation. No
// process is spawned.
func ShowInFolder(path string) error {
	return fmt.Errorf("revealing %s on %s: %w", path, runtime.GOOS, ErrUnsupported)
}
