//go:build windows

package reveal

import (
	"fmt"
	"os/exec"
)

// ShowInFolder launches Explorer with the file at path pre-selected.
// The trailing comma in "/select," is part of Explorer's argument
// syntax. Returns once the process has started; Explorer's exit status
// is not observed.
func ShowInFolder(path string) error {
	cmd := exec.Command("explorer", "/select,", path)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching explorer for %s: %w", path, err)
	}
	return nil
}
