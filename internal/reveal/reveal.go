// Package reveal opens the platform's file manager with a given file
// pre-selected. Only Windows has an implementation today; every other
// platform reports ErrUnsupported and spawns nothing. A native reveal
// for darwin (open -R) or linux would slot in as another build-tagged
// file without changing callers.
package reveal

import "errors"

// ErrUnsupported is returned on platforms without a file-manager reveal.
var ErrUnsupported = errors.New("reveal is not supported on this platform")
