// Package cliargs captures PDF file paths handed to the process on the
// command line. The capture happens once, before the GUI event loop
// starts; the frontend fetches the result after it has mounted.
package cliargs

import (
	"os"
	"strings"
	"sync/atomic"
)

// captured is a single-assignment slot. The first Capture wins; later
// calls are silent no-ops, so repeated initialization cannot clobber or
// re-apply the list.
var captured atomic.Pointer[[]string]

// FilterPDFArgs returns the arguments from args, excluding the
// executable path in args[0], that name an existing file with a .pdf
// extension. The suffix match ignores case; the existence check follows
// the filesystem's own case rules. Original argument order is kept.
func FilterPDFArgs(args []string) []string {
	paths := []string{}
	if len(args) < 2 {
		return paths
	}
	for _, arg := range args[1:] {
		if !strings.HasSuffix(strings.ToLower(arg), ".pdf") {
			continue
		}
		if _, err := os.Stat(arg); err != nil {
			continue
		}
		paths = append(paths, arg)
	}
	return paths
}

// Capture stores the startup path list. Only the first call has any
// effect. The slice is copied, so the caller may reuse its backing
// array afterwards.
func Capture(paths []string) {
	stored := make([]string, len(paths))
	copy(stored, paths)
	captured.CompareAndSwap(nil, &stored)
}

// PDFPaths returns a copy of the captured startup paths, or an empty
// slice if nothing has been captured yet. Never an error.
func PDFPaths() []string {
	p := captured.Load()
	if p == nil {
		return []string{}
	}
	out := make([]string, len(*p))
	copy(out, *p)
	return out
}
