// Package app implements the command surface the pdfdesk frontend
// invokes over the Wails bridge. Every command is a thin wrapper over a
// filesystem or OS call; an error returned here reaches the frontend as
// its message string.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"pdfdesk/internal/cliargs"
	"pdfdesk/internal/reveal"
)

var pdfFilters = []runtime.FileFilter{
	{DisplayName: "PDF Documents (*.pdf)", Pattern: "*.pdf"},
}

// App holds the state shared by the bound commands.
type App struct {
	ctx context.Context
}

func New() *App {
	return &App{}
}

// Startup is called by the shell once the runtime is up, before the
// frontend loads. The context is kept for the dialog, browser, and
// logging runtime calls.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx
	runtime.LogInfof(ctx, "backend ready, %d PDF path(s) from the command line", len(cliargs.PDFPaths()))
}

// GetCLIPDFPaths returns the PDF paths captured from the command line
// at process start. Empty when the app was launched without arguments.
func (a *App) GetCLIPDFPaths() []string {
	return cliargs.PDFPaths()
}

// ReadPDFFile returns the full contents of the file at path. Either the
// whole file comes back or the call fails; there is no partial read.
func (a *App) ReadPDFFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}

// WritePDFFile replaces the file at path with data, creating it if
// needed. A failure partway through can leave a truncated file; any
// retry belongs to the frontend.
func (a *App) WritePDFFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}

// ShowInFolder opens the platform file manager with path pre-selected.
func (a *App) ShowInFolder(path string) error {
	return reveal.ShowInFolder(path)
}

// OpenURL opens url in the user's default browser.
func (a *App) OpenURL(url string) {
	runtime.BrowserOpenURL(a.ctx, url)
}

// OpenPDFDialog shows the native open-file dialog filtered to PDF
// files. Returns an empty string when the user cancels.
func (a *App) OpenPDFDialog() (string, error) {
	path, err := runtime.OpenFileDialog(a.ctx, runtime.OpenDialogOptions{
		Title:   "Open PDF",
		Filters: pdfFilters,
	})
	if err != nil {
		return "", fmt.Errorf("open dialog: %w", err)
	}
	return path, nil
}

// SavePDFDialog shows the native save-file dialog filtered to PDF
// files. Returns an empty string when the user cancels.
func (a *App) SavePDFDialog(defaultName string) (string, error) {
	path, err := runtime.SaveFileDialog(a.ctx, runtime.SaveDialogOptions{
		Title:           "Save PDF",
		DefaultFilename: defaultName,
		Filters:         pdfFilters,
	})
	if err != nil {
		return "", fmt.Errorf("save dialog: %w", err)
	}
	return path, nil
}
