package main

import (
	"embed"
	"fmt"
	"log"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	"pdfdesk/internal/app"
	"pdfdesk/internal/cliargs"
	"pdfdesk/internal/paths"
)

//go:embed all:frontend/dist
var assets embed.FS

// Version is set at build time via ldflags.
var Version = "0.1.0-dev"

var (
	debugMode   bool
	showVersion bool
)

func init() {
	flag.BoolVar(&debugMode, "debug", false, "Log at info level to the debug log file")
	flag.BoolVarP(&showVersion, "version", "v", false, "Show version")
}

func main() {
	flag.Parse()

	if showVersion {
		fmt.Println("pdfdesk version", Version)
		return
	}

	// Capture PDF paths from the raw argument list before the event
	// loop takes over. The frontend fetches them once it has mounted.
	cliargs.Capture(cliargs.FilterPDFArgs(os.Args))

	shellLogger, logLevel, err := setupLogging(debugMode)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}

	backend := app.New()

	err = wails.Run(&options.App{
		Title:  "PDFDesk",
		Width:  1280,
		Height: 860,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Logger:             shellLogger,
		LogLevel:           logLevel,
		LogLevelProduction: logger.ERROR,
		OnStartup:          backend.Startup,
		Bind: []interface{}{
			backend,
		},
	})
	if err != nil {
		log.Fatalf("Shell error: %v", err)
	}
}

// setupLogging picks the shell logger. Release runs keep the default
// logger at error level; --debug swaps in a file logger at info level.
// The log file is opened here so a bad location aborts startup instead
// of surfacing later as silent log loss.
func setupLogging(debug bool) (logger.Logger, logger.LogLevel, error) {
	if !debug {
		return logger.NewDefaultLogger(), logger.ERROR, nil
	}

	p, err := paths.DefaultPaths()
	if err != nil {
		return nil, 0, err
	}
	if err := os.MkdirAll(filepath.Dir(p.DebugLogPath), 0700); err != nil {
		return nil, 0, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(p.DebugLogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, 0, fmt.Errorf("opening log file: %w", err)
	}
	f.Close()

	return logger.NewFileLogger(p.DebugLogPath), logger.INFO, nil
}
