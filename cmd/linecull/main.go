// Command linecull removes an externally computed set of line numbers
// from a text document, with a timestamped backup, a bounded write-retry
// pipeline and a local history ledger.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/linecull/internal/adapters/driven/config/file"
	"github.com/custodia-labs/linecull/internal/adapters/driven/fileaccess/billy"
	"github.com/custodia-labs/linecull/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/linecull/internal/adapters/driving/cli"
	"github.com/custodia-labs/linecull/internal/core/ports/driven"
	"github.com/custodia-labs/linecull/internal/core/services"
	"github.com/custodia-labs/linecull/internal/logger"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	// A broken ledger must not stop a clean run; history degrades to
	// a no-op instead.
	var runs driven.RunStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("history ledger unavailable: %v", err)
	} else {
		defer store.Close()
		runs = store.RunStore()
	}
	historyService := services.NewHistoryService(runs, settingsService)

	files := billy.NewOS()
	cleanService := services.NewCleanService(files, settingsService, historyService)
	restoreService := services.NewRestoreService(files)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Clean:    cleanService,
		Restore:  restoreService,
		History:  historyService,
		Settings: settingsService,
	})

	return cli.Execute()
}
