// Package cli implements the linecull command line interface.
// It is a driving adapter: commands translate flags and arguments into
// calls on the core services and print the outcome.
package cli

import (
	"bufio"
	"errors"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/linecull/internal/core/ports/driving"
	"github.com/custodia-labs/linecull/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Services used by the commands. Injected once at startup via SetServices.
var (
	cleanService    driving.CleanService
	restoreService  driving.RestoreService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
)

// verbose toggles debug logging for the whole invocation.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "linecull",
	Short: "Line-indexed batch deletion for text documents",
	Long: `Linecull removes an externally computed set of line numbers from a
text document, safely.

Every run writes a timestamped backup of the original document before
anything is modified. When the document cannot be rewritten in place
(for example because another program holds it locked), linecull retries
a few times and finally writes the cleaned content to a sidecar file
with a .cleaned suffix, so the computed result is never lost.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Services bundles the driving ports the CLI depends on.
type Services struct {
	// Clean previews and executes line removal.
	Clean driving.CleanService

	// Restore puts a document back from one of its backups.
	Restore driving.RestoreService

	// History reads the run-history ledger.
	History driving.HistoryService

	// Settings manages persisted application settings.
	Settings driving.SettingsService
}

// SetServices injects the service implementations used by the commands.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	cleanService = s.Clean
	restoreService = s.Restore
	historyService = s.History
	settingsService = s.Settings
}

// SetVersion overrides the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// confirm prints a yes/no question and reads the answer.
//
// When standard input is an *os.File that is not a terminal, confirmation
// is refused so a piped invocation never blocks on a prompt; callers must
// pass --yes instead. Readers injected via SetIn bypass the terminal check.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return false, errors.New("standard input is not a terminal; re-run with --yes to confirm")
	}

	cmd.Printf("%s [y/N]: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	input, err := reader.ReadString('\n')
	if err != nil && input == "" {
		// EOF without an answer is a no
		cmd.Println()
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(input))
	return answer == "y" || answer == "yes", nil
}
