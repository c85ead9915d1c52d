package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/linecull/internal/adapters/driving/tui"
	"github.com/custodia-labs/linecull/internal/core/ports/driving"
)

// runCleanReview opens the interactive review screen for a removal and,
// if the user confirms, executes it.
func runCleanReview(cmd *cobra.Command, req driving.CleanRequest) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in review: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	preview, err := cleanService.Preview(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("failed to preview removal: %w", err)
	}

	app, err := tui.NewApp(tui.NewPorts(cleanService), req, preview)
	if err != nil {
		return fmt.Errorf("failed to create review screen: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("review error: %w", err)
	}

	final, ok := finalModel.(*tui.App)
	if !ok {
		return nil
	}

	if final.Aborted() {
		cmd.Println("Aborted. Document untouched.")
		return nil
	}
	if final.Err() != nil {
		return fmt.Errorf("clean failed: %w", final.Err())
	}
	if final.Result() != nil {
		printResult(cmd, final.Result())
	}

	return nil
}
