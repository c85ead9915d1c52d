package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linecull/internal/core/domain"
)

// Flags for the history commands.
var (
	historyLimit int
	historyDoc   string
	historyYes   bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past cleaning runs",
	Long: `Lists the runs recorded in the local history ledger.

History recording can be switched off with 'linecull settings history off'.`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show one run in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded runs",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 0, "Maximum number of runs to list")
	historyCmd.PersistentFlags().StringVar(&historyDoc, "doc", "", "Only list runs for this document path")
	historyClearCmd.Flags().BoolVarP(&historyYes, "yes", "y", false, "Skip the confirmation prompt")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := context.Background()

	var runs []domain.RemovalResult
	var err error
	if historyDoc != "" {
		runs, err = historyService.ListForDocument(ctx, historyDoc, historyLimit)
	} else {
		runs, err = historyService.List(ctx, historyLimit)
	}
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No runs recorded.")
		return nil
	}

	for i := range runs {
		run := &runs[i]
		cmd.Printf("%s  %s  %-16s  %s\n",
			run.RunID,
			run.StartedAt.Local().Format("2006-01-02 15:04:05"),
			run.Outcome,
			run.DocumentPath)
		cmd.Printf("  %d -> %d lines (%d removed)\n",
			run.OriginalLineCount, run.FinalLineCount, run.LinesRemoved)
	}

	cmd.Printf("\nTotal: %d runs\n", len(runs))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runID := args[0]
	ctx := context.Background()

	run, err := historyService.Get(ctx, runID)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}

	cmd.Printf("Run: %s\n\n", run.RunID)
	cmd.Printf("  Document:  %s\n", run.DocumentPath)
	cmd.Printf("  Started:   %s\n", run.StartedAt.Local().Format("2006-01-02 15:04:05"))
	cmd.Printf("  Duration:  %s\n", run.Duration())
	cmd.Printf("  Outcome:   %s\n", run.Outcome.Description())
	cmd.Printf("  Lines:     %d -> %d (%d removed, %.1f%% reduction)\n",
		run.OriginalLineCount, run.FinalLineCount, run.LinesRemoved, run.ReductionPercent())
	if run.OutOfRangeDropped > 0 {
		cmd.Printf("  Dropped:   %d out-of-range line numbers\n", run.OutOfRangeDropped)
	}
	cmd.Printf("  Writes:    %d attempts\n", run.WriteAttempts)
	cmd.Printf("  Backup:    %s\n", run.BackupPath)
	cmd.Printf("  Output:    %s\n", run.OutputPath)
	if run.RequiresManualReplace() {
		cmd.Println("\nThe cleaned content is in the output file; the original was not rewritten.")
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if !historyYes {
		ok, err := confirm(cmd, "Delete all recorded runs?")
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Aborted.")
			return nil
		}
	}

	cleared, err := historyService.Clear(context.Background())
	if err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}

	cmd.Printf("Deleted %d runs.\n", cleared)
	return nil
}
