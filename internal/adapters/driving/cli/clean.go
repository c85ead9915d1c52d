package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/linecull/internal/core/domain"
	"github.com/custodia-labs/linecull/internal/core/ports/driving"
)

// previewLineCap bounds how many doomed lines the plain-text preview prints.
const previewLineCap = 20

// Flags for the clean command.
var (
	cleanLines     string
	cleanLinesFile string
	cleanDryRun    bool
	cleanYes       bool
	cleanReview    bool
	cleanAttempts  int
	cleanInterval  time.Duration
)

var cleanCmd = &cobra.Command{
	Use:   "clean [path]",
	Short: "Remove a set of lines from a document",
	Long: `Removes the given 1-based line numbers from a document.

The deletion set can be passed inline (--lines), read from a file
(--lines-file), or piped on stdin (--lines-file -). Duplicate and
out-of-range numbers are dropped silently; removing every line leaves a
valid empty document.

A timestamped backup of the original document is written before anything
is modified. If the document cannot be rewritten in place after several
attempts, the cleaned content goes to a sidecar file with a .cleaned
suffix and the original is left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().StringVarP(&cleanLines, "lines", "l", "", "Line numbers to remove, e.g. 3,7,120-140")
	cleanCmd.Flags().StringVarP(&cleanLinesFile, "lines-file", "f", "", "File with line numbers, one per line ('-' for stdin)")
	cleanCmd.Flags().BoolVar(&cleanDryRun, "dry-run", false, "Show what would be removed without touching the document")
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "Skip the confirmation prompt")
	cleanCmd.Flags().BoolVar(&cleanReview, "review", false, "Review the doomed lines interactively before removal")
	cleanCmd.Flags().IntVar(&cleanAttempts, "attempts", 0, "Override the write attempt budget")
	cleanCmd.Flags().DurationVar(&cleanInterval, "interval", 0, "Override the wait between write attempts")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	if cleanService == nil {
		return errors.New("clean service not configured")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	lines, err := gatherLines(cmd)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return errors.New("no line numbers given; use --lines or --lines-file")
	}

	req := driving.CleanRequest{
		Path:  path,
		Lines: lines,
		Write: domain.WriteSettings{
			MaxAttempts:   cleanAttempts,
			RetryInterval: cleanInterval,
		},
	}
	ctx := context.Background()

	if cleanReview && !cleanDryRun {
		return runCleanReview(cmd, req)
	}

	preview, err := cleanService.Preview(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to preview removal: %w", err)
	}

	if cleanDryRun {
		printPreview(cmd, preview)
		return nil
	}

	if !cleanYes {
		printPreview(cmd, preview)
		cmd.Println()
		ok, err := confirm(cmd, fmt.Sprintf("Remove %d lines from %s?", preview.LinesRemoved(), path))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Aborted. Document untouched.")
			return nil
		}
	}

	result, err := cleanService.Clean(ctx, req)
	if err != nil {
		return fmt.Errorf("clean failed: %w", err)
	}

	printResult(cmd, result)
	return nil
}

// gatherLines collects the deletion set from --lines, --lines-file or stdin.
func gatherLines(cmd *cobra.Command) ([]int, error) {
	var lines []int

	if cleanLines != "" {
		parsed, err := ParseLineSet(cleanLines)
		if err != nil {
			return nil, err
		}
		lines = append(lines, parsed...)
	}

	if cleanLinesFile != "" {
		if cleanLinesFile == "-" {
			if !cleanYes && !cleanDryRun {
				return nil, errors.New("reading line numbers from stdin requires --yes or --dry-run")
			}

			parsed, err := ReadLineSet(cmd.InOrStdin())
			if err != nil {
				return nil, err
			}
			lines = append(lines, parsed...)
		} else {
			file, err := os.Open(cleanLinesFile)
			if err != nil {
				return nil, fmt.Errorf("opening %s: %w", cleanLinesFile, err)
			}
			defer file.Close()

			parsed, err := ReadLineSet(file)
			if err != nil {
				return nil, err
			}
			lines = append(lines, parsed...)
		}
	}

	return lines, nil
}

// printPreview renders the removal plan without touching the document.
func printPreview(cmd *cobra.Command, preview *driving.CleanPreview) {
	cmd.Printf("Would remove %d of %d lines from %s\n",
		preview.LinesRemoved(), preview.OriginalLineCount, preview.DocumentPath)
	if preview.OutOfRangeDropped > 0 {
		cmd.Printf("  (%d out-of-range line numbers dropped)\n", preview.OutOfRangeDropped)
	}

	if len(preview.Doomed) == 0 {
		cmd.Println("\nNothing to remove; the document would be unchanged.")
		return
	}

	cmd.Println()
	shown := len(preview.Doomed)
	if shown > previewLineCap {
		shown = previewLineCap
	}
	for _, line := range preview.Doomed[:shown] {
		cmd.Printf("  %6d │ %s\n", line.Number, line.Text)
	}
	if rest := len(preview.Doomed) - shown; rest > 0 {
		cmd.Printf("  … %d more\n", rest)
	}

	cmd.Printf("\nResulting document: %d lines\n", preview.FinalLineCount)
}

// printResult renders a finished run.
func printResult(cmd *cobra.Command, result *domain.RemovalResult) {
	if result.Outcome == domain.OutcomeSuccessFallback {
		cmd.Printf("Could not rewrite %s after %d attempts.\n", result.DocumentPath, result.WriteAttempts)
		cmd.Printf("Cleaned content written to %s\n", result.OutputPath)
		cmd.Println("Replace the original manually once the document is released.")
	} else {
		cmd.Printf("Cleaned %s\n", result.DocumentPath)
	}

	cmd.Printf("  Lines:   %d -> %d (%d removed, %.1f%% reduction)\n",
		result.OriginalLineCount, result.FinalLineCount, result.LinesRemoved, result.ReductionPercent())
	if result.OutOfRangeDropped > 0 {
		cmd.Printf("  Dropped: %d out-of-range line numbers\n", result.OutOfRangeDropped)
	}
	if result.WriteAttempts > 1 {
		cmd.Printf("  Writes:  %d attempts\n", result.WriteAttempts)
	}
	cmd.Printf("  Backup:  %s\n", result.BackupPath)
}
