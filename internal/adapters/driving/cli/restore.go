package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Flags for the restore command.
var (
	restoreBackup string
	restoreList   bool
	restoreYes    bool
)

var restoreCmd = &cobra.Command{
	Use:   "restore [path]",
	Short: "Restore a document from one of its backups",
	Long: `Copies a backup back over the document.

Without --backup the newest backup is used. Use --list to see the
backups that exist for a document.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().StringVarP(&restoreBackup, "backup", "b", "", "Backup file to restore from (defaults to the newest)")
	restoreCmd.Flags().BoolVar(&restoreList, "list", false, "List available backups instead of restoring")
	restoreCmd.Flags().BoolVarP(&restoreYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	if restoreService == nil {
		return errors.New("restore service not configured")
	}

	path, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	ctx := context.Background()

	backups, err := restoreService.ListBackups(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if restoreList {
		if len(backups) == 0 {
			cmd.Printf("No backups found for %s\n", path)
			return nil
		}

		cmd.Printf("Backups for %s:\n\n", path)
		for _, backup := range backups {
			cmd.Printf("  %s  %s\n", backup.CreatedAt.Format("2006-01-02 15:04:05"), backup.Path)
		}
		cmd.Printf("\nTotal: %d backups\n", len(backups))
		return nil
	}

	chosen := restoreBackup
	if chosen == "" {
		if len(backups) == 0 {
			return fmt.Errorf("no backups found for %s", path)
		}
		chosen = backups[0].Path
	}

	if !restoreYes {
		ok, err := confirm(cmd, fmt.Sprintf("Overwrite %s with %s?", path, chosen))
		if err != nil {
			return err
		}
		if !ok {
			cmd.Println("Aborted. Document untouched.")
			return nil
		}
	}

	result, err := restoreService.Restore(ctx, path, chosen)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	cmd.Printf("Restored %s from %s (%d lines)\n", result.DocumentPath, result.BackupPath, result.LineCount)
	return nil
}
