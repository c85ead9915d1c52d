package cli

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure how linecull writes documents and records history.

Settings persist in the linecull config file and apply to every run
unless overridden with command flags.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsAttemptsCmd = &cobra.Command{
	Use:   "attempts [count]",
	Short: "Set the write attempt budget",
	Long: `Sets how many times a run tries to rewrite the document in place
before giving up and writing the .cleaned sidecar file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsAttempts,
}

var settingsIntervalCmd = &cobra.Command{
	Use:   "interval [duration]",
	Short: "Set the wait between write attempts",
	Long:  `Sets the fixed pause between write attempts, e.g. "2s" or "500ms".`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsInterval,
}

var settingsHistoryCmd = &cobra.Command{
	Use:   "history [on|off]",
	Short: "Enable or disable run-history recording",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsHistory,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsAttemptsCmd)
	settingsCmd.AddCommand(settingsIntervalCmd)
	settingsCmd.AddCommand(settingsHistoryCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Write]")
	cmd.Printf("  Attempts: %d\n", settings.Write.MaxAttempts)
	cmd.Printf("  Retry interval: %s\n", settings.Write.RetryInterval)
	cmd.Println()

	cmd.Println("[History]")
	if settings.History.Enabled {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  List limit: %d\n", settings.History.Limit)
	} else {
		cmd.Printf("  Enabled: no\n")
	}

	return nil
}

func runSettingsAttempts(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	attempts, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid attempt count %q", args[0])
	}

	if err := settingsService.SetWriteAttempts(attempts); err != nil {
		return fmt.Errorf("failed to set write attempts: %w", err)
	}

	cmd.Printf("Write attempts set to %d\n", attempts)
	return nil
}

func runSettingsInterval(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	interval, err := time.ParseDuration(args[0])
	if err != nil {
		return fmt.Errorf("invalid duration %q", args[0])
	}

	if err := settingsService.SetRetryInterval(interval); err != nil {
		return fmt.Errorf("failed to set retry interval: %w", err)
	}

	cmd.Printf("Retry interval set to %s\n", interval)
	return nil
}

func runSettingsHistory(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	var enabled bool
	switch args[0] {
	case "on", "true", "yes":
		enabled = true
	case "off", "false", "no":
		enabled = false
	default:
		return fmt.Errorf("invalid value %q: use on or off", args[0])
	}

	if err := settingsService.SetHistoryEnabled(enabled); err != nil {
		return fmt.Errorf("failed to update history setting: %w", err)
	}

	if enabled {
		cmd.Println("History recording enabled.")
	} else {
		cmd.Println("History recording disabled.")
	}
	return nil
}
