package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var capsuleTimeout time.Duration

// capsuleCmd represents the capsule command
var capsuleCmd = &cobra.Command{
	Use:     "capsule <location> <date>",
	Aliases: []string{"open"},
	Short:   "Resolve every category for one place and date",
	Long: `Capsule assembles a time capsule: every category resolved for one
location and date, concurrently.

Example:
  capsule capsule "St. Louis, MO" 1968
  capsule open "Seattle, WA" 2015-06-01 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runCapsule,
}

func init() {
	rootCmd.AddCommand(capsuleCmd)

	capsuleCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")
	capsuleCmd.Flags().DurationVar(&capsuleTimeout, "timeout", 2*time.Minute, "overall timeout")
}

func runCapsule(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(commandContext(cmd), capsuleTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Resolving %s at %s with %d workers...\n", args[0], args[1], a.cfg.Concurrency.Workers)
	}

	c, err := a.batch.Capsule(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if jsonOutput {
		return writeJSON(out, c)
	}

	_, _ = fmt.Fprintf(out, "%s, %s\n\n", c.Location, c.Point)
	for _, entry := range c.Entries {
		switch {
		case entry.Error != "":
			_, _ = fmt.Fprintf(out, "  %-20s (%s)\n", entry.Title, entry.Error)
		case entry.Value.IsAbsent():
			_, _ = fmt.Fprintf(out, "  %-20s %s\n", entry.Title, unavailable)
		default:
			_, _ = fmt.Fprintf(out, "  %-20s %-28s %s\n", entry.Title, entry.Value.Formatted, provenance(*entry.Value))
		}
	}
	return nil
}
