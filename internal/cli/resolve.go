package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capsule/internal/resolve"
)

var (
	jsonOutput bool
	timeout    time.Duration
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <category> <location> <date>",
	Short: "Resolve one historical fact",
	Long: `Resolve answers a single category for a location and date.

Dates are "YYYY", "YYYY-MM" or "YYYY-MM-DD"; office holders need a full date.

Example:
  capsule resolve minimum_wage "Seattle, WA" 2024
  capsule resolve governor Missouri 2015-06-01
  capsule resolve population "St. Louis, MO" 1970 --json`,
	Args: cobra.ExactArgs(3),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")
	resolveCmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "overall timeout")
}

func runResolve(cmd *cobra.Command, args []string) error {
	q, err := resolve.ParseQuery(args[0], args[1], args[2])
	if err != nil {
		return err
	}

	a, err := newApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(commandContext(cmd), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Resolving %s for %s at %s\n", q.Category, q.Location, q.Point)
	}

	value, err := a.resolver.ResolveQuery(ctx, q)
	if err != nil {
		return err
	}

	if jsonOutput {
		return writeJSON(cmd.OutOrStdout(), value)
	}
	writeValue(cmd.OutOrStdout(), value)
	return nil
}

// commandContext returns cmd's context, or Background when run outside Execute
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
