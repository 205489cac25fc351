package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capsule/internal/worker"
)

var (
	concurrency  int
	outputFile   string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Resolve many requests from a file in parallel",
	Long: `Batch resolves requests read from a file, one per line:

  category|location|date

Blank lines and lines starting with # are skipped; duplicates are resolved once.

Example:
  capsule batch requests.txt
  capsule batch requests.txt --concurrency 8 --output results.json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", 0, "number of concurrent workers (default: config concurrency.workers)")
	batchCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write JSON results to this file")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

// batchOutput is one line of the JSON results file
type batchOutput struct {
	worker.Request
	Value any    `json:"value,omitempty"`
	Error string `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if concurrency > 0 {
		cfg.Concurrency.Workers = concurrency
	}
	a, err := buildApp(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(commandContext(cmd), batchTimeout)
	defer cancel()

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Capsule Batch Processing\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	fmt.Fprintf(os.Stderr, "\n")

	results, err := a.batch.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	resolved, absent, failed := writeBatchText(cmd.OutOrStdout(), results)

	if outputFile != "" {
		if err := writeBatchJSON(outputFile, results); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  Batch Complete\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:        %d requests\n", len(results))
	fmt.Fprintf(os.Stderr, "  Resolved:     %d\n", resolved)
	fmt.Fprintf(os.Stderr, "  Unavailable:  %d\n", absent)
	fmt.Fprintf(os.Stderr, "  Failures:     %d\n", failed)
	if outputFile != "" {
		fmt.Fprintf(os.Stderr, "  Output:       %s\n", outputFile)
	}
	fmt.Fprintf(os.Stderr, "\n")

	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(results))
	}
	return nil
}

// writeBatchText prints one line per result and returns the outcome counts
func writeBatchText(w io.Writer, results []*worker.ResolveResult) (resolved, absent, failed int) {
	for _, res := range results {
		switch {
		case res.Error != nil:
			failed++
			_, _ = fmt.Fprintf(w, "✗ %s: %v\n", res.Request, res.Error)
		case res.Value.IsAbsent():
			absent++
			_, _ = fmt.Fprintf(w, "- %s: %s\n", res.Request, unavailable)
		default:
			resolved++
			_, _ = fmt.Fprintf(w, "✓ %s: %s [%s]\n", res.Request, res.Value.Formatted, provenance(res.Value))
		}
	}
	return resolved, absent, failed
}

func writeBatchJSON(path string, results []*worker.ResolveResult) (err error) {
	out := make([]batchOutput, 0, len(results))
	for _, res := range results {
		line := batchOutput{Request: res.Request}
		if res.Error != nil {
			line.Error = res.Error.Error()
		} else {
			line.Value = res.Value
		}
		out = append(out, line)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()
	return writeJSON(f, out)
}
