package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/capsule/internal/model"
)

// categoriesCmd lists categories and how each is resolved
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories, their policies and source tiers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		registry := a.resolver.Registry()
		for _, info := range model.Categories() {
			_, _ = fmt.Fprintf(out, "%-22s %s (%s, from %d)\n", info.Category, info.Title, info.Granularity, info.FirstYear)

			spec, ok := registry.Lookup(info.Category)
			if !ok {
				_, _ = fmt.Fprintf(out, "  not configured\n")
				continue
			}
			tiers := make([]string, len(spec.Tiers))
			for i, t := range spec.Tiers {
				tiers[i] = fmt.Sprintf("%s:%s", t.Name, t.Source.Name())
			}
			_, _ = fmt.Fprintf(out, "  policy: %s, clamp floor: %t\n", spec.Policy.TieBreak, spec.Policy.ClampFloor)
			_, _ = fmt.Fprintf(out, "  tiers:  %s\n", strings.Join(tiers, " > "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}
