package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/quote-wizard/internal/lookup"
	"github.com/sells-group/quote-wizard/internal/model"
	"github.com/sells-group/quote-wizard/pkg/isa"
)

var lookupFormat string

var lookupCmd = &cobra.Command{
	Use:   "lookup [category]",
	Short: "Print reference data from the insurance API",
	Long:  "Prints one lookup category, or every category when none is given. Categories that fail to load are replaced by their built-in defaults.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		category := ""
		if len(args) == 1 {
			category = args[0]
		}
		c := newClients(cfg.API)
		return runLookup(cmd.Context(), os.Stdout, os.Stderr, c.Lookup, category, lookupFormat)
	},
}

type categoryItems struct {
	Category model.LookupCategory `json:"category"`
	Items    []model.LookupItem   `json:"items"`
}

func runLookup(ctx context.Context, out, errOut io.Writer, client isa.LookupClient, category, format string) error {
	catalog := lookup.NewCatalog(client, 0)

	if category != "" {
		cat := model.LookupCategory(category)
		if !cat.Valid() {
			return eris.Errorf("lookup: unknown category %q", category)
		}
		items, err := catalog.Category(ctx, cat)
		if err != nil {
			fmt.Fprintf(errOut, "warning: %s unavailable, showing defaults: %v\n", cat, err)
		}
		if items == nil {
			items = []model.LookupItem{}
		}
		return writeOutput(out, format, items)
	}

	set := catalog.Load(ctx)
	if set.Degraded() {
		fmt.Fprintf(errOut, "warning: some categories unavailable, showing defaults: %s\n", set.Err)
	}
	all := make([]categoryItems, 0, len(model.LookupCategories))
	for _, cat := range model.LookupCategories {
		items := set.Items(cat)
		if items == nil {
			items = []model.LookupItem{}
		}
		all = append(all, categoryItems{Category: cat, Items: items})
	}
	return writeOutput(out, format, all)
}

func init() {
	lookupCmd.Flags().StringVar(&lookupFormat, "format", "yaml", "output format (yaml|json)")
	rootCmd.AddCommand(lookupCmd)
}
