package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/quote-wizard/internal/model"
	"github.com/sells-group/quote-wizard/pkg/isa"
)

var policiesFormat string

var policiesCmd = &cobra.Command{
	Use:   "policies",
	Short: "List the current user's policies",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := newClients(cfg.API)
		return runPolicies(cmd.Context(), os.Stdout, c.Policy, policiesFormat)
	},
}

func runPolicies(ctx context.Context, out io.Writer, client isa.PolicyClient, format string) error {
	policies, err := client.GetUserPolicies(ctx)
	if err != nil {
		return eris.Wrap(err, "policies: list")
	}
	if policies == nil {
		policies = []model.Policy{}
	}
	if format == "table" {
		formatPolicies(out, policies)
		return nil
	}
	return writeOutput(out, format, policies)
}

// formatPolicies writes a tabular list of policies to w.
func formatPolicies(out io.Writer, policies []model.Policy) {
	if len(policies) == 0 {
		fmt.Fprintln(out, "No policies found.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUMBER\tTYPE\tCOVERAGE\tPREMIUM\tSTATUS\tCREATED")
	for _, p := range policies {
		fmt.Fprintf(w, "%s\t%s\t%.0f\t%.0f\t%s\t%s\n",
			p.PolicyNumber,
			p.Quotation.PolicyType,
			p.Quotation.Coverage,
			p.Quotation.Premium,
			p.Status,
			p.CreatedAt,
		)
	}
	w.Flush() //nolint:errcheck
}

func init() {
	policiesCmd.Flags().StringVar(&policiesFormat, "format", "table", "output format (table|yaml|json)")
	rootCmd.AddCommand(policiesCmd)
}
