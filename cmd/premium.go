package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sells-group/quote-wizard/internal/i18n"
	"github.com/sells-group/quote-wizard/internal/model"
	"github.com/sells-group/quote-wizard/internal/wizard"
)

var (
	premiumCoverage float64
	premiumDuration int
)

var premiumCmd = &cobra.Command{
	Use:   "premium",
	Short: "Print the premium derived for a coverage and duration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPremium(os.Stdout, localizer(), premiumCoverage, premiumDuration)
	},
}

func runPremium(out io.Writer, loc *i18n.Localizer, coverage float64, duration int) error {
	form := wizard.QuotationForm{PolicyType: "any", Coverage: coverage, Duration: duration}
	if err := wizard.Validate(form); err != nil {
		var fe wizard.FieldErrors
		if errors.As(err, &fe) {
			for field, msg := range fe.Translate(loc) {
				fmt.Fprintf(out, "%s: %s\n", field, msg)
			}
		}
		return err
	}

	premium := model.PremiumFor(coverage, duration)
	fmt.Fprintf(out, "coverage: %s\nduration: %d\npremium: %s\n",
		loc.Amount(coverage), duration, loc.Amount(premium))
	return nil
}

func init() {
	premiumCmd.Flags().Float64Var(&premiumCoverage, "coverage", 100000, "coverage amount")
	premiumCmd.Flags().IntVar(&premiumDuration, "duration", 1, "duration in years")
	rootCmd.AddCommand(premiumCmd)
}
