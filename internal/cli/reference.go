package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formaudit/pkg/donation"
)

func newReferenceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reference",
		Short: "Print the corrected reference donation form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), donation.CorrectedHTML())
			return err
		},
	}
}

func newDemoCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the checklist and fixer against the legacy donation form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			validator, err := a.validator()
			if err != nil {
				return err
			}
			legacy := donation.LegacyFormHTML()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Validation Results:")
			for _, result := range validator.ValidateAll(legacy).Results() {
				fmt.Fprintf(out, "  [%s] %s\n", verdict(result.Passed), result.Name)
			}
			fmt.Fprintf(out, "\nFixed HTML:\n%s\n", validator.Fix(legacy))
			fmt.Fprintf(out, "\nCorrected HTML:\n%s\n", donation.CorrectedHTML())
			return nil
		},
	}
}
