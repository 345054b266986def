package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newChecklistCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "checklist [file|-]",
		Short: "Evaluate the donation form requirements checklist",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, source, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			validator, err := a.validator()
			if err != nil {
				return err
			}

			checklist := validator.ValidateAll(html)
			failures := checklist.Failures()
			a.logger.Debug("checklist evaluated",
				zap.String("source", source),
				zap.Stringer("association", validator.AssociationMode()),
				zap.Int("failed", len(failures)),
			)

			out := cmd.OutOrStdout()
			for _, result := range checklist.Results() {
				fmt.Fprintf(out, "[%s] %s\n", verdict(result.Passed), result.Name)
			}
			fmt.Fprintf(out, "%d/%d checks passed\n", len(checklist)-len(failures), len(checklist))
			if len(failures) > 0 {
				return fmt.Errorf("%s: %d of %d checks: %w", source, len(failures), len(checklist), ErrChecklistFailed)
			}
			return nil
		},
	}
}

func verdict(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
