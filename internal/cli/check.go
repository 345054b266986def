package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [file|-]",
		Short: "Report structural issues in a donation form",
		Long: `Check reports <input> closing tags, labels whose for value has no
matching input id, text/email/number inputs without required and a missing
email-typed input. The command fails when any issue is found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			html, source, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			validator, err := a.validator()
			if err != nil {
				return err
			}

			diagnostics := validator.Diagnose(html)
			a.logger.Debug("structure checked",
				zap.String("source", source),
				zap.Int("diagnostics", len(diagnostics)),
			)

			out := cmd.OutOrStdout()
			if len(diagnostics) == 0 {
				fmt.Fprintf(out, "%s: no structural issues found\n", source)
				return nil
			}
			for _, diagnostic := range diagnostics {
				fmt.Fprintf(out, "%s: [%s] %s\n", source, diagnostic.Rule, diagnostic.Message)
			}
			return fmt.Errorf("%s: %d %w", source, len(diagnostics), ErrDiagnosticsFound)
		},
	}
}
