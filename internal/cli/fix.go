package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formaudit/pkg/sanitize"
)

func newFixCommand(a *app) *cobra.Command {
	var (
		output string
		write  bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "fix [file|-]",
		Short: "Rewrite a donation form into the passing shape",
		Long: `Fix removes <input> closing tags, types the email input and adds the
missing labels, ids and required attributes. The result goes to stdout,
to --output, or back to the input file with --write. --sanitize strips
everything but form markup and does not apply to --write.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if write && (len(args) == 0 || args[0] == "-") {
				return ErrWriteNeedsFile
			}
			if write && output != "" {
				return fmt.Errorf("--write and --output are mutually exclusive")
			}

			html, source, err := readDocument(cmd, args)
			if err != nil {
				return err
			}
			validator, err := a.validator()
			if err != nil {
				return err
			}

			// Sanitizing drops the document shell, so in-place rewrites keep
			// the fixed document as is.
			sanitized := a.cfg.Sanitize && !write
			if a.cfg.Sanitize && write {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: sanitize is ignored with --write\n", source)
			}

			fixed, fixReport := validator.FixWithReport(html)
			if sanitized {
				fixed = sanitize.Form(fixed)
			}
			a.logger.Info("document fixed",
				zap.String("source", source),
				zap.Strings("applied", fixReport.Applied),
				zap.Bool("sanitized", sanitized),
			)

			target := output
			if write {
				target = source
				if !fixReport.Changed() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: already fixed, nothing to write\n", source)
					return nil
				}
				if !yes {
					ok, err := a.confirmer.Confirm(cmd.Context(), fmt.Sprintf("Overwrite %s?", source), false)
					if err != nil {
						return err
					}
					if !ok {
						return ErrAborted
					}
				}
			}

			if target == "" {
				out := cmd.OutOrStdout()
				fmt.Fprint(out, fixed)
				if !strings.HasSuffix(fixed, "\n") {
					fmt.Fprintln(out)
				}
				return nil
			}
			if err := os.WriteFile(target, []byte(fixed), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%d rules applied)\n", target, len(fixReport.Applied))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", "", "write the fixed document to this file")
	flags.BoolVarP(&write, "write", "w", false, "rewrite the input file in place")
	flags.BoolVarP(&yes, "yes", "y", false, "skip the overwrite confirmation")
	flags.Bool("sanitize", false, "sanitize the fixed document (not applied with --write)")
	return cmd
}
