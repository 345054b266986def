package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formaudit/pkg/audit"
	"github.com/goliatone/go-formaudit/pkg/report"
)

func newAuditCommand(a *app) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "audit [file|-]",
		Short: "Produce a full audit report",
		Long: `Audit runs the structural checks and the requirements checklist and
renders the result as text, json, yaml or html. With --fix the report also
carries the rewritten document and its post-fix results.`,
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

			registry, err := report.NewDefaultRegistry(report.WithTemplatesDir(a.cfg.TemplatesDir))
			if err != nil {
				return err
			}
			renderer, err := registry.Get(a.cfg.Format)
			if err != nil {
				return err
			}

			auditor := audit.New(
				audit.WithValidator(validator),
				audit.WithLogger(a.logger),
				audit.WithFix(fix),
				audit.WithSanitize(a.cfg.Sanitize),
			)
			result, err := auditor.Audit(cmd.Context(), source, html)
			if err != nil {
				return err
			}

			payload, err := renderer.Render(cmd.Context(), result)
			if err != nil {
				return fmt.Errorf("render %s report: %w", renderer.Name(), err)
			}
			_, err = cmd.OutOrStdout().Write(payload)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringP("format", "f", "", "report format: text, json, yaml, html")
	flags.BoolVar(&fix, "fix", false, "include the rewritten document in the report")
	flags.Bool("sanitize", false, "sanitize the rewritten document")
	flags.String("templates", "", "directory holding templates/report.tpl for the html format")
	return cmd
}
