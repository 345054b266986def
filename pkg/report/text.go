package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-formaudit/pkg/audit"
	"github.com/goliatone/go-formaudit/pkg/donation"
)

// TextRenderer prints a plain-text summary meant for terminals.
type TextRenderer struct{}

func (TextRenderer) Name() string { return "text" }

func (TextRenderer) ContentType() string { return "text/plain; charset=utf-8" }

func (TextRenderer) Render(_ context.Context, report audit.Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "Source: %s\n", report.Source)
	fmt.Fprintf(&buf, "Association mode: %s\n", report.AssociationMode)
	fmt.Fprintf(&buf, "Result: %s (%d/%d checks passed, %d diagnostics)\n",
		verdict(report.Passed), report.PassedCount(), len(report.Checklist), len(report.Diagnostics))

	writeDiagnostics(&buf, report.Diagnostics)
	writeChecklist(&buf, report.Checklist)

	if fixed := report.Fixed; fixed != nil {
		buf.WriteString("\nFixed document\n")
		if len(fixed.Applied) > 0 {
			fmt.Fprintf(&buf, "Applied rules: %s\n", strings.Join(fixed.Applied, ", "))
		} else {
			buf.WriteString("Applied rules: none\n")
		}
		fmt.Fprintf(&buf, "Checks passed: %d/%d\n", len(fixed.Checklist)-len(fixed.FailedChecks), len(fixed.Checklist))
		if len(fixed.FailedChecks) > 0 {
			names := make([]string, 0, len(fixed.FailedChecks))
			for _, name := range fixed.FailedChecks {
				names = append(names, string(name))
			}
			fmt.Fprintf(&buf, "Still failing: %s\n", strings.Join(names, ", "))
		}
		writeDiagnostics(&buf, fixed.Diagnostics)

		body := fixed.HTML
		if fixed.Sanitized != "" {
			body = fixed.Sanitized
		}
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

func writeDiagnostics(buf *bytes.Buffer, diagnostics []donation.Diagnostic) {
	if len(diagnostics) == 0 {
		return
	}
	buf.WriteString("\nDiagnostics:\n")
	for _, diagnostic := range diagnostics {
		fmt.Fprintf(buf, "  - [%s] %s\n", diagnostic.Rule, diagnostic.Message)
	}
}

func writeChecklist(buf *bytes.Buffer, checklist []donation.CheckResult) {
	if len(checklist) == 0 {
		return
	}
	buf.WriteString("\nChecklist:\n")
	for _, result := range checklist {
		fmt.Fprintf(buf, "  [%s] %s\n", verdict(result.Passed), result.Name)
	}
}

func verdict(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
