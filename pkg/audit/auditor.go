package audit

import (
	"context"

	"go.uber.org/zap"

	"github.com/goliatone/go-formaudit/pkg/donation"
	"github.com/goliatone/go-formaudit/pkg/sanitize"
)

// Option customises the Auditor.
type Option func(*Auditor)

// WithValidator injects the donation validator, e.g. one configured with a
// different association mode.
func WithValidator(validator *donation.Validator) Option {
	return func(a *Auditor) {
		a.validator = validator
	}
}

// WithSanitizer replaces the sanitizer applied to fixed markup.
func WithSanitizer(sanitizer sanitize.Sanitizer) Option {
	return func(a *Auditor) {
		a.sanitizer = sanitizer
	}
}

// WithLogger attaches a zap logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Auditor) {
		a.logger = logger
	}
}

// WithFix enables rewriting the document and re-running the checks against the
// rewritten markup.
func WithFix(enabled bool) Option {
	return func(a *Auditor) {
		a.fix = enabled
	}
}

// WithSanitize sanitizes the rewritten markup. It only has an effect together
// with WithFix.
func WithSanitize(enabled bool) Option {
	return func(a *Auditor) {
		a.sanitize = enabled
	}
}

// Auditor produces Reports for donation form documents.
type Auditor struct {
	validator *donation.Validator
	sanitizer sanitize.Sanitizer
	logger    *zap.Logger
	fix       bool
	sanitize  bool
}

// New constructs an Auditor. Missing dependencies fall back to the default
// validator, the form sanitizer and a no-op logger.
func New(options ...Option) *Auditor {
	a := &Auditor{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	a.applyDefaults()
	return a
}

func (a *Auditor) applyDefaults() {
	if a.validator == nil {
		a.validator = donation.New()
	}
	if a.sanitizer == nil {
		a.sanitizer = sanitize.FormSanitizer{}
	}
	if a.logger == nil {
		a.logger = zap.NewNop()
	}
}

// Audit inspects html and returns the resulting report. source is a display
// label (file path, "stdin", ...) and is copied into the report verbatim. The
// only error is the context error when ctx is already done.
func (a *Auditor) Audit(ctx context.Context, source, html string) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	diagnostics := a.validator.Diagnose(html)
	checklist := a.validator.ValidateAll(html)

	report := Report{
		Source:          source,
		AssociationMode: a.validator.AssociationMode(),
		Diagnostics:     nonNilDiagnostics(diagnostics),
		Checklist:       checklist.Results(),
		FailedChecks:    checklist.Failures(),
		Passed:          len(diagnostics) == 0 && checklist.Passed(),
	}

	a.logger.Debug("audited document",
		zap.String("source", source),
		zap.Int("bytes", len(html)),
		zap.Int("diagnostics", len(diagnostics)),
		zap.Int("failed_checks", len(report.FailedChecks)),
		zap.String("association", string(report.AssociationMode)),
	)

	if !a.fix {
		return report, nil
	}

	fixed, fixReport := a.validator.FixWithReport(html)
	fixedChecklist := a.validator.ValidateAll(fixed)
	outcome := &FixOutcome{
		HTML:         fixed,
		Applied:      fixReport.Applied,
		Diagnostics:  nonNilDiagnostics(a.validator.Diagnose(fixed)),
		Checklist:    fixedChecklist.Results(),
		FailedChecks: fixedChecklist.Failures(),
	}
	if a.sanitize {
		outcome.Sanitized = a.sanitizer.Sanitize(fixed)
	}
	report.Fixed = outcome

	a.logger.Debug("applied fix rules",
		zap.String("source", source),
		zap.Strings("applied", fixReport.Applied),
		zap.Int("remaining_failed_checks", len(outcome.FailedChecks)),
	)
	return report, nil
}

func nonNilDiagnostics(in []donation.Diagnostic) []donation.Diagnostic {
	if in == nil {
		return []donation.Diagnostic{}
	}
	return in
}
