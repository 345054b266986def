// Package formaudit validates and repairs donation form markup. The root
// package re-exports the common entry points of pkg/donation and pkg/audit so
// callers can start with a single import.
package formaudit

import (
	"github.com/goliatone/go-formaudit/pkg/audit"
	"github.com/goliatone/go-formaudit/pkg/donation"
)

// Checklist aliases donation.Checklist.
type Checklist = donation.Checklist

// Diagnostic aliases donation.Diagnostic.
type Diagnostic = donation.Diagnostic

// Report aliases audit.Report.
type Report = audit.Report

// ValidateFormStructure returns the structural issues found in html, in the
// order the checks run. A clean document yields an empty result.
func ValidateFormStructure(html string) []string {
	return donation.ValidateStructure(html)
}

// ValidateAllRequirements evaluates the fourteen checklist entries against
// html using strict label association.
func ValidateAllRequirements(html string) Checklist {
	return donation.ValidateAll(html)
}

// FixFormHTML rewrites html, removing input closing tags and adding the
// labels, ids and required attributes the checklist expects.
func FixFormHTML(html string) string {
	return donation.Fix(html)
}

// GenerateCorrectedHTML returns the hand-authored reference donation form.
func GenerateCorrectedHTML() string {
	return donation.CorrectedHTML()
}

// NewValidator exposes the configurable validator constructor.
func NewValidator(options ...donation.Option) *donation.Validator {
	return donation.New(options...)
}

// NewAuditor exposes the audit pipeline constructor.
func NewAuditor(options ...audit.Option) *audit.Auditor {
	return audit.New(options...)
}
