package audit

import "github.com/goliatone/go-formaudit/pkg/donation"

// Report is the outcome of auditing one document.
type Report struct {
	Source          string                   `json:"source" yaml:"source"`
	AssociationMode donation.AssociationMode `json:"association_mode" yaml:"association_mode"`
	Passed          bool                     `json:"passed" yaml:"passed"`
	Diagnostics     []donation.Diagnostic    `json:"diagnostics" yaml:"diagnostics"`
	Checklist       []donation.CheckResult   `json:"checklist" yaml:"checklist"`
	FailedChecks    []donation.CheckName     `json:"failed_checks,omitempty" yaml:"failed_checks,omitempty"`
	Fixed           *FixOutcome              `json:"fixed,omitempty" yaml:"fixed,omitempty"`
}

// FixOutcome describes the rewritten document and how it fares against the
// same checks.
type FixOutcome struct {
	HTML         string                 `json:"html" yaml:"html"`
	Sanitized    string                 `json:"sanitized,omitempty" yaml:"sanitized,omitempty"`
	Applied      []string               `json:"applied,omitempty" yaml:"applied,omitempty"`
	Diagnostics  []donation.Diagnostic  `json:"diagnostics" yaml:"diagnostics"`
	Checklist    []donation.CheckResult `json:"checklist" yaml:"checklist"`
	FailedChecks []donation.CheckName   `json:"failed_checks,omitempty" yaml:"failed_checks,omitempty"`
}

// PassedCount returns how many checklist entries hold.
func (r Report) PassedCount() int {
	return len(r.Checklist) - len(r.FailedChecks)
}
