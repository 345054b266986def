package donation

import (
	"regexp"
	"strings"
)

// FixRule is one rewrite applied by Fix. Literal rules replace every exact
// occurrence of Literal; pattern rules replace every match of Pattern. The
// replacement is always inserted verbatim.
type FixRule struct {
	Name        string
	Literal     string
	Pattern     *regexp.Regexp
	Replacement string
}

// Apply rewrites html with the rule.
func (r FixRule) Apply(html string) string {
	if r.Pattern != nil {
		return r.Pattern.ReplaceAllLiteralString(html, r.Replacement)
	}
	if r.Literal == "" {
		return html
	}
	return strings.ReplaceAll(html, r.Literal, r.Replacement)
}

// FixReport lists the rules that changed the document, in application order.
type FixReport struct {
	Applied []string `json:"applied,omitempty" yaml:"applied,omitempty"`
}

// Changed reports whether any rule rewrote the document.
func (r FixReport) Changed() bool {
	return len(r.Applied) > 0
}

const labelIndent = "\n    "

var fixRules = []FixRule{
	{
		Name:        "remove-input-closing-tags",
		Literal:     inputClosingTag,
		Replacement: "",
	},
	{
		Name:        "email-input-type",
		Literal:     `<input type="text" name="email">`,
		Replacement: emailInput,
	},
	{
		Name:        "full-name-label",
		Pattern:     regexp.MustCompile(`(?i)Full Name:\s*<input type="text" name="name">`),
		Replacement: fullNameLabel + labelIndent + fullNameInput,
	},
	{
		Name:        "donation-amount-label",
		Pattern:     regexp.MustCompile(`(?i)Donation Amount \(\$\):\s*<input type="number" name="amount">`),
		Replacement: donationAmountLabel + labelIndent + donationAmountInput,
	},
	{
		Name:        "subscribe-label",
		Pattern:     regexp.MustCompile(`(?i)<input type="checkbox" name="newsletter">\s*Subscribe`),
		Replacement: subscribeLabel + labelIndent + subscribeInput,
	},
}

// FixRules returns a copy of the rules Fix applies, in order.
func FixRules() []FixRule {
	out := make([]FixRule, len(fixRules))
	copy(out, fixRules)
	return out
}

// Fix rewrites html with every fix rule in order, each rule operating on the
// output of the previous one. Only documents shaped like the legacy donation
// form converge to a valid form.
func (v *Validator) Fix(html string) string {
	fixed, _ := v.FixWithReport(html)
	return fixed
}

// FixWithReport behaves like Fix and also reports which rules changed the
// document.
func (v *Validator) FixWithReport(html string) (string, FixReport) {
	var report FixReport
	out := html
	for _, rule := range fixRules {
		next := rule.Apply(out)
		if next != out {
			report.Applied = append(report.Applied, rule.Name)
		}
		out = next
	}
	return out, report
}
