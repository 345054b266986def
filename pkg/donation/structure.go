package donation

import (
	"fmt"
	"strings"
)

// RuleID identifies the structural rule that produced a Diagnostic.
type RuleID string

const (
	RuleVoidClosingTag   RuleID = "void-closing-tag"
	RuleLabelAssociation RuleID = "label-association"
	RuleRequiredAttr     RuleID = "required-attribute"
	RuleEmailType        RuleID = "email-type"
)

// Diagnostic describes one violated structural rule.
type Diagnostic struct {
	Rule    RuleID `json:"rule" yaml:"rule"`
	Message string `json:"message" yaml:"message"`
}

// ValidateStructure returns the message of every structural diagnostic, in the
// order the checks run. An empty document yields an empty (nil) slice.
func (v *Validator) ValidateStructure(html string) []string {
	diagnostics := v.Diagnose(html)
	if len(diagnostics) == 0 {
		return nil
	}
	messages := make([]string, 0, len(diagnostics))
	for _, diagnostic := range diagnostics {
		messages = append(messages, diagnostic.Message)
	}
	return messages
}

// Diagnose runs the four structural checks. Each check is independent and
// appends its findings in turn: closing tags, label associations, required
// attributes, then email typing. Findings are not deduplicated. The empty
// document yields no diagnostics.
func (v *Validator) Diagnose(html string) []Diagnostic {
	if html == "" {
		return nil
	}
	var out []Diagnostic
	out = append(out, checkVoidClosingTags(html)...)
	out = append(out, checkLabelAssociations(html)...)
	out = append(out, checkRequiredAttributes(html)...)
	out = append(out, checkEmailType(html)...)
	return out
}

func checkVoidClosingTags(html string) []Diagnostic {
	if !strings.Contains(html, inputClosingTag) {
		return nil
	}
	return []Diagnostic{{
		Rule:    RuleVoidClosingTag,
		Message: "Found </input> closing tags - input elements are void elements",
	}}
}

func checkLabelAssociations(html string) []Diagnostic {
	labelFors := submatches(labelForExactPattern, html)
	if len(labelFors) == 0 {
		return nil
	}
	inputIDs := toSet(submatches(inputIDPattern, html))

	var out []Diagnostic
	for _, forValue := range labelFors {
		if _, ok := inputIDs[forValue]; ok {
			continue
		}
		out = append(out, Diagnostic{
			Rule:    RuleLabelAssociation,
			Message: fmt.Sprintf(`Label with for="%s" has no corresponding input with matching id`, forValue),
		})
	}
	return out
}

func checkRequiredAttributes(html string) []Diagnostic {
	var out []Diagnostic
	for _, tag := range requiredInputPattern.FindAllString(html, -1) {
		if strings.Contains(tag, requiredToken) {
			continue
		}
		// The first type attribute in the tag names the field, which may differ
		// from the alternative that matched when a tag repeats `type`.
		match := typeAttrPattern.FindStringSubmatch(tag)
		if len(match) < 2 {
			continue
		}
		out = append(out, Diagnostic{
			Rule:    RuleRequiredAttr,
			Message: fmt.Sprintf("Input with type %s should have required attribute", match[1]),
		})
	}
	return out
}

func checkEmailType(html string) []Diagnostic {
	if strings.Contains(html, emailTypeAttr) {
		return nil
	}
	return []Diagnostic{{
		Rule:    RuleEmailType,
		Message: `Email input should have type="email" instead of type="text"`,
	}}
}
