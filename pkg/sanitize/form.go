package sanitize

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans untrusted markup. *bluemonday.Policy satisfies it.
type Sanitizer interface {
	Sanitize(raw string) string
}

// FormSanitizer is the Sanitizer backed by Form.
type FormSanitizer struct{}

func (FormSanitizer) Sanitize(raw string) string {
	return Form(raw)
}

var (
	formPolicyOnce sync.Once
	formPolicy     *bluemonday.Policy
)

// bluemonday writes boolean attributes as `required=""`; the checklist matches
// the bare form.
var emptyBooleanAttrPattern = regexp.MustCompile(` (required|checked|novalidate)=""`)

// Form returns html with everything but form markup removed. Scripts, styles,
// event handler attributes and unknown elements are dropped; text content of
// removed wrapper elements is kept. The document shell (doctype, html, head,
// body) is not form markup and is removed too. Blank input yields an empty
// string.
func Form(html string) string {
	trimmed := strings.TrimSpace(html)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(normalizeBooleanAttrs(FormPolicy().Sanitize(trimmed)))
}

func normalizeBooleanAttrs(html string) string {
	return emptyBooleanAttrPattern.ReplaceAllString(html, " $1")
}

// FormPolicy exposes the shared policy used by Form.
func FormPolicy() *bluemonday.Policy {
	formPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("form", "fieldset", "legend", "label", "input", "h1", "h2", "p", "div", "span")
		policy.AllowNoAttrs().OnElements("form", "fieldset", "legend", "label", "h1", "h2", "p", "div", "span")

		policy.AllowAttrs("for", "id").OnElements("label")
		policy.AllowAttrs(
			"type", "id", "name", "value", "required", "checked",
			"placeholder", "min", "max", "step", "autocomplete",
		).OnElements("input")
		policy.AllowAttrs("id", "name", "novalidate").OnElements("form")
		policy.AllowAttrs("id", "class").OnElements("fieldset", "div", "span", "p")

		formPolicy = policy
	})
	return formPolicy
}
