package donation

import (
	_ "embed"
)

//go:embed assets/corrected.html
var correctedHTML string

//go:embed assets/legacy.html
var legacyHTML string

// CorrectedHTML returns the reference donation form. Every checklist entry
// evaluates to true against it and repeated calls return identical text.
func CorrectedHTML() string {
	return correctedHTML
}

// LegacyFormHTML returns the original, defective donation form the fix rules
// were written against. It is the document the demo command audits.
func LegacyFormHTML() string {
	return legacyHTML
}
