// Package template defines the template rendering contract used by the HTML
// report renderer. Engines live in subpackages so callers can swap the
// implementation without touching the report code.
package template
