// Package donation inspects donation form markup for the structural and
// accessibility defects tracked by the donation form checklist: `</input>`
// closing tags on void elements, labels without matching inputs, text, email
// and number inputs without `required`, and an email field that is not typed
// as `email`.
//
// The package treats the document purely as text. Every check is a regular
// expression or substring test, so malformed or unrelated input never fails;
// it only produces no findings for the rules that do not match. Fix applies a
// fixed set of rewrites shaped after the legacy donation form and is not a
// general HTML repair tool. CorrectedHTML returns the hand-authored reference
// document that satisfies every check.
package donation
