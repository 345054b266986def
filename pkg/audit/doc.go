// Package audit wires the donation checks into a single pipeline: structural
// diagnostics, the checklist, an optional rewrite through the fix rules, and
// optional sanitizing of the rewritten markup. The resulting Report is what the
// report renderers and the CLI consume.
package audit
