// Package report renders audit.Report values. Renderers are looked up by name
// through a Registry; NewDefaultRegistry wires the built-in text, json, yaml
// and html renderers. The html renderer executes the embedded report.tpl
// through a template.TemplateRenderer so callers can supply their own bundle.
package report
