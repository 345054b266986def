// Package gotemplate implements template.TemplateRenderer on top of a pongo2
// template set. Templates load from a base directory, an fs.FS, or both.
package gotemplate
