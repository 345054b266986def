// Package sanitize strips executable content from donation form markup while
// keeping the elements and attributes the form checklist cares about.
package sanitize
