package formaudit

import (
	"io/fs"

	"github.com/goliatone/go-formaudit/pkg/report"
)

// EmbeddedTemplates exposes the built-in HTML report templates so callers can
// reuse or extend them without importing the report package directly.
func EmbeddedTemplates() fs.FS {
	return report.TemplatesFS()
}
