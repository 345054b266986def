package report

import (
	"context"

	"github.com/goliatone/go-formaudit/pkg/audit"
)

// Renderer converts an audit report into a byte representation.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, report audit.Report) ([]byte, error)
}
