package report

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-formaudit/pkg/audit"
	rendertemplate "github.com/goliatone/go-formaudit/pkg/render/template"
	"github.com/goliatone/go-formaudit/pkg/render/template/gotemplate"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

const reportTemplate = "templates/report.tpl"

// TemplatesFS exposes the embedded report templates so callers can copy or
// extend them.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// HTMLOption configures the html renderer.
type HTMLOption func(*htmlConfig)

type htmlConfig struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	title            string
}

// WithTemplatesFS supplies an alternate template bundle. It must contain
// templates/report.tpl.
func WithTemplatesFS(files fs.FS) HTMLOption {
	return func(cfg *htmlConfig) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) HTMLOption {
	return func(cfg *htmlConfig) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) HTMLOption {
	return func(cfg *htmlConfig) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTitle overrides the page title.
func WithTitle(title string) HTMLOption {
	return func(cfg *htmlConfig) {
		if title != "" {
			cfg.title = title
		}
	}
}

// HTMLRenderer renders the report as a standalone HTML page.
type HTMLRenderer struct {
	templates rendertemplate.TemplateRenderer
}

// NewHTMLRenderer constructs the html renderer backed by the embedded
// templates unless overridden.
func NewHTMLRenderer(options ...HTMLOption) (*HTMLRenderer, error) {
	cfg := htmlConfig{
		templateFS: embeddedTemplates,
		title:      "Donation form audit",
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	globals := map[string]any{"title": cfg.title}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithGlobalData(globals),
		)
		if err != nil {
			return nil, fmt.Errorf("report: configure template renderer: %w", err)
		}
		renderer = engine
	} else if err := renderer.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("report: configure template globals: %w", err)
	}

	return &HTMLRenderer{templates: renderer}, nil
}

func (r *HTMLRenderer) Name() string {
	return "html"
}

func (r *HTMLRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *HTMLRenderer) Render(ctx context.Context, report audit.Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("report: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(reportTemplate, map[string]any{
		"report":       report,
		"passed_count": report.PassedCount(),
	})
	if err != nil {
		return nil, fmt.Errorf("report: render html: %w", err)
	}
	return []byte(result), nil
}
