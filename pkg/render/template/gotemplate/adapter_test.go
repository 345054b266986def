package gotemplate_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
	"testing"

	"github.com/goliatone/go-formaudit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-formaudit/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl testdata/templates/*.html
var embeddedTemplates embed.FS

func TestEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := "Hello Ada!"
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.RenderTemplate("use-global.tpl", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "staging" {
		t.Fatalf("want %q got %q", "staging", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("want %q got %q", "ADA!", got)
	}

	if err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) { return input, nil }); err == nil {
		t.Fatalf("expected duplicate filter registration to fail")
	}
}

func TestEngine_StructDataUsesJSONNames(t *testing.T) {
	type check struct {
		Name   string `json:"name"`
		Passed bool   `json:"passed"`
	}
	data := struct {
		Checks []check `json:"checks"`
	}{
		Checks: []check{{Name: "a", Passed: true}, {Name: "b", Passed: false}},
	}

	got, err := newEngine(t).RenderTemplate("checks", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "a=PASS;b=FAIL;"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestEngine_RenderString(t *testing.T) {
	got, err := newEngine(t).RenderString("{{ value|trim }}", map[string]any{"value": "  padded  "})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "padded" {
		t.Fatalf("want %q got %q", "padded", got)
	}
}

func TestEngine_WithExtension(t *testing.T) {
	engine := newEngine(t, gotemplate.WithExtension("html"))

	got, err := engine.RenderTemplate("plain", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if want := "plain Ada"; got != want {
		t.Fatalf("want %q got %q", want, got)
	}
}

func TestEngine_WithGlobalData(t *testing.T) {
	engine := newEngine(t, gotemplate.WithGlobalData(map[string]any{
		"settings": map[string]any{"env": "production"},
	}))

	got, err := engine.RenderTemplate("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "production" {
		t.Fatalf("want %q got %q", "production", got)
	}
}

func TestNew_ConcurrentConstruction(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			engine, err := gotemplate.New(gotemplate.WithFS(embeddedTemplates))
			if err != nil {
				t.Errorf("new engine: %v", err)
				return
			}
			if _, err := engine.RenderString("{{ ok|passfail }}", map[string]any{"ok": true}); err != nil {
				t.Errorf("render string: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestEngine_MissingTemplate(t *testing.T) {
	if _, err := newEngine(t).RenderTemplate("nope", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestNew_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error when no template source is configured")
	}
}

func newEngine(t *testing.T, options ...gotemplate.Option) *gotemplate.Engine {
	t.Helper()

	sub, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	engine, err := gotemplate.New(append([]gotemplate.Option{gotemplate.WithFS(sub)}, options...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
