package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const templateDir = "templates/"

//go:embed templates/*.tmpl
var tplFS embed.FS

// tplCache maps a template name to its parsed *template.Template.
var tplCache sync.Map

func exec(t *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %q: %w", t.Name(), err)
	}
	return buf.String(), nil
}

func load(name TemplateName) (*template.Template, error) {
	strName := string(name)
	if tVal, ok := tplCache.Load(strName); ok {
		if t, okTpl := tVal.(*template.Template); okTpl {
			return t, nil
		}
		return nil, fmt.Errorf("invalid type found in template cache for %q", strName)
	}

	path := templateDir + strName
	t, err := template.New(strName).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		ParseFS(tplFS, path)
	if err != nil {
		return nil, fmt.Errorf("parsing template %q: %w", path, err)
	}
	actual, _ := tplCache.LoadOrStore(strName, t)
	return actual.(*template.Template), nil
}

// Render merges the named template file with data. Parsed templates are cached.
func Render(name TemplateName, data any) (string, error) {
	t, err := load(name)
	if err != nil {
		return "", err
	}
	return exec(t, data)
}

// MustRender is Render for construct code, where a broken template cannot be recovered from.
func MustRender(name TemplateName, data any) string {
	out, err := Render(name, data)
	if err != nil {
		panic(err)
	}
	return out
}
