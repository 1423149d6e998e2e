// Package render is the template collaborator: it turns an allocation
// payload into artifact text. The emitter treats it as an opaque
// render(template, data) function; the default template produces a C header
// of RTI_VLANID_* defines.
package render

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"
)

//go:embed vlanid.h.tmpl
var defaultTemplate string

// DefaultTemplate returns the embedded header template text.
func DefaultTemplate() string {
	return defaultTemplate
}

// Load reads a custom template file from disk.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(data), nil
}

// Render executes templateText against data and returns the produced text.
func Render(templateText string, data any) (string, error) {
	tmpl, err := template.New("artifact").Parse(templateText)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering template: %w", err)
	}
	return buf.String(), nil
}
