// Package report renders session transcripts and writes them to the console
// and to the output directory.
package report

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/defend-your-code/form/internal/domain/entity"
)

//go:embed templates/*.txt
var templateFS embed.FS

// Template names.
const (
	TranscriptTemplate = "transcript"
	ConsoleTemplate    = "console"
)

// Renderer handles transcript template rendering.
type Renderer struct {
	templates *template.Template
}

// NewRenderer creates a new transcript renderer.
func NewRenderer() (*Renderer, error) {
	printer := message.NewPrinter(language.English)

	tmpl, err := template.New("").
		Funcs(template.FuncMap{
			"number": func(n any) string { return printer.Sprintf("%d", n) },
		}).
		ParseFS(templateFS, "templates/*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcript templates: %w", err)
	}

	return &Renderer{templates: tmpl}, nil
}

// Render renders the named template for a transcript.
func (r *Renderer) Render(templateName string, transcript *entity.Transcript) (string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, templateName+".txt", transcript); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", templateName, err)
	}
	return buf.String(), nil
}
