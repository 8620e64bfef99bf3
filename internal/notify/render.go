package notify

import (
	"fmt"
	"html/template"
	"strings"

	_ "embed"

	"github.com/ppiankov/rssmon/internal/errs"
)

//go:embed templates/mail.html
var mailTemplate string

// templateName is the fixed identifier of the mail template.
const templateName = "mail.html"

// Renderer produces the HTML mail body from prepared items. Field values
// are escaped contextually by html/template.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer compiles the embedded mail template.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New(templateName).Parse(mailTemplate)
	if err != nil {
		return nil, errs.Wrap(errs.KindRender, fmt.Errorf("parse template %s: %w", templateName, err))
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the mail template with items bound as .Items.
func (r *Renderer) Render(items []Item) (string, error) {
	data := struct {
		Items []Item
	}{Items: items}

	var buf strings.Builder
	if err := r.tmpl.ExecuteTemplate(&buf, templateName, data); err != nil {
		return "", errs.Wrap(errs.KindRender, fmt.Errorf("render %s: %w", templateName, err))
	}
	return buf.String(), nil
}
