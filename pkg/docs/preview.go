package docs

import (
	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/typekit/pkg/errors"
)

// Preview renders a page's markdown for the terminal using glamour.
// Style follows Config.PreviewStyle: "auto" detects from the terminal,
// otherwise the named or custom style is used.
func Preview(page Page, style string) (string, error) {
	var options []glamour.TermRendererOption

	if style != "" && style != "auto" {
		options = append(options, glamour.WithStylePath(style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrDocsRender, "failed to create markdown renderer")
	}

	rendered, err := renderer.Render(page.Markdown)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrDocsRender, "failed to render page %s", page.Name)
	}

	return rendered, nil
}
