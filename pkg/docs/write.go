package docs

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/typekit/pkg/errors"
	"github.com/arthur-debert/typekit/pkg/logging"
)

// Write renders the site to outputDir, creating it when needed. Pages
// become <name>.md and figures <name>.svg. In dry-run mode nothing is
// written; the planned paths are still returned.
func Write(site *Site, outputDir string, dryRun bool) ([]string, error) {
	logger := logging.GetLogger("docs")

	paths := make([]string, 0, len(site.Pages)+len(site.Figures))
	type artifact struct {
		path string
		data []byte
	}
	artifacts := make([]artifact, 0, cap(paths))

	for _, page := range site.Pages {
		path := filepath.Join(outputDir, page.Name+".md")
		paths = append(paths, path)
		artifacts = append(artifacts, artifact{path: path, data: []byte(page.Markdown)})
	}
	for _, fig := range site.Figures {
		path := filepath.Join(outputDir, fig.Name+".svg")
		paths = append(paths, path)
		artifacts = append(artifacts, artifact{path: path, data: fig.SVG})
	}

	if dryRun {
		for _, a := range artifacts {
			logger.Info().Str("path", a.path).Msg("Would write")
		}
		return paths, nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDocsWrite, "failed to create output directory %s", outputDir)
	}

	for _, a := range artifacts {
		if err := os.WriteFile(a.path, a.data, 0644); err != nil {
			return nil, errors.Wrapf(err, errors.ErrDocsWrite, "failed to write %s", a.path)
		}
		logger.Debug().Str("path", a.path).Int("bytes", len(a.data)).Msg("Wrote artifact")
	}

	logger.Info().Int("pages", len(site.Pages)).Int("figures", len(site.Figures)).
		Str("outputDir", outputDir).Msg("Documentation generated")

	return paths, nil
}
