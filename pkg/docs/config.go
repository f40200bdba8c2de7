package docs

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/typekit/pkg/errors"
)

// ConfigFileName is the optional per-repository configuration file.
const ConfigFileName = "typekit.toml"

// Config controls documentation generation.
type Config struct {
	// OutputDir is where generated pages and figures are written.
	OutputDir string `toml:"output_dir"`

	// Figures controls whether SVG figures are generated.
	Figures bool `toml:"figures"`

	// PreviewStyle is the glamour style for terminal previews:
	// "auto", "dark", "light", "notty" or a path to a custom style.
	PreviewStyle string `toml:"preview_style"`
}

// DefaultConfig returns the configuration used when no typekit.toml
// is present.
func DefaultConfig() Config {
	return Config{
		OutputDir:    "docs/reference",
		Figures:      true,
		PreviewStyle: "auto",
	}
}

// LoadConfig reads path and merges it over the defaults. A missing file
// is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	return cfg, nil
}
