package template

import (
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"
)

// ManifestFileName is the metadata file at the template root. It describes
// the template set itself and is never copied into scaffolded output.
const ManifestFileName = "template.yaml"

// Manifest is the parsed template.yaml.
type Manifest struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	Version        string `yaml:"version"`
	MinToolVersion string `yaml:"min_tool_version"`
}

// LoadManifest reads and parses template.yaml from the template root.
// A template without a manifest is valid; (nil, nil) is returned.
func LoadManifest(root string) (*Manifest, error) {
	path := filepath.Join(root, ManifestFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &m, nil
}
