package template

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/stamp-labs/stamp/internal/branding"
	"github.com/stamp-labs/stamp/internal/config"
)

const (
	// DefaultName is the directory name of the bundled template set.
	DefaultName = "fastapi-backend"

	// templatesDir holds template sets, both next to an installed binary
	// and at the root of a development checkout.
	templatesDir = "templates"
)

// ErrTemplateNotFound reports that the bundled template root is missing or
// not a directory. It is fatal and raised before any destination mutation.
var ErrTemplateNotFound = errors.New("template root not found")

// Locate resolves the absolute path of the bundled template root.
//
// Resolution order: the STAMP_TEMPLATES environment variable, the
// template_root config key, templates/ next to the executable, then
// templates/ in an ancestor of the executable's directory (development
// checkout). An explicit override that does not resolve is an error rather
// than a fallthrough, so a misconfigured path never silently picks up a
// different template.
func Locate() (string, error) {
	if v := os.Getenv(branding.EnvVar("TEMPLATES")); v != "" {
		return checkRoot(v)
	}
	if v := config.Get(config.KeyTemplateRoot); v != "" {
		return checkRoot(v)
	}

	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		if root, err := checkRoot(filepath.Join(dir, templatesDir, DefaultName)); err == nil {
			return root, nil
		}
		for d := dir; ; d = filepath.Dir(d) {
			if root, err := checkRoot(filepath.Join(d, templatesDir, DefaultName)); err == nil {
				return root, nil
			}
			if filepath.Dir(d) == d {
				break
			}
		}
	}

	// Last resort: relative to the working directory (`go run` in-tree).
	if root, err := checkRoot(filepath.Join(templatesDir, DefaultName)); err == nil {
		return root, nil
	}

	return "", fmt.Errorf("%w: set %s or the %q config key",
		ErrTemplateNotFound, branding.EnvVar("TEMPLATES"), config.KeyTemplateRoot)
}

// checkRoot verifies that path exists and is a directory, returning it as an
// absolute path.
func checkRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrTemplateNotFound, abs)
	}

	return abs, nil
}
