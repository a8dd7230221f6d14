package template

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckMinToolVersion verifies that the running tool satisfies the template's
// min_tool_version. Development builds ("dev") always pass, as does a
// manifest without the field. A template that requires a newer tool aborts
// before any destination mutation.
func CheckMinToolVersion(toolVersion, minVersion string) error {
	if minVersion == "" || toolVersion == "dev" {
		return nil
	}

	tv, err := parseSemver(toolVersion)
	if err != nil {
		return fmt.Errorf("parsing tool version %q: %w", toolVersion, err)
	}
	mv, err := parseSemver(minVersion)
	if err != nil {
		return fmt.Errorf("parsing min_tool_version %q: %w", minVersion, err)
	}

	if tv.Compare(mv) < 0 {
		return fmt.Errorf("template requires tool version >= %s, have %s", minVersion, toolVersion)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
