package scaffold

import (
	"fmt"
	"os"
)

// CheckDestination decides whether scaffolding into dst may proceed. An
// absent or empty destination always proceeds. A destination with content
// proceeds only when force is set, in which case colliding relative paths
// will be overwritten. The check runs once, before any copy work, so a
// conflict never leaves a half-scaffolded directory behind.
func CheckDestination(dst string, force bool) error {
	info, err := os.Stat(dst)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspecting destination %s: %w", dst, err)
	}

	if !info.IsDir() {
		// A file in the way cannot be scaffolded into, force or not.
		return fmt.Errorf("%w: %s exists and is not a directory", ErrDestinationConflict, dst)
	}

	entries, err := os.ReadDir(dst)
	if err != nil {
		return fmt.Errorf("reading destination %s: %w", dst, err)
	}
	if len(entries) == 0 || force {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrDestinationConflict, dst)
}
