package scaffold

import (
	"fmt"
)

// Result summarizes a completed scaffold run.
type Result struct {
	Root  string // destination root
	Dirs  int    // directories created or reused
	Files int    // files written
}

// Run copies the template tree rooted at templateRoot into dst. The
// destination is validated once up front; on a conflict nothing is written.
// A failure mid-copy leaves the partial tree in place — re-running with
// force after fixing the underlying cause recovers cleanly.
func Run(templateRoot, dst string, force bool) (*Result, error) {
	if err := CheckDestination(dst, force); err != nil {
		return nil, err
	}

	res := &Result{Root: dst}
	if err := copyTree(templateRoot, dst, res); err != nil {
		return nil, fmt.Errorf("scaffolding into %s: %w", dst, err)
	}

	return res, nil
}
