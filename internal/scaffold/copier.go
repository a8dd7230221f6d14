package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/stamp-labs/stamp/internal/platform"
)

// copyTree recursively copies src to dst, skipping excluded basenames and
// recording created entries in res. Directories are created idempotently;
// files are written byte-for-byte with the source's permission bits.
func copyTree(src, dst string, res *Result) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("reading template entry %s: %w", src, err)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return fmt.Errorf("creating directory %s: %w", dst, err)
	}
	res.Dirs++

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", src, err)
	}

	for _, entry := range entries {
		if Excluded(entry.Name()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyTree(srcPath, dstPath, res); err != nil {
				return err
			}
			continue
		}

		// Stat follows symlinks, so a link to a regular file is copied as
		// its target's content. Links to directories and other special
		// files are skipped: the output must never reference anything
		// outside itself.
		info, err := os.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("reading template entry %s: %w", srcPath, err)
		}
		if !info.Mode().IsRegular() {
			continue
		}

		if err := copyFile(srcPath, dstPath, info.Mode()); err != nil {
			return err
		}
		res.Files++
	}

	return nil
}

// copyFile copies a single file from src to dst, preserving permissions.
func copyFile(src, dst string, mode os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("reading %s: %w", src, err)
	}

	if err := os.WriteFile(dst, data, mode.Perm()); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}

	// WriteFile applies the mode only when it creates the file. An overwrite
	// under force keeps the old bits, so chmod explicitly.
	if err := platform.Chmod(dst, mode.Perm()); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", dst, err)
	}

	return nil
}
