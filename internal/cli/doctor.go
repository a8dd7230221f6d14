package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/stamp-labs/stamp/internal/logger"
	"github.com/stamp-labs/stamp/internal/template"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the stamp installation",
	Long:  `Verify that the bundled template root resolves, its manifest is valid, and the current directory is writable.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		failed := false

		// Template root resolution.
		root, err := template.Locate()
		if err != nil {
			logger.Error("✗ template root: %v\n", err)
			failed = true
		} else {
			logger.Info("✓ template root: %s\n", root)

			if err := checkManifest(root); err != nil {
				failed = true
			}
		}

		// Destination writability: scaffolding writes into the working
		// directory or a sibling of it.
		if err := checkWritable("."); err != nil {
			logger.Error("✗ working directory: %v\n", err)
			failed = true
		} else {
			logger.Info("✓ working directory is writable\n")
		}

		if failed {
			return errors.New("doctor found problems")
		}
		fmt.Println("\nAll checks passed.")
		return nil
	},
}

// checkManifest reports the template manifest's state. A missing manifest is
// fine; an invalid one is reported but only counts as a failure when it
// cannot be parsed at all.
func checkManifest(root string) error {
	m, err := template.LoadManifest(root)
	if err != nil {
		logger.Error("✗ %s: %v\n", template.ManifestFileName, err)
		return err
	}
	if m == nil {
		logger.Info("✓ no %s (optional)\n", template.ManifestFileName)
		return nil
	}

	res, err := template.ValidateFile(filepath.Join(root, template.ManifestFileName))
	if err != nil {
		logger.Warn("? %s: validation unavailable: %v\n", template.ManifestFileName, err)
		return nil
	}
	if res.Valid {
		logger.Info("✓ %s: %s %s\n", template.ManifestFileName, m.Name, m.Version)
		return nil
	}
	for _, issue := range res.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		logger.Warn("? %s: %s\n", template.ManifestFileName, msg)
	}
	return nil
}

// checkWritable verifies that dir accepts new files by creating and removing
// a probe file.
func checkWritable(dir string) error {
	probe := filepath.Join(dir, ".stamp-doctor-probe")
	f, err := os.Create(probe)
	if err != nil {
		return fmt.Errorf("not writable: %w", err)
	}
	f.Close()
	return os.Remove(probe)
}
