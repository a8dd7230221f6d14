package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/stamp-labs/stamp/internal/logger"
	"github.com/stamp-labs/stamp/internal/scaffold"
	"github.com/stamp-labs/stamp/internal/template"
)

var newForce bool

func init() {
	newCmd.Flags().BoolVar(&newForce, "force", false, "Scaffold into a non-empty destination, overwriting colliding files")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <target>",
	Short: "Scaffold a project into a target directory",
	Long: `Scaffold the bundled project template into <target>.

The target is created if it does not exist. Pass "." to scaffold into the
current directory. A destination that already has content is refused unless
--force is given, in which case colliding files are overwritten and
everything else is left alone.

Examples:
  stamp new my-app
  stamp new . --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := template.Locate()
		if err != nil {
			return err
		}
		logger.Debug("template root: %s\n", root)

		// Manifest problems are warnings; only a failed tool-version gate
		// stops the run, and it does so before any destination write.
		m, err := template.LoadManifest(root)
		if err != nil {
			logger.Warn("Warning: %v\n", err)
		}
		if m != nil {
			warnManifestIssues(root)
			if err := template.CheckMinToolVersion(buildVersion, m.MinToolVersion); err != nil {
				return err
			}
		}

		dst, err := resolveTarget(args[0])
		if err != nil {
			return err
		}

		result, err := scaffold.Run(root, dst, newForce)
		if err != nil {
			return err
		}

		logger.Info("Scaffolded %d files across %d directories at %s\n",
			result.Files, result.Dirs, result.Root)
		if m != nil && m.Name != "" {
			fmt.Printf("Template: %s %s\n", m.Name, m.Version)
		}
		fmt.Println("\nNext steps:")
		fmt.Printf("  cd %s\n", args[0])
		fmt.Println("  see README.md for setup instructions")
		return nil
	},
}

// resolveTarget turns the positional target into an absolute destination
// path. "." means scaffold in place.
func resolveTarget(target string) (string, error) {
	if target == "." {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current directory: %w", err)
		}
		return cwd, nil
	}
	abs, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving target %s: %w", target, err)
	}
	return abs, nil
}

// warnManifestIssues validates template.yaml against its schema and prints
// any issues. Validation never blocks scaffolding.
func warnManifestIssues(root string) {
	res, err := template.ValidateFile(filepath.Join(root, template.ManifestFileName))
	if err != nil {
		logger.Warn("Warning: could not validate %s: %v\n", template.ManifestFileName, err)
		return
	}
	for _, issue := range res.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		logger.Warn("%s: %s\n", template.ManifestFileName, msg)
	}
}
