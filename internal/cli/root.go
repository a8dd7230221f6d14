package cli

import (
	"github.com/spf13/cobra"
	"github.com/stamp-labs/stamp/internal/branding"
	"github.com/stamp-labs/stamp/internal/config"
	"github.com/stamp-labs/stamp/internal/logger"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	debugOutput bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` materializes a predefined project template into a target
directory. Transient paths (.git, node_modules, __pycache__, ...) are never
copied, and a destination that already has content is refused unless --force
is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debugOutput)
		config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugOutput, "debug", false, "Enable debug output")
}

// Execute runs the root command with build info injected via ldflags.
// The returned error still carries the failure kind, so main can map it to
// an exit code with errors.Is.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		logger.Error("Error: %v\n", err)
	}
	return err
}
