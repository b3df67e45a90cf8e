package internal

import (
	"context"
	"os"

	"github.com/fsfw/fsfwhelper/internal/app"
	"github.com/fsfw/fsfwhelper/internal/target"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	openFlag bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "fsfw-coverage",
	Short: "Build the unit tests and their coverage report",
	Long: `fsfw-coverage finds the unit test build directory (creating and
configuring one when none exists), builds the coverage target and
optionally opens the HTML report in the default browser.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		}
	},
	RunE: runCoverage,
}

func init() {
	rootCmd.Flags().BoolVarP(&openFlag, "open", "o", false, "Open coverage data in webbrowser")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Error(err)
		os.Exit(app.ExitCode(err))
	}
}

func runCoverage(cmd *cobra.Command, args []string) error {
	a, err := app.NewDefault()
	if err != nil {
		return err
	}
	return a.Run(cmd.Context(), newRequest())
}

func newRequest() target.Request {
	return target.Request{
		Kind:      target.Tests,
		Build:     true,
		Open:      openFlag,
		Generator: target.DefaultGenerator,
	}
}
