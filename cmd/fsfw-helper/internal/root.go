package internal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/fsfw/fsfwhelper/internal/app"
	"github.com/fsfw/fsfwhelper/internal/target"
	"github.com/gookit/color"
	"github.com/qiniu/x/log"
	"github.com/spf13/cobra"
)

var (
	allFlag      bool
	createFlag   bool
	buildFlag    bool
	openFlag     bool
	valgrindFlag bool
	generator    string
	windowsFlag  bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "fsfw-helper <" + strings.Join(target.Kinds, "|") + ">",
	Short: "FSFW helper script",
	Long: `fsfw-helper generates, builds and opens the test or documentation
configuration of the flight software framework.

It can be run from the project root or from one directory below it.

Examples:
  fsfw-helper tests --all
  fsfw-helper tests -b -v
  fsfw-helper docs -c -b -o`,
	Args:          cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs:     target.Kinds,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetOutputLevel(log.Ldebug)
		}
	},
	RunE: runHelper,
}

func init() {
	f := rootCmd.Flags()
	f.BoolVarP(&allFlag, "all", "a", false, "Create, build and open specified type")
	f.BoolVarP(&createFlag, "create", "c", false, "Create docs or test build configuration")
	f.BoolVarP(&buildFlag, "build", "b", false, "Build the specified type")
	f.BoolVarP(&openFlag, "open", "o", false, "Open test or documentation data in webbrowser")
	f.BoolVarP(&valgrindFlag, "valgrind", "v", false, "Run valgrind on generated test binary")
	f.StringVarP(&generator, "generators", "g", target.DefaultGenerator, "CMake generators")
	f.BoolVarP(&windowsFlag, "windows", "w", false, "Run on windows")
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

func runHelper(cmd *cobra.Command, args []string) error {
	req, err := newRequest(args[0])
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		if errors.Is(err, target.ErrNoOperation) {
			fmt.Fprintln(cmd.ErrOrStderr(), color.Warn.Sprintf(
				"Please select at least one operation to perform. Use %s -h for more information", cmd.Name()))
		}
		return err
	}

	a, err := app.NewDefault()
	if err != nil {
		return err
	}
	return a.Run(cmd.Context(), req)
}

// newRequest builds the request from the positional type and the flags.
func newRequest(kind string) (target.Request, error) {
	k, err := target.Parse(kind)
	if err != nil {
		return target.Request{}, err
	}
	req := target.Request{
		Kind:      k,
		Create:    createFlag,
		Build:     buildFlag,
		Open:      openFlag,
		Valgrind:  valgrindFlag,
		Generator: generator,
		Windows:   windowsFlag,
	}
	if allFlag {
		req.Create, req.Build, req.Open = true, true, true
	}
	return req, nil
}
