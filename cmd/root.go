package cmd

import (
	"fmt"
	"os"

	"github.com/jsando/patterns/catalog"
	"github.com/jsando/patterns/config"
	"github.com/jsando/patterns/console"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	envFile     string
	quiet       bool
	interactive bool
)

// RootCmd is the patterns command line
var RootCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Run design pattern demos",
	Long: `patterns - a catalog of creational and structural design pattern demos.

Use 'patterns list' to see the demos and 'patterns run NAME' to run one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "YAML settings file (optional)")
	RootCmd.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, ".env file with PATTERNS_* variables (optional)")
	RootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only show warnings, errors and results")
	RootCmd.PersistentFlags().BoolVarP(&interactive, "interactive", "i", false, "ask before taking actions a demo would confirm")

	RootCmd.AddCommand(ListCmd)
	RootCmd.AddCommand(RunCmd)
	RootCmd.AddCommand(SingletonCmd)
	RootCmd.AddCommand(RecordsCmd)
	RootCmd.AddCommand(VersionCmd)
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

// newEnv loads settings and builds the environment demos run in.
func newEnv() (catalog.Env, error) {
	cfg, err := config.Load(configPath, envFile)
	if err != nil {
		return catalog.Env{}, fmt.Errorf("loading settings: %w", err)
	}
	env := catalog.Env{
		Log:    console.NewRunLog(quiet),
		Config: cfg,
	}
	if interactive {
		env.Confirm = confirm
	}
	return env, nil
}

func confirm(prompt string) bool {
	ok, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(true).Show(prompt)
	if err != nil {
		pterm.Warning.Printf("could not read answer: %s\n", err)
		return false
	}
	return ok
}

// runDemos runs names against the default registry and prints the summary.
func runDemos(cmd *cobra.Command, env catalog.Env, names []string) error {
	err := catalog.GetDefaultRegistry().Run(cmd.Context(), env, names...)
	if l, ok := env.Log.(interface{ RunFinish() }); ok {
		l.RunFinish()
	}
	return err
}
