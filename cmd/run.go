package cmd

import (
	"errors"

	"github.com/jsando/patterns/catalog"
	"github.com/spf13/cobra"
)

var runAll bool

var RunCmd = &cobra.Command{
	Use:   "run [NAME...]",
	Short: "Run one or more demos, or all of them with --all",
	RunE: func(cmd *cobra.Command, args []string) error {
		names := args
		if runAll {
			if len(args) > 0 {
				return errors.New("--all cannot be combined with demo names")
			}
			names = catalog.GetDefaultRegistry().Names()
		}
		if len(names) == 0 {
			return errors.New("no demo given (hint: 'patterns list' shows them, or use --all)")
		}
		for _, name := range names {
			if _, err := catalog.GetDefaultRegistry().Get(name); err != nil {
				return err
			}
		}
		env, err := newEnv()
		if err != nil {
			return err
		}
		return runDemos(cmd, env, names)
	},
}

func init() {
	RunCmd.Flags().BoolVarP(&runAll, "all", "a", false, "run every demo")
}
