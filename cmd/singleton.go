package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	callers int
	value   string
)

// SingletonCmd races many callers on the lazily built instance
var SingletonCmd = &cobra.Command{
	Use:   "singleton",
	Short: "Race concurrent callers on the singleton's first access",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("callers") {
			if callers < 1 {
				return fmt.Errorf("--callers must be at least 1, got %d", callers)
			}
			env.Config.Singleton.Callers = callers
		}
		if cmd.Flags().Changed("value") {
			env.Config.Singleton.Value = value
		}
		return runDemos(cmd, env, []string{"singleton"})
	},
}

func init() {
	SingletonCmd.Flags().IntVarP(&callers, "callers", "n", 100, "number of concurrent callers")
	SingletonCmd.Flags().StringVarP(&value, "value", "v", "FOO", "value prefix each caller supplies")
}
