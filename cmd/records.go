package cmd

import (
	"github.com/spf13/cobra"
)

var station string

// RecordsCmd lists the police station records kept in the process-wide registry
var RecordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show the police station records singleton",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := newEnv()
		if err != nil {
			return err
		}
		if station != "" {
			env.Config.Records.StationName = station
		}
		return runDemos(cmd, env, []string{"singleton-records"})
	},
}

func init() {
	RecordsCmd.Flags().StringVarP(&station, "station", "s", "", "station name (overrides settings)")
}
