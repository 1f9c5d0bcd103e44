package cmd

import (
	"github.com/jsando/patterns/catalog"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the available demos",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data := pterm.TableData{{"Category", "Pattern", "Name", "Summary"}}
		for _, d := range catalog.GetDefaultRegistry().List() {
			data = append(data, []string{d.Category, d.Pattern, d.Name, d.Summary})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}
