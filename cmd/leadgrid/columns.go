package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"datagrid/visibility"
)

var tableID string

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "Show or reset column visibility",
}

var columnsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show visible columns for the layout's table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		ap, err := setup()
		if err != nil {
			return
		}
		defer ap.close()

		visible := ap.columns.Hydrate(table(ap), ap.layout.Columns)
		offered := visibility.Defaults(ap.layout.Columns).Filter(ap.layout.Columns)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s:\n", table(ap))
		for _, col := range offered {
			mark := " "
			if visible.Has(col.Key) {
				mark = "x"
			}
			fmt.Fprintf(out, "  [%s] %-16s %s\n", mark, col.Key, col.Title())
		}
		return
	},
}

var columnsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget column visibility for the layout's table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		ap, err := setup()
		if err != nil {
			return
		}
		defer ap.close()

		visible := ap.columns.Reset(table(ap), ap.layout.Columns)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d columns visible\n", table(ap), visible.Len())
		return
	},
}

func init() {
	columnsCmd.PersistentFlags().StringVar(&tableID, "table", "", "table id, from layout when empty")
	columnsCmd.AddCommand(columnsShowCmd, columnsResetCmd)
}

func table(ap *app) string {
	if tableID != "" {
		return tableID
	}
	return ap.layout.Table
}
