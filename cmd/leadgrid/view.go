package main

import (
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"datagrid"
)

var (
	viewCriteria = &criteriaFlags{}
	exportDir    string
)

var viewCmd = &cobra.Command{
	Use:   "view <file>",
	Short: "Browse records in the terminal",
	Long: `Browse records in the terminal.

Keys:
  j/k   move           h/l   focus column
  space select row     a     select page     u  clear selection
  s     sort column    n/p   next/prev page  +/- rows per page
  c     columns        d     record detail   x  export csv
  q     quit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {

		ap, err := setup()
		if err != nil {
			return
		}
		defer ap.close()

		err = ap.load(args[0])
		if err != nil {
			return
		}

		model := datagrid.NewModel(ap.ctx, ap.duck, ap.layout, ap.filter(viewCriteria.criteria(cmd)), ap.columns, exportDir, ap.logger)

		_, err = tea.NewProgram(model, tea.WithContext(ap.ctx)).Run()
		if err != nil {
			ap.logger.Error(ap.ctx, "program exited", err)
			err = errors.Wrapf(err, "failed to run grid")
		}
		return
	},
}

func init() {
	cwd, _ := os.Getwd()

	viewCriteria.register(viewCmd)
	viewCmd.Flags().StringVar(&exportDir, "export-dir", cwd, "directory for csv exports")
}
