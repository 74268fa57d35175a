package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	nt "datagrid/entity"
	"datagrid/export"
	"datagrid/grid"
	"datagrid/pager"
)

var (
	sortKey        string
	sortDesc       bool
	page           int
	perPage        int
	exportAll      bool
	outFile        string
	exportCriteria = &criteriaFlags{}
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export records to csv",
	Long: `Export a page of records, or with --all every record passing the
filters, to csv using the visible columns.

Use --out - to write to stdout when it is redirected.`,
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

		srt := ap.layout.Sort
		if sortKey != "" {
			srt = nt.Sort{Key: sortKey, Direction: nt.Asc}
		}
		if sortDesc {
			srt.Direction = nt.Desc
		}
		if perPage <= 0 {
			perPage = ap.layout.PerPage
		}

		filter := ap.filter(exportCriteria.criteria(cmd))

		total, err := ap.duck.Count(filter)
		if err != nil {
			return
		}

		offset, size := 0, total
		if !exportAll {
			state := pager.State{Page: page, PerPage: perPage, Total: total}
			if !state.Valid() {
				err = errors.Errorf("page %d out of range 1..%d", page, max(state.TotalPages(), 1))
				return
			}
			offset, size = state.Offset(), perPage
		}

		records, err := ap.duck.GetPage(filter, srt, offset, size)
		if err != nil {
			return
		}

		visible := ap.columns.Hydrate(ap.layout.Table, ap.layout.Columns)
		columns := grid.Props[nt.Record]{Columns: ap.layout.Columns, Visible: &visible}.VisibleColumns()

		ap.logger.Info(ap.ctx, "exporting", "count", len(records), "all", exportAll, "page", page,
			"columns", nt.Keys(columns), "out", outFile)

		if outFile == "-" {
			err = writeStdout(os.Stdout, records, columns)
			return
		}

		path, err := writeFile(outFile, records, columns)
		if err != nil {
			return
		}

		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(records), path)
		return
	},
}

func init() {
	flags := exportCmd.Flags()
	flags.StringVar(&sortKey, "sort", "", "column to sort by")
	flags.BoolVar(&sortDesc, "desc", false, "sort descending")
	flags.IntVar(&page, "page", 1, "page to export")
	flags.IntVar(&perPage, "per-page", 0, "records per page, from layout when zero")
	flags.BoolVar(&exportAll, "all", false, "export every matching record, ignoring paging")
	flags.StringVar(&outFile, "out", export.DefaultName, "output file, - for stdout")

	exportCriteria.register(exportCmd)
}

// writeFile writes csv to out, relative to the working directory unless absolute.
func writeFile(out string, records []nt.Record, columns []nt.Column) (path string, err error) {
	return export.File(filepath.Dir(out), filepath.Base(out), records, columns, nt.Record.Field)
}

// writeStdout refuses to spill csv onto a terminal.
func writeStdout(out *os.File, records []nt.Record, columns []nt.Column) (err error) {

	if term.IsTerminal(int(out.Fd())) {
		err = errors.New("refusing to write csv to a terminal, redirect stdout or use --out")
		return
	}

	return export.Write(out, records, columns, nt.Record.Field)
}
