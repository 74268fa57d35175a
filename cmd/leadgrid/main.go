// Package main is leadgrid, a terminal browser and csv exporter for lead records.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/clarktrimble/sabot"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"datagrid"
	nt "datagrid/entity"
	"datagrid/store/duck"
	"datagrid/store/file"
	"datagrid/store/pg"
	"datagrid/util"
	"datagrid/visibility"
)

const (
	cfgMode = 0o644
	logMode = 0o644
	logMax  = 99
)

// Global flags
var (
	layoutFile string
	prefsFile  string
	pgURL      string
	dbFile     string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "leadgrid",
	Short: "Browse and export lead records",
	Long: `leadgrid pages, sorts, selects, and exports lead records
loaded from a csv or ndjson file.

Environment Variables:
  DATAGRID_LAYOUT   grid layout file
  DATAGRID_PREFS    column preference file
  DATAGRID_PG_URL   keep column preferences in postgres
  DATAGRID_LOG      log file`,
	SilenceUsage: true,
}

func init() {
	_ = util.LoadEnv(".env")

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&layoutFile, "layout", util.Getenv("DATAGRID_LAYOUT", "layout.yaml"), "grid layout file")
	flags.StringVar(&prefsFile, "prefs", util.Getenv("DATAGRID_PREFS", "prefs.yaml"), "column preference file")
	flags.StringVar(&pgURL, "pg", util.Getenv("DATAGRID_PG_URL", ""), "postgres url for column preferences")
	flags.StringVar(&dbFile, "db", "", "duckdb file, keeps column preferences when set")
	flags.StringVar(&logFile, "log", util.Getenv("DATAGRID_LOG", ""), "log file")

	rootCmd.AddCommand(viewCmd, exportCmd, columnsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds what every command needs.
type app struct {
	ctx     context.Context
	logger  *sabot.Sabot
	layout  *datagrid.Layout
	duck    *duck.Duck
	columns *visibility.Columns
	closers []func()
}

// setup loads config, opens the log, duck, and column preference store.
func setup() (ap *app, err error) {

	ap = &app{}

	logOut := util.OpenLog(logFile, logMode)
	ap.closers = append(ap.closers, func() { util.CloseLog(logOut) })

	ap.logger = &sabot.Sabot{Writer: logOut, MaxLen: logMax}
	ap.ctx = ap.logger.WithFields(context.Background(), "run_id", runID())

	err = util.SampleConfig(datagrid.SampleLayout, layoutFile, cfgMode)
	if err != nil {
		return
	}

	ap.layout, err = datagrid.LoadLayout(layoutFile)
	if err != nil {
		return
	}

	ap.duck, err = duck.New(dbFile, ap.logger)
	if err != nil {
		return
	}
	ap.closers = append(ap.closers, ap.duck.Close)

	var store visibility.Store
	switch {
	case pgURL != "":
		var pgs *pg.Pg
		pgs, err = pg.New(ap.ctx, pgURL)
		if err != nil {
			return
		}
		ap.closers = append(ap.closers, pgs.Close)
		store = pgs
	case dbFile != "":
		store = ap.duck
	default:
		fs := file.New(prefsFile)
		ap.logger.Info(ap.ctx, "column preferences in file", "path", fs.Path())
		store = fs
	}

	ap.columns = visibility.New(ap.ctx, store, ap.logger)
	ap.logger.Info(ap.ctx, "starting up", "layout", layoutFile, "table", ap.layout.Table)
	return
}

// load reads records from path and fits the layout to them.
func (ap *app) load(path string) (err error) {

	err = ap.duck.Load(path)
	if err != nil {
		return
	}
	ap.layout.Fit(ap.duck.Fields())

	if len(ap.layout.Columns) == 0 {
		err = errors.Errorf("no layout columns found in %s", path)
	}
	return
}

// filter returns the criteria as a filter, searching the layout's search fields.
func (ap *app) filter(crt datagrid.Criteria) nt.Filter {
	return crt.Filter(ap.layout.Search)
}

func (ap *app) close() {
	for i := len(ap.closers) - 1; i >= 0; i-- {
		ap.closers[i]()
	}
}

func runID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 36)
}
