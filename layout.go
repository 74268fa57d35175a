package datagrid

import (
	"github.com/pkg/errors"

	nt "datagrid/entity"
	"datagrid/grid"
	"datagrid/pager"
	"datagrid/util"
)

const defaultTable = "leads"

// Layout configures a grid: its table id, paging, sort, and columns.
type Layout struct {
	Table      string      `yaml:"table"`
	PerPage    int         `yaml:"per_page,omitempty"`
	Selectable bool        `yaml:"selectable"`
	Sort       nt.Sort     `yaml:"sort,omitempty"`
	Search     []string    `yaml:"search,omitempty"`
	Columns    []nt.Column `yaml:"columns"`
	Empty      EmptyState  `yaml:"empty,omitempty"`
}

// EmptyState is shown when there are no records.
type EmptyState struct {
	Icon        string `yaml:"icon,omitempty"`
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
	Action      string `yaml:"action,omitempty"`
}

// SampleLayout is written for first runs.
var SampleLayout = []byte(`table: leads
per_page: 50
selectable: true
sort:
  key: score
  direction: desc
search: [name, fund, email, role]
empty:
  icon: "∅"
  title: No leads yet
  description: Nothing matches the current filter.
  action: Run a campaign to discover leads
columns:
  - key: name
    label: Name
    sortable: true
    width: 22
  - key: email
    label: Email
    width: 28
  - key: fund
    label: Fund
    sortable: true
    width: 22
  - key: role
    label: Role
    width: 14
  - key: stage
    label: Stage
    width: 10
  - key: score
    label: Score
    sortable: true
    width: 6
    render:
      kind: fixed
      places: 1
  - key: tier
    label: Tier
    width: 6
    render:
      kind: label
      labels: {HOT: "🔥 hot", WARM: warm, COOL: cool}
  - key: email_verified
    label: Verified
    width: 8
    render:
      kind: check
  - key: scraped_at
    label: Scraped
    sortable: true
    width: 16
    render:
      kind: time
      format: "2006-01-02 15:04"
`)

// LoadLayout reads and validates a layout file.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = &Layout{}
	err = util.LoadConfig(layout, path)
	if err != nil {
		return
	}

	err = layout.validate()
	return
}

// Fit keeps only columns present in fields, and derives columns from fields
// when none are configured.
func (layout *Layout) Fit(fields []string) {

	if len(layout.Columns) == 0 {
		for _, field := range fields {
			layout.Columns = append(layout.Columns, nt.Column{
				Key:      field,
				Sortable: true,
				Hidden:   field == "id",
			})
		}
		return
	}

	known := map[string]bool{}
	for _, field := range fields {
		known[field] = true
	}

	columns := []nt.Column{}
	for _, col := range layout.Columns {
		if known[col.Key] {
			columns = append(columns, col)
		}
	}
	layout.Columns = columns
}

func (layout *Layout) emptyState() grid.Empty {
	return grid.Empty{
		Icon:        layout.Empty.Icon,
		Title:       layout.Empty.Title,
		Description: layout.Empty.Description,
		Action:      layout.Empty.Action,
	}
}

// unexported

func (layout *Layout) validate() (err error) {

	if layout.Table == "" {
		layout.Table = defaultTable
	}
	if layout.PerPage <= 0 {
		layout.PerPage = pager.DefaultPerPage
	}

	switch layout.Sort.Direction {
	case "":
		layout.Sort.Direction = nt.Asc
	case nt.Asc, nt.Desc:
	default:
		err = errors.Errorf("unknown sort direction %q", layout.Sort.Direction)
		return
	}

	err = nt.ValidateColumns(layout.Columns)
	err = errors.Wrapf(err, "invalid layout for %s", layout.Table)
	return
}
