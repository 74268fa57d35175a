package datagrid

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"datagrid/detail"
	nt "datagrid/entity"
	"datagrid/export"
	"datagrid/grid"
	"datagrid/message"
	"datagrid/pager"
	"datagrid/selection"
	"datagrid/table"
	"datagrid/visibility"
)

const footerHeight = 2

// Model is the bubbletea model owning a grid's data and state.
type Model struct {
	source  Source
	columns *visibility.Columns
	layout  *Layout
	filter  nt.Filter

	// grid state, replaced wholesale from intents
	page     int
	perPage  int
	total    int
	sort     nt.Sort
	selected selection.Set
	visible  visibility.Set
	records  []nt.Record
	loading  bool

	// short-lived ui state
	cursor  table.Cursor
	chooser chooser
	detail  detail.Panel

	exportDir   string
	status      string
	errorString string

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// NewModel creates a Model, hydrating column visibility for the layout's table.
func NewModel(ctx context.Context, source Source, layout *Layout, filter nt.Filter, columns *visibility.Columns, exportDir string, lgr nt.Logger) Model {

	return Model{
		source:    source,
		columns:   columns,
		layout:    layout,
		filter:    filter,
		page:      1,
		perPage:   layout.PerPage,
		sort:      layout.Sort,
		selected:  selection.Clear(),
		visible:   columns.Hydrate(layout.Table, layout.Columns),
		detail:    detail.New(layout.Columns),
		loading:   true,
		exportDir: exportDir,
		ctx:       ctx,
		logger:    lgr,
	}
}

func (m Model) Init() tea.Cmd {
	return m.getPage()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.FetchMsg:
		m.loading = true
		return m, m.getPage()

	case message.PageMsg:
		if msg.Page != m.page || msg.PerPage != m.perPage || msg.Sort != m.sort {
			return m, nil // stale
		}

		m.records = msg.Records
		m.total = msg.Total
		m.loading = false

		state := m.pagination()
		if !state.Valid() {
			m.page = state.Clamp(m.page)
			m.loading = true
			return m, m.getPage()
		}

		m.cursor.Row = min(m.cursor.Row, max(len(m.records)-1, 0))
		return m, nil

	case message.ExportedMsg:
		m.logger.Info(m.ctx, "exported", "path", msg.Path, "count", msg.Count)
		m.status = exportedStatus(msg)
		return m, nil

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		m.loading = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Height = max(msg.Height-footerHeight-2, 1)
		return m, nil

	case tea.KeyPressMsg:
		m.errorString = ""
		m.status = ""

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.detail.Open {
			m.detail = m.detail.Update(msg)
			return m, nil
		}
		if m.chooser.open {
			return m.updateChooser(msg)
		}
		return m.updateGrid(msg)
	}

	return m, nil
}

func (m Model) View() tea.View {

	grd, cursor := table.Scroll(grid.Build(m.props()), m.cursor, m.height-footerHeight)
	body := table.Render(grd, cursor)
	switch {
	case m.detail.Open:
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.detail.View())
	case m.chooser.open:
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", m.chooser.render(m.layout.Columns, m.visible))
	}

	footer := RenderFooter(m.footerLeft(), m.source.Name(), m.width)
	if m.errorString != "" {
		footer = RenderError(m.errorString, m.width)
	}

	view := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, body, "", footer))
	view.AltScreen = true
	return view
}

// props returns the grid props for the current state.
func (m Model) props() grid.Props[nt.Record] {

	return grid.Props[nt.Record]{
		Columns:    m.layout.Columns,
		Rows:       m.records,
		Total:      m.total,
		Page:       m.page,
		PerPage:    m.perPage,
		Loading:    m.loading,
		Selectable: m.layout.Selectable,
		Selected:   m.selected,
		Sort:       m.sort,
		RowKey:     RowKey,
		Field:      nt.Record.Field,
		Visible:    &m.visible,
		Empty:      m.layout.emptyState(),
	}
}

// unexported

func (m Model) updateGrid(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	props := m.props()
	visible := props.VisibleColumns()

	var event grid.Event

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "up", "k":
		m.cursor.Row = max(m.cursor.Row-1, 0)
	case "down", "j":
		m.cursor.Row = min(m.cursor.Row+1, max(len(m.records)-1, 0))
	case "left", "h":
		m.cursor.Col = max(m.cursor.Col-1, 0)
	case "right", "l":
		m.cursor.Col = min(m.cursor.Col+1, max(len(visible)-1, 0))

	case "space", " ":
		if m.cursor.Row < len(m.records) {
			event = grid.ToggleRow{ID: RowKey(m.records[m.cursor.Row])}
		}
	case "a":
		event = grid.ToggleAll{}
	case "u":
		event = grid.ClearAll{}
	case "s", "enter":
		if m.cursor.Col < len(visible) {
			event = grid.HeaderClick{Key: visible[m.cursor.Col].Key}
		}

	case "n", "pgdown", "]":
		event = grid.GoPage{Page: m.pagination().Next()}
	case "p", "pgup", "[":
		event = grid.GoPage{Page: m.pagination().Prev()}
	case "g", "home":
		event = grid.GoPage{Page: 1}
	case "G", "end":
		event = grid.GoPage{Page: m.pagination().TotalPages()}
	case "+", "=":
		event = grid.SetPerPage{PerPage: pager.CyclePerPage(m.perPage, 1)}
	case "-":
		event = grid.SetPerPage{PerPage: pager.CyclePerPage(m.perPage, -1)}

	case "c":
		m.chooser = chooser{open: true}
	case "d":
		if m.cursor.Row < len(m.records) && !m.loading {
			m.detail = m.detail.Show(m.records[m.cursor.Row])
		}
	case "x":
		if m.loading || len(m.records) == 0 {
			return m, message.ErrorCmd(export.ErrNoRows)
		}
		return m, m.export()
	}

	if event == nil {
		return m, nil
	}
	return m.apply(grid.Dispatch(props, event))
}

// apply carries out the grid's intents.
func (m Model) apply(intents []grid.Intent) (Model, tea.Cmd) {

	var cmds []tea.Cmd
	for _, intent := range intents {
		switch it := intent.(type) {
		case grid.PageChange:
			m.page = it.Page
			m.cursor.Row = 0
			cmds = append(cmds, m.refetch())

		case grid.PerPageChange:
			m.perPage = it.PerPage
			m.page = 1
			m.cursor.Row = 0
			cmds = append(cmds, m.refetch())

		case grid.SortChange:
			m.sort = it.Sort
			m.page = 1
			cmds = append(cmds, m.refetch())

		case grid.SelectionChange:
			m.selected = it.Selected

		case grid.VisibleChange:
			if it.Reset {
				m.visible = m.columns.Reset(m.layout.Table, m.layout.Columns)
			} else {
				m.visible = m.columns.Toggle(m.layout.Table, it.Key, m.layout.Columns, m.visible)
			}
			m.cursor.Col = min(m.cursor.Col, max(m.visible.Len()-1, 0))
		}
	}

	if len(cmds) > 0 {
		m.loading = true
	}
	return m, tea.Batch(cmds...)
}

func (m Model) refetch() tea.Cmd {
	return message.FetchCmd()
}

func (m Model) pagination() pager.State {
	return pager.State{Page: m.page, PerPage: m.perPage, Total: m.total}
}
