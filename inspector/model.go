package inspector

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Ccheng2729111/fiberqueue/registry"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	detailStyle = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder())
)

// Options configures the inspector's Bubble Tea program.
type Options struct {
	Registry *registry.Registry
	Config   Config
}

// Model is the root Bubble Tea model for the queueview devtools. It never
// writes to the registry it watches -- inspector only reads what processing
// already computed.
type Model struct {
	registry *registry.Registry
	cfg      Config

	table   table.Model
	rows    []Row
	cursor  int
	ready   bool
	lastRun time.Time
}

// New returns a Model ready to run.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}

	columns := []table.Column{
		{Title: "Node", Width: 12},
		{Title: "Priority", Width: 12},
		{Title: "Pending", Width: 6},
		{Title: "Captured", Width: 8},
	}
	t := table.New(table.WithColumns(columns), table.WithFocused(true), table.WithHeight(12))

	return Model{registry: opts.Registry, cfg: cfg, table: t}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.cfg.RefreshInterval), refreshCmd(m.registry))
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		m.cursor = m.table.Cursor()
		return m, cmd

	case tea.WindowSizeMsg:
		m.ready = true
		return m, nil

	case tickMsg:
		return m, tea.Batch(tickCmd(m.cfg.RefreshInterval), refreshCmd(m.registry))

	case snapshotMsg:
		m.rows = []Row(msg)
		m.lastRun = time.Now()
		m.table.SetRows(toTableRows(m.rows, m.cfg))
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("fiberqueue inspector -- %d node(s) pending -- refreshed %s",
		len(m.rows), m.lastRun.Format(time.TimeOnly)))

	detail := "select a node to see its chain"
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		detail = renderDetail(m.rows[m.cursor], m.cfg)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), detailStyle.Render(detail))
}

func toTableRows(rows []Row, cfg Config) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for i, r := range rows {
		out = append(out, table.Row{
			fmt.Sprintf("#%d", i),
			fmt.Sprintf("%v (%s)", r.Priority, cfg.PriorityLabel(r.Priority)),
			fmt.Sprintf("%d", len(r.Chain)),
			fmt.Sprintf("%d", len(r.Captured)),
		})
	}
	return out
}

func renderDetail(r Row, cfg Config) string {
	return fmt.Sprintf("priority: %s\npending:  %v\ncaptured: %v",
		cfg.PriorityLabel(r.Priority), r.Chain, r.Captured)
}

// Messages and commands.

type tickMsg time.Time

type snapshotMsg []Row

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func refreshCmd(r *registry.Registry) tea.Cmd {
	return func() tea.Msg { return snapshotMsg(Snapshot(r)) }
}

// Run starts the Bubble Tea program, blocking until the user quits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
