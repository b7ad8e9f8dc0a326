package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-inventory-keeper/internal/connectivity"
	"github.com/MKhiriev/go-inventory-keeper/internal/logger"
	"github.com/MKhiriev/go-inventory-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const statusTTL = 3 * time.Second

var (
	errSyncUnavailable = errors.New("sync is not available")
	errNoSerialNumber  = errors.New("record has no serial number")
)

// browserModel lists one page of one category at a time.
type browserModel struct {
	ctx    context.Context
	deps   Deps
	copyFn func(string) error

	categories  []models.Category
	categoryIdx int
	query       models.Query
	page        models.Page
	idx         int

	loading     bool
	syncing     bool
	spinner     spinner.Model
	searching   bool
	searchInput textinput.Model

	detail        bool
	confirmDelete bool
	showBuildInfo bool

	status string
	errMsg string
}

func newBrowserModel(ctx context.Context, deps Deps, copyFn func(string) error) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	in := textinput.New()
	in.Prompt = "/ "
	in.Placeholder = "model, type or serial number"
	in.CharLimit = 64

	categories := models.Categories()
	return browserModel{
		ctx:         ctx,
		deps:        deps,
		copyFn:      copyFn,
		categories:  categories,
		query:       models.Query{Category: categories[0], Page: 1},
		loading:     true,
		spinner:     s,
		searchInput: in,
	}
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoad(), m.spinner.Tick)
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pageLoadedMsg:
		// a slower answer to an older query must not replace the current page
		if msg.query != m.query {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.page = msg.page
		m.idx = clamp(m.idx, 0, len(m.page.Data)-1)
		return m, nil

	case syncDoneMsg:
		m.syncing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		} else {
			m.status = fmt.Sprintf("Synced: %d flushed, %d pending", msg.result.Flushed, msg.result.Pending)
		}
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(statusTTL))

	case deleteDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Deleted"
		if msg.ack.Queued {
			m.status = "Delete queued until the server is reachable"
		}
		m.detail = false
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), clearStatusAfter(statusTTL))

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Copied serial number " + msg.serial
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.searching {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m browserModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.showBuildInfo:
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return m, nil

	case m.errMsg != "":
		if key.Matches(msg, keys.enter, keys.esc) {
			m.errMsg = ""
		}
		return m, nil

	case m.searching:
		return m.updateSearch(msg)

	case m.confirmDelete:
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmDelete = false
			return m, m.cmdDelete()
		case key.Matches(msg, keys.no):
			m.confirmDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.detail = false
	case key.Matches(msg, keys.enter):
		_, ok := m.current()
		m.detail = ok
	case key.Matches(msg, keys.delete):
		_, ok := m.current()
		m.confirmDelete = ok
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy()
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		return m, m.cmdSync()
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
	case m.detail:
		// the remaining keys act on the list

	case key.Matches(msg, keys.up):
		m.idx = clamp(m.idx-1, 0, len(m.page.Data)-1)
	case key.Matches(msg, keys.down):
		m.idx = clamp(m.idx+1, 0, len(m.page.Data)-1)
	case key.Matches(msg, keys.nextPage):
		if m.query.Page < pageCount(m.page.Total, m.query.Normalized().PageSize) {
			m.query.Page++
			return m.reload()
		}
	case key.Matches(msg, keys.prevPage):
		if m.query.Page > 1 {
			m.query.Page--
			return m.reload()
		}
	case key.Matches(msg, keys.tab):
		return m.switchCategory(1)
	case key.Matches(msg, keys.backtab):
		return m.switchCategory(len(m.categories) - 1)
	case key.Matches(msg, keys.search):
		m.searching = true
		m.searchInput.SetValue(m.query.Search)
		return m, m.searchInput.Focus()
	case key.Matches(msg, keys.refresh):
		return m.reload()
	}
	return m, nil
}

func (m browserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.searchInput.Blur()
		m.query.Search = strings.TrimSpace(m.searchInput.Value())
		m.query.Page = 1
		return m.reload()
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m browserModel) switchCategory(step int) (tea.Model, tea.Cmd) {
	m.categoryIdx = (m.categoryIdx + step) % len(m.categories)
	m.query = models.Query{Category: m.categories[m.categoryIdx], Search: m.query.Search, Page: 1}
	m.page = models.Page{}
	m.detail = false
	return m.reload()
}

func (m browserModel) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.idx = 0
	return m, m.cmdLoad()
}

func (m browserModel) current() (models.Record, bool) {
	if m.idx < 0 || m.idx >= len(m.page.Data) {
		return nil, false
	}
	return m.page.Data[m.idx], true
}

func (m browserModel) cmdLoad() tea.Cmd {
	q := m.query
	gateway := m.deps.Gateway
	ctx := m.ctx
	return func() tea.Msg {
		page, err := gateway.List(ctx, q)
		return pageLoadedMsg{query: q, page: page, err: err}
	}
}

func (m browserModel) cmdSync() tea.Cmd {
	syncService := m.deps.Sync
	ctx := m.ctx
	return func() tea.Msg {
		if syncService == nil {
			return syncDoneMsg{err: errSyncUnavailable}
		}
		result, err := syncService.Sync(ctx)
		if err != nil {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "browserModel.cmdSync").Msg("manual sync failed")
		}
		return syncDoneMsg{result: result, err: err}
	}
}

func (m browserModel) cmdDelete() tea.Cmd {
	rec, ok := m.current()
	if !ok {
		return nil
	}
	c := m.query.Category
	id := rec.ID(c)
	gateway := m.deps.Gateway
	ctx := m.ctx
	return func() tea.Msg {
		ack, err := gateway.Delete(ctx, c, id)
		return deleteDoneMsg{ack: ack, err: err}
	}
}

func (m browserModel) cmdCopy() tea.Cmd {
	rec, ok := m.current()
	if !ok {
		return nil
	}
	serial := rec.Machine(m.query.Category).String("serialNumber")
	copyFn := m.copyFn
	return func() tea.Msg {
		if serial == "" {
			return copiedMsg{err: errNoSerialNumber}
		}
		return copiedMsg{serial: serial, err: copyFn(serial)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m browserModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.deps.BuildInfo))
	}

	var body string
	if rec, ok := m.current(); ok && m.detail {
		body = renderDetail(m.query.Category, rec)
	} else {
		body = m.listView()
	}

	switch {
	case m.errMsg != "":
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", errorOverlayModel{message: m.errMsg}.View())
	case m.confirmDelete:
		rec, _ := m.current()
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", confirmModel{message: rec.ID(m.query.Category)}.View())
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, m.statusBar(), "", body))
}

func (m browserModel) listView() string {
	var b strings.Builder
	b.WriteString(renderTabs(m.query.Category))
	b.WriteString("\n\n")

	switch {
	case m.searching:
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	case m.query.Search != "":
		b.WriteString(helpStyle.Render("search: " + m.query.Search))
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.page.Data) == 0:
		b.WriteString("Loading...\n")
	case len(m.page.Data) == 0:
		b.WriteString("No records\n")
	default:
		b.WriteString(renderTable(m.query.Category, m.page.Data, m.idx))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(pageInfo(m.query, m.page.Total)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("tab category  / search  ←/→ page  enter open  s sync  d delete  c copy serial  v about  q quit"))
	return b.String()
}

// statusBar shows where requests go and how many mutations wait for the
// live server.
func (m browserModel) statusBar() string {
	target := "LIVE"
	style := liveStyle
	if m.deps.Target != nil && m.deps.Target.Target() == connectivity.TargetLocal {
		target = "LOCAL"
		style = localStyle
	}

	pending := 0
	if m.deps.Pending != nil {
		pending = m.deps.Pending.Len()
	}

	bar := titleStyle.Render("Inventory Keeper") + "  " + style.Render(target) +
		fmt.Sprintf("  pending: %d", pending)
	if m.syncing || m.loading {
		bar += "  " + m.spinner.View()
	}
	return bar
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
