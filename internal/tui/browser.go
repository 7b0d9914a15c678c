package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-customer-service/internal/adapter"
	"github.com/MKhiriev/go-customer-service/models"
)

// browserModel lists customers and shows the selected one in detail.
type browserModel struct {
	ctx     context.Context
	adapter adapter.CustomerAdapter

	// copyText writes to the system clipboard; replaced in tests.
	copyText func(string) error

	items   []models.CustomerView
	idx     int
	loading bool
	spinner spinner.Model

	detail        bool
	confirmDelete bool

	status string
	errMsg string
}

func newBrowserModel(ctx context.Context, a adapter.CustomerAdapter) browserModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return browserModel{
		ctx:      ctx,
		adapter:  a,
		copyText: clipboard.WriteAll,
		loading:  true,
		spinner:  s,
	}
}

func (m browserModel) current() (models.CustomerView, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.CustomerView{}, false
	}
	return m.items[m.idx], true
}

func (m browserModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case customerDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("customer %d deleted", msg.id)
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = fmt.Sprintf("copy to clipboard: %v", msg.err)
			return m, nil
		}
		m.status = "email copied"
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m browserModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.confirmDelete {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirmDelete = false
			m.detail = false
			item, ok := m.current()
			if !ok {
				return m, nil
			}
			return m, m.cmdDelete(item.ID)
		case key.Matches(msg, keys.no):
			m.confirmDelete = false
		}
		return m, nil
	}

	item, hasItem := m.current()

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case m.detail && key.Matches(msg, keys.esc):
		m.detail = false
	case !m.detail && key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case !m.detail && key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case !m.detail && key.Matches(msg, keys.enter):
		m.detail = hasItem
	case !m.detail && key.Matches(msg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(msg, keys.delete):
		m.confirmDelete = hasItem
	case key.Matches(msg, keys.copy):
		if hasItem {
			return m, m.cmdCopy(item.Email)
		}
	}

	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString(m.spinner.View())
		b.WriteString(" loading...")
	case m.detail:
		item, _ := m.current()
		fmt.Fprintf(&b, "ID       │ %d\n", item.ID)
		fmt.Fprintf(&b, "Name     │ %s\n", item.Name)
		fmt.Fprintf(&b, "Email    │ %s\n", item.Email)
		fmt.Fprintf(&b, "Age      │ %d\n", item.Age)
		fmt.Fprintf(&b, "Gender   │ %s\n", item.Gender)
		fmt.Fprintf(&b, "Roles    │ %s", strings.Join(item.Roles, ", "))
	case len(m.items) == 0:
		b.WriteString("no customers")
	default:
		for i, item := range m.items {
			row := fmt.Sprintf("%-6d %-24s %s", item.ID, fitText(item.Name, 24), item.Email)
			if i == m.idx {
				row = selectedStyle.Render(row)
			}
			b.WriteString(row)
			if i < len(m.items)-1 {
				b.WriteString("\n")
			}
		}
	}

	if m.confirmDelete {
		item, _ := m.current()
		fmt.Fprintf(&b, "\n\nDelete customer %d (%s)? y/n", item.ID, item.Email)
	}
	if m.status != "" {
		b.WriteString("\n\n")
		b.WriteString(m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	}

	if m.detail {
		return renderPage("CUSTOMER", b.String(), "esc: back │ c: copy email │ d: delete")
	}
	return renderPage("CUSTOMERS", b.String(), "↑/↓: move │ enter: open │ r: refresh │ c: copy email │ d: delete │ q: quit")
}

func (m browserModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	a := m.adapter

	return func() tea.Msg {
		items, err := a.ListCustomers(ctx)
		return listLoadedMsg{items: items, err: err}
	}
}

func (m browserModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	a := m.adapter

	return func() tea.Msg {
		return customerDeletedMsg{id: id, err: a.DeleteCustomer(ctx, id)}
	}
}

func (m browserModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText

	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}
