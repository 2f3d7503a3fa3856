// Package tui holds the interactive Bubble Tea views. Views never change
// state themselves: key presses become store dispatches, and a store
// subscription refreshes what the view shows.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/barbgs/redux-todo/internal/redux"
	"github.com/barbgs/redux-todo/internal/todo"
	"github.com/barbgs/redux-todo/internal/ui"
)

// listItem adapts *todo.Item to bubbles/list.Item
type listItem struct {
	*todo.Item
}

func (i listItem) FilterValue() string { return i.Text }

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	styles ui.Styles
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box := d.styles.Muted.Render(t.BoxUnchecked)
	text := it.Text
	if it.Completed {
		box = d.styles.Success.Render(t.BoxChecked)
		text = d.styles.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Selected.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

// todoView is the part of the screen derived from store state. It is a
// store listener, so every dispatch rebuilds the visible list.
type todoView struct {
	state  func() todo.State
	list   list.Model
	filter todo.Filter
	done   int
	total  int
}

func (v *todoView) StateChanged() {
	s := v.state()
	visible := todo.Visible(s.Todos, s.VisibilityFilter)
	items := make([]list.Item, 0, len(visible))
	for _, it := range visible {
		items = append(items, listItem{it})
	}
	idx := v.list.Index()
	v.list.SetItems(items)
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		v.list.Select(idx)
	}
	v.filter = s.VisibilityFilter
	v.done, _ = s.Todos.Stats()
	v.total = len(s.Todos)
}

// TodoModel is the interactive todo list.
type TodoModel struct {
	store       *redux.Store[todo.State]
	ids         *todo.IDAllocator
	view        *todoView
	unsubscribe func()

	keys   todoKeyMap
	help   help.Model
	styles ui.Styles

	// Inline add
	adding bool
	ti     textinput.Model
	addErr string

	width, height int
}

// NewTodoModel wires a view to store. Ids for new todos come from ids.
func NewTodoModel(store *redux.Store[todo.State], ids *todo.IDAllocator) TodoModel {
	styles := ui.CurrentStyles()

	l := list.New(nil, itemDelegate{styles: styles}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = styles.Help

	v := &todoView{state: store.GetState, list: l}
	m := TodoModel{
		store:  store,
		ids:    ids,
		view:   v,
		keys:   newTodoKeyMap(),
		help:   help.New(),
		styles: styles,
		width:  80,
		height: 24,
	}
	m.unsubscribe = store.Subscribe(v)
	v.StateChanged()

	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.Placeholder = "What needs to be done?"
	m.ti.CharLimit = 200
	m.resize()
	return m
}

// Close detaches the view from the store.
func (m TodoModel) Close() { m.unsubscribe() }

// Visible returns the items currently listed, in order.
func (m TodoModel) Visible() []todo.Item {
	out := make([]todo.Item, 0, len(m.view.list.Items()))
	for _, it := range m.view.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, *li.Item)
		}
	}
	return out
}

func (m TodoModel) Init() tea.Cmd { return nil }

func (m TodoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wm.Width, wm.Height
		m.help.Width = wm.Width
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(km, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(km, m.keys.Toggle):
		if it, ok := m.view.list.SelectedItem().(listItem); ok {
			m.store.Dispatch(todo.Toggle(it.ID))
		}
		return m, nil
	case key.Matches(km, m.keys.Add):
		m.adding = true
		m.addErr = ""
		m.ti.SetValue("")
		m.resize()
		cmd := m.ti.Focus()
		return m, cmd
	case key.Matches(km, m.keys.Filter):
		f := todo.Filters()[km.String()[0]-'1']
		m.store.Dispatch(todo.Show(f))
		return m, nil
	case key.Matches(km, m.keys.NextFilter):
		fs := todo.Filters()
		m.store.Dispatch(todo.Show(fs[(int(m.view.filter)+1)%len(fs)]))
		return m, nil
	}

	var cmd tea.Cmd
	m.view.list, cmd = m.view.list.Update(msg)
	return m, cmd
}

func (m TodoModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter":
			text := strings.TrimSpace(m.ti.Value())
			if text == "" {
				m.addErr = "Text cannot be empty"
				return m, nil
			}
			m.store.Dispatch(todo.Add(m.ids, text))
			m.stopAdding()
			return m, nil
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *TodoModel) stopAdding() {
	m.adding = false
	m.addErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
	m.resize()
}

func (m *TodoModel) resize() {
	h := m.height - 6
	if m.adding {
		h -= 3
	}
	if h < 1 {
		h = 1
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	m.view.list.SetSize(w, h)
}

func (m TodoModel) header() string {
	pending := m.view.total - m.view.done
	counts := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		m.styles.Title.Render("Todos"),
		m.styles.Success.Render(ui.Current().SymDone), m.view.done,
		m.styles.Pending.Render(ui.Current().SymUnchecked), pending,
		m.styles.Accent.Render("Total"), m.view.total,
	)
	return counts + "\n" + m.filterTabs()
}

// filterTabs renders the filter links; the active one is not a link, so
// it is shown plainly in brackets.
func (m TodoModel) filterTabs() string {
	labels := map[todo.Filter]string{
		todo.ShowAll:       "All",
		todo.ShowCompleted: "Completed",
		todo.ShowActive:    "Active",
	}
	var parts []string
	for i, f := range todo.Filters() {
		label := fmt.Sprintf("%d %s", i+1, labels[f])
		if f == m.view.filter {
			parts = append(parts, m.styles.Accent.Render("["+label+"]"))
		} else {
			parts = append(parts, m.styles.Muted.Render(" "+label+" "))
		}
	}
	return "Show: " + strings.Join(parts, " ")
}

func (m TodoModel) View() string {
	body := m.view.list.View()
	if len(m.view.list.Items()) == 0 {
		body = m.styles.Muted.Render("no items")
	}
	content := m.header() + "\n\n" + body
	if m.adding {
		title := "Add todo"
		if m.addErr != "" {
			title += " " + m.styles.Error.Render(m.addErr)
		}
		bar := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
		content += "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	content += "\n" + m.help.View(m.keys)
	return m.styles.Border.Render(content)
}
