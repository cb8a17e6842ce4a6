// Package ui renders the post list. The model owns no domain state of its
// own: it mirrors the store's snapshot and turns key presses into dispatches.
package ui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/postdeck/postdeck/internal/post"
	"github.com/postdeck/postdeck/internal/state"
)

// StateMsg re-enters the Bubble Tea loop whenever the store changes; the
// bootstrap forwards store notifications as this message.
type StateMsg state.State

// postItem adapts post.Post to bubbles/list.Item
type postItem struct {
	Post post.Post
}

func (i postItem) Title() string       { return i.Post.Title }
func (i postItem) Description() string { return i.Post.Body }
func (i postItem) FilterValue() string { return i.Post.Title + " " + i.Post.Body }

// Custom delegate: id-keyed header line plus one muted body line.
type postDelegate struct{}

func (d postDelegate) Height() int                               { return 2 }
func (d postDelegate) Spacing() int                              { return 1 }
func (d postDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d postDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(postItem)

	header := fmt.Sprintf("%s %s",
		accentStyle.Render(fmt.Sprintf("#%d", it.Post.ID)),
		titleStyle.Render(it.Post.Title),
	)
	body := mutedStyle.Render(firstLine(it.Post.Body))

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render("> ")
	}
	fmt.Fprintln(w, prefix+header)
	fmt.Fprint(w, "  "+body)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// Model is the connected view: it subscribes to {posts, loading, err} and
// renders exactly one of the error, the spinner, or the list.
type Model struct {
	store *state.Store
	fetch state.Task

	st      state.State
	list    list.Model
	spinner spinner.Model
}

// New builds the view around store; fetch is dispatched once on Init and
// again on every manual refresh.
func New(store *state.Store, fetch state.Task) Model {
	l := list.New(nil, postDelegate{}, 0, 0)
	l.Title = titleStyle.Render("Posts")
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle
	l.Styles.PaginationStyle = helpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("post", "posts")

	refreshBind := key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh"))
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{refreshBind} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{refreshBind} }

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	return Model{
		store:   store,
		fetch:   fetch,
		st:      store.State(),
		list:    l,
		spinner: sp,
	}
}

// fetchCmd runs the fetch task off the UI goroutine. Resulting state changes
// come back as StateMsg via the store subscription.
func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		m.store.Run(context.Background(), m.fetch)
		return nil
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StateMsg:
		m.st = state.State(msg)
		items := make([]list.Item, 0, len(m.st.Posts))
		for _, p := range m.st.Posts {
			items = append(items, postItem{Post: p})
		}
		m.list.SetItems(items)
		return m, nil

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-4)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, m.fetchCmd()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	// error beats loading beats list
	switch {
	case m.st.Err:
		content := errorStyle.Render("✖ Could not load posts.") +
			"\n" + helpStyle.Render("r retry • q quit")
		return panelStyle.Render(content)
	case m.st.Loading:
		return panelStyle.Render(m.spinner.View() + " Loading posts...")
	default:
		return panelStyle.Render(m.list.View())
	}
}
