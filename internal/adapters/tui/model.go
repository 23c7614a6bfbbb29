// Package tui is the terminal front end of the quote board, built on
// bubbletea. It drives the same app.Board as the web handlers.
package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen/quoteboard/internal/app"
	"github.com/jsamuelsen/quoteboard/internal/domain"
)

// Texts shared with the web page.
const (
	LoadingText = "Loading quotes…"
	EmptyText   = "No quotes yet. Be the first to add one!"
)

const (
	focusName = iota
	focusMessage
	focusFilter
	focusCount
)

// inputIndent leaves room for the field labels.
const inputIndent = 10

// Options configure the presentation.
type Options struct {
	Title      string
	DateLayout string
	Location   *time.Location
}

// stateMsg carries a board snapshot into the update loop.
type stateMsg app.BoardState

// submitDoneMsg reports a finished submit and the values it sent, so the
// form can tell them apart from anything typed while it was in flight.
type submitDoneMsg struct {
	name    string
	message string
	stored  bool
}

// Model is the bubbletea model for the board. Board calls run inside
// commands, never on the update loop, since the board notifies listeners
// synchronously and the listener in Run sends into that loop.
type Model struct {
	ctx   context.Context
	board *app.Board
	opts  Options

	state  app.BoardState
	inputs [2]textinput.Model
	focus  int
	errMsg string
}

// NewModel creates a model over board. ctx bounds the store calls the
// model issues.
func NewModel(ctx context.Context, board *app.Board, opts Options) Model {
	if opts.DateLayout == "" {
		opts.DateLayout = "1/2/2006, 3:04:05 PM"
	}

	if opts.Location == nil {
		opts.Location = time.Local
	}

	name := textinput.New()
	name.Placeholder = "Your name"
	name.Prompt = ""
	name.CharLimit = 100
	name.Focus()

	message := textinput.New()
	message.Placeholder = "Your quote"
	message.Prompt = ""
	message.CharLimit = 500

	return Model{
		ctx:    ctx,
		board:  board,
		opts:   opts,
		state:  board.State(),
		inputs: [2]textinput.Model{name, message},
	}
}

// Init mounts the board, which loads the quotes once.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.mount())
}

func (m Model) mount() tea.Cmd {
	board, ctx := m.board, m.ctx

	return func() tea.Msg {
		board.Mount(ctx)
		return stateMsg(board.State())
	}
}

func (m Model) selectFilter(days int) tea.Cmd {
	board, ctx := m.board, m.ctx

	return func() tea.Msg {
		// Only offered values reach here; the error cannot happen.
		_ = board.SelectFilter(ctx, days)
		return stateMsg(board.State())
	}
}

func (m Model) submit(name, message string) tea.Cmd {
	board, ctx := m.board, m.ctx

	return func() tea.Msg {
		board.SubmitQuote(ctx, name, message)

		// A failed submit keeps the non-empty draft; a stored one clears it.
		return submitDoneMsg{name: name, message: message, stored: board.State().Draft == app.Draft{}}
	}
}

// Update handles key presses and board notifications.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		if msg.Version >= m.state.Version {
			m.state = app.BoardState(msg)
		}

		return m, nil

	case submitDoneMsg:
		m.state = m.board.State()

		if msg.stored {
			m.clearInput(focusName, msg.name)
			m.clearInput(focusMessage, msg.message)
		}

		return m, nil

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = max(msg.Width-inputIndent, 0)
		}

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "down":
		return m.setFocus((m.focus + 1) % focusCount)

	case "shift+tab", "up":
		return m.setFocus((m.focus + focusCount - 1) % focusCount)

	case "enter":
		if m.focus == focusFilter {
			return m, nil
		}

		return m.submitDraft()
	}

	if m.focus == focusFilter {
		switch msg.String() {
		case "left", "h":
			return m.moveFilter(-1)
		case "right", "l":
			return m.moveFilter(1)
		case "q":
			return m, tea.Quit
		}

		return m, nil
	}

	return m.updateInputs(msg)
}

func (m Model) setFocus(focus int) (tea.Model, tea.Cmd) {
	m.focus = focus

	var cmd tea.Cmd

	for i := range m.inputs {
		if i == focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}

	return m, cmd
}

func (m Model) moveFilter(delta int) (tea.Model, tea.Cmd) {
	filters := m.state.Filters
	if len(filters) == 0 {
		return m, nil
	}

	current := 0

	for i, f := range filters {
		if f.Days == m.state.MaxAgeDays {
			current = i
			break
		}
	}

	next := (current + delta + len(filters)) % len(filters)

	// Show the selection right away; the board confirms it.
	m.state.MaxAgeDays = filters[next].Days

	return m, m.selectFilter(filters[next].Days)
}

func (m Model) submitDraft() (tea.Model, tea.Cmd) {
	name := m.inputs[focusName].Value()
	message := m.inputs[focusMessage].Value()

	if err := (domain.Submission{Name: name, Message: message}).Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			m.errMsg = ve.Field + " " + ve.Message
		} else {
			m.errMsg = err.Error()
		}

		return m, nil
	}

	m.errMsg = ""

	return m, m.submit(name, message)
}

// clearInput empties input i unless it was edited after submitted was sent.
func (m *Model) clearInput(i int, submitted string) {
	if m.inputs[i].Value() == submitted {
		m.inputs[i].SetValue("")
	}
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

// View renders the board.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(m.opts.Title))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Submit a quote"))
	b.WriteString("\n")
	b.WriteString(m.field("Name", focusName))
	b.WriteString(m.field("Quote", focusMessage))

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.label("Show quotes from:", focusFilter))
	b.WriteString(" ")
	b.WriteString(m.filterBar())
	b.WriteString("\n\n")

	b.WriteString(headingStyle.Render("Previous Quotes"))
	b.WriteString("\n")

	switch {
	case m.state.Loading:
		b.WriteString(LoadingText)
		b.WriteString("\n")
	case len(m.state.Quotes) == 0:
		b.WriteString(EmptyText)
		b.WriteString("\n")
	default:
		for _, q := range m.state.Quotes {
			b.WriteString(renderQuote(q, m.opts.DateLayout, m.opts.Location))
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: submit • ←/→: filter • esc: quit"))

	return b.String()
}

func (m Model) field(label string, idx int) string {
	return m.label(label+":", idx) + " " + m.inputs[idx].View() + "\n"
}

func (m Model) label(text string, idx int) string {
	if m.focus == idx {
		return focusedLabelStyle.Render(text)
	}

	return labelStyle.Render(text)
}

func (m Model) filterBar() string {
	parts := make([]string, 0, len(m.state.Filters))

	for _, f := range m.state.Filters {
		if f.Days == m.state.MaxAgeDays {
			parts = append(parts, selectedFilterStyle.Render(f.Label))
		} else {
			parts = append(parts, filterStyle.Render(f.Label))
		}
	}

	return strings.Join(parts, "")
}

// renderQuote renders one quote. The date line is present only when the
// quote carries a time.
func renderQuote(q domain.Quote, layout string, loc *time.Location) string {
	lines := []string{
		messageStyle.Render("“" + q.Message + "”"),
		nameStyle.Render("— " + q.Name),
	}

	if q.HasTime() {
		lines = append(lines, dateStyle.Render(q.Time.In(loc).Format(layout)))
	}

	return quoteStyle.Render(strings.Join(lines, "\n"))
}
