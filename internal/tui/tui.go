// Package tui provides a Bubble Tea terminal user interface that parses
// artist credits as they are typed.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/artist-credits/internal/artist"
	"github.com/handiism/artist-credits/internal/audio"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 1)
)

const prompt = "> "

// Model is the Bubble Tea model for the TUI.
type Model struct {
	textInput textinput.Model
	opts      artist.Options
	report    *audio.ReportCreator

	list   artist.ArtistList
	tokens []artist.Token
	err    error

	// Options
	showTokens bool

	width int
}

// NewModel creates a new TUI model parsing with opts.
func NewModel(opts artist.Options) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = "Group（Member1（RealName1）、Member2）、Guest"
	ti.Focus()
	ti.CharLimit = 1000
	ti.Width = 60

	return Model{
		textInput: ti,
		opts:      opts,
		report:    audio.NewReportCreator(audio.FormatTree),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.textInput.Width = max(20, min(msg.Width-4, 120))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+s":
			m.opts.RejectTrailing = !m.opts.RejectTrailing
			m.reparse()
			return m, nil

		case "ctrl+t":
			m.showTokens = !m.showTokens
			return m, nil
		}
	}

	var cmd tea.Cmd
	before := m.textInput.Value()
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != before {
		m.reparse()
	}
	return m, cmd
}

func (m *Model) reparse() {
	input := m.textInput.Value()
	m.tokens = artist.Tokenize(input).Remaining()
	if input == "" {
		m.list, m.err = nil, nil
		return
	}
	m.list, m.err = artist.NewParser(m.opts).Parse(input)
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(titleStyle.Render("Artist Credits"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Type a credit string; brackets are （ ）, separator is 、"))
	b.WriteString("\n\n")

	b.WriteString(m.textInput.View())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(m.viewError())
	case m.list != nil:
		b.WriteString(m.viewTree())
	default:
		b.WriteString("\n")
	}

	if m.showTokens {
		b.WriteString("\n")
		b.WriteString(m.viewTokens())
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.getHelpText()))

	return b.String()
}

func (m Model) viewTree() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(successStyle.Render(fmt.Sprintf("✓ %d top-level artist(s)", m.list.Len())))
	b.WriteString("\n")

	tree, err := m.report.RenderList(m.list)
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	b.WriteString(boxStyle.Render(strings.TrimRight(tree, "\n")))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("canonical: " + m.list.String()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	var perr *artist.ParseError
	if errors.As(m.err, &perr) {
		b.WriteString(errorStyle.Render(caretLine(m.textInput.Value(), perr.Offset)))
	}
	b.WriteString("\n")
	b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewTokens() string {
	var b strings.Builder

	b.WriteString(infoStyle.Render(fmt.Sprintf("Tokens (%d):", len(m.tokens))))
	b.WriteString("\n")
	for _, tok := range m.tokens {
		line := fmt.Sprintf("  %-12s %q", tok.Kind, tok.Text)
		if tok.Owned {
			line += dimStyle.Render("  (escaped)")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// caretLine returns a line with a caret under the character at byte offset
// in input, as displayed after the prompt.
func caretLine(input string, offset int) string {
	if offset > len(input) {
		offset = len(input)
	}
	col := lipgloss.Width(prompt) + lipgloss.Width(input[:offset])
	return strings.Repeat(" ", col) + "^"
}

func (m Model) getHelpText() string {
	strict := "off"
	if m.opts.RejectTrailing {
		strict = "on"
	}
	return fmt.Sprintf("ctrl+s: strict (%s) • ctrl+t: tokens • esc: quit", strict)
}

// Run starts the TUI application.
func Run(opts artist.Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
