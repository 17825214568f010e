package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KennyZhang12138/MyPython/mypython"
)

var (
	accentColor    = lipgloss.Color("#3B82F6")
	successColor   = lipgloss.Color("#10B981")
	errorColor     = lipgloss.Color("#EF4444")
	mutedColor     = lipgloss.Color("#6B7280")
	highlightColor = lipgloss.Color("#F59E0B")

	headerStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true).
			Padding(0, 1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	selectedStyle = lipgloss.NewStyle().
			Foreground(highlightColor).
			Bold(true)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(highlightColor)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)

var kindColors = map[mypython.Kind]lipgloss.Color{
	mypython.KindSymbol:      accentColor,
	mypython.KindInteger:     successColor,
	mypython.KindLiteral:     successColor,
	mypython.KindConstant:    successColor,
	mypython.KindPunctuation: highlightColor,
	mypython.KindInvalid:     errorColor,
}

type inspectModel struct {
	path   string
	tokens mypython.Stream

	// visible holds indexes into tokens after the noise filter.
	visible []int
	cursor  int

	hideNoise bool
	searching bool
	search    textinput.Model
	query     string

	width       int
	height      int
	quitting    bool
	initialized bool
}

type inspectKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Search   key.Binding
	Next     key.Binding
	Noise    key.Binding
	Quit     key.Binding
}

var inspectKeys = inspectKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous token"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next token"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "first token"),
	),
	End: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "last token"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Next: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next match"),
	),
	Noise: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "toggle whitespace"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func newInspectModel(path string, tokens mypython.Stream) inspectModel {
	ti := textinput.New()
	ti.Placeholder = "search tokens..."
	ti.CharLimit = 120
	ti.Width = 40
	ti.Prompt = "/"

	return inspectModel{
		path:    path,
		tokens:  tokens,
		visible: visibleIndexes(tokens, false),
		search:  ti,
	}
}

// visibleIndexes filters the stream down to the rows shown in the listing.
// Whitespace and bare EOL tokens are the noise hidden by the toggle.
func visibleIndexes(tokens mypython.Stream, hideNoise bool) []int {
	idx := make([]int, 0, len(tokens))
	for i, tok := range tokens {
		if hideNoise && (tok.Kind == mypython.KindWhitespace || tok.Kind == mypython.KindEOL) {
			continue
		}
		idx = append(idx, i)
	}
	return idx
}

func (m inspectModel) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m inspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.initialized = true
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, inspectKeys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, inspectKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, inspectKeys.Down):
			if m.cursor < len(m.visible)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, inspectKeys.PageUp):
			m.cursor = max(m.cursor-m.pageSize(), 0)
			return m, nil

		case key.Matches(msg, inspectKeys.PageDown):
			m.cursor = min(m.cursor+m.pageSize(), len(m.visible)-1)
			return m, nil

		case key.Matches(msg, inspectKeys.Home):
			m.cursor = 0
			return m, nil

		case key.Matches(msg, inspectKeys.End):
			if len(m.visible) > 0 {
				m.cursor = len(m.visible) - 1
			}
			return m, nil

		case key.Matches(msg, inspectKeys.Noise):
			m.hideNoise = !m.hideNoise
			current := m.currentIndex()
			m.visible = visibleIndexes(m.tokens, m.hideNoise)
			m.cursor = nearestVisible(m.visible, current)
			return m, nil

		case key.Matches(msg, inspectKeys.Search):
			m.searching = true
			m.search.SetValue("")
			m.search.Focus()
			return m, textinput.Blink

		case key.Matches(msg, inspectKeys.Next):
			if m.query != "" {
				m.cursor = m.findMatch(m.cursor + 1)
			}
			return m, nil
		}
	}

	return m, nil
}

func (m inspectModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.query = strings.TrimSpace(m.search.Value())
		m.search.Blur()
		if m.query != "" {
			m.cursor = m.findMatch(m.cursor)
		}
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

// findMatch returns the cursor of the first visible token at or after start
// whose rendered form contains the query, wrapping around once. The cursor
// stays put when nothing matches.
func (m inspectModel) findMatch(start int) int {
	if len(m.visible) == 0 {
		return m.cursor
	}
	query := strings.ToLower(m.query)
	for off := 0; off < len(m.visible); off++ {
		c := (start + off) % len(m.visible)
		tok := m.tokens[m.visible[c]]
		if strings.Contains(strings.ToLower(tok.String()), query) {
			return c
		}
	}
	return m.cursor
}

func (m inspectModel) currentIndex() int {
	if m.cursor < len(m.visible) {
		return m.visible[m.cursor]
	}
	return 0
}

// nearestVisible maps a stream index onto the filtered listing, clamping to
// the closest row at or after it.
func nearestVisible(visible []int, index int) int {
	for c, i := range visible {
		if i >= index {
			return c
		}
	}
	if len(visible) == 0 {
		return 0
	}
	return len(visible) - 1
}

func (m inspectModel) pageSize() int {
	if m.height > 12 {
		return m.height - 12
	}
	return 1
}

func (m inspectModel) View() string {
	if !m.initialized {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}

	var b strings.Builder

	header := headerStyle.Render("MyPython tokens")
	b.WriteString(header + " " + mutedStyle.Render(fmt.Sprintf("%s — %d tokens", m.path, len(m.tokens))) + "\n")
	b.WriteString(mutedStyle.Render(strings.Repeat("─", min(m.width-2, 72))) + "\n")

	rows := m.pageSize()
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}

	for c := start; c < len(m.visible) && c < start+rows; c++ {
		tok := m.tokens[m.visible[c]]
		line := fmt.Sprintf("%4d:%-3d %s", tok.Pos.Line, tok.Pos.Column, tok.String())
		if color, ok := kindColors[tok.Kind]; ok {
			line = lipgloss.NewStyle().Foreground(color).Render(line)
		}
		if c == m.cursor {
			b.WriteString(selectedStyle.Render("> ") + line + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.renderDetail())
	b.WriteString("\n")

	if m.searching {
		b.WriteString(m.search.View() + "\n")
	}

	footer := helpKeyStyle.Render("↑/↓") + helpDescStyle.Render(" move  ") +
		helpKeyStyle.Render("/") + helpDescStyle.Render(" search  ") +
		helpKeyStyle.Render("n") + helpDescStyle.Render(" next  ") +
		helpKeyStyle.Render("w") + helpDescStyle.Render(" whitespace  ") +
		helpKeyStyle.Render("q") + helpDescStyle.Render(" quit")
	b.WriteString(footer)

	return b.String()
}

func (m inspectModel) renderDetail() string {
	if len(m.visible) == 0 {
		return borderStyle.Render(mutedStyle.Render("No tokens"))
	}
	tok := m.tokens[m.visible[m.cursor]]

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Token"),
		fmt.Sprintf("  kind      %s", tok.Kind),
		fmt.Sprintf("  position  line %d, column %d", tok.Pos.Line, tok.Pos.Column),
	}
	if tok.Text != "" {
		lines = append(lines, fmt.Sprintf("  text      %q", tok.Text))
	}
	if tok.Kind == mypython.KindIndent || tok.Kind == mypython.KindDedent {
		lines = append(lines, fmt.Sprintf("  level     %d", tok.Level))
	}
	return borderStyle.Render(strings.Join(lines, "\n"))
}

func inspectCommand(args []string) error {
	if len(args) != 1 {
		return errors.New("mypython inspect: filename is required")
	}
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("an error occurred while opening %s: %w", args[0], err)
	}
	defer f.Close()

	stream, err := mypython.Scan(f)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	p := tea.NewProgram(newInspectModel(args[0], stream), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
