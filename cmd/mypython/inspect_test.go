package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KennyZhang12138/MyPython/mypython"
)

func newTestModel(t *testing.T, src string) inspectModel {
	t.Helper()
	stream, err := mypython.Scan(strings.NewReader(src))
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	return newInspectModel("test.mpy", stream)
}

func update(t *testing.T, m inspectModel, msg tea.Msg) (inspectModel, tea.Cmd) {
	t.Helper()
	model, cmd := m.Update(msg)
	im, ok := model.(inspectModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return im, cmd
}

func TestInspectCursorMoves(t *testing.T) {
	m := newTestModel(t, "x = 1\n")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 1 {
		t.Fatalf("cursor after down: %d", m.cursor)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor after up: %d", m.cursor)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("cursor moved above first token: %d", m.cursor)
	}
}

func TestInspectCursorStopsAtLastToken(t *testing.T) {
	m := newTestModel(t, "x")
	// Stream is Symbol + EOF; cursor must clamp at index 1.
	for i := 0; i < 5; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != 1 {
		t.Fatalf("cursor did not clamp: %d", m.cursor)
	}
}

func TestInspectQuitReturnsQuitCmd(t *testing.T) {
	m := newTestModel(t, "x = 1\n")

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestInspectNoiseToggleFiltersWhitespace(t *testing.T) {
	m := newTestModel(t, "x = 1\n")
	if len(m.visible) != 7 {
		t.Fatalf("expected 7 visible tokens, got %d", len(m.visible))
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	// Whitespace and EOL rows disappear: symbol, =, 1, EOF remain.
	if len(m.visible) != 4 {
		t.Fatalf("expected 4 visible tokens, got %d", len(m.visible))
	}
	for _, i := range m.visible {
		kind := m.tokens[i].Kind
		if kind == mypython.KindWhitespace || kind == mypython.KindEOL {
			t.Fatalf("noise token still visible: %v", kind)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}})
	if len(m.visible) != 7 {
		t.Fatalf("expected filter to toggle back, got %d", len(m.visible))
	}
}

func TestInspectSearchJumpsToMatch(t *testing.T) {
	m := newTestModel(t, "x = 1\n")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.searching {
		t.Fatalf("search mode not entered")
	}

	m.search.SetValue("integer")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatalf("search mode not left on enter")
	}
	if m.tokens[m.visible[m.cursor]].Kind != mypython.KindInteger {
		t.Fatalf("cursor not on integer token, at %v", m.tokens[m.visible[m.cursor]].Kind)
	}
}

func TestInspectSearchWrapsAround(t *testing.T) {
	m := newTestModel(t, "a b a\n")
	m.query = `"a"`
	m.cursor = len(m.visible) - 1

	// Next match from the end wraps to the first symbol.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	tok := m.tokens[m.visible[m.cursor]]
	if tok.Kind != mypython.KindSymbol || tok.Text != "a" {
		t.Fatalf("expected wrap to first a, got %v %q", tok.Kind, tok.Text)
	}
	if m.cursor != 0 {
		t.Fatalf("expected cursor 0, got %d", m.cursor)
	}
}

func TestInspectSearchEscCancels(t *testing.T) {
	m := newTestModel(t, "x\n")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Fatalf("esc did not leave search mode")
	}
	if m.query != "" {
		t.Fatalf("cancelled search committed a query: %q", m.query)
	}
}

func TestNearestVisibleClamps(t *testing.T) {
	visible := []int{0, 2, 4}
	if got := nearestVisible(visible, 3); got != 2 {
		t.Fatalf("expected row 2, got %d", got)
	}
	if got := nearestVisible(visible, 9); got != 2 {
		t.Fatalf("expected clamp to last row, got %d", got)
	}
	if got := nearestVisible(nil, 1); got != 0 {
		t.Fatalf("expected 0 for empty listing, got %d", got)
	}
}
