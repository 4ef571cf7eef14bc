package cli

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func browser(t *testing.T, n int) ElementListModel {
	t.Helper()
	p := drawing.NewProject("pump house", "")
	for i := 0; i < n; i++ {
		if err := p.Add(line(fmt.Sprintf("w%d", i), 0, float64(i), 10, float64(i))); err != nil {
			t.Fatal(err)
		}
	}
	m := NewElementListModel(p)
	m.Height = 3
	return m
}

func press(m ElementListModel, keys ...string) ElementListModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(ElementListModel)
	}
	return m
}

func TestElementListNavigation(t *testing.T) {
	m := browser(t, 5)

	m = press(m, "j", "j", "j")
	if m.Cursor != 3 || m.Offset != 1 {
		t.Errorf("after 3 down: cursor=%d offset=%d", m.Cursor, m.Offset)
	}
	m = press(m, "j", "j", "j")
	if m.Cursor != 4 {
		t.Errorf("cursor past end = %d", m.Cursor)
	}
	m = press(m, "g")
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("after g: cursor=%d offset=%d", m.Cursor, m.Offset)
	}
	m = press(m, "G")
	if m.Cursor != 4 || m.Offset != 2 {
		t.Errorf("after G: cursor=%d offset=%d", m.Cursor, m.Offset)
	}
	m = press(m, "k", "k", "k")
	if m.Cursor != 1 || m.Offset != 1 {
		t.Errorf("after 3 up: cursor=%d offset=%d", m.Cursor, m.Offset)
	}
}

func TestElementListDetail(t *testing.T) {
	m := press(browser(t, 2), "j", "enter")
	if !m.Detail {
		t.Fatal("enter should open the detail view")
	}
	view := m.View()
	if !strings.Contains(view, `"id": "w1"`) || !strings.Contains(view, "Layer 1") {
		t.Errorf("detail view:\n%s", view)
	}

	m = press(m, "esc")
	if m.Detail {
		t.Error("esc should close the detail view")
	}
	if _, cmd := m.Update(key("esc")); cmd == nil {
		t.Error("esc without detail should quit")
	}
}

func TestElementListEmpty(t *testing.T) {
	m := press(browser(t, 0), "enter", "G")
	if m.Detail || m.Cursor != 0 {
		t.Errorf("empty list: detail=%v cursor=%d", m.Detail, m.Cursor)
	}
	if !strings.Contains(m.View(), "(empty drawing)") {
		t.Error("empty view missing placeholder")
	}
}

func TestElementListWindowSize(t *testing.T) {
	next, _ := browser(t, 1).Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if got := next.(ElementListModel).Height; got != 5 {
		t.Errorf("height = %d, want 5", got)
	}
}
