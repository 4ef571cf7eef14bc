package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// =============================================================================
// ElementListModel - Interactive element browser
// =============================================================================

// ElementListModel is the bubbletea model behind the inspect command. It
// lists a project's elements in z order and shows the selected element's
// JSON on enter. Elements on hidden layers are dimmed.
type ElementListModel struct {
	Project *drawing.Project
	Cursor  int
	Height  int
	Offset  int
	Detail  bool
}

// NewElementListModel creates a browser for p.
func NewElementListModel(p *drawing.Project) ElementListModel {
	return ElementListModel{Project: p, Height: 15}
}

func (m ElementListModel) Init() tea.Cmd {
	return nil
}

func (m ElementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.Project.Elements)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.Detail {
				m.Detail = false
				return m, nil
			}
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < n-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			if n > 0 {
				m.Cursor = n - 1
				m.Offset = max(0, n-m.Height)
			}
		case "enter", " ":
			m.Detail = !m.Detail && n > 0
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-8, 5)
	}
	return m, nil
}

func (m ElementListModel) View() string {
	var b strings.Builder
	p := m.Project

	b.WriteString(StyleTitle.Render(p.Name))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d elements, %d layers", len(p.Elements), len(p.Layers))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(p.Elements) == 0 {
		b.WriteString(listDimStyle.Render("  (empty drawing)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(p.Elements))
	for i := m.Offset; i < end; i++ {
		e := p.Elements[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-10s %-24s %s", cursor, e.Kind(), e.ElementID(), summary(e))
		switch {
		case i == m.Cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case !p.Layers.IsVisible(e.Layer()):
			b.WriteString(listDimStyle.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(p.Elements))))

	if m.Detail {
		b.WriteString("\n\n")
		b.WriteString(detailBoxStyle.Render(m.detail(p.Elements[m.Cursor])))
	}
	return b.String()
}

// detail renders an element's layer state and JSON.
func (m ElementListModel) detail(e drawing.Element) string {
	layer := e.Layer()
	state := "visible"
	if l, ok := m.Project.Layers.Find(layer); ok {
		layer = l.Name
		if !l.Visible {
			state = "hidden"
		} else if l.Locked {
			state = "locked"
		}
	}
	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return err.Error()
	}
	return StyleDim.Render("layer "+layer+" ("+state+")") + "\n" + string(data)
}
