package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
	"github.com/matzehuels/hydrodraw/pkg/snap"
	"github.com/matzehuels/hydrodraw/pkg/workspace"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleRemoved     = lipgloss.NewStyle().Foreground(colorRed)
	styleAdded       = lipgloss.NewStyle().Foreground(colorGreen)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
	iconArrow   = "→"
	iconAdded   = "+"
	iconRemoved = "-"
)

// =============================================================================
// Status Output
// =============================================================================

// printer writes styled lines to a command's output.
type printer struct{ w io.Writer }

func (p printer) success(format string, args ...any) {
	fmt.Fprintln(p.w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (p printer) failure(format string, args ...any) {
	fmt.Fprintln(p.w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func (p printer) info(format string, args ...any) {
	fmt.Fprintln(p.w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func (p printer) detail(format string, args ...any) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

func (p printer) file(path string) {
	fmt.Fprintln(p.w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

func (p printer) keyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Fprintln(p.w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// =============================================================================
// Drawing Output
// =============================================================================

// change prints the elements an operation removed and added.
func (p printer) change(op string, c workspace.Change) {
	if c.Empty() {
		p.info("%s: nothing to do", op)
		return
	}
	p.success("%s: %d removed, %d added", op, len(c.Removed), len(c.Added))
	for _, id := range c.Removed {
		fmt.Fprintln(p.w, "  "+styleRemoved.Render(iconRemoved)+" "+StyleDim.Render(id))
	}
	for _, e := range c.Added {
		fmt.Fprintln(p.w, "  "+styleAdded.Render(iconAdded)+" "+StyleValue.Render(e.ElementID())+" "+StyleDim.Render(summary(e)))
	}
}

// snapResult prints one resolved snap.
func (p printer) snapResult(r snap.Result) {
	var sources []string
	for _, e := range r.Sources {
		sources = append(sources, e.ElementID())
	}
	line := fmt.Sprintf("%-13s %s  d=%s", r.Kind, formatPoint(r.Point), StyleNumber.Render(fmt.Sprintf("%.3f", r.Distance)))
	if len(sources) > 0 {
		line += "  " + StyleDim.Render(strings.Join(sources, ", "))
	}
	fmt.Fprintln(p.w, line)
}

// elementTable renders elements as a bordered table.
func elementTable(elements []drawing.Element, layers drawing.Layers) string {
	rows := make([][]string, 0, len(elements))
	for i, e := range elements {
		layer := e.Layer()
		if !layers.IsVisible(layer) {
			layer += " (hidden)"
		} else if !layers.IsEditable(layer) {
			layer += " (locked)"
		}
		rows = append(rows, []string{fmt.Sprint(i), e.ElementID(), string(e.Kind()), layer, summary(e)})
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "ID", "Type", "Layer", "Geometry").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 || col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		}).
		Render()
}

// summary describes an element's geometry on one line.
func summary(e drawing.Element) string {
	switch v := e.(type) {
	case drawing.Line:
		return fmt.Sprintf("%s %s %s  len %.2f", formatPoint(v.Start()), iconArrow, formatPoint(v.End()), v.Length())
	case drawing.Polyline:
		kind := "open"
		if v.Closed {
			kind = "closed"
		}
		return fmt.Sprintf("%d points, %s", len(v.Points), kind)
	case drawing.Rectangle:
		return fmt.Sprintf("%s  %.2f x %.2f", formatPoint(geom.Pt(v.X, v.Y)), v.Width, v.Height)
	case drawing.Circle:
		return fmt.Sprintf("center %s  r %.2f", formatPoint(v.Center()), v.Radius)
	case drawing.Arc:
		return fmt.Sprintf("center %s  r %.2f  %.1f° %s %.1f°", formatPoint(v.Center()), v.Radius, v.StartAngle, iconArrow, v.EndAngle)
	case drawing.Text:
		return fmt.Sprintf("%q at %s", v.Text, formatPoint(geom.Pt(v.X, v.Y)))
	}
	return ""
}

func formatPoint(p geom.Point) string {
	return fmt.Sprintf("(%s, %s)", trimFloat(p.X), trimFloat(p.Y))
}

func trimFloat(v float64) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
	if s == "-0" {
		return "0"
	}
	return s
}
