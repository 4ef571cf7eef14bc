package render

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

// DefaultStroke is used for elements without a stroke on layers without a
// color.
const DefaultStroke = "#1f2937"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
	hidden     bool
	fit        bool
	margin     float64
}

// WithBackground fills the canvas with color before drawing.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithHiddenLayers also draws elements on hidden layers.
func WithHiddenLayers() SVGOption { return func(r *svgRenderer) { r.hidden = true } }

// WithFit crops the view box to the drawn elements plus margin instead of
// the project's canvas.
func WithFit(margin float64) SVGOption {
	return func(r *svgRenderer) { r.fit, r.margin = true, margin }
}

// RenderSVG draws p as a standalone SVG document.
func RenderSVG(p *drawing.Project, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	elements := []drawing.Element(p.Elements)
	if !r.hidden {
		elements = p.Layers.Visible(elements)
	}

	view := geom.Rect{MaxX: p.CanvasWidth, MaxY: p.CanvasHeight}
	if r.fit {
		if b, ok := drawing.BoundsAll(elements); ok {
			view = b.Expand(r.margin)
		}
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s" width="%.0f" height="%.0f">`+"\n",
		num(view.MinX), num(view.MinY), num(view.Width()), num(view.Height()), view.Width(), view.Height())
	if p.Name != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", escape(p.Name))
	}
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
			num(view.MinX), num(view.MinY), num(view.Width()), num(view.Height()), escape(r.background))
	}
	for _, e := range elements {
		renderElement(&buf, e, p.Layers)
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderElement(buf *bytes.Buffer, e drawing.Element, layers drawing.Layers) {
	a := drawing.AttrsOf(e)
	stroke := paint(a, layers)

	switch el := e.(type) {
	case drawing.Line:
		fmt.Fprintf(buf, `  <line id="%s" x1="%s" y1="%s" x2="%s" y2="%s" %s/>`+"\n",
			escape(a.ID), num(el.X1), num(el.Y1), num(el.X2), num(el.Y2), stroke)
	case drawing.Polyline:
		tag := "polyline"
		if el.Closed {
			tag = "polygon"
		}
		fmt.Fprintf(buf, `  <%s id="%s" points="%s" fill="none" %s/>`+"\n", tag, escape(a.ID), points(el.Points), stroke)
	case drawing.Rectangle:
		fmt.Fprintf(buf, `  <rect id="%s" x="%s" y="%s" width="%s" height="%s" fill="%s" %s/>`+"\n",
			escape(a.ID), num(el.X), num(el.Y), num(el.Width), num(el.Height), fill(el.Fill), stroke)
	case drawing.Circle:
		fmt.Fprintf(buf, `  <circle id="%s" cx="%s" cy="%s" r="%s" fill="%s" %s/>`+"\n",
			escape(a.ID), num(el.CX), num(el.CY), num(el.Radius), fill(el.Fill), stroke)
	case drawing.Arc:
		renderArc(buf, a.ID, el, stroke)
	case drawing.Text:
		renderText(buf, a, el, layers)
	}
}

// renderArc writes an arc as a path. A full sweep cannot be expressed with a
// single arc command, so it becomes a circle.
func renderArc(buf *bytes.Buffer, id string, a drawing.Arc, stroke string) {
	sweep := geom.Sweep(a.StartAngle, a.EndAngle)
	if sweep >= 360 {
		fmt.Fprintf(buf, `  <circle id="%s" cx="%s" cy="%s" r="%s" fill="none" %s/>`+"\n",
			escape(id), num(a.CX), num(a.CY), num(a.Radius), stroke)
		return
	}
	start, end := a.Endpoints()
	large := 0
	if sweep > 180 {
		large = 1
	}
	fmt.Fprintf(buf, `  <path id="%s" d="M %s %s A %s %s 0 %d 1 %s %s" fill="none" %s/>`+"\n",
		escape(id), num(start.X), num(start.Y), num(a.Radius), num(a.Radius), large, num(end.X), num(end.Y), stroke)
}

func renderText(buf *bytes.Buffer, a drawing.Attrs, t drawing.Text, layers drawing.Layers) {
	color := a.Stroke
	if color == "" {
		color = layerColor(a.LayerID, layers)
	}
	fmt.Fprintf(buf, `  <text id="%s" x="%s" y="%s" font-size="%s" fill="%s"`,
		escape(a.ID), num(t.X), num(t.Y), num(t.Height), escape(color))
	if t.Rotation != 0 {
		fmt.Fprintf(buf, ` transform="rotate(%s %s %s)"`, num(t.Rotation), num(t.X), num(t.Y))
	}
	fmt.Fprintf(buf, ">%s</text>\n", escape(t.Text))
}

// paint returns the stroke attributes for an element.
func paint(a drawing.Attrs, layers drawing.Layers) string {
	stroke := a.Stroke
	if stroke == "" {
		stroke = layerColor(a.LayerID, layers)
	}
	width := a.StrokeWidth
	if width <= 0 {
		width = 1
	}
	return fmt.Sprintf(`stroke="%s" stroke-width="%s"`, escape(stroke), num(width))
}

func layerColor(id string, layers drawing.Layers) string {
	if l, ok := layers.Find(id); ok && l.Color != "" {
		return l.Color
	}
	return DefaultStroke
}

func fill(f string) string {
	if f == "" {
		return "none"
	}
	return escape(f)
}

func points(pts []geom.Point) string {
	parts := make([]string, len(pts))
	for i, p := range pts {
		parts[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(parts, " ")
}

// num formats a coordinate with at most three decimals and no trailing
// zeros.
func num(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}

func escape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
