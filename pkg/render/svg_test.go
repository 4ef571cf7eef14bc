package render

import (
	"bytes"
	"os/exec"
	"strings"
	"testing"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

func project(elements ...drawing.Element) *drawing.Project {
	p := drawing.NewProject("plan", "")
	p.Elements = elements
	return p
}

func attrs(id string) drawing.Attrs {
	return drawing.Attrs{ID: id, LayerID: drawing.DefaultLayerID}
}

func TestRenderSVGElements(t *testing.T) {
	tests := []struct {
		name string
		elem drawing.Element
		want string
	}{
		{
			"line takes layer color",
			drawing.Line{Attrs: attrs("l"), X2: 10, Y2: 5},
			`<line id="l" x1="0" y1="0" x2="10" y2="5" stroke="#3B82F6" stroke-width="1"/>`,
		},
		{
			"own stroke wins",
			drawing.Line{Attrs: drawing.Attrs{ID: "s", Stroke: "red", StrokeWidth: 2.5}, X2: 1},
			`stroke="red" stroke-width="2.5"`,
		},
		{
			"open polyline",
			drawing.Polyline{Attrs: attrs("p"), Points: []geom.Point{{X: 0, Y: 0}, {X: 1.25, Y: 2}}},
			`<polyline id="p" points="0,0 1.25,2" fill="none"`,
		},
		{
			"closed polyline",
			drawing.Polyline{Attrs: attrs("g"), Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, Closed: true},
			`<polygon id="g" points="0,0 1,0 1,1"`,
		},
		{
			"filled rectangle",
			drawing.Rectangle{Attrs: attrs("r"), X: 1, Y: 2, Width: 3, Height: 4, Fill: "#eee"},
			`<rect id="r" x="1" y="2" width="3" height="4" fill="#eee"`,
		},
		{
			"circle",
			drawing.Circle{Attrs: attrs("c"), CX: 5, CY: 5, Radius: 2},
			`<circle id="c" cx="5" cy="5" r="2" fill="none"`,
		},
		{
			"quarter arc",
			drawing.Arc{Attrs: attrs("a"), Radius: 10, StartAngle: 0, EndAngle: 90},
			`<path id="a" d="M 10 0 A 10 10 0 0 1 0 10" fill="none"`,
		},
		{
			"large arc",
			drawing.Arc{Attrs: attrs("b"), Radius: 10, StartAngle: 0, EndAngle: 270},
			`d="M 10 0 A 10 10 0 1 1 0 -10"`,
		},
		{
			"full arc",
			drawing.Arc{Attrs: attrs("f"), Radius: 3, StartAngle: 45, EndAngle: 45},
			`<circle id="f" cx="0" cy="0" r="3" fill="none"`,
		},
		{
			"escaped rotated text",
			drawing.Text{Attrs: attrs("t"), X: 1, Y: 2, Text: "a<b", Height: 12, Rotation: 30},
			`<text id="t" x="1" y="2" font-size="12" fill="#3B82F6" transform="rotate(30 1 2)">a&lt;b</text>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svg := string(RenderSVG(project(tt.elem)))
			if !strings.Contains(svg, tt.want) {
				t.Errorf("missing %s in\n%s", tt.want, svg)
			}
		})
	}
}

func TestRenderSVGDocument(t *testing.T) {
	svg := string(RenderSVG(project(), WithBackground("#fff")))
	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 2000 1500" width="2000" height="1500">`) {
		t.Errorf("header = %s", strings.SplitN(svg, "\n", 2)[0])
	}
	if !strings.Contains(svg, "<title>plan</title>") || !strings.Contains(svg, `fill="#fff"`) {
		t.Errorf("missing title or background:\n%s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestRenderSVGFit(t *testing.T) {
	svg := string(RenderSVG(project(drawing.Line{Attrs: attrs("l"), X2: 10, Y2: 5}), WithFit(5)))
	if !strings.Contains(svg, `viewBox="-5 -5 20 15"`) {
		t.Errorf("fit view box missing:\n%s", svg)
	}
}

func TestRenderSVGHiddenLayers(t *testing.T) {
	p := project(
		drawing.Line{Attrs: attrs("shown"), X2: 1},
		drawing.Line{Attrs: drawing.Attrs{ID: "ghost", LayerID: "off"}, X2: 1},
	)
	p.Layers = append(p.Layers, drawing.Layer{ID: "off", Name: "Off", Visible: false})

	svg := string(RenderSVG(p))
	if !strings.Contains(svg, `id="shown"`) || strings.Contains(svg, `id="ghost"`) {
		t.Errorf("hidden layer drawn:\n%s", svg)
	}
	if svg := string(RenderSVG(p, WithHiddenLayers())); !strings.Contains(svg, `id="ghost"`) {
		t.Errorf("WithHiddenLayers skipped element:\n%s", svg)
	}
}

func TestRenderSVGOrder(t *testing.T) {
	svg := string(RenderSVG(project(
		drawing.Line{Attrs: attrs("bottom"), X2: 1},
		drawing.Line{Attrs: attrs("top"), X2: 1},
	)))
	if strings.Index(svg, `id="bottom"`) > strings.Index(svg, `id="top"`) {
		t.Error("elements not drawn in z order")
	}
}

func TestNum(t *testing.T) {
	tests := map[float64]string{0: "0", 10: "10", 0.5: "0.5", -2.25: "-2.25", 1.0004: "1", -0.0001: "0"}
	for in, want := range tests {
		if got := num(in); got != want {
			t.Errorf("num(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestToPNG(t *testing.T) {
	if _, err := exec.LookPath(converter); err != nil {
		t.Skip("rsvg-convert not installed")
	}
	png, err := ToPNG(RenderSVG(project(drawing.Line{Attrs: attrs("l"), X2: 10})), 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("not a PNG: % x", png[:8])
	}
}
