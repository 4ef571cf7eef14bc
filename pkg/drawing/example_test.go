package drawing_test

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/geom"
)

func ExampleBounds() {
	arc, _ := drawing.NewArc(drawing.Attrs{ID: "a1"}, geom.Pt(0, 0), 10, 0, 90)
	b, _ := drawing.Bounds(arc)
	fmt.Printf("%.0f %.0f %.0f %.0f\n", b.MinX, b.MinY, b.MaxX, b.MaxY)
	// Output: 0 0 10 10
}

func ExampleDecodeElement() {
	e, err := drawing.DecodeElement([]byte(`{"type":"circle","id":"c1","cx":4,"cy":2,"radius":3}`))
	if err != nil {
		fmt.Println(err)
		return
	}
	switch v := e.(type) {
	case drawing.Circle:
		fmt.Println(v.Kind(), v.Center(), v.Radius)
	default:
		fmt.Println("unexpected", v.Kind())
	}
	// Output: circle {4 2} 3
}

func ExampleProject_Replace() {
	p := drawing.NewProject("demo", "")
	_ = p.Add(
		drawing.Line{Attrs: drawing.Attrs{ID: "a"}, X2: 10},
		drawing.Line{Attrs: drawing.Attrs{ID: "b"}, Y2: 10},
	)
	p.Replace("a",
		drawing.Line{Attrs: drawing.Attrs{ID: "a1"}, X2: 5},
		drawing.Line{Attrs: drawing.Attrs{ID: "a2"}, X1: 5, X2: 10},
	)
	var ids []string
	for _, e := range p.Elements {
		ids = append(ids, e.ElementID())
	}
	fmt.Println(strings.Join(ids, " "))

	data, _ := json.Marshal(p.Elements[0])
	fmt.Println(string(data))
	// Output:
	// a1 a2 b
	// {"type":"line","id":"a1","x1":0,"y1":0,"x2":5,"y2":0}
}
