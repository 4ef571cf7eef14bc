package workspace

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/hydrodraw/pkg/drawing"
	"github.com/matzehuels/hydrodraw/pkg/edit"
	"github.com/matzehuels/hydrodraw/pkg/errors"
	"github.com/matzehuels/hydrodraw/pkg/geom"
	"github.com/matzehuels/hydrodraw/pkg/observability"
	"github.com/matzehuels/hydrodraw/pkg/snap"
	"github.com/matzehuels/hydrodraw/pkg/store"
)

func seqOperator() *edit.Operator {
	var mu sync.Mutex
	n := 0
	return edit.New(edit.WithIDGenerator(func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("n%d", n)
	}))
}

func line(id string, x1, y1, x2, y2 float64) drawing.Line {
	return drawing.Line{Attrs: drawing.Attrs{ID: id, LayerID: drawing.DefaultLayerID}, X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// setup stores a project holding elements and returns a service over it.
func setup(t *testing.T, elements ...drawing.Element) (*Service, *drawing.Project) {
	t.Helper()
	st := store.NewMemoryStore()
	p := drawing.NewProject("plan", "")
	if err := p.Add(elements...); err != nil {
		t.Fatal(err)
	}
	if err := st.Create(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	return New(st, WithOperator(seqOperator())), p
}

func ids(elements []drawing.Element) []string {
	out := make([]string, len(elements))
	for i, e := range elements {
		out[i] = e.ElementID()
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSplitPersists(t *testing.T) {
	ctx := context.Background()
	s, p := setup(t, line("top", 0, 10, 10, 10), line("A", 0, 0, 10, 0), line("B", 5, -5, 5, 5))

	c, err := s.Split(ctx, p.ID, "A", geom.Pt(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !equal(c.Removed, []string{"A"}) || !equal(ids(c.Added), []string{"n1", "n2"}) {
		t.Fatalf("change = %v / %v", c.Removed, ids(c.Added))
	}

	got, err := s.Get(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"top", "n1", "n2", "B"}; !equal(ids(got.Elements), want) {
		t.Errorf("elements = %v, want %v", ids(got.Elements), want)
	}
	if got.UpdatedAt.Before(p.UpdatedAt) {
		t.Errorf("UpdatedAt went backwards: %v < %v", got.UpdatedAt, p.UpdatedAt)
	}
}

func TestSplitRefusals(t *testing.T) {
	ctx := context.Background()
	hidden := line("H", 0, 0, 10, 0)
	hidden.LayerID = "hidden"
	locked := line("L", 0, 0, 10, 0)
	locked.LayerID = "locked"
	rect := drawing.Rectangle{Attrs: drawing.Attrs{ID: "R"}, Width: 5, Height: 5}

	s, p := setup(t, line("A", 0, 0, 10, 0), hidden, locked, rect)
	layers := append(drawing.Layers{}, p.Layers...)
	layers = append(layers,
		drawing.Layer{ID: "hidden", Name: "Hidden", Visible: false},
		drawing.Layer{ID: "locked", Name: "Locked", Visible: true, Locked: true},
	)
	if _, err := s.Update(ctx, p.ID, drawing.ProjectUpdate{Layers: &layers}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		id   string
		at   geom.Point
		code errors.Code
	}{
		{"missing element", "nope", geom.Pt(5, 0), errors.ErrCodeElementNotFound},
		{"hidden layer", "H", geom.Pt(5, 0), errors.ErrCodeLayerHidden},
		{"locked layer", "L", geom.Pt(5, 0), errors.ErrCodeLayerLocked},
		{"rectangle", "R", geom.Pt(5, 0), errors.ErrCodeUnsupported},
		{"off the line", "A", geom.Pt(5, 3), errors.ErrCodeInvalidInput},
		{"at an endpoint", "A", geom.Pt(0.5, 0), errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Split(ctx, p.ID, tt.id, tt.at)
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %s, want %s (%v)", got, tt.code, err)
			}
		})
	}

	if _, err := s.Split(ctx, "missing", "A", geom.Pt(5, 0)); !errors.IsNotFound(err) {
		t.Errorf("missing project: %v", err)
	}
	got, _ := s.Get(ctx, p.ID)
	if len(got.Elements) != 4 {
		t.Errorf("refused operations changed the project: %v", ids(got.Elements))
	}
}

func TestSplitAll(t *testing.T) {
	ctx := context.Background()
	s, p := setup(t,
		line("A", 0, 0, 30, 0),
		line("B", 10, -5, 10, 5),
		line("C", 20, -5, 20, 5),
		line("far", 100, 100, 110, 100),
	)

	c, err := s.SplitAll(ctx, p.ID, "A")
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Added) != 3 {
		t.Fatalf("added %d fragments, want 3", len(c.Added))
	}
	got, _ := s.Get(ctx, p.ID)
	if len(got.Elements) != 6 {
		t.Errorf("elements = %v", ids(got.Elements))
	}

	c, err = s.SplitAll(ctx, p.ID, "far")
	if err != nil || !c.Empty() {
		t.Errorf("isolated element: %+v, %v", c, err)
	}
}

func TestTrim(t *testing.T) {
	ctx := context.Background()
	s, p := setup(t,
		line("T", 0, 0, 30, 0),
		line("E1", 10, -5, 10, 5),
		line("E2", 20, -5, 20, 5),
	)

	c, err := s.Trim(ctx, p.ID, "T", geom.Pt(15, 0), []string{"E1", "E2"})
	if err != nil {
		t.Fatal(err)
	}
	if !equal(c.Removed, []string{"T"}) || len(c.Added) != 2 {
		t.Fatalf("change = %v / %v", c.Removed, ids(c.Added))
	}
	left, right := c.Added[0].(drawing.Line), c.Added[1].(drawing.Line)
	if geom.Distance(left.End(), geom.Pt(10, 0)) > 1e-6 || geom.Distance(right.Start(), geom.Pt(20, 0)) > 1e-6 {
		t.Errorf("pieces = %v-%v, %v-%v", left.Start(), left.End(), right.Start(), right.End())
	}

	got, _ := s.Get(ctx, p.ID)
	if len(got.Elements) != 4 {
		t.Errorf("elements = %v", ids(got.Elements))
	}
}

func TestTrimRefusals(t *testing.T) {
	ctx := context.Background()
	circle := drawing.Circle{Attrs: drawing.Attrs{ID: "C"}, CX: 50, CY: 50, Radius: 5}
	s, p := setup(t, line("T", 0, 0, 30, 0), circle)

	if _, err := s.Trim(ctx, p.ID, "C", geom.Pt(55, 50), nil); !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("circle target: %v", err)
	}
	if _, err := s.Trim(ctx, p.ID, "T", geom.Pt(15, 0), []string{"ghost"}); !errors.Is(err, errors.ErrCodeElementNotFound) {
		t.Errorf("missing edge: %v", err)
	}
	c, err := s.Trim(ctx, p.ID, "T", geom.Pt(15, 0), nil)
	if err != nil || !c.Empty() {
		t.Errorf("no crossings: %+v, %v", c, err)
	}
}

func TestExtend(t *testing.T) {
	ctx := context.Background()
	s, p := setup(t, line("L", 0, 0, 5, 0), line("W", 10, -5, 10, 5), line("V", -10, -5, -10, 5))

	c, err := s.Extend(ctx, p.ID, "L", []string{"W"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !equal(c.Removed, []string{"L"}) || !equal(ids(c.Added), []string{"L"}) {
		t.Fatalf("change = %v / %v", c.Removed, ids(c.Added))
	}
	if got := c.Added[0].(drawing.Line).End(); geom.Distance(got, geom.Pt(10, 0)) > 1e-6 {
		t.Errorf("end = %v", got)
	}

	pick := geom.Pt(1, 0)
	c, err = s.Extend(ctx, p.ID, "L", nil, &pick)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Added[0].(drawing.Line).Start(); geom.Distance(got, geom.Pt(-10, 0)) > 1e-6 {
		t.Errorf("start = %v", got)
	}

	got, _ := s.Get(ctx, p.ID)
	l := got.Elements[0].(drawing.Line)
	if geom.Distance(l.Start(), geom.Pt(-10, 0)) > 1e-6 || geom.Distance(l.End(), geom.Pt(10, 0)) > 1e-6 {
		t.Errorf("stored line = %v-%v", l.Start(), l.End())
	}
}

func TestExtendNoBoundary(t *testing.T) {
	ctx := context.Background()
	s, p := setup(t, line("L", 0, 0, 5, 0), line("P", 0, 5, 5, 5))

	c, err := s.Extend(ctx, p.ID, "L", nil, nil)
	if err != nil || !c.Empty() {
		t.Errorf("parallel boundary: %+v, %v", c, err)
	}
}

func TestSnap(t *testing.T) {
	ctx := context.Background()
	s, p := setup(t, line("A", 0, 0, 100, 0))

	res, ok, err := s.Snap(ctx, p.ID, SnapRequest{Point: geom.Pt(103, 2)})
	if err != nil || !ok {
		t.Fatalf("Snap = %v, %v, %v", res, ok, err)
	}
	if res.Kind != snap.KindEndpoint || res.Point != geom.Pt(100, 0) {
		t.Errorf("result = %+v", res)
	}

	res, ok, _ = s.Snap(ctx, p.ID, SnapRequest{Point: geom.Pt(41, 58)})
	if !ok || res.Kind != snap.KindGrid || res.Point != geom.Pt(40, 60) {
		t.Errorf("grid = %+v, %v", res, ok)
	}

	off := false
	if _, err := s.Update(ctx, p.ID, drawing.ProjectUpdate{SnapToGrid: &off}); err != nil {
		t.Fatal(err)
	}
	if res, ok, _ := s.Snap(ctx, p.ID, SnapRequest{Point: geom.Pt(41, 58)}); ok {
		t.Errorf("grid snap with snap_to_grid off: %+v", res)
	}
}

func TestProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	s := New(store.NewMemoryStore())

	if _, err := s.Create(ctx, NewProjectRequest{}); !errors.IsInvalid(err) {
		t.Errorf("unnamed project: %v", err)
	}
	p, err := s.Create(ctx, NewProjectRequest{Name: "site", CanvasWidth: 800})
	if err != nil {
		t.Fatal(err)
	}
	if p.CanvasWidth != 800 || p.CanvasHeight != drawing.DefaultCanvasHeight {
		t.Errorf("canvas = %vx%v", p.CanvasWidth, p.CanvasHeight)
	}

	name := "renamed"
	up, err := s.Update(ctx, p.ID, drawing.ProjectUpdate{Name: &name})
	if err != nil || up.Name != "renamed" {
		t.Fatalf("Update = %v, %v", up, err)
	}
	list, _ := s.List(ctx)
	if len(list) != 1 {
		t.Errorf("List = %d projects", len(list))
	}
	if err := s.Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get(ctx, p.ID); !errors.IsNotFound(err) {
		t.Errorf("Get after delete: %v", err)
	}
}

func TestProjectLocksAreDropped(t *testing.T) {
	ctx := context.Background()
	s, p := setup(t, line("A", 0, 0, 10, 0))

	if _, err := s.Split(ctx, p.ID, "A", geom.Pt(5, 0)); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Split(ctx, "missing", "A", geom.Pt(5, 0)); !errors.IsNotFound(err) {
		t.Errorf("split in missing project: %v", err)
	}
	name := "x"
	if _, err := s.Update(ctx, "also-missing", drawing.ProjectUpdate{Name: &name}); !errors.IsNotFound(err) {
		t.Errorf("update of missing project: %v", err)
	}
	if err := s.Delete(ctx, "never-created"); !errors.IsNotFound(err) {
		t.Errorf("delete of missing project: %v", err)
	}
	if err := s.Delete(ctx, p.ID); err != nil {
		t.Fatal(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.locks) != 0 {
		t.Errorf("locks left behind: %d", len(s.locks))
	}
}

func TestConcurrentEditsSerialize(t *testing.T) {
	ctx := context.Background()
	var elements []drawing.Element
	for i := 0; i < 8; i++ {
		elements = append(elements, line(fmt.Sprintf("L%d", i), 0, float64(i*10), 10, float64(i*10)))
	}
	s, p := setup(t, elements...)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := s.Split(ctx, p.ID, fmt.Sprintf("L%d", i), geom.Pt(5, float64(i*10))); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	got, _ := s.Get(ctx, p.ID)
	if len(got.Elements) != 16 {
		t.Errorf("elements = %d, want 16", len(got.Elements))
	}
}

type editRecorder struct {
	mu  sync.Mutex
	ops []string
}

func (r *editRecorder) OnEdit(_ context.Context, op, _ string, _, _ int, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		op += "!"
	}
	r.ops = append(r.ops, op)
}

func TestEditHooks(t *testing.T) {
	rec := &editRecorder{}
	observability.SetEditHooks(rec)
	defer observability.Reset()

	ctx := context.Background()
	s, p := setup(t, line("A", 0, 0, 10, 0))
	_, _ = s.Split(ctx, p.ID, "A", geom.Pt(5, 0))
	_, _ = s.Split(ctx, p.ID, "gone", geom.Pt(5, 0))

	if want := []string{"split", "split!"}; !equal(rec.ops, want) {
		t.Errorf("ops = %v, want %v", rec.ops, want)
	}
}
