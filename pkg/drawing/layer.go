package drawing

// DefaultLayerID is the layer new projects start with.
const DefaultLayerID = "default"

// Layer groups elements for visibility and locking.
type Layer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Visible bool   `json:"visible"`
	Locked  bool   `json:"locked"`
	Color   string `json:"color,omitempty"`
}

// DefaultLayer returns the visible, unlocked layer every project starts with.
func DefaultLayer() Layer {
	return Layer{ID: DefaultLayerID, Name: "Layer 1", Visible: true, Color: "#3B82F6"}
}

// Layers is a project's layer table.
type Layers []Layer

// Find returns the layer with the given id.
func (ls Layers) Find(id string) (Layer, bool) {
	for _, l := range ls {
		if l.ID == id {
			return l, true
		}
	}
	return Layer{}, false
}

// IsVisible reports whether elements on layer id are shown. Elements that
// reference an unknown layer, or no layer, are visible.
func (ls Layers) IsVisible(id string) bool {
	l, ok := ls.Find(id)
	return !ok || l.Visible
}

// IsEditable reports whether elements on layer id may be changed: the layer
// must be visible and unlocked. Unknown layers are editable.
func (ls Layers) IsEditable(id string) bool {
	l, ok := ls.Find(id)
	return !ok || (l.Visible && !l.Locked)
}

// Visible filters elements down to those on visible layers, keeping order.
func (ls Layers) Visible(elements []Element) []Element {
	out := make([]Element, 0, len(elements))
	for _, e := range elements {
		if ls.IsVisible(e.Layer()) {
			out = append(out, e)
		}
	}
	return out
}
