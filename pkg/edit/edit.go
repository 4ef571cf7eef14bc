package edit

import "github.com/matzehuels/hydrodraw/pkg/drawing"

// Tolerances and constants, in drawing units or degrees.
const (
	// SplitTolerance is how far a split point may sit from the element.
	SplitTolerance = 1.0
	// CircleSplitGap is the angular gap left where a circle is opened.
	CircleSplitGap = 2.0
	// TrimClickTolerance is how near the click must be to the bracketed
	// piece for Trim to delete it.
	TrimClickTolerance = 5.0
	// MinFragmentLength drops trimmed pieces shorter than this.
	MinFragmentLength = 1.0
	// ExtendReach is the length of the probe ray used by Extend.
	ExtendReach = 10000.0
)

// Operator runs the editing operations.
type Operator struct {
	newID func() string
}

// Option configures an Operator.
type Option func(*Operator)

// WithIDGenerator sets the function used to mint fragment ids.
func WithIDGenerator(fn func() string) Option {
	return func(o *Operator) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// New returns an Operator that mints UUIDs unless configured otherwise.
func New(opts ...Option) *Operator {
	o := &Operator{newID: drawing.NewID}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// fresh re-ids a derived element.
func (o *Operator) fresh(e drawing.Element) drawing.Element {
	return drawing.WithID(e, o.newID())
}
