package render

import "image/color"

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpRect
	OpCircle
	OpLine
)

// String returns the name of the drawing call.
func (k OpKind) String() string {
	switch k {
	case OpClear:
		return "clear"
	case OpRect:
		return "rect"
	case OpCircle:
		return "circle"
	case OpLine:
		return "line"
	default:
		return "unknown"
	}
}

// Op is one recorded drawing call. Unused fields are zero.
type Op struct {
	Kind OpKind

	X, Y          float64 // rect origin, circle centre or line start
	Width, Height float64 // rect size
	Radius        float64
	X1, Y1        float64 // line end
	LineWidth     float64

	Color color.Color
	Glow  Glow
}

// Recorder is a Surface that keeps every call in order. It backs the headless
// simulator and lets tests assert on layering without a GPU.
type Recorder struct {
	ops []Op
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Clear() {
	r.ops = append(r.ops, Op{Kind: OpClear})
}

func (r *Recorder) FillRect(x, y, width, height float64, clr color.Color, glow Glow) {
	r.ops = append(r.ops, Op{Kind: OpRect, X: x, Y: y, Width: width, Height: height, Color: clr, Glow: glow})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color, glow Glow) {
	r.ops = append(r.ops, Op{Kind: OpCircle, X: cx, Y: cy, Radius: radius, Color: clr, Glow: glow})
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	r.ops = append(r.ops, Op{Kind: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, LineWidth: width, Color: clr})
}

// Ops returns the recorded calls in order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns how many calls of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}
