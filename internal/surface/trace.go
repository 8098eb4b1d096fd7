package surface

import "sync"

// Op is one recorded Surface call.
type Op struct {
	Name  string
	Args  []float64
	Text  string
	Color Color
}

// Trace is a Surface that records every call instead of drawing.
// It allows tests to assert on what the renderer asked for.
type Trace struct {
	width  int
	height int

	mu    sync.Mutex
	ops   []Op
	depth int
}

// NewTrace creates a Trace with the given canvas size.
func NewTrace(width, height int) *Trace {
	return &Trace{width: width, height: height}
}

var _ Surface = (*Trace)(nil)

func (t *Trace) record(op Op) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ops = append(t.ops, op)
}

// Ops returns a copy of the recorded calls in order.
func (t *Trace) Ops() []Op {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Op, len(t.ops))
	copy(out, t.ops)
	return out
}

// Count returns how many times the named call was recorded.
func (t *Trace) Count(name string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, op := range t.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// Reset discards all recorded calls.
func (t *Trace) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ops = nil
	t.depth = 0
}

// Depth returns the current Save nesting depth.
func (t *Trace) Depth() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.depth
}

func (t *Trace) Width() int  { return t.width }
func (t *Trace) Height() int { return t.height }

func (t *Trace) Save() {
	t.mu.Lock()
	t.depth++
	t.mu.Unlock()
	t.record(Op{Name: "Save"})
}

func (t *Trace) Restore() {
	t.mu.Lock()
	if t.depth > 0 {
		t.depth--
	}
	t.mu.Unlock()
	t.record(Op{Name: "Restore"})
}

func (t *Trace) Translate(x, y float64) { t.record(Op{Name: "Translate", Args: []float64{x, y}}) }
func (t *Trace) Rotate(angle float64)   { t.record(Op{Name: "Rotate", Args: []float64{angle}}) }
func (t *Trace) BeginPath()             { t.record(Op{Name: "BeginPath"}) }
func (t *Trace) MoveTo(x, y float64)    { t.record(Op{Name: "MoveTo", Args: []float64{x, y}}) }
func (t *Trace) LineTo(x, y float64)    { t.record(Op{Name: "LineTo", Args: []float64{x, y}}) }
func (t *Trace) ClosePath()             { t.record(Op{Name: "ClosePath"}) }
func (t *Trace) Fill()                  { t.record(Op{Name: "Fill"}) }
func (t *Trace) Stroke()                { t.record(Op{Name: "Stroke"}) }

func (t *Trace) QuadraticTo(cx, cy, x, y float64) {
	t.record(Op{Name: "QuadraticTo", Args: []float64{cx, cy, x, y}})
}

func (t *Trace) Rect(x, y, w, h float64) {
	t.record(Op{Name: "Rect", Args: []float64{x, y, w, h}})
}

func (t *Trace) RoundedRect(x, y, w, h, r float64) {
	t.record(Op{Name: "RoundedRect", Args: []float64{x, y, w, h, r}})
}

func (t *Trace) Ellipse(x, y, rx, ry float64) {
	t.record(Op{Name: "Ellipse", Args: []float64{x, y, rx, ry}})
}

func (t *Trace) Arc(x, y, r, start, end float64) {
	t.record(Op{Name: "Arc", Args: []float64{x, y, r, start, end}})
}

func (t *Trace) SetFillColor(c Color)   { t.record(Op{Name: "SetFillColor", Color: c}) }
func (t *Trace) SetStrokeColor(c Color) { t.record(Op{Name: "SetStrokeColor", Color: c}) }
func (t *Trace) SetLineWidth(w float64) { t.record(Op{Name: "SetLineWidth", Args: []float64{w}}) }
func (t *Trace) SetLineCap(c LineCap)   { t.record(Op{Name: "SetLineCap", Args: []float64{float64(c)}}) }

func (t *Trace) SetFillGradient(g LinearGradient) {
	t.record(Op{Name: "SetFillGradient", Args: []float64{g.X0, g.Y0, g.X1, g.Y1}})
}

func (t *Trace) FillText(s string, x, y float64) {
	t.record(Op{Name: "FillText", Args: []float64{x, y}, Text: s})
}
