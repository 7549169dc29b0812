package avatar

// seqSource returns the given values in order, modulo n.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) IntN(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

// fixedMetrics reports a constant advance per rune and a constant ink height.
type fixedMetrics struct {
	advance, height float64
}

func (m fixedMetrics) MeasureText(s string, _ float64) float64 {
	return m.advance * float64(len([]rune(s)))
}

func (m fixedMetrics) TextBounds(s string, size float64) (float64, float64) {
	return m.MeasureText(s, size), m.height
}

type drawOp struct {
	Kind   string
	Rect   Rect
	Center Point
	Radius float64
	Text   string
	X, Y   float64
	Size   float64
	Color  RGBA
}

// recordingSurface records every primitive call.
type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) FillRectangle(r Rect, c RGBA) {
	s.ops = append(s.ops, drawOp{Kind: "rect", Rect: r, Color: c})
}

func (s *recordingSurface) FillCircle(center Point, radius float64, c RGBA) {
	s.ops = append(s.ops, drawOp{Kind: "circle", Center: center, Radius: radius, Color: c})
}

func (s *recordingSurface) DrawText(str string, x, y float64, c RGBA, size float64) {
	s.ops = append(s.ops, drawOp{Kind: "text", Text: str, X: x, Y: y, Size: size, Color: c})
}

// starHandler claims shape 7 and records that it drew.
type starHandler struct {
	drawn int
	draws bool
}

const shapeStar Shape = 7

func (h *starHandler) IsCustomShape(s Shape) bool { return s == shapeStar }

func (h *starHandler) DrawShape(s Surface, shape Shape, rc RenderContext, fill RGBA) bool {
	if !h.draws {
		return false
	}
	h.drawn++
	s.FillRectangle(Rect{Max: Pt(rc.Width, rc.Height)}, fill)
	return true
}
