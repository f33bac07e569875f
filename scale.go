package custody

// Scale is a discrete position scale: each level occupies one unit on
// the axis, in the order given.
type Scale struct {
	Levels []string
}

// NewScale sets up a discrete scale over levels.
func NewScale(levels []string) *Scale {
	return &Scale{Levels: append([]string(nil), levels...)}
}

// -------------------------------------------------------------------------
// Position Adjustments

type PositionAdjust int

const (
	PosIdentity PositionAdjust = iota
	PosDodge
)

// Dodge returns the offsets of n side-by-side elements at one position,
// measured in element widths and centred on the position.
func Dodge(n int) []float64 {
	offsets := make([]float64, n)
	mid := float64(n-1) / 2
	for i := range offsets {
		offsets[i] = float64(i) - mid
	}
	return offsets
}
