package schema

import "math"

// DisplayLabel returns the title-cased label used in tables and narratives.
func (l TrendLabel) DisplayLabel() string {
	switch l {
	case IncreaseTrend:
		return "Increase"
	case DecreaseTrend:
		return "Decrease"
	default:
		return "Stable"
	}
}

// LabelForDelta classifies a signed delta.
func LabelForDelta(sign int) TrendLabel {
	switch {
	case sign > 0:
		return IncreaseTrend
	case sign < 0:
		return DecreaseTrend
	default:
		return StableTrend
	}
}

// AbsDelta returns the magnitude of the movement.
func (s TrendSummary) AbsDelta() float64 {
	return math.Abs(s.Delta)
}
