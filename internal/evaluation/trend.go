package evaluation

// Trend classifies a score history's recent direction.
type Trend string

const (
	TrendImproving    Trend = "improving"
	TrendDeclining    Trend = "declining"
	TrendFluctuating  Trend = "fluctuating"
	TrendInsufficient Trend = "insufficient-data"
)

// ComputeTrend looks at the last three scores: monotonically non-decreasing
// is improving, monotonically non-increasing is declining, anything else is
// fluctuating. Fewer than three scores is insufficient data.
func ComputeTrend(scores []float64) Trend {
	if len(scores) < 3 {
		return TrendInsufficient
	}

	recent := scores[len(scores)-3:]
	rising := recent[1] >= recent[0] && recent[2] >= recent[1]
	falling := recent[1] <= recent[0] && recent[2] <= recent[1]

	switch {
	case rising && falling:
		// All three equal: no direction.
		return TrendFluctuating
	case rising:
		return TrendImproving
	case falling:
		return TrendDeclining
	default:
		return TrendFluctuating
	}
}
