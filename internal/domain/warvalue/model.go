package warvalue

// SeasonValue is one player-season's wins-above-replacement figure from the
// supplementary value dataset.
type SeasonValue struct {
	PlayerID string
	Year     int
	WAR      float64
}

// ByYear indexes values for left-join lookups against season stat rows.
// Seasons missing from the map contribute zero.
func ByYear(values []SeasonValue) map[int]float64 {
	out := make(map[int]float64, len(values))
	for _, v := range values {
		out[v.Year] += v.WAR
	}
	return out
}

// CareerTotal sums every season's value.
func CareerTotal(values []SeasonValue) float64 {
	var total float64
	for _, v := range values {
		total += v.WAR
	}
	return total
}
