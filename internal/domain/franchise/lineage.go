package franchise

import "sort"

// lineage maps the current franchise code to every historical code the
// organization has played under. The Lahman dataset keys team seasons by the
// code in use that year, so franchise totals must sweep the whole group.
// Hand-curated; codes absent from this map are their own singleton group.
var lineage = map[string][]string{
	"MIL": {"MIL", "ML4"},
	"ATL": {"ATL", "BSN", "ML1"},
	"LAN": {"LAN", "BRO", "BR3"},
	"SFN": {"SFN", "NY1"},
	"BAL": {"BAL", "SLA", "MLA"},
	"CHA": {"CHA"},
	"CLE": {"CLE"},
	"CIN": {"CIN", "CN2"},
	"PHI": {"PHI"},
	"OAK": {"OAK", "KC1", "PHA"},
	"SLN": {"SLN", "SL4"},
	"NYA": {"NYA"},
	"NYN": {"NYN"},
	"KCR": {"KCR"},
	"MIN": {"MIN", "WS1"},
	"TEX": {"TEX", "WS2"},
	"WAS": {"WAS", "MON"},
	"LAA": {"LAA", "ANA", "CAL"},
	"TBA": {"TBA", "TBD"},
	"MIA": {"MIA", "FLO", "FLA"},
	"SEA": {"SEA"},
	"PIT": {"PIT", "PT1"},
	"ARI": {"ARI"},
	"BOS": {"BOS"},
	"COL": {"COL"},
	"DET": {"DET"},
	"HOU": {"HOU"},
	"SDN": {"SDN"},
	"TOR": {"TOR"},
	"CHC": {"CHN"},
}

// Expand returns every historical team code belonging to the franchise
// identified by code. The result always contains at least code itself.
func Expand(code string) []string {
	if ids, ok := lineage[code]; ok {
		out := make([]string, len(ids))
		copy(out, ids)
		if !contains(out, code) {
			out = append(out, code)
		}
		return out
	}
	return []string{code}
}

// Overlaps reports whether the expanded groups of two codes share any
// historical identifier.
func Overlaps(a, b string) bool {
	groupA := Expand(a)
	seen := make(map[string]struct{}, len(groupA))
	for _, id := range groupA {
		seen[id] = struct{}{}
	}
	for _, id := range Expand(b) {
		if _, ok := seen[id]; ok {
			return true
		}
	}
	return false
}

// CanonicalCodes lists every canonical franchise code in the lineage table,
// sorted for deterministic iteration.
func CanonicalCodes() []string {
	out := make([]string, 0, len(lineage))
	for code := range lineage {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
