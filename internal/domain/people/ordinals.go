package people

import (
	"fmt"
	"sort"
	"strings"
)

// suffixForms normalizes the generational suffix spellings that show up in
// search input.
var suffixForms = map[string]string{
	"jr":     "Jr.",
	"jr.":    "Jr.",
	"junior": "Jr.",
	"sr":     "Sr.",
	"sr.":    "Sr.",
	"senior": "Sr.",
	"ii":     "II",
	"2nd":    "II",
	"iii":    "III",
	"3rd":    "III",
}

// StripSuffix removes a trailing generational suffix from a searched name.
// It returns the cleaned name and the normalized suffix ("" when the input
// carried none).
func StripSuffix(name string) (string, string) {
	trimmed := strings.TrimSpace(name)
	lower := strings.ToLower(trimmed)

	for form, normalized := range suffixForms {
		if strings.HasSuffix(lower, " "+form) {
			clean := strings.TrimSpace(trimmed[:len(trimmed)-len(form)-1])
			return clean, normalized
		}
	}
	return trimmed, ""
}

// NormalizeSuffix maps a bare suffix spelling ("jr", "Senior", "3rd") to its
// canonical ordinal form. Unrecognized input yields "".
func NormalizeSuffix(raw string) string {
	return suffixForms[strings.ToLower(strings.TrimSpace(raw))]
}

// Candidate is a request-scoped projection of one player among several that
// share a searched name. Ordinal assignment depends only on debut order, so
// the same dataset always yields the same suffixes.
type Candidate struct {
	Player  Player
	Ordinal string
}

// DisplayName renders the candidate with its assigned ordinal, e.g.
// "John Smith Jr.".
func (c Candidate) DisplayName() string {
	return c.Player.FullName() + " " + c.Ordinal
}

// AssignOrdinals sorts the namesakes by ascending debut date (unknown debuts
// last) and assigns generational ordinals in that order. Two players yield
// Sr./Jr.; three add III; any further namesakes are rendered "(4)", "(5)"
// and so on.
func AssignOrdinals(players []Player) []Candidate {
	ordered := make([]Player, len(players))
	copy(ordered, players)
	sort.SliceStable(ordered, func(i, j int) bool {
		return debutSortKey(ordered[i]) < debutSortKey(ordered[j])
	})

	out := make([]Candidate, 0, len(ordered))
	for i, p := range ordered {
		out = append(out, Candidate{Player: p, Ordinal: ordinalAt(i)})
	}
	return out
}

func ordinalAt(index int) string {
	switch index {
	case 0:
		return "Sr."
	case 1:
		return "Jr."
	case 2:
		return "III"
	default:
		return fmt.Sprintf("(%d)", index+1)
	}
}

func debutSortKey(p Player) string {
	if strings.TrimSpace(p.Debut) == "" {
		return "9999"
	}
	return p.Debut
}
