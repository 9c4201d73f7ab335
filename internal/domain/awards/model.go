package awards

import "sort"

// Award is one player-award row from the dataset.
type Award struct {
	PlayerID string
	AwardID  string
	Year     int
	League   string
}

// displayNames maps dataset award identifiers to the names shown to
// callers. Identifiers missing from the table pass through verbatim.
var displayNames = map[string]string{
	"Most Valuable Player":                "MVP",
	"Cy Young Award":                      "Cy Young",
	"Rookie of the Year":                  "Rookie of the Year",
	"Gold Glove":                          "Gold Glove",
	"Silver Slugger":                      "Silver Slugger",
	"World Series MVP":                    "World Series MVP",
	"ALCS MVP":                            "ALCS MVP",
	"NLCS MVP":                            "NLCS MVP",
	"All-Star Game MVP":                   "All-Star Game MVP",
	"Triple Crown":                        "Triple Crown",
	"Pitching Triple Crown":               "Pitching Triple Crown",
	"Hank Aaron Award":                    "Hank Aaron Award",
	"Rolaids Relief Man Award":            "Relief Man of the Year",
	"TSN Major League Player of the Year": "Player of the Year",
	"Comeback Player of the Year":         "Comeback Player of the Year",
}

// DisplayName renders an award identifier for display.
func DisplayName(awardID string) string {
	if name, ok := displayNames[awardID]; ok {
		return name
	}
	return awardID
}

// Summary groups a player's wins of one award.
type Summary struct {
	Name  string
	Count int
	Years []int
}

// Summarize folds award rows into per-award summaries ordered by count
// descending, then name, so the most decorated line leads the list.
func Summarize(rows []Award) []Summary {
	byName := map[string]*Summary{}
	for _, a := range rows {
		name := DisplayName(a.AwardID)
		s, ok := byName[name]
		if !ok {
			s = &Summary{Name: name}
			byName[name] = s
		}
		s.Count++
		s.Years = append(s.Years, a.Year)
	}

	out := make([]Summary, 0, len(byName))
	for _, s := range byName {
		sort.Ints(s.Years)
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
