package postseason

// Series is one postseason series outcome from the dataset.
type Series struct {
	Year   int
	Round  string
	Winner string
	Loser  string
	Wins   int
	Losses int
}

// roundNames maps dataset round codes to display names. Unknown codes pass
// through verbatim.
var roundNames = map[string]string{
	"WS":    "World Series",
	"ALCS":  "AL Championship Series",
	"NLCS":  "NL Championship Series",
	"ALDS1": "AL Division Series",
	"ALDS2": "AL Division Series",
	"NLDS1": "NL Division Series",
	"NLDS2": "NL Division Series",
	"ALWC":  "AL Wild Card",
	"NLWC":  "NL Wild Card",
	"CS":    "Championship Series",
}

// RoundName renders a round code for display.
func RoundName(code string) string {
	if name, ok := roundNames[code]; ok {
		return name
	}
	return code
}

// RoundTally accumulates series and game wins for one side of a matchup,
// keyed by round code.
type RoundTally struct {
	Round      string
	SeriesWins int
	GameWins   int
}

// Record summarizes one franchise's postseason history.
type Record struct {
	Appearances   int
	SeriesWins    int
	Championships int
}

// Summarize folds series rows into a record for the given identifier set.
// A series counts as one appearance whichever side the franchise was on;
// winning the WS round counts as a championship.
func Summarize(series []Series, teamIDs []string) Record {
	ids := map[string]struct{}{}
	for _, id := range teamIDs {
		ids[id] = struct{}{}
	}

	var rec Record
	for _, s := range series {
		_, won := ids[s.Winner]
		_, lost := ids[s.Loser]
		if !won && !lost {
			continue
		}
		rec.Appearances++
		if won {
			rec.SeriesWins++
			if s.Round == "WS" {
				rec.Championships++
			}
		}
	}
	return rec
}
