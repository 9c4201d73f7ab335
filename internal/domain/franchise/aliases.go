package franchise

import (
	"sort"
	"strings"
	"sync"
)

// codeAliases maps search input that is already (close to) a team code onto
// the code the dataset actually uses. Modern media abbreviations differ from
// Lahman codes for several clubs (NYY vs NYA, LAD vs LAN, ...).
var codeAliases = map[string]string{
	"alt": "ALT",
	"cal": "CAL",
	"ana": "ANA",
	"laa": "LAA",
	"ari": "ARI",
	"bsn": "BSN",
	"ml1": "ML1",
	"mla": "MLA",
	"atl": "ATL",
	"sla": "SLA",
	"bal": "BAL",
	"bs1": "BS1",
	"bos": "BOS",
	"chn": "CHN",
	"chc": "CHC",
	"cha": "CHA",
	"chw": "CWS",
	"cws": "CWS",
	"cn2": "CN2",
	"cn3": "CN3",
	"cin": "CIN",
	"cle": "CLE",
	"col": "COL",
	"det": "DET",
	"hou": "HOU",
	"kca": "KCA",
	"kcr": "KCA",
	"br1": "BR1",
	"br2": "BR2",
	"br4": "BR4",
	"bro": "BRO",
	"lad": "LAN",
	"lan": "LAN",
	"fla": "FLA",
	"mia": "MIA",
	"mil": "MIL",
	"min": "MIN",
	"nym": "NYN",
	"nyy": "NYA",
	"pha": "PHA",
	"oak": "OAK",
	"phn": "PHN",
	"ph3": "PH3",
	"phi": "PHI",
	"pit": "PIT",
	"sdp": "SDN",
	"sd":  "SDN",
	"sea": "SEA",
	"ny1": "NY1",
	"sfg": "SFN",
	"sf":  "SFN",
	"stl": "SLN",
	"tbd": "TBA",
	"tba": "TBA",
	"tb":  "TBA",
	"tex": "TEX",
	"tor": "TOR",
	"mon": "MON",
	"wsn": "WAS",
	"was": "WAS",
}

// nameAliases maps full club names, city names and nicknames onto dataset
// codes. Historical names resolve to the code of that era, so "boston braves"
// lands on BSN rather than ATL.
var nameAliases = map[string]string{
	"angels":                "LAA",
	"los angeles angels":    "LAA",
	"anaheim angels":        "ANA",
	"california angels":     "CAL",
	"diamondbacks":          "ARI",
	"arizona diamondbacks":  "ARI",
	"d-backs":               "ARI",
	"dbacks":                "ARI",
	"braves":                "ATL",
	"atlanta braves":        "ATL",
	"atlanta":               "ATL",
	"boston braves":         "BSN",
	"milwaukee braves":      "ML1",
	"orioles":               "BAL",
	"baltimore orioles":     "BAL",
	"baltimore":             "BAL",
	"o's":                   "BAL",
	"st. louis browns":      "SLA",
	"st louis browns":       "SLA",
	"browns":                "SLA",
	"red sox":               "BOS",
	"boston red sox":        "BOS",
	"boston":                "BOS",
	"redsox":                "BOS",
	"cubs":                  "CHN",
	"chicago cubs":          "CHN",
	"cubbies":               "CHN",
	"white sox":             "CHA",
	"chicago white sox":     "CHA",
	"whitesox":              "CHA",
	"reds":                  "CIN",
	"cincinnati reds":       "CIN",
	"cincinnati":            "CIN",
	"guardians":             "CLE",
	"cleveland guardians":   "CLE",
	"cleveland":             "CLE",
	"indians":               "CLE",
	"cleveland indians":     "CLE",
	"rockies":               "COL",
	"colorado rockies":      "COL",
	"colorado":              "COL",
	"tigers":                "DET",
	"detroit tigers":        "DET",
	"detroit":               "DET",
	"astros":                "HOU",
	"houston astros":        "HOU",
	"houston":               "HOU",
	"royals":                "KCA",
	"kansas city royals":    "KCA",
	"kansas city":           "KCA",
	"dodgers":               "LAN",
	"los angeles dodgers":   "LAN",
	"brooklyn dodgers":      "BRO",
	"marlins":               "MIA",
	"miami marlins":         "MIA",
	"florida marlins":       "FLA",
	"miami":                 "MIA",
	"brewers":               "MIL",
	"milwaukee brewers":     "MIL",
	"milwaukee":             "MIL",
	"twins":                 "MIN",
	"minnesota twins":       "MIN",
	"minnesota":             "MIN",
	"mets":                  "NYN",
	"new york mets":         "NYN",
	"ny mets":               "NYN",
	"yankees":               "NYA",
	"new york yankees":      "NYA",
	"ny yankees":            "NYA",
	"yanks":                 "NYA",
	"athletics":             "OAK",
	"oakland athletics":     "OAK",
	"oakland":               "OAK",
	"a's":                   "OAK",
	"philadelphia athletics": "PHA",
	"phillies":              "PHI",
	"philadelphia phillies": "PHI",
	"philadelphia":          "PHI",
	"phils":                 "PHI",
	"pirates":               "PIT",
	"pittsburgh pirates":    "PIT",
	"pittsburgh":            "PIT",
	"bucs":                  "PIT",
	"padres":                "SDN",
	"san diego padres":      "SDN",
	"san diego":             "SDN",
	"mariners":              "SEA",
	"seattle mariners":      "SEA",
	"seattle":               "SEA",
	"m's":                   "SEA",
	"giants":                "SFN",
	"san francisco giants":  "SFN",
	"sf giants":             "SFN",
	"san francisco":         "SFN",
	"cardinals":             "SLN",
	"st. louis cardinals":   "SLN",
	"st louis cardinals":    "SLN",
	"cards":                 "SLN",
	"st. louis":             "SLN",
	"st louis":              "SLN",
	"rays":                  "TBA",
	"tampa bay rays":        "TBA",
	"tampa bay":             "TBA",
	"devil rays":            "TBD",
	"tampa bay devil rays":  "TBD",
	"rangers":               "TEX",
	"texas rangers":         "TEX",
	"texas":                 "TEX",
	"washington senators":   "WAS",
	"senators":              "WAS",
	"blue jays":             "TOR",
	"toronto blue jays":     "TOR",
	"toronto":               "TOR",
	"jays":                  "TOR",
	"bluejays":              "TOR",
	"nationals":             "WAS",
	"washington nationals":  "WAS",
	"washington":            "WAS",
	"nats":                  "WAS",
	"expos":                 "MON",
	"montreal expos":        "MON",
}

var (
	sortedAliasesOnce sync.Once
	sortedAliasKeys   []string
)

// sortedNameAliases returns the alias keys in sorted order. Substring
// matching is first-match-wins, so the iteration order has to be fixed; the
// upstream data used insertion order, which Go maps do not preserve.
func sortedNameAliases() []string {
	sortedAliasesOnce.Do(func() {
		sortedAliasKeys = make([]string, 0, len(nameAliases))
		for key := range nameAliases {
			sortedAliasKeys = append(sortedAliasKeys, key)
		}
		sort.Strings(sortedAliasKeys)
	})
	return sortedAliasKeys
}

// Normalize maps free-text team search input to a dataset team code. It
// never fails: input that matches nothing comes back uppercased, and the
// downstream lookup simply finds no rows.
func Normalize(raw string) string {
	term := strings.ToLower(strings.TrimSpace(raw))

	if code, ok := codeAliases[term]; ok {
		return code
	}
	if code, ok := nameAliases[term]; ok {
		return code
	}

	// Substring fallback in both directions. First match in sorted key order
	// wins rather than the best match; kept for parity with the behavior the
	// dataset consumers already rely on.
	for _, name := range sortedNameAliases() {
		if strings.Contains(name, term) || strings.Contains(term, name) {
			return nameAliases[name]
		}
	}

	return strings.ToUpper(term)
}

// ParseQuery splits free-text team input such as "2024 Dodgers",
// "Dodgers 2024" or "Yankees" into a normalized team code and an optional
// season year. A year token must be exactly four digits at either end.
func ParseQuery(input string) (string, *int) {
	parts := strings.Fields(strings.TrimSpace(input))

	switch len(parts) {
	case 0:
		return "", nil
	case 1:
		return Normalize(parts[0]), nil
	case 2:
		if year, ok := parseYearToken(parts[0]); ok {
			return Normalize(parts[1]), &year
		}
		if year, ok := parseYearToken(parts[1]); ok {
			return Normalize(parts[0]), &year
		}
		return Normalize(strings.Join(parts, " ")), nil
	default:
		if year, ok := parseYearToken(parts[len(parts)-1]); ok {
			return Normalize(strings.Join(parts[:len(parts)-1], " ")), &year
		}
		if year, ok := parseYearToken(parts[0]); ok {
			return Normalize(strings.Join(parts[1:], " ")), &year
		}
		return Normalize(strings.Join(parts, " ")), nil
	}
}

func parseYearToken(token string) (int, bool) {
	if len(token) != 4 {
		return 0, false
	}
	year := 0
	for _, r := range token {
		if r < '0' || r > '9' {
			return 0, false
		}
		year = year*10 + int(r-'0')
	}
	return year, true
}
