package franchise

import (
	"fmt"
	"strings"
)

// displayNames maps dataset codes to the club name of that era.
var displayNames = map[string]string{
	"ALT": "Los Angeles Angels",
	"CAL": "California Angels",
	"ANA": "Anaheim Angels",
	"LAA": "Los Angeles Angels",
	"ARI": "Arizona Diamondbacks",
	"BSN": "Boston Braves",
	"ML1": "Milwaukee Braves",
	"MLA": "Milwaukee Braves",
	"ATL": "Atlanta Braves",
	"SLA": "St. Louis Browns",
	"BAL": "Baltimore Orioles",
	"BS1": "Boston Red Sox",
	"BOS": "Boston Red Sox",
	"CHN": "Chicago Cubs",
	"CHC": "Chicago Cubs",
	"CHA": "Chicago White Sox",
	"CHW": "Chicago White Sox",
	"CWS": "Chicago White Sox",
	"CN2": "Cincinnati Reds",
	"CN3": "Cincinnati Reds",
	"CIN": "Cincinnati Reds",
	"CLE": "Cleveland Guardians",
	"COL": "Colorado Rockies",
	"DET": "Detroit Tigers",
	"HOU": "Houston Astros",
	"KCA": "Kansas City Royals",
	"BR1": "Brooklyn Dodgers",
	"BR2": "Brooklyn Dodgers",
	"BR3": "Brooklyn Dodgers",
	"BR4": "Brooklyn Dodgers",
	"BRO": "Brooklyn Dodgers",
	"LAD": "Los Angeles Dodgers",
	"LAN": "Los Angeles Dodgers",
	"FLA": "Florida Marlins",
	"FLO": "Florida Marlins",
	"MIA": "Miami Marlins",
	"MIL": "Milwaukee Brewers",
	"ML4": "Milwaukee Brewers",
	"MIN": "Minnesota Twins",
	"NYN": "New York Mets",
	"NYA": "New York Yankees",
	"PHA": "Philadelphia Athletics",
	"OAK": "Oakland Athletics",
	"PHN": "Philadelphia Phillies",
	"PH3": "Philadelphia Phillies",
	"PHI": "Philadelphia Phillies",
	"PIT": "Pittsburgh Pirates",
	"SDN": "San Diego Padres",
	"SEA": "Seattle Mariners",
	"NY1": "New York Giants",
	"SFN": "San Francisco Giants",
	"SLN": "St. Louis Cardinals",
	"TBD": "Tampa Bay Devil Rays",
	"TBA": "Tampa Bay Rays",
	"TEX": "Texas Rangers",
	"TOR": "Toronto Blue Jays",
	"MON": "Montreal Expos",
	"WAS": "Washington Nationals",
	"WS1": "Washington Senators",
	"WS2": "Washington Senators",
}

// espnAbbrevs maps dataset codes onto the abbreviations ESPN's logo CDN
// uses. Codes missing here fall back to the lowercased dataset code.
var espnAbbrevs = map[string]string{
	"CHN": "chc",
	"CHA": "cws",
	"LAN": "lad",
	"SLN": "stl",
	"SDN": "sd",
	"SFN": "sf",
	"NYN": "nym",
	"NYA": "nyy",
	"KCA": "kc",
	"WAS": "wsh",
	"TBA": "tb",
}

// DisplayName renders a team code for presentation. Season mode prefixes the
// year; franchise mode appends an all-time marker.
func DisplayName(code string, year *int) string {
	base, ok := displayNames[strings.ToUpper(code)]
	if !ok {
		base = strings.ToUpper(code)
	}
	if year != nil {
		return fmt.Sprintf("%d %s", *year, base)
	}
	return base + " (All-Time)"
}

// Logo describes a primary logo URL plus ordered fallbacks.
type Logo struct {
	Primary   string
	Fallbacks []string
}

// LogoURLs builds logo URLs for a team code. Pure string construction; the
// caller never verifies reachability.
func LogoURLs(code string) Logo {
	abbrev, ok := espnAbbrevs[strings.ToUpper(code)]
	if !ok {
		abbrev = strings.ToLower(code)
	}

	return Logo{
		Primary: fmt.Sprintf("https://a.espncdn.com/i/teamlogos/mlb/500/%s.png", abbrev),
		Fallbacks: []string{
			fmt.Sprintf("https://loodibee.com/wp-content/uploads/mlb-%s-logo-transparent.png", abbrev),
			fmt.Sprintf("https://content.sportslogos.net/logos/54/team/%s-logo-primary-dark.png", abbrev),
		},
	}
}
