package people

import "strings"

// Player is one row from the biographical people table. The ID is globally
// unique and immutable; names are not unique, so lookups by name can land on
// several players.
type Player struct {
	ID         string
	FirstName  string
	LastName   string
	Debut      string // yyyy-mm-dd, empty when unknown
	FinalGame  string
	BirthYear  int
	BirthMonth int
	BirthDay   int
}

// FullName renders "First Last" for display.
func (p Player) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// DebutYear extracts the year from the debut date, 0 when unknown.
func (p Player) DebutYear() int {
	return yearOf(p.Debut)
}

// FinalYear extracts the year from the final-game date, 0 when unknown.
func (p Player) FinalYear() int {
	return yearOf(p.FinalGame)
}

func yearOf(date string) int {
	if len(date) < 4 {
		return 0
	}
	year := 0
	for _, r := range date[:4] {
		if r < '0' || r > '9' {
			return 0
		}
		year = year*10 + int(r-'0')
	}
	return year
}
