package memory

import (
	"github.com/dugoutlabs/statlines/internal/domain/awards"
	"github.com/dugoutlabs/statlines/internal/domain/batting"
	"github.com/dugoutlabs/statlines/internal/domain/gamelog"
	"github.com/dugoutlabs/statlines/internal/domain/people"
	"github.com/dugoutlabs/statlines/internal/domain/pitching"
	"github.com/dugoutlabs/statlines/internal/domain/postseason"
	"github.com/dugoutlabs/statlines/internal/domain/teamseason"
	"github.com/dugoutlabs/statlines/internal/domain/warvalue"
)

// Dataset bundles seeded rows for every repository so the service can run
// without a database (dev mode and tests).
type Dataset struct {
	Players       []people.Player
	Batting       []batting.SeasonLine
	Pitching      []pitching.SeasonLine
	TeamSeasons   []teamseason.Season
	Postseason    []postseason.Series
	GameLog       []gamelog.Row
	Awards        []awards.Award
	AllStarCounts map[string]int
	WarValues     []warvalue.SeasonValue
}

// SeedDataset returns a small, recognizable slice of history: enough rows to
// exercise namesake disambiguation, lineage merging, and both stat families.
func SeedDataset() Dataset {
	return Dataset{
		Players: []people.Player{
			{ID: "griffke01", FirstName: "Ken", LastName: "Griffey", Debut: "1973-08-25", FinalGame: "1991-05-31", BirthYear: 1950, BirthMonth: 4, BirthDay: 10},
			{ID: "griffke02", FirstName: "Ken", LastName: "Griffey", Debut: "1989-04-03", FinalGame: "2010-05-31", BirthYear: 1969, BirthMonth: 11, BirthDay: 21},
			{ID: "aaronha01", FirstName: "Hank", LastName: "Aaron", Debut: "1954-04-13", FinalGame: "1976-10-03", BirthYear: 1934, BirthMonth: 2, BirthDay: 5},
			{ID: "martipe02", FirstName: "Pedro", LastName: "Martinez", Debut: "1992-09-24", FinalGame: "2009-12-04", BirthYear: 1971, BirthMonth: 10, BirthDay: 25},
			{ID: "ohtansh01", FirstName: "Shohei", LastName: "Ohtani", Debut: "2018-03-29", BirthYear: 1994, BirthMonth: 7, BirthDay: 5},
		},
		Batting: []batting.SeasonLine{
			{PlayerID: "griffke02", Year: 1997, TeamID: "SEA", Games: 157, AtBats: 608, Runs: 125, Hits: 185, Doubles: 34, Triples: 3, HomeRuns: 56, RBI: 147, Walks: 76, Strikeouts: 121, HitByPitch: 8, SacFlies: 12},
			{PlayerID: "griffke02", Year: 1998, TeamID: "SEA", Games: 161, AtBats: 633, Runs: 120, Hits: 180, Doubles: 33, Triples: 3, HomeRuns: 56, RBI: 146, Walks: 76, Strikeouts: 121, HitByPitch: 7, SacFlies: 11},
			{PlayerID: "griffke02", Year: 1999, TeamID: "SEA", Games: 160, AtBats: 606, Runs: 123, Hits: 173, Doubles: 26, Triples: 3, HomeRuns: 48, RBI: 134, Walks: 91, Strikeouts: 108, HitByPitch: 6, SacFlies: 10},
			{PlayerID: "griffke01", Year: 1976, TeamID: "CIN", Games: 148, AtBats: 562, Runs: 111, Hits: 189, Doubles: 28, Triples: 9, HomeRuns: 6, RBI: 74, Walks: 62, Strikeouts: 65, HitByPitch: 2, SacFlies: 5},
			{PlayerID: "aaronha01", Year: 1957, TeamID: "ML1", Games: 151, AtBats: 615, Runs: 118, Hits: 198, Doubles: 27, Triples: 6, HomeRuns: 44, RBI: 132, Walks: 57, Strikeouts: 58, HitByPitch: 0, SacFlies: 3},
			{PlayerID: "aaronha01", Year: 1971, TeamID: "ATL", Games: 139, AtBats: 495, Runs: 95, Hits: 162, Doubles: 22, Triples: 3, HomeRuns: 47, RBI: 118, Walks: 71, Strikeouts: 58, HitByPitch: 2, SacFlies: 5},
			{PlayerID: "ohtansh01", Year: 2021, TeamID: "LAA", Games: 155, AtBats: 537, Runs: 103, Hits: 138, Doubles: 26, Triples: 8, HomeRuns: 46, RBI: 100, Walks: 96, Strikeouts: 189, HitByPitch: 4, SacFlies: 2},
		},
		Pitching: []pitching.SeasonLine{
			{PlayerID: "martipe02", Year: 1999, TeamID: "BOS", Wins: 23, Losses: 4, Games: 31, GamesStarted: 29, CompleteGames: 5, Shutouts: 1, IPOuts: 640, Hits: 160, EarnedRuns: 49, HomeRuns: 9, Walks: 37, Strikeouts: 313},
			{PlayerID: "martipe02", Year: 2000, TeamID: "BOS", Wins: 18, Losses: 6, Games: 29, GamesStarted: 29, CompleteGames: 7, Shutouts: 4, IPOuts: 651, Hits: 128, EarnedRuns: 42, HomeRuns: 17, Walks: 32, Strikeouts: 284},
			{PlayerID: "martipe02", Year: 2001, TeamID: "BOS", Wins: 7, Losses: 3, Games: 18, GamesStarted: 18, IPOuts: 350, Hits: 84, EarnedRuns: 31, HomeRuns: 5, Walks: 25, Strikeouts: 163},
			{PlayerID: "ohtansh01", Year: 2021, TeamID: "LAA", Wins: 9, Losses: 2, Games: 23, GamesStarted: 23, IPOuts: 391, Hits: 98, EarnedRuns: 46, HomeRuns: 15, Walks: 44, Strikeouts: 156},
		},
		TeamSeasons: []teamseason.Season{
			{TeamID: "BSN", Year: 1948, Name: "Boston Braves", Games: 154, Wins: 91, Losses: 62, Runs: 739, RunsAllowed: 584},
			{TeamID: "ML1", Year: 1957, Name: "Milwaukee Braves", Games: 155, Wins: 95, Losses: 59, Runs: 772, RunsAllowed: 613},
			{TeamID: "ATL", Year: 1995, Name: "Atlanta Braves", Games: 144, Wins: 90, Losses: 54, Runs: 645, RunsAllowed: 540},
			{TeamID: "NYA", Year: 1998, Name: "New York Yankees", Games: 162, Wins: 114, Losses: 48, Runs: 965, RunsAllowed: 656},
			{TeamID: "BOS", Year: 2004, Name: "Boston Red Sox", Games: 162, Wins: 98, Losses: 64, Runs: 949, RunsAllowed: 768},
			{TeamID: "SEA", Year: 2001, Name: "Seattle Mariners", Games: 162, Wins: 116, Losses: 46, Runs: 927, RunsAllowed: 627},
		},
		Postseason: []postseason.Series{
			{Year: 1948, Round: "WS", Winner: "CLE", Loser: "BSN", Wins: 4, Losses: 2},
			{Year: 1957, Round: "WS", Winner: "ML1", Loser: "NYA", Wins: 4, Losses: 3},
			{Year: 1958, Round: "WS", Winner: "NYA", Loser: "ML1", Wins: 4, Losses: 3},
			{Year: 1995, Round: "WS", Winner: "ATL", Loser: "CLE", Wins: 4, Losses: 2},
			{Year: 1996, Round: "WS", Winner: "NYA", Loser: "ATL", Wins: 4, Losses: 2},
			{Year: 1999, Round: "WS", Winner: "NYA", Loser: "ATL", Wins: 4, Losses: 0},
			{Year: 2004, Round: "ALCS", Winner: "BOS", Loser: "NYA", Wins: 4, Losses: 3},
			{Year: 2004, Round: "WS", Winner: "BOS", Loser: "SLN", Wins: 4, Losses: 0},
		},
		GameLog: seedGameLog(),
		Awards: []awards.Award{
			{PlayerID: "aaronha01", AwardID: "Most Valuable Player", Year: 1957, League: "NL"},
			{PlayerID: "aaronha01", AwardID: "Gold Glove", Year: 1958, League: "NL"},
			{PlayerID: "aaronha01", AwardID: "Gold Glove", Year: 1959, League: "NL"},
			{PlayerID: "aaronha01", AwardID: "Gold Glove", Year: 1960, League: "NL"},
			{PlayerID: "martipe02", AwardID: "Cy Young Award", Year: 1997, League: "NL"},
			{PlayerID: "martipe02", AwardID: "Cy Young Award", Year: 1999, League: "AL"},
			{PlayerID: "martipe02", AwardID: "Cy Young Award", Year: 2000, League: "AL"},
			{PlayerID: "ohtansh01", AwardID: "Most Valuable Player", Year: 2021, League: "AL"},
			{PlayerID: "ohtansh01", AwardID: "Rookie of the Year", Year: 2018, League: "AL"},
		},
		AllStarCounts: map[string]int{
			"aaronha01": 25,
			"griffke01": 3,
			"griffke02": 13,
			"martipe02": 8,
			"ohtansh01": 4,
		},
		WarValues: []warvalue.SeasonValue{
			{PlayerID: "griffke02", Year: 1997, WAR: 9.1},
			{PlayerID: "griffke02", Year: 1998, WAR: 6.6},
			{PlayerID: "griffke02", Year: 1999, WAR: 5.4},
			{PlayerID: "aaronha01", Year: 1957, WAR: 8.0},
			{PlayerID: "aaronha01", Year: 1971, WAR: 7.1},
			{PlayerID: "martipe02", Year: 1999, WAR: 9.7},
			{PlayerID: "martipe02", Year: 2000, WAR: 11.7},
			{PlayerID: "ohtansh01", Year: 2021, WAR: 9.0},
		},
	}
}

func seedGameLog() []gamelog.Row {
	games := []struct {
		winner, loser string
		year          int
		date          string
	}{
		{"NYA", "BOS", 2003, "2003-10-16"},
		{"BOS", "NYA", 2004, "2004-07-24"},
		{"BOS", "NYA", 2004, "2004-09-17"},
		{"ATL", "NYA", 1996, "1996-10-20"},
		{"NYA", "ATL", 1996, "1996-10-23"},
		{"BSN", "BRO", 1951, "1951-09-25"},
	}

	out := make([]gamelog.Row, 0, len(games)*2)
	for _, g := range games {
		out = append(out,
			gamelog.Row{TeamID: g.winner, OpponentID: g.loser, Year: g.year, Date: g.date, Win: true},
			gamelog.Row{TeamID: g.loser, OpponentID: g.winner, Year: g.year, Date: g.date, Win: false},
		)
	}
	return out
}
