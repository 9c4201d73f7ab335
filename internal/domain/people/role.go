package people

// Role classifies which statistic family applies to a player.
type Role string

const (
	RolePitcher  Role = "pitcher"
	RoleHitter   Role = "hitter"
	RoleDualRole Role = "two-way"
)

// ParseRole maps caller input to a role choice. Only the two concrete stat
// families are accepted; anything else reports false.
func ParseRole(v string) (Role, bool) {
	switch Role(v) {
	case RolePitcher:
		return RolePitcher, true
	case RoleHitter:
		return RoleHitter, true
	default:
		return "", false
	}
}

// dualRoleOverrides pins players whose careers were meaningfully split
// between the mound and the plate. The statistical rule below would bucket
// each of them into a single family.
var dualRoleOverrides = map[string]string{
	"ohtansh01": "Shohei Ohtani",
	"ruthba01":  "Babe Ruth",
	"ankieri01": "Rick Ankiel",
	"martipe02": "Pedro Martinez",
}

// IsDualRoleOverride reports whether the player is on the curated two-way
// list.
func IsDualRoleOverride(playerID string) bool {
	_, ok := dualRoleOverrides[playerID]
	return ok
}

// PitchingUsage summarizes career pitching volume for classification.
type PitchingUsage struct {
	Seasons      int
	GamesPitched int
	GamesStarted int
}

// BattingUsage summarizes career batting volume for classification.
type BattingUsage struct {
	Seasons int
	AtBats  int
}

// ClassifyRole applies the deterministic pitcher/hitter rule. The pitching
// thresholds are checked first: pitchers accumulate at-bats as a side effect
// of their job, so batting volume can only decide once pitching volume has
// been ruled out. Players sparse on both sides fall to whichever side shows
// any pitching at all.
func ClassifyRole(pitching PitchingUsage, batting BattingUsage) Role {
	if pitching.Seasons >= 3 || pitching.GamesPitched >= 50 || pitching.GamesStarted >= 10 {
		return RolePitcher
	}
	if batting.Seasons >= 3 || batting.AtBats >= 300 {
		return RoleHitter
	}
	if pitching.Seasons > 0 {
		return RolePitcher
	}
	return RoleHitter
}
