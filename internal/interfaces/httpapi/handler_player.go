package httpapi

import (
	"net/http"
	"strings"

	"github.com/dugoutlabs/statlines/internal/usecase"
)

type playerSummaryDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Debut     string `json:"debut,omitempty"`
	FinalGame string `json:"final_game,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
}

type suggestionDTO struct {
	PlayerID    string `json:"player_id"`
	DisplayName string `json:"display_name"`
	Ordinal     string `json:"ordinal"`
	DebutYear   int    `json:"debut_year,omitempty"`
	BirthYear   int    `json:"birth_year,omitempty"`
}

type playerResolutionDTO struct {
	Resolved    *playerSummaryDTO `json:"resolved,omitempty"`
	Suggestions []suggestionDTO   `json:"suggestions,omitempty"`
}

type battingStatsDTO struct {
	Games            int     `json:"games"`
	AtBats           int     `json:"at_bats"`
	Runs             int     `json:"runs"`
	Hits             int     `json:"hits"`
	Singles          int     `json:"singles"`
	Doubles          int     `json:"doubles"`
	Triples          int     `json:"triples"`
	HomeRuns         int     `json:"home_runs"`
	TotalBases       int     `json:"total_bases"`
	RBI              int     `json:"rbi"`
	StolenBases      int     `json:"stolen_bases"`
	Walks            int     `json:"walks"`
	Strikeouts       int     `json:"strikeouts"`
	HitByPitch       int     `json:"hit_by_pitch"`
	SacFlies         int     `json:"sac_flies"`
	SacHits          int     `json:"sac_hits"`
	PlateAppearances int     `json:"plate_appearances"`
	Average          float64 `json:"avg"`
	OnBasePct        float64 `json:"obp"`
	SluggingPct      float64 `json:"slg"`
	OPS              float64 `json:"ops"`
}

type battingSeasonDTO struct {
	Year  int      `json:"year"`
	Teams []string `json:"teams"`
	WAR   float64  `json:"war"`
	battingStatsDTO
}

type pitchingStatsDTO struct {
	Wins           int     `json:"wins"`
	Losses         int     `json:"losses"`
	Games          int     `json:"games"`
	GamesStarted   int     `json:"games_started"`
	CompleteGames  int     `json:"complete_games"`
	Shutouts       int     `json:"shutouts"`
	Saves          int     `json:"saves"`
	InningsPitched float64 `json:"innings_pitched"`
	Hits           int     `json:"hits"`
	EarnedRuns     int     `json:"earned_runs"`
	HomeRuns       int     `json:"home_runs"`
	Walks          int     `json:"walks"`
	Strikeouts     int     `json:"strikeouts"`
	ERA            float64 `json:"era"`
	WHIP           float64 `json:"whip"`
}

type pitchingSeasonDTO struct {
	Year  int      `json:"year"`
	Teams []string `json:"teams"`
	WAR   float64  `json:"war"`
	pitchingStatsDTO
}

type awardSummaryDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
	Years []int  `json:"years"`
}

type playerStatsDTO struct {
	Player             playerSummaryDTO    `json:"player"`
	Mode               string              `json:"mode"`
	Role               string              `json:"role"`
	RoleChoiceRequired bool                `json:"role_choice_required,omitempty"`
	RoleChoices        []string            `json:"role_choices,omitempty"`
	Batting            *battingStatsDTO    `json:"batting,omitempty"`
	Pitching           *pitchingStatsDTO   `json:"pitching,omitempty"`
	BattingSeasons     []battingSeasonDTO  `json:"batting_seasons,omitempty"`
	PitchingSeasons    []pitchingSeasonDTO `json:"pitching_seasons,omitempty"`
	CareerWAR          float64             `json:"career_war"`
	Awards             []awardSummaryDTO   `json:"awards,omitempty"`
	AllStarAppearances int                 `json:"all_star_appearances"`
	Championships      int                 `json:"championships"`
}

func (h *Handler) ResolvePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolvePlayer")
	defer span.End()

	name := strings.TrimSpace(r.URL.Query().Get("name"))
	suffix := strings.TrimSpace(r.URL.Query().Get("suffix"))
	res, err := h.resolverService.ResolvePlayer(ctx, name, suffix)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve player failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := playerResolutionDTO{}
	if res.Resolved != nil {
		out.Resolved = &playerSummaryDTO{
			ID:        res.Resolved.ID,
			Name:      res.Resolved.FullName(),
			Debut:     res.Resolved.Debut,
			FinalGame: res.Resolved.FinalGame,
		}
	}
	for _, s := range res.Suggestions {
		out.Suggestions = append(out.Suggestions, suggestionDTO{
			PlayerID:    s.PlayerID,
			DisplayName: s.DisplayName,
			Ordinal:     s.Ordinal,
			DebutYear:   s.DebutYear,
			BirthYear:   s.BirthYear,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	stats, err := h.statsService.GetPlayerStats(ctx, usecase.PlayerStatsInput{
		PlayerID: playerID,
		Mode:     strings.TrimSpace(r.URL.Query().Get("mode")),
		Role:     strings.TrimSpace(r.URL.Query().Get("role")),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerStatsToDTO(stats))
}

func playerStatsToDTO(stats usecase.PlayerStats) playerStatsDTO {
	out := playerStatsDTO{
		Player: playerSummaryDTO{
			ID:        stats.Player.ID,
			Name:      stats.Player.Name,
			Debut:     stats.Player.Debut,
			FinalGame: stats.Player.FinalGame,
			PhotoURL:  stats.Player.PhotoURL,
		},
		Mode:               string(stats.Mode),
		Role:               string(stats.Role),
		RoleChoiceRequired: stats.RoleChoiceRequired,
		CareerWAR:          stats.CareerWAR,
		AllStarAppearances: stats.AllStarAppearances,
		Championships:      stats.Championships,
	}
	for _, role := range stats.RoleChoices {
		out.RoleChoices = append(out.RoleChoices, string(role))
	}
	if stats.Batting != nil {
		dto := battingToDTO(*stats.Batting)
		out.Batting = &dto
	}
	if stats.Pitching != nil {
		dto := pitchingToDTO(*stats.Pitching)
		out.Pitching = &dto
	}
	for _, season := range stats.BattingSeasons {
		out.BattingSeasons = append(out.BattingSeasons, battingSeasonDTO{
			Year:            season.Year,
			Teams:           season.Teams,
			WAR:             season.WAR,
			battingStatsDTO: battingToDTO(season.BattingStats),
		})
	}
	for _, season := range stats.PitchingSeasons {
		out.PitchingSeasons = append(out.PitchingSeasons, pitchingSeasonDTO{
			Year:             season.Year,
			Teams:            season.Teams,
			WAR:              season.WAR,
			pitchingStatsDTO: pitchingToDTO(season.PitchingStats),
		})
	}
	for _, a := range stats.Awards {
		out.Awards = append(out.Awards, awardSummaryDTO{Name: a.Name, Count: a.Count, Years: a.Years})
	}
	return out
}

func battingToDTO(s usecase.BattingStats) battingStatsDTO {
	return battingStatsDTO{
		Games:            s.Games,
		AtBats:           s.AtBats,
		Runs:             s.Runs,
		Hits:             s.Hits,
		Singles:          s.Singles,
		Doubles:          s.Doubles,
		Triples:          s.Triples,
		HomeRuns:         s.HomeRuns,
		TotalBases:       s.TotalBases,
		RBI:              s.RBI,
		StolenBases:      s.StolenBases,
		Walks:            s.Walks,
		Strikeouts:       s.Strikeouts,
		HitByPitch:       s.HitByPitch,
		SacFlies:         s.SacFlies,
		SacHits:          s.SacHits,
		PlateAppearances: s.PlateAppearances,
		Average:          s.Average,
		OnBasePct:        s.OnBasePct,
		SluggingPct:      s.SluggingPct,
		OPS:              s.OPS,
	}
}

func pitchingToDTO(s usecase.PitchingStats) pitchingStatsDTO {
	return pitchingStatsDTO{
		Wins:           s.Wins,
		Losses:         s.Losses,
		Games:          s.Games,
		GamesStarted:   s.GamesStarted,
		CompleteGames:  s.CompleteGames,
		Shutouts:       s.Shutouts,
		Saves:          s.Saves,
		InningsPitched: s.InningsPitched,
		Hits:           s.Hits,
		EarnedRuns:     s.EarnedRuns,
		HomeRuns:       s.HomeRuns,
		Walks:          s.Walks,
		Strikeouts:     s.Strikeouts,
		ERA:            s.ERA,
		WHIP:           s.WHIP,
	}
}
