package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/dugoutlabs/statlines/internal/usecase"
)

type logoDTO struct {
	Primary   string   `json:"primary"`
	Fallbacks []string `json:"fallbacks,omitempty"`
}

type teamResolutionDTO struct {
	Code        string  `json:"code"`
	Year        *int    `json:"year,omitempty"`
	DisplayName string  `json:"display_name"`
	Logo        logoDTO `json:"logo"`
}

type teamSeasonDTO struct {
	Year        int    `json:"year"`
	TeamID      string `json:"team_id"`
	Name        string `json:"name"`
	Games       int    `json:"games"`
	Wins        int    `json:"wins"`
	Losses      int    `json:"losses"`
	Runs        int    `json:"runs"`
	RunsAllowed int    `json:"runs_allowed"`
}

type teamTotalsDTO struct {
	Seasons            int     `json:"seasons"`
	Games              int     `json:"games"`
	Wins               int     `json:"wins"`
	Losses             int     `json:"losses"`
	Runs               int     `json:"runs"`
	RunsAllowed        int     `json:"runs_allowed"`
	WinPct             float64 `json:"win_pct"`
	RunsPerGame        float64 `json:"runs_per_game"`
	RunsAllowedPerGame float64 `json:"runs_allowed_per_game"`
}

type postseasonRecordDTO struct {
	Appearances   int `json:"appearances"`
	SeriesWins    int `json:"series_wins"`
	Championships int `json:"championships"`
}

type teamStatsDTO struct {
	Code        string              `json:"code"`
	DisplayName string              `json:"display_name"`
	Logo        logoDTO             `json:"logo"`
	Mode        string              `json:"mode"`
	Year        *int                `json:"year,omitempty"`
	Seasons     []teamSeasonDTO     `json:"seasons"`
	Totals      teamTotalsDTO       `json:"totals"`
	Postseason  postseasonRecordDTO `json:"postseason"`
}

type headToHeadSideDTO struct {
	Code        string  `json:"code"`
	DisplayName string  `json:"display_name"`
	Logo        logoDTO `json:"logo"`
	Wins        int     `json:"wins"`
}

type postseasonMeetingDTO struct {
	Round      string `json:"round"`
	RoundName  string `json:"round_name"`
	ASeries    int    `json:"a_series_wins"`
	BSeries    int    `json:"b_series_wins"`
	AGameWins  int    `json:"a_game_wins"`
	BGameWins  int    `json:"b_game_wins"`
	FirstYear  int    `json:"first_year"`
	LatestYear int    `json:"latest_year"`
}

type headToHeadDTO struct {
	TeamA      headToHeadSideDTO      `json:"team_a"`
	TeamB      headToHeadSideDTO      `json:"team_b"`
	Year       *int                   `json:"year,omitempty"`
	TotalGames int                    `json:"total_games"`
	Postseason []postseasonMeetingDTO `json:"postseason,omitempty"`
}

type headToHeadRequest struct {
	TeamA string `json:"team_a" validate:"required"`
	TeamB string `json:"team_b" validate:"required"`
	Year  *int   `json:"year" validate:"omitempty,gte=1871,lte=2100"`
}

func (h *Handler) ResolveTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResolveTeam")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	res, err := h.teamService.ResolveTeam(ctx, query)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve team failed", "query", query, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamResolutionDTO{
		Code:        res.Code,
		Year:        res.Year,
		DisplayName: res.DisplayName,
		Logo:        logoDTO{Primary: res.Logo.Primary, Fallbacks: res.Logo.Fallbacks},
	})
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	year, err := parseYearParam(r.URL.Query().Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	stats, err := h.teamService.GetTeamStats(ctx, usecase.TeamStatsInput{
		TeamID: teamID,
		Mode:   strings.TrimSpace(r.URL.Query().Get("mode")),
		Year:   year,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "get team stats failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := teamStatsDTO{
		Code:        stats.Code,
		DisplayName: stats.DisplayName,
		Logo:        logoDTO{Primary: stats.Logo.Primary, Fallbacks: stats.Logo.Fallbacks},
		Mode:        string(stats.Mode),
		Year:        stats.Year,
		Seasons:     make([]teamSeasonDTO, 0, len(stats.Seasons)),
		Totals: teamTotalsDTO{
			Seasons:            stats.Totals.Seasons,
			Games:              stats.Totals.Games,
			Wins:               stats.Totals.Wins,
			Losses:             stats.Totals.Losses,
			Runs:               stats.Totals.Runs,
			RunsAllowed:        stats.Totals.RunsAllowed,
			WinPct:             stats.Totals.WinPct,
			RunsPerGame:        stats.Totals.RunsPerGame,
			RunsAllowedPerGame: stats.Totals.RunsAllowedPerGame,
		},
		Postseason: postseasonRecordDTO{
			Appearances:   stats.Postseason.Appearances,
			SeriesWins:    stats.Postseason.SeriesWins,
			Championships: stats.Postseason.Championships,
		},
	}
	for _, season := range stats.Seasons {
		out.Seasons = append(out.Seasons, teamSeasonDTO{
			Year:        season.Year,
			TeamID:      season.TeamID,
			Name:        season.Name,
			Games:       season.Games,
			Wins:        season.Wins,
			Losses:      season.Losses,
			Runs:        season.Runs,
			RunsAllowed: season.RunsAllowed,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) GetHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHeadToHead")
	defer span.End()

	year, err := parseYearParam(r.URL.Query().Get("year"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.serveHeadToHead(w, r, usecase.HeadToHeadInput{
		TeamA: strings.TrimSpace(r.URL.Query().Get("team_a")),
		TeamB: strings.TrimSpace(r.URL.Query().Get("team_b")),
		Year:  year,
	})
}

func (h *Handler) PostHeadToHead(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PostHeadToHead")
	defer span.End()

	var req headToHeadRequest
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	h.serveHeadToHead(w, r, usecase.HeadToHeadInput{
		TeamA: req.TeamA,
		TeamB: req.TeamB,
		Year:  req.Year,
	})
}

func (h *Handler) serveHeadToHead(w http.ResponseWriter, r *http.Request, input usecase.HeadToHeadInput) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.serveHeadToHead")
	defer span.End()

	res, err := h.headToHeadService.GetHeadToHead(ctx, input)
	if err != nil {
		h.logger.WarnContext(ctx, "head-to-head failed", "team_a", input.TeamA, "team_b", input.TeamB, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := headToHeadDTO{
		TeamA:      headToHeadSideToDTO(res.TeamA),
		TeamB:      headToHeadSideToDTO(res.TeamB),
		Year:       res.Year,
		TotalGames: res.TotalGames,
	}
	for _, m := range res.Postseason {
		out.Postseason = append(out.Postseason, postseasonMeetingDTO{
			Round:      m.Round,
			RoundName:  m.RoundName,
			ASeries:    m.ASeries,
			BSeries:    m.BSeries,
			AGameWins:  m.AGameWins,
			BGameWins:  m.BGameWins,
			FirstYear:  m.FirstYear,
			LatestYear: m.LatestYear,
		})
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func headToHeadSideToDTO(side usecase.HeadToHeadSide) headToHeadSideDTO {
	return headToHeadSideDTO{
		Code:        side.Code,
		DisplayName: side.DisplayName,
		Logo:        logoDTO{Primary: side.Logo.Primary, Fallbacks: side.Logo.Fallbacks},
		Wins:        side.Wins,
	}
}

func parseYearParam(raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%w: year must be numeric", usecase.ErrInvalidInput)
	}
	return &year, nil
}
