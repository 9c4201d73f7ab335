package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/dugoutlabs/statlines/internal/config"
	"github.com/dugoutlabs/statlines/internal/domain/awards"
	"github.com/dugoutlabs/statlines/internal/domain/batting"
	"github.com/dugoutlabs/statlines/internal/domain/gamelog"
	"github.com/dugoutlabs/statlines/internal/domain/people"
	"github.com/dugoutlabs/statlines/internal/domain/pitching"
	"github.com/dugoutlabs/statlines/internal/domain/postseason"
	"github.com/dugoutlabs/statlines/internal/domain/teamseason"
	"github.com/dugoutlabs/statlines/internal/domain/warvalue"
	"github.com/dugoutlabs/statlines/internal/infrastructure/headshot"
	"github.com/dugoutlabs/statlines/internal/infrastructure/repository/memory"
	"github.com/dugoutlabs/statlines/internal/infrastructure/repository/postgres"
	"github.com/dugoutlabs/statlines/internal/interfaces/httpapi"
	"github.com/dugoutlabs/statlines/internal/platform/logging"
	"github.com/dugoutlabs/statlines/internal/platform/resilience"
	"github.com/dugoutlabs/statlines/internal/usecase"
)

type repositories struct {
	people     people.Repository
	batting    batting.Repository
	pitching   pitching.Repository
	warValues  warvalue.Repository
	awards     awards.Repository
	teamSeason teamseason.Repository
	postseason postseason.Repository
	gameLog    gamelog.Repository
}

// NewHTTPServer wires repositories, services and the router into a server.
// The returned cleanup closes the database handle when one was opened.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	cleanup := func() error { return nil }
	var repos repositories

	if strings.TrimSpace(cfg.DBURL) != "" {
		db, err := openDatabase(cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open database: %w", err)
		}
		cleanup = db.Close
		repos = repositories{
			people:     postgres.NewPeopleRepository(db),
			batting:    postgres.NewBattingRepository(db),
			pitching:   postgres.NewPitchingRepository(db),
			warValues:  postgres.NewWarValueRepository(db),
			awards:     postgres.NewAwardsRepository(db),
			teamSeason: postgres.NewTeamSeasonRepository(db),
			postseason: postgres.NewPostseasonRepository(db),
			gameLog:    postgres.NewGameLogRepository(db),
		}
		logger.Info("using postgres repositories", "db", dbNameFromURL(cfg.DBURL))
	} else {
		seed := memory.SeedDataset()
		repos = repositories{
			people:     memory.NewPeopleRepository(seed.Players),
			batting:    memory.NewBattingRepository(seed.Batting),
			pitching:   memory.NewPitchingRepository(seed.Pitching),
			warValues:  memory.NewWarValueRepository(seed.WarValues),
			awards:     memory.NewAwardsRepository(seed.Awards, seed.AllStarCounts),
			teamSeason: memory.NewTeamSeasonRepository(seed.TeamSeasons),
			postseason: memory.NewPostseasonRepository(seed.Postseason),
			gameLog:    memory.NewGameLogRepository(seed.GameLog),
		}
		logger.Info("DB_URL empty, using seeded in-memory repositories")
	}

	var headshots usecase.HeadshotLookup
	if cfg.HeadshotEnabled {
		headshots = headshot.NewClient(headshot.ClientConfig{
			HTTPClient: &http.Client{Timeout: cfg.HeadshotTimeout},
			BaseURL:    cfg.HeadshotBaseURL,
			Timeout:    cfg.HeadshotTimeout,
			CacheTTL:   cfg.HeadshotCacheTTL,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.HeadshotCircuitEnabled,
				FailureThreshold: cfg.HeadshotCircuitFailureCount,
				OpenTimeout:      cfg.HeadshotCircuitOpenTimeout,
			},
		})
	}

	handler := httpapi.NewHandler(
		usecase.NewResolverService(repos.people, logger),
		usecase.NewPlayerStatsService(repos.people, repos.batting, repos.pitching, repos.warValues, repos.awards, repos.postseason, headshots, logger, cfg.EnrichWorkers),
		usecase.NewTeamService(repos.teamSeason, repos.postseason, logger),
		usecase.NewHeadToHeadService(repos.gameLog, repos.postseason, logger),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func openDatabase(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(4)
	return db, nil
}
