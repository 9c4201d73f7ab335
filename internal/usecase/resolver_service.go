package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/dugoutlabs/statlines/internal/domain/people"
	"github.com/dugoutlabs/statlines/internal/platform/logging"
)

// Suggestion is one candidate among several players sharing a searched name.
type Suggestion struct {
	PlayerID    string
	DisplayName string
	Ordinal     string
	DebutYear   int
	BirthYear   int
}

// PlayerResolution is the outcome of a name lookup. Exactly one of Resolved
// or Suggestions is set: an ambiguous name is a normal result, not an error.
type PlayerResolution struct {
	Resolved    *people.Player
	Suggestions []Suggestion
}

type ResolverService struct {
	peopleRepo people.Repository
	logger     *logging.Logger
}

func NewResolverService(peopleRepo people.Repository, logger *logging.Logger) *ResolverService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ResolverService{peopleRepo: peopleRepo, logger: logger}
}

// ResolvePlayer maps a free-text name to a single player or a ranked list of
// namesake candidates. A trailing generational suffix (jr, sr, iii, ...)
// or an explicit hint acts as a disambiguator and short-circuits the
// candidate list when it matches an assigned ordinal; the explicit hint wins
// over one embedded in the name.
func (s *ResolverService) ResolvePlayer(ctx context.Context, fullName, hint string) (PlayerResolution, error) {
	ctx, span := startUsecaseSpan(ctx, "ResolverService.ResolvePlayer")
	defer span.End()

	cleaned, suffixHint := people.StripSuffix(fullName)
	if explicit := people.NormalizeSuffix(hint); explicit != "" {
		suffixHint = explicit
	}
	first, last, ok := splitName(cleaned)
	if !ok {
		return PlayerResolution{}, fmt.Errorf("%w: player name must contain first and last name", ErrInvalidInput)
	}

	matches, err := s.peopleRepo.FindByName(ctx, first, last)
	if err != nil {
		return PlayerResolution{}, fmt.Errorf("find players by name: %w", err)
	}
	if len(matches) == 0 {
		return PlayerResolution{}, fmt.Errorf("%w: player=%s %s", ErrNotFound, first, last)
	}
	if len(matches) == 1 {
		// A unique match wins even when the caller supplied a suffix.
		resolved := matches[0]
		return PlayerResolution{Resolved: &resolved}, nil
	}

	candidates := people.AssignOrdinals(matches)
	if suffixHint != "" {
		for _, c := range candidates {
			if c.Ordinal == suffixHint {
				resolved := c.Player
				return PlayerResolution{Resolved: &resolved}, nil
			}
		}
		s.logger.InfoContext(ctx, "suffix hint matched no candidate, returning suggestions",
			"name", cleaned, "suffix", suffixHint, "candidates", len(candidates))
	}

	suggestions := make([]Suggestion, 0, len(candidates))
	for _, c := range candidates {
		suggestions = append(suggestions, Suggestion{
			PlayerID:    c.Player.ID,
			DisplayName: c.DisplayName(),
			Ordinal:     c.Ordinal,
			DebutYear:   c.Player.DebutYear(),
			BirthYear:   c.Player.BirthYear,
		})
	}
	return PlayerResolution{Suggestions: suggestions}, nil
}

// splitName separates the first-name part from the (possibly multi-word)
// last-name part on the first space.
func splitName(name string) (string, string, bool) {
	trimmed := strings.TrimSpace(name)
	idx := strings.IndexByte(trimmed, ' ')
	if idx <= 0 {
		return "", "", false
	}
	first := trimmed[:idx]
	last := strings.TrimSpace(trimmed[idx+1:])
	if last == "" {
		return "", "", false
	}
	return first, last, true
}
