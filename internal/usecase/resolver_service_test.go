package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/dugoutlabs/statlines/internal/domain/people"
)

type stubPeopleRepo struct {
	byName   map[string][]people.Player
	byID     map[string]people.Player
	nameErr  error
	lastName string
}

func (s *stubPeopleRepo) FindByName(_ context.Context, first, last string) ([]people.Player, error) {
	s.lastName = first + " " + last
	if s.nameErr != nil {
		return nil, s.nameErr
	}
	return s.byName[first+" "+last], nil
}

func (s *stubPeopleRepo) GetByID(_ context.Context, playerID string) (people.Player, bool, error) {
	p, ok := s.byID[playerID]
	return p, ok, nil
}

func TestResolvePlayerUniqueMatch(t *testing.T) {
	t.Parallel()

	repo := &stubPeopleRepo{byName: map[string][]people.Player{
		"Hank Aaron": {{ID: "aaronha01", FirstName: "Hank", LastName: "Aaron", Debut: "1954-04-13"}},
	}}
	svc := NewResolverService(repo, nil)

	res, err := svc.ResolvePlayer(context.Background(), "  Hank Aaron ", "")
	if err != nil {
		t.Fatalf("ResolvePlayer: %v", err)
	}
	if res.Resolved == nil || res.Resolved.ID != "aaronha01" {
		t.Fatalf("resolved = %+v, want aaronha01", res.Resolved)
	}
	if len(res.Suggestions) != 0 {
		t.Fatalf("suggestions = %d, want none", len(res.Suggestions))
	}
}

func TestResolvePlayerNamesakesReturnSuggestions(t *testing.T) {
	t.Parallel()

	repo := &stubPeopleRepo{byName: map[string][]people.Player{
		"John Smith": {
			{ID: "smithjo01", FirstName: "John", LastName: "Smith", Debut: "1950-05-01", BirthYear: 1928},
			{ID: "smithjo02", FirstName: "John", LastName: "Smith", Debut: "1980-04-09", BirthYear: 1958},
		},
	}}
	svc := NewResolverService(repo, nil)

	res, err := svc.ResolvePlayer(context.Background(), "John Smith", "")
	if err != nil {
		t.Fatalf("ResolvePlayer: %v", err)
	}
	if res.Resolved != nil {
		t.Fatalf("resolved = %+v, want suggestions", res.Resolved)
	}
	if len(res.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(res.Suggestions))
	}
	if res.Suggestions[0].Ordinal != "Sr." || res.Suggestions[0].PlayerID != "smithjo01" {
		t.Fatalf("first suggestion = %+v, want smithjo01 Sr.", res.Suggestions[0])
	}
	if res.Suggestions[1].Ordinal != "Jr." || res.Suggestions[1].DebutYear != 1980 {
		t.Fatalf("second suggestion = %+v, want smithjo02 Jr. debut 1980", res.Suggestions[1])
	}
	if res.Suggestions[0].DisplayName != "John Smith Sr." {
		t.Fatalf("display name = %q, want %q", res.Suggestions[0].DisplayName, "John Smith Sr.")
	}
}

func TestResolvePlayerSuffixHintSelectsCandidate(t *testing.T) {
	t.Parallel()

	repo := &stubPeopleRepo{byName: map[string][]people.Player{
		"John Smith": {
			{ID: "smithjo01", FirstName: "John", LastName: "Smith", Debut: "1950-05-01"},
			{ID: "smithjo02", FirstName: "John", LastName: "Smith", Debut: "1980-04-09"},
		},
	}}
	svc := NewResolverService(repo, nil)

	res, err := svc.ResolvePlayer(context.Background(), "John Smith Jr.", "")
	if err != nil {
		t.Fatalf("ResolvePlayer: %v", err)
	}
	if res.Resolved == nil || res.Resolved.ID != "smithjo02" {
		t.Fatalf("resolved = %+v, want smithjo02", res.Resolved)
	}
	if repo.lastName != "John Smith" {
		t.Fatalf("searched name = %q, want suffix stripped before lookup", repo.lastName)
	}
}

func TestResolvePlayerExplicitHintBeatsEmbeddedSuffix(t *testing.T) {
	t.Parallel()

	repo := &stubPeopleRepo{byName: map[string][]people.Player{
		"John Smith": {
			{ID: "smithjo01", FirstName: "John", LastName: "Smith", Debut: "1950-05-01"},
			{ID: "smithjo02", FirstName: "John", LastName: "Smith", Debut: "1980-04-09"},
		},
	}}
	svc := NewResolverService(repo, nil)

	res, err := svc.ResolvePlayer(context.Background(), "John Smith Jr.", "senior")
	if err != nil {
		t.Fatalf("ResolvePlayer: %v", err)
	}
	if res.Resolved == nil || res.Resolved.ID != "smithjo01" {
		t.Fatalf("resolved = %+v, want the explicit hint to win", res.Resolved)
	}
}

func TestResolvePlayerUnmatchedSuffixFallsBackToSuggestions(t *testing.T) {
	t.Parallel()

	repo := &stubPeopleRepo{byName: map[string][]people.Player{
		"John Smith": {
			{ID: "smithjo01", FirstName: "John", LastName: "Smith", Debut: "1950-05-01"},
			{ID: "smithjo02", FirstName: "John", LastName: "Smith", Debut: "1980-04-09"},
		},
	}}
	svc := NewResolverService(repo, nil)

	res, err := svc.ResolvePlayer(context.Background(), "John Smith III", "")
	if err != nil {
		t.Fatalf("ResolvePlayer: %v", err)
	}
	if res.Resolved != nil {
		t.Fatalf("resolved = %+v, want suggestions when the hint matches nobody", res.Resolved)
	}
	if len(res.Suggestions) != 2 {
		t.Fatalf("suggestions = %d, want 2", len(res.Suggestions))
	}
}

func TestResolvePlayerSuffixIgnoredOnUniqueMatch(t *testing.T) {
	t.Parallel()

	repo := &stubPeopleRepo{byName: map[string][]people.Player{
		"Ken Griffey": {{ID: "griffke02", FirstName: "Ken", LastName: "Griffey", Debut: "1989-04-03"}},
	}}
	svc := NewResolverService(repo, nil)

	res, err := svc.ResolvePlayer(context.Background(), "Ken Griffey Sr.", "")
	if err != nil {
		t.Fatalf("ResolvePlayer: %v", err)
	}
	if res.Resolved == nil || res.Resolved.ID != "griffke02" {
		t.Fatalf("resolved = %+v, want the only match despite the suffix", res.Resolved)
	}
}

func TestResolvePlayerInputValidation(t *testing.T) {
	t.Parallel()

	svc := NewResolverService(&stubPeopleRepo{}, nil)

	for _, input := range []string{"", "  ", "Ichiro", "Smith Jr."} {
		if _, err := svc.ResolvePlayer(context.Background(), input, ""); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("ResolvePlayer(%q) err = %v, want ErrInvalidInput", input, err)
		}
	}
}

func TestResolvePlayerNotFound(t *testing.T) {
	t.Parallel()

	svc := NewResolverService(&stubPeopleRepo{}, nil)

	if _, err := svc.ResolvePlayer(context.Background(), "Nobody Here", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestResolvePlayerRepositoryError(t *testing.T) {
	t.Parallel()

	repo := &stubPeopleRepo{nameErr: errors.New("connection reset")}
	svc := NewResolverService(repo, nil)

	if _, err := svc.ResolvePlayer(context.Background(), "Hank Aaron", ""); err == nil {
		t.Fatal("expected error from repository failure")
	}
}
