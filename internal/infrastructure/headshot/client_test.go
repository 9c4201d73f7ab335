package headshot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/dugoutlabs/statlines/internal/domain/people"
)

func TestLookupURLDirectOverrideSkipsProvider(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"people":[]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL})
	got, err := c.LookupURL(context.Background(), people.Player{ID: "griffke02", FirstName: "Ken", LastName: "Griffey"})
	if err != nil {
		t.Fatalf("LookupURL: %v", err)
	}
	if !strings.Contains(got, "/people/115096/") {
		t.Fatalf("unexpected photo url: %q", got)
	}
	if calls.Load() != 0 {
		t.Fatalf("direct override must not call the provider, got %d calls", calls.Load())
	}
}

func TestLookupURLMatchesByDebutOverlap(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("names"); got != "John Smith" {
			t.Errorf("unexpected names query: %q", got)
		}
		w.Write([]byte(`{"people":[
			{"id":100,"fullName":"John Smith","mlbDebutDate":"1950-05-02"},
			{"id":200,"fullName":"John Smith","mlbDebutDate":"1981-04-09"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL})
	got, err := c.LookupURL(context.Background(), people.Player{
		ID: "smithjo02", FirstName: "John", LastName: "Smith", Debut: "1980-04-09",
	})
	if err != nil {
		t.Fatalf("LookupURL: %v", err)
	}
	if !strings.Contains(got, "/people/200/") {
		t.Fatalf("expected 1981 debut candidate within one-year window, got %q", got)
	}
}

func TestLookupURLNoConfidentMatchYieldsEmpty(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"people":[
			{"id":100,"fullName":"John Smith","mlbDebutDate":"1950-05-02"},
			{"id":200,"fullName":"John Smith","mlbDebutDate":"1990-04-09"}
		]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL})
	got, err := c.LookupURL(context.Background(), people.Player{
		ID: "smithjo03", FirstName: "John", LastName: "Smith", Debut: "1970-06-01",
	})
	if err != nil {
		t.Fatalf("LookupURL: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty url without a confident match, got %q", got)
	}
}

func TestLookupURLCachesResults(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"people":[{"id":300,"fullName":"Hank Aaron","mlbDebutDate":"1954-04-13"}]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL})
	p := people.Player{ID: "aaronha01", FirstName: "Hank", LastName: "Aaron", Debut: "1954-04-13"}

	for i := 0; i < 3; i++ {
		if _, err := c.LookupURL(context.Background(), p); err != nil {
			t.Fatalf("LookupURL: %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected one provider call with caching, got %d", calls.Load())
	}
}

func TestLookupURLBreakerOpensOnServerErrors(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL})
	p := people.Player{ID: "aaronha01", FirstName: "Hank", LastName: "Aaron", Debut: "1954-04-13"}

	for i := 0; i < 5; i++ {
		if _, err := c.LookupURL(context.Background(), p); err == nil {
			t.Fatalf("expected provider error on attempt %d", i)
		}
	}
	if _, err := c.LookupURL(context.Background(), p); err == nil {
		t.Fatal("expected circuit breaker rejection after repeated failures")
	}
}
