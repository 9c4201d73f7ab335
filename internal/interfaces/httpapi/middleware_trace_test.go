package httpapi

import "testing"

func TestShouldTraceRequest(t *testing.T) {
	t.Parallel()

	cases := map[string]bool{
		"/healthz":            false,
		"/health":             false,
		"/livez":              false,
		"/readyz":             false,
		" /healthz ":          false,
		"/v1/players/resolve": true,
		"/v1/teams/resolve":   true,
		"/":                   true,
	}

	for path, want := range cases {
		if got := shouldTraceRequest(path); got != want {
			t.Fatalf("shouldTraceRequest(%q) = %t, want %t", path, got, want)
		}
	}
}
