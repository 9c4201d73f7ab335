package franchise

import "testing"

func TestExpandContainsSelf(t *testing.T) {
	t.Parallel()

	for _, code := range CanonicalCodes() {
		group := Expand(code)
		if len(group) == 0 {
			t.Fatalf("Expand(%q) returned empty group", code)
		}
		if !contains(group, code) {
			t.Fatalf("Expand(%q) = %v does not contain the canonical code", code, group)
		}
	}
}

func TestExpandUnknownCodeIsSingleton(t *testing.T) {
	t.Parallel()

	group := Expand("XYZ")
	if len(group) != 1 || group[0] != "XYZ" {
		t.Fatalf("expected singleton group for unmapped code, got %v", group)
	}
}

func TestExpandBravesLineage(t *testing.T) {
	t.Parallel()

	group := Expand("ATL")
	want := map[string]struct{}{"ATL": {}, "BSN": {}, "ML1": {}}
	if len(group) != len(want) {
		t.Fatalf("expected %d codes, got %v", len(want), group)
	}
	for _, code := range group {
		if _, ok := want[code]; !ok {
			t.Fatalf("unexpected code %q in Braves lineage %v", code, group)
		}
	}
}

func TestOverlaps(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "same code", a: "NYA", b: "NYA", want: true},
		{name: "historical code of same franchise", a: "ATL", b: "BSN", want: true},
		{name: "distinct franchises", a: "NYA", b: "BOS", want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := Overlaps(tc.a, tc.b); got != tc.want {
				t.Fatalf("Overlaps(%q, %q) = %t, want %t", tc.a, tc.b, got, tc.want)
			}
		})
	}
}
