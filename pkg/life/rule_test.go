package life

import (
	"errors"
	"slices"
	"testing"
)

func TestConwayApplies(t *testing.T) {
	for n := 0; n <= MaxNeighbors; n++ {
		wantBirth := n == 3
		wantSurvive := n == 2 || n == 3
		if got := Conway.Applies(false, n); got != wantBirth {
			t.Fatalf("dead cell with %d neighbours: got %v, expected %v", n, got, wantBirth)
		}
		if got := Conway.Applies(true, n); got != wantSurvive {
			t.Fatalf("live cell with %d neighbours: got %v, expected %v", n, got, wantSurvive)
		}
	}
}

func TestNewRuleValidates(t *testing.T) {
	if _, err := NewRule([]int{-1}, nil); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("birth -1: expected ErrInvalidRule, got %v", err)
	}
	if _, err := NewRule(nil, []int{9}); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("survive 9: expected ErrInvalidRule, got %v", err)
	}
	r, err := NewRule([]int{3, 3, 0}, []int{8})
	if err != nil {
		t.Fatalf("valid rule rejected: %v", err)
	}
	if !slices.Equal(r.Birth(), []int{0, 3}) || !slices.Equal(r.Survive(), []int{8}) {
		t.Fatalf("unexpected counts birth=%v survive=%v", r.Birth(), r.Survive())
	}
}

func TestParseRule(t *testing.T) {
	cases := map[string]string{
		"B3/S23":       "B3/S23",
		"b36/s23":      "B36/S23",
		"S23/B3":       "B3/S23",
		" B2/S ":       "B2/S",
		"B/S012345678": "B/S012345678",
	}
	for in, want := range cases {
		r, err := ParseRule(in)
		if err != nil {
			t.Fatalf("ParseRule(%q): %v", in, err)
		}
		if got := r.String(); got != want {
			t.Fatalf("ParseRule(%q) = %s, expected %s", in, got, want)
		}
	}
	for _, in := range []string{"", "B3", "B3/S23/X", "X3/S23", "B3/B4", "B9/S2", "B3/S2a", "/S23"} {
		if _, err := ParseRule(in); !errors.Is(err, ErrInvalidRule) {
			t.Fatalf("ParseRule(%q): expected ErrInvalidRule, got %v", in, err)
		}
	}
}

func TestPresetsRoundTrip(t *testing.T) {
	names := PresetNames()
	if len(names) != 20 {
		t.Fatalf("expected 20 presets, got %d", len(names))
	}
	if !slices.IsSorted(names) {
		t.Fatal("preset names not sorted")
	}
	for _, name := range names {
		r, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		parsed, err := ParseRule(r.String())
		if err != nil || parsed != r {
			t.Fatalf("%s: %s does not parse back (%v)", name, r, err)
		}
	}
}

func TestLookupRule(t *testing.T) {
	name, r, err := LookupRule("B36/S23")
	if err != nil || name != "High Life" {
		t.Fatalf("LookupRule(B36/S23) = %q, %v", name, err)
	}
	if r.String() != "B36/S23" {
		t.Fatalf("unexpected rule %s", r)
	}
	name, _, err = LookupRule("B2/S7")
	if err != nil || name != "B2/S7" {
		t.Fatalf("custom rule resolved to %q, %v", name, err)
	}
	if _, _, err := LookupRule("Not a rule"); !errors.Is(err, ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
}

func TestFromMap(t *testing.T) {
	cfg := FromMap(map[string]string{
		"rule":               "Maze",
		"seed":               "-9",
		"workers":            "0",
		"parallel_threshold": "12",
	})
	def := DefaultConfig()
	if cfg.Rule != "Maze" || cfg.Seed != -9 || cfg.ParallelThreshold != 12 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Workers != def.Workers {
		t.Fatalf("non-positive workers should keep default, got %d", cfg.Workers)
	}
	if got := FromMap(nil); got != def {
		t.Fatalf("FromMap(nil) = %+v, expected defaults", got)
	}
}
