package life

import (
	"fmt"
	"slices"
)

// DefaultPreset names the rule engines start with.
const DefaultPreset = "Conway's Game of Life"

var presets = map[string]Rule{}

// RegisterPreset adds a named rule to the preset table.
func RegisterPreset(name string, r Rule) {
	if name == "" {
		return
	}
	presets[name] = r
}

// Preset looks up a named rule.
func Preset(name string) (Rule, error) {
	r, ok := presets[name]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return r, nil
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LookupRule resolves either a preset name or a rule in B/S notation.
func LookupRule(rule string) (name string, r Rule, err error) {
	if r, err := Preset(rule); err == nil {
		return rule, r, nil
	}
	r, err = ParseRule(rule)
	if err != nil {
		return "", Rule{}, err
	}
	for _, n := range PresetNames() {
		if presets[n] == r {
			return n, r, nil
		}
	}
	return r.String(), r, nil
}

func init() {
	RegisterPreset("Conway's Game of Life", Conway)
	RegisterPreset("3-4 Life", MustRule([]int{3, 4}, []int{3, 4}))
	RegisterPreset("Amoeba", MustRule([]int{3, 5, 7}, []int{1, 3, 5, 8}))
	RegisterPreset("Coagulations", MustRule([]int{3, 7, 8}, []int{2, 3, 5, 6, 7, 8}))
	RegisterPreset("Coral", MustRule([]int{3}, []int{4, 5, 6, 7, 8}))
	RegisterPreset("Corrosion of Conformity", MustRule([]int{3}, []int{1, 2, 4}))
	RegisterPreset("Day & Night", MustRule([]int{3, 6, 7, 8}, []int{3, 4, 6, 7, 8}))
	RegisterPreset("Life Without Death", MustRule([]int{3}, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}))
	RegisterPreset("Gnarl", MustRule([]int{1}, []int{1}))
	RegisterPreset("High Life", MustRule([]int{3, 6}, []int{2, 3}))
	RegisterPreset("Inverse Life", MustRule([]int{0, 1, 2, 3, 4, 7, 8}, []int{3, 4, 6, 7, 8}))
	RegisterPreset("Long Life", MustRule([]int{3, 4, 5}, []int{5}))
	RegisterPreset("Maze", MustRule([]int{3}, []int{1, 2, 3, 4, 5}))
	RegisterPreset("Mazectric", MustRule([]int{3}, []int{1, 2, 3, 4}))
	RegisterPreset("Pseudo Life", MustRule([]int{3, 5, 7}, []int{2, 3, 8}))
	RegisterPreset("Replicator", MustRule([]int{1, 3, 5, 7}, []int{1, 3, 5, 7}))
	RegisterPreset("Seeds", MustRule([]int{2}, nil))
	RegisterPreset("Serviettes", MustRule([]int{2, 3, 4}, nil))
	RegisterPreset("Stains", MustRule([]int{3, 6, 7, 8}, []int{2, 3, 5, 6, 7, 8}))
	RegisterPreset("Walled Cities", MustRule([]int{3, 6, 7, 8}, []int{2, 3, 5, 6, 7, 8}))
}
