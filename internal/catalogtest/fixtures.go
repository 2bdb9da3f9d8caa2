// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalogtest

import "fmt"

// Starters returns a small fixture with a linear three-stage chain
// (bulbasaur line), a branching chain (eevee), and a species without a chain
// (tauros).
func Starters() Fixture {
	return Fixture{
		Pokemon: []Pokemon{
			{ID: 1, Name: "bulbasaur", Weight: 69, Height: 7, Types: []string{"grass", "poison"}},
			{ID: 2, Name: "ivysaur", Weight: 130, Height: 10, Types: []string{"grass", "poison"}},
			{ID: 3, Name: "venusaur", Weight: 1000, Height: 20, Types: []string{"grass", "poison"}},
			{ID: 128, Name: "tauros", Weight: 884, Height: 14, Types: []string{"normal"}},
			{ID: 133, Name: "eevee", Weight: 65, Height: 3, Types: []string{"normal"}},
			{ID: 134, Name: "vaporeon", Weight: 290, Height: 10, Types: []string{"water"}},
			{ID: 135, Name: "jolteon", Weight: 245, Height: 8, Types: []string{"electric"}},
		},
		Species: map[string]Species{
			"bulbasaur": {
				Flavor: []FlavorEntry{
					{Lang: "en", Text: "A strange seed was\nplanted on its\fback at birth."},
					{Lang: "en", Text: "A later english entry."},
					{Lang: "ja", Text: "うまれたときから せなかに ふしぎな タネが うえてあって"},
				},
				ChainID: 1,
			},
			"ivysaur":  {Flavor: []FlavorEntry{{Lang: "en", Text: "Ivysaur text."}}, ChainID: 1},
			"venusaur": {Flavor: []FlavorEntry{{Lang: "en", Text: "Venusaur text."}}, ChainID: 1},
			"tauros":   {Flavor: []FlavorEntry{{Lang: "en", Text: "Tauros text."}}},
			"eevee": {
				Flavor:  []FlavorEntry{{Lang: "en", Text: "Eevee text."}},
				ChainID: 67,
			},
		},
		Chains: map[int]Link{
			1: {Name: "bulbasaur", ID: 1, Next: []Link{
				{Name: "ivysaur", ID: 2, Next: []Link{
					{Name: "venusaur", ID: 3},
				}},
			}},
			67: {Name: "eevee", ID: 133, Next: []Link{
				{Name: "vaporeon", ID: 134},
				{Name: "jolteon", ID: 135},
			}},
		},
	}
}

// Numbered returns a fixture of n entities named "mon-001" and up, with ids
// 1..n. It is meant for batch arithmetic tests.
func Numbered(n int) Fixture {
	f := Fixture{Species: map[string]Species{}, Chains: map[int]Link{}}
	for i := 1; i <= n; i++ {
		f.Pokemon = append(f.Pokemon, Pokemon{
			ID:     i,
			Name:   fmt.Sprintf("mon-%03d", i),
			Weight: i * 10,
			Height: i,
			Types:  []string{"normal"},
		})
	}
	return f
}
