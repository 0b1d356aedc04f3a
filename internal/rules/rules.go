// Package rules loads the named game variants a table can play. Variants
// come from an HCL file of labeled game blocks; when no file is given a
// built-in set of classic variants is used.
package rules

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/cardfelt/cardfelt/internal/game"
)

// Config is the root of a rules file
type Config struct {
	Games []GameConfig `hcl:"game,block"`
}

// GameConfig defines one playable variant
type GameConfig struct {
	Name          string   `hcl:"name,label"`
	MinPlayers    int      `hcl:"min_players,optional"`
	MaxPlayers    int      `hcl:"max_players,optional"`
	StartingMoney int      `hcl:"starting_money,optional"`
	Ante          int      `hcl:"ante"`
	AnteDoubles   bool     `hcl:"ante_doubles,optional"`
	Rounds        []string `hcl:"rounds"`
}

// Set holds the loaded variants, addressable by normalized name
type Set struct {
	variants map[string]game.Variant
	names    []string
}

// Default returns the built-in variants
func Default() *Set {
	set, err := build(defaultConfig())
	if err != nil {
		// The built-in config is static; failing to build it is a bug.
		panic(err)
	}
	return set
}

// Load reads a rules file. A missing path falls back to the defaults.
func Load(filename string) (*Set, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse rules file: %s", diags.Error())
	}
	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode rules file: %s", diags.Error())
	}
	return build(&config)
}

// build validates the config, applies defaults and indexes the variants
func build(config *Config) (*Set, error) {
	if len(config.Games) == 0 {
		return nil, fmt.Errorf("at least one game must be configured")
	}
	set := &Set{variants: make(map[string]game.Variant, len(config.Games))}
	for _, g := range config.Games {
		if g.MinPlayers == 0 {
			g.MinPlayers = 2
		}
		if g.MaxPlayers == 0 {
			g.MaxPlayers = 8
		}
		if g.StartingMoney == 0 {
			g.StartingMoney = 100
		}
		if err := validate(g); err != nil {
			return nil, err
		}
		rounds := make([]game.Round, 0, len(g.Rounds))
		for _, token := range g.Rounds {
			r, err := game.ParseRound(token)
			if err != nil {
				return nil, fmt.Errorf("game %s: %w", g.Name, err)
			}
			rounds = append(rounds, r)
		}
		name := strings.ToLower(strings.TrimSpace(g.Name))
		if _, dup := set.variants[name]; dup {
			return nil, fmt.Errorf("duplicate game %q", name)
		}
		set.variants[name] = game.Variant{
			Name:          name,
			MinPlayers:    g.MinPlayers,
			MaxPlayers:    g.MaxPlayers,
			StartingMoney: g.StartingMoney,
			Ante:          g.Ante,
			AnteDoubles:   g.AnteDoubles,
			Rounds:        rounds,
		}
		set.names = append(set.names, name)
	}
	sort.Strings(set.names)
	return set, nil
}

func validate(g GameConfig) error {
	if g.MinPlayers < 2 {
		return fmt.Errorf("game %s: min players must be at least 2", g.Name)
	}
	if g.MaxPlayers < g.MinPlayers {
		return fmt.Errorf("game %s: max players must not be below min players", g.Name)
	}
	if g.Ante <= 0 {
		return fmt.Errorf("game %s: ante must be positive", g.Name)
	}
	if g.Ante >= g.StartingMoney/2 {
		return fmt.Errorf("game %s: ante must be below half the starting money", g.Name)
	}
	if len(g.Rounds) == 0 {
		return fmt.Errorf("game %s: at least one round must be configured", g.Name)
	}
	return nil
}

// Lookup finds a variant by name, case-insensitively
func (s *Set) Lookup(name string) (game.Variant, bool) {
	v, ok := s.variants[strings.ToLower(strings.TrimSpace(name))]
	return v, ok
}

// Names returns the sorted names of the available variants
func (s *Set) Names() []string {
	return append([]string{}, s.names...)
}

func defaultConfig() *Config {
	return &Config{Games: []GameConfig{
		{
			Name:          "five card draw",
			MinPlayers:    2,
			MaxPlayers:    6,
			StartingMoney: 100,
			Ante:          5,
			Rounds: []string{
				"ante",
				"dealDown", "dealDown", "dealDown", "dealDown", "dealDown",
				"bet",
				"mayDrawDown",
				"bet",
				"showdown",
			},
		},
		{
			Name:          "seven card stud",
			MinPlayers:    2,
			MaxPlayers:    7,
			StartingMoney: 100,
			Ante:          5,
			Rounds: []string{
				"ante",
				"dealDown", "dealDown", "dealUp",
				"bet",
				"dealUp", "bet",
				"dealUp", "bet",
				"dealUp", "bet",
				"dealDown", "bet",
				"showdown",
			},
		},
		{
			Name:          "texas holdem",
			MinPlayers:    2,
			MaxPlayers:    8,
			StartingMoney: 200,
			Ante:          5,
			AnteDoubles:   true,
			Rounds: []string{
				"ante",
				"dealDown", "dealDown",
				"bet",
				"dealCommon", "dealCommon", "dealCommon",
				"bet",
				"dealCommon", "bet",
				"dealCommon", "bet",
				"showdown",
			},
		},
	}}
}
