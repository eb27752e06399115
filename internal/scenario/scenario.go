// Package scenario loads YAML scenario files describing beaches, clans and
// reefs, builds an ocean from them, and runs the hunts and clan contests
// they list.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/ocean/pkg/types"
)

// Scenario is the top-level document of a scenario file.
type Scenario struct {
	Beaches  []BeachSpec   `yaml:"beaches"`
	Reefs    []ReefSpec    `yaml:"reefs"`
	Hunts    []HuntSpec    `yaml:"hunts"`
	Contests []ContestSpec `yaml:"contests"`
}

// BeachSpec describes one beach: its crabs, breedings and clans. Breedings
// run after all crabs are added and before clans are formed, so bred crabs
// can join clans.
type BeachSpec struct {
	Name  string      `yaml:"name"`
	Crabs []CrabSpec  `yaml:"crabs"`
	Breed []BreedSpec `yaml:"breed"`
	Clans []ClanSpec  `yaml:"clans"`
}

// CrabSpec describes one crab. Diet decodes by name through
// types.Diet.UnmarshalText; a crab without a diet eats fish.
type CrabSpec struct {
	Name  string      `yaml:"name"`
	Speed uint32      `yaml:"speed"`
	Diet  types.Diet  `yaml:"diet"`
	Color types.Color `yaml:"color"`
}

// BreedSpec breeds the crabs at indices First and Second.
type BreedSpec struct {
	First  int    `yaml:"first"`
	Second int    `yaml:"second"`
	Name   string `yaml:"name"`
}

// ClanSpec lists the crab names joining a clan.
type ClanSpec struct {
	ID      string   `yaml:"id"`
	Members []string `yaml:"members"`
}

// ReefSpec gives the prey counts passed to Ocean.GenerateReef.
type ReefSpec struct {
	Minnows uint32 `yaml:"minnows"`
	Shrimp  uint32 `yaml:"shrimp"`
	Clams   uint32 `yaml:"clams"`
	Algae   uint32 `yaml:"algae"`
}

// HuntSpec sends crab Crab of beach Beach to hunt on reef Reef.
type HuntSpec struct {
	Beach int `yaml:"beach"`
	Crab  int `yaml:"crab"`
	Reef  int `yaml:"reef"`
}

// ContestSpec pits two clans of one beach against each other.
type ContestSpec struct {
	Beach  int    `yaml:"beach"`
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a scenario document and validates it. Unknown fields are
// rejected.
func Parse(data []byte) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to io.EOF and yields an empty scenario.
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", types.ErrInvalidScenario, err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks names and every index the scenario refers to.
// Breed indices may refer to crabs produced by earlier breedings.
// Returns an error wrapping types.ErrInvalidScenario.
func (sc *Scenario) Validate() error {
	var errs []error
	for bi, beach := range sc.Beaches {
		size := len(beach.Crabs)
		for ci, c := range beach.Crabs {
			if c.Name == "" {
				errs = append(errs, fmt.Errorf("beach %d crab %d: %w", bi, ci, types.ErrInvalidName))
			}
		}
		for ri, br := range beach.Breed {
			if !inRange(br.First, size) || !inRange(br.Second, size) {
				errs = append(errs, fmt.Errorf("beach %d breed %d: parents (%d, %d) with %d crabs: %w",
					bi, ri, br.First, br.Second, size, types.ErrIndexOutOfRange))
			}
			if br.Name == "" {
				errs = append(errs, fmt.Errorf("beach %d breed %d: %w", bi, ri, types.ErrInvalidName))
			}
			size++
		}
		for ki, clan := range beach.Clans {
			if clan.ID == "" {
				errs = append(errs, fmt.Errorf("beach %d clan %d: %w", bi, ki, types.ErrInvalidName))
			}
		}
	}
	for hi, h := range sc.Hunts {
		if !inRange(h.Beach, len(sc.Beaches)) {
			errs = append(errs, fmt.Errorf("hunt %d: beach %d: %w", hi, h.Beach, types.ErrIndexOutOfRange))
			continue
		}
		if !inRange(h.Crab, beachSize(sc.Beaches[h.Beach])) {
			errs = append(errs, fmt.Errorf("hunt %d: crab %d: %w", hi, h.Crab, types.ErrIndexOutOfRange))
		}
		if !inRange(h.Reef, len(sc.Reefs)) {
			errs = append(errs, fmt.Errorf("hunt %d: reef %d: %w", hi, h.Reef, types.ErrIndexOutOfRange))
		}
	}
	for ci, c := range sc.Contests {
		if !inRange(c.Beach, len(sc.Beaches)) {
			errs = append(errs, fmt.Errorf("contest %d: beach %d: %w", ci, c.Beach, types.ErrIndexOutOfRange))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", types.ErrInvalidScenario, errors.Join(errs...))
	}
	return nil
}

// beachSize is the crab count of a beach once its breedings have run.
func beachSize(b BeachSpec) int {
	return len(b.Crabs) + len(b.Breed)
}

func inRange(i, n int) bool {
	return i >= 0 && i < n
}
