package ocean

import (
	"fmt"
	"iter"

	"github.com/mesh-intelligence/ocean/pkg/types"
)

// Beach owns an ordered population of crabs and one clan system.
// Crabs are appended in insertion order and never aliased outside the
// beach except through the non-owning views it hands out.
type Beach struct {
	BeachID string
	crabs   []*types.Crab
	clans   *ClanSystem
}

// NewBeach creates an empty beach with a fresh UUID v7 identifier.
func NewBeach() *Beach {
	return &Beach{
		BeachID: types.NewID(),
		clans:   NewClanSystem(),
	}
}

// Size returns the number of crabs on the beach.
func (b *Beach) Size() int {
	return len(b.crabs)
}

// AddCrab hands crab to the beach and appends it to the population.
// The caller must not keep mutating crab afterwards.
func (b *Beach) AddCrab(crab *types.Crab) {
	b.crabs = append(b.crabs, crab)
}

// Crab returns the crab at index i. It panics if i is out of range.
func (b *Beach) Crab(i int) *types.Crab {
	b.mustIndex(i)
	return b.crabs[i]
}

// Crabs returns a live view over the crabs in insertion order.
func (b *Beach) Crabs() iter.Seq[*types.Crab] {
	return func(yield func(*types.Crab) bool) {
		for _, c := range b.crabs {
			if !yield(c) {
				return
			}
		}
	}
}

// FastestCrab returns the crab with the highest speed, the earliest one on
// ties. The running best starts at speed 0 and the first crab, so a beach
// where every crab has speed 0 yields its first crab. Returns nil only for
// an empty beach.
func (b *Beach) FastestCrab() *types.Crab {
	if len(b.crabs) == 0 {
		return nil
	}
	best := b.crabs[0]
	var highest uint32
	for _, c := range b.crabs {
		if c.Speed > highest {
			best = c
			highest = c.Speed
		}
	}
	return best
}

// FindCrabsByName returns every crab named name, in insertion order.
// Returns an empty slice (not nil) if none match.
func (b *Beach) FindCrabsByName(name string) []*types.Crab {
	found := make([]*types.Crab, 0)
	for _, c := range b.crabs {
		if c.Name == name {
			found = append(found, c)
		}
	}
	return found
}

// BreedCrabs breeds the crabs at indices i and j and appends the offspring,
// named name, to the beach. i and j may be equal. It panics, leaving the
// beach untouched, if either index is out of range.
func (b *Beach) BreedCrabs(i, j int, name string) {
	b.mustIndex(i)
	b.mustIndex(j)
	b.AddCrab(b.crabs[i].Breed(b.crabs[j], name))
}

// Hunt sends the crab at index i to feed on reef and reports whether it
// ate. It panics if i is out of range.
func (b *Beach) Hunt(i int, reef *types.Reef) bool {
	return b.Crab(i).Hunt(reef)
}

// ClanSystem returns the beach's clan system.
func (b *Beach) ClanSystem() *ClanSystem {
	return b.clans
}

// AddMemberToClan adds crabName to the clan clanID unless the name already
// belongs to any clan on this beach, in which case it does nothing.
func (b *Beach) AddMemberToClan(clanID, crabName string) {
	if _, taken := b.clans.ClanOf(crabName); taken {
		return
	}
	b.clans.AddClanMember(clanID, crabName)
}

// WinnerClan compares two clans by the integer mean speed of their members
// and returns the ID of the faster one. Each member name resolves to the
// first crab on the beach with that name; a name with no crab adds 0 to the
// sum but still counts toward the member count. Returns ok=false on an exact
// tie. Returns an error wrapping types.ErrEmptyClan, naming id1 or id2, if a
// clan has no members or none of its names resolve; id1 is checked first.
func (b *Beach) WinnerClan(id1, id2 string) (string, bool, error) {
	avg1, err := b.meanClanSpeed(id1)
	if err != nil {
		return "", false, fmt.Errorf("id1 %q: %w", id1, err)
	}
	avg2, err := b.meanClanSpeed(id2)
	if err != nil {
		return "", false, fmt.Errorf("id2 %q: %w", id2, err)
	}

	switch {
	case avg1 > avg2:
		return id1, true, nil
	case avg2 > avg1:
		return id2, true, nil
	default:
		return "", false, nil
	}
}

// meanClanSpeed returns the clan's speed sum divided by its member count,
// rounded down.
func (b *Beach) meanClanSpeed(clanID string) (uint64, error) {
	names := b.clans.ClanMemberNames(clanID)
	var sum uint64
	resolved := false
	for _, name := range names {
		matches := b.FindCrabsByName(name)
		if len(matches) == 0 {
			continue
		}
		sum += uint64(matches[0].Speed)
		resolved = true
	}
	if !resolved {
		return 0, types.ErrEmptyClan
	}
	return sum / uint64(len(names)), nil
}

func (b *Beach) mustIndex(i int) {
	if i < 0 || i >= len(b.crabs) {
		panic(fmt.Errorf("beach crab %w: index %d, size %d", types.ErrIndexOutOfRange, i, len(b.crabs)))
	}
}
