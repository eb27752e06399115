package ocean

import "slices"

// ClanSystem maps clan IDs to ordered lists of crab names. It stores names
// only; whether a name matches zero, one or many crabs is up to the beach
// doing the lookup.
type ClanSystem struct {
	clans map[string][]string
	order []string // clan IDs in creation order
}

// NewClanSystem creates an empty clan system.
func NewClanSystem() *ClanSystem {
	return &ClanSystem{clans: make(map[string][]string)}
}

// AddClanMember appends crabName to the clan, creating the clan if needed.
// No duplicate check is done here; Beach.AddMemberToClan guards against a
// name joining two clans.
func (cs *ClanSystem) AddClanMember(clanID, crabName string) {
	if _, ok := cs.clans[clanID]; !ok {
		cs.order = append(cs.order, clanID)
	}
	cs.clans[clanID] = append(cs.clans[clanID], crabName)
}

// ClanMemberNames returns a copy of the clan's member names.
// Returns an empty slice (not nil) for an unknown clan.
func (cs *ClanSystem) ClanMemberNames(clanID string) []string {
	members := cs.clans[clanID]
	out := make([]string, len(members))
	copy(out, members)
	return out
}

// ClanCount returns the number of clans.
func (cs *ClanSystem) ClanCount() int {
	return len(cs.clans)
}

// ClanMemberCount returns the number of members in a clan, 0 if unknown.
func (cs *ClanSystem) ClanMemberCount(clanID string) int {
	return len(cs.clans[clanID])
}

// LargestClanID returns the clan with strictly the most members. Any tie at
// the maximum yields no winner, as does a system with no non-empty clans.
func (cs *ClanSystem) LargestClanID() (string, bool) {
	largest := 0
	winner := ""
	found := false
	for _, id := range cs.order {
		n := len(cs.clans[id])
		switch {
		case n > largest:
			largest = n
			winner = id
			found = true
		case n == largest:
			winner = ""
			found = false
		}
	}
	return winner, found
}

// ClanIDs returns the clan IDs in the order the clans were created.
func (cs *ClanSystem) ClanIDs() []string {
	return slices.Clone(cs.order)
}

// ClanOf returns the clan that lists crabName, if any.
func (cs *ClanSystem) ClanOf(crabName string) (string, bool) {
	for _, id := range cs.order {
		if slices.Contains(cs.clans[id], crabName) {
			return id, true
		}
	}
	return "", false
}
