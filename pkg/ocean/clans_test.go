package ocean

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClanSystemAddClanMember(t *testing.T) {
	cs := NewClanSystem()
	cs.AddClanMember("A", "ferris")
	cs.AddClanMember("A", "sally")
	cs.AddClanMember("B", "ferris") // no duplicate guard at this layer

	assert.Equal(t, []string{"ferris", "sally"}, cs.ClanMemberNames("A"))
	assert.Equal(t, []string{"ferris"}, cs.ClanMemberNames("B"))
	assert.Equal(t, 2, cs.ClanCount())
	assert.Equal(t, 2, cs.ClanMemberCount("A"))
	assert.Equal(t, []string{"A", "B"}, cs.ClanIDs())
}

func TestClanSystemUnknownClan(t *testing.T) {
	cs := NewClanSystem()

	names := cs.ClanMemberNames("ghost")
	require.NotNil(t, names)
	assert.Empty(t, names)
	assert.Equal(t, 0, cs.ClanMemberCount("ghost"))
	assert.Equal(t, 0, cs.ClanCount())
}

func TestClanSystemMemberNamesIsCopy(t *testing.T) {
	cs := NewClanSystem()
	cs.AddClanMember("A", "ferris")

	names := cs.ClanMemberNames("A")
	names[0] = "mutated"

	assert.Equal(t, []string{"ferris"}, cs.ClanMemberNames("A"))
}

func TestClanSystemLargestClanID(t *testing.T) {
	tests := []struct {
		name    string
		members map[string]int
		order   []string
		want    string
		wantOK  bool
	}{
		{name: "no clans", wantOK: false},
		{
			name:    "strict winner",
			members: map[string]int{"A": 3, "B": 1},
			order:   []string{"A", "B"},
			want:    "A",
			wantOK:  true,
		},
		{
			name:    "winner created last",
			members: map[string]int{"A": 1, "B": 4},
			order:   []string{"A", "B"},
			want:    "B",
			wantOK:  true,
		},
		{
			name:    "tie at maximum",
			members: map[string]int{"A": 2, "B": 2},
			order:   []string{"A", "B"},
			wantOK:  false,
		},
		{
			name:    "later clan matching earlier leader erases it",
			members: map[string]int{"A": 3, "B": 1, "C": 3},
			order:   []string{"A", "B", "C"},
			wantOK:  false,
		},
		{
			name:    "tie below a larger clan",
			members: map[string]int{"A": 2, "B": 2, "C": 5},
			order:   []string{"A", "B", "C"},
			want:    "C",
			wantOK:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := NewClanSystem()
			for _, id := range tt.order {
				for i := range tt.members[id] {
					cs.AddClanMember(id, id+string(rune('a'+i)))
				}
			}
			got, ok := cs.LargestClanID()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClanSystemClanOf(t *testing.T) {
	cs := NewClanSystem()
	cs.AddClanMember("A", "ferris")
	cs.AddClanMember("B", "sally")

	id, ok := cs.ClanOf("sally")
	require.True(t, ok)
	assert.Equal(t, "B", id)

	_, ok = cs.ClanOf("nobody")
	assert.False(t, ok)
}
