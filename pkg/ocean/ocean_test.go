package ocean

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mesh-intelligence/ocean/pkg/types"
)

func TestOceanAddBeach(t *testing.T) {
	o := New()
	b1, b2 := NewBeach(), NewBeach()
	view := o.Beaches()

	o.AddBeach(b1)
	o.AddBeach(b2)

	got := slices.Collect(view)
	require.Len(t, got, 2)
	assert.Same(t, b1, got[0])
	assert.Same(t, b2, got[1])
	assert.Equal(t, 2, o.BeachCount())
	assert.Same(t, b2, o.Beach(1))
}

func TestOceanGenerateReef(t *testing.T) {
	o := New()
	reef := o.GenerateReef(2, 1, 1, 3)

	require.Equal(t, 1, o.ReefCount())
	assert.Equal(t, 7, reef.Population())

	var kinds []string
	for p := range reef.Prey() {
		kinds = append(kinds, p.Kind())
		switch v := p.(type) {
		case *types.Minnow:
			assert.Equal(t, uint32(25), v.Speed)
		case *types.Shrimp:
			assert.Equal(t, uint32(1), v.Energy)
		}
	}
	assert.Equal(t, []string{
		types.PreyMinnow, types.PreyMinnow,
		types.PreyShrimp,
		types.PreyClam,
		types.PreyAlgae, types.PreyAlgae, types.PreyAlgae,
	}, kinds)
}

func TestOceanGenerateEmptyReef(t *testing.T) {
	o := New()
	reef := o.GenerateReef(0, 0, 0, 0)
	assert.Equal(t, 0, reef.Population())
	assert.Equal(t, 1, o.ReefCount())
}

func TestOceanReefAliasing(t *testing.T) {
	o := New()
	o.GenerateReef(0, 0, 1, 0)
	handle := o.GenerateReef(1, 0, 0, 0)

	reefs := slices.Collect(o.Reefs())
	require.Len(t, reefs, 2)
	assert.Same(t, handle, reefs[1])

	// Caller mutation is visible through the ocean.
	handle.AddPrey(types.NewAlgae())
	assert.Equal(t, 2, o.Reef(1).Population())

	// Ocean-side mutation is visible through the caller's handle.
	_, ok := o.Reef(1).TakePrey()
	require.True(t, ok)
	assert.Equal(t, 1, handle.Population())

	// The other reef is unaffected.
	assert.Equal(t, 1, o.Reef(0).Population())
}

func TestOceanIndexFaults(t *testing.T) {
	o := New()
	err := recoverError(t, func() { o.Beach(0) })
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)

	err = recoverError(t, func() { o.Reef(-1) })
	assert.ErrorIs(t, err, types.ErrIndexOutOfRange)
}

func TestOceanLogsEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	o := New(WithLogger(zap.New(core)))

	o.AddBeach(NewBeach())
	reef := o.GenerateReef(1, 2, 3, 4)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "beach added", entries[0].Message)
	assert.Equal(t, "reef generated", entries[1].Message)
	assert.Equal(t, reef.ReefID, entries[1].ContextMap()["reef_id"])
	assert.Equal(t, uint32(3), entries[1].ContextMap()["clams"])
}

func TestWithNilLoggerKeepsNop(t *testing.T) {
	o := New(WithLogger(nil))
	require.NotNil(t, o.logger)
	o.GenerateReef(1, 0, 0, 0)
}
