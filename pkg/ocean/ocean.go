package ocean

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/ocean/pkg/types"
)

// Reef population parameters fixed by GenerateReef.
const (
	MinnowSpeed  = 25
	ShrimpEnergy = 1
)

// Ocean owns a set of beaches and shares the reefs it generates. A reef
// returned by GenerateReef is the same object the ocean keeps, so changes
// made through either reference are visible through both. Reefs live as
// long as any holder references them.
type Ocean struct {
	beaches []*Beach
	reefs   []*types.Reef
	logger  *zap.Logger
}

// Option configures an Ocean.
type Option func(*Ocean)

// WithLogger sets the logger used for ocean events. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Ocean) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New creates an empty ocean.
func New(opts ...Option) *Ocean {
	o := &Ocean{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// AddBeach hands beach to the ocean and appends it.
func (o *Ocean) AddBeach(beach *Beach) {
	o.beaches = append(o.beaches, beach)
	o.logger.Debug("beach added",
		zap.String("beach_id", beach.BeachID),
		zap.Int("crabs", beach.Size()))
}

// Beaches returns a live view over the beaches in insertion order.
func (o *Ocean) Beaches() iter.Seq[*Beach] {
	return func(yield func(*Beach) bool) {
		for _, b := range o.beaches {
			if !yield(b) {
				return
			}
		}
	}
}

// Reefs returns a live view over the shared reefs in insertion order.
func (o *Ocean) Reefs() iter.Seq[*types.Reef] {
	return func(yield func(*types.Reef) bool) {
		for _, r := range o.reefs {
			if !yield(r) {
				return
			}
		}
	}
}

// BeachCount returns the number of beaches.
func (o *Ocean) BeachCount() int { return len(o.beaches) }

// ReefCount returns the number of reefs.
func (o *Ocean) ReefCount() int { return len(o.reefs) }

// Beach returns the beach at index i. It panics if i is out of range.
func (o *Ocean) Beach(i int) *Beach {
	if i < 0 || i >= len(o.beaches) {
		panic(fmt.Errorf("ocean beach %w: index %d, size %d", types.ErrIndexOutOfRange, i, len(o.beaches)))
	}
	return o.beaches[i]
}

// Reef returns the reef at index i. It panics if i is out of range.
func (o *Ocean) Reef(i int) *types.Reef {
	if i < 0 || i >= len(o.reefs) {
		panic(fmt.Errorf("ocean reef %w: index %d, size %d", types.ErrIndexOutOfRange, i, len(o.reefs)))
	}
	return o.reefs[i]
}

// GenerateReef builds a reef holding nMinnows minnows (speed 25), nShrimp
// shrimp (energy 1), nClams clams and nAlgae algae, in that order. The ocean
// keeps the reef and returns it to the caller as a shared handle.
func (o *Ocean) GenerateReef(nMinnows, nShrimp, nClams, nAlgae uint32) *types.Reef {
	reef := types.NewReef()
	for range nMinnows {
		reef.AddPrey(types.NewMinnow(MinnowSpeed))
	}
	for range nShrimp {
		reef.AddPrey(types.NewShrimp(ShrimpEnergy))
	}
	for range nClams {
		reef.AddPrey(types.NewClam())
	}
	for range nAlgae {
		reef.AddPrey(types.NewAlgae())
	}
	o.reefs = append(o.reefs, reef)

	o.logger.Debug("reef generated",
		zap.String("reef_id", reef.ReefID),
		zap.Uint32("minnows", nMinnows),
		zap.Uint32("shrimp", nShrimp),
		zap.Uint32("clams", nClams),
		zap.Uint32("algae", nAlgae))
	return reef
}
