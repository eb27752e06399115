package types

import (
	"iter"

	"github.com/google/uuid"
)

// Reef is a shared habitat holding prey in insertion order. A Reef has no
// internal locking; callers sharing one across goroutines must synchronize.
type Reef struct {
	ReefID string
	prey   []Prey
}

// NewReef creates an empty reef with a fresh UUID v7 identifier.
func NewReef() *Reef {
	return &Reef{ReefID: NewID()}
}

// AddPrey appends p to the end of the reef.
func (r *Reef) AddPrey(p Prey) {
	r.prey = append(r.prey, p)
}

// TakePrey removes and returns the prey at the front of the reef.
// Returns false if the reef is empty.
func (r *Reef) TakePrey() (Prey, bool) {
	if len(r.prey) == 0 {
		return nil, false
	}
	p := r.prey[0]
	r.prey[0] = nil
	r.prey = r.prey[1:]
	return p, true
}

// Population returns the number of prey on the reef.
func (r *Reef) Population() int {
	return len(r.prey)
}

// Prey returns a live view over the reef's prey in order.
func (r *Reef) Prey() iter.Seq[Prey] {
	return func(yield func(Prey) bool) {
		for _, p := range r.prey {
			if !yield(p) {
				return
			}
		}
	}
}

// Census counts the prey on the reef by kind.
// Returns an empty map (not nil) for an empty reef.
func (r *Reef) Census() map[string]int {
	counts := make(map[string]int)
	for _, p := range r.prey {
		counts[p.Kind()]++
	}
	return counts
}

// NewID generates a UUID v7 for entity identifiers.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
