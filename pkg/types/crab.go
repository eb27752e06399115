package types

// Crab is a named, speed-bearing member of a beach population.
// Names are not unique; several crabs on one beach may share a name.
type Crab struct {
	Name  string `json:"name"`
	Speed uint32 `json:"speed"`
	Color Color  `json:"color"`
	Diet  Diet   `json:"diet"`
}

// offspringSpeed is the speed every newly bred crab starts with.
const offspringSpeed = 1

// NewCrab creates a crab with the given attributes.
func NewCrab(name string, speed uint32, color Color, diet Diet) *Crab {
	return &Crab{
		Name:  name,
		Speed: speed,
		Color: color,
		Diet:  diet,
	}
}

// Breed produces a new crab from c and other. The offspring starts at speed
// 1, carries the crossed shell color, and inherits the diet of the faster
// parent (c wins ties). Neither parent is modified.
func (c *Crab) Breed(other *Crab, name string) *Crab {
	diet := c.Diet
	if other.Speed > c.Speed {
		diet = other.Diet
	}
	return NewCrab(name, offspringSpeed, c.Color.Cross(other.Color), diet)
}

// Hunt lets the crab feed on reef. Every prey present when the hunt starts
// is offered once, front first. A prey matching the crab's diet that fails
// to escape is eaten and removed; any other prey goes back to the end of
// the reef. Returns true if the crab ate.
func (c *Crab) Hunt(reef *Reef) bool {
	for range reef.Population() {
		prey, ok := reef.TakePrey()
		if !ok {
			return false
		}
		if prey.Diet() == c.Diet && !prey.TryEscape(c) {
			return true
		}
		reef.AddPrey(prey)
	}
	return false
}
