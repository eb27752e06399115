package types

// Prey kinds as reported by Prey.Kind.
const (
	PreyMinnow = "minnow"
	PreyShrimp = "shrimp"
	PreyClam   = "clam"
	PreyAlgae  = "algae"
)

// Prey is anything living on a reef that a crab may eat.
type Prey interface {
	// Kind names the prey species.
	Kind() string

	// Diet is the diet a crab must have to eat this prey.
	Diet() Diet

	// TryEscape reports whether the prey gets away from the hunting crab.
	// Implementations may change their own state on each attempt.
	TryEscape(c *Crab) bool
}

// Minnow is a fish that outswims slower crabs.
type Minnow struct {
	Speed uint32
}

// NewMinnow creates a minnow with the given speed.
func NewMinnow(speed uint32) *Minnow {
	return &Minnow{Speed: speed}
}

func (m *Minnow) Kind() string {
	return PreyMinnow
}

func (m *Minnow) Diet() Diet {
	return DietFish
}

// TryEscape succeeds when the minnow is strictly faster than the crab.
func (m *Minnow) TryEscape(c *Crab) bool {
	return m.Speed > c.Speed
}

// Shrimp is shellfish that escapes as long as it has energy left.
type Shrimp struct {
	Energy uint32
}

// NewShrimp creates a shrimp with the given energy.
func NewShrimp(energy uint32) *Shrimp {
	return &Shrimp{Energy: energy}
}

func (s *Shrimp) Kind() string {
	return PreyShrimp
}

func (s *Shrimp) Diet() Diet {
	return DietShellfish
}

// TryEscape spends one unit of energy to escape. A shrimp with no energy
// left is caught.
func (s *Shrimp) TryEscape(*Crab) bool {
	if s.Energy == 0 {
		return false
	}
	s.Energy--
	return true
}

// Clam is shellfish that never escapes.
type Clam struct{}

// NewClam creates a clam.
func NewClam() *Clam { return &Clam{} }

func (*Clam) Kind() string {
	return PreyClam
}

func (*Clam) Diet() Diet {
	return DietShellfish
}

func (*Clam) TryEscape(*Crab) bool {
	return false
}

// Algae is plant matter; it cannot move.
type Algae struct{}

// NewAlgae creates an algae patch.
func NewAlgae() *Algae { return &Algae{} }

func (*Algae) Kind() string {
	return PreyAlgae
}

func (*Algae) Diet() Diet {
	return DietPlants
}

func (*Algae) TryEscape(*Crab) bool {
	return false
}
