package types

import (
	"fmt"
	"strings"
)

// Diet is the kind of food a crab eats and a prey provides.
type Diet int

// Diet values.
const (
	DietFish Diet = iota
	DietShellfish
	DietPlants
)

var dietNames = map[Diet]string{
	DietFish:      "fish",
	DietShellfish: "shellfish",
	DietPlants:    "plants",
}

// String returns the lowercase diet name.
func (d Diet) String() string {
	if name, ok := dietNames[d]; ok {
		return name
	}
	return fmt.Sprintf("diet(%d)", int(d))
}

// ParseDiet maps a diet name (case-insensitive) to its Diet value.
// Returns ErrUnknownDiet if the name is not recognized.
func ParseDiet(name string) (Diet, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for d, n := range dietNames {
		if n == want {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDiet, name)
}

// MarshalText implements encoding.TextMarshaler so diets serialize by name.
func (d Diet) MarshalText() ([]byte, error) {
	if _, ok := dietNames[d]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDiet, int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Diet) UnmarshalText(text []byte) error {
	parsed, err := ParseDiet(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
