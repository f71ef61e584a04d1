package fixture

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects the value distribution of a fixture.
type Kind int

const (
	// Float samples reals uniformly from [0, 1).
	Float Kind = iota
	// Int samples integers uniformly from [0, IntBound).
	Int
)

// IntBound is the exclusive upper bound of Int fixture values.
const IntBound = 200

// ErrKind is returned for an unrecognized fixture kind.
var ErrKind = errors.New("unknown fixture kind")

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Int:
		return "int"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind parses "float" or "int" (case-insensitive).
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "float":
		return Float, nil
	case "int":
		return Int, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrKind, s)
}

// Contains reports whether v lies in the kind's value range.
func (k Kind) Contains(v float64) bool {
	switch k {
	case Float:
		return v >= 0 && v < 1
	case Int:
		return v >= 0 && v < IntBound && v == float64(int64(v))
	}
	return false
}
