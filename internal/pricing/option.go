package pricing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidVariant is returned when an option type is neither a call nor a put.
var ErrInvalidVariant = errors.New("option type must be 'call' or 'put'")

// OptionType selects the payoff priced by BlackScholesPrice.
// The zero value is not a valid option type.
type OptionType int

const (
	Call OptionType = iota + 1 // Call is the right to buy at the strike.
	Put                        // Put is the right to sell at the strike.
)

// OptionTypes lists the valid option types in display order.
var OptionTypes = []OptionType{Call, Put}

// ParseOptionType converts user text ("call", "c", "put", "p"; any case)
// into an OptionType.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: got %q", ErrInvalidVariant, s)
}

// Valid reports whether t is Call or Put.
func (t OptionType) Valid() bool {
	return t == Call || t == Put
}

func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionType(%d)", int(t))
}

// Title returns the capitalised name used in human-readable output.
func (t OptionType) Title() string {
	switch t {
	case Call:
		return "Call"
	case Put:
		return "Put"
	}
	return t.String()
}

func (t OptionType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidVariant, t)
	}
	return []byte(t.String()), nil
}

func (t *OptionType) UnmarshalText(text []byte) error {
	parsed, err := ParseOptionType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
