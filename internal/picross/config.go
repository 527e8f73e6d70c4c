package picross

import (
	"fmt"
	"strings"
)

// Default processing parameters.
const (
	DefaultBoardSize      = 16
	DefaultColorThreshold = 80.0
	DefaultAlphaThreshold = 128
)

// Policy selects how opaque cells of the rescaled image become filled cells.
type Policy int

const (
	// SilhouettePolicy fills every opaque cell.
	SilhouettePolicy Policy = iota

	// OutlinePolicy fills an opaque cell only when it borders transparency
	// (or the board edge) or differs sharply in colour from an opaque
	// neighbour, producing an outline instead of a solid shape.
	OutlinePolicy
)

// String returns the policy name used in configuration and tool arguments.
func (p Policy) String() string {
	switch p {
	case SilhouettePolicy:
		return "silhouette"
	case OutlinePolicy:
		return "outline"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name to a Policy. An empty name selects
// SilhouettePolicy.
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "silhouette":
		return SilhouettePolicy, nil
	case "outline":
		return OutlinePolicy, nil
	default:
		return SilhouettePolicy, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// Config holds the parameters of one image-to-board conversion.
//
// Zero-valued fields take their defaults when processing starts, so
// Config{} is the default configuration. Because of this, an alpha threshold
// of 0 cannot be requested.
type Config struct {
	// BoardSize is the side length of the square board. Default 16.
	BoardSize int `json:"board_size"`

	// ColorThreshold is the RGB distance above which neighbouring opaque
	// pixels count as a colour change. Only OutlinePolicy uses it. Default 80.
	ColorThreshold float64 `json:"color_threshold"`

	// AlphaThreshold is the opacity cutoff; alpha must be strictly greater
	// to count as opaque. Default 128.
	AlphaThreshold int `json:"alpha_threshold"`

	// ColorMode stores quantised colour indexes instead of a fill flag.
	ColorMode bool `json:"color_mode"`

	// Policy selects silhouette (default) or outline filling.
	Policy Policy `json:"policy"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (c Config) withDefaults() Config {
	if c.BoardSize == 0 {
		c.BoardSize = DefaultBoardSize
	}
	if c.ColorThreshold == 0 {
		c.ColorThreshold = DefaultColorThreshold
	}
	if c.AlphaThreshold == 0 {
		c.AlphaThreshold = DefaultAlphaThreshold
	}
	return c
}

// Validate reports whether the configuration can be processed once
// defaults are applied.
func (c Config) Validate() error {
	c = c.withDefaults()
	if c.BoardSize < 1 {
		return fmt.Errorf("%w: board size must be positive, got %d", ErrInvalidConfig, c.BoardSize)
	}
	if c.ColorThreshold < 0 {
		return fmt.Errorf("%w: color threshold must not be negative, got %g", ErrInvalidConfig, c.ColorThreshold)
	}
	if c.AlphaThreshold < 0 || c.AlphaThreshold > 255 {
		return fmt.Errorf("%w: alpha threshold must be between 0 and 255, got %d", ErrInvalidConfig, c.AlphaThreshold)
	}
	if c.Policy != SilhouettePolicy && c.Policy != OutlinePolicy {
		return fmt.Errorf("%w: unknown policy %v", ErrInvalidConfig, c.Policy)
	}
	return nil
}
