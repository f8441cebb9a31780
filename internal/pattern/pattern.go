// Package pattern defines the click-point types of the graphical password
// scheme and the two pure operations on them: canonical encoding for
// hashing, and tolerance-based matching for login.
package pattern

import (
	"encoding/binary"
	"fmt"

	"github.com/akoreshkova/patternlock/internal/common"
)

const (
	// MinPoints and MaxPoints bound the number of click points in a pattern.
	MinPoints = 3
	MaxPoints = 5

	// DefaultTolerance is the pixel radius within which an attempted click
	// still counts as hitting the registered point.
	DefaultTolerance = 20
)

// Point is a single click position in pixels, relative to a fixed image
// rendering size. Immutable once captured.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pattern is an ordered sequence of click points. Order is part of the
// secret: the same points clicked in a different order form a different
// pattern.
type Pattern []Point

// Validate checks the length invariant. The engine rejects patterns outside
// MinPoints..MaxPoints before any hashing or storage.
func (p Pattern) Validate() error {
	if len(p) < MinPoints || len(p) > MaxPoints {
		return fmt.Errorf("%w: got %d points", common.ErrInvalidPatternLength, len(p))
	}
	return nil
}

// Clone returns an independent copy of the pattern.
func (p Pattern) Clone() Pattern {
	if p == nil {
		return nil
	}
	c := make(Pattern, len(p))
	copy(c, p)
	return c
}

// Encode produces the canonical byte representation used as hash input:
// fixed-width big-endian int32 x,y pairs in sequence order. Exact raw
// values are preserved; any quantization happens only inside tolerance
// matching, never before hashing.
func (p Pattern) Encode() ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(p)*8)
	for _, pt := range p {
		buf = binary.BigEndian.AppendUint32(buf, uint32(int32(pt.X)))
		buf = binary.BigEndian.AppendUint32(buf, uint32(int32(pt.Y)))
	}
	return buf, nil
}
