package obj

import (
	"errors"
	"fmt"
	"math"
)

// Decode and encode errors. Lookup functions never return these; only
// operations that interpret DER bytes or text do.
var (
	// ErrTruncated means the input ended in the middle of a base-128 arc.
	ErrTruncated = errors.New("truncated arc")
	// ErrNonMinimal means an arc started with a redundant 0x80 continuation
	// byte, which DER forbids.
	ErrNonMinimal = errors.New("non-minimal arc encoding")
	// ErrOverflow means an arc value does not fit in 64 bits.
	ErrOverflow = errors.New("arc value overflows uint64")
	// ErrSyntax means a dotted-decimal string or arc sequence is malformed.
	ErrSyntax = errors.New("invalid object identifier")
)

// decodeArcs decodes DER content octets into the display arc sequence.
// The first subidentifier combines the first two components as 40*X+Y;
// decoding splits it back, so a non-empty result always has at least two
// arcs. Empty input decodes to an empty sequence.
func decodeArcs(der []byte) ([]uint64, error) {
	if len(der) == 0 {
		return nil, nil
	}
	arcs := make([]uint64, 0, len(der)+1)
	for i := 0; i < len(der); {
		v, n, err := decodeArc(der[i:])
		if err != nil {
			return nil, fmt.Errorf("arc at offset %d: %w", i, err)
		}
		if i == 0 {
			x, y := splitFirstArc(v)
			arcs = append(arcs, x, y)
		} else {
			arcs = append(arcs, v)
		}
		i += n
	}
	return arcs, nil
}

// decodeArc reads one big-endian base-128 arc from the front of der,
// returning its value and the number of bytes consumed.
func decodeArc(der []byte) (uint64, int, error) {
	if der[0] == 0x80 {
		// A leading zero byte; the value has a shorter legal encoding.
		return 0, 0, ErrNonMinimal
	}
	var v uint64
	for i, b := range der {
		if v > math.MaxUint64>>7 {
			return 0, 0, ErrOverflow
		}
		v = v<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrTruncated
}

// splitFirstArc reverses the 40*X+Y combination of the first two OID
// components. X is pinned to 2 once the combined value reaches 80, so Y
// can exceed 39 only under arc 2.
func splitFirstArc(v uint64) (x, y uint64) {
	switch {
	case v < 40:
		return 0, v
	case v < 80:
		return 1, v - 40
	default:
		return 2, v - 80
	}
}

// EncodeArcs encodes a display arc sequence into DER content octets. The
// first two arcs are combined as 40*X+Y, so a non-empty sequence needs at
// least two arcs, the first must be 0, 1, or 2, and the second must be
// below 40 unless the first is 2. An empty sequence encodes to nil, the
// identifier with no arcs.
func EncodeArcs(arcs []uint64) ([]byte, error) {
	if len(arcs) == 0 {
		return nil, nil
	}
	if len(arcs) == 1 {
		return nil, fmt.Errorf("%w: need at least two arcs", ErrSyntax)
	}
	x, y := arcs[0], arcs[1]
	if x > 2 {
		return nil, fmt.Errorf("%w: first arc must be 0, 1 or 2", ErrSyntax)
	}
	if x < 2 && y >= 40 {
		return nil, fmt.Errorf("%w: second arc must be below 40 when the first is %d", ErrSyntax, x)
	}
	if y > math.MaxUint64-40*x {
		return nil, fmt.Errorf("combined first arc: %w", ErrOverflow)
	}
	der := appendArc(nil, 40*x+y)
	for _, a := range arcs[2:] {
		der = appendArc(der, a)
	}
	return der, nil
}

// appendArc appends the minimal big-endian base-128 encoding of v: seven
// value bits per byte, continuation bit set on all but the last.
func appendArc(dst []byte, v uint64) []byte {
	n := 1
	for x := v >> 7; x > 0; x >>= 7 {
		n++
	}
	for i := n - 1; i > 0; i-- {
		dst = append(dst, 0x80|byte(v>>(uint(i)*7)))
	}
	return append(dst, byte(v&0x7f))
}
