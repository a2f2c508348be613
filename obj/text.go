package obj

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Format renders an identifier as text. With numeric false it prefers a
// registered name: the identifier's own NID if set, else a by-DER table
// lookup, taking the long name over the short one. With numeric true, or
// when no name is registered, it decodes the DER bytes and joins the arcs
// with dots. The empty identifier formats as "" in both modes. Malformed
// bytes are an error, never partial output.
func Format(id *Identifier, numeric bool) (string, error) {
	if !numeric {
		if name := registeredName(id); name != "" {
			return name, nil
		}
	}
	arcs, err := id.Arcs()
	if err != nil {
		return "", err
	}
	if len(arcs) == 0 {
		return "", nil
	}
	var b strings.Builder
	for i, a := range arcs {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.FormatUint(a, 10))
	}
	return b.String(), nil
}

// registeredName resolves an identifier to its table name, or "".
func registeredName(id *Identifier) string {
	nid := id.nid
	if nid == NIDUndef {
		nid = ByDER(id.der)
	}
	if nid == NIDUndef {
		return ""
	}
	if ln := NIDToLongName(nid); ln != "" {
		return ln
	}
	return NIDToShortName(nid)
}

// FormatInto is the bounded-buffer form of Format, for callers that work
// with fixed capacity. len(dst) is the capacity. The return value is
// always the full required length, excluding the NUL terminator, no
// matter how small dst is; callers probe the needed size with an empty
// dst. When the capacity is non-zero the output is truncated to fit and
// NUL-terminated within it. On malformed bytes it returns -1 and writes
// nothing.
func FormatInto(dst []byte, id *Identifier, numeric bool) int {
	s, err := Format(id, numeric)
	if err != nil {
		return -1
	}
	if len(dst) == 0 {
		return len(s)
	}
	n := copy(dst, s)
	if n == len(dst) {
		n--
	}
	dst[n] = 0
	return len(s)
}

// ParseText parses dotted-decimal notation ("1.2.840.113549.1.1.11") into
// DER content octets. At least two components are required; each must be
// plain decimal digits with no leading zero and fit in 64 bits. The
// first-component bounds of EncodeArcs apply.
func ParseText(s string) ([]byte, error) {
	parts := strings.Split(s, ".")
	if len(parts) < 2 {
		return nil, fmt.Errorf("%w: need at least two components in %q", ErrSyntax, s)
	}
	arcs := make([]uint64, len(parts))
	for i, part := range parts {
		v, err := parseArcText(part)
		if err != nil {
			return nil, fmt.Errorf("component %d of %q: %w", i+1, s, err)
		}
		arcs[i] = v
	}
	return EncodeArcs(arcs)
}

// parseArcText parses one unsigned decimal component. strconv is not used
// so that "+1", "0x1" and leading zeros are rejected uniformly.
func parseArcText(s string) (uint64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty component", ErrSyntax)
	}
	if len(s) > 1 && s[0] == '0' {
		return 0, fmt.Errorf("%w: leading zero", ErrSyntax)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: invalid character %q", ErrSyntax, c)
		}
		d := uint64(c - '0')
		if v > math.MaxUint64/10 || 10*v > math.MaxUint64-d {
			return 0, ErrOverflow
		}
		v = 10*v + d
	}
	return v, nil
}
