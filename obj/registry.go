// Package obj is a registry and codec for ASN.1 object identifiers. It
// converts between DER content octets, dotted-decimal text and registered
// names, and hands out dense integer handles (NIDs) for the well-known
// identifiers in its built-in table. The table is immutable; every lookup
// is a pure read and safe for concurrent use.
package obj

import (
	"bytes"
	"iter"
	"slices"
	"strings"
	"sync"
)

// index holds the built-in table materialized as Identifiers plus the
// sorted lookup indices over it. Built exactly once; read-only after.
type index struct {
	// identifiers[n] is the static entry for NID n.
	identifiers []Identifier

	// NIDs of entries that carry the key, sorted by that key.
	byDER       []NID
	byShortName []NID
	byLongName  []NID
}

// registry returns the lookup index, building it on first use. The
// sync.Once gate makes concurrent first use safe; afterwards the index is
// never written again.
var registry = sync.OnceValue(buildIndex)

func buildIndex() *index {
	ix := &index{identifiers: make([]Identifier, len(objects))}
	for i, o := range objects {
		ix.identifiers[i] = Identifier{
			nid:       o.nid,
			der:       o.der,
			shortName: o.shortName,
			longName:  o.longName,
			static:    true,
		}
		if len(o.der) > 0 {
			ix.byDER = append(ix.byDER, o.nid)
		}
		if o.shortName != "" {
			ix.byShortName = append(ix.byShortName, o.nid)
		}
		if o.longName != "" {
			ix.byLongName = append(ix.byLongName, o.nid)
		}
	}
	slices.SortFunc(ix.byDER, func(a, b NID) int {
		return bytes.Compare(ix.identifiers[a].der, ix.identifiers[b].der)
	})
	slices.SortFunc(ix.byShortName, func(a, b NID) int {
		return strings.Compare(ix.identifiers[a].shortName, ix.identifiers[b].shortName)
	})
	slices.SortFunc(ix.byLongName, func(a, b NID) int {
		return strings.Compare(ix.identifiers[a].longName, ix.identifiers[b].longName)
	})
	return ix
}

// ByDER returns the NID whose table entry has exactly the given DER
// content octets, or NIDUndef. The bytes are matched verbatim, without
// decoding: a non-minimal or otherwise malformed encoding simply matches
// nothing.
func ByDER(der []byte) NID {
	ix := registry()
	i, ok := slices.BinarySearchFunc(ix.byDER, der, func(nid NID, key []byte) int {
		return bytes.Compare(ix.identifiers[nid].der, key)
	})
	if !ok {
		return NIDUndef
	}
	return ix.byDER[i]
}

// ByShortName returns the NID registered under the given short name, or
// NIDUndef. Matching is exact and case-sensitive.
func ByShortName(name string) NID {
	ix := registry()
	i, ok := slices.BinarySearchFunc(ix.byShortName, name, func(nid NID, key string) int {
		return strings.Compare(ix.identifiers[nid].shortName, key)
	})
	if !ok {
		return NIDUndef
	}
	return ix.byShortName[i]
}

// ByLongName returns the NID registered under the given long name, or
// NIDUndef. Matching is exact and case-sensitive.
func ByLongName(name string) NID {
	ix := registry()
	i, ok := slices.BinarySearchFunc(ix.byLongName, name, func(nid NID, key string) int {
		return strings.Compare(ix.identifiers[nid].longName, key)
	})
	if !ok {
		return NIDUndef
	}
	return ix.byLongName[i]
}

// ByText resolves free-form text to a NID: first as a short name, then as
// a long name, then as dotted-decimal notation matched against the table
// by DER bytes. Text that is none of these yields NIDUndef, never an
// error.
func ByText(s string) NID {
	if nid := ByShortName(s); nid != NIDUndef {
		return nid
	}
	if nid := ByLongName(s); nid != NIDUndef {
		return nid
	}
	der, err := ParseText(s)
	if err != nil {
		return NIDUndef
	}
	return ByDER(der)
}

// NIDToShortName returns the short name for nid, or "" if nid is out of
// range or its entry has no short name.
func NIDToShortName(nid NID) string {
	ix := registry()
	if nid < 0 || int(nid) >= len(ix.identifiers) {
		return ""
	}
	return ix.identifiers[nid].shortName
}

// NIDToLongName returns the long name for nid, or "" if nid is out of
// range or its entry has no long name.
func NIDToLongName(nid NID) string {
	ix := registry()
	if nid < 0 || int(nid) >= len(ix.identifiers) {
		return ""
	}
	return ix.identifiers[nid].longName
}

// NIDToIdentifier returns the static table entry for nid. An out-of-range
// nid returns the undefined entry (NID 0, no DER bytes). The result is
// always the shared static instance, never a copy.
func NIDToIdentifier(nid NID) *Identifier {
	ix := registry()
	if nid < 0 || int(nid) >= len(ix.identifiers) {
		nid = NIDUndef
	}
	return &ix.identifiers[nid]
}

// NumObjects returns the number of entries in the built-in table,
// including the undefined entry.
func NumObjects() int { return len(objects) }

// Objects iterates over the static table entries in NID order, skipping
// the undefined entry.
func Objects() iter.Seq[*Identifier] {
	ix := registry()
	return func(yield func(*Identifier) bool) {
		for i := 1; i < len(ix.identifiers); i++ {
			if !yield(&ix.identifiers[i]) {
				return
			}
		}
	}
}
