// Package goobj converts ASN.1 object identifiers between their DER byte
// encoding, dotted-decimal text, registered short/long names and dense
// integer handles (NIDs), and cross-references signature algorithms with
// their digest and public key algorithms.
//
// Everything here is a thin re-export of the obj subpackage, which holds
// the implementation.
package goobj

import "github.com/golangpki/goobj/obj"

// Type aliases for the public API - all types come from the obj subpackage.

// NID is a small integer handle for a well-known object identifier.
type NID = obj.NID

// Identifier is an object identifier value: DER bytes plus optional NID
// and name metadata.
type Identifier = obj.Identifier

// NIDUndef is the reserved "undefined" handle returned by every lookup
// that finds nothing.
const NIDUndef = obj.NIDUndef

// New builds a dynamic Identifier from DER content octets and optional
// names. The bytes are not validated.
func New(nid NID, der []byte, shortName, longName string) *Identifier {
	return obj.New(nid, der, shortName, longName)
}

// ByDER returns the NID matching the given DER content octets exactly, or
// NIDUndef.
func ByDER(der []byte) NID { return obj.ByDER(der) }

// ByShortName returns the NID registered under the given short name, or
// NIDUndef.
func ByShortName(name string) NID { return obj.ByShortName(name) }

// ByLongName returns the NID registered under the given long name, or
// NIDUndef.
func ByLongName(name string) NID { return obj.ByLongName(name) }

// ByText resolves a short name, long name or dotted-decimal string to a
// NID, or NIDUndef.
func ByText(s string) NID { return obj.ByText(s) }

// NIDToShortName returns the short name for nid, or "".
func NIDToShortName(nid NID) string { return obj.NIDToShortName(nid) }

// NIDToLongName returns the long name for nid, or "".
func NIDToLongName(nid NID) string { return obj.NIDToLongName(nid) }

// NIDToIdentifier returns the shared static table entry for nid, or the
// undefined entry when nid is out of range.
func NIDToIdentifier(nid NID) *Identifier { return obj.NIDToIdentifier(nid) }

// Format renders an identifier as a registered name or dotted-decimal
// text; numeric forces the dotted form.
func Format(id *Identifier, numeric bool) (string, error) {
	return obj.Format(id, numeric)
}

// FormatInto is the bounded-buffer form of Format: len(dst) is the
// capacity, the return value is the full required length (-1 on
// malformed bytes), and output is truncated and NUL-terminated within
// the capacity.
func FormatInto(dst []byte, id *Identifier, numeric bool) int {
	return obj.FormatInto(dst, id, numeric)
}

// ParseText converts dotted-decimal notation into DER content octets.
func ParseText(s string) ([]byte, error) { return obj.ParseText(s) }

// EncodeArcs encodes a display arc sequence into DER content octets.
func EncodeArcs(arcs []uint64) ([]byte, error) { return obj.EncodeArcs(arcs) }

// FindSignatureAlgorithms returns the digest and public key algorithm
// NIDs behind a signature algorithm.
func FindSignatureAlgorithms(sign NID) (digest, pubkey NID, ok bool) {
	return obj.FindSignatureAlgorithms(sign)
}

// FindSignatureByAlgorithms returns the signature algorithm NID composed
// of the given digest and public key algorithm.
func FindSignatureByAlgorithms(digest, pubkey NID) (sign NID, ok bool) {
	return obj.FindSignatureByAlgorithms(digest, pubkey)
}
