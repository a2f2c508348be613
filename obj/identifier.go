package obj

import "bytes"

// Identifier is an ASN.1 object identifier value: its DER content octets
// plus optional NID and name metadata. Instances come from the built-in
// table (via NIDToIdentifier, shared and immutable) or from New (owned by
// the caller). Identifiers never change after construction.
type Identifier struct {
	nid       NID
	der       []byte
	shortName string
	longName  string
	static    bool
}

// New builds a dynamic Identifier from caller-supplied DER content octets
// and optional names. The bytes are copied, not retained, and are not
// validated: a malformed encoding is accepted here and surfaces later,
// when the identifier is formatted or its arcs are decoded.
func New(nid NID, der []byte, shortName, longName string) *Identifier {
	return &Identifier{
		nid:       nid,
		der:       bytes.Clone(der),
		shortName: shortName,
		longName:  longName,
	}
}

// NID returns the identifier's NID, or NIDUndef if it has none.
func (id *Identifier) NID() NID { return id.nid }

// DER returns a copy of the DER content octets. Nil for the undefined
// identifier.
func (id *Identifier) DER() []byte { return bytes.Clone(id.der) }

// ShortName returns the registered short name, or "" if there is none.
func (id *Identifier) ShortName() string { return id.shortName }

// LongName returns the registered long name, or "" if there is none.
func (id *Identifier) LongName() string { return id.longName }

// Static reports whether the identifier is a shared entry of the built-in
// table rather than a dynamically constructed one.
func (id *Identifier) Static() bool { return id.static }

// Arcs decodes the DER bytes into the display arc sequence. See
// EncodeArcs for the inverse.
func (id *Identifier) Arcs() ([]uint64, error) { return decodeArcs(id.der) }

// Equal reports whether both identifiers hold the same DER bytes. NID and
// names do not participate; a dynamic identifier equals the static entry
// with the same encoding.
func (id *Identifier) Equal(other *Identifier) bool {
	return bytes.Equal(id.der, other.der)
}

// String returns the registered name if one applies, else the
// dotted-decimal form, else "" for the empty or malformed identifier.
// Use Format to distinguish malformed bytes from the empty identifier.
func (id *Identifier) String() string {
	s, err := Format(id, false)
	if err != nil {
		return ""
	}
	return s
}
