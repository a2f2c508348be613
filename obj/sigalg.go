package obj

// sigAlg pairs a signature algorithm with its digest and public key
// algorithm. A digest of NIDUndef means the scheme has no separate
// digest identifier (EdDSA, RSASSA-PSS).
type sigAlg struct {
	sign   NID
	digest NID
	pubkey NID
}

// sigAlgs is the static cross-reference table. Small enough that both
// lookup directions scan it linearly.
var sigAlgs = []sigAlg{
	{NIDMD5WithRSAEncryption, NIDMD5, NIDRSAEncryption},
	{NIDSHA1WithRSAEncryption, NIDSHA1, NIDRSAEncryption},
	{NIDSHA224WithRSAEncryption, NIDSHA224, NIDRSAEncryption},
	{NIDSHA256WithRSAEncryption, NIDSHA256, NIDRSAEncryption},
	{NIDSHA384WithRSAEncryption, NIDSHA384, NIDRSAEncryption},
	{NIDSHA512WithRSAEncryption, NIDSHA512, NIDRSAEncryption},
	{NIDRSASSAPSS, NIDUndef, NIDRSASSAPSS},
	{NIDDSAWithSHA1, NIDSHA1, NIDDSA},
	{NIDDSAWithSHA256, NIDSHA256, NIDDSA},
	{NIDECDSAWithSHA1, NIDSHA1, NIDECPublicKey},
	{NIDECDSAWithSHA224, NIDSHA224, NIDECPublicKey},
	{NIDECDSAWithSHA256, NIDSHA256, NIDECPublicKey},
	{NIDECDSAWithSHA384, NIDSHA384, NIDECPublicKey},
	{NIDECDSAWithSHA512, NIDSHA512, NIDECPublicKey},
	{NIDEd25519, NIDUndef, NIDEd25519},
	{NIDEd448, NIDUndef, NIDEd448},
}

// FindSignatureAlgorithms returns the digest and public key algorithm
// NIDs that make up the given signature algorithm. ok is false when sign
// is not a registered signature algorithm; that is a normal outcome, not
// an error.
func FindSignatureAlgorithms(sign NID) (digest, pubkey NID, ok bool) {
	for _, sa := range sigAlgs {
		if sa.sign == sign {
			return sa.digest, sa.pubkey, true
		}
	}
	return NIDUndef, NIDUndef, false
}

// FindSignatureByAlgorithms returns the signature algorithm NID composed
// of the given digest and public key algorithm, or ok false when no such
// combination is registered.
func FindSignatureByAlgorithms(digest, pubkey NID) (sign NID, ok bool) {
	for _, sa := range sigAlgs {
		if sa.digest == digest && sa.pubkey == pubkey {
			return sa.sign, true
		}
	}
	return NIDUndef, false
}
