package obj

// NID is a small integer handle for a well-known object identifier in the
// built-in table. NIDs are dense and stable: the table entry for NID n sits
// at index n. NIDUndef (0) means "undefined" and is what every lookup
// returns when nothing matches.
type NID int

// NID values for the built-in table. The order here must match the order of
// the rows in data.go.
const (
	NIDUndef NID = iota

	// Digests.
	NIDMD5
	NIDSHA1
	NIDSHA224
	NIDSHA256
	NIDSHA384
	NIDSHA512
	NIDSHA512x224
	NIDSHA512x256
	NIDSHA3x224
	NIDSHA3x256
	NIDSHA3x384
	NIDSHA3x512
	NIDHMACWithSHA1
	NIDHMACWithSHA256

	// Public key algorithms.
	NIDRSAEncryption
	NIDRSASSAPSS
	NIDDSA
	NIDECPublicKey
	NIDX25519
	NIDX448
	NIDEd25519
	NIDEd448

	// Named curves.
	NIDSecp224r1
	NIDPrime256v1
	NIDSecp256k1
	NIDSecp384r1
	NIDSecp521r1

	// Signature algorithms.
	NIDMD5WithRSAEncryption
	NIDSHA1WithRSAEncryption
	NIDSHA224WithRSAEncryption
	NIDSHA256WithRSAEncryption
	NIDSHA384WithRSAEncryption
	NIDSHA512WithRSAEncryption
	NIDDSAWithSHA1
	NIDDSAWithSHA256
	NIDECDSAWithSHA1
	NIDECDSAWithSHA224
	NIDECDSAWithSHA256
	NIDECDSAWithSHA384
	NIDECDSAWithSHA512

	// Symmetric ciphers.
	NIDAES128CBC
	NIDAES128GCM
	NIDAES256CBC
	NIDAES256GCM

	// X.500 attribute types.
	NIDCommonName
	NIDSurname
	NIDSerialNumber
	NIDCountryName
	NIDLocalityName
	NIDStateOrProvinceName
	NIDOrganizationName
	NIDOrganizationalUnitName
	NIDGivenName
	NIDEmailAddress
	NIDDomainComponent

	// PKCS#9 attributes.
	NIDContentType
	NIDMessageDigest
	NIDSigningTime

	// X509v3 extensions.
	NIDSubjectKeyIdentifier
	NIDKeyUsage
	NIDSubjectAltName
	NIDIssuerAltName
	NIDBasicConstraints
	NIDCRLNumber
	NIDCRLDistributionPoints
	NIDCertificatePolicies
	NIDAuthorityKeyIdentifier
	NIDExtKeyUsage

	// PKIX.
	NIDAuthorityInfoAccess
	NIDServerAuth
	NIDClientAuth
	NIDCodeSigning
	NIDEmailProtection
	NIDTimeStamping
	NIDOCSPSigning
	NIDOCSP
	NIDCAIssuers

	numNIDs // must stay last
)
