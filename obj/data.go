package obj

// object is one row of the built-in table: a dense NID, the DER content
// octets of the identifier, and its registered names. Rows are trusted
// data; nothing validates them at lookup time.
type object struct {
	nid       NID
	der       []byte
	shortName string
	longName  string
}

// objects holds the built-in identifiers, ordered by NID. Row i must carry
// NID i. Row 0 is the undefined identifier: no arcs, empty DER.
//
// DER bytes are the content octets only (no tag or length) and every
// non-undefined row is a minimal encoding.
var objects = []object{
	{NIDUndef, nil, "UNDEF", "undefined"},

	// Digests.
	{NIDMD5, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x05}, "MD5", "md5"},                         // 1.2.840.113549.2.5
	{NIDSHA1, []byte{0x2b, 0x0e, 0x03, 0x02, 0x1a}, "SHA1", "sha1"},                                        // 1.3.14.3.2.26
	{NIDSHA224, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x04}, "SHA224", "sha224"},          // 2.16.840.1.101.3.4.2.4
	{NIDSHA256, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x01}, "SHA256", "sha256"},          // 2.16.840.1.101.3.4.2.1
	{NIDSHA384, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x02}, "SHA384", "sha384"},          // 2.16.840.1.101.3.4.2.2
	{NIDSHA512, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x03}, "SHA512", "sha512"},          // 2.16.840.1.101.3.4.2.3
	{NIDSHA512x224, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x05}, "SHA512-224", "sha512-224"}, // 2.16.840.1.101.3.4.2.5
	{NIDSHA512x256, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x06}, "SHA512-256", "sha512-256"}, // 2.16.840.1.101.3.4.2.6
	{NIDSHA3x224, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x07}, "SHA3-224", "sha3-224"},    // 2.16.840.1.101.3.4.2.7
	{NIDSHA3x256, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x08}, "SHA3-256", "sha3-256"},    // 2.16.840.1.101.3.4.2.8
	{NIDSHA3x384, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x09}, "SHA3-384", "sha3-384"},    // 2.16.840.1.101.3.4.2.9
	{NIDSHA3x512, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x02, 0x0a}, "SHA3-512", "sha3-512"},    // 2.16.840.1.101.3.4.2.10
	{NIDHMACWithSHA1, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x07}, "", "hmacWithSHA1"},          // 1.2.840.113549.2.7
	{NIDHMACWithSHA256, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x02, 0x09}, "", "hmacWithSHA256"},      // 1.2.840.113549.2.9

	// Public key algorithms.
	{NIDRSAEncryption, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x01}, "rsaEncryption", ""},  // 1.2.840.113549.1.1.1
	{NIDRSASSAPSS, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0a}, "RSASSA-PSS", "rsassaPss"}, // 1.2.840.113549.1.1.10
	{NIDDSA, []byte{0x2a, 0x86, 0x48, 0xce, 0x38, 0x04, 0x01}, "DSA", "dsaEncryption"},                     // 1.2.840.10040.4.1
	{NIDECPublicKey, []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01}, "id-ecPublicKey", ""},               // 1.2.840.10045.2.1
	{NIDX25519, []byte{0x2b, 0x65, 0x6e}, "X25519", ""},                                                    // 1.3.101.110
	{NIDX448, []byte{0x2b, 0x65, 0x6f}, "X448", ""},                                                        // 1.3.101.111
	{NIDEd25519, []byte{0x2b, 0x65, 0x70}, "ED25519", ""},                                                  // 1.3.101.112
	{NIDEd448, []byte{0x2b, 0x65, 0x71}, "ED448", ""},                                                      // 1.3.101.113

	// Named curves.
	{NIDSecp224r1, []byte{0x2b, 0x81, 0x04, 0x00, 0x21}, "secp224r1", ""},                                  // 1.3.132.0.33
	{NIDPrime256v1, []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07}, "prime256v1", ""},              // 1.2.840.10045.3.1.7
	{NIDSecp256k1, []byte{0x2b, 0x81, 0x04, 0x00, 0x0a}, "secp256k1", ""},                                  // 1.3.132.0.10
	{NIDSecp384r1, []byte{0x2b, 0x81, 0x04, 0x00, 0x22}, "secp384r1", ""},                                  // 1.3.132.0.34
	{NIDSecp521r1, []byte{0x2b, 0x81, 0x04, 0x00, 0x23}, "secp521r1", ""},                                  // 1.3.132.0.35

	// Signature algorithms.
	{NIDMD5WithRSAEncryption, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x04}, "RSA-MD5", "md5WithRSAEncryption"},          // 1.2.840.113549.1.1.4
	{NIDSHA1WithRSAEncryption, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x05}, "RSA-SHA1", "sha1WithRSAEncryption"},       // 1.2.840.113549.1.1.5
	{NIDSHA224WithRSAEncryption, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0e}, "RSA-SHA224", "sha224WithRSAEncryption"}, // 1.2.840.113549.1.1.14
	{NIDSHA256WithRSAEncryption, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}, "RSA-SHA256", "sha256WithRSAEncryption"}, // 1.2.840.113549.1.1.11
	{NIDSHA384WithRSAEncryption, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0c}, "RSA-SHA384", "sha384WithRSAEncryption"}, // 1.2.840.113549.1.1.12
	{NIDSHA512WithRSAEncryption, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0d}, "RSA-SHA512", "sha512WithRSAEncryption"}, // 1.2.840.113549.1.1.13
	{NIDDSAWithSHA1, []byte{0x2a, 0x86, 0x48, 0xce, 0x38, 0x04, 0x03}, "DSA-SHA1", "dsaWithSHA1"},                                       // 1.2.840.10040.4.3
	{NIDDSAWithSHA256, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x03, 0x02}, "DSA-SHA256", "dsaWithSHA256"},                     // 2.16.840.1.101.3.4.3.2
	{NIDECDSAWithSHA1, []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x01}, "ecdsa-with-SHA1", ""},                                         // 1.2.840.10045.4.1
	{NIDECDSAWithSHA224, []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x01}, "ecdsa-with-SHA224", ""},                               // 1.2.840.10045.4.3.1
	{NIDECDSAWithSHA256, []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x02}, "ecdsa-with-SHA256", ""},                               // 1.2.840.10045.4.3.2
	{NIDECDSAWithSHA384, []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x03}, "ecdsa-with-SHA384", ""},                               // 1.2.840.10045.4.3.3
	{NIDECDSAWithSHA512, []byte{0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x04}, "ecdsa-with-SHA512", ""},                               // 1.2.840.10045.4.3.4

	// Symmetric ciphers.
	{NIDAES128CBC, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x01, 0x02}, "AES-128-CBC", "aes-128-cbc"},    // 2.16.840.1.101.3.4.1.2
	{NIDAES128GCM, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x01, 0x06}, "id-aes128-GCM", "aes-128-gcm"},  // 2.16.840.1.101.3.4.1.6
	{NIDAES256CBC, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x01, 0x2a}, "AES-256-CBC", "aes-256-cbc"},    // 2.16.840.1.101.3.4.1.42
	{NIDAES256GCM, []byte{0x60, 0x86, 0x48, 0x01, 0x65, 0x03, 0x04, 0x01, 0x2e}, "id-aes256-GCM", "aes-256-gcm"},  // 2.16.840.1.101.3.4.1.46

	// X.500 attribute types.
	{NIDCommonName, []byte{0x55, 0x04, 0x03}, "CN", "commonName"},                          // 2.5.4.3
	{NIDSurname, []byte{0x55, 0x04, 0x04}, "SN", "surname"},                                // 2.5.4.4
	{NIDSerialNumber, []byte{0x55, 0x04, 0x05}, "serialNumber", ""},                        // 2.5.4.5
	{NIDCountryName, []byte{0x55, 0x04, 0x06}, "C", "countryName"},                         // 2.5.4.6
	{NIDLocalityName, []byte{0x55, 0x04, 0x07}, "L", "localityName"},                       // 2.5.4.7
	{NIDStateOrProvinceName, []byte{0x55, 0x04, 0x08}, "ST", "stateOrProvinceName"},        // 2.5.4.8
	{NIDOrganizationName, []byte{0x55, 0x04, 0x0a}, "O", "organizationName"},               // 2.5.4.10
	{NIDOrganizationalUnitName, []byte{0x55, 0x04, 0x0b}, "OU", "organizationalUnitName"},  // 2.5.4.11
	{NIDGivenName, []byte{0x55, 0x04, 0x2a}, "GN", "givenName"},                            // 2.5.4.42
	{NIDEmailAddress, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x09, 0x01}, "emailAddress", ""},                          // 1.2.840.113549.1.9.1
	{NIDDomainComponent, []byte{0x09, 0x92, 0x26, 0x89, 0x93, 0xf2, 0x2c, 0x64, 0x01, 0x19}, "DC", "domainComponent"},            // 0.9.2342.19200300.100.1.25

	// PKCS#9 attributes.
	{NIDContentType, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x09, 0x03}, "contentType", ""},     // 1.2.840.113549.1.9.3
	{NIDMessageDigest, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x09, 0x04}, "messageDigest", ""}, // 1.2.840.113549.1.9.4
	{NIDSigningTime, []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x09, 0x05}, "signingTime", ""},     // 1.2.840.113549.1.9.5

	// X509v3 extensions.
	{NIDSubjectKeyIdentifier, []byte{0x55, 0x1d, 0x0e}, "subjectKeyIdentifier", "X509v3 Subject Key Identifier"},       // 2.5.29.14
	{NIDKeyUsage, []byte{0x55, 0x1d, 0x0f}, "keyUsage", "X509v3 Key Usage"},                                            // 2.5.29.15
	{NIDSubjectAltName, []byte{0x55, 0x1d, 0x11}, "subjectAltName", "X509v3 Subject Alternative Name"},                 // 2.5.29.17
	{NIDIssuerAltName, []byte{0x55, 0x1d, 0x12}, "issuerAltName", "X509v3 Issuer Alternative Name"},                    // 2.5.29.18
	{NIDBasicConstraints, []byte{0x55, 0x1d, 0x13}, "basicConstraints", "X509v3 Basic Constraints"},                    // 2.5.29.19
	{NIDCRLNumber, []byte{0x55, 0x1d, 0x14}, "crlNumber", "X509v3 CRL Number"},                                         // 2.5.29.20
	{NIDCRLDistributionPoints, []byte{0x55, 0x1d, 0x1f}, "crlDistributionPoints", "X509v3 CRL Distribution Points"},    // 2.5.29.31
	{NIDCertificatePolicies, []byte{0x55, 0x1d, 0x20}, "certificatePolicies", "X509v3 Certificate Policies"},           // 2.5.29.32
	{NIDAuthorityKeyIdentifier, []byte{0x55, 0x1d, 0x23}, "authorityKeyIdentifier", "X509v3 Authority Key Identifier"}, // 2.5.29.35
	{NIDExtKeyUsage, []byte{0x55, 0x1d, 0x25}, "extendedKeyUsage", "X509v3 Extended Key Usage"},                        // 2.5.29.37

	// PKIX.
	{NIDAuthorityInfoAccess, []byte{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07, 0x01, 0x01}, "authorityInfoAccess", "Authority Information Access"}, // 1.3.6.1.5.5.7.1.1
	{NIDServerAuth, []byte{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07, 0x03, 0x01}, "serverAuth", "TLS Web Server Authentication"},                  // 1.3.6.1.5.5.7.3.1
	{NIDClientAuth, []byte{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07, 0x03, 0x02}, "clientAuth", "TLS Web Client Authentication"},                  // 1.3.6.1.5.5.7.3.2
	{NIDCodeSigning, []byte{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07, 0x03, 0x03}, "codeSigning", "Code Signing"},                                 // 1.3.6.1.5.5.7.3.3
	{NIDEmailProtection, []byte{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07, 0x03, 0x04}, "emailProtection", "E-mail Protection"},                    // 1.3.6.1.5.5.7.3.4
	{NIDTimeStamping, []byte{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07, 0x03, 0x08}, "timeStamping", "Time Stamping"},                              // 1.3.6.1.5.5.7.3.8
	{NIDOCSPSigning, []byte{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07, 0x03, 0x09}, "OCSPSigning", "OCSP Signing"},                                 // 1.3.6.1.5.5.7.3.9
	{NIDOCSP, []byte{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07, 0x30, 0x01}, "OCSP", ""},                                                           // 1.3.6.1.5.5.7.48.1
	{NIDCAIssuers, []byte{0x2b, 0x06, 0x01, 0x05, 0x05, 0x07, 0x30, 0x02}, "caIssuers", "CA Issuers"},                                       // 1.3.6.1.5.5.7.48.2
}
