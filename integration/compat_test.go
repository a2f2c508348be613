package integration

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/golangpki/goobj"
)

// Vectors cross-checked against the C OBJ layer (OBJ_obj2txt and
// friends), so behavior stays byte-for-byte compatible with certificate
// tooling built on it.

var (
	derSHA256WithRSA = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}
	// 1.2.840.113554.4.1.72585.2: registered for testing, not in the table.
	derUnknown = []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x12, 0x04, 0x01, 0x84, 0xb7, 0x09, 0x02}
)

func TestReferenceLookups(t *testing.T) {
	nid := goobj.ByDER(derSHA256WithRSA)
	require.NotEqual(t, goobj.NIDUndef, nid)

	require.Equal(t, nid, goobj.ByShortName("RSA-SHA256"))
	require.Equal(t, nid, goobj.ByLongName("sha256WithRSAEncryption"))
	require.Equal(t, nid, goobj.ByText("RSA-SHA256"))
	require.Equal(t, nid, goobj.ByText("sha256WithRSAEncryption"))
	require.Equal(t, nid, goobj.ByText("1.2.840.113549.1.1.11"))

	require.Equal(t, "RSA-SHA256", goobj.NIDToShortName(nid))
	require.Equal(t, "sha256WithRSAEncryption", goobj.NIDToLongName(nid))

	require.Equal(t, goobj.NIDUndef, goobj.ByShortName("this is not an OID"))
	require.Equal(t, goobj.NIDUndef, goobj.ByLongName("this is not an OID"))
	require.Equal(t, goobj.NIDUndef, goobj.ByText("this is not an OID"))

	require.Equal(t, goobj.NIDUndef, goobj.ByDER(nil))
	require.Equal(t, goobj.NIDUndef, goobj.ByDER(derUnknown))

	require.Equal(t, goobj.NIDUndef, goobj.ByShortName("UNDEF"))
	require.Equal(t, goobj.NIDUndef, goobj.ByLongName("undefined"))
	require.Same(t, goobj.NIDToIdentifier(goobj.NIDUndef), goobj.NIDToIdentifier(goobj.NID(-1)))
}

func TestReferenceSignatureAlgorithms(t *testing.T) {
	sha256WithRSA := goobj.ByText("sha256WithRSAEncryption")
	sha256 := goobj.ByText("sha256")
	rsa := goobj.ByText("rsaEncryption")
	dsa := goobj.ByText("DSA")

	digest, pubkey, ok := goobj.FindSignatureAlgorithms(sha256WithRSA)
	require.True(t, ok)
	require.Equal(t, sha256, digest)
	require.Equal(t, rsa, pubkey)

	_, _, ok = goobj.FindSignatureAlgorithms(sha256)
	require.False(t, ok)

	sign, ok := goobj.FindSignatureByAlgorithms(sha256, rsa)
	require.True(t, ok)
	require.Equal(t, sha256WithRSA, sign)

	_, ok = goobj.FindSignatureByAlgorithms(dsa, rsa)
	require.False(t, ok)
}

// expectFormat mirrors the C reference check: required length reported
// at every capacity, NUL termination inside capacity 1, exact content at
// a large capacity.
func expectFormat(t *testing.T, der []byte, numeric bool, expected string) {
	t.Helper()
	id := goobj.New(goobj.NIDUndef, der, "", "")

	require.Equal(t, len(expected), goobj.FormatInto(nil, id, numeric))

	short := []byte{0xff}
	require.Equal(t, len(expected), goobj.FormatInto(short, id, numeric))
	require.Equal(t, byte(0), short[0])

	buf := make([]byte, 256)
	require.Equal(t, len(expected), goobj.FormatInto(buf, id, numeric))
	require.Equal(t, expected, string(buf[:len(expected)]))
	require.Equal(t, byte(0), buf[len(expected)])
}

func TestReferenceFormatting(t *testing.T) {
	basicConstraints := []byte{0x55, 0x1d, 0x13}
	testOID := []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x12, 0x04, 0x01, 0x84, 0xb7, 0x09, 0x00}

	expectFormat(t, derSHA256WithRSA, true, "1.2.840.113549.1.1.11")
	expectFormat(t, derSHA256WithRSA, false, "sha256WithRSAEncryption")
	expectFormat(t, basicConstraints, true, "2.5.29.19")
	expectFormat(t, basicConstraints, false, "X509v3 Basic Constraints")
	expectFormat(t, testOID, true, "1.2.840.113554.4.1.72585.0")
	expectFormat(t, testOID, false, "1.2.840.113554.4.1.72585.0")
	expectFormat(t, nil, true, "")
	expectFormat(t, nil, false, "")

	nonMinimal := []byte{0x55, 0x1d, 0x80, 0x13}
	overflow := []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x12, 0x04, 0x01, 0x84, 0xb7, 0x09,
		0x82, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}
	trailingContinuation := []byte{0x55, 0x1d, 0x93}
	for _, der := range [][]byte{nonMinimal, overflow, trailingContinuation} {
		for _, numeric := range []bool{false, true} {
			id := goobj.New(goobj.NIDUndef, der, "", "")
			require.Equal(t, -1, goobj.FormatInto(nil, id, numeric), "der % x", der)
		}
	}
}
