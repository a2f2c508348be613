package obj

import "testing"

func TestFindSignatureAlgorithms(t *testing.T) {
	tests := []struct {
		name   string
		sign   NID
		digest NID
		pubkey NID
		ok     bool
	}{
		{"rsa sha256", NIDSHA256WithRSAEncryption, NIDSHA256, NIDRSAEncryption, true},
		{"rsa sha1", NIDSHA1WithRSAEncryption, NIDSHA1, NIDRSAEncryption, true},
		{"dsa sha256", NIDDSAWithSHA256, NIDSHA256, NIDDSA, true},
		{"ecdsa sha384", NIDECDSAWithSHA384, NIDSHA384, NIDECPublicKey, true},
		{"ed25519 has no digest", NIDEd25519, NIDUndef, NIDEd25519, true},
		{"pss has no digest", NIDRSASSAPSS, NIDUndef, NIDRSASSAPSS, true},
		{"digest nid is not a signature", NIDSHA256, NIDUndef, NIDUndef, false},
		{"pubkey nid is not a signature", NIDRSAEncryption, NIDUndef, NIDUndef, false},
		{"undef", NIDUndef, NIDUndef, NIDUndef, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, pubkey, ok := FindSignatureAlgorithms(tt.sign)
			if ok != tt.ok || digest != tt.digest || pubkey != tt.pubkey {
				t.Errorf("FindSignatureAlgorithms(%d) = (%d, %d, %v), want (%d, %d, %v)",
					tt.sign, digest, pubkey, ok, tt.digest, tt.pubkey, tt.ok)
			}
		})
	}
}

func TestFindSignatureByAlgorithms(t *testing.T) {
	tests := []struct {
		name   string
		digest NID
		pubkey NID
		sign   NID
		ok     bool
	}{
		{"sha256 rsa", NIDSHA256, NIDRSAEncryption, NIDSHA256WithRSAEncryption, true},
		{"sha512 rsa", NIDSHA512, NIDRSAEncryption, NIDSHA512WithRSAEncryption, true},
		{"sha256 ecdsa", NIDSHA256, NIDECPublicKey, NIDECDSAWithSHA256, true},
		{"no digest ed25519", NIDUndef, NIDEd25519, NIDEd25519, true},
		{"dsa with rsa digest mismatch", NIDDSA, NIDRSAEncryption, NIDUndef, false},
		{"unregistered pair", NIDMD5, NIDDSA, NIDUndef, false},
		{"undef pair", NIDUndef, NIDUndef, NIDUndef, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sign, ok := FindSignatureByAlgorithms(tt.digest, tt.pubkey)
			if ok != tt.ok || sign != tt.sign {
				t.Errorf("FindSignatureByAlgorithms(%d, %d) = (%d, %v), want (%d, %v)",
					tt.digest, tt.pubkey, sign, ok, tt.sign, tt.ok)
			}
		})
	}
}

// Every triple refers to table entries, and the sign side is unique.
func TestSigAlgTableConsistent(t *testing.T) {
	seen := make(map[NID]bool)
	for _, sa := range sigAlgs {
		if sa.sign == NIDUndef || int(sa.sign) >= NumObjects() {
			t.Errorf("bad sign NID %d", sa.sign)
		}
		if seen[sa.sign] {
			t.Errorf("duplicate sign NID %d", sa.sign)
		}
		seen[sa.sign] = true
		if int(sa.digest) >= NumObjects() || int(sa.pubkey) >= NumObjects() {
			t.Errorf("sign NID %d refers outside the table", sa.sign)
		}
	}
}
