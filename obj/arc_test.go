package obj

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"testing"
)

func TestDecodeArcs(t *testing.T) {
	tests := []struct {
		name string
		der  []byte
		want []uint64
	}{
		{"empty", nil, nil},
		{"empty slice", []byte{}, nil},
		{"zero first byte", []byte{0x00}, []uint64{0, 0}},
		{"joint-iso arc", []byte{0x55}, []uint64{2, 5}},
		{"basic constraints", []byte{0x55, 0x1d, 0x13}, []uint64{2, 5, 29, 19}},
		{"sha256WithRSA", []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b},
			[]uint64{1, 2, 840, 113549, 1, 1, 11}},
		{"itu-t first arc", []byte{0x09, 0x92, 0x26, 0x89, 0x93, 0xf2, 0x2c, 0x64, 0x01, 0x19},
			[]uint64{0, 9, 2342, 19200300, 100, 1, 25}},
		{"first arc 80 splits as 2.0", []byte{0x50}, []uint64{2, 0}},
		{"large first arc under 2", []byte{0x88, 0x37}, []uint64{2, 999}},
		{"max uint64 arc", []byte{0x55, 0x81, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f},
			[]uint64{2, 5, math.MaxUint64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeArcs(tt.der)
			if err != nil {
				t.Fatalf("decodeArcs(% x) unexpected error: %v", tt.der, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("decodeArcs(% x) = %v, want %v", tt.der, got, tt.want)
			}
		})
	}
}

func TestDecodeArcsErrors(t *testing.T) {
	tests := []struct {
		name string
		der  []byte
		want error
	}{
		{"truncated single byte", []byte{0x81}, ErrTruncated},
		{"truncated final arc", []byte{0x55, 0x1d, 0x93}, ErrTruncated},
		{"truncated long arc", []byte{0x2a, 0x86, 0x48, 0x86, 0xf7}, ErrTruncated},
		{"leading 0x80 first arc", []byte{0x80, 0x01}, ErrNonMinimal},
		{"leading 0x80 final arc", []byte{0x55, 0x1d, 0x80, 0x13}, ErrNonMinimal},
		{"overflow 2^64", []byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x12, 0x04, 0x01, 0x84, 0xb7, 0x09,
			0x82, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, ErrOverflow},
		{"overflow first arc", []byte{0x82, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x00}, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeArcs(tt.der)
			if err == nil {
				t.Fatalf("decodeArcs(% x) = %v, want error", tt.der, got)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("decodeArcs(% x) error = %v, want %v", tt.der, err, tt.want)
			}
		})
	}
}

func TestEncodeArcs(t *testing.T) {
	tests := []struct {
		name string
		arcs []uint64
		want []byte
	}{
		{"empty", nil, nil},
		{"two zero arcs", []uint64{0, 0}, []byte{0x00}},
		{"basic constraints", []uint64{2, 5, 29, 19}, []byte{0x55, 0x1d, 0x13}},
		{"sha256WithRSA", []uint64{1, 2, 840, 113549, 1, 1, 11},
			[]byte{0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b}},
		{"itu-t tree", []uint64{0, 9, 2342, 19200300, 100, 1, 25},
			[]byte{0x09, 0x92, 0x26, 0x89, 0x93, 0xf2, 0x2c, 0x64, 0x01, 0x19}},
		{"second arc 999 under 2", []uint64{2, 999}, []byte{0x88, 0x37}},
		{"max uint64 tail arc", []uint64{2, 5, math.MaxUint64},
			[]byte{0x55, 0x81, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeArcs(tt.arcs)
			if err != nil {
				t.Fatalf("EncodeArcs(%v) unexpected error: %v", tt.arcs, err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("EncodeArcs(%v) = % x, want % x", tt.arcs, got, tt.want)
			}
		})
	}
}

func TestEncodeArcsErrors(t *testing.T) {
	tests := []struct {
		name string
		arcs []uint64
		want error
	}{
		{"single arc", []uint64{1}, ErrSyntax},
		{"first arc above 2", []uint64{3, 1}, ErrSyntax},
		{"second arc 40 under 0", []uint64{0, 40}, ErrSyntax},
		{"second arc 40 under 1", []uint64{1, 40}, ErrSyntax},
		{"combined arc overflow", []uint64{2, math.MaxUint64 - 79}, ErrOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeArcs(tt.arcs)
			if err == nil {
				t.Fatalf("EncodeArcs(%v) = % x, want error", tt.arcs, got)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("EncodeArcs(%v) error = %v, want %v", tt.arcs, err, tt.want)
			}
		})
	}
}

func TestEncodeArcsBoundary(t *testing.T) {
	// 2.(2^64-81) is the largest encodable first pair.
	der, err := EncodeArcs([]uint64{2, math.MaxUint64 - 80})
	if err != nil {
		t.Fatalf("EncodeArcs boundary: %v", err)
	}
	arcs, err := decodeArcs(der)
	if err != nil {
		t.Fatalf("decodeArcs(% x): %v", der, err)
	}
	if !slices.Equal(arcs, []uint64{2, math.MaxUint64 - 80}) {
		t.Errorf("round trip = %v", arcs)
	}
}

func TestArcRoundTrip(t *testing.T) {
	for _, o := range objects {
		arcs, err := decodeArcs(o.der)
		if err != nil {
			t.Fatalf("NID %d: decode % x: %v", o.nid, o.der, err)
		}
		der, err := EncodeArcs(arcs)
		if err != nil {
			t.Fatalf("NID %d: encode %v: %v", o.nid, arcs, err)
		}
		if !bytes.Equal(der, o.der) {
			t.Errorf("NID %d: round trip % x != % x", o.nid, der, o.der)
		}
	}
}
