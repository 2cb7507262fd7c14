/*
DESCRIPTION
  prng_test.go checks the bit-reversed PRNG against a literal trace value
  and confirms the Gaussian lookup stays within table range for every
  possible state.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package grain

import "testing"

func TestPRNGNext(t *testing.T) {
	s := prngState(0xdeadbeef)
	got := s.next()
	want := prngState(0xef56df77)
	if got != want {
		t.Fatalf("next(0xdeadbeef) = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestPRNGNextIsBitReversedShift(t *testing.T) {
	s := prngState(2)
	got := s.next()
	// bit1(x)=1, bit29(x)=0, so the new top bit is 1; x>>1 contributes bit0=1.
	want := prngState(0x80000001)
	if got != want {
		t.Fatalf("next(2) = %#x, want %#x", uint32(got), uint32(want))
	}
}

func TestGaussianStaysInRange(t *testing.T) {
	for i := 0; i < 4096; i++ {
		s := prngState(i)
		_ = s.gaussian() // must not panic for any 11-bit masked index
	}
}

func TestSeedTableDistinctSlots(t *testing.T) {
	if seedTable[0] == seedTable[1] {
		t.Fatalf("seedTable[0] and seedTable[1] must differ to decorrelate luma and chroma pattern generation")
	}
}
