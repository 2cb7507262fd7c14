/*
DESCRIPTION
  offsets_test.go checks the per-plane offset derivation: results stay
  within the 64-sample pattern bank regardless of chroma subsampling,
  signOf maps a clear bit to +1 and a set bit to -1, and offsetFor
  dispatches to the per-component function.

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

func TestSignOf(t *testing.T) {
	if signOf(0) != 1 {
		t.Errorf("signOf(0) = %d, want 1", signOf(0))
	}
	if signOf(1) != -1 {
		t.Errorf("signOf(1) = %d, want -1", signOf(1))
	}
}

func TestOffsetYStaysInBounds(t *testing.T) {
	for _, rnd := range []uint32{0, 0xffffffff, 0xdeadbeef, 0x12345678} {
		off := offsetY(rnd)
		if int(off.x) > 48 || int(off.y) > 44 {
			t.Errorf("offsetY(%#x) = %+v, x or y too large for a 64-wide bank slot", rnd, off)
		}
	}
}

func TestOffsetUVStayInBoundsAcrossSubsampling(t *testing.T) {
	cases := []struct{ subx, suby int }{{1, 1}, {2, 1}, {2, 2}}
	for _, c := range cases {
		for _, rnd := range []uint32{0, 0xffffffff, 0xabad1dea} {
			u := offsetU(rnd, c.subx, c.suby)
			v := offsetV(rnd, c.subx, c.suby)
			maxX := uint8(12 * (4 / c.subx))
			maxY := uint8(11 * (4 / c.suby))
			if u.x > maxX || u.y > maxY {
				t.Errorf("offsetU(%#x,%d,%d) = %+v exceeds bound (%d,%d)", rnd, c.subx, c.suby, u, maxX, maxY)
			}
			if v.x > maxX || v.y > maxY {
				t.Errorf("offsetV(%#x,%d,%d) = %+v exceeds bound (%d,%d)", rnd, c.subx, c.suby, v, maxX, maxY)
			}
		}
	}
}

func TestOffsetForDispatchesByComponent(t *testing.T) {
	rnd := uint32(0x11223344)
	if offsetFor(ComponentY, rnd, 2, 2) != offsetY(rnd) {
		t.Errorf("offsetFor(ComponentY,...) did not match offsetY")
	}
	if offsetFor(ComponentCb, rnd, 2, 2) != offsetU(rnd, 2, 2) {
		t.Errorf("offsetFor(ComponentCb,...) did not match offsetU")
	}
	if offsetFor(ComponentCr, rnd, 2, 2) != offsetV(rnd, 2, 2) {
		t.Errorf("offsetFor(ComponentCr,...) did not match offsetV")
	}
}
