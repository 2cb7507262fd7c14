/*
DESCRIPTION
  idct_test.go checks the inverse DCT helpers: an all-zero coefficient
  block stays all-zero, and outputs never fall outside the clipped
  [-127,127] range regardless of input.

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

func TestClipGrain(t *testing.T) {
	cases := []struct {
		in   int32
		want int8
	}{
		{0, 0},
		{127, 127},
		{128, 127},
		{-127, -127},
		{-128, -127},
		{10000, 127},
		{-10000, -127},
	}
	for _, c := range cases {
		if got := clipGrain(c.in); got != c.want {
			t.Errorf("clipGrain(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIDCT2x64ZeroStaysZero(t *testing.T) {
	var b [64][64]int8
	idct2x64(&b)
	for j := range b {
		for i := range b[j] {
			if b[j][i] != 0 {
				t.Fatalf("idct2x64 of all-zero input produced non-zero at [%d][%d]: %d", j, i, b[j][i])
			}
		}
	}
}

func TestIDCT2x32ZeroStaysZero(t *testing.T) {
	var b [32][32]int8
	idct2x32(&b)
	for j := range b {
		for i := range b[j] {
			if b[j][i] != 0 {
				t.Fatalf("idct2x32 of all-zero input produced non-zero at [%d][%d]: %d", j, i, b[j][i])
			}
		}
	}
}

func TestIDCT2x64StaysInRange(t *testing.T) {
	var b [64][64]int8
	for j := range b {
		for i := range b[j] {
			b[j][i] = 127
		}
	}
	idct2x64(&b)
	for j := range b {
		for i := range b[j] {
			if b[j][i] < -127 || b[j][i] > 127 {
				t.Fatalf("idct2x64 output out of range at [%d][%d]: %d", j, i, b[j][i])
			}
		}
	}
}
