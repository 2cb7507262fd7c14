/*
DESCRIPTION
  patternbank_test.go checks pattern installation bounds-checking and the
  32x32-into-64-stride chroma expansion, including the clamped-extent
  behaviour documented for non-4:2:0 subsampling.

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

func TestSetLumaIndexBounds(t *testing.T) {
	var b PatternBank
	var block [64][64]int8
	if err := b.setLuma(-1, &block); err != ErrPatternIndexOutOfRange {
		t.Fatalf("setLuma(-1,...) = %v, want ErrPatternIndexOutOfRange", err)
	}
	if err := b.setLuma(MaxPatterns, &block); err != ErrPatternIndexOutOfRange {
		t.Fatalf("setLuma(MaxPatterns,...) = %v, want ErrPatternIndexOutOfRange", err)
	}
	if err := b.setLuma(0, &block); err != nil {
		t.Fatalf("setLuma(0,...) = %v, want nil", err)
	}
}

func TestSetChromaExpandsIntoStride64(t *testing.T) {
	var b PatternBank
	var block [32][32]int8
	for j := range block {
		for i := range block[j] {
			block[j][i] = int8(j + i)
		}
	}
	if err := b.setChroma(0, &block, 32, 32); err != nil {
		t.Fatalf("setChroma: %v", err)
	}
	for j := 0; j < 32; j++ {
		for i := 0; i < 32; i++ {
			if b.Chroma[0][j][i] != block[j][i] {
				t.Fatalf("Chroma[0][%d][%d] = %d, want %d", j, i, b.Chroma[0][j][i], block[j][i])
			}
		}
	}
	// Rows beyond the installed 32x32 extent but inside the 64-wide slot
	// stay zero.
	if b.Chroma[0][32][0] != 0 {
		t.Fatalf("Chroma[0][32][0] = %d, want 0 (outside installed extent)", b.Chroma[0][32][0])
	}
}

func TestSetChromaClampsExtentBeyond32(t *testing.T) {
	var b PatternBank
	var block [32][32]int8
	block[0][0] = 5
	// 64/csuby x 64/csubx with csuby=csubx=1 requests a 64x64 extent from a
	// 32x32 source; setChroma must clamp rather than read out of bounds.
	if err := b.setChroma(0, &block, 64, 64); err != nil {
		t.Fatalf("setChroma with oversized extent: %v", err)
	}
	if b.Chroma[0][0][0] != 5 {
		t.Fatalf("Chroma[0][0][0] = %d, want 5", b.Chroma[0][0][0])
	}
}

func TestSetChromaIndexBounds(t *testing.T) {
	var b PatternBank
	var block [32][32]int8
	if err := b.setChroma(MaxPatterns, &block, 32, 32); err != ErrPatternIndexOutOfRange {
		t.Fatalf("setChroma(MaxPatterns,...) = %v, want ErrPatternIndexOutOfRange", err)
	}
}
