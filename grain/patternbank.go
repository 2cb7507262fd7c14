/*
DESCRIPTION
  patternbank.go holds the retained grain patterns and the small geometry
  record that parameterizes the "64 vs 32" axis shared by the iDCT and
  frequency-filtering pattern generators, rather than hand-duplicating each
  one per block size as the original firmware does.

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

// blockGeometry captures the parameters that differ between the 64-wide
// luma pattern generator and the 32-wide chroma one.
type blockGeometry struct {
	size       int // 64 or 32
	groupStep  int // 4 for luma, 2 for chroma
	seedSlot   int // index into seedTable
	pass1Round int32
	pass1Shift uint
}

var geometry64 = blockGeometry{size: 64, groupStep: 4, seedSlot: 0, pass1Round: 256, pass1Shift: 9}
var geometry32 = blockGeometry{size: 32, groupStep: 2, seedSlot: 1, pass1Round: 128, pass1Shift: 8}

// PatternBank holds the retained luma and chroma grain patterns for one
// Synthesizer. Chroma patterns occupy the top-left corner of their 64x64
// slot, stride 64, sized 64/csuby x 64/csubx clamped to the 32x32 source
// pattern (see setChroma).
type PatternBank struct {
	Luma   [MaxPatterns + 1][64][64]int8
	Chroma [MaxPatterns + 1][64][64]int8
}

// setLuma installs a 64x64 pattern at index.
func (b *PatternBank) setLuma(index int, block *[64][64]int8) error {
	if index < 0 || index >= MaxPatterns {
		return ErrPatternIndexOutOfRange
	}
	b.Luma[index] = *block
	return nil
}

// setChroma installs a dense 32x32 chroma pattern at index, expanding it
// into the 64-stride slot used by the compositor. rows/cols give the
// destination extent (64/csuby, 64/csubx): the original firmware derives
// these from the globally configured chroma subsampling rather than from
// the pattern generator's own (always 2x2-shaped) 32x32 working geometry,
// so for csubx or csuby of 1 the requested extent can exceed the 32x32
// source — those rows/columns are left at zero rather than read out of
// bounds (see DESIGN.md: chroma pattern install is only exact for 4:2:0).
func (b *PatternBank) setChroma(index int, block *[32][32]int8, rows, cols int) error {
	if index < 0 || index >= MaxPatterns {
		return ErrPatternIndexOutOfRange
	}
	if rows > 32 {
		rows = 32
	}
	if cols > 32 {
		cols = 32
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			b.Chroma[index][i][j] = block[i][j]
		}
	}
	return nil
}
