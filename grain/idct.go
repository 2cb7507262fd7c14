/*
DESCRIPTION
  idct.go implements the separable two-pass integer inverse DCT used to turn
  sparse frequency-domain coefficient blocks into spatial-domain grain
  patterns. Both the 64x64 luma transform and the 32x32 chroma transform
  share the dctBasis64 table: the 32-wide basis is the even-indexed rows of
  the 64-wide one, not a separately stored matrix.

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

// clipGrain saturates a wide accumulator result to the signed 8-bit grain
// sample range used throughout pattern generation.
func clipGrain(v int32) int8 {
	if v > 127 {
		return 127
	}
	if v < -127 {
		return -127
	}
	return int8(v)
}

// idct2x64 applies the inverse DCT-II to a 64x64 coefficient block in place,
// first vertically then horizontally, clipping the final result. The first
// pass's rounding offset and shift come from geometry64, parameterizing the
// same "64 vs 32" axis blockGeometry captures for the pattern generators.
func idct2x64(b *[64][64]int8) {
	g := geometry64
	var x [64][64]int16
	for j := 0; j < 64; j++ {
		for i := 0; i < 64; i++ {
			acc := g.pass1Round
			for k := 0; k < 64; k++ {
				acc += int32(dctBasis64[k][j]) * int32(b[k][i])
			}
			x[j][i] = int16(acc >> g.pass1Shift)
		}
	}
	for j := 0; j < 64; j++ {
		for i := 0; i < 64; i++ {
			acc := int32(256)
			for k := 0; k < 64; k++ {
				acc += int32(x[j][k]) * int32(dctBasis64[k][i])
			}
			b[j][i] = clipGrain(acc >> 9)
		}
	}
}

// idct2x32 applies the inverse DCT-II to a 32x32 coefficient block in place,
// using the even rows of dctBasis64 as the 32-wide basis. The first pass's
// rounding offset and shift come from geometry32 (128/8, distinct from the
// 64-wide pass's 256/9); the second pass is common to both sizes.
func idct2x32(b *[32][32]int8) {
	g := geometry32
	var x [32][32]int16
	for j := 0; j < 32; j++ {
		for i := 0; i < 32; i++ {
			acc := g.pass1Round
			for k := 0; k < 32; k++ {
				acc += int32(dctBasis64[k*2][j]) * int32(b[k][i])
			}
			x[j][i] = int16(acc >> g.pass1Shift)
		}
	}
	for j := 0; j < 32; j++ {
		for i := 0; i < 32; i++ {
			acc := int32(256)
			for k := 0; k < 32; k++ {
				acc += int32(x[j][k]) * int32(dctBasis64[k*2][i])
			}
			b[j][i] = clipGrain(acc >> 9)
		}
	}
}
