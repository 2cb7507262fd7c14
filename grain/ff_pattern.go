/*
DESCRIPTION
  ff_pattern.go implements the frequency-filtering grain pattern generator:
  a transform block is sparsely seeded with Gaussian coefficients inside a
  scaled cutoff region, DC is zeroed, and the separable inverse DCT (idct.go)
  turns it into a spatial-domain pattern.

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

// makeFFPattern64 builds a 64x64 luma grain pattern for the given
// horizontal/vertical cutoffs, each expected in [2,14] (validated by the
// caller).
func makeFFPattern64(fh, fv int) *[64][64]int8 {
	var b [64][64]int8
	fillFFCoefficients(&b, fh, fv, geometry64)
	b[0][0] = 0
	idct2x64(&b)
	return &b
}

// makeFFPattern32 builds a 32x32 chroma grain pattern for the given
// horizontal/vertical cutoffs.
func makeFFPattern32(fh, fv int) *[32][32]int8 {
	var full [64][64]int8
	fillFFCoefficients(&full, fh, fv, geometry32)
	full[0][0] = 0
	var b [32][32]int8
	for i := 0; i < 32; i++ {
		copy(b[i][:], full[i][:32])
	}
	idct2x32(&b)
	return &b
}

// fillFFCoefficients sparsely fills the usable region of b (sized
// geom.size x geom.size, backed by a 64-wide array so the same routine
// serves both geometries) with consecutive Gaussian-table entries, in
// column groups of geom.groupStep, advancing the PRNG once per group
// regardless of whether the group fell inside the usable region — matching
// the reference generator's fixed-cost scan.
func fillFFCoefficients(b *[64][64]int8, fh, fv int, geom blockGeometry) {
	usableH := geom.groupStep * (fh + 1)
	usableV := geom.groupStep * (fv + 1)

	n := newPRNG(geom.seedSlot)
	for l := 0; l < geom.size; l++ {
		for k := 0; k < geom.size; k += geom.groupStep {
			if k < usableH && l < usableV {
				for g := 0; g < geom.groupStep; g++ {
					b[l][k+g] = int8(gaussianTable[(uint32(n)+uint32(g))&2047])
				}
			}
			n = n.next()
		}
	}
}
