/*
DESCRIPTION
  lut.go builds the per-component scale and pattern lookup tables shared by
  the SEI and AFGS1 configuration mappers: piecewise-linear scale LUT
  construction (AFGS1) and sentinel-based hole filling (SEI).

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

// holeSentinel marks an unwritten pattern-LUT cell during SEI LUT
// construction, filled in afterwards by holeFill.
const holeSentinel = 0xff

// makeLUTPiecewiseLinear builds a 256-entry scale LUT by linear
// interpolation between (in[k], out[k]) control points, using integer
// half-up rounding, per spec.md 4.5 step 2. Values outside the covered
// range are left at 0. in must be strictly increasing.
func makeLUTPiecewiseLinear(in, out []uint8, n int) [256]uint8 {
	var lut [256]uint8
	for k := 1; k < n; k++ {
		din := int(in[k]) - int(in[k-1])
		dout := int(out[k]) - int(out[k-1])
		for i := 0; i <= din; i++ {
			lut[int(in[k-1])+i] = uint8(int(out[k-1]) + (dout*i+din/2)/din)
		}
	}
	return lut
}

// holeFill replaces sentinel cells in lut with the last non-sentinel value
// seen scanning ascending from index 0 (initial "last" value 0), per
// spec.md 4.4 step 4 — no interpolation.
func holeFill(lut *[256]uint8) {
	var last uint8
	for k := 0; k < 256; k++ {
		if lut[k] == holeSentinel {
			lut[k] = last
		} else {
			last = lut[k]
		}
	}
}
