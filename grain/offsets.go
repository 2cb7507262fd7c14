/*
DESCRIPTION
  offsets.go derives the per-block pseudo-random pattern offset and sign
  used by the compositor, one function per plane color. Bit fields are
  chosen to minimise cross-component correlation between Y, Cb and Cr.

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

// blockOffset is the result of deriving a pattern offset and sign from a
// PRNG state for one plane.
type blockOffset struct {
	sign int
	x, y uint8
}

func signOf(bit uint32) int {
	if bit != 0 {
		return -1
	}
	return 1
}

// offsetY derives the luma block offset and sign from rnd.
func offsetY(rnd uint32) blockOffset {
	s := signOf((rnd >> 31) & 1)
	bfx := (rnd >> 0) & 0x3ff
	x := uint8(((bfx * 13) >> 10) * 4)
	bfy := (rnd >> 14) & 0x3ff
	y := uint8(((bfy * 12) >> 10) * 4)
	return blockOffset{sign: s, x: x, y: y}
}

// offsetU derives the Cb block offset and sign from rnd, scaled by the
// current chroma subsampling factors.
func offsetU(rnd uint32, subx, suby int) blockOffset {
	s := signOf((rnd >> 2) & 1)
	bfx := (rnd >> 10) & 0x3ff
	x := uint8(((bfx * 13) >> 10) * (4 / subx))
	bfy := ((rnd >> 24) & 0xff) | ((rnd << 8) & 0x300)
	y := uint8(((bfy * 12) >> 10) * (4 / suby))
	return blockOffset{sign: s, x: x, y: y}
}

// offsetV derives the Cr block offset and sign from rnd, scaled by the
// current chroma subsampling factors.
func offsetV(rnd uint32, subx, suby int) blockOffset {
	s := signOf((rnd >> 15) & 1)
	bfx := (rnd >> 20) & 0x3ff
	x := uint8(((bfx * 13) >> 10) * (4 / subx))
	bfy := (rnd >> 4) & 0x3ff
	y := uint8(((bfy * 12) >> 10) * (4 / suby))
	return blockOffset{sign: s, x: x, y: y}
}

// offsetFor dispatches to the per-component offset function.
func offsetFor(c Component, rnd uint32, subx, suby int) blockOffset {
	switch c {
	case ComponentY:
		return offsetY(rnd)
	case ComponentCb:
		return offsetU(rnd, subx, suby)
	default:
		return offsetV(rnd, subx, suby)
	}
}
