/*
DESCRIPTION
  prng.go implements the 32-bit bit-reversed pseudo-random generator used to
  draw Gaussian deviates for frequency-filtering pattern generation and to
  derive per-block dither offsets during compositing.

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

// prngState is a 32-bit bit-reversed linear feedback register (the "RDD-5"
// generator). Successive calls to next walk the register one bit per call;
// the low 11 bits of the state index gaussianTable.
type prngState uint32

// newPRNG seeds a generator from one of the 256 fixed slots in seedTable.
// Slot indices follow the component convention used throughout this
// package: 0 for luma, 1 for Cb, 2 for Cr.
func newPRNG(slot int) prngState {
	return prngState(seedTable[slot])
}

// next advances the generator by one step and returns the new state.
func (s prngState) next() prngState {
	x := uint32(s)
	bit := ((x << 30) ^ (x << 2)) & 0x80000000
	return prngState(bit | (x >> 1))
}

// gaussian returns the Gaussian-distributed deviate at the generator's
// current low-11-bit index.
func (s prngState) gaussian() int8 {
	return gaussianTable[uint32(s)&2047]
}
