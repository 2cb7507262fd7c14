/*
DESCRIPTION
  compositor.go implements the streaming, line-at-a-time grain compositor:
  16-wide blocks are stepped across one image row, each block's grain drawn
  from the pattern bank at a pseudo-random offset, blended against the
  block above it on overlap rows, horizontally deblocked against its
  already-emitted neighbour, and added to the frame in place.

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

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AddGrainLine composites grain onto one image row y (0-based) across
// width samples of f's three planes, advancing the Synthesizer's PRNG
// registers by one block-row's worth of draws. Rows must be processed in
// increasing y order starting from 0 for a given frame; it is the
// streaming counterpart to AddGrainStripe.
func (s *Synthesizer) AddGrainLine(f *Frame, y, width int) error {
	if f.Y.Data == nil {
		return ErrNilFrame
	}
	if width <= 128 {
		return ErrFrameTooNarrow
	}

	if y != 0 && y&0xf == 0 {
		s.lineRndUp = s.lineRnd
		s.lineRnd = s.rnd
	}
	s.rndUp = s.lineRndUp
	s.rnd = s.lineRnd

	for x := 0; x < width; x += 16 {
		if err := s.addGrainBlock(&f.Y, int(ComponentY), x, y, width); err != nil {
			return err
		}
		if err := s.addGrainBlock(&f.U, int(ComponentCb), x, y, width); err != nil {
			return err
		}
		if err := s.addGrainBlock(&f.V, int(ComponentCr), x, y, width); err != nil {
			return err
		}
		s.rnd = uint32(prngState(s.rnd).next())
		s.rndUp = uint32(prngState(s.rndUp).next())
	}
	return nil
}

// addGrainBlock processes one 16-sample-wide (luma scale) column of plane
// p for component c at row y, emitting the previously buffered block (the
// one 16 samples to the left) after horizontal deblocking, and refilling
// the pipeline registers with the current block's grain and scale values.
func (s *Synthesizer) addGrainBlock(p *Plane, c, x, y, width int) error {
	subx, suby := 1, 1
	iMin, iMax := s.yMin, s.yMax
	if c != int(ComponentY) {
		subx, suby = s.csubx, s.csuby
		iMin, iMax = s.cMin, s.cMax
	}

	if y&1 != 0 && suby > 1 {
		return nil
	}

	blockW := 16 / subx
	j := y & 0xf

	var oc1, oc2 uint8
	switch {
	case y > 15 && j == 0:
		if suby > 1 {
			oc1, oc2 = 20, 20
		} else {
			oc1, oc2 = 12, 24
		}
	case y > 15 && j == 1:
		oc1, oc2 = 24, 12
	}

	off := offsetFor(Component(c), s.rnd, subx, suby)
	off.y += uint8(j / suby)
	offUp := offsetFor(Component(c), s.rndUp, subx, suby)
	offUp.y += uint8((16 + j) / suby)

	bank := &s.bank.Luma
	if c != int(ComponentY) {
		bank = &s.bank.Chroma
	}

	rowBase := (y / suby) * p.Stride

	base := blockW
	for i := 0; i < blockW; i++ {
		idx := rowBase + x/subx + i
		var intensity uint8
		if s.bs != 0 {
			intensity = uint8((uint16(p.Data[2*idx]) | uint16(p.Data[2*idx+1])<<8) >> s.bs)
		} else {
			intensity = p.Data[idx]
		}
		pi := s.patternLUT[c][intensity] >> 4

		pattern := int32(bank[pi][off.y][int(off.x)+i]) * int32(off.sign)
		if oc1 != 0 {
			up := int32(bank[pi][offUp.y][int(offUp.x)+i]) * int32(offUp.sign)
			pattern = roundShift(pattern*int32(oc1)+up*int32(oc2), 5)
		}
		s.grain[c][base+i] = int16(pattern)
		s.scale[c][base+i] = s.scaleLUT[c][intensity]
	}

	// Mirrors the reference firmware's do-while: the body always runs once
	// (emitting the block buffered 16 samples back, then shifting the
	// current block into its place); when this is the last block of the
	// row it runs a second time with flush=1 to emit the current block too,
	// with no deblock and no further pipeline shift.
	flush := 0
	for {
		if x > 0 {
			if flush == 0 {
				l1 := s.grain[c][base-2]
				l0 := s.grain[c][base-1]
				r0 := s.grain[c][base+0]
				r1 := s.grain[c][base+1]
				s.grain[c][base-1] = int16(roundShift(int32(l1)+3*int32(l0)+int32(r0), 2))
				s.grain[c][base+0] = int16(roundShift(int32(l0)+3*int32(r0)+int32(r1), 2))
			}
			for i := 0; i < blockW; i++ {
				g := roundShift(int32(s.scale[c][i])*int32(s.grain[c][i]), uint(s.scaleShift))
				outIdx := rowBase + (x-16)/subx + i
				if s.bs != 0 {
					cur := int(uint16(p.Data[2*outIdx]) | uint16(p.Data[2*outIdx+1])<<8)
					v := clampInt(cur+int(g), int(iMin)<<s.bs, int(iMax)<<s.bs)
					p.Data[2*outIdx] = byte(v)
					p.Data[2*outIdx+1] = byte(v >> 8)
				} else {
					cur := int(p.Data[outIdx])
					v := clampInt(cur+int(g), int(iMin), int(iMax))
					p.Data[outIdx] = byte(v)
				}
			}
		}

		if flush == 0 {
			for i := 0; i < blockW; i++ {
				s.grain[c][i] = s.grain[c][blockW+i]
				s.scale[c][i] = s.scale[c][blockW+i]
			}
		}

		if x+16 >= width {
			flush++
			x += 16
		}
		if flush != 1 {
			break
		}
	}

	return nil
}
