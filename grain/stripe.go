/*
DESCRIPTION
  stripe.go implements the batch, whole-row-at-a-time grain compositor: up
  to 16+2 lines across the full image width are drawn from the pattern bank
  using one random offset per 16-wide column (reused across all lines of
  the stripe), vertically blended against the previous stripe's carried-over
  two rows, horizontally deblocked across the full stripe, and added to the
  frame in place.

  The reference firmware implements this path for luma only, leaving
  chroma as a TODO; this rewrite extends the same algorithm symmetrically
  to Cb and Cr, each working in its own subsampled coordinate space.

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

// stripeState carries the per-component working buffers and the 2-row
// overlap carry-over between successive AddGrainStripe calls on the same
// Synthesizer. A zero-value stripeState is ready to use for a frame's
// first stripe (y == 0).
type stripeState struct {
	overlap     [3][2][]int8 // carried-over top rows, per component
	overlapRows [3]int       // how many of the two slots above are valid
	hasPrior    [3]bool
}

func (s *Synthesizer) stripe() *stripeState {
	if s.stripeBuf == nil {
		s.stripeBuf = &stripeState{}
	}
	return s.stripeBuf
}

// AddGrainStripe composites grain onto up to 16 rows of f starting at row
// y, across width luma columns, computing up to 2 further rows as an
// overlap lookahead carried into the next stripe;
// stride is the luma plane's row stride, used only to validate width
// against it. Each plane is addressed by its own Plane.Stride, not by
// stride/subsampling arithmetic, since chroma storage is not guaranteed
// to be a clean subsampled fraction of the luma stride. Stripes must be
// processed in increasing y order, each starting where the previous
// one's 16-row output ended; y must be a multiple of 16.
func (s *Synthesizer) AddGrainStripe(f *Frame, y, width, height, stride int) error {
	if f.Y.Data == nil {
		return ErrNilFrame
	}
	if width <= 128 || width > stride {
		return ErrFrameTooNarrow
	}
	if y&0xf != 0 {
		return ErrFrameTooNarrow
	}

	blocks := (width + 15) / 16
	offsets := make([][3]blockOffset, blocks)
	for bx := 0; bx < blocks; bx++ {
		offsets[bx][ComponentY] = offsetY(s.rnd)
		offsets[bx][ComponentCb] = offsetU(s.rnd, s.csubx, s.csuby)
		offsets[bx][ComponentCr] = offsetV(s.rnd, s.csubx, s.csuby)
		s.rnd = uint32(prngState(s.rnd).next())
	}

	rows := height - y
	if rows > 18 {
		rows = 18
	}
	overlap := y > 0
	st := s.stripe()

	planes := [3]*Plane{&f.Y, &f.U, &f.V}
	for comp := 0; comp < 3; comp++ {
		if err := s.compositeStripePlane(st, comp, planes[comp], offsets, y, rows, width, overlap); err != nil {
			return err
		}
	}
	return nil
}

func (s *Synthesizer) compositeStripePlane(st *stripeState, comp int, p *Plane, offsets [][3]blockOffset, y, rows, width int, overlap bool) error {
	subx, suby := 1, 1
	iMin, iMax := s.yMin, s.yMax
	bank := &s.bank.Luma
	if comp != int(ComponentY) {
		subx, suby = s.csubx, s.csuby
		iMin, iMax = s.cMin, s.cMax
		bank = &s.bank.Chroma
	}

	compWidth := width / subx
	compRows := rows / suby
	if compRows == 0 {
		return nil
	}

	grainBuf := make([][]int8, compRows)
	scaleBuf := make([][]uint8, compRows)
	for r := range grainBuf {
		grainBuf[r] = make([]int8, compWidth)
		scaleBuf[r] = make([]uint8, compWidth)
	}

	for r := 0; r < compRows; r++ {
		rowOffset := (y/suby + r) * p.Stride
		for bx := 0; bx*16/subx < compWidth; bx++ {
			off := offsets[bx][comp]
			for i := 0; i < 16/subx && bx*16/subx+i < compWidth; i++ {
				idx := bx*16/subx + i
				var intensity uint8
				if s.bs != 0 {
					lo := p.Data[2*(rowOffset+idx)]
					hi := p.Data[2*(rowOffset+idx)+1]
					intensity = uint8((uint16(lo) | uint16(hi)<<8) >> s.bs)
				} else {
					intensity = p.Data[rowOffset+idx]
				}
				pi := s.patternLUT[comp][intensity] >> 4
				grainBuf[r][idx] = bank[pi][int(off.y)+r][int(off.x)+i] * int8(off.sign)
				scaleBuf[r][idx] = s.scaleLUT[comp][intensity]
			}
		}
	}

	if overlap && st.hasPrior[comp] {
		for r := 0; r < st.overlapRows[comp] && r < compRows; r++ {
			oc1, oc2 := uint8(12), uint8(24)
			if r == 1 {
				oc1, oc2 = 24, 12
			}
			prev := st.overlap[comp][r]
			for x := 0; x < compWidth && x < len(prev); x++ {
				g := roundShift(int32(oc1)*int32(grainBuf[r][x])+int32(oc2)*int32(prev[x]), 5)
				grainBuf[r][x] = int8(clampInt(int(g), -127, 127))
			}
		}
	}

	outRows := compRows
	if outRows > 16/suby {
		outRows = 16 / suby
	}

	// extraRows holds the lookahead rows beyond outRows that are available
	// to seed the next stripe's overlap merge. For luma (suby=1) this is
	// the usual 2-row lookahead; for subsampled chroma the 18-row luma
	// lookahead maps to fewer than 2 chroma rows, so fewer are carried.
	extraRows := compRows - outRows
	if extraRows > 2 {
		extraRows = 2
	}
	if extraRows > 0 {
		for r := 0; r < extraRows; r++ {
			cp := make([]int8, compWidth)
			copy(cp, grainBuf[outRows+r])
			st.overlap[comp][r] = cp
		}
		st.overlapRows[comp] = extraRows
		st.hasPrior[comp] = true
	}

	deblockRows := compRows
	if deblockRows > 16 {
		deblockRows = 16
	}
	for r := 0; r < deblockRows; r++ {
		for x := 16 / subx; x < compWidth; x += 16 / subx {
			if x+1 >= compWidth {
				break
			}
			l1, l0 := grainBuf[r][x-2], grainBuf[r][x-1]
			r0, r1 := grainBuf[r][x+0], grainBuf[r][x+1]
			left := roundShift(int32(l1)+3*int32(l0)+int32(r0), 2)
			right := roundShift(int32(l0)+3*int32(r0)+int32(r1), 2)
			grainBuf[r][x-1] = int8(clampInt(int(left), -127, 127))
			grainBuf[r][x+0] = int8(clampInt(int(right), -127, 127))
		}
	}
	for r := 0; r < outRows; r++ {
		rowOffset := (y/suby + r) * p.Stride
		for x := 0; x < compWidth; x++ {
			g := roundShift(int32(scaleBuf[r][x])*int32(grainBuf[r][x]), uint(s.scaleShift))
			idx := rowOffset + x
			if s.bs != 0 {
				cur := int(uint16(p.Data[2*idx]) | uint16(p.Data[2*idx+1])<<8)
				v := clampInt(cur+int(g), int(iMin)<<s.bs, int(iMax)<<s.bs)
				p.Data[2*idx] = byte(v)
				p.Data[2*idx+1] = byte(v >> 8)
			} else {
				cur := int(p.Data[idx])
				v := clampInt(cur+int(g), int(iMin), int(iMax))
				p.Data[idx] = byte(v)
			}
		}
	}

	return nil
}
