/*
DESCRIPTION
  sei_config.go maps an ITU-T/MPEG Film Grain Characteristics SEI message
  into Synthesizer state: per-component scale LUTs (left at 0 outside the
  requested intervals, no hole-fill), pattern LUTs (hole-filled to the
  nearest preceding interval), and deduplicated, capped grain patterns
  generated via the frequency-filtering or auto-regressive model named by
  ModelID.

  Cb and Cr share one physical bank of up to MaxPatterns chroma patterns:
  the set of distinct patterns requested by either component is
  accumulated into a single deduplicated, capacity-capped list before
  generation, and each component's own pattern LUT indexes independently
  into that shared list.

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

// SEIConfig holds the subset of the Film Grain Characteristics SEI message
// this synthesizer consumes, using the field names of ITU-T H.274.
type SEIConfig struct {
	ModelID         ModelID
	Log2ScaleFactor int

	CompModelPresentFlag  [3]bool
	NumIntensityIntervals [3]int
	NumModelValues        [3]int

	IntensityIntervalLowerBound [3][256]uint8
	IntensityIntervalUpperBound [3][256]uint8

	// CompModelValue holds up to 6 values per interval: for ModelFF,
	// [1]=fh, [2]=fv; for ModelAR, [1]=coef1/x-comp, [2..]=further
	// coefficients, following the SEI syntax's own index layout (index 0
	// carries the scale value, not a pattern parameter).
	CompModelValue [3][256][6]int16
}

// Validate checks internal consistency of c without reference to a
// Synthesizer.
func (c *SEIConfig) Validate() error {
	if c.ModelID != ModelFF && c.ModelID != ModelAR {
		return ErrInvalidModelID
	}
	for comp := 0; comp < 3; comp++ {
		if !c.CompModelPresentFlag[comp] {
			continue
		}
		n := c.NumIntensityIntervals[comp]
		if n <= 0 || n > 256 {
			return ErrIntervalOrder
		}
		for i := 0; i < n; i++ {
			lo := c.IntensityIntervalLowerBound[comp][i]
			hi := c.IntensityIntervalUpperBound[comp][i]
			if lo > hi {
				return ErrIntervalOrder
			}
			if i > 0 && lo < c.IntensityIntervalUpperBound[comp][i-1] {
				return ErrIntervalOrder
			}
		}
		if c.ModelID == ModelFF {
			for i := 0; i < n; i++ {
				fh, fv := c.CompModelValue[comp][i][1], c.CompModelValue[comp][i][2]
				if fh < 2 || fh > 14 || fv < 2 || fv > 14 {
					return ErrCutoffOutOfRange
				}
			}
		}
	}
	return nil
}

// packPatternID packs an interval's pattern parameters into a single
// sortable, comparable value used for dedup, mirroring the reference
// firmware's (c1<<24)|(c3<<16)|(c5<<8)|c2 packing of comp_model_value
// indices [1],[3],[5] and [2].
func packPatternID(v [6]int16) uint32 {
	c1 := uint8(v[1])
	c2 := uint8(v[2])
	c3 := uint8(v[3])
	c5 := uint8(v[5])
	return uint32(c1)<<24 | uint32(c3)<<16 | uint32(c5)<<8 | uint32(c2)
}

// sortedPatternList accumulates distinct pattern ids across one or more
// components, sorted by the intensity at which each was first seen
// (matching the reference firmware's insertion-sorted patterns[] array),
// capped at MaxPatterns.
type sortedPatternList struct {
	ids         []uint32
	intensities []uint8
	full        bool
}

func (l *sortedPatternList) indexOf(id uint32) (int, bool) {
	for i, v := range l.ids {
		if v == id {
			return i, true
		}
	}
	return 0, false
}

// add inserts id (first observed at the given intensity) in sorted order if
// capacity remains, returning the pattern's current position in the list,
// whether it is new, and whether the insert succeeded at all. A request
// that cannot fit for lack of capacity returns ok=false. Positions are
// final only once every id has been added: inserting an id at a lower
// intensity shifts the ids after it.
func (l *sortedPatternList) add(id uint32, intensity uint8) (idx int, isNew, ok bool) {
	if i, found := l.indexOf(id); found {
		return i, false, true
	}
	if len(l.ids) >= MaxPatterns {
		l.full = true
		return 0, false, false
	}
	pos := len(l.ids)
	for pos > 0 && l.intensities[pos-1] > intensity {
		pos--
	}
	l.ids = append(l.ids, 0)
	l.intensities = append(l.intensities, 0)
	copy(l.ids[pos+1:], l.ids[pos:])
	copy(l.intensities[pos+1:], l.intensities[pos:])
	l.ids[pos] = id
	l.intensities[pos] = intensity
	return pos, true, true
}

// buildPatternLUT maps each intensity interval of one component onto
// indices already present in list, filling uncovered intensities via
// holeFill. Intervals whose id is absent from list (dropped for capacity)
// are left as holes.
func buildPatternLUT(c *SEIConfig, comp int, list *sortedPatternList) [256]uint8 {
	var lut [256]uint8
	for i := range lut {
		lut[i] = holeSentinel
	}
	if !c.CompModelPresentFlag[comp] {
		holeFill(&lut)
		return lut
	}
	for k := 0; k < c.NumIntensityIntervals[comp]; k++ {
		id := packPatternID(c.CompModelValue[comp][k])
		idx, found := list.indexOf(id)
		if !found {
			continue
		}
		lo, hi := c.IntensityIntervalLowerBound[comp][k], c.IntensityIntervalUpperBound[comp][k]
		for x := int(lo); x <= int(hi); x++ {
			lut[x] = uint8(idx) << 4
		}
	}
	holeFill(&lut)
	return lut
}

// buildScaleLUT maps each intensity interval of one component onto its
// comp_model_value[...][0] scale factor, per spec.md 4.4 step 4. Unlike
// buildPatternLUT, uncovered intensities are left at 0 rather than
// hole-filled, matching the reference firmware's slut construction
// (vfgs_fw.c's vfgs_init_sei, which never touches slut outside the
// requested intervals).
func buildScaleLUT(c *SEIConfig, comp int) [256]uint8 {
	var lut [256]uint8
	if !c.CompModelPresentFlag[comp] {
		return lut
	}
	for k := 0; k < c.NumIntensityIntervals[comp]; k++ {
		lo, hi := c.IntensityIntervalLowerBound[comp][k], c.IntensityIntervalUpperBound[comp][k]
		scale := uint8(c.CompModelValue[comp][k][0])
		for x := int(lo); x <= int(hi); x++ {
			lut[x] = scale
		}
	}
	return lut
}

// generatePattern materializes the grain pattern named by id using the
// parameters of the interval that first introduced it.
func (c *SEIConfig) generatePattern(id uint32, luma bool, buf0 *arBuffer) (luma64 *[64][64]int8, chroma32 *[32][32]int8, buf *arBuffer) {
	c1 := int16(id >> 24 & 0xff)
	c3 := int16(id >> 16 & 0xff)
	c5 := int16(id >> 8 & 0xff)
	c2 := int16(id & 0xff)

	if c.ModelID == ModelFF {
		fh, fv := int(c1), int(c2)
		if luma {
			return makeFFPattern64(fh, fv), nil, nil
		}
		return nil, makeFFPattern32(fh, fv), nil
	}

	coef := [6]int16{0, c1, c2, c3, 0, c5}
	shift := c.Log2ScaleFactor
	if luma {
		block, b := makeARPattern64(coef[:], 6, shift, 1, uint32(newPRNG(0)))
		return block, nil, b
	}
	block := makeARPattern32(buf0, coef[:], 6, shift, 1, uint32(newPRNG(1)))
	return nil, block, nil
}

// Configure installs c into s: building the per-component intensity LUTs
// and generating, deduplicating, and installing up to MaxPatterns grain
// patterns per spec.md 4.4. Patterns beyond MaxPatterns are dropped and
// logged at Warning. All fallible work happens against a local staging
// bank before anything is written to s, so a failed Configure leaves s in
// its last-good state.
func (c *SEIConfig) Configure(s *Synthesizer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	shift := c.Log2ScaleFactor
	if c.ModelID == ModelAR {
		shift--
	}
	if shift < 0 {
		return ErrInvalidScaleShift
	}

	bank := s.bank

	// Luma: independent bank, independent pattern list.
	lumaList := &sortedPatternList{}
	var lumaBuf *arBuffer
	if c.CompModelPresentFlag[ComponentY] {
		for k := 0; k < c.NumIntensityIntervals[ComponentY]; k++ {
			v := c.CompModelValue[ComponentY][k]
			id := packPatternID(v)
			idx, isNew, ok := lumaList.add(id, c.IntensityIntervalLowerBound[ComponentY][k])
			if !ok || !isNew {
				continue
			}
			block64, _, buf := c.generatePattern(id, true, nil)
			if block64 != nil {
				if err := bank.setLuma(idx, block64); err != nil {
					return err
				}
				if buf != nil {
					lumaBuf = buf
				}
			}
		}
	}
	lumaLUT := buildPatternLUT(c, int(ComponentY), lumaList)
	lumaScaleLUT := buildScaleLUT(c, int(ComponentY))

	// Chroma: Cb and Cr share one bank built from the union of both
	// components' distinct requested patterns, Cb scanned first.
	chromaList := &sortedPatternList{}
	for _, comp := range []int{int(ComponentCb), int(ComponentCr)} {
		if !c.CompModelPresentFlag[comp] {
			continue
		}
		for k := 0; k < c.NumIntensityIntervals[comp]; k++ {
			v := c.CompModelValue[comp][k]
			id := packPatternID(v)
			chromaList.add(id, c.IntensityIntervalLowerBound[comp][k])
		}
	}
	// Generate only once the shared list is complete: a Cr interval can sort
	// ahead of Cb's patterns and shift their indices.
	for idx, id := range chromaList.ids {
		_, block32, _ := c.generatePattern(id, false, lumaBuf)
		if block32 != nil {
			if err := bank.setChroma(idx, block32, 64/s.csuby, 64/s.csubx); err != nil {
				return err
			}
		}
	}
	cbLUT := buildPatternLUT(c, int(ComponentCb), chromaList)
	crLUT := buildPatternLUT(c, int(ComponentCr), chromaList)
	cbScaleLUT := buildScaleLUT(c, int(ComponentCb))
	crScaleLUT := buildScaleLUT(c, int(ComponentCr))

	// Every fallible step above has succeeded; commit the staged bank and
	// LUTs to s.
	s.bank = bank
	s.scaleShift = uint8(shift) + 6 - s.bs
	s.patternLUT[ComponentY] = lumaLUT
	s.patternLUT[ComponentCb] = cbLUT
	s.patternLUT[ComponentCr] = crLUT
	s.scaleLUT[ComponentY] = lumaScaleLUT
	s.scaleLUT[ComponentCb] = cbScaleLUT
	s.scaleLUT[ComponentCr] = crScaleLUT

	if lumaList.full {
		s.log.Warning("grain: SEI luma pattern count exceeds bank capacity, dropping extras", "capacity", MaxPatterns)
	}
	if chromaList.full {
		s.log.Warning("grain: SEI chroma pattern count exceeds shared bank capacity, dropping extras", "capacity", MaxPatterns)
	}

	return nil
}
