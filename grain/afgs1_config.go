/*
DESCRIPTION
  afgs1_config.go maps an AOM Film Grain Synthesis (AFGS1 / ITU-T T.35)
  parameter set into Synthesizer state: piecewise-linear scale LUTs built
  from control points, and auto-regressive luma/chroma pattern generation
  with cross-component injection.

  Cb and Cr share the same physical chroma pattern bank as every other
  model in this package: the Cb pattern always occupies bank index 0 and
  Cr always occupies index 1. Cb's pattern LUT is all-zero (selects index
  0); Cr's pattern LUT is the literal byte 1 everywhere, which, after the
  compositor's >>4 index extraction, also resolves to index 0 — the
  reference firmware never shifts Cr's LUT byte into the index field, so
  Cr always renders Cb's pattern in practice. This is a preserved quirk of
  the source firmware, not a defect introduced here.

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

// AFGS1Config holds the subset of the AOM film grain synthesis parameter
// set this synthesizer consumes, using the field names of the AV1 film
// grain params syntax.
type AFGS1Config struct {
	GrainSeed uint16

	NumYPoints    int
	PointYValue   [14]uint8
	PointYScaling [14]uint8

	NumCbPoints    int
	PointCbValue   [10]uint8
	PointCbScaling [10]uint8

	NumCrPoints    int
	PointCrValue   [10]uint8
	PointCrScaling [10]uint8

	ChromaScalingFromLuma bool

	// GrainScaling sets the output scale shift (scaleShift = GrainScaling-6).
	GrainScaling int

	ARCoeffLag   int
	ARCoeffsY    []int16
	ARCoeffsCb   []int16
	ARCoeffsCr   []int16
	ARCoeffShift int

	// GrainScaleShift sets the noise amplitude shift applied during pattern
	// generation (distinct from GrainScaling, which scales the composited
	// output). The reference table's Gaussian sigma already absorbs 3 of
	// the shifts the AV1 spec's own table would need, so this is used as
	// GrainScaleShift+1, not GrainScaleShift+4.
	GrainScaleShift int

	// CbMult through CrOffset, and OverlapFlag, complete the AV1 parameter
	// set; Configure does not read them.
	CbMult, CbLumaMult, CbOffset int16
	CrMult, CrLumaMult, CrOffset int16

	OverlapFlag           bool
	ClipToRestrictedRange bool
}

// Validate checks internal consistency of c without reference to a
// Synthesizer.
func (c *AFGS1Config) Validate() error {
	if c.NumYPoints < 0 || c.NumYPoints > 14 {
		return ErrIntervalOrder
	}
	if c.NumCbPoints < 0 || c.NumCbPoints > 10 || c.NumCrPoints < 0 || c.NumCrPoints > 10 {
		return ErrIntervalOrder
	}
	for i := 1; i < c.NumYPoints; i++ {
		if c.PointYValue[i] <= c.PointYValue[i-1] {
			return ErrIntervalOrder
		}
	}
	for i := 1; i < c.NumCbPoints; i++ {
		if c.PointCbValue[i] <= c.PointCbValue[i-1] {
			return ErrIntervalOrder
		}
	}
	for i := 1; i < c.NumCrPoints; i++ {
		if c.PointCrValue[i] <= c.PointCrValue[i-1] {
			return ErrIntervalOrder
		}
	}
	if c.ARCoeffLag < 1 || c.ARCoeffLag > 3 {
		return ErrInvalidCoefficientCount
	}
	return nil
}

// arCoefCount returns the coefficient count for the configured lag,
// including the cross-component slot every AFGS1 chroma coefficient set
// carries (unlike the SEI AR model, where it is optional).
func arCoefCount(lag int, crossComponent bool) int {
	var n int
	switch lag {
	case 1:
		n = 4
	case 2:
		n = 12
	case 3:
		n = 24
	default:
		return 0
	}
	if crossComponent {
		n++
	}
	return n
}

// Configure installs c into s: building the three scale LUTs (reusing the
// luma LUT for chroma when ChromaScalingFromLuma is set), generating the
// luma and shared chroma auto-regressive patterns with cross-component
// injection, and setting the seed, scale shift, and legal-range clip
// bounds, per spec.md 4.5. All fallible work happens against local
// staging values before anything is written to s, so a failed Configure
// leaves s in its last-good state.
func (c *AFGS1Config) Configure(s *Synthesizer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	noiseShift := c.GrainScaleShift + 1
	nb := arCoefCount(c.ARCoeffLag, false)
	if len(c.ARCoeffsY) < nb {
		return ErrInvalidCoefficientCount
	}
	nbc := arCoefCount(c.ARCoeffLag, true)
	if len(c.ARCoeffsCb) < nbc || len(c.ARCoeffsCr) < nbc {
		return ErrInvalidCoefficientCount
	}

	bank := s.bank
	luma, lumaBuf := makeARPattern64(c.ARCoeffsY[:nb], nb, noiseShift, c.ARCoeffShift, uint32(newPRNG(0)))
	if err := bank.setLuma(0, luma); err != nil {
		return err
	}
	cb := makeARPattern32(lumaBuf, c.ARCoeffsCb[:nbc], nbc, noiseShift, c.ARCoeffShift, uint32(newPRNG(1)))
	if err := bank.setChroma(0, cb, 64/s.csuby, 64/s.csubx); err != nil {
		return err
	}
	cr := makeARPattern32(lumaBuf, c.ARCoeffsCr[:nbc], nbc, noiseShift, c.ARCoeffShift, uint32(newPRNG(2)))
	if err := bank.setChroma(1, cr, 64/s.csuby, 64/s.csubx); err != nil {
		return err
	}

	lumaScaleLUT := makeLUTPiecewiseLinear(c.PointYValue[:c.NumYPoints], c.PointYScaling[:c.NumYPoints], c.NumYPoints)
	cbScaleLUT, crScaleLUT := lumaScaleLUT, lumaScaleLUT
	if !c.ChromaScalingFromLuma {
		cbScaleLUT = makeLUTPiecewiseLinear(c.PointCbValue[:c.NumCbPoints], c.PointCbScaling[:c.NumCbPoints], c.NumCbPoints)
		crScaleLUT = makeLUTPiecewiseLinear(c.PointCrValue[:c.NumCrPoints], c.PointCrScaling[:c.NumCrPoints], c.NumCrPoints)
	}

	var crPatternLUT [256]uint8
	for i := range crPatternLUT {
		crPatternLUT[i] = 1
	}

	// Every fallible step above has succeeded; commit the staged bank,
	// LUTs, seed, scale shift, and legal-range bounds to s.
	s.bank = bank
	s.scaleLUT[ComponentY] = lumaScaleLUT
	s.scaleLUT[ComponentCb] = cbScaleLUT
	s.scaleLUT[ComponentCr] = crScaleLUT
	s.patternLUT[ComponentY] = [256]uint8{}
	s.patternLUT[ComponentCb] = [256]uint8{}
	s.patternLUT[ComponentCr] = crPatternLUT
	s.SetSeed(uint32(c.GrainSeed) | uint32(c.GrainSeed)<<16)
	s.scaleShift = uint8(c.GrainScaling-6) + 6 - s.bs
	s.SetLegalRange(c.ClipToRestrictedRange)

	return nil
}
