/*
DESCRIPTION
  afgs1_config_test.go checks AFGS1Config validation, AR coefficient count
  derivation, and that Configure installs Cb/Cr AR patterns at bank indices
  0 and 1 while preserving the reference firmware's Cr pattern-LUT quirk
  (Cr's LUT byte is never shifted into the index field, so it also
  resolves to bank index 0 through the compositor's >>4 extraction).

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

import "testing"

func TestAFGS1ConfigValidateRejectsBadLag(t *testing.T) {
	c := &AFGS1Config{ARCoeffLag: 0}
	if err := c.Validate(); err != ErrInvalidCoefficientCount {
		t.Fatalf("Validate() = %v, want ErrInvalidCoefficientCount", err)
	}
	c.ARCoeffLag = 4
	if err := c.Validate(); err != ErrInvalidCoefficientCount {
		t.Fatalf("Validate() = %v, want ErrInvalidCoefficientCount", err)
	}
}

func TestAFGS1ConfigValidateRejectsUnsortedPoints(t *testing.T) {
	c := &AFGS1Config{ARCoeffLag: 1, NumYPoints: 2}
	c.PointYValue[0] = 10
	c.PointYValue[1] = 5 // not strictly increasing
	if err := c.Validate(); err != ErrIntervalOrder {
		t.Fatalf("Validate() = %v, want ErrIntervalOrder", err)
	}
}

func TestAFGS1ConfigValidateRejectsUnsortedChromaPoints(t *testing.T) {
	cb := &AFGS1Config{ARCoeffLag: 1, NumCbPoints: 2}
	cb.PointCbValue[0] = 10
	cb.PointCbValue[1] = 10 // equal, not strictly increasing
	if err := cb.Validate(); err != ErrIntervalOrder {
		t.Fatalf("Validate() (Cb) = %v, want ErrIntervalOrder", err)
	}

	cr := &AFGS1Config{ARCoeffLag: 1, NumCrPoints: 2}
	cr.PointCrValue[0] = 20
	cr.PointCrValue[1] = 5 // decreasing
	if err := cr.Validate(); err != ErrIntervalOrder {
		t.Fatalf("Validate() (Cr) = %v, want ErrIntervalOrder", err)
	}
}

// TestAFGS1ConfigureRejectsNonIncreasingChromaPointsInsteadOfPanicking
// guards the path makeLUTPiecewiseLinear would otherwise divide by zero
// on: Configure must reject via Validate before ever reaching it.
func TestAFGS1ConfigureRejectsNonIncreasingChromaPointsInsteadOfPanicking(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	c := newTestAFGS1Config()
	c.NumCbPoints = 2
	c.PointCbValue[0] = 50
	c.PointCbValue[1] = 50 // non-increasing
	if err := c.Configure(s); err != ErrIntervalOrder {
		t.Fatalf("Configure() = %v, want ErrIntervalOrder", err)
	}
}

func TestArCoefCount(t *testing.T) {
	cases := []struct {
		lag   int
		cross bool
		want  int
	}{
		{1, false, 4},
		{1, true, 5},
		{2, false, 12},
		{2, true, 13},
		{3, false, 24},
		{3, true, 25},
	}
	for _, c := range cases {
		if got := arCoefCount(c.lag, c.cross); got != c.want {
			t.Errorf("arCoefCount(%d,%v) = %d, want %d", c.lag, c.cross, got, c.want)
		}
	}
}

func newTestAFGS1Config() *AFGS1Config {
	return &AFGS1Config{
		GrainSeed:       0x1234,
		NumYPoints:      2,
		PointYValue:     [14]uint8{0, 255},
		PointYScaling:   [14]uint8{0, 100},
		ARCoeffLag:      1,
		ARCoeffsY:       []int16{1, -1, 2, -2},
		ARCoeffsCb:      []int16{1, 0, 0, 0, 3},
		ARCoeffsCr:      []int16{1, 0, 0, 0, -3},
		ARCoeffShift:    5,
		GrainScaleShift: 3,
		GrainScaling:    10,
	}
}

func TestAFGS1ConfigureInstallsChromaAtIndices0And1(t *testing.T) {
	s, err := NewSynthesizer(nil)
	if err != nil {
		t.Fatalf("NewSynthesizer: %v", err)
	}
	c := newTestAFGS1Config()
	if err := c.Configure(s); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	if s.bank.Chroma[0] == s.bank.Chroma[1] {
		t.Fatalf("Cb and Cr AR patterns are identical despite distinct coefficients")
	}

	// Cb's LUT is all-zero and Cr's is the literal byte 1; both resolve to
	// bank index 0 through the compositor's >>4 extraction, so Cr's own
	// pattern at index 1 is never actually selected in practice.
	if s.patternLUT[ComponentCb][200] != 0 {
		t.Fatalf("Cb pattern LUT byte = %d, want 0", s.patternLUT[ComponentCb][200])
	}
	if s.patternLUT[ComponentCr][200] != 1 {
		t.Fatalf("Cr pattern LUT byte = %d, want 1 (preserved literal-byte quirk)", s.patternLUT[ComponentCr][200])
	}
	if s.patternLUT[ComponentCr][200]>>4 != s.patternLUT[ComponentCb][200]>>4 {
		t.Fatalf("Cr pattern index (after >>4) does not collapse onto Cb's, contrary to the preserved firmware quirk")
	}
}

func TestAFGS1ConfigureRejectsShortCoefficients(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	c := newTestAFGS1Config()
	c.ARCoeffsY = []int16{1, 2} // too short for lag 1 (needs 4)
	if err := c.Configure(s); err != ErrInvalidCoefficientCount {
		t.Fatalf("Configure() = %v, want ErrInvalidCoefficientCount", err)
	}
}

func TestAFGS1ConfigureFailureLeavesSynthesizerUnchanged(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	good := newTestAFGS1Config()
	if err := good.Configure(s); err != nil {
		t.Fatalf("Configure (good): %v", err)
	}
	wantBank := s.bank
	wantScaleShift := s.scaleShift
	wantScaleLUT := s.scaleLUT

	bad := newTestAFGS1Config()
	bad.ARCoeffsCr = []int16{1} // too short, fails after the good config installed state
	if err := bad.Configure(s); err != ErrInvalidCoefficientCount {
		t.Fatalf("Configure (bad) = %v, want ErrInvalidCoefficientCount", err)
	}

	if s.bank != wantBank {
		t.Fatalf("failed Configure mutated the pattern bank")
	}
	if s.scaleShift != wantScaleShift {
		t.Fatalf("failed Configure mutated scaleShift: got %d, want %d", s.scaleShift, wantScaleShift)
	}
	if s.scaleLUT != wantScaleLUT {
		t.Fatalf("failed Configure mutated scaleLUT")
	}
}

func TestAFGS1ConfigureReusesLumaScaleLUTForChroma(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	c := newTestAFGS1Config()
	c.ChromaScalingFromLuma = true
	if err := c.Configure(s); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if s.scaleLUT[ComponentCb] != s.scaleLUT[ComponentY] || s.scaleLUT[ComponentCr] != s.scaleLUT[ComponentY] {
		t.Fatalf("ChromaScalingFromLuma did not make Cb/Cr scale LUTs identical to luma's")
	}
}
