/*
DESCRIPTION
  synth_test.go checks Synthesizer construction, control-surface setter
  validation, and Clone's independence from its source.

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

func TestNewSynthesizerDefaults(t *testing.T) {
	s, err := NewSynthesizer(nil)
	if err != nil {
		t.Fatalf("NewSynthesizer: %v", err)
	}
	if s.csubx != 2 || s.csuby != 2 {
		t.Errorf("default chroma subsampling = (%d,%d), want (2,2)", s.csubx, s.csuby)
	}
	if s.yMax != 255 || s.cMax != 255 {
		t.Errorf("default range not full-range: yMax=%d cMax=%d", s.yMax, s.cMax)
	}
}

func TestSetDepthRejectsInvalid(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	if err := s.SetDepth(BitDepth(9)); err != ErrInvalidDepth {
		t.Fatalf("SetDepth(9) = %v, want ErrInvalidDepth", err)
	}
}

func TestSetChromaSubsamplingRejectsInvalid(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	if err := s.SetChromaSubsampling(3, 2); err != ErrInvalidSubsampling {
		t.Fatalf("SetChromaSubsampling(3,2) = %v, want ErrInvalidSubsampling", err)
	}
}

func TestSetScaleShiftRejectsOutOfRange(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	if err := s.SetScaleShift(1); err != ErrInvalidScaleShift {
		t.Fatalf("SetScaleShift(1) = %v, want ErrInvalidScaleShift", err)
	}
	if err := s.SetScaleShift(8); err != ErrInvalidScaleShift {
		t.Fatalf("SetScaleShift(8) = %v, want ErrInvalidScaleShift", err)
	}
	if err := s.SetScaleShift(5); err != nil {
		t.Fatalf("SetScaleShift(5) = %v, want nil", err)
	}
}

func TestSetLegalRangeBounds(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	s.SetLegalRange(true)
	if s.yMin != 16 || s.yMax != 235 || s.cMin != 16 || s.cMax != 240 {
		t.Fatalf("legal range bounds wrong: yMin=%d yMax=%d cMin=%d cMax=%d", s.yMin, s.yMax, s.cMin, s.cMax)
	}
	s.SetLegalRange(false)
	if s.yMin != 0 || s.yMax != 255 {
		t.Fatalf("full range bounds wrong: yMin=%d yMax=%d", s.yMin, s.yMax)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	clone := s.Clone()
	clone.SetSeed(0x1)
	if s.rnd == clone.rnd {
		t.Fatalf("mutating clone's seed affected the original")
	}
}

func TestSetLumaPatternIndexBounds(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	var block [64][64]int8
	if err := s.SetLumaPattern(MaxPatterns, &block); err != ErrPatternIndexOutOfRange {
		t.Fatalf("SetLumaPattern(MaxPatterns,...) = %v, want ErrPatternIndexOutOfRange", err)
	}
	if err := s.SetLumaPattern(0, &block); err != nil {
		t.Fatalf("SetLumaPattern(0,...) = %v, want nil", err)
	}
}
