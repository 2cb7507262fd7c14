/*
DESCRIPTION
  compositor_test.go exercises AddGrainLine end-to-end over a synthetic
  flat-grey frame: output stays within the configured legal range, and
  a zero scale LUT leaves the luma plane completely unchanged (the identity
  invariant every scale/pattern combination must satisfy).

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

func newTestFrame(width, height int) *Frame {
	cw, ch := width/2, height/2
	return &Frame{
		Y: Plane{Data: make([]byte, width*height), Width: width, Height: height, Stride: width},
		U: Plane{Data: make([]byte, cw*ch), Width: cw, Height: ch, Stride: cw},
		V: Plane{Data: make([]byte, cw*ch), Width: cw, Height: ch, Stride: cw},
	}
}

func fillPlane(p *Plane, v byte) {
	for i := range p.Data {
		p.Data[i] = v
	}
}

func TestAddGrainLineZeroScaleIsIdentity(t *testing.T) {
	s, err := NewSynthesizer(nil)
	if err != nil {
		t.Fatalf("NewSynthesizer: %v", err)
	}
	var fh [64][64]int8
	for i := range fh {
		for j := range fh[i] {
			fh[i][j] = 100 // nonzero pattern, but scale LUT is all-zero
		}
	}
	if err := s.SetLumaPattern(0, &fh); err != nil {
		t.Fatalf("SetLumaPattern: %v", err)
	}

	width := 256
	f := newTestFrame(width, 32)
	fillPlane(&f.Y, 128)
	fillPlane(&f.U, 128)
	fillPlane(&f.V, 128)

	want := make([]byte, len(f.Y.Data))
	copy(want, f.Y.Data)

	for y := 0; y < 32; y++ {
		if err := s.AddGrainLine(f, y, width); err != nil {
			t.Fatalf("AddGrainLine(y=%d): %v", y, err)
		}
	}

	for i, v := range f.Y.Data {
		if v != want[i] {
			t.Fatalf("byte %d changed from %d to %d despite all-zero scale LUT", i, want[i], v)
			break
		}
	}
}

func TestAddGrainLineStaysInLegalRange(t *testing.T) {
	s, err := NewSynthesizer(nil)
	if err != nil {
		t.Fatalf("NewSynthesizer: %v", err)
	}
	s.SetLegalRange(true)

	var fh [64][64]int8
	for i := range fh {
		for j := range fh[i] {
			fh[i][j] = 127
		}
	}
	if err := s.SetLumaPattern(0, &fh); err != nil {
		t.Fatalf("SetLumaPattern: %v", err)
	}
	var scaleLUT [256]uint8
	for i := range scaleLUT {
		scaleLUT[i] = 255
	}
	if err := s.SetScaleLUT(ComponentY, &scaleLUT); err != nil {
		t.Fatalf("SetScaleLUT: %v", err)
	}

	width := 256
	f := newTestFrame(width, 32)
	fillPlane(&f.Y, 16) // at the legal-range floor, so negative grain would underflow if unclamped
	fillPlane(&f.U, 128)
	fillPlane(&f.V, 128)

	for y := 0; y < 32; y++ {
		if err := s.AddGrainLine(f, y, width); err != nil {
			t.Fatalf("AddGrainLine(y=%d): %v", y, err)
		}
	}

	for i, v := range f.Y.Data {
		if v < 16 || v > 235 {
			t.Fatalf("Y sample %d = %d outside legal range [16,235]", i, v)
		}
	}
}

func TestAddGrainLineRejectsNarrowFrame(t *testing.T) {
	s, _ := NewSynthesizer(nil)
	f := newTestFrame(64, 16)
	if err := s.AddGrainLine(f, 0, 64); err != ErrFrameTooNarrow {
		t.Fatalf("AddGrainLine on 64-wide frame = %v, want ErrFrameTooNarrow", err)
	}
}
