/*
DESCRIPTION
  types_test.go checks the small value-type helpers: chroma subsampling
  factor lookup and component validity.

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

func TestSubsamplingFactors(t *testing.T) {
	cases := []struct {
		f          ChromaFormat
		subx, suby int
	}{
		{Chroma420, 2, 2},
		{Chroma422, 2, 1},
		{Chroma444, 1, 1},
	}
	for _, c := range cases {
		subx, suby := c.f.SubsamplingFactors()
		if subx != c.subx || suby != c.suby {
			t.Errorf("%v.SubsamplingFactors() = (%d,%d), want (%d,%d)", c.f, subx, suby, c.subx, c.suby)
		}
	}
}

func TestComponentValid(t *testing.T) {
	for _, c := range []Component{ComponentY, ComponentCb, ComponentCr} {
		if !c.valid() {
			t.Errorf("Component(%d).valid() = false, want true", c)
		}
	}
	if Component(3).valid() {
		t.Errorf("Component(3).valid() = true, want false")
	}
}
