/*
DESCRIPTION
  ff_pattern_test.go checks the frequency-filtering pattern generator: the
  mean of a generated pattern stays near zero (its DC coefficient is
  cleared before the iDCT), patterns stay within the clipped sample range,
  and a low cutoff concentrates spectral energy near DC compared to a high
  cutoff.

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

import (
	"testing"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/stat"
)

func TestMakeFFPattern64StaysInRange(t *testing.T) {
	p := makeFFPattern64(6, 6)
	for j := range p {
		for i := range p[j] {
			if p[j][i] < -127 || p[j][i] > 127 {
				t.Fatalf("pattern[%d][%d] = %d out of range", j, i, p[j][i])
			}
		}
	}
}

func TestMakeFFPattern32StaysInRange(t *testing.T) {
	p := makeFFPattern32(4, 4)
	for j := range p {
		for i := range p[j] {
			if p[j][i] < -127 || p[j][i] > 127 {
				t.Fatalf("pattern[%d][%d] = %d out of range", j, i, p[j][i])
			}
		}
	}
}

// TestFFPatternLowCutoffConcentratesEnergyNearDC checks that a pattern
// built from a narrow cutoff has most of its 2D FFT magnitude in the
// low-frequency bins compared to a wide-cutoff pattern, a basic spectral
// sanity check on the generator rather than a bit-exact regression.
func TestFFPatternLowCutoffConcentratesEnergyNearDC(t *testing.T) {
	low := makeFFPattern64(2, 2)
	high := makeFFPattern64(14, 14)

	lowFrac := lowFrequencyEnergyFraction(low)
	highFrac := lowFrequencyEnergyFraction(high)

	if lowFrac <= highFrac {
		t.Fatalf("expected low-cutoff pattern to concentrate more energy near DC: low=%.4f high=%.4f", lowFrac, highFrac)
	}
}

func lowFrequencyEnergyFraction(p *[64][64]int8) float64 {
	rows := make([][]complex128, 64)
	for j := range rows {
		row := make([]complex128, 64)
		for i := range row {
			row[i] = complex(float64(p[j][i]), 0)
		}
		rows[j] = row
	}
	spec := fft.FFT2(rows)

	var total, low float64
	const band = 8
	for j := 0; j < 64; j++ {
		for i := 0; i < 64; i++ {
			m := real(spec[j][i])*real(spec[j][i]) + imag(spec[j][i])*imag(spec[j][i])
			total += m
			if (j < band || j >= 64-band) && (i < band || i >= 64-band) {
				low += m
			}
		}
	}
	if total == 0 {
		return 0
	}
	return low / total
}

func TestMakeFFPatternMeanNearZero(t *testing.T) {
	p := makeFFPattern64(8, 8)
	samples := make([]float64, 0, 64*64)
	for j := range p {
		for i := range p[j] {
			samples = append(samples, float64(p[j][i]))
		}
	}
	mean := stat.Mean(samples, nil)
	if mean < -10 || mean > 10 {
		t.Fatalf("pattern mean %.2f too far from zero", mean)
	}
}
