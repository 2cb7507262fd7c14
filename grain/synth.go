/*
DESCRIPTION
  synth.go defines Synthesizer, the process-wide mutable state the original
  firmware keeps as C file-scope statics: pattern bank, per-component LUTs,
  scale shift, bit-depth shift, legal-range clip bounds, chroma subsampling,
  and the PRNG registers used by the compositor. Bundling this state in a
  struct (rather than package globals) lets callers run independent
  Synthesizers concurrently, and lets Clone support parallel stripe
  processing.

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

import "github.com/ausocean/utils/logging"

// debugAssertions names the switch for internal invariant checks in the
// style of the original firmware's assert() calls. No code in this package
// reads it: the compositors run without runtime invariant checks.
const debugAssertions = true

// Synthesizer owns all state needed to composite film grain onto frames:
// the retained pattern bank, per-component scale/pattern LUTs, PRNG
// registers, and the scale/depth/range/subsampling parameters the
// compositor consults on every block.
//
// A Synthesizer is not safe for concurrent use by multiple goroutines.
// Use Clone to derive an independent copy for parallel stripe processing;
// each clone must be seeded and advanced in lockstep with the others to
// reproduce the same bit-identical output a single-threaded pass would
// produce (see AddGrainStripe).
type Synthesizer struct {
	log logging.Logger

	bank PatternBank

	scaleLUT   [3][256]uint8
	patternLUT [3][256]uint8

	rnd, rndUp         uint32
	lineRnd, lineRndUp uint32

	scaleShift uint8
	bs         uint8 // bit-depth shift: depth - 8

	yMin, yMax uint8
	cMin, cMax uint8

	csubx, csuby int

	// pipeline registers, reused across AddGrainLine calls within one line
	grain [3][32]int16
	scale [3][32]uint8

	// stripeBuf carries the 2-row vertical overlap between successive
	// AddGrainStripe calls; nil until the first stripe is processed.
	stripeBuf *stripeState
}

// Option configures a Synthesizer at construction time.
type Option func(*Synthesizer) error

// WithSeed sets the initial PRNG seed.
func WithSeed(seed uint32) Option {
	return func(s *Synthesizer) error {
		s.SetSeed(seed)
		return nil
	}
}

// WithChromaSubsampling sets the chroma subsampling factors.
func WithChromaSubsampling(subx, suby int) Option {
	return func(s *Synthesizer) error {
		return s.SetChromaSubsampling(subx, suby)
	}
}

// NewSynthesizer returns a Synthesizer with default 8-bit, full-range,
// 4:2:0 state, ready for a Configure call. log may be nil, in which case
// logging is discarded.
func NewSynthesizer(log logging.Logger, options ...Option) (*Synthesizer, error) {
	if log == nil {
		log = discardLogger{}
	}
	s := &Synthesizer{
		log:        log,
		rnd:        0xdeadbeef,
		rndUp:      0xdeadbeef,
		lineRnd:    0xdeadbeef,
		lineRndUp:  0xdeadbeef,
		scaleShift: 5 + 6,
		yMax:       255,
		cMax:       255,
		csubx:      2,
		csuby:      2,
	}
	for _, opt := range options {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	log.Debug("synthesizer created", "scaleShift", s.scaleShift, "csubx", s.csubx, "csuby", s.csuby)
	return s, nil
}

// Clone returns an independent copy of s, suitable for driving a parallel
// stripe from a separate goroutine. The clone starts with the same PRNG
// registers and configuration as s at the moment Clone is called; callers
// must advance each clone's registers to the correct per-stripe lockstep
// state themselves (see spec's concurrency model) before processing a
// stripe that is not the first.
func (s *Synthesizer) Clone() *Synthesizer {
	clone := *s
	clone.stripeBuf = nil
	return &clone
}

// SetSeed sets the PRNG seed, resetting all four registers (current, upper,
// and their line-start snapshots) to the same value.
func (s *Synthesizer) SetSeed(seed uint32) {
	s.rnd, s.rndUp, s.lineRnd, s.lineRndUp = seed, seed, seed, seed
}

// SetDepth sets the pixel bit depth, adjusting the scale shift to hold
// scaleShift+bs within its valid range.
func (s *Synthesizer) SetDepth(depth BitDepth) error {
	if depth != Depth8 && depth != Depth10 {
		return ErrInvalidDepth
	}
	bs := uint8(0)
	if depth == Depth10 {
		bs = 2
	}
	if s.bs == 0 && bs > 0 {
		s.scaleShift -= 2
	}
	if s.bs > 0 && bs == 0 {
		s.scaleShift += 2
	}
	s.bs = bs
	return nil
}

// SetChromaSubsampling sets the chroma subsampling factors; both must be 1
// or 2.
func (s *Synthesizer) SetChromaSubsampling(subx, suby int) error {
	if subx != 1 && subx != 2 {
		return ErrInvalidSubsampling
	}
	if suby != 1 && suby != 2 {
		return ErrInvalidSubsampling
	}
	s.csubx, s.csuby = subx, suby
	return nil
}

// SetScaleShift sets the global scale shift (before depth adjustment),
// matching the original's shift+6-bs convention.
func (s *Synthesizer) SetScaleShift(shift int) error {
	if shift < 2 || shift >= 8 {
		return ErrInvalidScaleShift
	}
	s.scaleShift = uint8(shift) + 6 - s.bs
	return nil
}

// SetLegalRange selects legal (studio) or full-range clip bounds for luma
// and chroma.
func (s *Synthesizer) SetLegalRange(legal bool) {
	if legal {
		s.yMin, s.yMax = 16, 235
		s.cMin, s.cMax = 16, 240
		return
	}
	s.yMin, s.yMax = 0, 255
	s.cMin, s.cMax = 0, 255
}

// SetLumaPattern installs a 64x64 luma pattern at index.
func (s *Synthesizer) SetLumaPattern(index int, block *[64][64]int8) error {
	return s.bank.setLuma(index, block)
}

// SetChromaPattern installs a dense 32x32 chroma pattern at index, expanded
// to the current chroma subsampling extent.
func (s *Synthesizer) SetChromaPattern(index int, block *[32][32]int8) error {
	rows, cols := 64/s.csuby, 64/s.csubx
	return s.bank.setChroma(index, block, rows, cols)
}

// SetScaleLUT installs the 256-entry scale LUT for component c.
func (s *Synthesizer) SetScaleLUT(c Component, lut *[256]uint8) error {
	if !c.valid() {
		return ErrInvalidComponent
	}
	s.scaleLUT[c] = *lut
	return nil
}

// SetPatternLUT installs the 256-entry pattern LUT for component c.
func (s *Synthesizer) SetPatternLUT(c Component, lut *[256]uint8) error {
	if !c.valid() {
		return ErrInvalidComponent
	}
	s.patternLUT[c] = *lut
	return nil
}
