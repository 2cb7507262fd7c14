/*
DESCRIPTION
  types.go defines the public data model: bit depth, chroma format, model
  selection, component indices, and the frame/plane buffers the compositor
  reads and writes in place.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package grain synthesizes and composites film grain onto decoded YUV video
// frames, implementing both the ITU-T/MPEG Film Grain Characteristics SEI
// model (frequency-filtering and auto-regressive variants) and the AOM
// AFGS1 (ITU-T T.35) auto-regressive model.
//
// The package does not read or write files, parse command-line arguments,
// or parse configuration files; callers supply fully-populated SEIConfig or
// AFGS1Config values and already-allocated Frame planes.
package grain

// BitDepth is a supported pixel bit depth.
type BitDepth int

const (
	Depth8  BitDepth = 8
	Depth10 BitDepth = 10
)

// ChromaFormat names a supported chroma subsampling scheme.
type ChromaFormat int

const (
	Chroma420 ChromaFormat = iota
	Chroma422
	Chroma444
)

// SubsamplingFactors returns the (subx, suby) factors for the format.
func (f ChromaFormat) SubsamplingFactors() (subx, suby int) {
	switch f {
	case Chroma420:
		return 2, 2
	case Chroma422:
		return 2, 1
	case Chroma444:
		return 1, 1
	default:
		return 2, 2
	}
}

// ModelID selects the grain pattern generation model.
type ModelID int

const (
	ModelFF ModelID = iota // frequency-filtering (sparse inverse DCT)
	ModelAR                // auto-regressive (causal recursion)
)

// Component names one of the three planes a Synthesizer tracks state for.
type Component int

const (
	ComponentY Component = iota
	ComponentCb
	ComponentCr
)

func (c Component) valid() bool {
	return c == ComponentY || c == ComponentCb || c == ComponentCr
}

// MaxPatterns is the maximum number of distinct grain patterns retained per
// component bank.
const MaxPatterns = 8

// Plane is one 8-bit or 10-bit sample plane of a video frame. 10-bit samples
// are stored as little-endian uint16 pairs within Data. Stride is measured
// in samples, not bytes, and may exceed Width to allow for padding.
type Plane struct {
	Data   []byte
	Width  int
	Height int
	Stride int
}

// Frame is a YUV frame with already-allocated, already-padded planes. The
// grain package never allocates or resizes a Frame's planes.
type Frame struct {
	Y, U, V Plane
}
