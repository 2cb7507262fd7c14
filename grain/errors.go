/*
DESCRIPTION
  errors.go defines the sentinel errors returned by configuration validation
  and control-surface setters.

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

import "github.com/pkg/errors"

var (
	// ErrInvalidModelID is returned when a ModelID is neither ModelFF nor ModelAR.
	ErrInvalidModelID = errors.New("grain: invalid model id")

	// ErrCutoffOutOfRange is returned when a frequency-filtering cutoff
	// (fh or fv) falls outside [2,14].
	ErrCutoffOutOfRange = errors.New("grain: frequency cutoff out of range")

	// ErrIntervalOrder is returned when an intensity interval's lower bound
	// exceeds its upper bound, or intervals are not non-decreasing.
	ErrIntervalOrder = errors.New("grain: intensity interval out of order")

	// ErrColorGrainUnsupported names configurations that request
	// per-component grain characteristics this synthesizer cannot express.
	// No function in this package returns it: SEIConfig and AFGS1Config
	// accept chroma grain for every chroma subsampling and both SEI models.
	ErrColorGrainUnsupported = errors.New("grain: unsupported color grain configuration")

	// ErrFrameTooNarrow is returned when a frame's width is not large
	// enough for 16x16 block tiling. AddGrainStripe also returns it when
	// width exceeds the luma stride or y is not a multiple of 16.
	ErrFrameTooNarrow = errors.New("grain: frame narrower than minimum block width")

	// ErrInvalidDepth is returned when SetDepth receives anything but 8 or 10.
	ErrInvalidDepth = errors.New("grain: bit depth must be 8 or 10")

	// ErrInvalidSubsampling is returned when SetChromaSubsampling receives
	// factors outside {1,2}.
	ErrInvalidSubsampling = errors.New("grain: chroma subsampling factors must be 1 or 2")

	// ErrInvalidScaleShift is returned when a scale shift falls outside the
	// supported [2,8) range.
	ErrInvalidScaleShift = errors.New("grain: scale shift out of range")

	// ErrPatternIndexOutOfRange is returned when a pattern index is not in
	// [0, MaxPatterns).
	ErrPatternIndexOutOfRange = errors.New("grain: pattern index out of range")

	// ErrInvalidComponent is returned when a Component value is not one of
	// ComponentY, ComponentCb, ComponentCr.
	ErrInvalidComponent = errors.New("grain: invalid component")

	// ErrInvalidCoefficientCount is returned when an AR coefficient slice's
	// length does not correspond to a supported lag.
	ErrInvalidCoefficientCount = errors.New("grain: unsupported AR coefficient count")

	// ErrNilFrame is returned when a Frame or a required Plane is missing
	// backing storage.
	ErrNilFrame = errors.New("grain: frame plane has no backing storage")
)
