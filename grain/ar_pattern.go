/*
DESCRIPTION
  ar_pattern.go implements the auto-regressive grain pattern generator: a
  padded buffer is filled by a causal 2D recursion driven by Gaussian noise,
  optionally injecting a cross-component term sampled from a previously
  generated luma buffer, then cropped and left-aligned into the exported
  pattern.

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

// arBuffer is a padded auto-regressive working buffer, dense row-major.
type arBuffer struct {
	data          []int8
	width, height int
}

func newARBuffer(width, height int) *arBuffer {
	return &arBuffer{data: make([]int8, width*height), width: width, height: height}
}

func (b *arBuffer) at(y, x int) int8 { return b.data[b.width*y+x] }
func (b *arBuffer) set(y, x int, v int8) {
	b.data[b.width*y+x] = v
}

// arLag derives the causal support radius, and whether a cross-component
// coefficient is present, from the coefficient vector length, per spec.md
// 4.3: 4/12/24 coefficients carry no cross-component term; 5/13/25 append
// it as the last element. The cx result is always 0; buildCoefficientTable
// reads the coefficient's value.
func arLag(nbCoef int) (lag int, cx int16, crossComponent bool, ok bool) {
	switch nbCoef {
	case 6:
		return 2, 0, false, true // SEI-AR fixed 6-position layout
	case 4:
		return 1, 0, false, true
	case 5:
		return 1, 0, true, true
	case 12:
		return 2, 0, false, true
	case 13:
		return 2, 0, true, true
	case 24:
		return 3, 0, false, true
	case 25:
		return 3, 0, true, true
	default:
		return 0, 0, false, false
	}
}

// buildCoefficientTable fills the 4x7 causal coefficient table coef[3+j][3+i]
// from the coefficient vector, per spec.md 4.3.
func buildCoefficientTable(ar []int16, nbCoef, lag int) (coef [4][7]int16, cx int16) {
	if nbCoef == 6 {
		coef[3][2] = ar[1] // left
		coef[2][3] = ar[1] // top
		coef[2][2] = ar[3] // top-left
		coef[2][4] = ar[3] // top-right
		coef[3][1] = ar[5] // left-left
		coef[1][3] = ar[5] // top-top
		return coef, 0
	}

	k := 0
	for j := -lag; j <= 0; j++ {
		for i := -lag; i <= lag && (i < 0 || j < 0); i++ {
			coef[3+j][3+i] = ar[k]
			k++
		}
	}
	if k < len(ar) {
		cx = ar[k]
	}
	return coef, cx
}

// arGeometry returns the padded buffer dimensions and crop origin for a
// luma (size=64) or chroma (size=32) auto-regressive pattern. The padded
// buffer's own subsampling (subx, suby) always follows the 2x2 geometry
// for the chroma case, matching the reference firmware, independent of the
// frame's actual configured chroma subsampling.
func arGeometry(size int) (width, height, subx, suby int) {
	if size == 32 {
		return 44, 38, 2, 2
	}
	return 82, 73, 1, 1
}

// makeARPattern runs the causal AR recursion and returns the cropped,
// left-aligned dense pattern (size x size, flattened row-major, stride
// size). buf0 is the padded cross-component source buffer (typically the
// luma buffer already generated for this frame's configuration); it may be
// nil when no cross-component term is used.
func makeARPattern(buf0 *arBuffer, size int, arCoef []int16, nbCoef, shift, scale int, seed uint32) (pattern []int8, buf *arBuffer) {
	lag, _, hasCx, ok := arLag(nbCoef)
	if !ok {
		return nil, nil
	}
	coef, cx := buildCoefficientTable(arCoef, nbCoef, lag)
	if !hasCx {
		cx = 0
	}

	width, height, subx, suby := arGeometry(size)
	buf = newARBuffer(width, height)
	rnd := prngState(seed)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var g int32
			if y >= 3 && x >= 3 && x < width-3 {
				for j := -3; j <= 0; j++ {
					for i := -3; i <= 3 && (i < 0 || j < 0); i++ {
						g += int32(coef[3+j][3+i]) * int32(buf.at(y+j, x+i))
					}
				}

				if cx != 0 && buf0 != nil {
					i := (x-3)*subx + 3
					j := (y-3)*suby + 3
					z := int32(buf0.at(j, i))
					if subx > 1 {
						z += int32(buf0.at(j, i+1))
					}
					if suby > 1 {
						z += int32(buf0.at(j+1, i)) + int32(buf0.at(j+1, i+1))
					}
					g += int32(cx) * roundShift(z, uint(subx+suby-2))
				}

				g = roundShift(g, uint(scale))
			}

			g += int32(roundShift(int32(rnd.gaussian()), uint(shift)))
			rnd = rnd.next()

			buf.set(y, x, clipGrain(g))
		}
	}

	cropRows, cropCols := 64/suby, 64/subx
	originY := 3 + 6/suby
	originX := 3 + 6/subx
	pattern = make([]int8, size*size)
	for y := 0; y < cropRows && y < size; y++ {
		for x := 0; x < cropCols && x < size; x++ {
			pattern[size*y+x] = buf.at(originY+y, originX+x)
		}
	}
	return pattern, buf
}

// roundShift implements the reference round(a,s) macro: arithmetic
// round-to-nearest right shift by s, s >= 1.
func roundShift(a int32, s uint) int32 {
	return (a + (1 << (s - 1))) >> s
}

// makeARPattern64 is the luma convenience wrapper, returning the padded
// buffer alongside the dense 64x64 pattern so it can serve as a
// cross-component source for chroma generation.
func makeARPattern64(arCoef []int16, nbCoef, shift, scale int, seed uint32) (*[64][64]int8, *arBuffer) {
	flat, buf := makeARPattern(nil, 64, arCoef, nbCoef, shift, scale, seed)
	var out [64][64]int8
	for y := 0; y < 64; y++ {
		copy(out[y][:], flat[64*y:64*y+64])
	}
	return &out, buf
}

// makeARPattern32 is the chroma convenience wrapper.
func makeARPattern32(buf0 *arBuffer, arCoef []int16, nbCoef, shift, scale int, seed uint32) *[32][32]int8 {
	flat, _ := makeARPattern(buf0, 32, arCoef, nbCoef, shift, scale, seed)
	var out [32][32]int8
	for y := 0; y < 32; y++ {
		copy(out[y][:], flat[32*y:32*y+32])
	}
	return &out
}
