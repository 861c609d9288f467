// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"github.com/ik5/audfd/utils"
)

// Converter turns interleaved S16 PCM at one rate and channel layout into
// S16 PCM at another. Input is pushed in arbitrary-size chunks; converted
// output accumulates internally until pulled. Rate conversion uses cubic
// interpolation over a sliding frame window and applies a basic low-pass
// filter when downsampling. Channel conversion happens before rate
// conversion: mono duplicates into stereo, stereo passes through, wider
// layouts are averaged down first.
//
// When source and destination rates are equal the converter degenerates to a
// channel-layout copy, so matching layouts round-trip bit-exact.
type Converter struct {
	srcRate     int
	dstRate     int
	srcChannels int
	dstChannels int

	// ratio is srcRate / dstRate - how many source frames per output frame.
	ratio    float64
	sameRate bool

	// in holds channel-converted frames at the source rate. pos is the
	// interpolation cursor into it, in frames; frames the cursor has passed
	// are trimmed, keeping one frame of history for the cubic window.
	in  []int16
	pos float64

	// out is converted output waiting to be pulled.
	out []int16

	flushed bool

	// One-pole low-pass filter state for anti-aliasing (when downsampling).
	useFilter   bool
	filterAlpha float32
	filterState []float32
	primed      bool
}

// NewConverter creates a converter from (srcRate, srcChannels) to
// (dstRate, dstChannels). Destination layouts of 1 and 2 channels are
// supported.
func NewConverter(srcRate, srcChannels, dstRate, dstChannels int) (*Converter, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, ErrInvalidRate
	}
	if srcChannels < 1 || (dstChannels != 1 && dstChannels != 2) {
		return nil, ErrInvalidChannels
	}

	ratio := float64(srcRate) / float64(dstRate)

	// Enable simple low-pass filter when downsampling
	useFilter := ratio > 1.0
	var filterAlpha float32
	if useFilter {
		// Simple one-pole low-pass filter
		filterAlpha = 0.5
	}

	return &Converter{
		srcRate:     srcRate,
		dstRate:     dstRate,
		srcChannels: srcChannels,
		dstChannels: dstChannels,
		ratio:       ratio,
		sameRate:    srcRate == dstRate,
		in:          make([]int16, 0, 4096),
		out:         make([]int16, 0, 4096),
		useFilter:   useFilter,
		filterAlpha: filterAlpha,
		filterState: make([]float32, dstChannels),
	}, nil
}

// Push feeds source-format samples into the converter. The slice length must
// be a multiple of the source channel count.
func (c *Converter) Push(samples []int16) error {
	if len(samples)%c.srcChannels != 0 {
		return ErrInvalidSrcSize
	}
	if len(samples) == 0 {
		return nil
	}

	// A push after Flush starts a new logical segment that shares the
	// interpolation history.
	c.flushed = false

	if c.sameRate {
		c.out = c.appendConverted(c.out, samples)
		return nil
	}

	from := len(c.in)
	c.in = c.appendConverted(c.in, samples)
	if c.useFilter {
		c.lowpass(from)
	}
	c.convert()

	return nil
}

// Pull drains up to len(dst) converted samples and returns how many were
// copied. It may return less than len(dst) even when input has been pushed,
// because interpolation holds back a window of trailing frames until Flush.
func (c *Converter) Pull(dst []int16) int {
	n := copy(dst, c.out)
	c.out = c.out[:copy(c.out, c.out[n:])]
	return n
}

// Available reports how many converted samples can be pulled right now.
func (c *Converter) Available() int {
	return len(c.out)
}

// Flush marks the end of the current input segment. The held-back tail is
// converted using duplicated edge frames and becomes available to Pull.
func (c *Converter) Flush() {
	c.flushed = true
	if c.sameRate {
		return
	}
	c.convert()
}

// Clear discards all buffered input, output and filter state. The next Push
// starts from a clean cursor, as if the converter were newly created.
func (c *Converter) Clear() {
	c.in = c.in[:0]
	c.out = c.out[:0]
	c.pos = 0
	c.flushed = false
	c.primed = false
	for i := range c.filterState {
		c.filterState[i] = 0
	}
}

// appendConverted converts interleaved source frames to the destination
// channel layout and appends them to dst.
func (c *Converter) appendConverted(dst, samples []int16) []int16 {
	switch {
	case c.srcChannels == c.dstChannels:
		return append(dst, samples...)

	case c.srcChannels == 1 && c.dstChannels == 2:
		for _, s := range samples {
			dst = append(dst, s, s)
		}
		return dst

	case c.srcChannels == 2 && c.dstChannels == 1:
		frames := len(samples) / 2
		for f := range frames {
			idx := f << 1 // f * 2
			dst = append(dst, int16((int32(samples[idx])+int32(samples[idx+1]))/2))
		}
		return dst

	default:
		// Average each frame to mono, then widen to the target layout.
		frames := len(samples) / c.srcChannels
		for f := range frames {
			var sum int32
			base := f * c.srcChannels
			for ch := range c.srcChannels {
				sum += int32(samples[base+ch])
			}

			m := int16(sum / int32(c.srcChannels))
			dst = append(dst, m)
			if c.dstChannels == 2 {
				dst = append(dst, m)
			}
		}
		return dst
	}
}

// lowpass runs the one-pole filter over frames appended at index from.
// y[n] = alpha * x[n] + (1-alpha) * y[n-1], state initialized from the first
// frame to avoid warm-up transients.
func (c *Converter) lowpass(from int) {
	if !c.primed && len(c.in) > from {
		for ch := range c.dstChannels {
			c.filterState[ch] = float32(c.in[from+ch])
		}
		c.primed = true
	}

	for i := from; i < len(c.in); i += c.dstChannels {
		for ch := range c.dstChannels {
			y := c.filterAlpha*float32(c.in[i+ch]) + (1-c.filterAlpha)*c.filterState[ch]
			c.filterState[ch] = y
			c.in[i+ch] = utils.ClampToInt16(y)
		}
	}
}

// convert interpolates as many output frames as the buffered input allows
// and appends them to out. Until Flush, a window of trailing frames is held
// back so the cubic taps always see real data; after Flush the edge frames
// are duplicated instead.
func (c *Converter) convert() {
	frames := len(c.in) / c.dstChannels

	for {
		base := int(c.pos)

		if c.flushed {
			if base >= frames {
				break
			}
		} else if base+3 > frames {
			// Wait for the full interpolation window ahead of the cursor
			break
		}

		alpha := float32(c.pos - float64(base))

		for ch := range c.dstChannels {
			y0 := c.tap(base-1, ch, frames)
			y1 := c.tap(base, ch, frames)
			y2 := c.tap(base+1, ch, frames)
			y3 := c.tap(base+2, ch, frames)

			c.out = append(c.out, utils.ClampToInt16(utils.CubicInterpolate(y0, y1, y2, y3, alpha)))
		}

		c.pos += c.ratio
	}

	// Drop frames the cursor has fully passed, keeping one for the y0 tap.
	drop := int(c.pos) - 1
	if drop > frames-1 {
		drop = frames - 1
	}
	if drop > 0 {
		c.in = c.in[:copy(c.in, c.in[drop*c.dstChannels:])]
		c.pos -= float64(drop)
	}
}

// tap reads one channel of an input frame, duplicating edge frames when the
// index falls outside the buffered range.
func (c *Converter) tap(frame, ch, frames int) float32 {
	if frame < 0 {
		frame = 0
	} else if frame >= frames {
		frame = frames - 1
	}
	return float32(c.in[frame*c.dstChannels+ch])
}
