// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/audfd/audio"
	"github.com/ik5/audfd/utils"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
	SetPosition(int64) error
	Length() int64
}

// source converts the float vorbis output to interleaved int16. oggvorbis
// positions and measures in frames per channel, so the interleaved-sample
// surface divides and multiplies by the channel count at the boundary.
type source struct {
	dec          oggReader
	sampleRate   int
	channels     int
	totalSamples int64
	frameBuf     []float32
}

func (s *source) SampleRate() int     { return s.sampleRate }
func (s *source) Channels() int       { return s.channels }
func (s *source) TotalSamples() int64 { return s.totalSamples }
func (s *source) Close() error        { return nil }
func (s *source) BufSize() int        { return cap(s.frameBuf) }

func (s *source) ReadSamples(dst []int16) (int, error) {
	// oggvorbis reads whole frames only
	want := (len(dst) / s.channels) * s.channels
	if want == 0 {
		return 0, nil
	}

	if cap(s.frameBuf) < want {
		s.frameBuf = make([]float32, want)
	}
	s.frameBuf = s.frameBuf[:want]

	n, err := s.dec.Read(s.frameBuf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	for i := range n {
		dst[i] = utils.Float32ToInt16(s.frameBuf[i])
	}

	return n, err
}

func (s *source) SeekSamples(offset int64) error {
	if err := s.dec.SetPosition(offset / int64(s.channels)); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:          dec,
		sampleRate:   dec.SampleRate(),
		channels:     dec.Channels(),
		totalSamples: dec.Length() * int64(dec.Channels()),
		frameBuf:     make([]float32, 4096),
	}, nil
}
