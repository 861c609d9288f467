// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/ik5/audfd/audio"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	Seek(offset int64, whence int) (int64, error)
	SampleRate() int
	Length() int64
}

// source adapts the decoded byte stream to interleaved int16 samples.
// go-mp3 always delivers stereo 16-bit little-endian PCM, so one sample is
// two bytes and sample offsets double into byte offsets.
type source struct {
	dec          mp3Reader
	sampleRate   int
	channels     int
	totalSamples int64
	buf          []byte
}

func (s *source) SampleRate() int     { return s.sampleRate }
func (s *source) Channels() int       { return s.channels }
func (s *source) TotalSamples() int64 { return s.totalSamples }
func (s *source) Close() error        { return nil }
func (s *source) BufSize() int        { return cap(s.buf) / 2 } // sample capacity, not bytes

func (s *source) ReadSamples(dst []int16) (int, error) {
	bytesNeeded := len(dst) * 2
	if cap(s.buf) < bytesNeeded {
		s.buf = make([]byte, bytesNeeded)
	}
	s.buf = s.buf[:bytesNeeded]

	n, err := s.dec.Read(s.buf)
	if n == 0 {
		if err != nil {
			return 0, err
		}
		return 0, nil
	}

	samples := n / 2
	for i := range samples {
		low := uint16(s.buf[2*i])
		high := uint16(s.buf[2*i+1])
		dst[i] = int16(low | (high << 8))
	}

	return samples, err
}

func (s *source) SeekSamples(offset int64) error {
	if _, err := s.dec.Seek(offset*2, io.SeekStart); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

type Decoder struct{}

func (Decoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return newSource(dec)
}

func newSource(dec mp3Reader) (audio.Source, error) {
	// Length is -1 when the underlying stream cannot be seeked; sample
	// totals are required for the seek and size arithmetic upstream.
	length := dec.Length()
	if length < 0 {
		return nil, ErrUnknownLength
	}

	// go-mp3 outputs stereo for mono files as well
	return &source{
		dec:          dec,
		sampleRate:   dec.SampleRate(),
		channels:     2,
		totalSamples: length / 2,
		buf:          make([]byte, 8192),
	}, nil
}
