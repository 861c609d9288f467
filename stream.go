// SPDX-License-Identifier: EPL-2.0

package audfd

import (
	"encoding/binary"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audfd/audio"
)

// maxFrameSamplesPerChannel is the most samples per channel one MP3 frame
// can decode to; the read loop decodes at most one frame's worth at a time.
const maxFrameSamplesPerChannel = 1152

// stream is one open virtual PCM file: a decoder, an optional converter for
// sources whose format differs from the target, and the position bookkeeping
// that keeps the byte-stream illusion consistent across reads and seeks.
type stream struct {
	src  audio.Source
	conv *audio.Converter
	file io.Closer

	srcRate     int
	srcChannels int

	size     int64 // virtual stream size in target bytes
	position int64 // current read position in target bytes

	decodeBuf []int16 // one MP3 frame of source samples
	sampleBuf []int16 // staging for int16 -> byte packing

	log *logrus.Entry
}

// read fills buf with target-format bytes and returns how many were
// delivered. Requests are rounded down to whole samples and clamped to the
// virtual size, so a read at the end of the stream returns 0 and short reads
// only happen there.
func (s *stream) read(buf []byte) int {
	want := len(buf) &^ 1
	if rem := s.size - s.position; int64(want) > rem {
		want = int(rem)
	}
	if want == 0 {
		return 0
	}

	var got int
	if s.conv == nil {
		got = s.readDirect(buf[:want])
	} else {
		got = s.readConverted(buf[:want])
	}

	s.position += int64(got)

	return got
}

// readDirect serves sources already in the target format. The decoder output
// is delivered verbatim.
func (s *stream) readDirect(buf []byte) int {
	samples := s.scratch(len(buf) / BytesPerSample)

	var got int
	for got < len(samples) {
		n, err := s.src.ReadSamples(samples[got:])
		got += n
		if n == 0 || err != nil {
			break
		}
	}

	packSamples(buf, samples[:got])

	return got * BytesPerSample
}

// readConverted pumps the decode-push-pull loop: drain whatever the
// converter already holds, otherwise decode up to one frame of source
// samples and push it. Decoder EOF flushes the converter tail.
func (s *stream) readConverted(buf []byte) int {
	out := s.scratch(len(buf) / BytesPerSample)

	var got int
	for got < len(out) {
		if s.conv.Available() > 0 {
			got += s.conv.Pull(out[got:])
			continue
		}

		// A short read near EOF still gets pushed; the next iteration
		// reads 0 samples and triggers the flush.
		n, _ := s.src.ReadSamples(s.decodeBuf)
		if n == 0 {
			s.conv.Flush()
			got += s.conv.Pull(out[got:])
			break
		}

		if err := s.conv.Push(s.decodeBuf[:n]); err != nil {
			s.log.WithError(err).Error("converter rejected decoded samples")
			break
		}
	}

	packSamples(buf, out[:got])

	return got * BytesPerSample
}

// seek repositions the stream to a target-byte offset resolved against
// whence. Unknown whence values behave as io.SeekStart. The position is
// clamped to [0, size]; on decoder failure the position is left untouched.
func (s *stream) seek(offset int64, whence int) int64 {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = s.position + offset
	case io.SeekEnd:
		pos = s.size + offset
	default:
		pos = offset
	}

	if pos < 0 {
		pos = 0
	}
	if pos > s.size {
		pos = s.size
	}

	if err := s.src.SeekSamples(sourceSamples(pos, s.srcRate, s.srcChannels)); err != nil {
		s.log.WithError(err).WithField("offset", pos).Error("seek failed")
		return -1
	}

	// Buffered converter output belongs to the old position.
	if s.conv != nil {
		s.conv.Clear()
	}

	s.position = pos

	return pos
}

func (s *stream) close() {
	if err := s.src.Close(); err != nil {
		s.log.WithError(err).Warn("decoder close failed")
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			s.log.WithError(err).Warn("file close failed")
		}
	}
}

func (s *stream) scratch(n int) []int16 {
	if cap(s.sampleBuf) < n {
		s.sampleBuf = make([]int16, n)
	}

	return s.sampleBuf[:n]
}

// packSamples writes samples into dst as little-endian int16 bytes.
func packSamples(dst []byte, samples []int16) {
	for i, v := range samples {
		binary.LittleEndian.PutUint16(dst[i*2:i*2+2], uint16(v))
	}
}
