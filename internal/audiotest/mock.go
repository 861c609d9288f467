// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// MockSource is a deterministic, seekable test source that generates int16
// audio data. It implements the audio.Source interface (without importing
// it to avoid cycles). ReadErr and SeekErr inject failures for error-path
// tests.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	pos         int // current frame cursor
	waveform    func(frame, channel int) int16

	ReadErr error
	SeekErr error
}

// NewMockSource creates a mock source of totalFrames frames, each sample
// computed by waveform from its frame index and channel.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame, channel int) int16) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source of all-zero samples.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		return 0
	})
}

// NewSineSource creates a mock source carrying a sine wave at frequency Hz,
// identical on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(math.Sin(2*math.Pi*frequency*t) * 16000)
	})
}

// NewConstantSource creates a mock source where every sample is value.
func NewConstantSource(sampleRate, channels, totalFrames int, value int16) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		return value
	})
}

// NewRampSource creates a mock source whose samples encode their own
// position: frame*channels + channel, wrapped into int16 range. Useful for
// asserting that seeks land where they should.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame, channel int) int16 {
		return int16((frame*channels + channel) % 32768)
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) BufSize() int    { return 4096 }
func (m *MockSource) Close() error    { return nil }

// TotalSamples reports the stream length in interleaved samples.
func (m *MockSource) TotalSamples() int64 {
	return int64(m.totalFrames) * int64(m.channels)
}

// Reset rewinds the cursor so the source can be read again.
func (m *MockSource) Reset() {
	m.pos = 0
}

func (m *MockSource) ReadSamples(dst []int16) (int, error) {
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}

	if m.pos >= m.totalFrames {
		return 0, io.EOF
	}

	frames := len(dst) / m.channels
	if avail := m.totalFrames - m.pos; frames > avail {
		frames = avail
	}

	for frame := range frames {
		for ch := range m.channels {
			dst[frame*m.channels+ch] = m.waveform(m.pos+frame, ch)
		}
	}

	m.pos += frames
	samples := frames * m.channels

	if m.pos >= m.totalFrames {
		return samples, io.EOF
	}

	return samples, nil
}

func (m *MockSource) SeekSamples(offset int64) error {
	if m.SeekErr != nil {
		return m.SeekErr
	}

	frame := int(offset) / m.channels
	if frame < 0 {
		frame = 0
	}
	if frame > m.totalFrames {
		frame = m.totalFrames
	}
	m.pos = frame

	return nil
}
