// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"sync"
)

// Source is a seekable stream of interleaved signed 16-bit PCM samples.
// Sample counts are always interleaved values across all channels, so one
// audio frame contributes Channels() samples.
type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels() int
	// ReadSamples fills dst with interleaved int16 samples.
	// Returns the number of samples written. Partial reads are legal.
	// When n == 0 with err == io.EOF, the stream is finished.
	ReadSamples(dst []int16) (n int, err error)
	// SeekSamples positions the stream so the next ReadSamples returns data
	// starting at the given interleaved sample index.
	SeekSamples(offset int64) error
	// TotalSamples reports the stream length in interleaved samples.
	TotalSamples() int64

	BufSize() int

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from seekable input.
type Decoder interface {
	Decode(r io.ReadSeeker) (Source, error)
}

// Registry for decoders by format key (e.g., "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[format] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[format]
	return d, ok
}
