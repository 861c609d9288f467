// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level building blocks for streaming
// compressed audio as signed 16-bit PCM.
//
// This package contains:
//   - Source interface for seekable PCM input
//   - Decoder interface and format Registry
//   - Converter for sample rate and channel layout conversion
//
// # Source Interface
//
// The Source interface is the contract every format decoder fulfills:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []int16) (int, error)
//	    SeekSamples(offset int64) error
//	    TotalSamples() int64
//	    BufSize() int
//	    Close() error
//	}
//
// Samples are interleaved across channels, so one audio frame contributes
// Channels() values. TotalSamples and SeekSamples also count interleaved
// samples, which keeps byte-oriented callers to a single unit conversion.
//
// # Converter
//
// The Converter changes sample rate and channel layout with push/pull
// semantics: input is pushed in chunks as it is decoded, converted output is
// pulled when needed.
//
//	conv, err := audio.NewConverter(44100, 1, 22050, 2)
//	conv.Push(decoded)
//	n := conv.Pull(buf)
//
// Interpolation holds back a small window of trailing input frames so the
// cubic taps always see real data. Call Flush at the end of the input to
// release the tail, and Clear after repositioning the source so stale
// buffered audio never leaks past a seek:
//
//	conv.Flush()              // end of stream: tail becomes available
//	conv.Clear()              // after seek: drop everything buffered
//
// # Format Registry
//
// The registry allows dynamic decoder registration:
//
//	registry := audio.NewRegistry()
//	registry.Register("mp3", mp3.Decoder{})
//	decoder, _ := registry.Get("mp3")
//
// This is useful for applications that need to support multiple formats.
//
// # Sample Format
//
// Audio samples are interleaved signed 16-bit PCM throughout. Keeping the
// decoder output format end to end means unconverted streams pass through
// bit-exact, and sample positions map to byte positions by a factor of two.
//
// # Error Handling
//
// Sources return io.EOF when no more data is available, possibly together
// with a final short read:
//
//	for {
//	    n, err := source.ReadSamples(buf)
//	    // Process n samples from buf
//	    if err == io.EOF {
//	        break // Normal end of stream
//	    }
//	    if err != nil {
//	        return err // Processing error
//	    }
//	}
package audio
