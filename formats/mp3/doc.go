// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides seekable MP3 decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 and exposes the decoded
// stream as interleaved signed 16-bit PCM through the audio.Source
// interface.
//
// # Decoding
//
//	decoder := mp3.Decoder{}
//	f, _ := os.Open("audio.mp3")
//	src, err := decoder.Decode(f)
//	if err != nil {
//	    // not an MP3, or the stream length is unknown
//	}
//
//	buf := make([]int16, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: interleaved signed 16-bit PCM
//   - Channels: always 2 (go-mp3 upmixes mono files to stereo)
//   - Sample rate: whatever the file declares
//
// # Seeking
//
// Sources are sample addressable: SeekSamples positions the next read at
// an interleaved sample index, and TotalSamples reports the full decoded
// length. Both require a seekable input; Decode fails with
// ErrUnknownLength when the decoded length cannot be determined.
//
// CBR and VBR files are supported to the extent go-mp3 supports them.
// Encoding is not.
package mp3
