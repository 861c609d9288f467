// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides seekable Ogg Vorbis decoding.
//
// This package uses github.com/jfreymuth/oggvorbis and exposes the decoded
// stream as interleaved signed 16-bit PCM through the audio.Source
// interface. The library's float output is scaled and clamped to int16;
// its per-channel frame positions are translated to interleaved sample
// indices, so SeekSamples and TotalSamples count the same unit as the MP3
// decoder.
//
//	decoder := vorbis.Decoder{}
//	f, _ := os.Open("audio.ogg")
//	src, err := decoder.Decode(f)
package vorbis
