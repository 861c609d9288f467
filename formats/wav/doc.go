// SPDX-License-Identifier: EPL-2.0

// Package wav writes interleaved 16-bit PCM as WAV files, using
// github.com/go-audio/wav for the RIFF encoding.
//
//	f, _ := os.Create("out.wav")
//	defer f.Close()
//	err := wav.WritePCM16(f, 22050, 2, samples)
//
// The writer is the export half of the repo: the decoders read compressed
// audio in, WritePCM16 puts converted PCM back on disk.
package wav
