// SPDX-License-Identifier: EPL-2.0

// Package audfd presents compressed audio files as uncompressed,
// fixed-format PCM streams behind a conventional seekable byte-oriented
// handle API.
//
// The adapter hides two concerns from its consumer: decoding MP3 or Ogg
// Vorbis frames to 16-bit signed PCM, and converting the file's native
// sample rate and channel count to one engine-wide target format
// (22050 Hz, 2 channels, interleaved little-endian int16). Every unit on
// the handle surface is a target-format byte, never a source-file byte.
//
// # Handle Surface
//
// Handles are small positive integers, shaped like POSIX file
// descriptors:
//
//	h := audfd.Open("music/track.mp3", 0)
//	if h < 0 {
//	    // open failed
//	}
//	defer audfd.Close(h)
//
//	size := audfd.Size(h)        // total target-format bytes
//	buf := make([]byte, 4096)
//	n := audfd.Read(h, buf)      // PCM bytes at 22050 Hz stereo
//	pos := audfd.Seek(h, size/2, io.SeekStart)
//	cur := audfd.Tell(h)
//
// Reads return fewer bytes than requested only at the end of the stream;
// a read at Size returns 0. Seek positions are clamped to [0, Size] and
// are frame-aligned at the source, so the first samples after a seek
// match the requested target offset within MP3 frame granularity. Write
// always returns -1: handles are read-only.
//
// # Adapter Instances
//
// The package-level functions share one process-wide Adapter. Embedders
// that want isolated handle tables or deterministic teardown create
// their own:
//
//	adapter := audfd.New(logger, audfd.DefaultRegistry())
//	defer adapter.Shutdown()
//
//	h := adapter.Open(path, 0)
//
// Custom registries substitute decoders per format key, which is how the
// tests run the full surface against synthetic sources.
//
// # Concurrency
//
// The slot table is safe to mutate from multiple goroutines (Open, Close
// and Shutdown may race); operations on a single handle must be
// serialized by the caller.
//
// # Errors
//
// Every failure surfaces as -1 on the handle API and one diagnostic
// line through logrus. There are no error codes beyond that; the only
// recovery is to close the handle and reopen.
package audfd
