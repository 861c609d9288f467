// SPDX-License-Identifier: EPL-2.0

package audfd

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ik5/audfd/audio"
	"github.com/ik5/audfd/formats/mp3"
	"github.com/ik5/audfd/formats/vorbis"
)

// Adapter presents compressed audio files as seekable streams of
// target-format PCM behind small positive integer handles, imitating the
// file-descriptor surface a resource loader expects. Handle zero is never
// valid. Operations on one handle must be serialized by the caller;
// distinct handles may be used from distinct goroutines.
type Adapter struct {
	log *logrus.Entry
	reg *audio.Registry

	mtx   sync.Mutex
	slots []*stream

	writeWarn sync.Once
}

// New creates an Adapter. A nil log falls back to the standard logrus
// logger; a nil reg falls back to DefaultRegistry.
func New(log *logrus.Entry, reg *audio.Registry) *Adapter {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	if reg == nil {
		reg = DefaultRegistry()
	}

	return &Adapter{
		log: log,
		reg: reg,
	}
}

// DefaultRegistry returns a registry with the built-in decoders: MP3 and
// Ogg Vorbis.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})

	return reg
}

// Open opens path and returns a handle whose reads deliver target-format
// PCM bytes, or -1 on failure. flags is reserved and currently ignored. No
// slot stays allocated on any failure path.
func (a *Adapter) Open(path string, flags int) int {
	_ = flags

	f, err := os.Open(path)
	if err != nil {
		a.log.WithError(err).WithField("path", path).Error("open failed")
		return -1
	}

	dec, ok := a.reg.Get(a.formatKey(path))
	if !ok {
		a.log.WithField("path", path).Error("no decoder registered")
		f.Close()
		return -1
	}

	src, err := dec.Decode(f)
	if err != nil {
		a.log.WithError(err).WithField("path", path).Error("decode failed")
		f.Close()
		return -1
	}

	srcRate := src.SampleRate()
	srcChannels := src.Channels()

	var conv *audio.Converter
	if srcRate != TargetRate || srcChannels != TargetChannels {
		conv, err = audio.NewConverter(srcRate, srcChannels, TargetRate, TargetChannels)
		if err != nil {
			a.log.WithError(err).WithField("path", path).Error("converter init failed")
			src.Close()
			f.Close()
			return -1
		}

		a.log.WithField("path", path).Debugf("converting %dHz %dch -> %dHz %dch",
			srcRate, srcChannels, TargetRate, TargetChannels)
	}

	s := &stream{
		src:         src,
		conv:        conv,
		file:        f,
		srcRate:     srcRate,
		srcChannels: srcChannels,
		size:        virtualSize(src.TotalSamples(), srcRate, srcChannels),
		decodeBuf:   make([]int16, maxFrameSamplesPerChannel*srcChannels),
		log:         a.log,
	}

	a.mtx.Lock()
	defer a.mtx.Unlock()

	for i, slot := range a.slots {
		if slot == nil {
			a.slots[i] = s
			return i + 1
		}
	}

	a.slots = append(a.slots, s)

	return len(a.slots)
}

// Close releases the handle's decoder and converter and frees its slot for
// reuse. Returns 0, or -1 when the handle is not live.
func (a *Adapter) Close(handle int) int {
	a.mtx.Lock()
	var s *stream
	if handle > 0 && handle <= len(a.slots) {
		s = a.slots[handle-1]
		a.slots[handle-1] = nil
	}
	a.mtx.Unlock()

	if s == nil {
		return -1
	}

	s.close()

	return 0
}

// Read fills buf with up to len(buf) target-format bytes and returns how
// many were delivered. A read at the end of the stream returns 0; an
// invalid handle returns -1.
func (a *Adapter) Read(handle int, buf []byte) int {
	s := a.lookup(handle)
	if s == nil {
		return -1
	}

	return s.read(buf)
}

// Seek repositions the handle to a target-byte offset resolved against
// whence (io.SeekStart, io.SeekCurrent, io.SeekEnd; anything else behaves
// as io.SeekStart), clamped to [0, Size]. Returns the new position, or -1
// on failure with the position unchanged.
func (a *Adapter) Seek(handle int, offset int64, whence int) int64 {
	s := a.lookup(handle)
	if s == nil {
		return -1
	}

	return s.seek(offset, whence)
}

// Tell reports the current position in target bytes, or -1 on an invalid
// handle.
func (a *Adapter) Tell(handle int) int64 {
	s := a.lookup(handle)
	if s == nil {
		return -1
	}

	return s.position
}

// Size reports the virtual stream size in target bytes, or -1 on an
// invalid handle.
func (a *Adapter) Size(handle int) int64 {
	s := a.lookup(handle)
	if s == nil {
		return -1
	}

	return s.size
}

// Write always returns -1. Handles are read-only; the operation exists
// because the consumer's file-like interface requires the symbol.
func (a *Adapter) Write(handle int, buf []byte) int {
	a.writeWarn.Do(func() {
		a.log.WithError(ErrWriteUnsupported).Warn("write called on audio handle")
	})

	return -1
}

// Shutdown closes every live handle and empties the slot table.
func (a *Adapter) Shutdown() {
	a.mtx.Lock()
	slots := a.slots
	a.slots = nil
	a.mtx.Unlock()

	for _, s := range slots {
		if s != nil {
			s.close()
		}
	}
}

func (a *Adapter) lookup(handle int) *stream {
	a.mtx.Lock()
	defer a.mtx.Unlock()

	if handle <= 0 || handle > len(a.slots) || a.slots[handle-1] == nil {
		a.log.WithError(ErrInvalidHandle).WithField("handle", handle).Debug("lookup failed")
		return nil
	}

	return a.slots[handle-1]
}

// formatKey routes a path to a registry key by extension. ".oga" shares the
// vorbis decoder; unknown extensions fall back to MP3, which rejects what
// it cannot parse.
func (a *Adapter) formatKey(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "oga" {
		ext = "ogg"
	}

	if _, ok := a.reg.Get(ext); !ok {
		return "mp3"
	}

	return ext
}

// defaultAdapter backs the package-level functions, mirroring the
// process-global table of the classic surface. Embedders that need
// deterministic teardown or isolated tables hold their own Adapter.
var defaultAdapter = New(nil, nil)

// Open opens path on the default adapter. See Adapter.Open.
func Open(path string, flags int) int { return defaultAdapter.Open(path, flags) }

// Close closes a handle on the default adapter. See Adapter.Close.
func Close(handle int) int { return defaultAdapter.Close(handle) }

// Read reads from a handle on the default adapter. See Adapter.Read.
func Read(handle int, buf []byte) int { return defaultAdapter.Read(handle, buf) }

// Seek repositions a handle on the default adapter. See Adapter.Seek.
func Seek(handle int, offset int64, whence int) int64 {
	return defaultAdapter.Seek(handle, offset, whence)
}

// Tell reports a handle's position on the default adapter. See Adapter.Tell.
func Tell(handle int) int64 { return defaultAdapter.Tell(handle) }

// Size reports a handle's virtual size on the default adapter. See
// Adapter.Size.
func Size(handle int) int64 { return defaultAdapter.Size(handle) }

// Write always fails. See Adapter.Write.
func Write(handle int, buf []byte) int { return defaultAdapter.Write(handle, buf) }

// Shutdown closes every handle on the default adapter.
func Shutdown() { defaultAdapter.Shutdown() }
