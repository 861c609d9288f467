// SPDX-License-Identifier: EPL-2.0

package audfd_test

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audfd"
	"github.com/ik5/audfd/audio"
	"github.com/ik5/audfd/internal/audiotest"
)

// toneDecoder stands in for a real codec so the example output stays
// deterministic: it ignores the file contents and serves one second of a
// 440 Hz tone already in the target format.
type toneDecoder struct{}

func (toneDecoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	return audiotest.NewSineSource(22050, 2, 22050, 440), nil
}

// Example walks the whole handle surface: open a file, inspect its virtual
// size, read PCM, and seek back to the start.
func Example() {
	dir, err := os.MkdirTemp("", "audfd")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "tone.mp3")
	if err := os.WriteFile(path, []byte("stand-in"), 0o600); err != nil {
		fmt.Println("error:", err)
		return
	}

	reg := audio.NewRegistry()
	reg.Register("mp3", toneDecoder{})

	adapter := audfd.New(nil, reg)
	defer adapter.Shutdown()

	h := adapter.Open(path, 0)
	fmt.Println("handle:", h)
	fmt.Println("size:", adapter.Size(h))

	buf := make([]byte, 4096)
	fmt.Println("read:", adapter.Read(h, buf))
	fmt.Println("tell:", adapter.Tell(h))

	fmt.Println("rewound:", adapter.Seek(h, 0, io.SeekStart))
	fmt.Println("closed:", adapter.Close(h))

	// Output:
	// handle: 1
	// size: 88200
	// read: 4096
	// tell: 4096
	// rewound: 0
	// closed: 0
}
