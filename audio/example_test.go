// SPDX-License-Identifier: EPL-2.0

package audio_test

import (
	"fmt"
	"io"

	"github.com/ik5/audfd/audio"
	"github.com/ik5/audfd/internal/audiotest"
)

// Example_converter demonstrates the push/pull conversion loop.
func Example_converter() {
	// 44.1kHz mono in, 22.05kHz stereo out
	conv, err := audio.NewConverter(44100, 1, 22050, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	in := make([]int16, 44100) // 1 second of silence
	if err := conv.Push(in); err != nil {
		fmt.Println("error:", err)
		return
	}
	conv.Flush() // no more input: release the interpolation tail

	out := make([]int16, 4096)
	total := 0
	for conv.Available() > 0 {
		total += conv.Pull(out)
	}

	fmt.Printf("input frames: %d\n", len(in))
	fmt.Printf("output frames: %d\n", total/2)
	// Output:
	// input frames: 44100
	// output frames: 22050
}

// Example_converterPassthrough shows that matching formats copy bit-exact.
func Example_converterPassthrough() {
	conv, err := audio.NewConverter(22050, 2, 22050, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	in := []int16{100, -100, 32767, -32768}
	conv.Push(in)

	out := make([]int16, 4)
	n := conv.Pull(out)

	fmt.Printf("pulled %d samples: %v\n", n, out[:n])
	// Output: pulled 4 samples: [100 -100 32767 -32768]
}

// Example_converterClear shows discarding buffered audio after a seek.
func Example_converterClear() {
	conv, err := audio.NewConverter(44100, 2, 22050, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	conv.Push(make([]int16, 8192))
	fmt.Println("buffered before Clear:", conv.Available() > 0)

	conv.Clear()
	fmt.Println("buffered after Clear:", conv.Available() > 0)
	// Output:
	// buffered before Clear: true
	// buffered after Clear: false
}

// mockDecoder is a simple decoder for the registry example.
type mockDecoder struct{}

func (mockDecoder) Decode(r io.ReadSeeker) (audio.Source, error) {
	return audiotest.NewSineSource(44100, 2, 44100, 440), nil
}

// Example_registry demonstrates decoder registration by format key.
func Example_registry() {
	registry := audio.NewRegistry()
	registry.Register("mock", mockDecoder{})

	decoder, ok := registry.Get("mock")
	if !ok {
		fmt.Println("decoder not found")
		return
	}
	fmt.Printf("retrieved decoder: %T\n", decoder)

	_, ok = registry.Get("unknown")
	fmt.Println("unknown format registered:", ok)
	// Output:
	// retrieved decoder: audio_test.mockDecoder
	// unknown format registered: false
}

// Example_source demonstrates the seekable sample stream contract.
func Example_source() {
	var src audio.Source = audiotest.NewRampSource(22050, 2, 1000)

	fmt.Printf("rate: %d, channels: %d, total samples: %d\n",
		src.SampleRate(), src.Channels(), src.TotalSamples())

	// Position at interleaved sample 10 and read one frame
	if err := src.SeekSamples(10); err != nil {
		fmt.Println("error:", err)
		return
	}

	frame := make([]int16, 2)
	n, _ := src.ReadSamples(frame)
	fmt.Printf("read %d samples at offset 10: %v\n", n, frame)
	// Output:
	// rate: 22050, channels: 2, total samples: 2000
	// read 2 samples at offset 10: [10 11]
}
