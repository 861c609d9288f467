// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/spf13/cobra"

	"github.com/ik5/audfd"
)

// handleReader adapts a handle to io.Reader so oto can pull PCM from it.
type handleReader struct {
	adapter *audfd.Adapter
	handle  int
}

func (r *handleReader) Read(p []byte) (int, error) {
	n := r.adapter.Read(r.handle, p)
	if n < 0 {
		return 0, fmt.Errorf("handle %d read failed", r.handle)
	}
	if n == 0 {
		return 0, io.EOF
	}

	return n, nil
}

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play a file through the default audio device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		adapter := audfd.New(log, nil)
		defer adapter.Shutdown()

		h := adapter.Open(path, 0)
		if h < 0 {
			return fmt.Errorf("open %s failed", path)
		}
		defer adapter.Close(h)

		op := &oto.NewContextOptions{
			SampleRate:   audfd.TargetRate,
			ChannelCount: audfd.TargetChannels,
			Format:       oto.FormatSignedInt16LE,
		}

		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			return fmt.Errorf("audio device: %w", err)
		}
		<-ready

		player := ctx.NewPlayer(&handleReader{adapter: adapter, handle: h})
		defer player.Close()

		size := adapter.Size(h)
		frames := size / (audfd.TargetChannels * audfd.BytesPerSample)
		log.WithField("bytes", size).Debugf("playing %.2fs", float64(frames)/float64(audfd.TargetRate))

		player.Play()
		for player.IsPlaying() {
			time.Sleep(50 * time.Millisecond)
		}

		return player.Err()
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}
