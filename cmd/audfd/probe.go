// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audfd"
)

var probeCmd = &cobra.Command{
	Use:   "probe <file>",
	Short: "Show a file's native format and its virtual target-format size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		reg := audfd.DefaultRegistry()

		dec, ok := decoderFor(reg, path)
		if !ok {
			return fmt.Errorf("no decoder for %s", path)
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		src, err := dec.Decode(f)
		if err != nil {
			return fmt.Errorf("decode %s: %w", path, err)
		}
		defer src.Close()

		srcFrames := src.TotalSamples() / int64(src.Channels())

		fmt.Printf("source: %d Hz, %d channel(s)\n", src.SampleRate(), src.Channels())
		fmt.Printf("source samples: %d (%.2fs)\n", src.TotalSamples(),
			float64(srcFrames)/float64(src.SampleRate()))

		adapter := audfd.New(log, reg)
		defer adapter.Shutdown()

		h := adapter.Open(path, 0)
		if h < 0 {
			return fmt.Errorf("open %s failed", path)
		}

		size := adapter.Size(h)
		frames := size / (audfd.TargetChannels * audfd.BytesPerSample)

		fmt.Printf("virtual stream: %d bytes at %d Hz, %d channels (%.2fs)\n",
			size, audfd.TargetRate, audfd.TargetChannels,
			float64(frames)/float64(audfd.TargetRate))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
