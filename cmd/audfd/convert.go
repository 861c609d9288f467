// SPDX-License-Identifier: EPL-2.0

package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/audfd"
	"github.com/ik5/audfd/formats/wav"
)

var convertCmd = &cobra.Command{
	Use:   "convert <input> <output.wav>",
	Short: "Convert a compressed file to a target-format WAV",
	Long: `Convert reads the input through the handle surface, so the output
WAV is byte-for-byte what the engine would stream: 22050 Hz, 2 channels,
signed 16-bit PCM.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		inPath, outPath := args[0], args[1]

		adapter := audfd.New(log, nil)
		defer adapter.Shutdown()

		h := adapter.Open(inPath, 0)
		if h < 0 {
			return fmt.Errorf("open %s failed", inPath)
		}
		defer adapter.Close(h)

		samples := make([]int16, 0, adapter.Size(h)/audfd.BytesPerSample)
		buf := make([]byte, 8192)

		for {
			n := adapter.Read(h, buf)
			if n < 0 {
				return fmt.Errorf("read %s failed", inPath)
			}
			if n == 0 {
				break
			}

			for i := 0; i < n; i += 2 {
				samples = append(samples, int16(binary.LittleEndian.Uint16(buf[i:i+2])))
			}
		}

		out, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer out.Close()

		if err := wav.WritePCM16(out, audfd.TargetRate, audfd.TargetChannels, samples); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}

		log.WithField("samples", len(samples)).Debug("conversion finished")
		fmt.Printf("wrote %s (%d samples)\n", outPath, len(samples))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
