// SPDX-License-Identifier: EPL-2.0

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ik5/audfd/audio"
)

var (
	verbose bool
	log     = logrus.NewEntry(logrus.StandardLogger())
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "audfd",
	Short: "Stream compressed audio as fixed-format PCM",
	Long: `audfd presents MP3 and Ogg Vorbis files as seekable streams of
22050 Hz stereo 16-bit PCM, the format the engine's sound system consumes.

The subcommands run a file through the same handle surface the engine
uses: probe inspects it, convert captures the PCM as a WAV file, and play
sends it to the default audio device.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "enable debug logging")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// decoderFor routes a path to its registered decoder by extension, with the
// same MP3 fallback the adapter applies.
func decoderFor(reg *audio.Registry, path string) (audio.Decoder, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "oga" {
		ext = "ogg"
	}

	if dec, ok := reg.Get(ext); ok {
		return dec, true
	}

	return reg.Get("mp3")
}
