// SPDX-License-Identifier: EPL-2.0

package audfd

// Target format every handle delivers, regardless of what the source file
// contains. The byte stream is a concatenation of 4-byte frames (left and
// right as little-endian int16).
const (
	TargetRate     = 22050
	TargetChannels = 2
	BytesPerSample = 2

	frameBytes = TargetChannels * BytesPerSample
)

// sourceSamples maps a target-format byte offset to the interleaved source
// sample index the decoder must be positioned at. All divisions truncate,
// frames before samples; seeks and virtualSize must agree on the rounding.
func sourceSamples(targetBytes int64, srcRate, srcChannels int) int64 {
	dstFrames := targetBytes / frameBytes
	srcFrames := dstFrames * int64(srcRate) / TargetRate

	return srcFrames * int64(srcChannels)
}

// virtualSize computes the total bytes a source produces at the target
// format. totalSamples counts interleaved samples across all channels.
func virtualSize(totalSamples int64, srcRate, srcChannels int) int64 {
	srcFrames := totalSamples / int64(srcChannels)
	dstFrames := srcFrames * TargetRate / int64(srcRate)

	return dstFrames * frameBytes
}
