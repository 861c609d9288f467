package utils

// Float32ToInt16 converts a normalized sample in [-1, 1] to signed 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// ClampToInt16 converts a sample already scaled to the int16 domain.
// Interpolation between valid samples can overshoot the representable range.
func ClampToInt16(x float32) int16 {
	if x > 32767 {
		return 32767
	}
	if x < -32768 {
		return -32768
	}

	return int16(x)
}
