// SPDX-License-Identifier: EPL-2.0

package utils

// Float32ToInt16 clamps x to [-1, 1] and scales it to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	return int16(FloatToPCM(x, 16))
}

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer of the
// given bit depth. The positive peak maps to 2^(bits-1)-1 so it cannot
// overflow.
func FloatToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	return int(float64(x) * float64(pcmMax(bitDepth)-1))
}

// PCMToFloat maps a signed integer sample of the given bit depth to float32.
// Unknown depths are treated as 16-bit.
func PCMToFloat(v int, bitDepth int) float32 {
	return float32(float64(v) / float64(pcmMax(bitDepth)))
}

// pcmMax returns 2^(bits-1).
func pcmMax(bitDepth int) int64 {
	switch bitDepth {
	case 8, 16, 24, 32:
		return int64(1) << (bitDepth - 1)
	default:
		return 1 << 15
	}
}
