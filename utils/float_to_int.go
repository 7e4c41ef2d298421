// SPDX-License-Identifier: EPL-2.0

package utils

import "encoding/binary"

// Float32ToInt16 converts a normalized sample to signed 16-bit PCM.
// The input is clamped to [-1, 1] first. Negative values are scaled by
// 32768 and non-negative values by 32767, so the full 16-bit range is
// reachable without overflowing on +1.0.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}

// PutPCM16LE quantizes src into dst as little-endian int16 bytes.
// dst must hold at least len(src)*2 bytes.
func PutPCM16LE(dst []byte, src []float32) {
	for i, s := range src {
		binary.LittleEndian.PutUint16(dst[i*2:i*2+2], uint16(Float32ToInt16(s)))
	}
}
