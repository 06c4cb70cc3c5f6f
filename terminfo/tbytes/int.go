package tbytes

// ParseInt16 decodes a little-endian unsigned 16-bit value. The pair
// 0xFF 0xFF is the missing-value sentinel and decodes to -1, every other pair
// decodes to high*256 + low, so 0xFE 0xFF stays 65534.
func ParseInt16(low byte, high byte) int {
	if low == 0xFF && high == 0xFF {
		return Missing
	}
	return int(high)<<8 | int(low)
}

// ParseInt32 decodes a little-endian signed 32-bit value.
func ParseInt32(b0 byte, b1 byte, b2 byte, b3 byte) int {
	return int(int32(uint32(b3)<<24 | uint32(b2)<<16 | uint32(b1)<<8 | uint32(b0)))
}
