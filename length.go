package escpos

// Parameter-length codec: almost every framed ESC/POS command carries its
// payload length as little-endian byte groups (pL pH, or p1..p4 for
// raster frames). This is the single place that can reject an oversized
// payload.

const (
	maxLen2 = 0xFFFF
	maxLen4 = 0xFFFFFFFF
)

// IntLowHigh splits n into `parts` little-endian bytes (1 to 4). It fails
// if n is negative or does not fit the requested width.
func IntLowHigh(n, parts int) ([]byte, error) {
	if parts < 1 || parts > 4 {
		return nil, Inputf("invalid byte count %d, must be 1-4", parts)
	}
	if n < 0 {
		return nil, Inputf("invalid length %d, must be positive", n)
	}
	max := 1<<(uint(parts)*8) - 1
	if n > max {
		return nil, Inputf("length %d does not fit in %d bytes (max %d)", n, parts, max)
	}

	out := make([]byte, parts)
	for i := 0; i < parts; i++ {
		out[i] = byte(n % 256)
		n /= 256
	}
	return out, nil
}

// RecomposeLowHigh is the inverse of IntLowHigh.
func RecomposeLowHigh(b []byte) int {
	n := 0
	for i := len(b) - 1; i >= 0; i-- {
		n = n*256 + int(b[i])
	}
	return n
}

// FrameLength2 computes the (pL, pH) pair for a framed command whose
// device-counted length is dataLen plus a fixed padding (the header bytes
// the device also counts).
func FrameLength2(dataLen, padding int) (lo, hi byte, err error) {
	total := dataLen + padding
	if total > maxLen2 {
		return 0, 0, Inputf("frame payload too large: %d bytes (max %d)", total, maxLen2)
	}
	b, err := IntLowHigh(total, 2)
	if err != nil {
		return 0, 0, err
	}
	return b[0], b[1], nil
}

// FrameLength4 computes the p1..p4 quadruple used by raster image
// frames.
func FrameLength4(dataLen, padding int) ([]byte, error) {
	total := dataLen + padding
	if total > maxLen4 || total < 0 {
		return nil, Inputf("frame payload too large: %d bytes (max %d)", total, maxLen4)
	}
	return IntLowHigh(total, 4)
}
