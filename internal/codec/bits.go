package codec

import "math"

// ByteOrder selects how multi-byte fields are reassembled. The GPS/accel
// trackers encode floats little-endian while the gnss-fix firmware packs
// its integers big-endian, so the order travels with each field descriptor.
type ByteOrder int

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// ToUint16 reassembles two bytes into an unsigned 16-bit integer.
func ToUint16(b0, b1 byte, order ByteOrder) uint16 {
	if order == LittleEndian {
		return uint16(b1)<<8 | uint16(b0)
	}
	return uint16(b0)<<8 | uint16(b1)
}

// ToUint reassembles up to 8 bytes into an unsigned integer.
func ToUint(b []byte, order ByteOrder) uint64 {
	var v uint64
	if order == LittleEndian {
		for i := len(b) - 1; i >= 0; i-- {
			v = v<<8 | uint64(b[i])
		}
		return v
	}
	for _, x := range b {
		v = v<<8 | uint64(x)
	}
	return v
}

// ToFloat32 reassembles four bytes (b0 least-significant) into an IEEE-754
// binary32 value. Patterns with exponent field 255 (NaN and the infinities)
// have no representation in the JSON records we emit; for those ok is false
// and the caller stores the null sentinel instead. Every finite pattern,
// subnormals and signed zero included, round-trips exactly.
func ToFloat32(b0, b1, b2, b3 byte) (float64, bool) {
	bits := uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16 | uint32(b3)<<24
	if bits>>23&0xFF == 0xFF {
		return 0, false
	}
	return float64(math.Float32frombits(bits)), true
}

// ToFixedPoint reassembles bytes into an integer and divides by scale.
// Used for coordinates stored as micro-degrees (scale 1e6) and HDOP-style
// precision fields stored in tenths (scale 10).
func ToFixedPoint(b []byte, order ByteOrder, scale float64) float64 {
	return float64(ToUint(b, order)) / scale
}

// fieldBytes returns the width bytes starting at off, padding with zeros
// when the buffer ends early. Truncated uplinks therefore decode their
// missing tail as zero rather than failing, matching the firmware decoders
// this replaces.
func fieldBytes(data []byte, off, width int) []byte {
	out := make([]byte, width)
	if off < len(data) {
		copy(out, data[off:])
	}
	return out
}
