package codec

// gnss-fix is the status payload of the GNSS-only firmware. Unlike the
// tracker vectors it is big-endian and integer-packed:
//
//	byte 0   bit 0 error flag, bit 1 fix-acquired flag
//	1..3     time, seconds since midnight
//	4..7     longitude, micro-degrees
//	8..11    latitude, micro-degrees
//	12..13   height, metres
//	14..15   precision (HDOP), tenths
func init() {
	Register(Layout{
		Name: "gnss-fix",
		Size: 16,
		Fields: []Field{
			{Name: "error", Offset: 0, Width: 1, Kind: KindFlag, Order: BigEndian, Bit: 0},
			{Name: "fixed", Offset: 0, Width: 1, Kind: KindFlag, Order: BigEndian, Bit: 1},
			{Name: "time", Offset: 1, Width: 3, Kind: KindUint, Order: BigEndian},
			{Name: "longitude", Offset: 4, Width: 4, Kind: KindFixedPoint, Order: BigEndian, Scale: 1e6},
			{Name: "latitude", Offset: 8, Width: 4, Kind: KindFixedPoint, Order: BigEndian, Scale: 1e6},
			{Name: "height", Offset: 12, Width: 2, Kind: KindUint, Order: BigEndian},
			{Name: "precision", Offset: 14, Width: 2, Kind: KindFixedPoint, Order: BigEndian, Scale: 10},
		},
	})
}
