package codec

// Pytrack tracker payloads: struct.pack'd little-endian float32 vectors
// from the Pycom firmware.
//
//	pytrack       36 B  lat, lon, accel xyz, roll, pitch, count, missed
//	pytrack-gnss  40 B  GPGGA time/height/hdop prepended to the GPS+accel set
//
// Fields the firmware could not measure are packed as 0.0, so an all-zero
// buffer is a valid (empty) reading.
func init() {
	Register(floatVector("pytrack",
		"lat", "lon", "ax", "ay", "az", "roll", "pitch", "count", "missed"))
	Register(floatVector("pytrack-gnss",
		"time", "lat", "lon", "height", "hdop", "ax", "ay", "az", "roll", "pitch"))
}
