package codec

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func packFloats(vals ...float32) []byte {
	out := make([]byte, 0, 4*len(vals))
	for _, v := range vals {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
		out = append(out, b[:]...)
	}
	return out
}

func TestDecodeUnsupportedLayout(t *testing.T) {
	_, err := Decode("codec8e", make([]byte, 36))
	require.ErrorIs(t, err, ErrUnsupportedLayout)
}

func TestDecodePytrackAllZero(t *testing.T) {
	rec, err := Decode("pytrack", make([]byte, 36))
	require.NoError(t, err)
	require.Len(t, rec, 9)
	for _, name := range []string{"lat", "lon", "ax", "ay", "az", "roll", "pitch", "count", "missed"} {
		require.Equal(t, 0.0, rec[name], name)
	}
}

func TestDecodePytrack(t *testing.T) {
	data := packFloats(48.8566, 2.3522, 0.01, -0.02, 0.98, 1.5, -2.5, 42, 3)
	rec, err := Decode("pytrack", data)
	require.NoError(t, err)
	require.InDelta(t, 48.8566, rec["lat"].(float64), 1e-4)
	require.InDelta(t, 2.3522, rec["lon"].(float64), 1e-4)
	require.InDelta(t, 0.98, rec["az"].(float64), 1e-6)
	require.Equal(t, float64(42), rec["count"])
	require.Equal(t, float64(3), rec["missed"])
}

func TestDecodePytrackGnss(t *testing.T) {
	data := packFloats(45296, 48.8566, 2.3522, 35.4, 0.9, 0.01, -0.02, 0.98, 1.5, -2.5)
	rec, err := Decode("pytrack-gnss", data)
	require.NoError(t, err)
	require.Len(t, rec, 10)
	require.Equal(t, float64(45296), rec["time"])
	require.InDelta(t, 35.4, rec["height"].(float64), 1e-4)
	require.InDelta(t, 0.9, rec["hdop"].(float64), 1e-6)
	require.InDelta(t, -2.5, rec["pitch"].(float64), 1e-6)
}

func TestDecodeNaNFieldIsNull(t *testing.T) {
	data := packFloats(45296, 48.8566, 2.3522, 35.4, float32(math.NaN()), 0.01, -0.02, 0.98, 1.5, -2.5)
	rec, err := Decode("pytrack-gnss", data)
	require.NoError(t, err)
	require.Contains(t, rec, "hdop")
	require.Nil(t, rec["hdop"])
	// The rest of the record decodes normally around the null.
	require.InDelta(t, 48.8566, rec["lat"].(float64), 1e-4)
}

func TestDecodeGnssFix(t *testing.T) {
	data := make([]byte, 16)
	data[0] = 0x03 // error + fixed
	copy(data[1:4], []byte{0x01, 0x51, 0x80})
	binary.BigEndian.PutUint32(data[4:8], 12345678)  // 12.345678 degrees
	binary.BigEndian.PutUint32(data[8:12], 45678901) // 45.678901 degrees
	binary.BigEndian.PutUint16(data[12:14], 123)
	binary.BigEndian.PutUint16(data[14:16], 13)

	rec, err := Decode("gnss-fix", data)
	require.NoError(t, err)
	require.Len(t, rec, 7)
	require.Equal(t, uint64(1), rec["error"])
	require.Equal(t, uint64(1), rec["fixed"])
	require.Equal(t, uint64(86400), rec["time"])
	require.InDelta(t, 12.345678, rec["longitude"].(float64), 1e-9)
	require.InDelta(t, 45.678901, rec["latitude"].(float64), 1e-9)
	require.Equal(t, uint64(123), rec["height"])
	require.InDelta(t, 1.3, rec["precision"].(float64), 1e-9)
}

func TestDecodeGnssFixFlags(t *testing.T) {
	cases := []struct {
		b0            byte
		errBit, fixed uint64
	}{
		{0x00, 0, 0},
		{0x01, 1, 0},
		{0x02, 0, 1},
		{0x03, 1, 1},
		{0xFC, 0, 0},
	}
	for _, tc := range cases {
		data := make([]byte, 16)
		data[0] = tc.b0
		rec, err := Decode("gnss-fix", data)
		require.NoError(t, err)
		require.Equal(t, tc.errBit, rec["error"], "b0=%#02x", tc.b0)
		require.Equal(t, tc.fixed, rec["fixed"], "b0=%#02x", tc.b0)
	}
}

func TestDecodeTruncatedZeroFill(t *testing.T) {
	// A short buffer decodes its missing tail as zero, never fails.
	data := packFloats(48.8566, 2.3522, 0.01)
	rec, err := Decode("pytrack", data[:10])
	require.NoError(t, err)
	require.Len(t, rec, 9)
	require.InDelta(t, 48.8566, rec["lat"].(float64), 1e-4)
	require.Equal(t, 0.0, rec["pitch"])
	require.Equal(t, 0.0, rec["missed"])
}

func TestDecodeDeterministic(t *testing.T) {
	data := packFloats(48.8566, 2.3522, 0.01, -0.02, 0.98, 1.5, -2.5, 42, 3)
	first, err := Decode("pytrack", data)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Decode("pytrack", data)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestNamesContainsRegisteredLayouts(t *testing.T) {
	names := Names()
	require.Subset(t, names, []string{"gnss-fix", "pytrack", "pytrack-gnss"})
}

func TestFieldSet(t *testing.T) {
	rec, err := Decode("gnss-fix", append([]byte{0x02}, make([]byte, 15)...))
	require.NoError(t, err)
	fs := Fields(rec)
	require.True(t, fs.Flag("fixed"))
	require.False(t, fs.Flag("error"))
	require.False(t, fs.Flag("absent"))

	lat, ok := fs.Float("latitude")
	require.True(t, ok)
	require.Equal(t, 0.0, lat)

	_, ok = fs.Float("no_such_field")
	require.False(t, ok)
	require.True(t, fs.Has("time"))
}
