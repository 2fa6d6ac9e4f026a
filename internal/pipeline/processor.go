package pipeline

import (
	"time"

	"lora-codec-svr/internal/codec"
)

func coordsValid(lat, lon float64) bool {
	if lat == 0 && lon == 0 {
		return false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return false
	}
	return true
}

// CalcFix decides whether the position in a record is usable. Layouts that
// carry an explicit fix flag (gnss-fix) are believed; the float trackers
// only get a fix when the coordinates themselves look sane.
func CalcFix(fs codec.FieldSet, lat, lon float64) int {
	if fs.Has("fixed") {
		if fs.Flag("fixed") && !fs.Flag("error") && coordsValid(lat, lon) {
			return 1
		}
		return 0
	}
	if coordsValid(lat, lon) {
		return 1
	}
	return 0
}

// coordinate reads lat/lon from a record regardless of which layout naming
// produced it: the trackers say lat/lon, gnss-fix says latitude/longitude.
func coordinate(fs codec.FieldSet, short, long string) float64 {
	if v, ok := fs.Float(short); ok {
		return v
	}
	v, _ := fs.Float(long)
	return v
}

// BuildReading flattens a decoded record into the interchange Reading.
func BuildReading(devEUI, layout string, fPort uint8, fCnt uint32, rec map[string]any, at time.Time) *Reading {
	fs := codec.Fields(rec)
	lat := coordinate(fs, "lat", "latitude")
	lon := coordinate(fs, "lon", "longitude")
	height, _ := fs.Float("height")
	hdop, ok := fs.Float("hdop")
	if !ok {
		hdop, _ = fs.Float("precision")
	}

	return &Reading{
		DevEUI:   devEUI,
		Layout:   layout,
		Datetime: at.UTC().Format(time.RFC3339),
		FPort:    int(fPort),
		FCnt:     int(fCnt),
		Lat:      lat,
		Lon:      lon,
		Height:   height,
		HDOP:     hdop,
		Fields:   rec,
		Fix:      CalcFix(fs, lat, lon),
	}
}
