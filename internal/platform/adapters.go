// Package platform adapts the payload codec to the calling conventions of
// the LoRaWAN network servers it historically shipped in. ChirpStack codecs
// receive (fPort, bytes), The Things Network codecs receive (bytes, fPort);
// both ignore the port beyond profile selection and forward to the same
// layout decoder.
package platform

import (
	"fmt"

	"lora-codec-svr/internal/codec"
)

// Codec binds one payload layout to both historical conventions. A network
// server device profile maps to exactly one layout, so the port argument
// carries no information here and is discarded.
type Codec struct {
	layout string
}

// New returns a Codec for the named layout.
func New(layout string) (Codec, error) {
	if _, ok := codec.Lookup(layout); !ok {
		return Codec{}, fmt.Errorf("%w: %q", codec.ErrUnsupportedLayout, layout)
	}
	return Codec{layout: layout}, nil
}

// Layout returns the bound layout name.
func (c Codec) Layout() string { return c.layout }

// Decode is the ChirpStack entry point convention: port first.
func (c Codec) Decode(fPort uint8, data []byte) (map[string]any, error) {
	_ = fPort
	return codec.Decode(c.layout, data)
}

// Decoder is the TTN entry point convention: payload first.
func (c Codec) Decoder(data []byte, fPort uint8) (map[string]any, error) {
	_ = fPort
	return codec.Decode(c.layout, data)
}
