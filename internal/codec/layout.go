package codec

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnsupportedLayout is returned when a decode is requested for a layout
// name nobody registered. This is the only error the decoder produces:
// sensor data itself never fails, only caller wiring does.
var ErrUnsupportedLayout = errors.New("unsupported layout")

// Kind identifies how a field's bytes are interpreted.
type Kind int

const (
	KindFloat32 Kind = iota
	KindUint
	KindFixedPoint
	KindFlag
)

// Field describes one fixed-offset slice of an uplink payload.
type Field struct {
	Name   string
	Offset int
	Width  int
	Kind   Kind
	Order  ByteOrder
	Scale  float64 // KindFixedPoint divisor
	Bit    uint    // KindFlag bit index within the reassembled integer
}

// Layout is the declarative description of one payload format: an ordered
// list of fields at statically known offsets. Decoding a layout is a pure
// function of the input bytes.
type Layout struct {
	Name   string
	Size   int // nominal payload size in bytes
	Fields []Field
}

// Decode slices data into the layout's fields and assembles the record.
// The key set is fixed: every field name is always present, with nil for
// float fields whose bit pattern is NaN or an infinity. Buffers shorter
// than Size decode with the missing bytes treated as zero.
func (l Layout) Decode(data []byte) map[string]any {
	rec := make(map[string]any, len(l.Fields))
	for _, f := range l.Fields {
		b := fieldBytes(data, f.Offset, f.Width)
		switch f.Kind {
		case KindFloat32:
			if v, ok := ToFloat32(b[0], b[1], b[2], b[3]); ok {
				rec[f.Name] = v
			} else {
				rec[f.Name] = nil
			}
		case KindFixedPoint:
			rec[f.Name] = ToFixedPoint(b, f.Order, f.Scale)
		case KindFlag:
			rec[f.Name] = ToUint(b, f.Order) >> f.Bit & 1
		default:
			if f.Width == 2 {
				rec[f.Name] = uint64(ToUint16(b[0], b[1], f.Order))
			} else {
				rec[f.Name] = ToUint(b, f.Order)
			}
		}
	}
	return rec
}

var (
	regMu    sync.RWMutex
	registry = map[string]Layout{}
)

// Register stores a layout under its name. Layouts register from init so
// the set is complete before any decode runs.
func Register(l Layout) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[l.Name] = l
}

// Lookup returns the layout registered under name.
func Lookup(name string) (Layout, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	l, ok := registry[name]
	return l, ok
}

// Names lists the registered layout names, sorted.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Decode resolves the named layout and decodes data with it.
func Decode(layout string, data []byte) (map[string]any, error) {
	l, ok := Lookup(layout)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLayout, layout)
	}
	return l.Decode(data), nil
}

// floatVector builds the common tracker layout shape: a packed sequence of
// little-endian IEEE-754 binary32 fields, 4 bytes each.
func floatVector(name string, fields ...string) Layout {
	l := Layout{Name: name, Size: 4 * len(fields)}
	for i, fn := range fields {
		l.Fields = append(l.Fields, Field{
			Name:   fn,
			Offset: 4 * i,
			Width:  4,
			Kind:   KindFloat32,
			Order:  LittleEndian,
		})
	}
	return l
}
