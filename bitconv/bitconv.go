// Package bitconv converts fixed-width integers and floats between an
// explicit source and destination byte order.
//
// Every multi-byte read or write in the codec goes through a single
// primitive, Convert, parameterized by the field width: the window is copied
// and reversed if and only if the two byte orders differ. Values are then
// interpreted (or produced) in the system byte order.
package bitconv

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ByteOrder is the order of bytes within a multi-byte field.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// SystemByteOrder is the byte order of the running machine.
var SystemByteOrder = systemByteOrder()

func systemByteOrder() ByteOrder {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], 0x0102)
	if b[0] == 0x01 {
		return BigEndian
	}
	return LittleEndian
}

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little-endian"
	case BigEndian:
		return "big-endian"
	}
	return fmt.Sprintf("ByteOrder(%d)", uint8(o))
}

// Binary returns the encoding/binary equivalent of o.
func (o ByteOrder) Binary() binary.ByteOrder {
	if o == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Mark returns the 2-byte TIFF byte-order mark: "II" or "MM".
func (o ByteOrder) Mark() []byte {
	if o == BigEndian {
		return []byte{'M', 'M'}
	}
	return []byte{'I', 'I'}
}

// ParseByteOrderMark reads a TIFF byte-order mark ("II" for Intel,
// little-endian, "MM" for Motorola, big-endian). It reports false if b does
// not start with either.
func ParseByteOrderMark(b []byte) (ByteOrder, bool) {
	if len(b) < 2 {
		return LittleEndian, false
	}
	switch {
	case b[0] == 'I' && b[1] == 'I':
		return LittleEndian, true
	case b[0] == 'M' && b[1] == 'M':
		return BigEndian, true
	}
	return LittleEndian, false
}

// Convert returns a copy of the width-byte window of data starting at offset,
// byte-reversed iff from != to. Bounds are the caller's responsibility.
func Convert(data []byte, offset, width int, from, to ByteOrder) []byte {
	w := make([]byte, width)
	copy(w, data[offset:offset+width])
	if from != to {
		for i, j := 0, width-1; i < j; i, j = i+1, j-1 {
			w[i], w[j] = w[j], w[i]
		}
	}
	return w
}

// GetBytes16 reinterprets v as its system byte order form and reverses it
// iff from != to.
func GetBytes16(v uint16, from, to ByteOrder) []byte {
	var b [2]byte
	binary.NativeEndian.PutUint16(b[:], v)
	return Convert(b[:], 0, 2, from, to)
}

// GetBytes32 is the 32-bit version of GetBytes16.
func GetBytes32(v uint32, from, to ByteOrder) []byte {
	var b [4]byte
	binary.NativeEndian.PutUint32(b[:], v)
	return Convert(b[:], 0, 4, from, to)
}

// GetBytes64 is the 64-bit version of GetBytes16.
func GetBytes64(v uint64, from, to ByteOrder) []byte {
	var b [8]byte
	binary.NativeEndian.PutUint64(b[:], v)
	return Convert(b[:], 0, 8, from, to)
}

// Converter binds a (From, To) pair. Reads convert a window from From to To
// and interpret the result in the system byte order; writes take a system
// order value and convert it from From to To. A reading converter is thus
// typically {fileOrder, SystemByteOrder} and a writing one
// {SystemByteOrder, fileOrder}.
type Converter struct {
	From, To ByteOrder
}

// NewConverter returns the converter for the given pair of byte orders.
func NewConverter(from, to ByteOrder) Converter {
	return Converter{From: from, To: to}
}

// Reader returns a converter that reads data stored in order o.
func Reader(o ByteOrder) Converter {
	return Converter{From: o, To: SystemByteOrder}
}

// Writer returns a converter that writes data to be stored in order o.
func Writer(o ByteOrder) Converter {
	return Converter{From: SystemByteOrder, To: o}
}

// BigEndianReader reads big-endian data, as found in JPEG segment headers.
var BigEndianReader = Reader(BigEndian)

// Convert is the Converter form of the package level Convert.
func (c Converter) Convert(data []byte, offset, width int) []byte {
	return Convert(data, offset, width, c.From, c.To)
}

func (c Converter) Uint16(data []byte, offset int) uint16 {
	return binary.NativeEndian.Uint16(c.Convert(data, offset, 2))
}

func (c Converter) Int16(data []byte, offset int) int16 {
	return int16(c.Uint16(data, offset))
}

func (c Converter) Uint32(data []byte, offset int) uint32 {
	return binary.NativeEndian.Uint32(c.Convert(data, offset, 4))
}

func (c Converter) Int32(data []byte, offset int) int32 {
	return int32(c.Uint32(data, offset))
}

func (c Converter) Uint64(data []byte, offset int) uint64 {
	return binary.NativeEndian.Uint64(c.Convert(data, offset, 8))
}

func (c Converter) Int64(data []byte, offset int) int64 {
	return int64(c.Uint64(data, offset))
}

func (c Converter) Float32(data []byte, offset int) float32 {
	return math.Float32frombits(c.Uint32(data, offset))
}

func (c Converter) Float64(data []byte, offset int) float64 {
	return math.Float64frombits(c.Uint64(data, offset))
}

func (c Converter) PutUint16(v uint16) []byte { return GetBytes16(v, c.From, c.To) }
func (c Converter) PutInt16(v int16) []byte   { return GetBytes16(uint16(v), c.From, c.To) }
func (c Converter) PutUint32(v uint32) []byte { return GetBytes32(v, c.From, c.To) }
func (c Converter) PutInt32(v int32) []byte   { return GetBytes32(uint32(v), c.From, c.To) }
func (c Converter) PutUint64(v uint64) []byte { return GetBytes64(v, c.From, c.To) }
func (c Converter) PutInt64(v int64) []byte   { return GetBytes64(uint64(v), c.From, c.To) }

func (c Converter) PutFloat32(v float32) []byte {
	return GetBytes32(math.Float32bits(v), c.From, c.To)
}

func (c Converter) PutFloat64(v float64) []byte {
	return GetBytes64(math.Float64bits(v), c.From, c.To)
}

// Swap converts in place, from c.From to c.To, count consecutive fields of
// width bytes each. Used to turn a whole array payload from one byte order
// into the other.
func (c Converter) Swap(data []byte, width int) {
	if c.From == c.To || width < 2 {
		return
	}
	for off := 0; off+width <= len(data); off += width {
		copy(data[off:off+width], c.Convert(data, off, width))
	}
}
