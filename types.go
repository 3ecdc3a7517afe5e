package exif

import "fmt"

// Type is the TIFF field type code found in each directory entry.
type Type uint16

const ( // TIFF Types
	UnsignedByte Type = 1 + iota
	ASCIIString
	UnsignedShort
	UnsignedLong
	UnsignedRational
	SignedByte
	Undefined
	SignedShort
	SignedLong
	SignedRational
	Float
	Double
)

const ( // TIFF Type sizes (signed or unsigned)
	_ASCIIChar    = 1
	_ByteSize     = 1
	_ShortSize    = 2
	_LongSize     = 4
	_RationalSize = 8
	_FloatSize    = 4
	_DoubleSize   = 8
)

// Size returns the byte size of one component of type t, or 0 if t is not
// one of the twelve TIFF types.
func (t Type) Size() int {
	switch t {
	case UnsignedByte, SignedByte, Undefined:
		return _ByteSize
	case ASCIIString:
		return _ASCIIChar
	case UnsignedShort, SignedShort:
		return _ShortSize
	case UnsignedLong, SignedLong:
		return _LongSize
	case Float:
		return _FloatSize
	case UnsignedRational, SignedRational:
		return _RationalSize
	case Double:
		return _DoubleSize
	}
	return 0
}

// Valid reports whether t is one of the twelve TIFF types.
func (t Type) Valid() bool { return t.Size() != 0 }

// swapWidth is the width of the unit reversed when changing byte order: a
// rational is two independent longs.
func (t Type) swapWidth() int {
	switch t {
	case UnsignedRational, SignedRational:
		return _LongSize
	}
	return t.Size()
}

func (t Type) String() string {
	switch t {
	case UnsignedByte:
		return "Unsigned byte"
	case ASCIIString:
		return "ASCII string"
	case UnsignedShort:
		return "Unsigned short"
	case UnsignedLong:
		return "Unsigned long"
	case UnsignedRational:
		return "Unsigned rational"
	case SignedByte:
		return "Signed byte"
	case Undefined:
		return "Undefined"
	case SignedShort:
		return "Signed short"
	case SignedLong:
		return "Signed long"
	case SignedRational:
		return "Signed rational"
	case Float:
		return "Float"
	case Double:
		return "Double"
	}
	return fmt.Sprintf("Unknown (%d)", uint16(t))
}
