package exif

import (
	"fmt"
	"strings"

	"github.com/jrm-1535/exifcodec/rational"
	"golang.org/x/text/encoding"
)

/*
   Generic property variants

   A directory entry that has no specific meaning for the codec is decoded
   according to its TIFF type only:

   UnsignedByte        => ByteValue (count 1) or BytesValue
   ASCIIString         => ASCIIValue
   UnsignedShort       => UShortValue (count 1) or UShortsValue
   UnsignedLong        => ULongValue (count 1) or ULongsValue
   UnsignedRational    => URationalValue (count 1) or URationalsValue
   SignedByte          => SBytesValue
   Undefined           => UndefinedValue
   SignedShort         => SShortsValue
   SignedLong          => SLongValue (count 1) or SLongsValue
   SignedRational      => SRationalValue (count 1) or SRationalsValue
   Float               => FloatsValue
   Double              => DoublesValue

   Each variant keeps its value in the exported Value field, which is both
   the getter and the setter.
*/

type ByteValue struct {
	base
	Value uint8
}

func NewByte(t Tag, v uint8) *ByteValue { return &ByteValue{base{tag: t}, v} }

func (p *ByteValue) Any() any       { return p.Value }
func (p *ByteValue) String() string { return fmt.Sprintf("%d", p.Value) }

func (p *ByteValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedByte, 1, []byte{p.Value}}, nil
}

type BytesValue struct {
	base
	Value []uint8
}

func NewBytes(t Tag, v []uint8) *BytesValue { return &BytesValue{base{tag: t}, v} }

func (p *BytesValue) Any() any       { return p.Value }
func (p *BytesValue) String() string { return formatBytes(p.Value) }

func (p *BytesValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedByte, uint32(len(p.Value)), clone(p.Value)}, nil
}

type SBytesValue struct {
	base
	Value []int8
}

func NewSBytes(t Tag, v []int8) *SBytesValue { return &SBytesValue{base{tag: t}, v} }

func (p *SBytesValue) Any() any       { return p.Value }
func (p *SBytesValue) String() string { return joinValues(p.Value) }

func (p *SBytesValue) Interop() (Interop, error) {
	d := make([]byte, len(p.Value))
	for i, v := range p.Value {
		d[i] = byte(v)
	}
	return Interop{p.tag.ID(), SignedByte, uint32(len(d)), d}, nil
}

// ASCIIValue is a NUL-terminated string. Bytes are decoded with the
// fallback encoding given at decode time.
type ASCIIValue struct {
	base
	Value string
	enc   encoding.Encoding
}

func NewASCII(t Tag, s string) *ASCIIValue { return &ASCIIValue{base: base{tag: t}, Value: s} }

func (p *ASCIIValue) Any() any       { return p.Value }
func (p *ASCIIValue) String() string { return p.Value }

func (p *ASCIIValue) Interop() (Interop, error) {
	b, err := encodeText(p.enc, p.Value)
	if err != nil {
		return Interop{}, fmt.Errorf("ASCIIValue.Interop: %s: %w", p.Name(), err)
	}
	b = append(b, 0)
	return Interop{p.tag.ID(), ASCIIString, uint32(len(b)), b}, nil
}

// UndefinedValue holds opaque bytes, the maker note for instance.
type UndefinedValue struct {
	base
	Value []byte
}

func NewUndefined(t Tag, v []byte) *UndefinedValue { return &UndefinedValue{base{tag: t}, v} }

func (p *UndefinedValue) Any() any       { return p.Value }
func (p *UndefinedValue) String() string { return formatBytes(p.Value) }

func (p *UndefinedValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), Undefined, uint32(len(p.Value)), clone(p.Value)}, nil
}

type UShortValue struct {
	base
	Value uint16
}

func NewUShort(t Tag, v uint16) *UShortValue { return &UShortValue{base{tag: t}, v} }

func (p *UShortValue) Any() any       { return p.Value }
func (p *UShortValue) String() string { return fmt.Sprintf("%d", p.Value) }

func (p *UShortValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedShort, 1, native.PutUint16(p.Value)}, nil
}

type UShortsValue struct {
	base
	Value []uint16
}

func NewUShorts(t Tag, v []uint16) *UShortsValue { return &UShortsValue{base{tag: t}, v} }

func (p *UShortsValue) Any() any       { return p.Value }
func (p *UShortsValue) String() string { return joinValues(p.Value) }

func (p *UShortsValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedShort, uint32(len(p.Value)), putShorts(p.Value)}, nil
}

type SShortsValue struct {
	base
	Value []int16
}

func NewSShorts(t Tag, v []int16) *SShortsValue { return &SShortsValue{base{tag: t}, v} }

func (p *SShortsValue) Any() any       { return p.Value }
func (p *SShortsValue) String() string { return joinValues(p.Value) }

func (p *SShortsValue) Interop() (Interop, error) {
	d := make([]byte, 0, len(p.Value)*_ShortSize)
	for _, v := range p.Value {
		d = append(d, native.PutInt16(v)...)
	}
	return Interop{p.tag.ID(), SignedShort, uint32(len(p.Value)), d}, nil
}

type ULongValue struct {
	base
	Value uint32
}

func NewULong(t Tag, v uint32) *ULongValue { return &ULongValue{base{tag: t}, v} }

func (p *ULongValue) Any() any       { return p.Value }
func (p *ULongValue) String() string { return fmt.Sprintf("%d", p.Value) }

func (p *ULongValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedLong, 1, native.PutUint32(p.Value)}, nil
}

type ULongsValue struct {
	base
	Value []uint32
}

func NewULongs(t Tag, v []uint32) *ULongsValue { return &ULongsValue{base{tag: t}, v} }

func (p *ULongsValue) Any() any       { return p.Value }
func (p *ULongsValue) String() string { return joinValues(p.Value) }

func (p *ULongsValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedLong, uint32(len(p.Value)), putLongs(p.Value)}, nil
}

type SLongValue struct {
	base
	Value int32
}

func NewSLong(t Tag, v int32) *SLongValue { return &SLongValue{base{tag: t}, v} }

func (p *SLongValue) Any() any       { return p.Value }
func (p *SLongValue) String() string { return fmt.Sprintf("%d", p.Value) }

func (p *SLongValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), SignedLong, 1, native.PutInt32(p.Value)}, nil
}

type SLongsValue struct {
	base
	Value []int32
}

func NewSLongs(t Tag, v []int32) *SLongsValue { return &SLongsValue{base{tag: t}, v} }

func (p *SLongsValue) Any() any       { return p.Value }
func (p *SLongsValue) String() string { return joinValues(p.Value) }

func (p *SLongsValue) Interop() (Interop, error) {
	d := make([]byte, 0, len(p.Value)*_LongSize)
	for _, v := range p.Value {
		d = append(d, native.PutInt32(v)...)
	}
	return Interop{p.tag.ID(), SignedLong, uint32(len(p.Value)), d}, nil
}

type URationalValue struct {
	base
	Value rational.UFraction
}

func NewURational(t Tag, v rational.UFraction) *URationalValue {
	return &URationalValue{base{tag: t}, v}
}

func (p *URationalValue) Any() any       { return p.Value }
func (p *URationalValue) String() string { return p.Value.String() }

func (p *URationalValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedRational, 1, putURationals([]rational.UFraction{p.Value})}, nil
}

type URationalsValue struct {
	base
	Value []rational.UFraction
}

func NewURationals(t Tag, v []rational.UFraction) *URationalsValue {
	return &URationalsValue{base{tag: t}, v}
}

func (p *URationalsValue) Any() any       { return p.Value }
func (p *URationalsValue) String() string { return joinValues(p.Value) }

func (p *URationalsValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedRational, uint32(len(p.Value)), putURationals(p.Value)}, nil
}

type SRationalValue struct {
	base
	Value rational.Fraction
}

func NewSRational(t Tag, v rational.Fraction) *SRationalValue {
	return &SRationalValue{base{tag: t}, v}
}

func (p *SRationalValue) Any() any       { return p.Value }
func (p *SRationalValue) String() string { return p.Value.String() }

func (p *SRationalValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), SignedRational, 1, putSRationals([]rational.Fraction{p.Value})}, nil
}

type SRationalsValue struct {
	base
	Value []rational.Fraction
}

func NewSRationals(t Tag, v []rational.Fraction) *SRationalsValue {
	return &SRationalsValue{base{tag: t}, v}
}

func (p *SRationalsValue) Any() any       { return p.Value }
func (p *SRationalsValue) String() string { return joinValues(p.Value) }

func (p *SRationalsValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), SignedRational, uint32(len(p.Value)), putSRationals(p.Value)}, nil
}

type FloatsValue struct {
	base
	Value []float32
}

func NewFloats(t Tag, v []float32) *FloatsValue { return &FloatsValue{base{tag: t}, v} }

func (p *FloatsValue) Any() any       { return p.Value }
func (p *FloatsValue) String() string { return joinValues(p.Value) }

func (p *FloatsValue) Interop() (Interop, error) {
	d := make([]byte, 0, len(p.Value)*_FloatSize)
	for _, v := range p.Value {
		d = append(d, native.PutFloat32(v)...)
	}
	return Interop{p.tag.ID(), Float, uint32(len(p.Value)), d}, nil
}

type DoublesValue struct {
	base
	Value []float64
}

func NewDoubles(t Tag, v []float64) *DoublesValue { return &DoublesValue{base{tag: t}, v} }

func (p *DoublesValue) Any() any       { return p.Value }
func (p *DoublesValue) String() string { return joinValues(p.Value) }

func (p *DoublesValue) Interop() (Interop, error) {
	d := make([]byte, 0, len(p.Value)*_DoubleSize)
	for _, v := range p.Value {
		d = append(d, native.PutFloat64(v)...)
	}
	return Interop{p.tag.ID(), Double, uint32(len(p.Value)), d}, nil
}

// system byte order readers, count is trusted to fit in data

func getShorts(data []byte, count uint32) []uint16 {
	v := make([]uint16, count)
	for i := range v {
		v[i] = native.Uint16(data, i*_ShortSize)
	}
	return v
}

func getSShorts(data []byte, count uint32) []int16 {
	v := make([]int16, count)
	for i := range v {
		v[i] = native.Int16(data, i*_ShortSize)
	}
	return v
}

func getLongs(data []byte, count uint32) []uint32 {
	v := make([]uint32, count)
	for i := range v {
		v[i] = native.Uint32(data, i*_LongSize)
	}
	return v
}

func getSLongs(data []byte, count uint32) []int32 {
	v := make([]int32, count)
	for i := range v {
		v[i] = native.Int32(data, i*_LongSize)
	}
	return v
}

func getURationals(data []byte, count uint32) []rational.UFraction {
	v := make([]rational.UFraction, count)
	for i := range v {
		off := i * _RationalSize
		v[i] = rational.NewU(native.Uint32(data, off), native.Uint32(data, off+_LongSize))
	}
	return v
}

func getSRationals(data []byte, count uint32) []rational.Fraction {
	v := make([]rational.Fraction, count)
	for i := range v {
		off := i * _RationalSize
		v[i] = rational.New(native.Int32(data, off), native.Int32(data, off+_LongSize))
	}
	return v
}

func getFloats(data []byte, count uint32) []float32 {
	v := make([]float32, count)
	for i := range v {
		v[i] = native.Float32(data, i*_FloatSize)
	}
	return v
}

func getDoubles(data []byte, count uint32) []float64 {
	v := make([]float64, count)
	for i := range v {
		v[i] = native.Float64(data, i*_DoubleSize)
	}
	return v
}

func putShorts(v []uint16) []byte {
	d := make([]byte, 0, len(v)*_ShortSize)
	for _, s := range v {
		d = append(d, native.PutUint16(s)...)
	}
	return d
}

func putLongs(v []uint32) []byte {
	d := make([]byte, 0, len(v)*_LongSize)
	for _, l := range v {
		d = append(d, native.PutUint32(l)...)
	}
	return d
}

func putURationals(v []rational.UFraction) []byte {
	d := make([]byte, 0, len(v)*_RationalSize)
	for _, r := range v {
		d = append(d, native.PutUint32(r.Num())...)
		d = append(d, native.PutUint32(r.Den())...)
	}
	return d
}

func putSRationals(v []rational.Fraction) []byte {
	d := make([]byte, 0, len(v)*_RationalSize)
	for _, r := range v {
		d = append(d, native.PutInt32(r.Num())...)
		d = append(d, native.PutInt32(r.Den())...)
	}
	return d
}

func clone(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	c := make([]byte, len(b))
	copy(c, b)
	return c
}

func joinValues[T any](v []T) string {
	var b strings.Builder
	for i, x := range v {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, x)
	}
	return b.String()
}

const _maxDumpBytes = 16

func formatBytes(b []byte) string {
	if len(b) <= _maxDumpBytes {
		return fmt.Sprintf("[% x]", b)
	}
	return fmt.Sprintf("[% x ...] (%d bytes)", b[:_maxDumpBytes], len(b))
}

// decodeText decodes b with enc, or keeps it as is if enc is nil.
func decodeText(enc encoding.Encoding, b []byte) (string, error) {
	if enc == nil {
		enc = encoding.Nop
	}
	s, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}

func encodeText(enc encoding.Encoding, s string) ([]byte, error) {
	if enc == nil {
		enc = encoding.Nop
	}
	return enc.NewEncoder().Bytes([]byte(s))
}
