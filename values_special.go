package exif

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"strings"
	"time"

	"github.com/jrm-1535/exifcodec/bitconv"
	"github.com/jrm-1535/exifcodec/rational"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
)

// EnumValue is an enumerated field, see EnumKind.
type EnumValue struct {
	base
	Kind  *EnumKind
	Value uint16
}

func NewEnum(t Tag, k *EnumKind, v uint16) *EnumValue {
	return &EnumValue{base{tag: t}, k, v}
}

func (p *EnumValue) Any() any       { return p.Value }
func (p *EnumValue) String() string { return p.Kind.format(p.Value) }

func (p *EnumValue) Interop() (Interop, error) {
	return p.Kind.interop(p.tag.ID(), p.Value)
}

/*
   Encoded strings (UserComment, GPSProcessingMethod, GPSAreaInformation)

   UNDEFINED data starting with an 8-byte character code:

     "ASCII\x00\x00\x00"       ITU-T T.50 IA5
     "JIS\x00\x00\x00\x00\x00" JIS X208-1990
     "UNICODE\x00"             UCS-2, in the byte order of the file
     8 x 0x00                  undefined, decoded with the fallback encoding
*/

type Charset uint8

const (
	CharsetUndefined Charset = iota
	CharsetASCII
	CharsetJIS
	CharsetUnicode
)

const _charsetSize = 8

var charsetCodes = [...]string{
	CharsetUndefined: "\x00\x00\x00\x00\x00\x00\x00\x00",
	CharsetASCII:     "ASCII\x00\x00\x00",
	CharsetJIS:       "JIS\x00\x00\x00\x00\x00",
	CharsetUnicode:   "UNICODE\x00",
}

func (c Charset) String() string {
	switch c {
	case CharsetASCII:
		return "ASCII"
	case CharsetJIS:
		return "JIS"
	case CharsetUnicode:
		return "Unicode"
	}
	return "Undefined"
}

type EncodedStringValue struct {
	base
	Charset Charset
	Value   string
	order   bitconv.ByteOrder
	enc     encoding.Encoding
}

func NewEncodedString(t Tag, c Charset, s string) *EncodedStringValue {
	return &EncodedStringValue{base: base{tag: t}, Charset: c, Value: s, order: bitconv.SystemByteOrder}
}

func (p *EncodedStringValue) Any() any       { return p.Value }
func (p *EncodedStringValue) String() string { return p.Value }

func charsetEncoding(c Charset, o bitconv.ByteOrder, fallback encoding.Encoding) encoding.Encoding {
	switch c {
	case CharsetJIS:
		return japanese.ShiftJIS
	case CharsetUnicode:
		e := unicode.LittleEndian
		if o == bitconv.BigEndian {
			e = unicode.BigEndian
		}
		return unicode.UTF16(e, unicode.IgnoreBOM)
	case CharsetUndefined:
		return fallback
	}
	return encoding.Nop
}

func newEncodedString(t Tag, data []byte, o bitconv.ByteOrder, fallback encoding.Encoding) (*EncodedStringValue, error) {
	if len(data) < _charsetSize {
		return nil, fmt.Errorf("encoded string too short (%d bytes)", len(data))
	}
	c := Charset(0)
	found := false
	for i, code := range charsetCodes {
		if string(data[:_charsetSize]) == code {
			c, found = Charset(i), true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("unknown character code %q", data[:_charsetSize])
	}
	text := data[_charsetSize:]
	if c == CharsetUnicode {
		for len(text) >= 2 && text[len(text)-1] == 0 && text[len(text)-2] == 0 {
			text = text[:len(text)-2]
		}
	} else {
		text = bytes.TrimRight(text, "\x00")
	}
	s, err := decodeText(charsetEncoding(c, o, fallback), text)
	if err != nil {
		return nil, err
	}
	return &EncodedStringValue{base: base{tag: t}, Charset: c, Value: s, order: o, enc: fallback}, nil
}

func (p *EncodedStringValue) Interop() (Interop, error) {
	return p.interopFor(p.order)
}

func (p *EncodedStringValue) interopFor(o bitconv.ByteOrder) (Interop, error) {
	if int(p.Charset) >= len(charsetCodes) {
		return Interop{}, fmt.Errorf("EncodedStringValue.Interop: invalid charset %d", p.Charset)
	}
	b, err := encodeText(charsetEncoding(p.Charset, o, p.enc), p.Value)
	if err != nil {
		return Interop{}, fmt.Errorf("EncodedStringValue.Interop: %s: %w", p.Name(), err)
	}
	d := append([]byte(charsetCodes[p.Charset]), b...)
	return Interop{p.tag.ID(), Undefined, uint32(len(d)), d}, nil
}

const (
	_dateTimeLayout = "2006:01:02 15:04:05"
	_dateLayout     = "2006:01:02"
)

// DateTimeValue is an ASCII date and time "YYYY:MM:DD HH:MM:SS", or a date
// only "YYYY:MM:DD" if DateOnly is set. Times carry no zone and are
// returned in UTC.
type DateTimeValue struct {
	base
	Value    time.Time
	DateOnly bool
}

func NewDateTime(t Tag, v time.Time) *DateTimeValue { return &DateTimeValue{base{tag: t}, v, false} }
func NewDate(t Tag, v time.Time) *DateTimeValue     { return &DateTimeValue{base{tag: t}, v, true} }

func (p *DateTimeValue) layout() string {
	if p.DateOnly {
		return _dateLayout
	}
	return _dateTimeLayout
}

func (p *DateTimeValue) Any() any       { return p.Value }
func (p *DateTimeValue) String() string { return p.Value.Format(p.layout()) }

func (p *DateTimeValue) Interop() (Interop, error) {
	b := append([]byte(p.String()), 0)
	return Interop{p.tag.ID(), ASCIIString, uint32(len(b)), b}, nil
}

func newDateTime(t Tag, data []byte, dateOnly bool) (*DateTimeValue, error) {
	s := strings.TrimRight(string(data), "\x00 ")
	p := &DateTimeValue{base: base{tag: t}, DateOnly: dateOnly}
	v, err := time.ParseInLocation(p.layout(), s, time.UTC)
	if err != nil {
		return nil, err
	}
	p.Value = v
	return p, nil
}

// VersionValue is a 4-character version stored as UNDEFINED, "0230" for
// Exif 2.3 for instance. Shorter values are padded with '0' on the right,
// longer values truncated.
type VersionValue struct {
	base
	Value string
}

func NewVersion(t Tag, v string) *VersionValue { return &VersionValue{base{tag: t}, v} }

func (p *VersionValue) Any() any { return p.Value }

func (p *VersionValue) String() string {
	v := p.bytes()
	major := strings.TrimLeft(string(v[:2]), "0")
	if major == "" {
		major = "0"
	}
	return major + "." + string(v[2:])
}

func (p *VersionValue) bytes() []byte {
	v := []byte(p.Value)
	if len(v) > 4 {
		v = v[:4]
	}
	for len(v) < 4 {
		v = append(v, '0')
	}
	return v
}

func (p *VersionValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), Undefined, 4, p.bytes()}, nil
}

// AreaShape is the shape of a SubjectRegion, given by its number of values.
type AreaShape uint8

const (
	AreaPoint     AreaShape = 2
	AreaCircle    AreaShape = 3
	AreaRectangle AreaShape = 4
)

// SubjectRegion locates the main subject: a point (X, Y), a circle (X, Y,
// Diameter) or a rectangle centered on (X, Y).
type SubjectRegion struct {
	Shape         AreaShape
	X, Y          uint16
	Diameter      uint16
	Width, Height uint16
}

type SubjectAreaValue struct {
	base
	Value SubjectRegion
}

func NewSubjectArea(t Tag, v SubjectRegion) *SubjectAreaValue { return &SubjectAreaValue{base{tag: t}, v} }

func (p *SubjectAreaValue) Any() any { return p.Value }

func (p *SubjectAreaValue) String() string {
	a := p.Value
	switch a.Shape {
	case AreaCircle:
		return fmt.Sprintf("Circle center (%d, %d) diameter %d", a.X, a.Y, a.Diameter)
	case AreaRectangle:
		return fmt.Sprintf("Rectangle center (%d, %d) width %d height %d", a.X, a.Y, a.Width, a.Height)
	}
	return fmt.Sprintf("Point (%d, %d)", a.X, a.Y)
}

func (p *SubjectAreaValue) Interop() (Interop, error) {
	a := p.Value
	var v []uint16
	switch a.Shape {
	case AreaPoint:
		v = []uint16{a.X, a.Y}
	case AreaCircle:
		v = []uint16{a.X, a.Y, a.Diameter}
	case AreaRectangle:
		v = []uint16{a.X, a.Y, a.Width, a.Height}
	default:
		return Interop{}, fmt.Errorf("SubjectAreaValue.Interop: invalid shape %d", a.Shape)
	}
	return Interop{p.tag.ID(), UnsignedShort, uint32(len(v)), putShorts(v)}, nil
}

func newSubjectArea(t Tag, v []uint16) (*SubjectAreaValue, error) {
	if len(v) < int(AreaPoint) || len(v) > int(AreaRectangle) {
		return nil, fmt.Errorf("subject area with %d values", len(v))
	}
	a := SubjectRegion{Shape: AreaShape(len(v))}
	switch a.Shape {
	case AreaRectangle:
		a.Width, a.Height = v[2], v[3]
	case AreaCircle:
		a.Diameter = v[2]
	}
	a.X, a.Y = v[0], v[1]
	return &SubjectAreaValue{base{tag: t}, a}, nil
}

// GPSLatLongValue is a latitude or longitude in degrees, minutes and
// seconds. The hemisphere is given by the matching reference field.
type GPSLatLongValue struct {
	base
	Value [3]rational.UFraction
}

func NewGPSLatLong(t Tag, v [3]rational.UFraction) *GPSLatLongValue {
	return &GPSLatLongValue{base{tag: t}, v}
}

// Decimal returns the angle in decimal degrees.
func (p *GPSLatLongValue) Decimal() float64 {
	return p.Value[0].Float64() + p.Value[1].Float64()/60 + p.Value[2].Float64()/3600
}

func (p *GPSLatLongValue) Any() any { return p.Value }

func (p *GPSLatLongValue) String() string {
	return fmt.Sprintf("%g° %g' %g\"", p.Value[0].Float64(), p.Value[1].Float64(), p.Value[2].Float64())
}

func (p *GPSLatLongValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedRational, 3, putURationals(p.Value[:])}, nil
}

// GPSTimeStampValue is the UTC time of day of a GPS fix.
type GPSTimeStampValue struct {
	base
	Value [3]rational.UFraction
}

func NewGPSTimeStamp(t Tag, v [3]rational.UFraction) *GPSTimeStampValue {
	return &GPSTimeStampValue{base{tag: t}, v}
}

// Duration returns the time since midnight.
func (p *GPSTimeStampValue) Duration() time.Duration {
	s := p.Value[0].Float64()*3600 + p.Value[1].Float64()*60 + p.Value[2].Float64()
	return time.Duration(s * float64(time.Second))
}

func (p *GPSTimeStampValue) Any() any { return p.Value }

func (p *GPSTimeStampValue) String() string {
	return fmt.Sprintf("%02.0f:%02.0f:%06.3f", p.Value[0].Float64(), p.Value[1].Float64(), p.Value[2].Float64())
}

func (p *GPSTimeStampValue) Interop() (Interop, error) {
	return Interop{p.tag.ID(), UnsignedRational, 3, putURationals(p.Value[:])}, nil
}

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// WindowsStringValue is one of the XP tags: BYTE data holding a UTF-16LE
// NUL-terminated string.
type WindowsStringValue struct {
	base
	Value string
}

func NewWindowsString(t Tag, v string) *WindowsStringValue { return &WindowsStringValue{base{tag: t}, v} }

func (p *WindowsStringValue) Any() any       { return p.Value }
func (p *WindowsStringValue) String() string { return p.Value }

func (p *WindowsStringValue) Interop() (Interop, error) {
	b, err := encodeText(utf16LE, p.Value)
	if err != nil {
		return Interop{}, fmt.Errorf("WindowsStringValue.Interop: %s: %w", p.Name(), err)
	}
	b = append(b, 0, 0)
	return Interop{p.tag.ID(), UnsignedByte, uint32(len(b)), b}, nil
}

func newWindowsString(t Tag, data []byte) (*WindowsStringValue, error) {
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("odd UTF-16 length %d", len(data))
	}
	for len(data) >= 2 && data[len(data)-1] == 0 && data[len(data)-2] == 0 {
		data = data[:len(data)-2]
	}
	s, err := decodeText(utf16LE, data)
	if err != nil {
		return nil, err
	}
	return &WindowsStringValue{base{tag: t}, s}, nil
}

// JFIFVersionValue is the JFIF version, 1.02 for instance.
type JFIFVersionValue struct {
	base
	Major, Minor uint8
}

func NewJFIFVersion(major, minor uint8) *JFIFVersionValue {
	return &JFIFVersionValue{base{tag: JFIFVersion}, major, minor}
}

func (p *JFIFVersionValue) Any() any       { return uint16(p.Major)<<8 | uint16(p.Minor) }
func (p *JFIFVersionValue) String() string { return fmt.Sprintf("%d.%02d", p.Major, p.Minor) }

func (p *JFIFVersionValue) Interop() (Interop, error) {
	v := uint16(p.Major)<<8 | uint16(p.Minor)
	return Interop{p.tag.ID(), UnsignedShort, 1, native.PutUint16(v)}, nil
}

// ThumbnailFormat is the encoding of a JFIF or JFXX thumbnail.
type ThumbnailFormat uint8

const (
	ThumbnailJPEG ThumbnailFormat = iota
	ThumbnailPalette
	ThumbnailRGB24
)

const _paletteSize = 768 // 256 RGB entries

// APP0Thumbnail is an uncompressed or JPEG thumbnail found in APP0. Palette
// is only used by ThumbnailPalette.
type APP0Thumbnail struct {
	Format  ThumbnailFormat
	Palette []byte
	Data    []byte
}

// Image decodes the thumbnail. Width and height are ignored for JPEG
// thumbnails.
func (th APP0Thumbnail) Image(width, height int) (image.Image, error) {
	switch th.Format {
	case ThumbnailJPEG:
		return jpeg.Decode(bytes.NewReader(th.Data))
	case ThumbnailPalette:
		if len(th.Palette) != _paletteSize || len(th.Data) < width*height {
			return nil, fmt.Errorf("APP0Thumbnail.Image: short palette thumbnail")
		}
		pal := make(color.Palette, 256)
		for i := range pal {
			pal[i] = color.RGBA{th.Palette[3*i], th.Palette[3*i+1], th.Palette[3*i+2], 0xff}
		}
		img := image.NewPaletted(image.Rect(0, 0, width, height), pal)
		copy(img.Pix, th.Data)
		return img, nil
	case ThumbnailRGB24:
		if len(th.Data) < 3*width*height {
			return nil, fmt.Errorf("APP0Thumbnail.Image: short RGB thumbnail")
		}
		img := image.NewRGBA(image.Rect(0, 0, width, height))
		for i := 0; i < width*height; i++ {
			copy(img.Pix[4*i:4*i+3], th.Data[3*i:3*i+3])
			img.Pix[4*i+3] = 0xff
		}
		return img, nil
	}
	return nil, fmt.Errorf("APP0Thumbnail.Image: unknown format %d", th.Format)
}

type ThumbnailValue struct {
	base
	Value APP0Thumbnail
}

func NewThumbnail(t Tag, v APP0Thumbnail) *ThumbnailValue { return &ThumbnailValue{base{tag: t}, v} }

func (p *ThumbnailValue) Any() any { return p.Value }

func (p *ThumbnailValue) String() string {
	switch p.Value.Format {
	case ThumbnailJPEG:
		return fmt.Sprintf("JPEG thumbnail (%d bytes)", len(p.Value.Data))
	case ThumbnailPalette:
		return fmt.Sprintf("Palette thumbnail (%d pixels)", len(p.Value.Data))
	}
	return fmt.Sprintf("RGB thumbnail (%d pixels)", len(p.Value.Data)/3)
}

func (p *ThumbnailValue) Interop() (Interop, error) {
	var d []byte
	if p.Value.Format == ThumbnailPalette {
		if len(p.Value.Palette) != _paletteSize {
			return Interop{}, fmt.Errorf("ThumbnailValue.Interop: palette has %d bytes", len(p.Value.Palette))
		}
		d = append(d, p.Value.Palette...)
	}
	d = append(d, p.Value.Data...)
	return Interop{p.tag.ID(), Undefined, uint32(len(d)), d}, nil
}
