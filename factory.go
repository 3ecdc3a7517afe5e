package exif

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/jrm-1535/exifcodec/bitconv"
	"github.com/jrm-1535/exifcodec/rational"
	"golang.org/x/text/encoding"
)

/*
   Property factory

   A directory entry is turned into a Property in two steps:

   1. if the tag has a special entry and the entry type (and count when the
      special entry fixes one) matches, the special builder is used.
   2. otherwise, or if the special builder fails, the generic builder
      picks a variant from the TIFF type alone.

   Thumbnail IFD entries share the special entries of their IFD0
   counterpart (Compression, Orientation, XResolution...).
*/

// fieldContext is the input of a builder. Data is in the system byte
// order and holds exactly count values.
type fieldContext struct {
	tag   Tag
	typ   Type
	count uint32
	data  []byte
	order bitconv.ByteOrder // byte order of the source
	enc   encoding.Encoding
}

type special struct {
	types []Type
	count uint32 // 0 if any count is accepted
	build func(c *fieldContext) (Property, error)
}

func (s special) accepts(typ Type, count uint32) bool {
	if s.count != 0 && s.count != count {
		return false
	}
	for _, t := range s.types {
		if t == typ {
			return true
		}
	}
	return false
}

func enumField(k *EnumKind) special {
	count := uint32(1)
	if k.repr == reprASCIIRef {
		count = 0 // 1 or 2, checked by decode
	}
	return special{types: []Type{k.Type()}, count: count, build: func(c *fieldContext) (Property, error) {
		v, err := k.decode(c.typ, c.count, c.data)
		if err != nil {
			return nil, err
		}
		return NewEnum(c.tag, k, v), nil
	}}
}

func dateTimeField(dateOnly bool) special {
	return special{types: []Type{ASCIIString}, build: func(c *fieldContext) (Property, error) {
		return newDateTime(c.tag, c.data, dateOnly)
	}}
}

var versionField = special{types: []Type{Undefined}, count: 4, build: func(c *fieldContext) (Property, error) {
	return NewVersion(c.tag, string(c.data)), nil
}}

var encodedStringField = special{types: []Type{Undefined}, build: func(c *fieldContext) (Property, error) {
	return newEncodedString(c.tag, c.data, c.order, c.enc)
}}

var windowsStringField = special{types: []Type{UnsignedByte}, build: func(c *fieldContext) (Property, error) {
	return newWindowsString(c.tag, c.data)
}}

var subjectAreaField = special{types: []Type{UnsignedShort}, build: func(c *fieldContext) (Property, error) {
	return newSubjectArea(c.tag, getShorts(c.data, c.count))
}}

var subjectLocationField = special{types: []Type{UnsignedShort}, count: 2, build: func(c *fieldContext) (Property, error) {
	return newSubjectArea(c.tag, getShorts(c.data, c.count))
}}

var latLongField = special{types: []Type{UnsignedRational}, count: 3, build: func(c *fieldContext) (Property, error) {
	var v [3]rational.UFraction
	copy(v[:], getURationals(c.data, 3))
	return NewGPSLatLong(c.tag, v), nil
}}

var gpsTimeField = special{types: []Type{UnsignedRational}, count: 3, build: func(c *fieldContext) (Property, error) {
	var v [3]rational.UFraction
	copy(v[:], getURationals(c.data, 3))
	return NewGPSTimeStamp(c.tag, v), nil
}}

var pointerField = special{types: []Type{UnsignedLong}, count: 1, build: func(c *fieldContext) (Property, error) {
	return NewULong(c.tag, native.Uint32(c.data, 0)), nil
}}

var specials = map[Tag]special{
	Compression:               enumField(CompressionKind),
	PhotometricInterpretation: enumField(PhotometricKind),
	Orientation:               enumField(OrientationKind),
	PlanarConfiguration:       enumField(PlanarConfigurationKind),
	YCbCrPositioning:          enumField(YCbCrPositioningKind),
	ResolutionUnit:            enumField(ResolutionUnitKind),
	DateTime:                  dateTimeField(false),
	XPTitle:                   windowsStringField,
	XPComment:                 windowsStringField,
	XPAuthor:                  windowsStringField,
	XPKeywords:                windowsStringField,
	XPSubject:                 windowsStringField,
	EXIFIFDPointer:            pointerField,
	GPSIFDPointer:             pointerField,

	ExifVersion:              versionField,
	FlashpixVersion:          versionField,
	ColorSpace:               enumField(ColorSpaceKind),
	UserComment:              encodedStringField,
	DateTimeOriginal:         dateTimeField(false),
	DateTimeDigitized:        dateTimeField(false),
	ExposureProgram:          enumField(ExposureProgramKind),
	MeteringMode:             enumField(MeteringModeKind),
	LightSource:              enumField(LightSourceKind),
	Flash:                    enumField(FlashKind),
	SubjectArea:              subjectAreaField,
	SubjectLocation:          subjectLocationField,
	FocalPlaneResolutionUnit: enumField(FocalPlaneResolutionUnitKind),
	SensingMethod:            enumField(SensingMethodKind),
	FileSource:               enumField(FileSourceKind),
	SceneType:                enumField(SceneTypeKind),
	CustomRendered:           enumField(CustomRenderedKind),
	ExposureMode:             enumField(ExposureModeKind),
	WhiteBalance:             enumField(WhiteBalanceKind),
	SceneCaptureType:         enumField(SceneCaptureTypeKind),
	GainControl:              enumField(GainControlKind),
	Contrast:                 enumField(ContrastKind),
	Saturation:               enumField(SaturationKind),
	Sharpness:                enumField(SharpnessKind),
	SubjectDistanceRange:     enumField(SubjectDistanceRangeKind),
	InteropIFDPointer:        pointerField,

	GPSLatitudeRef:      enumField(GPSLatitudeRefKind),
	GPSLatitude:         latLongField,
	GPSLongitudeRef:     enumField(GPSLongitudeRefKind),
	GPSLongitude:        latLongField,
	GPSAltitudeRef:      enumField(GPSAltitudeRefKind),
	GPSTimeStamp:        gpsTimeField,
	GPSStatus:           enumField(GPSStatusKind),
	GPSMeasureMode:      enumField(GPSMeasureModeKind),
	GPSSpeedRef:         enumField(GPSSpeedRefKind),
	GPSTrackRef:         enumField(GPSDirectionRefKind),
	GPSImgDirectionRef:  enumField(GPSDirectionRefKind),
	GPSDestLatitudeRef:  enumField(GPSLatitudeRefKind),
	GPSDestLatitude:     latLongField,
	GPSDestLongitudeRef: enumField(GPSLongitudeRefKind),
	GPSDestLongitude:    latLongField,
	GPSDestBearingRef:   enumField(GPSDirectionRefKind),
	GPSDestDistanceRef:  enumField(GPSDistanceRefKind),
	GPSProcessingMethod: encodedStringField,
	GPSAreaInformation:  encodedStringField,
	GPSDateStamp:        dateTimeField(true),
	GPSDifferential:     enumField(GPSDifferentialKind),

	InteroperabilityVersion: versionField,
}

func lookupSpecial(t Tag) (special, bool) {
	s, ok := specials[t]
	if !ok && t.IFD() == FirstIFD {
		s, ok = specials[NewTag(Zeroth, t.ID())]
	}
	return s, ok
}

// NewProperty builds the property of a directory entry. Data holds the
// entry value in byte order o; it may be longer than needed, but not
// shorter than count values of type typ. Fallback decodes ASCII strings
// and undefined-charset comments, nil keeps bytes as they are.
func NewProperty(tagID uint16, typ Type, count uint32, data []byte, o bitconv.ByteOrder,
	ifd IFD, fallback encoding.Encoding) (Property, error) {
	return newProperty(tagID, typ, count, data, o, ifd, fallback, -1, discardLogger)
}

func newProperty(tagID uint16, typ Type, count uint32, data []byte, o bitconv.ByteOrder,
	ifd IFD, fallback encoding.Encoding, offset int64, log *slog.Logger) (Property, error) {

	if !typ.Valid() {
		return nil, fieldError(ifd, tagID, offset,
			fmt.Errorf("%w: type %d, count %d", ErrUnknownPropertyType, uint16(typ), count))
	}
	size := uint64(count) * uint64(typ.Size())
	if uint64(len(data)) < size {
		return nil, fieldError(ifd, tagID, offset,
			fmt.Errorf("%w: %d bytes for %d x %s", ErrMalformedDirectory, len(data), count, typ))
	}
	c := &fieldContext{
		tag:   NewTag(ifd, tagID),
		typ:   typ,
		count: count,
		data:  make([]byte, size),
		order: o,
		enc:   fallback,
	}
	copy(c.data, data)
	bitconv.Reader(o).Swap(c.data, typ.swapWidth())

	if s, ok := lookupSpecial(c.tag); ok && s.accepts(typ, count) {
		p, err := s.build(c)
		if err == nil {
			return p, nil
		}
		log.Warn("falling back to generic property",
			"ifd", ifd.String(), "tag", c.tag.String(), "offset", offset, "err", err)
	}
	p, err := genericProperty(c)
	if err != nil {
		return nil, fieldError(ifd, tagID, offset, err)
	}
	return p, nil
}

func genericProperty(c *fieldContext) (Property, error) {
	b := base{tag: c.tag}
	single := c.count == 1
	switch c.typ {
	case UnsignedByte:
		if single {
			return &ByteValue{b, c.data[0]}, nil
		}
		return &BytesValue{b, c.data}, nil
	case ASCIIString:
		s, err := decodeText(c.enc, bytes.TrimRight(c.data, "\x00"))
		if err != nil {
			return nil, err
		}
		return &ASCIIValue{base: b, Value: s, enc: c.enc}, nil
	case UnsignedShort:
		if single {
			return &UShortValue{b, native.Uint16(c.data, 0)}, nil
		}
		return &UShortsValue{b, getShorts(c.data, c.count)}, nil
	case UnsignedLong:
		if single {
			return &ULongValue{b, native.Uint32(c.data, 0)}, nil
		}
		return &ULongsValue{b, getLongs(c.data, c.count)}, nil
	case UnsignedRational:
		v := getURationals(c.data, c.count)
		if single {
			return &URationalValue{b, v[0]}, nil
		}
		return &URationalsValue{b, v}, nil
	case SignedByte:
		v := make([]int8, c.count)
		for i := range v {
			v[i] = int8(c.data[i])
		}
		return &SBytesValue{b, v}, nil
	case Undefined:
		return &UndefinedValue{b, c.data}, nil
	case SignedShort:
		return &SShortsValue{b, getSShorts(c.data, c.count)}, nil
	case SignedLong:
		if single {
			return &SLongValue{b, native.Int32(c.data, 0)}, nil
		}
		return &SLongsValue{b, getSLongs(c.data, c.count)}, nil
	case SignedRational:
		v := getSRationals(c.data, c.count)
		if single {
			return &SRationalValue{b, v[0]}, nil
		}
		return &SRationalsValue{b, v}, nil
	case Float:
		return &FloatsValue{b, getFloats(c.data, c.count)}, nil
	case Double:
		return &DoublesValue{b, getDoubles(c.data, c.count)}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownPropertyType, c.typ)
}
