package exif

import (
	"fmt"
	"sort"
	"strings"
)

/*
   Enumerated fields

   An EnumKind describes one enumerated field: how its value is stored in
   the directory entry and the name of each value. The table is closed: the
   factory picks the kind from the tag, never from the value.

       reprByte            BYTE x 1
       reprShort           SHORT x 1
       reprASCIIRef        ASCII x 2, one character followed by NUL
       reprUndefinedByte   UNDEFINED x 1

   Bit-flag kinds (Flash) render each group of bits present in the value.
*/

type enumRepr uint8

const (
	reprByte enumRepr = iota + 1
	reprShort
	reprASCIIRef
	reprUndefinedByte
)

type enumFlag struct {
	mask, value uint16
	name        string
}

// EnumKind is the descriptor of an enumerated field.
type EnumKind struct {
	Name  string
	repr  enumRepr
	names map[uint16]string
	flags []enumFlag
}

// Type returns the TIFF type used to store values of kind k, or 0 if k has
// no valid representation.
func (k *EnumKind) Type() Type {
	switch k.repr {
	case reprByte:
		return UnsignedByte
	case reprShort:
		return UnsignedShort
	case reprASCIIRef:
		return ASCIIString
	case reprUndefinedByte:
		return Undefined
	}
	return 0
}

// IsFlags reports whether values of kind k are bit-flag sets.
func (k *EnumKind) IsFlags() bool { return len(k.flags) != 0 }

// Values returns the named values of k in ascending order.
func (k *EnumKind) Values() []uint16 {
	vs := make([]uint16, 0, len(k.names))
	for v := range k.names {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i] < vs[j] })
	return vs
}

// ValueName returns the name of v, and false if v is not one of the named
// values of k. Flag kinds accept any combination of known groups.
func (k *EnumKind) ValueName(v uint16) (string, bool) {
	if n, ok := k.names[v]; ok {
		return n, true
	}
	if !k.IsFlags() {
		return "", false
	}
	var parts []string
	known := uint16(0)
	for _, f := range k.flags {
		known |= f.mask
		if v&f.mask == f.value {
			parts = append(parts, f.name)
		}
	}
	if v&^known != 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

func (k *EnumKind) format(v uint16) string {
	if n, ok := k.ValueName(v); ok {
		return n
	}
	if k.repr == reprASCIIRef && v >= 0x20 && v < 0x7f {
		return fmt.Sprintf("Unknown (%q)", rune(v))
	}
	return fmt.Sprintf("Unknown (%d)", v)
}

// decode extracts the value of an entry stored with the representation of
// k. Data is in system byte order.
func (k *EnumKind) decode(typ Type, count uint32, data []byte) (uint16, error) {
	if typ != k.Type() {
		return 0, fmt.Errorf("%s: unexpected type %s", k.Name, typ)
	}
	switch k.repr {
	case reprByte, reprUndefinedByte:
		if count != 1 || len(data) < 1 {
			return 0, fmt.Errorf("%s: unexpected count %d", k.Name, count)
		}
		return uint16(data[0]), nil
	case reprShort:
		if count != 1 || len(data) < _ShortSize {
			return 0, fmt.Errorf("%s: unexpected count %d", k.Name, count)
		}
		return native.Uint16(data, 0), nil
	case reprASCIIRef:
		// some writers omit the terminating NUL
		if (count != 1 && count != 2) || len(data) < 1 {
			return 0, fmt.Errorf("%s: unexpected count %d", k.Name, count)
		}
		return uint16(data[0]), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedEnumType, k.Name)
}

func (k *EnumKind) interop(id uint16, v uint16) (Interop, error) {
	switch k.repr {
	case reprByte, reprUndefinedByte, reprASCIIRef:
		if v > 0xff {
			return Interop{}, fmt.Errorf("%s: value %d does not fit in a byte", k.Name, v)
		}
	}
	switch k.repr {
	case reprByte:
		return Interop{TagID: id, TypeID: UnsignedByte, Count: 1, Data: []byte{byte(v)}}, nil
	case reprUndefinedByte:
		return Interop{TagID: id, TypeID: Undefined, Count: 1, Data: []byte{byte(v)}}, nil
	case reprShort:
		return Interop{TagID: id, TypeID: UnsignedShort, Count: 1, Data: native.PutUint16(v)}, nil
	case reprASCIIRef:
		return Interop{TagID: id, TypeID: ASCIIString, Count: 2, Data: []byte{byte(v), 0}}, nil
	}
	return Interop{}, fmt.Errorf("%w: %s", ErrUnsupportedEnumType, k.Name)
}

func shortKind(name string, names map[uint16]string) *EnumKind {
	return &EnumKind{Name: name, repr: reprShort, names: names}
}

func refKind(name string, names map[byte]string) *EnumKind {
	m := make(map[uint16]string, len(names))
	for c, n := range names {
		m[uint16(c)] = n
	}
	return &EnumKind{Name: name, repr: reprASCIIRef, names: m}
}

var (
	CompressionKind = shortKind("Compression", map[uint16]string{
		1:     "No compression",
		2:     "CCITT 1D modified Huffman RLE",
		3:     "CCITT Group 3 fax encoding",
		4:     "CCITT Group 4 fax encoding",
		5:     "LZW",
		6:     "JPEG",
		7:     "JPEG (Technote2)",
		8:     "Deflate",
		9:     "RFC 2301 (black and white JBIG)",
		10:    "RFC 2301 (color JBIG)",
		32773: "PackBits compression (Macintosh RLE)",
	})

	PhotometricKind = shortKind("PhotometricInterpretation", map[uint16]string{
		0: "WhiteIsZero",
		1: "BlackIsZero",
		2: "RGB",
		3: "RGB Palette",
		4: "Transparency Mask",
		5: "CMYK",
		6: "YCbCr",
		8: "CIELab",
	})

	OrientationKind = shortKind("Orientation", map[uint16]string{
		1: "Row #0 Top, Col #0 Left",
		2: "Row #0 Top, Col #0 Right",
		3: "Row #0 Bottom, Col #0 Right",
		4: "Row #0 Bottom, Col #0 Left",
		5: "Row #0 Left, Col #0 Top",
		6: "Row #0 Right, Col #0 Top",
		7: "Row #0 Right, Col #0 Bottom",
		8: "Row #0 Left, Col #0 Bottom",
	})

	PlanarConfigurationKind = shortKind("PlanarConfiguration", map[uint16]string{
		1: "Chunky format",
		2: "Planar format",
	})

	YCbCrPositioningKind = shortKind("YCbCrPositioning", map[uint16]string{
		1: "Centered",
		2: "Cosited",
	})

	ResolutionUnitKind = shortKind("ResolutionUnit", map[uint16]string{
		1: "Dots per Arbitrary unit",
		2: "Dots per Inch",
		3: "Dots per Cm",
	})

	ColorSpaceKind = shortKind("ColorSpace", map[uint16]string{
		1:      "sRGB",
		0xffff: "Uncalibrated",
	})

	ExposureProgramKind = shortKind("ExposureProgram", map[uint16]string{
		0: "Undefined",
		1: "Manual",
		2: "Normal program",
		3: "Aperture priority",
		4: "Shutter priority",
		5: "Creative program (biased toward depth of field)",
		6: "Action program (biased toward fast shutter speed)",
		7: "Portrait mode (for closeup photos with the background out of focus)",
		8: "Landscape mode (for landscape photos with the background in focus)",
	})

	MeteringModeKind = shortKind("MeteringMode", map[uint16]string{
		0:   "Unknown",
		1:   "Average",
		2:   "CenterWeightedAverage program",
		3:   "Spot",
		4:   "MultiSpot",
		5:   "Pattern",
		6:   "Partial",
		255: "Other",
	})

	LightSourceKind = shortKind("LightSource", map[uint16]string{
		0:   "Unknown",
		1:   "Daylight",
		2:   "Fluorescent",
		3:   "Tungsten (incandescent light)",
		4:   "Flash",
		9:   "Fine weather",
		10:  "Cloudy weather",
		11:  "Shade",
		12:  "Daylight fluorescent (D 5700 - 7100K)",
		13:  "Day white fluorescent (N 4600 - 5400K)",
		14:  "Cool white fluorescent (W 3900 - 4500K)",
		15:  "White fluorescent (WW 3200 - 3700K)",
		17:  "Standard light A",
		18:  "Standard light B",
		19:  "Standard light C",
		20:  "D55",
		21:  "D65",
		22:  "D75",
		23:  "D50",
		24:  "ISO studio tungsten",
		255: "Other light source",
	})

	FlashKind = &EnumKind{
		Name:  "Flash",
		repr:  reprShort,
		names: map[uint16]string{0: "Flash did not fire"},
		flags: []enumFlag{
			{0x01, 0x00, "Flash did not fire"},
			{0x01, 0x01, "Flash fired"},
			{0x06, 0x04, "return light not detected"},
			{0x06, 0x06, "return light detected"},
			{0x18, 0x08, "compulsory flash mode"},
			{0x18, 0x10, "compulsory flash suppression"},
			{0x18, 0x18, "auto mode"},
			{0x20, 0x20, "no flash function"},
			{0x40, 0x40, "red-eye reduction mode"},
		},
	}

	FocalPlaneResolutionUnitKind = shortKind("FocalPlaneResolutionUnit", map[uint16]string{
		1: "No absolute unit",
		2: "Inch",
		3: "Centimeter",
	})

	SensingMethodKind = shortKind("SensingMethod", map[uint16]string{
		1: "Undefined",
		2: "One-chip color area sensor",
		3: "Two-chip color area sensor",
		4: "Three-chip color area sensor",
		5: "Color sequential area sensor",
		7: "Trilinear sensor",
		8: "Color sequential linear sensor",
	})

	FileSourceKind = &EnumKind{Name: "FileSource", repr: reprUndefinedByte, names: map[uint16]string{
		0: "Others",
		1: "Scanner of transparent type",
		2: "Scanner of reflex type",
		3: "DSC",
	}}

	SceneTypeKind = &EnumKind{Name: "SceneType", repr: reprUndefinedByte, names: map[uint16]string{
		1: "Directly photographed",
	}}

	CustomRenderedKind = shortKind("CustomRendered", map[uint16]string{
		0: "Normal process",
		1: "Custom process",
	})

	ExposureModeKind = shortKind("ExposureMode", map[uint16]string{
		0: "Auto exposure",
		1: "Manual exposure",
		2: "Auto bracket",
	})

	WhiteBalanceKind = shortKind("WhiteBalance", map[uint16]string{
		0: "Auto white balance",
		1: "Manual white balance",
	})

	SceneCaptureTypeKind = shortKind("SceneCaptureType", map[uint16]string{
		0: "Standard",
		1: "Landscape",
		2: "Portrait",
		3: "Night scene",
	})

	GainControlKind = shortKind("GainControl", map[uint16]string{
		0: "None",
		1: "Low gain up",
		2: "High gain up",
		3: "Low gain down",
		4: "High gain down",
	})

	ContrastKind = shortKind("Contrast", map[uint16]string{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	})

	SaturationKind = shortKind("Saturation", map[uint16]string{
		0: "Normal",
		1: "Low saturation",
		2: "High saturation",
	})

	SharpnessKind = shortKind("Sharpness", map[uint16]string{
		0: "Normal",
		1: "Soft",
		2: "Hard",
	})

	SubjectDistanceRangeKind = shortKind("SubjectDistanceRange", map[uint16]string{
		0: "Unknown",
		1: "Macro",
		2: "Close View",
		3: "Distant View",
	})

	GPSLatitudeRefKind = refKind("GPSLatitudeRef", map[byte]string{
		'N': "North",
		'S': "South",
	})

	GPSLongitudeRefKind = refKind("GPSLongitudeRef", map[byte]string{
		'E': "East",
		'W': "West",
	})

	GPSAltitudeRefKind = &EnumKind{Name: "GPSAltitudeRef", repr: reprByte, names: map[uint16]string{
		0: "Above sea level",
		1: "Below sea level",
	}}

	GPSStatusKind = refKind("GPSStatus", map[byte]string{
		'A': "Measurement in progress",
		'V': "Measurement interrupted",
	})

	GPSMeasureModeKind = refKind("GPSMeasureMode", map[byte]string{
		'2': "2-dimensional measurement",
		'3': "3-dimensional measurement",
	})

	GPSSpeedRefKind = refKind("GPSSpeedRef", map[byte]string{
		'K': "Kilometers per hour",
		'M': "Miles per hour",
		'N': "Knots",
	})

	GPSDirectionRefKind = refKind("GPSDirectionRef", map[byte]string{
		'T': "True direction",
		'M': "Magnetic direction",
	})

	GPSDistanceRefKind = refKind("GPSDestDistanceRef", map[byte]string{
		'K': "Kilometers",
		'M': "Miles",
		'N': "Nautical miles",
	})

	GPSDifferentialKind = shortKind("GPSDifferential", map[uint16]string{
		0: "Measurement without differential correction",
		1: "Differential correction applied",
	})

	JFIFUnitsKind = &EnumKind{Name: "JFIFUnits", repr: reprByte, names: map[uint16]string{
		0: "No units, aspect ratio only",
		1: "Dots per inch",
		2: "Dots per cm",
	}}

	JFXXExtensionKind = &EnumKind{Name: "JFXXExtensionCode", repr: reprByte, names: map[uint16]string{
		0x10: "Thumbnail coded using JPEG",
		0x11: "Thumbnail stored using 1 byte/pixel",
		0x13: "Thumbnail stored using 3 bytes/pixel",
	}}
)
