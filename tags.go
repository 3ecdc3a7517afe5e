package exif

import "fmt"

/*
   Tag identity

   Every field is addressed by a single integer key made of the base of the
   section (IFD) it belongs to plus its 16-bit numeric id within that
   section:

       key = section + id          section is a multiple of 100000
       section(key) = key / 100000 * 100000
       id(key)      = key - section(key)

   JFIF and JFXX fields are not directory entries; their id is the byte
   offset of the field within the APP0 payload so that sorting keys
   reproduces the wire order.
*/

// IFD identifies a metadata section.
type IFD int

const ifdBase = 100000

const (
	Zeroth       IFD = ifdBase * (iota + 1) // IFD0, primary image (TIFF)
	EXIFIFD                                 // Exif private IFD, pointed to by IFD0
	GPSIFD                                  // GPS IFD, pointed to by IFD0
	InteropIFD                              // Interoperability IFD, pointed to by the Exif IFD
	FirstIFD                                // IFD1, thumbnail image
	MakerNoteIFD                            // proprietary, read only
	JFIFIFD                                 // JFIF APP0 fields
	JFXXIFD                                 // JFXX APP0 extension fields
)

var ifdNames = map[IFD]string{
	Zeroth:       "Primary",
	EXIFIFD:      "Exif",
	GPSIFD:       "GPS",
	InteropIFD:   "Interoperability",
	FirstIFD:     "Thumbnail",
	MakerNoteIFD: "Maker Note",
	JFIFIFD:      "JFIF",
	JFXXIFD:      "JFXX",
}

func (ifd IFD) String() string {
	if n, ok := ifdNames[ifd]; ok {
		return n
	}
	return fmt.Sprintf("IFD(%d)", int(ifd))
}

// Tag is the combined (section, id) key of a field.
type Tag int

// NewTag returns the key of field id in section ifd.
func NewTag(ifd IFD, id uint16) Tag {
	return Tag(int(ifd) + int(id))
}

// IFD returns the section part of the key.
func (t Tag) IFD() IFD {
	return IFD(int(t) / ifdBase * ifdBase)
}

// ID returns the 16-bit numeric id of the field within its section.
func (t Tag) ID() uint16 {
	return uint16(int(t) - int(t.IFD()))
}

// String returns the symbolic name of t, or "<section> 0xNNNN" when the
// tag is not known.
func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	// thumbnail IFD tags share the baseline TIFF ids
	if t.IFD() == FirstIFD {
		if n, ok := tagNames[NewTag(Zeroth, t.ID())]; ok {
			return "Thumbnail" + n
		}
	}
	return fmt.Sprintf("%s 0x%04x", t.IFD(), t.ID())
}

const ( // IFD0 (and IFD1) tags
	NewSubfileType              = Tag(Zeroth) + 0xfe
	SubfileType                 = Tag(Zeroth) + 0xff
	ImageWidth                  = Tag(Zeroth) + 0x100
	ImageLength                 = Tag(Zeroth) + 0x101
	BitsPerSample               = Tag(Zeroth) + 0x102
	Compression                 = Tag(Zeroth) + 0x103
	PhotometricInterpretation   = Tag(Zeroth) + 0x106
	Threshholding               = Tag(Zeroth) + 0x107
	FillOrder                   = Tag(Zeroth) + 0x10a
	DocumentName                = Tag(Zeroth) + 0x10d
	ImageDescription            = Tag(Zeroth) + 0x10e
	Make                        = Tag(Zeroth) + 0x10f
	Model                       = Tag(Zeroth) + 0x110
	StripOffsets                = Tag(Zeroth) + 0x111
	Orientation                 = Tag(Zeroth) + 0x112
	SamplesPerPixel             = Tag(Zeroth) + 0x115
	RowsPerStrip                = Tag(Zeroth) + 0x116
	StripByteCounts             = Tag(Zeroth) + 0x117
	MinSampleValue              = Tag(Zeroth) + 0x118
	MaxSampleValue              = Tag(Zeroth) + 0x119
	XResolution                 = Tag(Zeroth) + 0x11a
	YResolution                 = Tag(Zeroth) + 0x11b
	PlanarConfiguration         = Tag(Zeroth) + 0x11c
	PageName                    = Tag(Zeroth) + 0x11d
	XPosition                   = Tag(Zeroth) + 0x11e
	YPosition                   = Tag(Zeroth) + 0x11f
	GrayResponseUnit            = Tag(Zeroth) + 0x122
	GrayResponseCurve           = Tag(Zeroth) + 0x123
	ResolutionUnit              = Tag(Zeroth) + 0x128
	PageNumber                  = Tag(Zeroth) + 0x129
	TransferFunction            = Tag(Zeroth) + 0x12d
	Software                    = Tag(Zeroth) + 0x131
	DateTime                    = Tag(Zeroth) + 0x132
	Artist                      = Tag(Zeroth) + 0x13b
	HostComputer                = Tag(Zeroth) + 0x13c
	Predictor                   = Tag(Zeroth) + 0x13d
	WhitePoint                  = Tag(Zeroth) + 0x13e
	PrimaryChromaticities       = Tag(Zeroth) + 0x13f
	ColorMap                    = Tag(Zeroth) + 0x140
	TileWidth                   = Tag(Zeroth) + 0x142
	TileLength                  = Tag(Zeroth) + 0x143
	TileOffsets                 = Tag(Zeroth) + 0x144
	TileByteCounts              = Tag(Zeroth) + 0x145
	ExtraSamples                = Tag(Zeroth) + 0x152
	SampleFormat                = Tag(Zeroth) + 0x153
	JPEGInterchangeFormat       = Tag(Zeroth) + 0x201
	JPEGInterchangeFormatLength = Tag(Zeroth) + 0x202
	YCbCrCoefficients           = Tag(Zeroth) + 0x211
	YCbCrSubSampling            = Tag(Zeroth) + 0x212
	YCbCrPositioning            = Tag(Zeroth) + 0x213
	ReferenceBlackWhite         = Tag(Zeroth) + 0x214
	Copyright                   = Tag(Zeroth) + 0x8298
	EXIFIFDPointer              = Tag(Zeroth) + 0x8769
	GPSIFDPointer               = Tag(Zeroth) + 0x8825
	XPTitle                     = Tag(Zeroth) + 0x9c9b
	XPComment                   = Tag(Zeroth) + 0x9c9c
	XPAuthor                    = Tag(Zeroth) + 0x9c9d
	XPKeywords                  = Tag(Zeroth) + 0x9c9e
	XPSubject                   = Tag(Zeroth) + 0x9c9f
	Padding                     = Tag(Zeroth) + 0xea1c
)

const ( // IFD1 tags used by the codec itself
	ThumbnailImageWidth                  = Tag(FirstIFD) + 0x100
	ThumbnailImageLength                 = Tag(FirstIFD) + 0x101
	ThumbnailCompression                 = Tag(FirstIFD) + 0x103
	ThumbnailPhotometric                 = Tag(FirstIFD) + 0x106
	ThumbnailStripOffsets                = Tag(FirstIFD) + 0x111
	ThumbnailOrientation                 = Tag(FirstIFD) + 0x112
	ThumbnailStripByteCounts             = Tag(FirstIFD) + 0x117
	ThumbnailXResolution                 = Tag(FirstIFD) + 0x11a
	ThumbnailYResolution                 = Tag(FirstIFD) + 0x11b
	ThumbnailResolutionUnit              = Tag(FirstIFD) + 0x128
	ThumbnailDateTime                    = Tag(FirstIFD) + 0x132
	ThumbnailJPEGInterchangeFormat       = Tag(FirstIFD) + 0x201
	ThumbnailJPEGInterchangeFormatLength = Tag(FirstIFD) + 0x202
	ThumbnailYCbCrPositioning            = Tag(FirstIFD) + 0x213
	ThumbnailXPTitle                     = Tag(FirstIFD) + 0x9c9b
	ThumbnailXPComment                   = Tag(FirstIFD) + 0x9c9c
	ThumbnailXPAuthor                    = Tag(FirstIFD) + 0x9c9d
	ThumbnailXPKeywords                  = Tag(FirstIFD) + 0x9c9e
	ThumbnailXPSubject                   = Tag(FirstIFD) + 0x9c9f
)

const ( // Exif IFD tags
	ExposureTime             = Tag(EXIFIFD) + 0x829a
	FNumber                  = Tag(EXIFIFD) + 0x829d
	ExposureProgram          = Tag(EXIFIFD) + 0x8822
	SpectralSensitivity      = Tag(EXIFIFD) + 0x8824
	ISOSpeedRatings          = Tag(EXIFIFD) + 0x8827
	OECF                     = Tag(EXIFIFD) + 0x8828
	ExifVersion              = Tag(EXIFIFD) + 0x9000
	DateTimeOriginal         = Tag(EXIFIFD) + 0x9003
	DateTimeDigitized        = Tag(EXIFIFD) + 0x9004
	OffsetTime               = Tag(EXIFIFD) + 0x9010
	OffsetTimeOriginal       = Tag(EXIFIFD) + 0x9011
	OffsetTimeDigitized      = Tag(EXIFIFD) + 0x9012
	ComponentsConfiguration  = Tag(EXIFIFD) + 0x9101
	CompressedBitsPerPixel   = Tag(EXIFIFD) + 0x9102
	ShutterSpeedValue        = Tag(EXIFIFD) + 0x9201
	ApertureValue            = Tag(EXIFIFD) + 0x9202
	BrightnessValue          = Tag(EXIFIFD) + 0x9203
	ExposureBiasValue        = Tag(EXIFIFD) + 0x9204
	MaxApertureValue         = Tag(EXIFIFD) + 0x9205
	SubjectDistance          = Tag(EXIFIFD) + 0x9206
	MeteringMode             = Tag(EXIFIFD) + 0x9207
	LightSource              = Tag(EXIFIFD) + 0x9208
	Flash                    = Tag(EXIFIFD) + 0x9209
	FocalLength              = Tag(EXIFIFD) + 0x920a
	SubjectArea              = Tag(EXIFIFD) + 0x9214
	MakerNote                = Tag(EXIFIFD) + 0x927c
	UserComment              = Tag(EXIFIFD) + 0x9286
	SubsecTime               = Tag(EXIFIFD) + 0x9290
	SubsecTimeOriginal       = Tag(EXIFIFD) + 0x9291
	SubsecTimeDigitized      = Tag(EXIFIFD) + 0x9292
	FlashpixVersion          = Tag(EXIFIFD) + 0xa000
	ColorSpace               = Tag(EXIFIFD) + 0xa001
	PixelXDimension          = Tag(EXIFIFD) + 0xa002
	PixelYDimension          = Tag(EXIFIFD) + 0xa003
	RelatedSoundFile         = Tag(EXIFIFD) + 0xa004
	InteropIFDPointer        = Tag(EXIFIFD) + 0xa005
	FlashEnergy              = Tag(EXIFIFD) + 0xa20b
	FocalPlaneXResolution    = Tag(EXIFIFD) + 0xa20e
	FocalPlaneYResolution    = Tag(EXIFIFD) + 0xa20f
	FocalPlaneResolutionUnit = Tag(EXIFIFD) + 0xa210
	SubjectLocation          = Tag(EXIFIFD) + 0xa214
	ExposureIndex            = Tag(EXIFIFD) + 0xa215
	SensingMethod            = Tag(EXIFIFD) + 0xa217
	FileSource               = Tag(EXIFIFD) + 0xa300
	SceneType                = Tag(EXIFIFD) + 0xa301
	CFAPattern               = Tag(EXIFIFD) + 0xa302
	CustomRendered           = Tag(EXIFIFD) + 0xa401
	ExposureMode             = Tag(EXIFIFD) + 0xa402
	WhiteBalance             = Tag(EXIFIFD) + 0xa403
	DigitalZoomRatio         = Tag(EXIFIFD) + 0xa404
	FocalLengthIn35mmFilm    = Tag(EXIFIFD) + 0xa405
	SceneCaptureType         = Tag(EXIFIFD) + 0xa406
	GainControl              = Tag(EXIFIFD) + 0xa407
	Contrast                 = Tag(EXIFIFD) + 0xa408
	Saturation               = Tag(EXIFIFD) + 0xa409
	Sharpness                = Tag(EXIFIFD) + 0xa40a
	DeviceSettingDescription = Tag(EXIFIFD) + 0xa40b
	SubjectDistanceRange     = Tag(EXIFIFD) + 0xa40c
	ImageUniqueID            = Tag(EXIFIFD) + 0xa420
	LensSpecification        = Tag(EXIFIFD) + 0xa432
	LensMake                 = Tag(EXIFIFD) + 0xa433
	LensModel                = Tag(EXIFIFD) + 0xa434
	ExifPadding              = Tag(EXIFIFD) + 0xea1c
)

const ( // GPS IFD tags
	GPSVersionID         = Tag(GPSIFD) + 0x00
	GPSLatitudeRef       = Tag(GPSIFD) + 0x01
	GPSLatitude          = Tag(GPSIFD) + 0x02
	GPSLongitudeRef      = Tag(GPSIFD) + 0x03
	GPSLongitude         = Tag(GPSIFD) + 0x04
	GPSAltitudeRef       = Tag(GPSIFD) + 0x05
	GPSAltitude          = Tag(GPSIFD) + 0x06
	GPSTimeStamp         = Tag(GPSIFD) + 0x07
	GPSSatellites        = Tag(GPSIFD) + 0x08
	GPSStatus            = Tag(GPSIFD) + 0x09
	GPSMeasureMode       = Tag(GPSIFD) + 0x0a
	GPSDOP               = Tag(GPSIFD) + 0x0b
	GPSSpeedRef          = Tag(GPSIFD) + 0x0c
	GPSSpeed             = Tag(GPSIFD) + 0x0d
	GPSTrackRef          = Tag(GPSIFD) + 0x0e
	GPSTrack             = Tag(GPSIFD) + 0x0f
	GPSImgDirectionRef   = Tag(GPSIFD) + 0x10
	GPSImgDirection      = Tag(GPSIFD) + 0x11
	GPSMapDatum          = Tag(GPSIFD) + 0x12
	GPSDestLatitudeRef   = Tag(GPSIFD) + 0x13
	GPSDestLatitude      = Tag(GPSIFD) + 0x14
	GPSDestLongitudeRef  = Tag(GPSIFD) + 0x15
	GPSDestLongitude     = Tag(GPSIFD) + 0x16
	GPSDestBearingRef    = Tag(GPSIFD) + 0x17
	GPSDestBearing       = Tag(GPSIFD) + 0x18
	GPSDestDistanceRef   = Tag(GPSIFD) + 0x19
	GPSDestDistance      = Tag(GPSIFD) + 0x1a
	GPSProcessingMethod  = Tag(GPSIFD) + 0x1b
	GPSAreaInformation   = Tag(GPSIFD) + 0x1c
	GPSDateStamp         = Tag(GPSIFD) + 0x1d
	GPSDifferential      = Tag(GPSIFD) + 0x1e
	GPSHPositioningError = Tag(GPSIFD) + 0x1f
)

const ( // Interoperability IFD tags
	InteroperabilityIndex   = Tag(InteropIFD) + 0x01
	InteroperabilityVersion = Tag(InteropIFD) + 0x02
	RelatedImageFileFormat  = Tag(InteropIFD) + 0x1000
	RelatedImageWidth       = Tag(InteropIFD) + 0x1001
	RelatedImageLength      = Tag(InteropIFD) + 0x1002
)

const ( // JFIF APP0 fields, id = byte offset in the segment
	JFIFVersion    = Tag(JFIFIFD) + 5
	JFIFUnits      = Tag(JFIFIFD) + 7
	XDensity       = Tag(JFIFIFD) + 8
	YDensity       = Tag(JFIFIFD) + 10
	JFIFXThumbnail = Tag(JFIFIFD) + 12
	JFIFYThumbnail = Tag(JFIFIFD) + 13
	JFIFThumbnail  = Tag(JFIFIFD) + 14
)

const ( // JFXX APP0 fields, id = byte offset in the segment
	JFXXExtensionCode = Tag(JFXXIFD) + 5
	JFXXXThumbnail    = Tag(JFXXIFD) + 6
	JFXXYThumbnail    = Tag(JFXXIFD) + 7
	JFXXThumbnail     = Tag(JFXXIFD) + 8
)

// raw ids intercepted by the container codecs
const (
	_JPEGInterchangeFormat       = 0x201
	_JPEGInterchangeFormatLength = 0x202
	_StripOffsets                = 0x111
	_StripByteCounts             = 0x117
	_ExifIFD                     = 0x8769
	_GpsIFD                      = 0x8825
	_InteroperabilityIFD         = 0xa005
	_MakerNote                   = 0x927c
)

var tagNames = map[Tag]string{
	NewSubfileType:              "NewSubfileType",
	SubfileType:                 "SubfileType",
	ImageWidth:                  "ImageWidth",
	ImageLength:                 "ImageLength",
	BitsPerSample:               "BitsPerSample",
	Compression:                 "Compression",
	PhotometricInterpretation:   "PhotometricInterpretation",
	Threshholding:               "Threshholding",
	FillOrder:                   "FillOrder",
	DocumentName:                "DocumentName",
	ImageDescription:            "ImageDescription",
	Make:                        "Make",
	Model:                       "Model",
	StripOffsets:                "StripOffsets",
	Orientation:                 "Orientation",
	SamplesPerPixel:             "SamplesPerPixel",
	RowsPerStrip:                "RowsPerStrip",
	StripByteCounts:             "StripByteCounts",
	MinSampleValue:              "MinSampleValue",
	MaxSampleValue:              "MaxSampleValue",
	XResolution:                 "XResolution",
	YResolution:                 "YResolution",
	PlanarConfiguration:         "PlanarConfiguration",
	PageName:                    "PageName",
	XPosition:                   "XPosition",
	YPosition:                   "YPosition",
	GrayResponseUnit:            "GrayResponseUnit",
	GrayResponseCurve:           "GrayResponseCurve",
	ResolutionUnit:              "ResolutionUnit",
	PageNumber:                  "PageNumber",
	TransferFunction:            "TransferFunction",
	Software:                    "Software",
	DateTime:                    "DateTime",
	Artist:                      "Artist",
	HostComputer:                "HostComputer",
	Predictor:                   "Predictor",
	WhitePoint:                  "WhitePoint",
	PrimaryChromaticities:       "PrimaryChromaticities",
	ColorMap:                    "ColorMap",
	TileWidth:                   "TileWidth",
	TileLength:                  "TileLength",
	TileOffsets:                 "TileOffsets",
	TileByteCounts:              "TileByteCounts",
	ExtraSamples:                "ExtraSamples",
	SampleFormat:                "SampleFormat",
	JPEGInterchangeFormat:       "JPEGInterchangeFormat",
	JPEGInterchangeFormatLength: "JPEGInterchangeFormatLength",
	YCbCrCoefficients:           "YCbCrCoefficients",
	YCbCrSubSampling:            "YCbCrSubSampling",
	YCbCrPositioning:            "YCbCrPositioning",
	ReferenceBlackWhite:         "ReferenceBlackWhite",
	Copyright:                   "Copyright",
	EXIFIFDPointer:              "ExifIFDPointer",
	GPSIFDPointer:               "GPSIFDPointer",
	XPTitle:                     "XPTitle",
	XPComment:                   "XPComment",
	XPAuthor:                    "XPAuthor",
	XPKeywords:                  "XPKeywords",
	XPSubject:                   "XPSubject",
	Padding:                     "Padding",

	ExposureTime:             "ExposureTime",
	FNumber:                  "FNumber",
	ExposureProgram:          "ExposureProgram",
	SpectralSensitivity:      "SpectralSensitivity",
	ISOSpeedRatings:          "ISOSpeedRatings",
	OECF:                     "OECF",
	ExifVersion:              "ExifVersion",
	DateTimeOriginal:         "DateTimeOriginal",
	DateTimeDigitized:        "DateTimeDigitized",
	OffsetTime:               "OffsetTime",
	OffsetTimeOriginal:       "OffsetTimeOriginal",
	OffsetTimeDigitized:      "OffsetTimeDigitized",
	ComponentsConfiguration:  "ComponentsConfiguration",
	CompressedBitsPerPixel:   "CompressedBitsPerPixel",
	ShutterSpeedValue:        "ShutterSpeedValue",
	ApertureValue:            "ApertureValue",
	BrightnessValue:          "BrightnessValue",
	ExposureBiasValue:        "ExposureBiasValue",
	MaxApertureValue:         "MaxApertureValue",
	SubjectDistance:          "SubjectDistance",
	MeteringMode:             "MeteringMode",
	LightSource:              "LightSource",
	Flash:                    "Flash",
	FocalLength:              "FocalLength",
	SubjectArea:              "SubjectArea",
	MakerNote:                "MakerNote",
	UserComment:              "UserComment",
	SubsecTime:               "SubsecTime",
	SubsecTimeOriginal:       "SubsecTimeOriginal",
	SubsecTimeDigitized:      "SubsecTimeDigitized",
	FlashpixVersion:          "FlashpixVersion",
	ColorSpace:               "ColorSpace",
	PixelXDimension:          "PixelXDimension",
	PixelYDimension:          "PixelYDimension",
	RelatedSoundFile:         "RelatedSoundFile",
	InteropIFDPointer:        "InteroperabilityIFDPointer",
	FlashEnergy:              "FlashEnergy",
	FocalPlaneXResolution:    "FocalPlaneXResolution",
	FocalPlaneYResolution:    "FocalPlaneYResolution",
	FocalPlaneResolutionUnit: "FocalPlaneResolutionUnit",
	SubjectLocation:          "SubjectLocation",
	ExposureIndex:            "ExposureIndex",
	SensingMethod:            "SensingMethod",
	FileSource:               "FileSource",
	SceneType:                "SceneType",
	CFAPattern:               "CFAPattern",
	CustomRendered:           "CustomRendered",
	ExposureMode:             "ExposureMode",
	WhiteBalance:             "WhiteBalance",
	DigitalZoomRatio:         "DigitalZoomRatio",
	FocalLengthIn35mmFilm:    "FocalLengthIn35mmFilm",
	SceneCaptureType:         "SceneCaptureType",
	GainControl:              "GainControl",
	Contrast:                 "Contrast",
	Saturation:               "Saturation",
	Sharpness:                "Sharpness",
	DeviceSettingDescription: "DeviceSettingDescription",
	SubjectDistanceRange:     "SubjectDistanceRange",
	ImageUniqueID:            "ImageUniqueID",
	LensSpecification:        "LensSpecification",
	LensMake:                 "LensMake",
	LensModel:                "LensModel",
	ExifPadding:              "Padding",

	GPSVersionID:         "GPSVersionID",
	GPSLatitudeRef:       "GPSLatitudeRef",
	GPSLatitude:          "GPSLatitude",
	GPSLongitudeRef:      "GPSLongitudeRef",
	GPSLongitude:         "GPSLongitude",
	GPSAltitudeRef:       "GPSAltitudeRef",
	GPSAltitude:          "GPSAltitude",
	GPSTimeStamp:         "GPSTimeStamp",
	GPSSatellites:        "GPSSatellites",
	GPSStatus:            "GPSStatus",
	GPSMeasureMode:       "GPSMeasureMode",
	GPSDOP:               "GPSDOP",
	GPSSpeedRef:          "GPSSpeedRef",
	GPSSpeed:             "GPSSpeed",
	GPSTrackRef:          "GPSTrackRef",
	GPSTrack:             "GPSTrack",
	GPSImgDirectionRef:   "GPSImgDirectionRef",
	GPSImgDirection:      "GPSImgDirection",
	GPSMapDatum:          "GPSMapDatum",
	GPSDestLatitudeRef:   "GPSDestLatitudeRef",
	GPSDestLatitude:      "GPSDestLatitude",
	GPSDestLongitudeRef:  "GPSDestLongitudeRef",
	GPSDestLongitude:     "GPSDestLongitude",
	GPSDestBearingRef:    "GPSDestBearingRef",
	GPSDestBearing:       "GPSDestBearing",
	GPSDestDistanceRef:   "GPSDestDistanceRef",
	GPSDestDistance:      "GPSDestDistance",
	GPSProcessingMethod:  "GPSProcessingMethod",
	GPSAreaInformation:   "GPSAreaInformation",
	GPSDateStamp:         "GPSDateStamp",
	GPSDifferential:      "GPSDifferential",
	GPSHPositioningError: "GPSHPositioningError",

	InteroperabilityIndex:   "InteroperabilityIndex",
	InteroperabilityVersion: "InteroperabilityVersion",
	RelatedImageFileFormat:  "RelatedImageFileFormat",
	RelatedImageWidth:       "RelatedImageWidth",
	RelatedImageLength:      "RelatedImageLength",

	JFIFVersion:    "JFIFVersion",
	JFIFUnits:      "JFIFUnits",
	XDensity:       "XDensity",
	YDensity:       "YDensity",
	JFIFXThumbnail: "JFIFXThumbnail",
	JFIFYThumbnail: "JFIFYThumbnail",
	JFIFThumbnail:  "JFIFThumbnail",

	JFXXExtensionCode: "JFXXExtensionCode",
	JFXXXThumbnail:    "JFXXXThumbnail",
	JFXXYThumbnail:    "JFXXYThumbnail",
	JFXXThumbnail:     "JFXXThumbnail",
}
