package exif

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jrm-1535/exifcodec/bitconv"
)

// ErrUnknownMakerNote is returned when a maker note has no recognized
// signature.
var ErrUnknownMakerNote = errors.New("unknown maker note")

/*
   Maker notes are written back as opaque UNDEFINED bytes. Some of them are
   IFDs that can be read, with their own origin and byte order:

     Apple  "Apple iOS\x00" 2-byte version, "MM" @12, IFD @14. Offsets are
            relative to the start of the note.
     Nikon  "Nikon\x00\x02" type 3 or 4, 2-byte version, 2-byte pad, then
            a TIFF header @10, origin of the offsets.
*/

// DecodedMakerNote is the read-only view of a decoded maker note.
type DecodedMakerNote struct {
	Maker string
	Order bitconv.ByteOrder

	// Properties are in MakerNoteIFD, named after the maker's tags.
	Properties Properties
}

type makerNoteFormat struct {
	maker     string
	signature []byte
	names     map[uint16]string
	// origin returns the part of the note offsets are relative to, its
	// byte order and the offset of the IFD in it.
	origin func(note []byte) ([]byte, bitconv.ByteOrder, uint32, error)
}

const (
	_appleOrderOffset = 12
	_appleIFDOffset   = 14
	_nikonTIFFOffset  = 10
)

var makerNoteFormats = []makerNoteFormat{
	{
		maker:     "Apple",
		signature: []byte("Apple iOS\x00"),
		names: map[uint16]string{
			0x0003: "RunTime",
			0x0008: "AccelerationVector",
			0x000a: "HDRImageType",
			0x000b: "BurstUUID",
			0x000e: "Orientation",
			0x0011: "MediaGroupUUID",
			0x0015: "ImageUniqueID",
		},
		origin: func(note []byte) ([]byte, bitconv.ByteOrder, uint32, error) {
			if len(note) < _appleIFDOffset {
				return nil, 0, 0, fmt.Errorf("%w: Apple maker note truncated", ErrMalformedDirectory)
			}
			o, ok := bitconv.ParseByteOrderMark(note[_appleOrderOffset:])
			if !ok {
				return nil, 0, 0, fmt.Errorf("%w: Apple maker note byte order", ErrMalformedDirectory)
			}
			return note, o, _appleIFDOffset, nil
		},
	},
	{
		maker:     "Nikon",
		signature: []byte("Nikon\x00\x02"),
		names: map[uint16]string{
			0x0001: "Version",
			0x0002: "ISOSpeed",
			0x0003: "ColorMode",
			0x0004: "Quality",
			0x0005: "WhiteBalance",
			0x0006: "Sharpness",
			0x0007: "FocusMode",
			0x0008: "FlashSetting",
			0x0009: "FlashType",
			0x000b: "WhiteBalanceBias",
			0x000c: "WhiteBalanceRBLevels",
			0x0012: "FlashExposureCompensation",
			0x0013: "ISOSpeedRequested",
			0x0016: "ImageBoundary",
			0x0019: "ExposureBracketValue",
			0x001d: "SerialNumber",
			0x001e: "ColorSpace",
			0x0022: "ActiveDLighting",
			0x00a7: "ShutterCount",
		},
		origin: func(note []byte) ([]byte, bitconv.ByteOrder, uint32, error) {
			if len(note) < _nikonTIFFOffset {
				return nil, 0, 0, fmt.Errorf("%w: Nikon maker note truncated", ErrMalformedDirectory)
			}
			tiff := note[_nikonTIFFOffset:]
			h, err := parseTIFFHeader(tiff, ErrMalformedDirectory)
			if err != nil {
				return nil, 0, 0, err
			}
			return tiff, h.order, h.ifd0, nil
		},
	},
}

// DecodeMakerNote reads the maker note found in ps, if its maker is known.
func DecodeMakerNote(ps Properties, c *Control) (*DecodedMakerNote, error) {
	p, ok := ps.Get(NewTag(EXIFIFD, _MakerNote))
	if !ok {
		return nil, fmt.Errorf("DecodeMakerNote: no maker note")
	}
	note, ok := As[[]byte](p)
	if !ok {
		return nil, fmt.Errorf("DecodeMakerNote: maker note is %T", p.Any())
	}
	for _, mf := range makerNoteFormats {
		if bytes.HasPrefix(note, mf.signature) {
			return mf.decode(note, c)
		}
	}
	return nil, ErrUnknownMakerNote
}

func (mf *makerNoteFormat) decode(note []byte, c *Control) (*DecodedMakerNote, error) {
	buf, order, offset, err := mf.origin(note)
	if err != nil {
		return nil, &FormatError{IFD: MakerNoteIFD, Offset: -1, Err: err}
	}
	r := newDirReader(buf, 0, order, c)
	d, err := r.read(MakerNoteIFD, offset)
	if d == nil {
		return nil, err
	}
	if err != nil {
		r.log.Warn("maker note directory partially read", "maker", mf.maker, "err", err)
	}
	mn := &DecodedMakerNote{Maker: mf.maker, Order: order, Properties: make(Properties)}
	r.log.Debug("decoding maker note", "maker", mf.maker, "order", order.String(), "fields", len(d.Fields))
	for _, f := range d.Fields {
		p, err := newProperty(f.Tag, f.Type, f.Count, f.Data, order, MakerNoteIFD,
			c.encoding(), f.Offset, r.log)
		if err != nil {
			// unknown maker tags are common, they are skipped
			r.log.Warn("skipping maker note field", "maker", mf.maker, "err", err)
			continue
		}
		if name, ok := mf.names[f.Tag]; ok {
			p.SetName(mf.maker + name)
		}
		mn.Properties.Add(p)
	}
	return mn, nil
}
