package exif

import (
	"fmt"

	"github.com/jrm-1535/exifcodec/bitconv"
)

/*
   TIFF header, origin of all directory offsets:

     "II" | "MM"               2-byte byte order (Intel LE/Motorola BE)
                               All following multi-byte values depend on it
     0x002a                    2-byte Magic Number
     <offset>                  4-byte offset of the primary IFD

   In an Exif APP1 segment the TIFF header follows the 6-byte Exif header
   "Exif\x00\x00". Some writers store the magic number and the primary IFD
   offset in the other byte order: both are read in whichever order gives
   42, the data itself always uses the order of the mark.
*/

const (
	_originOffset = 6 // TIFF header offset in the Exif APP1 payload
	_headerSize   = 8
	_tiffMagic    = 0x002a
)

type tiffHeader struct {
	order       bitconv.ByteOrder // data, from the mark
	headerOrder bitconv.ByteOrder // magic number and first offset
	ifd0        uint32
}

// parseTIFFHeader reads the header at the start of b. Failures wrap
// invalid, the container specific sentinel.
func parseTIFFHeader(b []byte, invalid error) (tiffHeader, error) {
	var h tiffHeader
	if len(b) < _headerSize {
		return h, fmt.Errorf("parseTIFFHeader: %w: header truncated (%d bytes)", invalid, len(b))
	}
	o, ok := bitconv.ParseByteOrderMark(b)
	if !ok {
		return h, fmt.Errorf("parseTIFFHeader: %w: invalid byte order mark %q", invalid, b[:2])
	}
	h.order = o
	switch {
	case bitconv.Reader(o).Uint16(b, 2) == _tiffMagic:
		h.headerOrder = o
	case bitconv.Reader(otherOrder(o)).Uint16(b, 2) == _tiffMagic:
		h.headerOrder = otherOrder(o)
	default:
		return h, fmt.Errorf("parseTIFFHeader: %w: invalid identifier % x", invalid, b[2:4])
	}
	h.ifd0 = bitconv.Reader(h.headerOrder).Uint32(b, 4)
	return h, nil
}

func otherOrder(o bitconv.ByteOrder) bitconv.ByteOrder {
	if o == bitconv.BigEndian {
		return bitconv.LittleEndian
	}
	return bitconv.BigEndian
}

// tiffHeaderBytes returns a header in byte order o, pointing to the primary
// IFD at ifd0.
func tiffHeaderBytes(o bitconv.ByteOrder, ifd0 uint32) []byte {
	w := bitconv.Writer(o)
	b := make([]byte, 0, _headerSize)
	b = append(b, o.Mark()...)
	b = append(b, w.PutUint16(_tiffMagic)...)
	return append(b, w.PutUint32(ifd0)...)
}
