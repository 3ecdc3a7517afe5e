package exif

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/jrm-1535/exifcodec/bitconv"
)

// rawEntry is a directory entry written by putDir. Data is in file byte
// order. Out of line data goes right after the directory, or at the given
// offset if at is not 0.
type rawEntry struct {
	tag   uint16
	typ   Type
	count uint32
	data  []byte
	at    uint32
}

func grow(buf *[]byte, n uint32) {
	for uint32(len(*buf)) < n {
		*buf = append(*buf, 0)
	}
}

// putDir writes a directory at offset at of buf and returns the offset
// following its data area.
func putDir(buf *[]byte, o bitconv.ByteOrder, at uint32, entries []rawEntry, next uint32) uint32 {
	w := bitconv.Writer(o)
	data := at + _ShortSize + uint32(len(entries))*_IfdEntrySize + _LongSize
	grow(buf, data)
	copy((*buf)[at:], w.PutUint16(uint16(len(entries))))
	p := at + _ShortSize
	for _, e := range entries {
		copy((*buf)[p:], w.PutUint16(e.tag))
		copy((*buf)[p+2:], w.PutUint16(uint16(e.typ)))
		copy((*buf)[p+4:], w.PutUint32(e.count))
		if len(e.data) <= _valOffSize {
			copy((*buf)[p+8:], e.data)
		} else {
			off := e.at
			if off == 0 {
				off = data
				data = uint32(even(uint64(data) + uint64(len(e.data))))
			}
			grow(buf, off+uint32(len(e.data)))
			copy((*buf)[off:], e.data)
			copy((*buf)[p+8:], w.PutUint32(off))
		}
		p += _IfdEntrySize
	}
	copy((*buf)[p:], w.PutUint32(next))
	if uint32(len(*buf)) > data {
		return uint32(len(*buf))
	}
	grow(buf, data)
	return data
}

func u16s(o bitconv.ByteOrder, v ...uint16) []byte {
	var b []byte
	for _, x := range v {
		b = append(b, bitconv.Writer(o).PutUint16(x)...)
	}
	return b
}

func u32s(o bitconv.ByteOrder, v ...uint32) []byte {
	var b []byte
	for _, x := range v {
		b = append(b, bitconv.Writer(o).PutUint32(x)...)
	}
	return b
}

func asciiEntry(tag uint16, s string) rawEntry {
	return rawEntry{tag: tag, typ: ASCIIString, count: uint32(len(s) + 1), data: append([]byte(s), 0)}
}

func shortEntry(o bitconv.ByteOrder, tag uint16, v ...uint16) rawEntry {
	return rawEntry{tag: tag, typ: UnsignedShort, count: uint32(len(v)), data: u16s(o, v...)}
}

func longEntry(o bitconv.ByteOrder, tag uint16, v ...uint32) rawEntry {
	return rawEntry{tag: tag, typ: UnsignedLong, count: uint32(len(v)), data: u32s(o, v...)}
}

func rationalEntry(o bitconv.ByteOrder, tag uint16, v ...uint32) rawEntry {
	return rawEntry{tag: tag, typ: UnsignedRational, count: uint32(len(v) / 2), data: u32s(o, v...)}
}

const (
	testMakerNoteOffset = 0x200
	testMakerNoteSize   = 32
)

func testMakerNote() []byte {
	mn := make([]byte, testMakerNoteSize)
	for i := range mn {
		mn[i] = byte(0xa0 + i)
	}
	return mn
}

// testExifTIFF returns a TIFF structure with IFD0, an Exif IFD holding a
// maker note at testMakerNoteOffset, a GPS IFD and an IFD1 with a JPEG
// thumbnail.
func testExifTIFF(o bitconv.ByteOrder) []byte {
	buf := tiffHeaderBytes(o, _headerSize)
	const exifAt, gpsAt, ifd1At, thumbAt = 0xa0, 0x100, 0x240, 0x280
	putDir(&buf, o, _headerSize, []rawEntry{
		asciiEntry(0x010f, "Acme"),
		asciiEntry(0x0110, "Roadrunner 3000"),
		shortEntry(o, 0x0112, 6),
		rationalEntry(o, 0x011a, 72, 1),
		asciiEntry(0x0132, "2021:03:04 05:06:07"),
		longEntry(o, _ExifIFD, exifAt),
		longEntry(o, _GpsIFD, gpsAt),
	}, ifd1At)
	putDir(&buf, o, exifAt, []rawEntry{
		rationalEntry(o, 0x829a, 1, 250),
		{tag: 0x9000, typ: Undefined, count: 4, data: []byte("0230")},
		asciiEntry(0x9003, "2021:03:04 05:06:07"),
		shortEntry(o, 0x9209, 0x19),
		{tag: _MakerNote, typ: Undefined, count: testMakerNoteSize, data: testMakerNote(), at: testMakerNoteOffset},
	}, 0)
	putDir(&buf, o, gpsAt, []rawEntry{
		{tag: 0x0000, typ: UnsignedByte, count: 4, data: []byte{2, 3, 0, 0}},
		asciiEntry(0x0001, "N"),
		rationalEntry(o, 0x0002, 48, 1, 30, 1, 0, 1),
		asciiEntry(0x0003, "W"),
		rationalEntry(o, 0x0004, 2, 1, 15, 1, 36, 1),
	}, 0)
	putDir(&buf, o, ifd1At, []rawEntry{
		shortEntry(o, 0x0103, 6),
		longEntry(o, _JPEGInterchangeFormat, thumbAt),
		longEntry(o, _JPEGInterchangeFormatLength, uint32(len(testThumbnail))),
	}, 0)
	grow(&buf, thumbAt)
	buf = append(buf[:thumbAt], testThumbnail...)
	return buf
}

var testThumbnail = []byte{0xff, 0xd8, 0xff, 0xdb, 0x00, 0x03, 0x00, 0xff, 0xd9}

func segment(m Marker, payload []byte) []byte {
	n := len(payload) + 2
	return append([]byte{0xff, byte(m), byte(n >> 8), byte(n)}, payload...)
}

func exifSegment(tiff []byte) []byte {
	return segment(APP1, append([]byte("Exif\x00\x00"), tiff...))
}

func jfifSegment() []byte {
	return segment(APP0, []byte{'J', 'F', 'I', 'F', 0, 1, 2, 1, 0, 72, 0, 72, 2, 1,
		0x10, 0x20, 0x30, 0x40, 0x50, 0x60})
}

// testScan is an SOS section followed by entropy coded data with a stuffed
// byte, a fill byte and a restart marker, then EOI.
var testScan = append(segment(SOS, []byte{1, 1, 0, 0, 0x3f, 0}),
	0x12, 0xff, 0x00, 0x34, 0xff, 0xff, 0xd0, 0x56, 0x78, 0xff, 0xd9)

func testJPEG(segments ...[]byte) []byte {
	b := []byte{0xff, 0xd8}
	for _, s := range segments {
		b = append(b, s...)
	}
	b = append(b, segment(DQT, make([]byte, 65))...)
	return append(b, testScan...)
}

func mustDecodeJPEG(t *testing.T, data []byte, c *Control) *JPEGFile {
	t.Helper()
	f, err := DecodeJPEG(bytes.NewReader(data), c)
	if err != nil {
		t.Fatalf("DecodeJPEG: %v", err)
	}
	return f
}

func mustEncode(t *testing.T, f ImageFile) []byte {
	t.Helper()
	var b bytes.Buffer
	if err := f.Encode(&b); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	return b.Bytes()
}

func mustGet(t *testing.T, ps Properties, tag Tag) Property {
	t.Helper()
	p, ok := ps.Get(tag)
	if !ok {
		t.Fatalf("%s not found", tag)
	}
	return p
}

// testLogger returns a control logging warnings into b.
func testLogger(b *bytes.Buffer) *Control {
	return &Control{Logger: slog.New(slog.NewTextHandler(b, &slog.HandlerOptions{Level: slog.LevelWarn}))}
}
