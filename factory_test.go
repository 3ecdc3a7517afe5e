package exif

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/jrm-1535/exifcodec/bitconv"
	"golang.org/x/text/encoding/charmap"
)

func TestNewPropertyErrors(t *testing.T) {
	be := bitconv.BigEndian
	tests := []struct {
		name  string
		typ   Type
		count uint32
		data  []byte
		want  error
	}{
		{"unknown type", Type(13), 1, []byte{0, 0, 0, 0}, ErrUnknownPropertyType},
		{"type 0", Type(0), 1, []byte{0, 0, 0, 0}, ErrUnknownPropertyType},
		{"short data", UnsignedLong, 2, []byte{0, 0, 0, 1}, ErrMalformedDirectory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProperty(0x010f, tt.typ, tt.count, tt.data, be, Zeroth, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("%v is not a FormatError", err)
			}
			if fe.Tag != Make || fe.IFD != Zeroth {
				t.Errorf("error locates %s in %s", fe.Tag, fe.IFD)
			}
		})
	}
}

func TestNewPropertySpecials(t *testing.T) {
	be := bitconv.BigEndian
	tests := []struct {
		name  string
		ifd   IFD
		id    uint16
		typ   Type
		count uint32
		data  []byte
		want  string
		check func(t *testing.T, p Property)
	}{
		{
			name: "orientation", ifd: Zeroth, id: 0x0112, typ: UnsignedShort, count: 1,
			data: u16s(be, 6), want: "Row #0 Right, Col #0 Top",
			check: func(t *testing.T, p Property) {
				if e, ok := p.(*EnumValue); !ok || e.Kind != OrientationKind {
					t.Errorf("got %T", p)
				}
			},
		},
		{
			name: "thumbnail orientation", ifd: FirstIFD, id: 0x0112, typ: UnsignedShort, count: 1,
			data: u16s(be, 1), want: "Row #0 Top, Col #0 Left",
			check: func(t *testing.T, p Property) {
				if p.Name() != "ThumbnailOrientation" {
					t.Errorf("name: got %q", p.Name())
				}
			},
		},
		{
			name: "orientation as long", ifd: Zeroth, id: 0x0112, typ: UnsignedLong, count: 1,
			data: u32s(be, 6), want: "6",
			check: func(t *testing.T, p Property) {
				if _, ok := p.(*ULongValue); !ok {
					t.Errorf("got %T", p)
				}
			},
		},
		{
			name: "unknown enum value", ifd: EXIFIFD, id: 0xa408, typ: UnsignedShort, count: 1,
			data: u16s(be, 9), want: "Unknown (9)",
		},
		{
			name: "file source", ifd: EXIFIFD, id: 0xa300, typ: Undefined, count: 1,
			data: []byte{3}, want: "DSC",
		},
		{
			name: "latitude ref without NUL", ifd: GPSIFD, id: 0x0001, typ: ASCIIString, count: 1,
			data: []byte("S"), want: "South",
		},
		{
			name: "date time", ifd: Zeroth, id: 0x0132, typ: ASCIIString, count: 20,
			data: []byte("2021:03:04 05:06:07\x00"), want: "2021:03:04 05:06:07",
			check: func(t *testing.T, p Property) {
				v, ok := As[time.Time](p)
				if !ok || !v.Equal(time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)) {
					t.Errorf("got %v", p.Any())
				}
			},
		},
		{
			name: "blank date time", ifd: Zeroth, id: 0x0132, typ: ASCIIString, count: 20,
			data: []byte("    :  :     :  :  \x00"), want: "    :  :     :  :  ",
			check: func(t *testing.T, p Property) {
				if _, ok := p.(*ASCIIValue); !ok {
					t.Errorf("got %T", p)
				}
			},
		},
		{
			name: "GPS date", ifd: GPSIFD, id: 0x001d, typ: ASCIIString, count: 11,
			data: []byte("2021:03:04\x00"), want: "2021:03:04",
			check: func(t *testing.T, p Property) {
				if d, ok := p.(*DateTimeValue); !ok || !d.DateOnly {
					t.Errorf("got %T", p)
				}
			},
		},
		{
			name: "exif version", ifd: EXIFIFD, id: 0x9000, typ: Undefined, count: 4,
			data: []byte("0230"), want: "2.30",
		},
		{
			name: "subject area circle", ifd: EXIFIFD, id: 0x9214, typ: UnsignedShort, count: 3,
			data: u16s(be, 10, 20, 5), want: "Circle center (10, 20) diameter 5",
		},
		{
			name: "subject area of 5 values", ifd: EXIFIFD, id: 0x9214, typ: UnsignedShort, count: 5,
			data: u16s(be, 1, 2, 3, 4, 5), want: "1 2 3 4 5",
			check: func(t *testing.T, p Property) {
				if _, ok := p.(*UShortsValue); !ok {
					t.Errorf("got %T", p)
				}
			},
		},
		{
			name: "latitude", ifd: GPSIFD, id: 0x0002, typ: UnsignedRational, count: 3,
			data: u32s(be, 48, 1, 30, 1, 0, 1), want: "48° 30' 0\"",
			check: func(t *testing.T, p Property) {
				if d := p.(*GPSLatLongValue).Decimal(); d != 48.5 {
					t.Errorf("decimal: got %v", d)
				}
			},
		},
		{
			name: "GPS time", ifd: GPSIFD, id: 0x0007, typ: UnsignedRational, count: 3,
			data: u32s(be, 12, 1, 34, 1, 56, 1), want: "12:34:56.000",
			check: func(t *testing.T, p Property) {
				want := 12*time.Hour + 34*time.Minute + 56*time.Second
				if d := p.(*GPSTimeStampValue).Duration(); d != want {
					t.Errorf("duration: got %v", d)
				}
			},
		},
		{
			name: "XP title", ifd: Zeroth, id: 0x9c9b, typ: UnsignedByte, count: 6,
			data: []byte{'H', 0, 'i', 0, 0, 0}, want: "Hi",
		},
		{
			name: "signed rational", ifd: EXIFIFD, id: 0x9204, typ: SignedRational, count: 1,
			data: u32s(be, 0xffffffff, 3), want: "-1/3",
		},
		{
			name: "unknown tag", ifd: Zeroth, id: 0xc000, typ: SignedShort, count: 2,
			data: u16s(be, 0xffff, 2), want: "-1 2",
			check: func(t *testing.T, p Property) {
				if p.Name() != "Primary 0xc000" {
					t.Errorf("name: got %q", p.Name())
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProperty(tt.id, tt.typ, tt.count, tt.data, be, tt.ifd, nil)
			if err != nil {
				t.Fatal(err)
			}
			if p.Tag() != NewTag(tt.ifd, tt.id) {
				t.Errorf("tag: got %s", p.Tag())
			}
			if got := p.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if tt.check != nil {
				tt.check(t, p)
			}
		})
	}
}

func TestPropertyInteropMatchesSource(t *testing.T) {
	for _, o := range []bitconv.ByteOrder{bitconv.LittleEndian, bitconv.BigEndian} {
		entries := []rawEntry{
			shortEntry(o, 0x0112, 3),
			rationalEntry(o, 0x011a, 300, 1),
			longEntry(o, 0x0100, 4000, 3000),
			asciiEntry(0x0132, "2021:03:04 05:06:07"),
			{tag: 0x9c9b, typ: UnsignedByte, count: 6, data: []byte{'H', 0, 'i', 0, 0, 0}},
			{tag: 0x9214, typ: UnsignedShort, count: 4, data: u16s(o, 1, 2, 3, 4)},
			{tag: 0xc000, typ: Double, count: 1, data: bitconv.Writer(o).PutFloat64(2.5)},
		}
		for _, e := range entries {
			p, err := NewProperty(e.tag, e.typ, e.count, e.data, o, Zeroth, nil)
			if err != nil {
				t.Fatalf("%s %#04x: %v", o, e.tag, err)
			}
			in, err := p.Interop()
			if err != nil {
				t.Fatalf("%s %s: %v", o, p.Tag(), err)
			}
			if in.TagID != e.tag || in.TypeID != e.typ || in.Count != e.count {
				t.Errorf("%s %s: got %#04x %s x %d", o, p.Tag(), in.TagID, in.TypeID, in.Count)
			}
			if got := in.fileData(o); !bytes.Equal(got, e.data) {
				t.Errorf("%s %s: got % x, want % x", o, p.Tag(), got, e.data)
			}
		}
	}
}

func TestNewPropertyFallbackEncoding(t *testing.T) {
	data := []byte("caf\xe9\x00")
	p, err := NewProperty(0x010e, ASCIIString, uint32(len(data)), data, bitconv.LittleEndian,
		Zeroth, charmap.ISO8859_1)
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "café" {
		t.Errorf("got %q", p.String())
	}
	in, err := p.Interop()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(in.Data, data) {
		t.Errorf("got % x, want % x", in.Data, data)
	}

	p.(*ASCIIValue).Value = "日本"
	if _, err := p.Interop(); err == nil {
		t.Errorf("unencodable text accepted")
	}
}

func TestSubjectAreaKeepsAllValues(t *testing.T) {
	for _, n := range []uint32{5, 258} {
		v := make([]uint16, n)
		for i := range v {
			v[i] = uint16(i + 1)
		}
		data := u16s(bitconv.BigEndian, v...)
		p, err := NewProperty(SubjectArea.ID(), UnsignedShort, n, data, bitconv.BigEndian, EXIFIFD, nil)
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := p.(*UShortsValue); !ok {
			t.Errorf("%d values: got %T", n, p)
		}
		in, err := p.Interop()
		if err != nil {
			t.Fatal(err)
		}
		if in.Count != n || !bytes.Equal(in.fileData(bitconv.BigEndian), data) {
			t.Errorf("%d values: re-encoded %d", n, in.Count)
		}
	}
}

func TestNewPropertyDoesNotAliasData(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5}
	p, err := NewProperty(0xc000, UnsignedByte, 5, data, bitconv.LittleEndian, Zeroth, nil)
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 9
	if v, _ := As[[]uint8](p); v[0] != 1 {
		t.Errorf("property shares the source data")
	}
}
