package exif

import "testing"

func TestTagKey(t *testing.T) {
	tests := []struct {
		tag  Tag
		ifd  IFD
		id   uint16
		name string
	}{
		{Make, Zeroth, 0x010f, "Make"},
		{ExposureTime, EXIFIFD, 0x829a, "ExposureTime"},
		{GPSLatitudeRef, GPSIFD, 0x0001, "GPSLatitudeRef"},
		{InteroperabilityIndex, InteropIFD, 0x0001, "InteroperabilityIndex"},
		{ThumbnailOrientation, FirstIFD, 0x0112, "ThumbnailOrientation"},
		{JFIFUnits, JFIFIFD, 7, "JFIFUnits"},
		{JFXXThumbnail, JFXXIFD, 8, "JFXXThumbnail"},
		{NewTag(MakerNoteIFD, 0xffff), MakerNoteIFD, 0xffff, "Maker Note 0xffff"},
		{NewTag(FirstIFD, 0xc000), FirstIFD, 0xc000, "Thumbnail 0xc000"},
		{ExifPadding, EXIFIFD, 0xea1c, "Padding"},
	}
	for _, tt := range tests {
		if tt.tag.IFD() != tt.ifd || tt.tag.ID() != tt.id {
			t.Errorf("%d: got (%s, %#04x), want (%s, %#04x)", tt.tag, tt.tag.IFD(), tt.tag.ID(), tt.ifd, tt.id)
		}
		if NewTag(tt.ifd, tt.id) != tt.tag {
			t.Errorf("NewTag(%s, %#04x) = %d", tt.ifd, tt.id, NewTag(tt.ifd, tt.id))
		}
		if got := tt.tag.String(); got != tt.name {
			t.Errorf("%d: got %q, want %q", tt.tag, got, tt.name)
		}
	}
}

func TestTagNamesMatchSections(t *testing.T) {
	for tag := range tagNames {
		if _, ok := ifdNames[tag.IFD()]; !ok {
			t.Errorf("%s: unknown section %d", tag, tag.IFD())
		}
	}
	if got := IFD(42).String(); got != "IFD(42)" {
		t.Errorf("got %q", got)
	}
}

func TestTypeSize(t *testing.T) {
	sizes := map[Type]int{
		UnsignedByte: 1, ASCIIString: 1, UnsignedShort: 2, UnsignedLong: 4,
		UnsignedRational: 8, SignedByte: 1, Undefined: 1, SignedShort: 2,
		SignedLong: 4, SignedRational: 8, Float: 4, Double: 8,
	}
	for typ, size := range sizes {
		if typ.Size() != size || !typ.Valid() {
			t.Errorf("%s: got size %d, want %d", typ, typ.Size(), size)
		}
	}
	for _, typ := range []Type{0, 13, 0xffff} {
		if typ.Valid() {
			t.Errorf("%s is valid", typ)
		}
	}
	if UnsignedRational.swapWidth() != 4 || Double.swapWidth() != 8 {
		t.Errorf("rationals swap as two longs")
	}
}
