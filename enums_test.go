package exif

import (
	"errors"
	"testing"
)

func TestFlashNames(t *testing.T) {
	tests := []struct {
		value uint16
		want  string
	}{
		{0x00, "Flash did not fire"},
		{0x01, "Flash fired"},
		{0x19, "Flash fired, auto mode"},
		{0x07, "Flash fired, return light detected"},
		{0x10, "Flash did not fire, compulsory flash suppression"},
		{0x20, "Flash did not fire, no flash function"},
		{0x41, "Flash fired, red-eye reduction mode"},
		{0x80, "Unknown (128)"},
	}
	for _, tt := range tests {
		if got := NewEnum(Flash, FlashKind, tt.value).String(); got != tt.want {
			t.Errorf("%#02x: got %q, want %q", tt.value, got, tt.want)
		}
	}
	if !FlashKind.IsFlags() || OrientationKind.IsFlags() {
		t.Errorf("IsFlags")
	}
}

func TestEnumKind(t *testing.T) {
	if got := OrientationKind.Values(); len(got) != 8 || got[0] != 1 || got[7] != 8 {
		t.Errorf("Orientation values: %v", got)
	}
	if _, ok := OrientationKind.ValueName(9); ok {
		t.Errorf("9 is not an orientation")
	}
	if got := GPSLatitudeRefKind.format('X'); got != "Unknown ('X')" {
		t.Errorf("got %q", got)
	}

	kinds := []struct {
		kind *EnumKind
		typ  Type
	}{
		{CompressionKind, UnsignedShort},
		{GPSAltitudeRefKind, UnsignedByte},
		{GPSLongitudeRefKind, ASCIIString},
		{SceneTypeKind, Undefined},
		{&EnumKind{Name: "x"}, 0},
	}
	for _, k := range kinds {
		if k.kind.Type() != k.typ {
			t.Errorf("%s: got type %s, want %s", k.kind.Name, k.kind.Type(), k.typ)
		}
	}
}

func TestEnumDecode(t *testing.T) {
	tests := []struct {
		name    string
		kind    *EnumKind
		typ     Type
		count   uint32
		data    []byte
		want    uint16
		wantErr bool
	}{
		{"short", ResolutionUnitKind, UnsignedShort, 1, native.PutUint16(2), 2, false},
		{"byte", GPSAltitudeRefKind, UnsignedByte, 1, []byte{1}, 1, false},
		{"undefined", FileSourceKind, Undefined, 1, []byte{3}, 3, false},
		{"ref", GPSStatusKind, ASCIIString, 2, []byte("A\x00"), 'A', false},
		{"wrong type", ResolutionUnitKind, UnsignedLong, 1, native.PutUint32(2), 0, true},
		{"two shorts", ResolutionUnitKind, UnsignedShort, 2, native.PutUint16(2), 0, true},
		{"long ref", GPSStatusKind, ASCIIString, 3, []byte("AB\x00"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.kind.decode(tt.typ, tt.count, tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error: %v", err)
			}
			if v != tt.want {
				t.Errorf("got %d, want %d", v, tt.want)
			}
		})
	}
}

func TestUnsupportedEnumKind(t *testing.T) {
	k := &EnumKind{Name: "x"}
	if _, err := k.decode(0, 1, []byte{1}); !errors.Is(err, ErrUnsupportedEnumType) {
		t.Errorf("decode: got %v", err)
	}
	if _, err := NewEnum(Contrast, k, 1).Interop(); !errors.Is(err, ErrUnsupportedEnumType) {
		t.Errorf("Interop: got %v", err)
	}
}
