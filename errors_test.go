package exif

import (
	"errors"
	"testing"
)

func TestFormatError(t *testing.T) {
	tests := []struct {
		err  *FormatError
		want string
	}{
		{
			fieldError(EXIFIFD, 0x829a, 0x20, ErrMalformedDirectory),
			"exif: Exif: tag ExposureTime (0x829a) @offset 0x20: malformed image file directory",
		},
		{
			dirError(GPSIFD, -1, "%d entries", 3),
			"exif: GPS IFD: malformed image file directory: 3 entries",
		},
		{
			&FormatError{Offset: 2, Err: ErrNotValidJPEG},
			"exif: @offset 0x2: not a valid JPEG file",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
	if !errors.Is(dirError(Zeroth, 0, "x"), ErrMalformedDirectory) {
		t.Errorf("dirError does not wrap ErrMalformedDirectory")
	}
}
