package exif

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotValidJPEG        = errors.New("not a valid JPEG file")
	ErrNotValidExif        = errors.New("not a valid Exif segment")
	ErrNotValidTIFF        = errors.New("not a valid TIFF header")
	ErrMalformedDirectory  = errors.New("malformed image file directory")
	ErrUnknownPropertyType = errors.New("unknown property type")
	ErrUnsupportedEnumType = errors.New("unsupported enum type")
	ErrSectionTooLarge     = errors.New("section header exceeds 64KB")
)

// FormatError locates a failure inside the container: the section, the
// field and the byte offset involved. Err is one of the sentinel errors
// above, possibly wrapped with more detail.
type FormatError struct {
	IFD    IFD
	Tag    Tag   // 0 if the failure is not about a single field
	Offset int64 // byte offset in the stream, -1 if unknown
	Err    error
}

func (e *FormatError) Error() string {
	var b strings.Builder
	b.WriteString("exif:")
	if e.Tag != 0 {
		fmt.Fprintf(&b, " %s: tag %s (0x%04x)", e.Tag.IFD(), e.Tag, e.Tag.ID())
	} else if e.IFD != 0 {
		fmt.Fprintf(&b, " %s IFD", e.IFD)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&b, " @offset %#x", e.Offset)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *FormatError) Unwrap() error { return e.Err }

func fieldError(ifd IFD, id uint16, offset int64, err error) *FormatError {
	return &FormatError{IFD: ifd, Tag: NewTag(ifd, id), Offset: offset, Err: err}
}

func dirError(ifd IFD, offset int64, format string, args ...any) *FormatError {
	return &FormatError{
		IFD:    ifd,
		Offset: offset,
		Err:    fmt.Errorf("%w: "+format, append([]any{ErrMalformedDirectory}, args...)...),
	}
}
