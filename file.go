// Package exif reads, edits and writes the metadata of JPEG and TIFF files:
// JFIF and JFXX APP0 fields, the Exif APP1 segment and the TIFF directories
// (IFD0, Exif, GPS, Interoperability and the IFD1 thumbnail). Fields are
// decoded into typed properties keyed by Tag, and encoding rebuilds the
// metadata sections from the properties.
package exif

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// Format is the container format of an image file.
type Format int

const (
	JPEG Format = iota
	TIFF
)

func (f Format) String() string {
	switch f {
	case JPEG:
		return "JPEG"
	case TIFF:
		return "TIFF"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ImageFile is a decoded image container: its properties, and whatever is
// needed to write it back.
type ImageFile interface {
	Format() Format
	Properties() Properties
	Encode(w io.Writer) error
}

// readerWithLen is implemented by bytes.Reader, bytes.Buffer and
// strings.Reader.
type readerWithLen interface {
	io.Reader
	Len() int
}

func readAllData(r io.Reader) ([]byte, error) {
	if rl, ok := r.(readerWithLen); ok {
		if size := rl.Len(); size > 0 {
			data := make([]byte, size)
			if _, err := io.ReadFull(r, data); err != nil {
				return nil, fmt.Errorf("failed to read image data: %w", err)
			}
			return data, nil
		}
	}
	return io.ReadAll(r)
}

// Decode reads an image file of the given format. The format is not
// guessed from the data.
func Decode(r io.Reader, format Format, c *Control) (ImageFile, error) {
	switch format {
	case JPEG:
		return DecodeJPEG(r, c)
	case TIFF:
		return DecodeTIFF(r, c)
	}
	return nil, fmt.Errorf("Decode: unsupported format %s", format)
}

// Encode writes f to w.
func Encode(f ImageFile, w io.Writer) error {
	return f.Encode(w)
}

// ReadFile reads and decodes the file whose path name is given.
func ReadFile(path string, format Format, c *Control) (ImageFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	return Decode(bytes.NewReader(data), format, c)
}

// WriteFile encodes f into the file whose path name is given. It returns
// the number of bytes written.
func WriteFile(path string, f ImageFile) (int, error) {
	var b bytes.Buffer
	if err := f.Encode(&b); err != nil {
		return 0, err
	}
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("WriteFile: %w", err)
	}
	return b.Len(), nil
}
