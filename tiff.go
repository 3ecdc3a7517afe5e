package exif

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/jrm-1535/exifcodec/bitconv"
)

/*
   TIFF file layout:

     <TIFF header>             byte order, magic, offset of IFD0
     IFD0                      image properties, Exif and GPS pointers,
                               strips of the main image
     [ Exif, GPS, Interop ]    sub-IFDs of IFD0
     IFD1 ... IFDn             chained through the next IFD pointer

   IFD0 and its sub-IFDs become properties. Chained IFDs are kept as raw
   fields with their strips, and rewritten as they are.

   On encoding the strips of each IFD are written right before it, so the
   output starts with the strips of IFD0.
*/

// TIFFFile is a decoded TIFF file.
type TIFFFile struct {
	// ByteOrder is the byte order of the data, used when encoding.
	ByteOrder bitconv.ByteOrder

	// HeaderOrder is the byte order the magic number and the IFD0 offset
	// were read in. It differs from ByteOrder for some broken writers.
	HeaderOrder bitconv.ByteOrder

	// Strips are the image strips of IFD0.
	Strips [][]byte

	// IFDs are the directories chained after IFD0, in order.
	IFDs []*ImageFileDirectory

	props           Properties
	srcOrder        bitconv.ByteOrder // byte order of the IFDs fields
	makerNoteOffset uint32
	control         *Control
}

func (f *TIFFFile) Format() Format         { return TIFF }
func (f *TIFFFile) Properties() Properties { return f.props }

// DecodeTIFF reads a TIFF file and the metadata of its first directory.
func DecodeTIFF(r io.Reader, c *Control) (*TIFFFile, error) {
	buf, err := readAllData(r)
	if err != nil {
		return nil, fmt.Errorf("DecodeTIFF: %w", err)
	}
	h, err := parseTIFFHeader(buf, ErrNotValidTIFF)
	if err != nil {
		return nil, &FormatError{IFD: Zeroth, Offset: 0, Err: err}
	}
	f := &TIFFFile{
		ByteOrder:   h.order,
		HeaderOrder: h.headerOrder,
		props:       make(Properties),
		srcOrder:    h.order,
		control:     c.copy(),
	}

	rd := newDirReader(buf, 0, h.order, f.control)
	m, err := rd.readTree(h.ifd0, false)
	var errs *multierror.Error
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := rd.properties(m, f.props, f.control); err != nil {
		errs = multierror.Append(errs, err)
	}
	f.makerNoteOffset = m.makerNoteOffset

	if d0 := m.dirs[Zeroth]; d0 != nil {
		f.Strips = d0.Strips
		for next := d0.NextOffset; next != 0; {
			d, err := rd.read(FirstIFD, next)
			if err != nil {
				errs = multierror.Append(errs, err)
			}
			if d == nil {
				break
			}
			f.IFDs = append(f.IFDs, d)
			next = d.NextOffset
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	f.control.logger().Debug("decoded TIFF", "order", h.order.String(),
		"properties", f.props.Len(), "strips", len(f.Strips), "chained", len(f.IFDs))
	return f, nil
}

// Encode writes the file with IFD0 and its sub-IFDs rebuilt from the
// current properties. The file itself is not modified.
func (f *TIFFFile) Encode(w io.Writer) error {
	var mnOffset uint32
	if f.control.preserveMakerNote() {
		mnOffset = f.makerNoteOffset
	}
	l := newLayout(f.ByteOrder, mnOffset, f.control.logger())
	d0, err := l.addTree(f.props)
	if err != nil {
		return fmt.Errorf("TIFFFile.Encode: %w", err)
	}
	d0.setStrips(f.Strips)

	prev := d0
	for _, ifd := range f.IFDs {
		d := l.addRawDir(FirstIFD, ifd.Fields, f.srcOrder)
		d.setStrips(ifd.Strips)
		prev.next = d
		prev = d
	}
	b, err := l.bytes()
	if err != nil {
		return fmt.Errorf("TIFFFile.Encode: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("TIFFFile.Encode: %w", err)
	}
	return nil
}
