package exif

import (
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/jrm-1535/exifcodec/bitconv"
)

/*
    A complete IFD is made of:
         (_ShortSize + ( _IfdEntrySize * n ) + _LongSize) bytes
    plus the variable size data area

    Each IFD entry is:
        entry Tag               2-byte unique tag
        entry type              2-byte TIFF type
        value count             4-byte count of values
        value or value offset   4-byte data: the value itself if it fits in
                                4 bytes, otherwise its offset from the TIFF
                                header.

    IFD0 embeds the Exif and GPS IFDs through pointer entries, the Exif IFD
    embeds the Interoperability IFD. Embedded IFDs do not use the next IFD
    pointer. IFD0 is usually followed by IFD1 (thumbnail):

      IFD0 (Primary) ===================================
        n    (2 byte count)                            ^
        ...  (12-byte entries)                         |
        _ExifIFD ----------          fixed size = (n * 12) + 2 + 4
        _GpsIFD ---------  |                           |
        ...              | |                           v
   -- next IFD (4 bytes) | | ===========================
   |  < IFD0 data        | |
   |     GPS IFD <-------  |
   |     EXIF IFD <--------
   |       _MN -----------------
   |       _IOP ----------      |
   |     < EXIF IFD data  |     |
   |       IOP IFD <------      |
   |       MN data <------------
   |     >
   |  >
   -> IFD1 (Thumbnail, optional)
      < IFD1 data
        Thumbnail JPEG image or strips
      >
*/

const (
	_valOffSize   = 4 // value fits in if <= 4 bytes, otherwise offset
	_IfdEntrySize = (_ShortSize + _LongSize) * 2
	_ifdType      = 13 // TIFF-EP IFD type, found in some pointer entries
)

// Field is a raw directory entry. Data holds the value in the byte order of
// the file, copied out of the entry or out of the data area.
type Field struct {
	Tag    uint16
	Type   Type
	Count  uint32
	Data   []byte
	Offset int64 // offset of the value from the TIFF header
}

// ImageFileDirectory is a raw directory. Strip offsets and byte counts are
// not kept as fields: the strips themselves are, in order.
type ImageFileDirectory struct {
	Fields     []Field
	Strips     [][]byte
	Offset     uint32
	NextOffset uint32
}

func (d *ImageFileDirectory) field(id uint16) (int, bool) {
	for i := range d.Fields {
		if d.Fields[i].Tag == id {
			return i, true
		}
	}
	return -1, false
}

func (d *ImageFileDirectory) remove(i int) Field {
	f := d.Fields[i]
	d.Fields = append(d.Fields[:i], d.Fields[i+1:]...)
	return f
}

// dirReader reads directories from a TIFF stream. Every offset is relative
// to the TIFF header at buf[0] and checked against len(buf).
type dirReader struct {
	buf     []byte
	base    int64 // position of buf[0] in the source, for diagnostics
	order   bitconv.ByteOrder
	conv    bitconv.Converter
	visited map[uint32]bool
	max     int
	log     *slog.Logger
}

func newDirReader(buf []byte, base int64, o bitconv.ByteOrder, c *Control) *dirReader {
	return &dirReader{
		buf:     buf,
		base:    base,
		order:   o,
		conv:    bitconv.Reader(o),
		visited: make(map[uint32]bool),
		max:     c.maxIFDs(),
		log:     c.logger(),
	}
}

func (r *dirReader) fits(offset, size uint64) bool {
	return offset+size <= uint64(len(r.buf))
}

// read returns the directory at offset. Field level failures do not stop
// the read: they are returned together in a multierror with the
// directory, without the failing fields.
func (r *dirReader) read(ifd IFD, offset uint32) (*ImageFileDirectory, error) {
	if r.visited[offset] {
		return nil, dirError(ifd, r.base+int64(offset), "directory loop")
	}
	if len(r.visited) >= r.max {
		return nil, dirError(ifd, r.base+int64(offset), "more than %d directories", r.max)
	}
	r.visited[offset] = true

	if !r.fits(uint64(offset), _ShortSize) {
		return nil, dirError(ifd, r.base+int64(offset), "directory offset out of bounds")
	}
	n := r.conv.Uint16(r.buf, int(offset))
	entries := uint64(offset) + _ShortSize
	if !r.fits(entries, uint64(n)*_IfdEntrySize) {
		return nil, dirError(ifd, r.base+int64(offset), "%d entries overrun the data", n)
	}
	r.log.Debug("reading directory", "ifd", ifd.String(), "offset", offset, "entries", n)

	d := &ImageFileDirectory{Offset: offset, Fields: make([]Field, 0, n)}
	var errs *multierror.Error
	for i := uint64(0); i < uint64(n); i++ {
		f, err := r.entry(ifd, int(entries+i*_IfdEntrySize))
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		d.Fields = append(d.Fields, f)
	}

	next := entries + uint64(n)*_IfdEntrySize
	if r.fits(next, _LongSize) {
		d.NextOffset = r.conv.Uint32(r.buf, int(next))
	} else {
		r.log.Warn("missing next directory pointer", "ifd", ifd.String(), "offset", offset)
	}

	if err := r.takeStrips(ifd, d); err != nil {
		errs = multierror.Append(errs, err)
	}
	return d, errs.ErrorOrNil()
}

func (r *dirReader) entry(ifd IFD, p int) (Field, error) {
	f := Field{
		Tag:   r.conv.Uint16(r.buf, p),
		Type:  Type(r.conv.Uint16(r.buf, p+2)),
		Count: r.conv.Uint32(r.buf, p+4),
	}
	valOff := p + 8
	if !f.Type.Valid() {
		// kept as is, the factory reports the unknown type
		f.Data = clone(r.buf[valOff : valOff+_valOffSize])
		f.Offset = int64(valOff)
		return f, nil
	}
	size := uint64(f.Count) * uint64(f.Type.Size())
	if size <= _valOffSize {
		f.Data = clone(r.buf[valOff : valOff+int(size)])
		f.Offset = int64(valOff)
		return f, nil
	}
	off := r.conv.Uint32(r.buf, valOff)
	if !r.fits(uint64(off), size) {
		return f, fieldError(ifd, f.Tag, r.base+int64(valOff),
			fmt.Errorf("%w: %d bytes at offset %#x overrun the data", ErrMalformedDirectory, size, off))
	}
	f.Data = clone(r.buf[off : uint64(off)+size])
	f.Offset = int64(off)
	return f, nil
}

// values returns the integer values of a SHORT or LONG field.
func (r *dirReader) values(f Field) ([]uint32, bool) {
	switch f.Type {
	case UnsignedShort:
		v := make([]uint32, f.Count)
		for i := range v {
			v[i] = uint32(r.conv.Uint16(f.Data, i*_ShortSize))
		}
		return v, true
	case UnsignedLong, _ifdType:
		if f.Type == _ifdType && len(f.Data) < int(f.Count)*_LongSize {
			return nil, false
		}
		v := make([]uint32, f.Count)
		for i := range v {
			v[i] = r.conv.Uint32(f.Data, i*_LongSize)
		}
		return v, true
	}
	return nil, false
}

// takeStrips removes the strip offset and byte count fields from d and
// replaces them with the strips they point to.
func (r *dirReader) takeStrips(ifd IFD, d *ImageFileDirectory) error {
	oi, hasOffsets := d.field(_StripOffsets)
	ci, hasCounts := d.field(_StripByteCounts)
	if !hasOffsets && !hasCounts {
		return nil
	}
	if !hasOffsets || !hasCounts {
		return dirError(ifd, r.base+int64(d.Offset), "strip offsets without byte counts")
	}
	offsets, ok1 := r.values(d.Fields[oi])
	counts, ok2 := r.values(d.Fields[ci])
	if !ok1 || !ok2 {
		return dirError(ifd, r.base+int64(d.Offset), "strip fields are not SHORT or LONG")
	}
	if len(offsets) != len(counts) {
		return dirError(ifd, r.base+int64(d.Offset),
			"%d strip offsets for %d byte counts", len(offsets), len(counts))
	}
	strips := make([][]byte, len(offsets))
	for i := range offsets {
		if !r.fits(uint64(offsets[i]), uint64(counts[i])) {
			return dirError(ifd, r.base+int64(offsets[i]), "strip %d overruns the data", i)
		}
		strips[i] = clone(r.buf[offsets[i] : offsets[i]+counts[i]])
	}
	if oi > ci {
		d.remove(oi)
		d.remove(ci)
	} else {
		d.remove(ci)
		d.remove(oi)
	}
	d.Strips = strips
	return nil
}

// takeThumbnail removes the JPEG interchange format fields from d and
// returns the thumbnail they point to, or nil if there is none.
func (r *dirReader) takeThumbnail(ifd IFD, d *ImageFileDirectory) ([]byte, error) {
	oi, hasOffset := d.field(_JPEGInterchangeFormat)
	li, hasLength := d.field(_JPEGInterchangeFormatLength)
	if !hasOffset && !hasLength {
		return nil, nil
	}
	if !hasOffset || !hasLength {
		return nil, dirError(ifd, r.base+int64(d.Offset), "thumbnail offset without length")
	}
	off, ok1 := r.values(d.Fields[oi])
	n, ok2 := r.values(d.Fields[li])
	if !ok1 || !ok2 || len(off) != 1 || len(n) != 1 {
		return nil, dirError(ifd, r.base+int64(d.Offset), "invalid thumbnail fields")
	}
	if !r.fits(uint64(off[0]), uint64(n[0])) {
		return nil, dirError(ifd, r.base+int64(off[0]), "thumbnail overruns the data")
	}
	thumb := clone(r.buf[off[0] : off[0]+n[0]])
	if oi > li {
		d.remove(oi)
		d.remove(li)
	} else {
		d.remove(li)
		d.remove(oi)
	}
	return thumb, nil
}

// pointer returns the offset held by the sub-IFD pointer field id of d.
func (r *dirReader) pointer(ifd IFD, d *ImageFileDirectory, id uint16) (uint32, bool, error) {
	i, ok := d.field(id)
	if !ok {
		return 0, false, nil
	}
	v, ok := r.values(d.Fields[i])
	if !ok || len(v) != 1 {
		return 0, false, fieldError(ifd, id, r.base+d.Fields[i].Offset,
			fmt.Errorf("%w: invalid IFD pointer", ErrMalformedDirectory))
	}
	return v[0], true, nil
}

// metadata is the result of reading an Exif tree: IFD0, its sub-IFDs and
// optionally IFD1.
type metadata struct {
	dirs            map[IFD]*ImageFileDirectory
	thumbnail       []byte
	makerNoteOffset uint32
}

// readTree reads IFD0 at offset and the sub-IFDs it points to. If
// withFirst is set, the next IFD is read as the thumbnail IFD.
func (r *dirReader) readTree(offset uint32, withFirst bool) (*metadata, error) {
	m := &metadata{dirs: make(map[IFD]*ImageFileDirectory)}
	var errs *multierror.Error

	readSub := func(parent IFD, id uint16, ifd IFD) {
		d := m.dirs[parent]
		if d == nil {
			return
		}
		off, ok, err := r.pointer(parent, d, id)
		if err != nil {
			errs = multierror.Append(errs, err)
			return
		}
		if !ok {
			return
		}
		sub, err := r.read(ifd, off)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		if sub != nil {
			m.dirs[ifd] = sub
		}
	}

	d0, err := r.read(Zeroth, offset)
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if d0 == nil {
		return m, errs.ErrorOrNil()
	}
	m.dirs[Zeroth] = d0
	readSub(Zeroth, _ExifIFD, EXIFIFD)
	readSub(Zeroth, _GpsIFD, GPSIFD)
	readSub(EXIFIFD, _InteroperabilityIFD, InteropIFD)

	if withFirst && d0.NextOffset != 0 {
		d1, err := r.read(FirstIFD, d0.NextOffset)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		if d1 != nil {
			m.dirs[FirstIFD] = d1
			thumb, err := r.takeThumbnail(FirstIFD, d1)
			if err != nil {
				errs = multierror.Append(errs, err)
			}
			m.thumbnail = thumb
		}
	}
	return m, errs.ErrorOrNil()
}

// structural reports whether field id of ifd is regenerated by the layout
// and must not become a property.
func structural(ifd IFD, id uint16) bool {
	switch ifd {
	case Zeroth:
		return id == _ExifIFD || id == _GpsIFD
	case EXIFIFD:
		return id == _InteroperabilityIFD
	}
	return false
}

// properties converts the fields of every directory of m into properties
// added to ps, and records the offset of the maker note.
func (r *dirReader) properties(m *metadata, ps Properties, c *Control) error {
	var errs *multierror.Error
	for _, ifd := range []IFD{Zeroth, EXIFIFD, GPSIFD, InteropIFD, FirstIFD} {
		d := m.dirs[ifd]
		if d == nil {
			continue
		}
		for _, f := range d.Fields {
			if structural(ifd, f.Tag) {
				continue
			}
			if ifd == EXIFIFD && f.Tag == _MakerNote {
				m.makerNoteOffset = uint32(f.Offset)
			}
			p, err := newProperty(f.Tag, f.Type, f.Count, f.Data, r.order, ifd,
				c.encoding(), r.base+f.Offset, r.log)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			ps.Add(p)
		}
	}
	return errs.ErrorOrNil()
}
