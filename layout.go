package exif

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/hashicorp/go-multierror"
	"github.com/jrm-1535/exifcodec/bitconv"
)

/*
   Two pass layout of a TIFF structure

   The structure is first planned: each directory gets its entries, its
   strips and an optional trailer (the JPEG thumbnail of IFD1). Offsets
   are then assigned in a single walk, in directory order:

       <strips>            strip data, referenced by StripOffsets
       <directory>         n, n x 12-byte entries sorted by tag, next IFD
       <data area>         out of line values, each padded to even size
       <trailer>           thumbnail data

   Only once every offset is known are pointer, strip offset and
   thumbnail offset entries resolved, and bytes emitted into a buffer of
   the final size. Offsets are relative to the TIFF header at 0.

   In the Exif IFD, if the maker note offset is preserved, fields whose
   data would overlap the original maker note offset are deferred after the
   maker note, and 0xff filler bytes are inserted before the maker note so
   that it lands on its original offset. The maker note is never moved
   earlier: if the data before it already ends past its original offset,
   it is written where it falls.
*/

type entry struct {
	tag    uint16
	typ    Type
	count  uint32
	data   []byte          // file byte order
	value  func() []uint32 // LONG values known only after placement
	offset uint32          // data area position if out of line
}

func (e *entry) size() uint64 { return uint64(e.count) * uint64(e.typ.Size()) }
func (e *entry) inline() bool { return e.size() <= _valOffSize }

type dirPlan struct {
	ifd     IFD
	entries []*entry
	strips  [][]byte
	trailer []byte
	next    *dirPlan

	offset        uint32
	stripOffsets  []uint32
	trailerOffset uint32
	filler        uint32 // 0xff bytes written before the maker note
	makerNote     *entry
}

type layout struct {
	order           bitconv.ByteOrder
	conv            bitconv.Converter
	dirs            []*dirPlan
	makerNoteOffset uint32 // 0 if not preserved
	log             *slog.Logger
	size            uint64
}

func newLayout(o bitconv.ByteOrder, makerNoteOffset uint32, log *slog.Logger) *layout {
	return &layout{
		order:           o,
		conv:            bitconv.Writer(o),
		makerNoteOffset: makerNoteOffset,
		log:             log,
	}
}

// addDir plans a directory from properties. Directories are laid out in
// the order they are added.
func (l *layout) addDir(ifd IFD, props []Property) (*dirPlan, error) {
	d := &dirPlan{ifd: ifd}
	var errs *multierror.Error
	for _, p := range props {
		in, err := interopFor(p, l.order)
		if err != nil {
			errs = multierror.Append(errs, fieldError(ifd, p.Tag().ID(), -1, err))
			continue
		}
		if !in.TypeID.Valid() || len(in.Data) != in.Size() {
			errs = multierror.Append(errs, fieldError(ifd, in.TagID, -1,
				fmt.Errorf("%w: %d bytes for %d x %s", ErrUnknownPropertyType, len(in.Data), in.Count, in.TypeID)))
			continue
		}
		d.entries = append(d.entries, &entry{
			tag:   in.TagID,
			typ:   in.TypeID,
			count: in.Count,
			data:  in.fileData(l.order),
		})
	}
	l.dirs = append(l.dirs, d)
	return d, errs.ErrorOrNil()
}

// addRawDir plans a directory from raw fields stored in byte order src.
func (l *layout) addRawDir(ifd IFD, fields []Field, src bitconv.ByteOrder) *dirPlan {
	d := &dirPlan{ifd: ifd}
	conv := bitconv.NewConverter(src, l.order)
	for _, f := range fields {
		data := clone(f.Data)
		if f.Type.Valid() {
			conv.Swap(data, f.Type.swapWidth())
		} else if src != l.order {
			l.log.Warn("raw field of unknown type copied as is",
				"ifd", ifd.String(), "tag", fmt.Sprintf("%#04x", f.Tag), "type", uint16(f.Type))
		}
		d.entries = append(d.entries, &entry{tag: f.Tag, typ: f.Type, count: f.Count, data: data})
	}
	l.dirs = append(l.dirs, d)
	return d
}

func (d *dirPlan) add(e *entry) {
	for i, x := range d.entries {
		if x.tag == e.tag {
			d.entries[i] = e
			return
		}
	}
	d.entries = append(d.entries, e)
}

func (d *dirPlan) has(id uint16) bool {
	for _, e := range d.entries {
		if e.tag == id {
			return true
		}
	}
	return false
}

// link adds the pointer entry id of d, resolved to the offset of sub.
func (d *dirPlan) link(id uint16, sub *dirPlan) {
	d.add(&entry{tag: id, typ: UnsignedLong, count: 1,
		value: func() []uint32 { return []uint32{sub.offset} }})
}

// setStrips attaches strips to d, with their offset and byte count entries.
func (d *dirPlan) setStrips(strips [][]byte) {
	if len(strips) == 0 {
		return
	}
	d.strips = strips
	d.stripOffsets = make([]uint32, len(strips))
	counts := make([]uint32, len(strips))
	for i, s := range strips {
		counts[i] = uint32(len(s))
	}
	n := uint32(len(strips))
	d.add(&entry{tag: _StripOffsets, typ: UnsignedLong, count: n,
		value: func() []uint32 { return d.stripOffsets }})
	d.add(&entry{tag: _StripByteCounts, typ: UnsignedLong, count: n,
		value: func() []uint32 { return counts }})
}

// setThumbnail attaches a JPEG thumbnail after the data area of d, with its
// offset and length entries.
func (d *dirPlan) setThumbnail(thumb []byte) {
	if len(thumb) == 0 {
		return
	}
	d.trailer = thumb
	d.add(&entry{tag: _JPEGInterchangeFormat, typ: UnsignedLong, count: 1,
		value: func() []uint32 { return []uint32{d.trailerOffset} }})
	d.add(&entry{tag: _JPEGInterchangeFormatLength, typ: UnsignedLong, count: 1,
		value: func() []uint32 { return []uint32{uint32(len(thumb))} }})
}

func even(n uint64) uint64 { return (n + 1) &^ 1 }

// place assigns every offset, starting right after the TIFF header.
func (l *layout) place() error {
	cur := uint64(_headerSize)
	for _, d := range l.dirs {
		sort.SliceStable(d.entries, func(i, j int) bool { return d.entries[i].tag < d.entries[j].tag })
		for i, s := range d.strips {
			d.stripOffsets[i] = uint32(cur)
			cur += uint64(len(s))
		}
		cur = even(cur)
		d.offset = uint32(cur)
		cur += _ShortSize + uint64(len(d.entries))*_IfdEntrySize + _LongSize
		cur = l.placeData(d, cur)
		if d.trailer != nil {
			d.trailerOffset = uint32(cur)
			cur = even(cur + uint64(len(d.trailer)))
		}
		l.log.Debug("planned directory", "ifd", d.ifd.String(), "offset", d.offset,
			"entries", len(d.entries), "end", cur)
		if cur > math.MaxUint32 {
			return fmt.Errorf("place: %s IFD ends beyond 4GB", d.ifd)
		}
	}
	l.size = cur
	return nil
}

func (l *layout) placeData(d *dirPlan, cur uint64) uint64 {
	target := uint64(l.makerNoteOffset)
	preserve := target != 0 && d.ifd == EXIFIFD
	var deferred []*entry
	put := func(e *entry) {
		e.offset = uint32(cur)
		cur = even(cur + e.size())
	}
	for _, e := range d.entries {
		if e.inline() {
			continue
		}
		if d.ifd == EXIFIFD && e.tag == _MakerNote {
			d.makerNote = e
			continue
		}
		if preserve && cur+even(e.size()) > target {
			deferred = append(deferred, e)
			continue
		}
		put(e)
	}
	if d.makerNote == nil {
		for _, e := range deferred {
			put(e)
		}
		return cur
	}
	if preserve {
		switch {
		case target > cur:
			d.filler = uint32(target - cur)
			cur = target
		case target < cur:
			l.log.Warn("maker note moved", "original", target, "new", cur)
		}
	}
	put(d.makerNote)
	for _, e := range deferred {
		put(e)
	}
	return cur
}

// resolve fills in the entries whose value depends on placement.
func (l *layout) resolve() {
	for _, d := range l.dirs {
		for _, e := range d.entries {
			if e.value == nil {
				continue
			}
			v := e.value()
			e.data = make([]byte, 0, len(v)*_LongSize)
			for _, x := range v {
				e.data = append(e.data, l.conv.PutUint32(x)...)
			}
		}
	}
}

// bytes lays out the planned directories and returns the TIFF structure,
// header included.
func (l *layout) bytes() ([]byte, error) {
	if len(l.dirs) == 0 {
		return nil, fmt.Errorf("layout.bytes: no directory")
	}
	if err := l.place(); err != nil {
		return nil, err
	}
	l.resolve()

	buf := make([]byte, l.size)
	copy(buf, tiffHeaderBytes(l.order, l.dirs[0].offset))
	for _, d := range l.dirs {
		l.emit(buf, d)
	}
	return buf, nil
}

func (l *layout) emit(buf []byte, d *dirPlan) {
	for i, s := range d.strips {
		copy(buf[d.stripOffsets[i]:], s)
	}
	p := int(d.offset)
	copy(buf[p:], l.conv.PutUint16(uint16(len(d.entries))))
	p += _ShortSize
	for _, e := range d.entries {
		copy(buf[p:], l.conv.PutUint16(e.tag))
		copy(buf[p+2:], l.conv.PutUint16(uint16(e.typ)))
		copy(buf[p+4:], l.conv.PutUint32(e.count))
		if e.inline() {
			n := len(e.data)
			if n > _valOffSize {
				n = _valOffSize
			}
			copy(buf[p+8:p+8+n], e.data)
		} else {
			copy(buf[p+8:], l.conv.PutUint32(e.offset))
			copy(buf[e.offset:], e.data)
		}
		p += _IfdEntrySize
	}
	var next uint32
	if d.next != nil {
		next = d.next.offset
	}
	copy(buf[p:], l.conv.PutUint32(next))

	if d.filler != 0 {
		start := d.makerNote.offset - d.filler
		for i := start; i < d.makerNote.offset; i++ {
			buf[i] = 0xff
		}
	}
	if d.trailer != nil {
		copy(buf[d.trailerOffset:], d.trailer)
	}
}

// encodable reports whether p is written as a directory entry. Fields the
// layout regenerates are not.
func encodable(p Property) bool {
	id := p.Tag().ID()
	switch p.IFD() {
	case Zeroth, FirstIFD:
		switch id {
		case _StripOffsets, _StripByteCounts, _JPEGInterchangeFormat, _JPEGInterchangeFormatLength:
			return false
		}
	}
	return !structural(p.IFD(), id)
}

func encodableIn(ps Properties, ifd IFD) []Property {
	var l []Property
	for _, p := range ps.InIFD(ifd) {
		if encodable(p) {
			l = append(l, p)
		}
	}
	return l
}

// addTree plans IFD0 and the Exif, GPS and Interoperability IFDs it points
// to. An Exif IFD is created for a non empty Interoperability IFD.
func (l *layout) addTree(ps Properties) (*dirPlan, error) {
	exif := encodableIn(ps, EXIFIFD)
	gps := encodableIn(ps, GPSIFD)
	interop := encodableIn(ps, InteropIFD)

	var errs *multierror.Error
	add := func(ifd IFD, props []Property) *dirPlan {
		d, err := l.addDir(ifd, props)
		if err != nil {
			errs = multierror.Append(errs, err)
		}
		return d
	}
	d0 := add(Zeroth, encodableIn(ps, Zeroth))
	if len(exif) != 0 || len(interop) != 0 {
		dExif := add(EXIFIFD, exif)
		d0.link(_ExifIFD, dExif)
		if len(interop) != 0 {
			dExif.link(_InteroperabilityIFD, add(InteropIFD, interop))
		}
	}
	if len(gps) != 0 {
		d0.link(_GpsIFD, add(GPSIFD, gps))
	}
	return d0, errs.ErrorOrNil()
}
