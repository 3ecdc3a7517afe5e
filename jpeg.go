package exif

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/jrm-1535/exifcodec/bitconv"
)

/*
   JPEG file layout:

     0xFF 0xD8                 SOI, no length
     { section }               0xFF <marker> <2-byte BE length> <header>
                               the length includes itself, not the marker
     SOS section               followed by entropy coded data, up to the
                               next marker (0xFF not followed by 0x00)
     { RSTn }                  no length, followed by entropy coded data
     0xFF 0xD9                 EOI, no length
     <trailing data>           kept as is

   Metadata sections:

     APP0 "JFIF\x00"           version, units, densities, RGB thumbnail
     APP0 "JFXX\x00"           extension thumbnail (JPEG, palette, RGB)
     APP1 "Exif\x00\x00"       TIFF structure
*/

type Marker byte

const (
	SOF0  Marker = 0xc0
	SOF1  Marker = 0xc1
	SOF2  Marker = 0xc2
	DHT   Marker = 0xc4
	RST0  Marker = 0xd0
	RST7  Marker = 0xd7
	SOI   Marker = 0xd8
	EOI   Marker = 0xd9
	SOS   Marker = 0xda
	DQT   Marker = 0xdb
	DRI   Marker = 0xdd
	APP0  Marker = 0xe0
	APP1  Marker = 0xe1
	APP2  Marker = 0xe2
	APP15 Marker = 0xef
	COM   Marker = 0xfe
)

func (m Marker) String() string {
	switch {
	case m == SOI:
		return "SOI"
	case m == EOI:
		return "EOI"
	case m == SOS:
		return "SOS"
	case m == DQT:
		return "DQT"
	case m == DHT:
		return "DHT"
	case m == DRI:
		return "DRI"
	case m == COM:
		return "COM"
	case m >= SOF0 && m <= 0xcf && m != DHT && m != 0xc8 && m != 0xcc:
		return fmt.Sprintf("SOF%d", m-SOF0)
	case m.isRST():
		return fmt.Sprintf("RST%d", m-RST0)
	case m.isAPP():
		return fmt.Sprintf("APP%d", m-APP0)
	}
	return fmt.Sprintf("Marker(%#02x)", byte(m))
}

func (m Marker) isRST() bool { return m >= RST0 && m <= RST7 }
func (m Marker) isAPP() bool { return m >= APP0 && m <= APP15 }

// hasLength reports whether a length and header follow the marker.
func (m Marker) hasLength() bool { return m != SOI && m != EOI && !m.isRST() }

// Section is one marker delimited section of a JPEG file.
type Section struct {
	Marker      Marker
	Header      []byte // without the length bytes
	EntropyData []byte // only after SOS and RSTn

	offset int64 // position of the marker in the source
}

const (
	_maxSectionHeader = 0xffff - 2 // 2-byte length includes itself
	_jfifThumbOffset  = 14
	_jfxxThumbOffset  = 8
)

var (
	jfifSignature = []byte("JFIF\x00")
	jfxxSignature = []byte("JFXX\x00")
	exifSignature = []byte("Exif\x00\x00")
)

// JPEGFile is a decoded JPEG file: its sections, the properties of its
// metadata sections and its Exif thumbnail.
type JPEGFile struct {
	Sections     []*Section
	TrailingData []byte

	// ByteOrder is the byte order of the Exif data, used when encoding.
	ByteOrder bitconv.ByteOrder

	// Thumbnail is the JPEG thumbnail of the Exif IFD1, nil if none.
	Thumbnail []byte

	// FirstStrips are the uncompressed thumbnail strips of the Exif IFD1.
	FirstStrips [][]byte

	props           Properties
	makerNoteOffset uint32
	jfif, jfxx      *Section
	exif            *Section
	control         *Control
}

func (f *JPEGFile) Format() Format          { return JPEG }
func (f *JPEGFile) Properties() Properties  { return f.props }
func (f *JPEGFile) MakerNoteOffset() uint32 { return f.makerNoteOffset }
func (f *JPEGFile) ExifSection() *Section   { return f.exif }

// ThumbnailImage decodes the Exif JPEG thumbnail.
func (f *JPEGFile) ThumbnailImage() (image.Image, error) {
	if f.Thumbnail == nil {
		return nil, fmt.Errorf("ThumbnailImage: no thumbnail")
	}
	return jpeg.Decode(bytes.NewReader(f.Thumbnail))
}

func jpegError(offset int, format string, args ...any) error {
	return &FormatError{Offset: int64(offset),
		Err: fmt.Errorf("%w: "+format, append([]any{ErrNotValidJPEG}, args...)...)}
}

// DecodeJPEG reads a JPEG file and the metadata it contains.
func DecodeJPEG(r io.Reader, c *Control) (*JPEGFile, error) {
	buf, err := readAllData(r)
	if err != nil {
		return nil, fmt.Errorf("DecodeJPEG: %w", err)
	}
	f := &JPEGFile{props: make(Properties), control: c.copy()}
	if f.Sections, f.TrailingData, err = parseSections(buf); err != nil {
		return nil, err
	}
	log := f.control.logger()
	log.Debug("parsed JPEG sections", "sections", len(f.Sections), "trailing", len(f.TrailingData))

	var errs *multierror.Error
	if err := f.readJFIF(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := f.readJFXX(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := f.readExif(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return f, nil
}

// parseSections splits buf into sections. Data after EOI is returned as
// trailing data; a file ending without EOI is accepted.
func parseSections(buf []byte) ([]*Section, []byte, error) {
	if len(buf) < 2 || buf[0] != 0xff || Marker(buf[1]) != SOI {
		return nil, nil, jpegError(0, "missing SOI marker")
	}
	var sections []*Section
	pos := 0
	for pos < len(buf) {
		if pos+2 > len(buf) || buf[pos] != 0xff || buf[pos+1] == 0x00 || buf[pos+1] == 0xff {
			return nil, nil, jpegError(pos, "invalid marker")
		}
		s := &Section{Marker: Marker(buf[pos+1]), offset: int64(pos)}
		pos += 2

		if s.Marker.hasLength() {
			if pos+2 > len(buf) {
				return nil, nil, jpegError(pos, "%s: truncated length", s.Marker)
			}
			n := int(bitconv.BigEndianReader.Uint16(buf, pos))
			if n < 2 || pos+n > len(buf) {
				return nil, nil, jpegError(pos, "%s: length %d overruns the data", s.Marker, n)
			}
			s.Header = clone(buf[pos+2 : pos+n])
			pos += n
		}

		if s.Marker == SOS || s.Marker.isRST() {
			end, err := scanEntropyData(buf, pos)
			if err != nil {
				return nil, nil, err
			}
			s.EntropyData = clone(buf[pos:end])
			pos = end
		}

		sections = append(sections, s)
		if s.Marker == EOI {
			return sections, clone(buf[pos:]), nil
		}
	}
	return sections, nil, nil
}

// scanEntropyData returns the position of the marker ending the entropy
// coded data starting at pos. 0xFF00 is a stuffed 0xFF, and fill bytes
// 0xFF before a marker are part of the data.
func scanEntropyData(buf []byte, pos int) (int, error) {
	i := pos
	for {
		for i < len(buf) && buf[i] != 0xff {
			i++
		}
		for i < len(buf) && buf[i] == 0xff {
			i++
		}
		if i >= len(buf) {
			return 0, jpegError(pos, "entropy coded data not terminated")
		}
		if buf[i] != 0x00 {
			return i - 1, nil
		}
		i++
	}
}

func (f *JPEGFile) findAPP(m Marker, sig []byte) *Section {
	for _, s := range f.Sections {
		if s.Marker == m && bytes.HasPrefix(s.Header, sig) {
			return s
		}
	}
	return nil
}

func truncatedSection(s *Section, ifd IFD, need int) error {
	return &FormatError{IFD: ifd, Offset: s.offset,
		Err: fmt.Errorf("%w: %s section too short (%d bytes, need %d)",
			ErrNotValidJPEG, ifd, len(s.Header), need)}
}

/*
   JFIF APP0 header, big-endian:

     "JFIF\x00"                @0
     version                   @5  2 bytes, major.minor
     units                     @7  0 none, 1 dpi, 2 dpcm
     Xdensity, Ydensity        @8, @10
     Xthumbnail, Ythumbnail    @12, @13
     thumbnail                 @14 3 x Xthumbnail x Ythumbnail RGB bytes
*/

func (f *JPEGFile) readJFIF() error {
	s := f.findAPP(APP0, jfifSignature)
	if s == nil {
		return nil
	}
	f.jfif = s
	h := s.Header
	if len(h) < _jfifThumbOffset {
		return truncatedSection(s, JFIFIFD, _jfifThumbOffset)
	}
	be := bitconv.BigEndianReader
	x, y := h[12], h[13]
	n := 3 * int(x) * int(y)
	if len(h) < _jfifThumbOffset+n {
		return truncatedSection(s, JFIFIFD, _jfifThumbOffset+n)
	}
	version := be.Uint16(h, 5)
	f.props.Add(NewJFIFVersion(uint8(version>>8), uint8(version)))
	f.props.Add(NewEnum(JFIFUnits, JFIFUnitsKind, uint16(h[7])))
	f.props.Add(NewUShort(XDensity, be.Uint16(h, 8)))
	f.props.Add(NewUShort(YDensity, be.Uint16(h, 10)))
	f.props.Add(NewByte(JFIFXThumbnail, x))
	f.props.Add(NewByte(JFIFYThumbnail, y))
	f.props.Add(NewThumbnail(JFIFThumbnail, APP0Thumbnail{
		Format: ThumbnailRGB24,
		Data:   clone(h[_jfifThumbOffset : _jfifThumbOffset+n]),
	}))
	return nil
}

/*
   JFXX APP0 header:

     "JFXX\x00"                @0
     extension code            @5  0x10 JPEG, 0x11 palette, 0x13 RGB
     JPEG thumbnail            @6  up to the end of the section
   or
     Xthumbnail, Ythumbnail    @6, @7
     palette                   @8  768 bytes (0x11 only)
     pixels                    1 byte per pixel (0x11), 3 bytes (0x13)
*/

func (f *JPEGFile) readJFXX() error {
	s := f.findAPP(APP0, jfxxSignature)
	if s == nil {
		return nil
	}
	f.jfxx = s
	h := s.Header
	if len(h) < 6 {
		return truncatedSection(s, JFXXIFD, 6)
	}
	code := h[5]
	f.props.Add(NewEnum(JFXXExtensionCode, JFXXExtensionKind, uint16(code)))
	switch code {
	case 0x10:
		f.props.Add(NewThumbnail(JFXXThumbnail, APP0Thumbnail{Format: ThumbnailJPEG, Data: clone(h[6:])}))
		return nil
	case 0x11, 0x13:
	default:
		f.control.logger().Warn("unknown JFXX extension code", "code", code)
		return nil
	}
	if len(h) < _jfxxThumbOffset {
		return truncatedSection(s, JFXXIFD, _jfxxThumbOffset)
	}
	x, y := h[6], h[7]
	th := APP0Thumbnail{Format: ThumbnailRGB24}
	n := 3 * int(x) * int(y)
	start := _jfxxThumbOffset
	if code == 0x11 {
		th.Format = ThumbnailPalette
		n = int(x) * int(y)
		start += _paletteSize
	}
	if len(h) < start+n {
		return truncatedSection(s, JFXXIFD, start+n)
	}
	if code == 0x11 {
		th.Palette = clone(h[_jfxxThumbOffset:start])
	}
	th.Data = clone(h[start : start+n])
	f.props.Add(NewByte(JFXXXThumbnail, x))
	f.props.Add(NewByte(JFXXYThumbnail, y))
	f.props.Add(NewThumbnail(JFXXThumbnail, th))
	return nil
}

// readExif parses the Exif APP1 section. If there is none, an empty one is
// inserted after the last APP0 section, or after SOI.
func (f *JPEGFile) readExif() error {
	s := f.findAPP(APP1, exifSignature)
	if s == nil {
		at := 0
		for i, s := range f.Sections {
			if s.Marker == APP0 {
				at = i
			}
		}
		at++
		if at > len(f.Sections) {
			at = len(f.Sections)
		}
		f.exif = &Section{Marker: APP1, offset: -1}
		f.Sections = append(f.Sections[:at], append([]*Section{f.exif}, f.Sections[at:]...)...)
		f.ByteOrder = bitconv.SystemByteOrder
		return nil
	}
	f.exif = s

	tiff := s.Header[len(exifSignature):]
	h, err := parseTIFFHeader(tiff, ErrNotValidExif)
	if err != nil {
		return &FormatError{IFD: Zeroth, Offset: s.offset, Err: err}
	}
	f.ByteOrder = h.order
	// marker, length and Exif header precede the TIFF header
	base := s.offset + 4 + int64(len(exifSignature))
	r := newDirReader(tiff, base, h.order, f.control)
	m, err := r.readTree(h.ifd0, true)
	var errs *multierror.Error
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := r.properties(m, f.props, f.control); err != nil {
		errs = multierror.Append(errs, err)
	}
	f.Thumbnail = m.thumbnail
	if d1 := m.dirs[FirstIFD]; d1 != nil {
		f.FirstStrips = d1.Strips
	}
	f.makerNoteOffset = m.makerNoteOffset
	return errs.ErrorOrNil()
}

// app0Header returns the APP0 header rebuilt from the properties of ifd,
// nil if there are none.
func (f *JPEGFile) app0Header(ifd IFD, sig []byte) ([]byte, error) {
	props := f.props.InIFD(ifd)
	if len(props) == 0 {
		return nil, nil
	}
	h := clone(sig)
	for _, p := range props {
		in, err := p.Interop()
		if err != nil {
			return nil, fieldError(ifd, p.Tag().ID(), -1, err)
		}
		h = append(h, in.fileData(bitconv.BigEndian)...)
	}
	return h, nil
}

// exifHeader returns the APP1 header rebuilt from the Exif properties and
// the thumbnail, nil if there is nothing to write.
func (f *JPEGFile) exifHeader() ([]byte, error) {
	first := encodableIn(f.props, FirstIFD)
	hasFirst := len(first) != 0 || len(f.Thumbnail) != 0 || len(f.FirstStrips) != 0
	empty := !hasFirst
	for _, ifd := range []IFD{Zeroth, EXIFIFD, GPSIFD, InteropIFD} {
		if len(encodableIn(f.props, ifd)) != 0 {
			empty = false
		}
	}
	if empty {
		return nil, nil
	}

	var mnOffset uint32
	if f.control.preserveMakerNote() {
		mnOffset = f.makerNoteOffset
	}
	l := newLayout(f.ByteOrder, mnOffset, f.control.logger())
	d0, err := l.addTree(f.props)
	if err != nil {
		return nil, err
	}
	if hasFirst {
		d1, err := l.addDir(FirstIFD, first)
		if err != nil {
			return nil, err
		}
		d1.setStrips(f.FirstStrips)
		d1.setThumbnail(f.Thumbnail)
		d0.next = d1
	}
	b, err := l.bytes()
	if err != nil {
		return nil, err
	}
	return append(clone(exifSignature), b...), nil
}

// Encode writes the file with its metadata sections rebuilt from the
// current properties. Metadata sections left without properties are
// dropped. The file itself is not modified.
func (f *JPEGFile) Encode(w io.Writer) error {
	log := f.control.logger()
	headers := make(map[*Section][]byte, 3)
	var errs *multierror.Error
	for _, m := range []struct {
		s     *Section
		build func() ([]byte, error)
	}{
		{f.jfif, func() ([]byte, error) { return f.app0Header(JFIFIFD, jfifSignature) }},
		{f.jfxx, func() ([]byte, error) { return f.app0Header(JFXXIFD, jfxxSignature) }},
		{f.exif, f.exifHeader},
	} {
		if m.s == nil {
			continue
		}
		h, err := m.build()
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		headers[m.s] = h
	}
	if err := errs.ErrorOrNil(); err != nil {
		return fmt.Errorf("JPEGFile.Encode: %w", err)
	}

	var b bytes.Buffer
	for _, s := range f.Sections {
		h, rebuilt := headers[s]
		if !rebuilt {
			h = s.Header
		}
		if s.Marker.isAPP() && len(h) == 0 {
			if s.offset >= 0 {
				log.Warn("dropping empty section", "marker", s.Marker.String(), "offset", s.offset)
			}
			continue
		}
		if len(h) > _maxSectionHeader {
			return fmt.Errorf("JPEGFile.Encode: %s: %w (%d bytes)", s.Marker, ErrSectionTooLarge, len(h))
		}
		b.Write([]byte{0xff, byte(s.Marker)})
		if s.Marker.hasLength() {
			b.Write(bitconv.Writer(bitconv.BigEndian).PutUint16(uint16(len(h) + 2)))
			b.Write(h)
		}
		b.Write(s.EntropyData)
	}
	b.Write(f.TrailingData)
	if _, err := w.Write(b.Bytes()); err != nil {
		return fmt.Errorf("JPEGFile.Encode: %w", err)
	}
	return nil
}
