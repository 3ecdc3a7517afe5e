package exif

import (
	"fmt"
	"io"
	"sort"

	"github.com/jrm-1535/exifcodec/bitconv"
)

// native reads and writes values in the system byte order.
var native = bitconv.NewConverter(bitconv.SystemByteOrder, bitconv.SystemByteOrder)

// Interop is the raw directory entry form of a property: id, TIFF type,
// component count and value bytes. Data is in the system byte order.
type Interop struct {
	TagID  uint16
	TypeID Type
	Count  uint32
	Data   []byte
}

// Size returns the number of bytes of the value: Count * TypeID.Size().
func (i Interop) Size() int {
	return int(i.Count) * i.TypeID.Size()
}

// fileData returns a copy of Data converted to byte order o.
func (i Interop) fileData(o bitconv.ByteOrder) []byte {
	d := make([]byte, len(i.Data))
	copy(d, i.Data)
	bitconv.Writer(o).Swap(d, i.TypeID.swapWidth())
	return d
}

// Property is one decoded metadata field. The set of implementations is
// closed: every variant is defined in this package.
type Property interface {
	// Tag returns the combined (section, id) key of the property.
	Tag() Tag
	// IFD returns the section the property belongs to.
	IFD() IFD
	// Name returns the display name of the property, by default the tag
	// name.
	Name() string
	SetName(string)
	// Any returns the Go value held by the property.
	Any() any
	String() string
	// Interop returns the directory entry form of the property.
	Interop() (Interop, error)

	sealed()
}

// As returns the value of p as a T, and false if p does not hold a T.
func As[T any](p Property) (T, bool) {
	v, ok := p.Any().(T)
	return v, ok
}

type base struct {
	tag  Tag
	name string
}

func (b *base) Tag() Tag { return b.tag }
func (b *base) IFD() IFD { return b.tag.IFD() }
func (b *base) sealed()  {}

func (b *base) Name() string {
	if b.name != "" {
		return b.name
	}
	return b.tag.String()
}

func (b *base) SetName(name string) { b.name = name }

// orderedProperty is implemented by properties whose encoded bytes depend
// on the byte order of the file they are written to, even though their
// TIFF type is byte-sized.
type orderedProperty interface {
	interopFor(o bitconv.ByteOrder) (Interop, error)
}

// interopFor returns the directory entry form of p for a file written in
// byte order o.
func interopFor(p Property, o bitconv.ByteOrder) (Interop, error) {
	if op, ok := p.(orderedProperty); ok {
		return op.interopFor(o)
	}
	return p.Interop()
}

// Properties is the property collection of a file, keyed by tag.
type Properties map[Tag]Property

// Add stores p, replacing any property with the same tag.
func (ps Properties) Add(p Property) { ps[p.Tag()] = p }

func (ps Properties) Get(t Tag) (Property, bool) {
	p, ok := ps[t]
	return p, ok
}

// Remove deletes the property with tag t and reports whether it existed.
func (ps Properties) Remove(t Tag) bool {
	if _, ok := ps[t]; !ok {
		return false
	}
	delete(ps, t)
	return true
}

// RemoveIFD deletes every property of section ifd and returns how many
// were removed.
func (ps Properties) RemoveIFD(ifd IFD) int {
	n := 0
	for t := range ps {
		if t.IFD() == ifd {
			delete(ps, t)
			n++
		}
	}
	return n
}

func (ps Properties) Len() int { return len(ps) }

// Sorted returns all properties in ascending tag order.
func (ps Properties) Sorted() []Property {
	l := make([]Property, 0, len(ps))
	for _, p := range ps {
		l = append(l, p)
	}
	sort.Slice(l, func(i, j int) bool { return l[i].Tag() < l[j].Tag() })
	return l
}

// InIFD returns the properties of section ifd in ascending tag order.
func (ps Properties) InIFD(ifd IFD) []Property {
	var l []Property
	for _, p := range ps {
		if p.IFD() == ifd {
			l = append(l, p)
		}
	}
	sort.Slice(l, func(i, j int) bool { return l[i].Tag() < l[j].Tag() })
	return l
}

// Format writes a readable dump of the collection, one section at a time.
func (ps Properties) Format(w io.Writer) error {
	var cur IFD
	for _, p := range ps.Sorted() {
		if p.IFD() != cur {
			cur = p.IFD()
			if _, err := fmt.Fprintf(w, "%s IFD:\n", cur); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "    %s: %s\n", p.Name(), p); err != nil {
			return err
		}
	}
	return nil
}
