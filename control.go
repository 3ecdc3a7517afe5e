package exif

import (
	"io"
	"log/slog"

	"golang.org/x/text/encoding"
)

// DefaultMaxIFDs bounds the number of directories read from one file.
const DefaultMaxIFDs = 64

// Control gathers the knobs applied while decoding and encoding. A nil
// *Control is valid and means all defaults.
type Control struct {
	// Encoding decodes ASCII fields and undefined-charset strings whose
	// source encoding is unknown. nil keeps the bytes as they are (UTF-8).
	Encoding encoding.Encoding

	// DiscardMakerNoteOffset lets the encoder move the maker note instead
	// of trying to keep it at its original offset.
	DiscardMakerNoteOffset bool

	// MaxIFDs caps the number of directories followed (chain and
	// sub-IFDs). 0 means DefaultMaxIFDs.
	MaxIFDs int

	// Logger receives parse and layout diagnostics. nil discards them.
	Logger *slog.Logger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c *Control) logger() *slog.Logger {
	if c == nil || c.Logger == nil {
		return discardLogger
	}
	return c.Logger
}

func (c *Control) encoding() encoding.Encoding {
	if c == nil || c.Encoding == nil {
		return encoding.Nop
	}
	return c.Encoding
}

func (c *Control) maxIFDs() int {
	if c == nil || c.MaxIFDs <= 0 {
		return DefaultMaxIFDs
	}
	return c.MaxIFDs
}

func (c *Control) preserveMakerNote() bool {
	return c == nil || !c.DiscardMakerNoteOffset
}

// copy returns a private copy of c so a decoded file is not affected by
// later changes to the caller's Control.
func (c *Control) copy() *Control {
	if c == nil {
		return &Control{}
	}
	cc := *c
	return &cc
}
