package exif

import (
	"testing"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

func TestControlDefaults(t *testing.T) {
	var c *Control
	if c.maxIFDs() != DefaultMaxIFDs {
		t.Errorf("maxIFDs: got %d", c.maxIFDs())
	}
	if c.encoding() != encoding.Nop {
		t.Errorf("encoding: got %v", c.encoding())
	}
	if !c.preserveMakerNote() {
		t.Errorf("maker note offset not preserved by default")
	}
	if c.logger() == nil {
		t.Errorf("nil logger")
	}

	c = &Control{MaxIFDs: 3, Encoding: charmap.Windows1252, DiscardMakerNoteOffset: true}
	if c.maxIFDs() != 3 || c.encoding() != charmap.Windows1252 || c.preserveMakerNote() {
		t.Errorf("settings ignored: %+v", c)
	}
}

func TestControlIsCopied(t *testing.T) {
	c := &Control{MaxIFDs: 3}
	cc := c.copy()
	c.MaxIFDs = 5
	if cc.maxIFDs() != 3 {
		t.Errorf("copy follows the original")
	}
	if (*Control)(nil).copy() == nil {
		t.Errorf("nil copy")
	}
}
