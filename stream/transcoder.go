package stream

import (
	"io"
	"strings"

	"golang.org/x/text/transform"

	"github.com/runewire/runewire/codec"
	"github.com/runewire/runewire/errors"
)

// Format identifies a supported wire format.
type Format uint8

const (
	UTF8 Format = iota
	UTF16BE
	UTF16LE
)

func (f Format) String() string {
	switch f {
	case UTF8:
		return "utf8"
	case UTF16BE:
		return "utf16be"
	case UTF16LE:
		return "utf16le"
	default:
		return "unknown"
	}
}

func (f Format) order() codec.ByteOrder {
	if f == UTF16LE {
		return codec.LittleEndian
	}
	return codec.BigEndian
}

// ParseFormat parses a format name as accepted by the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "utf8", "utf-8":
		return UTF8, nil
	case "utf16be", "utf-16be":
		return UTF16BE, nil
	case "utf16le", "utf-16le":
		return UTF16LE, nil
	}
	return 0, errors.BadConfig(errors.PhaseStream, "unknown format "+s)
}

// Transcoder returns a transformer converting between any two supported
// formats. Same-format pairs validate without altering the payload;
// UTF-16 to UTF-16 conversions pivot through UTF-8.
func Transcoder(from, to Format, rangeCheck bool) transform.Transformer {
	switch {
	case from == UTF8 && to == UTF8:
		return Validator(rangeCheck)
	case from == UTF8:
		return UTF8ToUTF16(to.order(), rangeCheck)
	case to == UTF8:
		return UTF16ToUTF8(from.order(), rangeCheck)
	default:
		return transform.Chain(
			UTF16ToUTF8(from.order(), rangeCheck),
			UTF8ToUTF16(to.order(), rangeCheck),
		)
	}
}

// NewReader wraps r so reads yield the input transcoded from one format to
// the other.
func NewReader(r io.Reader, from, to Format, rangeCheck bool) io.Reader {
	return transform.NewReader(r, Transcoder(from, to, rangeCheck))
}

// NewWriter wraps w so writes are transcoded before reaching it. The caller
// must Close the returned writer to flush any pending partial sequence.
func NewWriter(w io.Writer, from, to Format, rangeCheck bool) io.WriteCloser {
	return transform.NewWriter(w, Transcoder(from, to, rangeCheck))
}
