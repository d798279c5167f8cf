package stream

import (
	"golang.org/x/text/transform"

	"github.com/runewire/runewire/codec"
	"github.com/runewire/runewire/errors"
)

// UTF8ToUTF16 returns a transform.Transformer that converts UTF-8 input to
// UTF-16 bytes in the given order. With rangeCheck set, values above
// U+10FFFF are rejected; without it they still fail here, because UTF-16
// cannot carry them.
func UTF8ToUTF16(order codec.ByteOrder, rangeCheck bool) transform.Transformer {
	return &utf8ToUTF16{order: order, dec: codec.NewUTF8Decoder(rangeCheck)}
}

// UTF16ToUTF8 returns a transform.Transformer that converts UTF-16 bytes in
// the given order to UTF-8. With rangeCheck unset, unpaired low surrogates
// pass through as three-byte sequences.
func UTF16ToUTF8(order codec.ByteOrder, rangeCheck bool) transform.Transformer {
	return &utf16ToUTF8{order: order, rangeCheck: rangeCheck, dec: codec.NewUTF16Decoder()}
}

// Validator returns a transform.Transformer that copies its input unchanged
// and fails on the first malformed UTF-8 sequence.
func Validator(rangeCheck bool) transform.Transformer {
	return &validator{dec: codec.NewUTF8Decoder(rangeCheck)}
}

type utf8ToUTF16 struct {
	order  codec.ByteOrder
	dec    *codec.UTF8Decoder
	offset int64
}

func (t *utf8ToUTF16) Reset() {
	t.dec.Reset()
	t.offset = 0
}

func (t *utf8ToUTF16) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	base := t.offset
	defer func() { t.offset = base + int64(nSrc) }()

	var scratch [2]uint16
	for nSrc < len(src) {
		t.dec.Reset()
		i := nSrc
		var res codec.Result
		for i < len(src) {
			res = t.dec.Feed(src[i])
			i++
			if res.Status.Terminal() {
				break
			}
		}
		if !res.Status.Terminal() {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, errors.Truncated(errors.PhaseStream, base+int64(nSrc), clone(src[nSrc:i]))
		}
		if err := terminalError(res, base+int64(nSrc), src[nSrc:i]); err != nil {
			return nDst, nSrc, err
		}
		if res.Value > codec.MaxScalar {
			return nDst, nSrc, errors.NonUnicode(errors.PhaseStream, base+int64(nSrc), uint32(res.Value))
		}

		units, _ := codec.AppendUTF16(scratch[:0], res.Value)
		if nDst+2*len(units) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		for _, u := range units {
			nDst += putUnit(dst[nDst:], u, t.order)
		}
		nSrc = i
	}
	return nDst, nSrc, nil
}

type utf16ToUTF8 struct {
	order      codec.ByteOrder
	rangeCheck bool
	dec        *codec.UTF16Decoder
	offset     int64
}

func (t *utf16ToUTF8) Reset() {
	t.dec.Reset()
	t.offset = 0
}

func (t *utf16ToUTF8) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	base := t.offset
	defer func() { t.offset = base + int64(nSrc) }()

	var scratch [4]byte
	for nSrc < len(src) {
		t.dec.Reset()
		i := nSrc
		var res codec.Result
		for {
			if i+2 > len(src) {
				if !atEOF {
					return nDst, nSrc, transform.ErrShortSrc
				}
				return nDst, nSrc, errors.Truncated(errors.PhaseStream, base+int64(nSrc), clone(src[nSrc:]))
			}
			u := getUnit(src[i:], t.order)
			var consumed bool
			res, consumed = t.dec.Feed(u)
			if !consumed {
				// A high surrogate with no low pair; the follower is left
				// for the next sequence, which never helps here: fail.
				return nDst, nSrc, errors.UnpairedSurrogate(errors.PhaseStream, base+int64(nSrc), getUnit(src[nSrc:], t.order))
			}
			i += 2
			if res.Status.Terminal() {
				break
			}
		}

		b, enc := codec.AppendUTF8(scratch[:0], res.Value, t.rangeCheck)
		if enc.Status&codec.Error != 0 {
			return nDst, nSrc, errors.NonUnicode(errors.PhaseStream, base+int64(nSrc), uint32(res.Value))
		}
		if nDst+len(b) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], b)
		nSrc = i
	}
	return nDst, nSrc, nil
}

type validator struct {
	dec    *codec.UTF8Decoder
	offset int64
}

func (t *validator) Reset() {
	t.dec.Reset()
	t.offset = 0
}

func (t *validator) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	base := t.offset
	defer func() { t.offset = base + int64(nSrc) }()

	for nSrc < len(src) {
		t.dec.Reset()
		i := nSrc
		var res codec.Result
		for i < len(src) {
			res = t.dec.Feed(src[i])
			i++
			if res.Status.Terminal() {
				break
			}
		}
		if !res.Status.Terminal() {
			if !atEOF {
				return nDst, nSrc, transform.ErrShortSrc
			}
			return nDst, nSrc, errors.Truncated(errors.PhaseStream, base+int64(nSrc), clone(src[nSrc:i]))
		}
		if err := terminalError(res, base+int64(nSrc), src[nSrc:i]); err != nil {
			return nDst, nSrc, err
		}
		if nDst+(i-nSrc) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:i])
		nSrc = i
	}
	return nDst, nSrc, nil
}

// terminalError maps a failed terminal result to a structured stream error,
// or nil for a clean completion.
func terminalError(res codec.Result, offset int64, seq []byte) error {
	if res.Status&codec.Error == 0 {
		return nil
	}
	switch {
	case res.Status&codec.Overlong != 0:
		return errors.Overlong(errors.PhaseStream, offset, clone(seq), uint32(res.Value))
	case res.Status&codec.NonUnicode != 0:
		return errors.NonUnicode(errors.PhaseStream, offset, uint32(res.Value))
	default:
		return errors.InvalidSequence(errors.PhaseStream, offset, clone(seq))
	}
}

func putUnit(dst []byte, u uint16, order codec.ByteOrder) int {
	if order == codec.LittleEndian {
		dst[0], dst[1] = byte(u), byte(u>>8)
	} else {
		dst[0], dst[1] = byte(u>>8), byte(u)
	}
	return 2
}

func getUnit(src []byte, order codec.ByteOrder) uint16 {
	if order == codec.LittleEndian {
		return uint16(src[0]) | uint16(src[1])<<8
	}
	return uint16(src[0])<<8 | uint16(src[1])
}

func clone(b []byte) []byte {
	return append([]byte(nil), b...)
}
