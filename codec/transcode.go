package codec

// UTF8To16 composes a UTF-8 decode with a UTF-16 encode, one scalar at a
// time. The reported status and properties are the decoder's; destination
// output is produced only for ready decodes (a ready decode of a value above
// MaxScalar still yields no units, since UTF-16 cannot represent it).
type UTF8To16 struct {
	dec   UTF8Decoder
	units [2]uint16
}

// NewUTF8To16 returns a transcoder. rangeCheck applies to the UTF-8 decode
// side.
func NewUTF8To16(rangeCheck bool) *UTF8To16 {
	return &UTF8To16{dec: UTF8Decoder{rangeCheck: rangeCheck}}
}

// Reset discards all accumulated state.
func (t *UTF8To16) Reset() {
	t.dec.Reset()
}

// Result returns the latched outcome of the most recent Feed.
func (t *UTF8To16) Result() Result {
	return t.dec.Result()
}

// Feed consumes one UTF-8 byte. units is non-nil only when the decode
// completed and the resolved value is representable in UTF-16; it is valid
// until the next Feed.
func (t *UTF8To16) Feed(b byte) (units []uint16, res Result) {
	res = t.dec.Feed(b)
	if res.Status&Ready == 0 {
		return nil, res
	}
	units, enc := AppendUTF16(t.units[:0], res.Value)
	if enc.Status&Error != 0 {
		return nil, res
	}
	return units, res
}

// UTF16To8 composes a UTF-16 decode with a UTF-8 encode, one scalar at a
// time. The reported status and properties are the decoder's.
type UTF16To8 struct {
	rangeCheck bool
	dec        UTF16Decoder
	bytes      [4]byte
}

// NewUTF16To8 returns a transcoder. rangeCheck applies to the UTF-8 encode
// side; a decoded UTF-16 scalar never exceeds MaxScalar, so it only matters
// for symmetry with the configuration surface.
func NewUTF16To8(rangeCheck bool) *UTF16To8 {
	return &UTF16To8{rangeCheck: rangeCheck}
}

// Reset discards all accumulated state.
func (t *UTF16To8) Reset() {
	t.dec.Reset()
}

// Result returns the latched outcome of the most recent Feed.
func (t *UTF16To8) Result() Result {
	return t.dec.Result()
}

// Feed consumes one UTF-16 unit. b is non-nil only when the decode
// completed; it is valid until the next Feed. consumed follows the
// UTF16Decoder contract for unpaired high surrogates.
func (t *UTF16To8) Feed(u uint16) (b []byte, res Result, consumed bool) {
	res, consumed = t.dec.Feed(u)
	if res.Status&Ready == 0 {
		return nil, res, consumed
	}
	b, _ = AppendUTF8(t.bytes[:0], res.Value, t.rangeCheck)
	return b, res, consumed
}
