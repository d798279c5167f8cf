package codec

// Leading-byte templates. A length-N sequence (N > 1) starts with N leading
// ones then a zero; every trailing byte is 10xxxxxx carrying 6 payload bits.
const (
	contMask    = 0xC0
	contPattern = 0x80
	contBits    = 6
	contPayload = 0x3F
)

var leadPrefix = [7]byte{0, 0x00, 0xC0, 0xE0, 0xF0, 0xF8, 0xFC}

// AppendUTF8 appends the UTF-8 encoding of cp to dst and returns the
// extended slice and the operation result. Values above MaxLegacy are
// outside the defined domain and produce no output; with rangeCheck enabled,
// values above MaxScalar are rejected rather than merely flagged.
func AppendUTF8(dst []byte, cp Codepoint, rangeCheck bool) ([]byte, Result) {
	res := Result{Value: cp, Props: cp.Properties()}
	if cp > MaxLegacy {
		res.Status = Invalid | Error
		return dst, res
	}
	if rangeCheck && cp > MaxScalar {
		res.Status = NonUnicode | Error
		return dst, res
	}
	n := cp.UTF8Len()
	if n == 1 {
		dst = append(dst, byte(cp))
	} else {
		dst = append(dst, leadPrefix[n]|byte(cp>>(contBits*uint(n-1))))
		for i := n - 2; i >= 0; i-- {
			dst = append(dst, contPattern|byte(cp>>(contBits*uint(i)))&contPayload)
		}
	}
	res.Status = Ready
	if cp > MaxScalar {
		res.Status |= NonUnicode
	}
	return dst, res
}

// UTF8Decoder assembles one UTF-8 sequence at a time. Feed bytes until the
// returned status is terminal, then Reset before starting a new sequence.
// Feeding past a terminal state without a reset engages the
// resynchronization protocol described at Feed.
type UTF8Decoder struct {
	rangeCheck bool

	res    Result
	acc    Codepoint
	need   int
	have   int
	bad    bool // a trailing byte did not match 10xxxxxx
	live   bool // mid-sequence
	done   bool // terminal state latched
	orphan bool // accumulating continuation bytes with no leading byte
}

// NewUTF8Decoder returns a decoder. With rangeCheck enabled, resolved values
// above MaxScalar are rejected as NonUnicode|Error instead of flagged.
func NewUTF8Decoder(rangeCheck bool) *UTF8Decoder {
	return &UTF8Decoder{rangeCheck: rangeCheck}
}

// Reset discards all accumulated state and begins a fresh sequence.
func (d *UTF8Decoder) Reset() {
	*d = UTF8Decoder{rangeCheck: d.rangeCheck}
}

// Result returns the latched outcome of the most recent Feed.
func (d *UTF8Decoder) Result() Result {
	return d.res
}

// Feed consumes one byte and returns the updated result. A zero status means
// underflow: supply more bytes. Once a terminal state has been reached,
// feeding one further byte resynchronizes: after a clean terminal a
// continuation byte opens a fresh underflow accumulation, while any other
// byte, or any byte after a terminal error, reports Retry|Error and leaves
// the previously resolved value latched until Reset.
func (d *UTF8Decoder) Feed(b byte) Result {
	switch {
	case d.done:
		if d.res.Status&Error != 0 || b&contMask != contPattern {
			d.res.Status |= Retry | Error
			return d.res
		}
		// A stray continuation byte after a clean terminal is ambiguous
		// but not yet erroneous: it may be the tail of a sequence whose
		// leading byte was lost. Absorb it and report underflow; the
		// latched value survives until this run resolves.
		d.done = false
		d.live = true
		d.orphan = true
		d.acc = Codepoint(b & contPayload)
		d.have = 1
		d.res.Status = Underflow
		return d.res

	case d.live && d.orphan:
		if b&contMask != contPattern || d.have >= 6 {
			// The orphan run can no longer prefix any sequence.
			d.acc = d.acc<<contBits | Codepoint(b&contPayload)
			return d.terminal(Invalid | Error)
		}
		d.acc = d.acc<<contBits | Codepoint(b&contPayload)
		d.have++
		d.res.Status = Underflow
		return d.res

	case d.live:
		// Structural assembly is positional: payload bits are concatenated
		// before the byte's top bits are validated.
		d.acc = d.acc<<contBits | Codepoint(b&contPayload)
		if b&contMask != contPattern {
			d.bad = true
		}
		d.have++
		if d.have < d.need {
			d.res = Result{Value: d.acc, Status: Underflow}
			return d.res
		}
		return d.finalize()

	default:
		return d.start(b)
	}
}

// start dispatches on the leading byte.
func (d *UTF8Decoder) start(b byte) Result {
	var n int
	switch {
	case b < 0x80:
		d.acc = Codepoint(b)
		d.need, d.have = 1, 1
		return d.finalize()
	case b < 0xC0:
		// A stray continuation byte can never start a sequence.
		d.acc = Codepoint(b & contPayload)
		return d.terminal(Invalid | Error)
	case b < 0xE0:
		n = 2
	case b < 0xF0:
		n = 3
	case b < 0xF8:
		n = 4
	case b < 0xFC:
		n = 5
	case b < 0xFE:
		n = 6
	default:
		// 0xFE and 0xFF appear in no template.
		d.acc = 0
		return d.terminal(Invalid | Error)
	}
	d.acc = Codepoint(b &^ (leadPrefix[n] | byte(1)<<(7-uint(n))))
	d.need, d.have = n, 1
	d.live = true
	d.res = Result{Value: d.acc, Status: Underflow}
	return d.res
}

// finalize validates a fully assembled sequence.
func (d *UTF8Decoder) finalize() Result {
	switch {
	case d.bad:
		return d.terminal(Invalid | Error)
	case d.acc.UTF8Len() < d.need:
		return d.terminal(Overlong | Error)
	case d.rangeCheck && d.acc > MaxScalar:
		return d.terminal(NonUnicode | Error)
	case d.acc > MaxScalar:
		return d.terminal(Ready | NonUnicode)
	default:
		return d.terminal(Ready)
	}
}

func (d *UTF8Decoder) terminal(st Status) Result {
	d.res = Result{Value: d.acc, Status: st, Props: d.acc.Properties()}
	d.live, d.orphan, d.bad = false, false, false
	d.done = true
	return d.res
}
