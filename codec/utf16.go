package codec

// AppendUTF16 appends the UTF-16 encoding of cp to dst and returns the
// extended slice and the operation result. Values above MaxScalar have no
// UTF-16 representation and always fail, regardless of any range-check
// configuration.
func AppendUTF16(dst []uint16, cp Codepoint) ([]uint16, Result) {
	res := Result{Value: cp, Props: cp.Properties()}
	if cp > MaxScalar {
		res.Status = NonUnicode | Error
		return dst, res
	}
	if cp < surrBase {
		dst = append(dst, uint16(cp))
	} else {
		w := cp - surrBase
		dst = append(dst, uint16(surrMin+w>>10), uint16(surrHigh+w&0x3FF))
	}
	res.Status = Ready
	return dst, res
}

// UTF16Decoder assembles one UTF-16 sequence at a time. UTF-16 is
// self-synchronizing, so a new sequence begins automatically after every
// terminal state; Reset is only needed to abandon a pending high surrogate.
type UTF16Decoder struct {
	pending uint16
	live    bool
	res     Result
}

// NewUTF16Decoder returns a decoder.
func NewUTF16Decoder() *UTF16Decoder {
	return &UTF16Decoder{}
}

// Reset discards a pending high surrogate and the latched result.
func (d *UTF16Decoder) Reset() {
	*d = UTF16Decoder{}
}

// Result returns the latched outcome of the most recent Feed.
func (d *UTF16Decoder) Result() Result {
	return d.res
}

// Feed consumes one unit and returns the updated result. consumed is false
// only when a pending high surrogate was followed by a unit that is not a
// low surrogate: the lone surrogate is reported as its own scalar with
// Retry|Error and the offending unit must be fed again as a fresh decode.
func (d *UTF16Decoder) Feed(u uint16) (res Result, consumed bool) {
	cp := Codepoint(u)
	if !d.live {
		if cp.IsHighSurrogate() {
			d.pending = u
			d.live = true
			d.res = Result{Value: cp, Status: Underflow}
			return d.res, true
		}
		// Any other first unit, including a lone low surrogate, is a
		// complete scalar by itself.
		d.res = Result{Value: cp, Status: Ready, Props: cp.Properties()}
		return d.res, true
	}
	d.live = false
	if cp.IsLowSurrogate() {
		v := surrBase + (Codepoint(d.pending)-surrMin)<<10 + (cp - surrHigh)
		d.res = Result{Value: v, Status: Ready, Props: v.Properties()}
		return d.res, true
	}
	lone := Codepoint(d.pending)
	d.res = Result{Value: lone, Status: Retry | Error, Props: lone.Properties()}
	return d.res, false
}
