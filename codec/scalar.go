package codec

// Codepoint is an unsigned 32-bit scalar value. Two domains matter: the
// legacy UTF-8 domain 0x0-0x7FFFFFFF, which supports the historical 5- and
// 6-byte forms, and the Unicode scalar domain 0x0-0x10FFFF. Values above
// MaxLegacy are outside the engine's defined domain.
type Codepoint uint32

const (
	// MaxScalar is the last codepoint in the Unicode scalar domain.
	MaxScalar Codepoint = 0x10FFFF
	// MaxLegacy is the last value representable by a 6-byte UTF-8 form.
	MaxLegacy Codepoint = 0x7FFFFFFF

	surrMin  Codepoint = 0xD800
	surrHigh Codepoint = 0xDC00
	surrMax  Codepoint = 0xDFFF
	surrBase Codepoint = 0x10000
)

// UTF8Len returns the minimal UTF-8 byte length for cp, or 0 when cp lies
// outside the legacy domain.
func (cp Codepoint) UTF8Len() int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	case cp < 0x200000:
		return 4
	case cp < 0x4000000:
		return 5
	case cp <= MaxLegacy:
		return 6
	}
	return 0
}

// UTF16Len returns the UTF-16 unit count for cp, or 0 when cp has no UTF-16
// representation.
func (cp Codepoint) UTF16Len() int {
	switch {
	case cp < surrBase:
		return 1
	case cp <= MaxScalar:
		return 2
	}
	return 0
}

// IsHighSurrogate reports whether cp is a leading (high) surrogate.
func (cp Codepoint) IsHighSurrogate() bool {
	return surrMin <= cp && cp < surrHigh
}

// IsLowSurrogate reports whether cp is a trailing (low) surrogate.
func (cp Codepoint) IsLowSurrogate() bool {
	return surrHigh <= cp && cp <= surrMax
}

// Properties classifies cp. The first matching base category wins; the order
// matters at plane boundaries (0xFFFFE is a noncharacter even though it also
// falls inside a private-use plane).
func (cp Codepoint) Properties() Properties {
	var p Properties
	switch {
	case cp&0xFFFE == 0xFFFE, 0xFDD0 <= cp && cp <= 0xFDEF:
		p = Noncharacter
	case surrMin <= cp && cp <= surrMax:
		p = Surrogate
	case 0xE000 <= cp && cp <= 0xF8FF, cp >= 0xF0000:
		p = Private
	case cp <= 0x1F, 0x7F <= cp && cp <= 0x9F:
		p = Control
	default:
		p = Normal
	}
	if cp >= surrBase || cp.IsHighSurrogate() {
		p |= Supplementary
	}
	return p
}
