package codec

import "strings"

// Status is the outcome bitset of an encode or decode operation. The bit
// values match the device-register 6-bit status field, so a Status truncated to its
// low six bits is wire-compatible with the device register layout.
type Status uint8

const (
	// Ready means a value was resolved and output (if any) is latched.
	Ready Status = 1 << iota
	// Retry means exactly one already-consumed unit must be discarded and
	// the input resynchronized before decoding can continue.
	Retry
	// Invalid marks a structurally malformed sequence: a byte or unit that
	// can never appear in its position.
	Invalid
	// Overlong marks a UTF-8 sequence that uses more bytes than the minimal
	// encoding of its value requires.
	Overlong
	// NonUnicode marks a resolved value above MaxScalar. It is combined
	// with Error when range checking rejects the value, and stands alone as
	// an informational flag otherwise.
	NonUnicode
	// Error accompanies Retry, Invalid, Overlong or NonUnicode when the
	// operation failed.
	Error
)

// Underflow is the zero Status: not enough input yet. It is not an error.
const Underflow Status = 0

// Ok reports whether the operation resolved a value without error.
func (s Status) Ok() bool {
	return s&Ready != 0 && s&Error == 0
}

// Terminal reports whether the operation reached a terminal state, i.e.
// feeding more input without a reset triggers the resynchronization protocol.
func (s Status) Terminal() bool {
	return s&(Ready|Error) != 0
}

var statusNames = [...]string{"ready", "retry", "invalid", "overlong", "non_unicode", "error"}

func (s Status) String() string {
	if s == Underflow {
		return "underflow"
	}
	var parts []string
	for i, name := range statusNames {
		if s&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Properties is the classification bitset of a resolved codepoint: exactly
// one base category plus the additive Supplementary flag. Bit values match
// the device-register 6-bit property field.
type Properties uint8

const (
	// Normal is the base category for ordinarily assignable codepoints.
	Normal Properties = 1 << iota
	// Control covers C0 controls, DEL and C1 controls.
	Control
	// Surrogate covers 0xD800 through 0xDFFF.
	Surrogate
	// Supplementary is additive: the value lies outside the Basic
	// Multilingual Plane, or is a high surrogate (which always denotes a
	// supplementary scalar).
	Supplementary
	// Private covers the private-use ranges, including every private-use
	// plane at or above 0xF0000.
	Private
	// Noncharacter covers 0xFDD0-0xFDEF and the last two codepoints of
	// every 16-bit plane.
	Noncharacter
)

var propNames = [...]string{"normal", "control", "surrogate", "supplementary", "private", "noncharacter"}

func (p Properties) String() string {
	if p == 0 {
		return "none"
	}
	var parts []string
	for i, name := range propNames {
		if p&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Result is the latched outcome of the most recent operation: the resolved
// (or partially assembled) value, its status and its classification.
type Result struct {
	Value  Codepoint
	Status Status
	Props  Properties
}
