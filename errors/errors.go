package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode    Phase = "decode"    // byte/unit sequence to codepoint
	PhaseEncode    Phase = "encode"    // codepoint to byte/unit sequence
	PhaseTranscode Phase = "transcode" // format to format
	PhaseStream    Phase = "stream"    // transform-based stream processing
	PhaseDevice    Phase = "device"    // register-surface emulation
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidSequence Kind = "invalid_sequence"
	KindOverlong        Kind = "overlong"
	KindNonUnicode      Kind = "non_unicode"
	KindTruncated       Kind = "truncated"
	KindResync          Kind = "resync"
	KindBufferFull      Kind = "buffer_full"
	KindBadConfig       Kind = "bad_config"
)

// Error is the structured error type used by the stream and device layers.
// The core engine reports outcomes through status flags instead; an Error is
// only produced where a terminal status has to surface as a Go error.
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Detail   string
	Sequence []byte // the offending input prefix, if any
	Offset   int64  // input offset of the first offending unit, -1 if unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Offset >= 0 {
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	if len(e.Sequence) > 0 {
		fmt.Fprintf(&b, ": % X", e.Sequence)
	}
	if e.Detail != "" {
		if len(e.Sequence) > 0 {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Offset sets the input offset of the first offending unit
func (b *Builder) Offset(off int64) *Builder {
	b.err.Offset = off
	return b
}

// Sequence sets the offending input prefix
func (b *Builder) Sequence(seq []byte) *Builder {
	b.err.Sequence = seq
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// InvalidSequence creates a structurally-malformed-input error
func InvalidSequence(phase Phase, offset int64, seq []byte) *Error {
	preview := seq
	if len(preview) > 6 {
		preview = preview[:6]
	}
	return &Error{
		Phase:    phase,
		Kind:     KindInvalidSequence,
		Offset:   offset,
		Sequence: preview,
		Detail:   "structurally invalid sequence",
	}
}

// Overlong creates an error for a sequence longer than its minimal form
func Overlong(phase Phase, offset int64, seq []byte, value uint32) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindOverlong,
		Offset:   offset,
		Sequence: seq,
		Detail:   fmt.Sprintf("overlong encoding of U+%04X", value),
	}
}

// NonUnicode creates an error for a value above the Unicode scalar range
func NonUnicode(phase Phase, offset int64, value uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNonUnicode,
		Offset: offset,
		Detail: fmt.Sprintf("value 0x%X exceeds the Unicode scalar range", value),
	}
}

// Truncated creates an error for input that ends mid-sequence
func Truncated(phase Phase, offset int64, seq []byte) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTruncated,
		Offset:   offset,
		Sequence: seq,
		Detail:   "input ends inside a multi-unit sequence",
	}
}

// UnpairedSurrogate creates an error for a high surrogate with no low pair
func UnpairedSurrogate(phase Phase, offset int64, unit uint16) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindResync,
		Offset: offset,
		Detail: fmt.Sprintf("unpaired high surrogate 0x%04X", unit),
	}
}

// BufferFull creates an error for a write past a fixed-capacity buffer
func BufferFull(phase Phase, capacity int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferFull,
		Detail: fmt.Sprintf("buffer full (capacity %d)", capacity),
	}
}

// BadConfig creates a configuration error
func BadConfig(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadConfig,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
		Offset: -1,
	}
}
