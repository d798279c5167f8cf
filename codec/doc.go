// Package codec implements a bidirectional Unicode transcoding engine: it
// converts 32-bit codepoints to and from UTF-8 byte sequences and UTF-16
// code-unit sequences, classifies every resolved codepoint, and detects
// every class of malformed input with a defined resynchronization protocol.
//
// # Domains
//
// The engine operates on two value domains:
//
//	Domain          Range            Forms
//	─────────────────────────────────────────────────────
//	Unicode scalar  0x0-0x10FFFF     UTF-8 1-4 bytes, UTF-16 1-2 units
//	legacy UTF-8    0x0-0x7FFFFFFF   UTF-8 1-6 bytes (historical forms)
//
// Values above 0x7FFFFFFF are outside the defined domain.
//
// # Length classes
//
// The minimal UTF-8 byte length for a value:
//
//	Range                  Length   Leading byte
//	──────────────────────────────────────────────
//	0x00-0x7F              1        0xxxxxxx
//	0x80-0x7FF             2        110xxxxx
//	0x800-0xFFFF           3        1110xxxx
//	0x10000-0x1FFFFF       4        11110xxx
//	0x200000-0x3FFFFFF     5        111110xx
//	0x4000000-0x7FFFFFFF   6        1111110x
//
// Every trailing byte is 10xxxxxx, carrying 6 payload bits.
//
// # Key types
//
//	Codepoint     - scalar value with length and classification methods
//	Status        - operation outcome bitset (Ready, Retry, Invalid, ...)
//	Properties    - classification bitset (base category + Supplementary)
//	UTF8Decoder   - incremental byte-at-a-time UTF-8 assembly
//	UTF16Decoder  - incremental unit-at-a-time UTF-16 assembly
//	UTF8To16      - UTF-8 decode composed with UTF-16 encode
//	UTF16To8      - UTF-16 decode composed with UTF-8 encode
//
// Encoding is stateless: AppendUTF8 and AppendUTF16 are pure functions of
// value and configuration.
//
// # Decoder lifecycle
//
// A decoder accumulates units across Feed calls until the returned status is
// terminal (Ready or an error), then is Reset before starting a new
// sequence. Underflow (the zero Status) means more input is required and is
// not an error. Feeding a UTF8Decoder past a terminal state engages
// resynchronization: Retry|Error tells the caller to discard exactly one
// already-consumed unit and reset before retrying.
//
// # Error model
//
// Malformed input is reported synchronously through Status, never through
// Go errors or panics: Invalid (structurally impossible byte or unit),
// Overlong (longer than the minimal form), NonUnicode (above 0x10FFFF;
// fatal when range-checked, informational otherwise), Retry (resynchronize
// by discarding one unit). The raw assembled value and its classification
// stay observable alongside the error flags.
//
// # Thread safety
//
// Decoders and transcoders are single-goroutine state machines. Independent
// instances share nothing and may run fully in parallel.
package codec
