// Package stream adapts the codec engine to golang.org/x/text/transform so
// whole byte streams can be converted or validated with transform.Reader,
// transform.Writer, transform.String and friends.
//
// # Transformers
//
//   - UTF8ToUTF16 / UTF16ToUTF8: format conversion in either byte order
//   - Validator: pass-through UTF-8 validation
//   - Transcoder: any supported format pair, chaining through UTF-8 when
//     neither side is UTF-8
//
// All transformers honor the transform contract: an incomplete trailing
// sequence yields transform.ErrShortSrc until atEOF, and a destination too
// small for the next full output yields transform.ErrShortDst without
// consuming the input that produced it.
//
// # Errors
//
// Malformed input surfaces as *errors.Error with phase "stream", carrying
// the absolute input offset of the offending sequence and a short prefix of
// its bytes. Offsets accumulate across Transform calls and reset with the
// transformer.
package stream
