// Package runewire implements a bidirectional Unicode transcoding engine:
// codepoint to UTF-8 (including the legacy 5- and 6-byte forms), codepoint
// to UTF-16, and either format to the other, with per-unit status reporting
// and codepoint classification.
//
// # Architecture Overview
//
// The module is organized into several packages with distinct
// responsibilities:
//
//	runewire/            Root package documentation
//	├── codec/           Core engine: encoders, incremental decoders, classification
//	├── stream/          golang.org/x/text/transform adapters for whole streams
//	├── device/          Register-surface port with fixed buffers and status fields
//	├── errors/          Structured error types for the stream and device layers
//	└── cmd/runewire/    Command-line transcoder and interactive inspector
//
// # Quick Start
//
// Decode a UTF-8 sequence one byte at a time:
//
//	dec := codec.NewUTF8Decoder(true)
//	var res codec.Result
//	for _, b := range []byte{0xF0, 0x9F, 0x98, 0x80} {
//		res = dec.Feed(b)
//	}
//	// res.Value == 0x1F600, res.Status == codec.Ready
//
// Convert a whole stream:
//
//	r := transform.NewReader(in, stream.Transcoder(stream.UTF8, stream.UTF16BE, true))
//	io.Copy(out, r)
package runewire
