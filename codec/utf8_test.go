package codec

import (
	"bytes"
	"testing"
)

func TestAppendUTF8(t *testing.T) {
	tests := []struct {
		name       string
		cp         Codepoint
		rangeCheck bool
		want       []byte
		status     Status
	}{
		{"ascii min", 0x00, true, []byte{0x00}, Ready},
		{"ascii max", 0x7F, true, []byte{0x7F}, Ready},
		{"two byte min", 0x80, true, []byte{0xC2, 0x80}, Ready},
		{"two byte max", 0x7FF, true, []byte{0xDF, 0xBF}, Ready},
		{"three byte min", 0x800, true, []byte{0xE0, 0xA0, 0x80}, Ready},
		{"euro sign", 0x20AC, true, []byte{0xE2, 0x82, 0xAC}, Ready},
		{"high surrogate", 0xD800, true, []byte{0xED, 0xA0, 0x80}, Ready},
		{"three byte max", 0xFFFF, true, []byte{0xEF, 0xBF, 0xBF}, Ready},
		{"four byte min", 0x10000, true, []byte{0xF0, 0x90, 0x80, 0x80}, Ready},
		{"emoji", 0x1F600, true, []byte{0xF0, 0x9F, 0x98, 0x80}, Ready},
		{"last scalar", 0x10FFFF, true, []byte{0xF4, 0x8F, 0xBF, 0xBF}, Ready},
		{"above scalar checked", 0x110000, true, nil, NonUnicode | Error},
		{"above scalar relaxed", 0x110000, false, []byte{0xF4, 0x90, 0x80, 0x80}, Ready | NonUnicode},
		{"five byte min", 0x200000, false, []byte{0xF8, 0x88, 0x80, 0x80, 0x80}, Ready | NonUnicode},
		{"five byte max", 0x3FFFFFF, false, []byte{0xFB, 0xBF, 0xBF, 0xBF, 0xBF}, Ready | NonUnicode},
		{"six byte min", 0x4000000, false, []byte{0xFC, 0x84, 0x80, 0x80, 0x80, 0x80}, Ready | NonUnicode},
		{"six byte max", 0x7FFFFFFF, false, []byte{0xFD, 0xBF, 0xBF, 0xBF, 0xBF, 0xBF}, Ready | NonUnicode},
		{"beyond legacy domain", 0x80000000, false, nil, Invalid | Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := AppendUTF8(nil, tt.cp, tt.rangeCheck)
			if !bytes.Equal(got, tt.want) {
				t.Errorf("bytes = % X, want % X", got, tt.want)
			}
			if res.Status != tt.status {
				t.Errorf("status = %v, want %v", res.Status, tt.status)
			}
			if res.Value != tt.cp {
				t.Errorf("value = %#x, want %#x", res.Value, tt.cp)
			}
		})
	}
}

func TestAppendUTF8RoundTrip(t *testing.T) {
	// Every legacy length class decodes back to its own value.
	for _, cp := range []Codepoint{
		0x41, 0x80, 0x7FF, 0x800, 0xD800, 0xFFFF, 0x10000, 0x10FFFF,
		0x110000, 0x200000, 0x3FFFFFF, 0x4000000, 0x12345678, 0x7FFFFFFF,
	} {
		b, enc := AppendUTF8(nil, cp, false)
		if enc.Status&Error != 0 {
			t.Fatalf("encode %#x: %v", uint32(cp), enc.Status)
		}
		dec := NewUTF8Decoder(false)
		var res Result
		for _, x := range b {
			res = dec.Feed(x)
		}
		if res.Status&Ready == 0 || res.Value != cp {
			t.Errorf("round trip %#x: got %#x, status %v", uint32(cp), res.Value, res.Status)
		}
	}
}

type decodeStep struct {
	b      byte
	status Status
}

func TestUTF8DecoderSequences(t *testing.T) {
	tests := []struct {
		name       string
		rangeCheck bool
		steps      []decodeStep
		value      Codepoint
		props      Properties
	}{
		{
			name:       "ascii",
			rangeCheck: true,
			steps:      []decodeStep{{0x41, Ready}},
			value:      0x41,
			props:      Normal,
		},
		{
			name:       "euro sign",
			rangeCheck: true,
			steps:      []decodeStep{{0xE2, Underflow}, {0x82, Underflow}, {0xAC, Ready}},
			value:      0x20AC,
			props:      Normal,
		},
		{
			name:       "high surrogate",
			rangeCheck: true,
			steps:      []decodeStep{{0xED, Underflow}, {0xA0, Underflow}, {0x80, Ready}},
			value:      0xD800,
			props:      Surrogate | Supplementary,
		},
		{
			name:       "overlong nul",
			rangeCheck: true,
			steps:      []decodeStep{{0xC0, Underflow}, {0x80, Overlong | Error}},
			value:      0x00,
			props:      Control,
		},
		{
			name:       "overlong slash",
			rangeCheck: true,
			steps:      []decodeStep{{0xE0, Underflow}, {0x80, Underflow}, {0xAF, Overlong | Error}},
			value:      0x2F,
			props:      Normal,
		},
		{
			name:       "stray continuation",
			rangeCheck: true,
			steps:      []decodeStep{{0xBF, Invalid | Error}},
			value:      0x3F,
			props:      Normal,
		},
		{
			name:       "fe never valid",
			rangeCheck: true,
			steps:      []decodeStep{{0xFE, Invalid | Error}},
			value:      0x00,
			props:      Control,
		},
		{
			name:       "ff never valid",
			rangeCheck: true,
			steps:      []decodeStep{{0xFF, Invalid | Error}},
			value:      0x00,
			props:      Control,
		},
		{
			name:       "bad trailing byte held to length",
			rangeCheck: true,
			steps:      []decodeStep{{0xE2, Underflow}, {0x41, Underflow}, {0xAC, Invalid | Error}},
			value:      0x206C,
			props:      Normal,
		},
		{
			name:       "above scalar checked",
			rangeCheck: true,
			steps:      []decodeStep{{0xF4, Underflow}, {0x90, Underflow}, {0x80, Underflow}, {0x80, NonUnicode | Error}},
			value:      0x110000,
			props:      Private | Supplementary,
		},
		{
			name:       "above scalar relaxed",
			rangeCheck: false,
			steps:      []decodeStep{{0xF4, Underflow}, {0x90, Underflow}, {0x80, Underflow}, {0x80, Ready | NonUnicode}},
			value:      0x110000,
			props:      Private | Supplementary,
		},
		{
			name:       "five byte relaxed",
			rangeCheck: false,
			steps:      []decodeStep{{0xF8, Underflow}, {0x88, Underflow}, {0x80, Underflow}, {0x80, Underflow}, {0x80, Ready | NonUnicode}},
			value:      0x200000,
			props:      Private | Supplementary,
		},
		{
			name:       "five byte checked",
			rangeCheck: true,
			steps:      []decodeStep{{0xF8, Underflow}, {0x88, Underflow}, {0x80, Underflow}, {0x80, Underflow}, {0x80, NonUnicode | Error}},
			value:      0x200000,
			props:      Private | Supplementary,
		},
		{
			name:       "overlong five byte",
			rangeCheck: false,
			steps:      []decodeStep{{0xF8, Underflow}, {0x80, Underflow}, {0x80, Underflow}, {0x80, Underflow}, {0x80, Overlong | Error}},
			value:      0x00,
			props:      Control,
		},
		{
			name:       "six byte relaxed",
			rangeCheck: false,
			steps:      []decodeStep{{0xFD, Underflow}, {0xBF, Underflow}, {0xBF, Underflow}, {0xBF, Underflow}, {0xBF, Underflow}, {0xBF, Ready | NonUnicode}},
			value:      0x7FFFFFFF,
			props:      Noncharacter | Supplementary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := NewUTF8Decoder(tt.rangeCheck)
			var res Result
			for i, step := range tt.steps {
				res = dec.Feed(step.b)
				if res.Status != step.status {
					t.Fatalf("step %d (byte %02X): status = %v, want %v", i, step.b, res.Status, step.status)
				}
			}
			if res.Value != tt.value {
				t.Errorf("value = %#x, want %#x", res.Value, tt.value)
			}
			if res.Props != tt.props {
				t.Errorf("props = %v, want %v", res.Props, tt.props)
			}
			if got := dec.Result(); got != res {
				t.Errorf("Result() = %+v, want %+v", got, res)
			}
		})
	}
}

func TestUTF8DecoderResync(t *testing.T) {
	t.Run("continuation after clean terminal underflows", func(t *testing.T) {
		dec := NewUTF8Decoder(true)
		dec.Feed(0x41)
		res := dec.Feed(0x80)
		if res.Status != Underflow {
			t.Fatalf("status = %v, want underflow", res.Status)
		}
		// The resolved value survives the orphan run.
		if res.Value != 0x41 {
			t.Errorf("value = %#x, want 0x41", res.Value)
		}
	})

	t.Run("orphan run fails on a lead byte", func(t *testing.T) {
		dec := NewUTF8Decoder(true)
		dec.Feed(0x41)
		dec.Feed(0x80)
		res := dec.Feed(0xE2)
		if res.Status != Invalid|Error {
			t.Errorf("status = %v, want Invalid|Error", res.Status)
		}
	})

	t.Run("orphan run caps at six continuations", func(t *testing.T) {
		dec := NewUTF8Decoder(true)
		dec.Feed(0x41)
		var res Result
		for i := 0; i < 6; i++ {
			res = dec.Feed(0x80)
			if res.Status != Underflow {
				t.Fatalf("continuation %d: status = %v, want underflow", i+1, res.Status)
			}
		}
		res = dec.Feed(0x80)
		if res.Status != Invalid|Error {
			t.Errorf("seventh continuation: status = %v, want Invalid|Error", res.Status)
		}
	})

	t.Run("non-continuation after clean terminal needs reset", func(t *testing.T) {
		dec := NewUTF8Decoder(true)
		dec.Feed(0x41)
		res := dec.Feed(0x42)
		if res.Status != Ready|Retry|Error {
			t.Fatalf("status = %v, want Ready|Retry|Error", res.Status)
		}
		if res.Value != 0x41 {
			t.Errorf("value = %#x, want 0x41 (latched)", res.Value)
		}
		// Stuck until reset.
		if res = dec.Feed(0x43); res.Status != Ready|Retry|Error {
			t.Errorf("second feed: status = %v, want Ready|Retry|Error", res.Status)
		}
		dec.Reset()
		if res = dec.Feed(0x42); res.Status != Ready || res.Value != 0x42 {
			t.Errorf("after reset: %+v, want Ready 0x42", res)
		}
	})

	t.Run("any byte after error terminal needs reset", func(t *testing.T) {
		dec := NewUTF8Decoder(true)
		dec.Feed(0xFE)
		res := dec.Feed(0x41)
		if res.Status != Invalid|Retry|Error {
			t.Fatalf("status = %v, want Invalid|Retry|Error", res.Status)
		}
		if res = dec.Feed(0x80); res.Status != Invalid|Retry|Error {
			t.Errorf("continuation feed: status = %v, want Invalid|Retry|Error", res.Status)
		}
		dec.Reset()
		if res = dec.Feed(0x41); !res.Status.Ok() {
			t.Errorf("after reset: status = %v, want ready", res.Status)
		}
	})
}
