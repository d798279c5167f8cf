package codec

import "testing"

func TestProperties(t *testing.T) {
	tests := []struct {
		name string
		cp   Codepoint
		want Properties
	}{
		{"nul", 0x0000, Control},
		{"tab", 0x0009, Control},
		{"unit separator", 0x001F, Control},
		{"space", 0x0020, Normal},
		{"latin capital a", 0x0041, Normal},
		{"tilde", 0x007E, Normal},
		{"del", 0x007F, Control},
		{"c1 control", 0x0080, Control},
		{"last c1 control", 0x009F, Control},
		{"first latin-1 letter", 0x00A0, Normal},
		{"arabic noncharacter low edge", 0xFDCF, Normal},
		{"first arabic noncharacter", 0xFDD0, Noncharacter},
		{"last arabic noncharacter", 0xFDEF, Noncharacter},
		{"arabic noncharacter high edge", 0xFDF0, Normal},
		{"replacement character", 0xFFFD, Normal},
		{"bmp noncharacter fffe", 0xFFFE, Noncharacter},
		{"bmp noncharacter ffff", 0xFFFF, Noncharacter},
		{"first high surrogate", 0xD800, Surrogate | Supplementary},
		{"last high surrogate", 0xDBFF, Surrogate | Supplementary},
		{"first low surrogate", 0xDC00, Surrogate},
		{"last low surrogate", 0xDFFF, Surrogate},
		{"first bmp private use", 0xE000, Private},
		{"last bmp private use", 0xF8FF, Private},
		{"cjk compatibility", 0xF900, Normal},
		{"first supplementary", 0x10000, Normal | Supplementary},
		{"emoji", 0x1F600, Normal | Supplementary},
		{"plane 1 noncharacter", 0x1FFFE, Noncharacter | Supplementary},
		{"plane 15 private", 0xF0000, Private | Supplementary},
		{"plane 15 noncharacter wins", 0xFFFFE, Noncharacter | Supplementary},
		{"last scalar", 0x10FFFD, Private | Supplementary},
		{"last plane noncharacter", 0x10FFFF, Noncharacter | Supplementary},
		{"first non-unicode", 0x110000, Private | Supplementary},
		{"legacy plane private", 0x7FFF0000, Private | Supplementary},
		{"legacy plane noncharacter", 0x7FFFFFFF, Noncharacter | Supplementary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cp.Properties(); got != tt.want {
				t.Errorf("Properties(%#x) = %v, want %v", uint32(tt.cp), got, tt.want)
			}
		})
	}
}

func TestUTF8Len(t *testing.T) {
	tests := []struct {
		cp   Codepoint
		want int
	}{
		{0x00, 1},
		{0x7F, 1},
		{0x80, 2},
		{0x7FF, 2},
		{0x800, 3},
		{0xFFFF, 3},
		{0x10000, 4},
		{0x1FFFFF, 4},
		{0x200000, 5},
		{0x3FFFFFF, 5},
		{0x4000000, 6},
		{0x7FFFFFFF, 6},
		{0x80000000, 0},
		{0xFFFFFFFF, 0},
	}
	for _, tt := range tests {
		if got := tt.cp.UTF8Len(); got != tt.want {
			t.Errorf("UTF8Len(%#x) = %d, want %d", uint32(tt.cp), got, tt.want)
		}
	}
}

func TestUTF16Len(t *testing.T) {
	tests := []struct {
		cp   Codepoint
		want int
	}{
		{0x00, 1},
		{0xFFFF, 1},
		{0x10000, 2},
		{0x10FFFF, 2},
		{0x110000, 0},
	}
	for _, tt := range tests {
		if got := tt.cp.UTF16Len(); got != tt.want {
			t.Errorf("UTF16Len(%#x) = %d, want %d", uint32(tt.cp), got, tt.want)
		}
	}
}

func TestSurrogatePredicates(t *testing.T) {
	tests := []struct {
		cp        Codepoint
		high, low bool
	}{
		{0xD7FF, false, false},
		{0xD800, true, false},
		{0xDBFF, true, false},
		{0xDC00, false, true},
		{0xDFFF, false, true},
		{0xE000, false, false},
	}
	for _, tt := range tests {
		if got := tt.cp.IsHighSurrogate(); got != tt.high {
			t.Errorf("IsHighSurrogate(%#x) = %v, want %v", uint32(tt.cp), got, tt.high)
		}
		if got := tt.cp.IsLowSurrogate(); got != tt.low {
			t.Errorf("IsLowSurrogate(%#x) = %v, want %v", uint32(tt.cp), got, tt.low)
		}
	}
}
