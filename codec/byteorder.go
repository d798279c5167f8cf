package codec

// ByteOrder selects how raw codepoints and UTF-16 units serialize to bytes.
// It affects only serialization order, never the transcoding logic itself.
type ByteOrder uint8

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

func (o ByteOrder) String() string {
	if o == LittleEndian {
		return "little"
	}
	return "big"
}
