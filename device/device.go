// Package device is a software port of the engine's register-level surface:
// fixed-capacity byte and unit buffers with end-of-data flags, a 32-bit
// codepoint register serialized in the configured byte order, direct
// transcoding channels, and a 6-bit status/property output field. It
// reproduces the logical contract of the strobe-driven register protocol
// (capacities, end-of-data semantics, the read-position vs full reset
// distinction, field bit meanings) without the per-strobe timing.
package device

import (
	"go.uber.org/zap"

	"github.com/runewire/runewire/codec"
)

// Buffer capacities of the register surface. The byte buffer holds the
// longest supported UTF-8 form.
const (
	ByteBufferCap = 6
	UnitBufferCap = 2
	RegisterBytes = 4
)

// Report selects what the 6-bit output field exposes.
type Report uint8

const (
	ReportStatus Report = iota
	ReportProperties
)

// Config configures a Port.
type Config struct {
	RangeCheck bool
	Order      codec.ByteOrder
	Report     Report
}

// Port is one logical channel of the register surface. The buffers are
// shared between the write and read sides: bytes written for decoding are
// read back from the same buffer that encoder output latches into.
type Port struct {
	cfg Config

	dec8  *codec.UTF8Decoder
	dec16 *codec.UTF16Decoder
	res   codec.Result

	bytes  [ByteBufferCap]byte
	nbytes int
	bpos   int

	units  [UnitBufferCap]uint16
	nunits int
	upos   int

	reg    [RegisterBytes]byte
	nreg   int
	regpos int
}

// New returns a Port with cleared buffers.
func New(cfg Config) *Port {
	return &Port{
		cfg:   cfg,
		dec8:  codec.NewUTF8Decoder(cfg.RangeCheck),
		dec16: codec.NewUTF16Decoder(),
	}
}

// Result returns the most recently latched engine result.
func (p *Port) Result() codec.Result {
	return p.res
}

// Output returns the 6-bit status or property field, per the report select.
// It always reflects the most recent decode/encode outcome.
func (p *Port) Output() uint8 {
	if p.cfg.Report == ReportProperties {
		return uint8(p.res.Props) & 0x3F
	}
	return uint8(p.res.Status) & 0x3F
}

// SetReport switches the output field between status and property bits.
func (p *Port) SetReport(r Report) {
	p.cfg.Report = r
}

// WriteByte stores one byte in the byte buffer and feeds the UTF-8 decode
// channel. The returned end-of-data flag is asserted once the buffer is
// full; a write past capacity is discarded.
func (p *Port) WriteByte(b byte) (eod bool) {
	if p.nbytes >= ByteBufferCap {
		return true
	}
	p.bytes[p.nbytes] = b
	p.nbytes++
	p.res = p.dec8.Feed(b)
	if p.res.Status&codec.Ready != 0 {
		// Latch the UTF-8 to UTF-16 transcode channel.
		units, enc := codec.AppendUTF16(p.units[:0], p.res.Value)
		p.nunits, p.upos = 0, 0
		if enc.Status&codec.Error == 0 {
			p.nunits = len(units)
		}
		logger.Debug("byte channel latched",
			zap.Uint32("value", uint32(p.res.Value)),
			zap.Stringer("status", p.res.Status))
	}
	return p.nbytes >= ByteBufferCap
}

// ReadByte reads the next byte from the byte buffer. The end-of-data flag
// accompanies the last valid byte and every read past it.
func (p *Port) ReadByte() (b byte, eod bool) {
	if p.bpos >= p.nbytes {
		return 0, true
	}
	b = p.bytes[p.bpos]
	p.bpos++
	return b, p.bpos >= p.nbytes
}

// WriteUnit stores one UTF-16 unit in the unit buffer and feeds the UTF-16
// decode channel. End-of-data is asserted once both slots are used.
func (p *Port) WriteUnit(u uint16) (eod bool) {
	if p.nunits >= UnitBufferCap {
		return true
	}
	p.units[p.nunits] = u
	p.nunits++
	res, consumed := p.dec16.Feed(u)
	p.res = res
	if !consumed {
		// The offending unit did not extend the pending sequence; drop it
		// from the buffer so a re-read reflects only consumed input.
		p.nunits--
	}
	if res.Status&codec.Ready != 0 {
		// Latch the UTF-16 to UTF-8 transcode channel.
		b, enc := codec.AppendUTF8(p.bytes[:0], res.Value, p.cfg.RangeCheck)
		p.nbytes, p.bpos = 0, 0
		if enc.Status&codec.Error == 0 {
			p.nbytes = len(b)
		}
		logger.Debug("unit channel latched",
			zap.Uint32("value", uint32(res.Value)),
			zap.Stringer("status", res.Status))
	}
	return p.nunits >= UnitBufferCap
}

// ReadUnit reads the next unit from the unit buffer, with the same
// end-of-data semantics as ReadByte.
func (p *Port) ReadUnit() (u uint16, eod bool) {
	if p.upos >= p.nunits {
		return 0, true
	}
	u = p.units[p.upos]
	p.upos++
	return u, p.upos >= p.nunits
}

// WriteRegisterByte accumulates one byte of the 32-bit codepoint register in
// the configured byte order. The fourth byte completes the register, runs
// both encoders and latches their output into the byte and unit buffers;
// end-of-data is asserted from the fourth byte onward.
func (p *Port) WriteRegisterByte(b byte) (eod bool) {
	if p.nreg >= RegisterBytes {
		return true
	}
	p.reg[p.nreg] = b
	p.nreg++
	if p.nreg < RegisterBytes {
		return false
	}

	cp := p.registerValue()
	bytes, enc := codec.AppendUTF8(p.bytes[:0], cp, p.cfg.RangeCheck)
	p.res = enc
	p.nbytes, p.bpos = len(bytes), 0
	units, enc16 := codec.AppendUTF16(p.units[:0], cp)
	p.nunits, p.upos = 0, 0
	if enc16.Status&codec.Error == 0 {
		p.nunits = len(units)
	}
	p.regpos = 0
	logger.Debug("register latched",
		zap.Uint32("value", uint32(cp)),
		zap.Stringer("status", p.res.Status))
	return true
}

func (p *Port) registerValue() codec.Codepoint {
	var v codec.Codepoint
	for i, b := range p.reg {
		if p.cfg.Order == codec.LittleEndian {
			v |= codec.Codepoint(b) << (8 * uint(i))
		} else {
			v = v<<8 | codec.Codepoint(b)
		}
	}
	return v
}

// ReadRegisterByte serializes the latched result value 4 bytes at a time in
// the configured byte order; end-of-data is asserted from the fourth byte
// onward.
func (p *Port) ReadRegisterByte() (b byte, eod bool) {
	if p.regpos >= RegisterBytes {
		return 0, true
	}
	shift := 8 * uint(RegisterBytes-1-p.regpos)
	if p.cfg.Order == codec.LittleEndian {
		shift = 8 * uint(p.regpos)
	}
	p.regpos++
	return byte(uint32(p.res.Value) >> shift), p.regpos >= RegisterBytes
}

// ResetRead rewinds only the output cursors of the currently latched
// result, so it can be re-read from the start without recomputation.
func (p *Port) ResetRead() {
	p.bpos, p.upos, p.regpos = 0, 0, 0
}

// Reset clears the write-side accumulators and the latched result, and
// begins a fresh sequence. The configuration survives.
func (p *Port) Reset() {
	cfg := p.cfg
	*p = Port{cfg: cfg, dec8: p.dec8, dec16: p.dec16}
	p.dec8.Reset()
	p.dec16.Reset()
	logger.Debug("port reset")
}
