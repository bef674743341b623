package stream

import (
	"fmt"

	"github.com/b4den/hsmattest/attrtlv"
	"github.com/b4den/hsmattest/emit"
)

func (m *Machine) handleSkip8(b byte) State {
	m.counter++
	if m.counter == 8 {
		return StateTotalSize4
	}
	return StateSkip8
}

func (m *Machine) handleTotalSize4(b byte) State {
	m.counter++
	m.beAccum.Shift(b)
	if m.counter == 4 {
		m.totalSize = m.beAccum.Value()
		return StateBufSize4
	}
	return StateTotalSize4
}

func (m *Machine) handleBufSize4(b byte) State {
	m.counter++
	m.beAccum.Shift(b)
	if m.counter == 4 {
		m.bufSize = m.beAccum.Value()
		return StateSkipToOffset
	}
	return StateBufSize4
}

// handleSkipToOffset computes attr_offset on first use, clamping an
// underflowing total_size - buf_size - signature_len to 0, and advances
// once cursor has reached (or, for a clamped offset, already passed) that
// target. Using >= instead of strict equality keeps a clamped-to-0 offset
// from stalling the machine forever.
func (m *Machine) handleSkipToOffset(b byte) State {
	if m.attrOffset == 0 {
		total := int64(m.totalSize) - int64(m.bufSize) - int64(m.signatureLen)
		if total < 0 {
			total = 0
		}
		m.attrOffset = uint32(total)
	}
	if m.cursor >= int64(m.attrOffset) {
		return StateSkipU16_2
	}
	return StateSkipToOffset
}

func (m *Machine) handleSkipU16_2(b byte) State {
	m.counter++
	if m.counter == 3 {
		return StateOffsetPubkey16
	}
	return StateSkipU16_2
}

func (m *Machine) handleOffsetPubkey16(b byte) State {
	m.counter++
	m.beAccum.Shift(b)
	if m.counter == 2 {
		m.firstKeyOffset = m.beAccum.Value()
		return StateOffsetPrivkey16
	}
	return StateOffsetPubkey16
}

func (m *Machine) handleOffsetPrivkey16(b byte) State {
	m.counter++
	m.beAccum.Shift(b)
	if m.counter == 2 {
		m.secondKeyOffset = m.beAccum.Value()
		if m.secondKeyOffset == 0 {
			m.mode = ModeSymmetric
			m.push(StateSignature)
		} else {
			m.mode = ModeAsymmetric
			m.push(StateSignature)
			m.push(StateSecondaryKey)
		}
		return StateSkip4
	}
	return StateOffsetPrivkey16
}

func (m *Machine) handleSkip4(b byte) State {
	m.counter++
	if m.counter == 4 {
		return StateAttrLen
	}
	return StateSkip4
}

func (m *Machine) handleAttrLen(b byte) State {
	m.counter++
	m.beAccum.Shift(b)
	if m.counter == 4 {
		m.attrCount = m.beAccum.Value()
		if m.keyMode == emit.KeyModePrimary {
			m.primaryAttrCount = m.attrCount
		} else {
			m.secondaryAttrCount = m.attrCount
		}
		return StateSkipAttr4
	}
	return StateAttrLen
}

func (m *Machine) handleSkipAttr4(b byte) State {
	m.counter++
	if m.counter == 4 {
		if m.attrCount > 0 {
			for i := uint32(0); i < m.attrCount-1; i++ {
				m.push(StateTLVType)
			}
		}
		if m.keyMode == emit.KeyModePrimary && !m.primaryListStarted {
			m.primaryListStarted = true
			if int64(m.firstKeyOffset) != m.cursor {
				m.diagnostic(fmt.Sprintf(
					"firstkey_offset %d does not match cursor %d at start of primary attribute list",
					m.firstKeyOffset, m.cursor))
			}
		}
		return StateTLVType
	}
	return StateSkipAttr4
}

func (m *Machine) handleTLVType(b byte) State {
	m.counter++
	m.beAccum.Shift(b)
	if m.counter == 4 {
		m.tlvType = m.beAccum.Value()
		return StateTLVLen
	}
	return StateTLVType
}

func (m *Machine) handleTLVLen(b byte) State {
	m.counter++
	m.beAccum.Shift(b)
	if m.counter == 4 {
		m.tlvLen = m.beAccum.Value()
		m.stack = m.stack[:0]
		return StateTLVValue
	}
	return StateTLVLen
}

// handleTLVValue accumulates tlv_len bytes, then decodes and emits the
// record and resumes whatever state the return stack schedules next. A
// declared length of 0 can never be satisfied by this counter (it only
// ever observes counts >= 1), matching the reference decoder's behavior:
// a zero-length TLV stalls the list rather than emitting immediately.
func (m *Machine) handleTLVValue(b byte) State {
	m.counter++
	m.stack = append(m.stack, b)
	if m.counter == m.tlvLen {
		requestedKind, known := attrtlv.KindFor(m.tlvType)
		if !known {
			requestedKind = attrtlv.KindBytes
		}
		value := attrtlv.Decode(requestedKind, m.stack)
		if value.Kind != requestedKind {
			m.diagnostic(fmt.Sprintf(
				"tag %#08x: decoder for %v fell back to %v",
				m.tlvType, requestedKind, value.Kind))
		}
		m.sink.Push(m.keyMode, attrtlv.NameFor(m.tlvType), value.Text)
		m.attrsProcessed++
		if m.keyMode == emit.KeyModePrimary {
			m.primaryAttrsProcessed++
		} else {
			m.secondaryAttrsProcessed++
		}
		m.tlvType = 0
		m.tlvLen = 0
		if next, ok := m.pop(); ok {
			return next
		}
		return StateTLVValue
	}
	return StateTLVValue
}

func (m *Machine) handleSecondaryKey(b byte) State {
	m.counter++
	if m.counter == 4 {
		m.attrCount = 0
		m.keyMode = emit.KeyModeSecondary
		return StateAttrLen
	}
	return StateSecondaryKey
}

func (m *Machine) handleSignature(b byte) State {
	m.counter++
	m.stack = append(m.stack, b)
	if m.counter == uint32(m.signatureLen) {
		value := attrtlv.Decode(attrtlv.KindByteStr, m.stack)
		m.sink.Push(m.keyMode, attrtlv.NameFor(0xFFFFFF01), value.Text)
		m.stack = m.stack[:0]
		return StateSignature
	}
	return StateSignature
}
