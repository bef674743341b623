package stream

import (
	"encoding/json"

	"github.com/b4den/hsmattest/emit"
	"github.com/b4den/hsmattest/internal/bigend"
)

const defaultSignatureLen = 256

// Machine is the attestation blob decoder. The zero value is not usable;
// construct one with New.
type Machine struct {
	state, prevState State
	returnStack       []State

	counter uint32
	beAccum bigend.Accum
	cursor  int64
	stack   []byte

	totalSize       uint32
	bufSize         uint32
	attrOffset      uint32
	firstKeyOffset  uint32
	secondKeyOffset uint32
	attrCount       uint32
	attrsProcessed  uint32
	tlvType         uint32
	tlvLen          uint32

	primaryAttrCount        uint32
	secondaryAttrCount      uint32
	primaryAttrsProcessed   uint32
	secondaryAttrsProcessed uint32

	mode    Mode
	keyMode emit.KeyMode

	signatureLen int
	sink         emit.Sink

	primaryListStarted bool

	// Diagnostics accumulates non-fatal observations (decode fallbacks,
	// the firstkey_offset cross-check) for the caller to log. The core
	// itself never logs.
	Diagnostics []string
}

// New constructs a Machine with the given signature length. A
// non-positive signatureLen is replaced with the default of 256 bytes,
// matching common RSA-2048 signatures.
func New(signatureLen int) *Machine {
	if signatureLen <= 0 {
		signatureLen = defaultSignatureLen
	}
	return &Machine{
		state:        StateInitial,
		prevState:    StateInitial,
		signatureLen: signatureLen,
	}
}

// Cursor returns the number of bytes fed to the machine so far.
func (m *Machine) Cursor() int64 { return m.cursor }

// Mode returns Symmetric or Asymmetric, decided once secondkey_offset has
// been read.
func (m *Machine) Mode() Mode { return m.mode }

// AttrsProcessed returns the number of TLV records fully decoded so far
// across all attribute lists.
func (m *Machine) AttrsProcessed() uint32 { return m.attrsProcessed }

// AttrCount returns attr_count as declared across both the primary and
// secondary key's attribute lists (0 in symmetric mode for the
// secondary list, and 0 overall before attr_len has been read). A
// caller comparing this against AttrsProcessed can detect a structural
// mismatch: fewer records decoded than the blob declared, which usually
// means the input was truncated mid-list.
func (m *Machine) AttrCount() uint32 { return m.primaryAttrCount + m.secondaryAttrCount }

// PrimaryAttrCount returns attr_count as declared for the primary key's
// attribute list.
func (m *Machine) PrimaryAttrCount() uint32 { return m.primaryAttrCount }

// SecondaryAttrCount returns attr_count as declared for the secondary
// key's attribute list (always 0 in symmetric mode).
func (m *Machine) SecondaryAttrCount() uint32 { return m.secondaryAttrCount }

// PrimaryAttrsProcessed returns the number of TLV records fully decoded
// from the primary key's attribute list.
func (m *Machine) PrimaryAttrsProcessed() uint32 { return m.primaryAttrsProcessed }

// SecondaryAttrsProcessed returns the number of TLV records fully
// decoded from the secondary key's attribute list.
func (m *Machine) SecondaryAttrsProcessed() uint32 { return m.secondaryAttrsProcessed }

// AttrOffset returns the computed attribute region offset, or 0 before it
// has been determined.
func (m *Machine) AttrOffset() uint32 { return m.attrOffset }

// Sections returns the emitter's accumulated sections.
func (m *Machine) Sections() []emit.Section { return m.sink.Sections() }

// Output renders the emitter's accumulated sections as the attestation
// record's JSON form: a top-level array of {"mode": ..., "pairs": {...}}
// objects, in insertion order. It is the Go equivalent of the driver API's
// into_output, narrowed to its JSON-producing collaborator.
func (m *Machine) Output() ([]byte, error) {
	return json.Marshal(&m.sink)
}

// Feed delivers p to the machine one byte at a time, driving it forward.
// Feed is reentrant at byte granularity: calling Feed repeatedly with
// chunks of p produces the same end state as calling it once with all of
// p.
func (m *Machine) Feed(p []byte) {
	for _, b := range p {
		m.step(b)
	}
}

// step drives the machine by exactly one byte.
func (m *Machine) step(b byte) {
	m.cursor++

	state := m.state
	if state == StateInitial {
		state = StateSkip8
		m.counter = 0
		m.beAccum.Reset()
	}

	next := m.dispatch(state, b)

	if next != state {
		m.counter = 0
		m.beAccum.Reset()
	}
	m.prevState = state
	m.state = next
}

// dispatch runs the handler for state against b and returns the resulting
// state. There is no per-byte-value routing in the baseline grammar: every
// handler decides its own next state from its own counters.
func (m *Machine) dispatch(state State, b byte) State {
	switch state {
	case StateSkip8:
		return m.handleSkip8(b)
	case StateTotalSize4:
		return m.handleTotalSize4(b)
	case StateBufSize4:
		return m.handleBufSize4(b)
	case StateSkipToOffset:
		return m.handleSkipToOffset(b)
	case StateSkipU16_2:
		return m.handleSkipU16_2(b)
	case StateOffsetPubkey16:
		return m.handleOffsetPubkey16(b)
	case StateOffsetPrivkey16:
		return m.handleOffsetPrivkey16(b)
	case StateSkip4:
		return m.handleSkip4(b)
	case StateAttrLen:
		return m.handleAttrLen(b)
	case StateSkipAttr4:
		return m.handleSkipAttr4(b)
	case StateTLVType:
		return m.handleTLVType(b)
	case StateTLVLen:
		return m.handleTLVLen(b)
	case StateTLVValue:
		return m.handleTLVValue(b)
	case StateSecondaryKey:
		return m.handleSecondaryKey(b)
	case StateSignature:
		return m.handleSignature(b)
	default:
		return state
	}
}

func (m *Machine) push(s State) { m.returnStack = append(m.returnStack, s) }

func (m *Machine) pop() (State, bool) {
	if len(m.returnStack) == 0 {
		return StateInitial, false
	}
	top := m.returnStack[len(m.returnStack)-1]
	m.returnStack = m.returnStack[:len(m.returnStack)-1]
	return top, true
}

func (m *Machine) diagnostic(msg string) {
	m.Diagnostics = append(m.Diagnostics, msg)
}
