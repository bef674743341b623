// Package stream implements the byte-oriented pushdown state machine that
// decodes an HSM attestation blob without buffering the whole input.
//
// Machine advances one byte at a time through Feed, and is reentrant at
// byte granularity: a caller delivering one byte per call and a caller
// delivering the whole blob in one call reach the same end state.
package stream

// State is a member of the machine's finite state alphabet.
type State int

const (
	StateInitial State = iota
	StateSkip8
	StateTotalSize4
	StateBufSize4
	StateSkipToOffset
	StateSkipU16_2
	StateOffsetPubkey16
	StateOffsetPrivkey16
	StateSkip4
	StateAttrLen
	StateSkipAttr4
	StateTLVType
	StateTLVLen
	StateTLVValue
	StateSecondaryKey
	StateSignature
)
