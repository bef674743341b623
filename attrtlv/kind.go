// Package attrtlv implements the attestation blob's TLV attribute catalogue:
// the mapping from a 32-bit attribute tag to a semantic value kind, and the
// per-kind decoders that turn a raw byte run into a printable value.
package attrtlv

// Kind is the semantic category a TLV tag decodes as.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindBytes
	KindByteStr
	KindHexStr
	KindClassKey
	KindRawBytes
)
