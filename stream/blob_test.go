package stream

import "bytes"

func be32(v uint32) []byte {
	return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
}

func be16(v uint16) []byte {
	return []byte{byte(v >> 8), byte(v)}
}

func tlvRecord(tag uint32, value []byte) []byte {
	out := append([]byte{}, be32(tag)...)
	out = append(out, be32(uint32(len(value)))...)
	out = append(out, value...)
	return out
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// blobParams describes the fields needed to build a synthetic attestation
// blob exercising the machine end to end.
type blobParams struct {
	totalSize, bufSize uint32
	secondKeyOffset    uint16
	primaryAttrs       [][]byte // pre-built TLV records
	secondaryAttrs     [][]byte
	signature          []byte
	signatureLen       int
}

// buildBlob assembles a blob byte sequence from params. It accounts for the
// SkipToOffset state's one-byte "trigger" consumption when attr_offset is
// clamped to 0: the byte immediately following buf_size satisfies the
// cursor >= attr_offset test on its own and is spent advancing to
// SkipU16_2, so the 3-byte skip that follows starts on the byte after it.
func buildBlob(p blobParams) []byte {
	preamble := bytes.Repeat([]byte{0xAA}, 8)
	header := concat(preamble, be32(p.totalSize), be32(p.bufSize))

	trigger := []byte{0x00}
	skip3 := []byte{0x00, 0x00, 0x00}
	pubOffset := be16(0x0000)
	privOffset := be16(p.secondKeyOffset)
	skip4a := []byte{0, 0, 0, 0}

	var primary []byte
	primary = append(primary, be32(uint32(len(p.primaryAttrs)))...)
	primary = append(primary, []byte{0, 0, 0, 0}...) // skip4 before TLVs
	for _, rec := range p.primaryAttrs {
		primary = append(primary, rec...)
	}

	blob := concat(header, trigger, skip3, pubOffset, privOffset, skip4a, primary)

	if p.secondKeyOffset != 0 {
		secSkip4 := []byte{0, 0, 0, 0}
		var secondary []byte
		secondary = append(secondary, be32(uint32(len(p.secondaryAttrs)))...)
		secondary = append(secondary, []byte{0, 0, 0, 0}...)
		for _, rec := range p.secondaryAttrs {
			secondary = append(secondary, rec...)
		}
		blob = concat(blob, secSkip4, secondary)
	}

	blob = concat(blob, p.signature)
	return blob
}
