package attrtlv

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/b4den/hsmattest/internal/bigend"
)

// Value is a decoded TLV attribute value: its resolved kind (which may
// differ from the requested kind when a decoder falls back to RawBytes)
// and its canonical printable form.
type Value struct {
	Kind Kind
	Text string
}

// String returns the canonical printable form of v.
func (v Value) String() string {
	return v.Text
}

// Decode turns raw bytes declared under kind into a printable Value,
// falling back to RawBytes whenever the requested kind's decoder cannot
// make sense of raw.
func Decode(kind Kind, raw []byte) Value {
	switch kind {
	case KindBool:
		return decodeBool(raw)
	case KindInt:
		return decodeInt(raw)
	case KindBytes:
		return decodeBytes(raw)
	case KindByteStr:
		return decodeByteStr(raw)
	case KindHexStr:
		return decodeHexStr(raw)
	case KindClassKey:
		return decodeClassKey(raw)
	default:
		return decodeRawBytes(raw)
	}
}

func decodeBool(raw []byte) Value {
	if len(raw) == 0 {
		return decodeRawBytes(raw)
	}
	if raw[0] != 0 {
		return Value{Kind: KindBool, Text: "true"}
	}
	return Value{Kind: KindBool, Text: "false"}
}

func decodeInt(raw []byte) Value {
	return Value{Kind: KindInt, Text: fmt.Sprintf("%d", bigend.Uint32(raw))}
}

func decodeBytes(raw []byte) Value {
	return Value{Kind: KindBytes, Text: hex.EncodeToString(raw)}
}

func decodeByteStr(raw []byte) Value {
	end := len(raw)
	for i, b := range raw {
		if b == 0x00 {
			end = i
			break
		}
	}
	s := raw[:end]
	if !utf8.Valid(s) {
		return decodeRawBytes(raw)
	}
	return Value{Kind: KindByteStr, Text: string(s)}
}

func decodeHexStr(raw []byte) Value {
	if !utf8.Valid(raw) {
		return decodeRawBytes(raw)
	}
	return Value{Kind: KindHexStr, Text: string(raw)}
}

func decodeClassKey(raw []byte) Value {
	if len(raw) == 0 {
		return decodeRawBytes(raw)
	}
	switch raw[0] {
	case 2:
		return Value{Kind: KindClassKey, Text: "public-key"}
	case 3:
		return Value{Kind: KindClassKey, Text: "private-key"}
	case 4:
		return Value{Kind: KindClassKey, Text: "secret-key (symmetric)"}
	default:
		return decodeRawBytes(raw)
	}
}

func decodeRawBytes(raw []byte) Value {
	return Value{Kind: KindRawBytes, Text: fmt.Sprint(toInts(raw))}
}

func toInts(raw []byte) []int {
	out := make([]int, len(raw))
	for i, b := range raw {
		out[i] = int(b)
	}
	return out
}

// DecodeTag resolves tag's catalogue kind (falling back to KindBytes for
// unknown tags) and decodes raw under it.
func DecodeTag(tag uint32, raw []byte) Value {
	kind, ok := KindFor(tag)
	if !ok {
		kind = KindBytes
	}
	return Decode(kind, raw)
}
