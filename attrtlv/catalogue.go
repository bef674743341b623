package attrtlv

// catalogue maps a 32-bit attribute type tag to its semantic kind. Tags
// absent from this table decode as KindBytes, per the "unknown tag"
// fallback.
var catalogue = map[uint32]Kind{
	0x0000: KindClassKey, // OBJ_ATTR_CLASS
	0x0001: KindBytes,    // OBJ_ATTR_TOKEN
	0x0002: KindBool,     // OBJ_ATTR_PRIVATE
	0x0003: KindByteStr,  // OBJ_ATTR_LABEL
	0x0086: KindBool,     // OBJ_ATTR_TRUSTED
	0x0100: KindBytes,    // OBJ_ATTR_KEY_TYPE
	0x0102: KindHexStr,   // OBJ_ATTR_ID
	0x0103: KindBool,     // OBJ_ATTR_SENSITIVE
	0x0104: KindBool,     // OBJ_ATTR_ENCRYPT
	0x0105: KindBool,     // OBJ_ATTR_DECRYPT
	0x0106: KindBool,     // OBJ_ATTR_WRAP
	0x0107: KindBool,     // OBJ_ATTR_UNWRAP
	0x0108: KindBool,     // OBJ_ATTR_SIGN
	0x0109: KindBool,     // OBJ_ATTR_SIGN_RECOVER
	0x010A: KindBool,     // OBJ_ATTR_VERIFY
	0x010B: KindBool,     // OBJ_ATTR_VERIFY_RECOVER
	0x010C: KindBool,     // OBJ_ATTR_DERIVE
	0x0120: KindBytes,    // OBJ_ATTR_MODULUS
	0x0121: KindInt,      // OBJ_ATTR_MODULUS_BITS
	0x0122: KindInt,      // OBJ_ATTR_PUBLIC_EXPONENT
	0x0161: KindInt,      // OBJ_ATTR_VALUE_LEN
	0x0162: KindBool,     // OBJ_ATTR_EXTRACTABLE
	0x0163: KindBool,     // OBJ_ATTR_LOCAL
	0x0164: KindBool,     // OBJ_ATTR_NEVER_EXTRACTABLE
	0x0165: KindBool,     // OBJ_ATTR_ALWAYS_SENSITIVE
	0x0173: KindBytes,    // OBJ_ATTR_KCV
	0x0210: KindBool,     // OBJ_ATTR_WRAP_WITH_TRUSTED
	0x1000: KindBytes,    // OBJ_EXT_ATTR1
	0x1003: KindBytes,    // OBJ_ATTR_EKCV
	0x80000000: KindBytes, // OBJ_UNKNOWN
	0x80000002: KindBool,  // OBJ_ATTR_SPLITTABLE
	0x80000003: KindBool,  // OBJ_ATTR_IS_SPLIT
	0xFFFFFF01: KindByteStr, // SIGNATURE
}

func init() {
	// Per-mechanism capability flags 0x80000174..0x80000180, all Bool.
	for tag := uint32(0x80000174); tag <= 0x80000180; tag++ {
		catalogue[tag] = KindBool
	}
}

// KindFor returns the semantic kind registered for tag, and whether tag was
// found in the catalogue. Unknown tags should decode as KindBytes.
func KindFor(tag uint32) (Kind, bool) {
	k, ok := catalogue[tag]
	return k, ok
}
