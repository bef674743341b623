package attrtlv

import "fmt"

// names maps a catalogued tag to its canonical attribute name, used as the
// emitted pair's key.
var names = map[uint32]string{
	0x0000:     "OBJ_ATTR_CLASS",
	0x0001:     "OBJ_ATTR_TOKEN",
	0x0002:     "OBJ_ATTR_PRIVATE",
	0x0003:     "OBJ_ATTR_LABEL",
	0x0086:     "OBJ_ATTR_TRUSTED",
	0x0100:     "OBJ_ATTR_KEY_TYPE",
	0x0102:     "OBJ_ATTR_ID",
	0x0103:     "OBJ_ATTR_SENSITIVE",
	0x0104:     "OBJ_ATTR_ENCRYPT",
	0x0105:     "OBJ_ATTR_DECRYPT",
	0x0106:     "OBJ_ATTR_WRAP",
	0x0107:     "OBJ_ATTR_UNWRAP",
	0x0108:     "OBJ_ATTR_SIGN",
	0x0109:     "OBJ_ATTR_SIGN_RECOVER",
	0x010A:     "OBJ_ATTR_VERIFY",
	0x010B:     "OBJ_ATTR_VERIFY_RECOVER",
	0x010C:     "OBJ_ATTR_DERIVE",
	0x0120:     "OBJ_ATTR_MODULUS",
	0x0121:     "OBJ_ATTR_MODULUS_BITS",
	0x0122:     "OBJ_ATTR_PUBLIC_EXPONENT",
	0x0161:     "OBJ_ATTR_VALUE_LEN",
	0x0162:     "OBJ_ATTR_EXTRACTABLE",
	0x0163:     "OBJ_ATTR_LOCAL",
	0x0164:     "OBJ_ATTR_NEVER_EXTRACTABLE",
	0x0165:     "OBJ_ATTR_ALWAYS_SENSITIVE",
	0x0173:     "OBJ_ATTR_KCV",
	0x0210:     "OBJ_ATTR_WRAP_WITH_TRUSTED",
	0x1000:     "OBJ_EXT_ATTR1",
	0x1003:     "OBJ_ATTR_EKCV",
	0x80000000: "OBJ_UNKNOWN",
	0x80000002: "OBJ_ATTR_SPLITTABLE",
	0x80000003: "OBJ_ATTR_IS_SPLIT",
	0xFFFFFF01: "SIGNATURE",
}

func init() {
	for tag := uint32(0x80000174); tag <= 0x80000180; tag++ {
		names[tag] = fmt.Sprintf("OBJ_ATTR_MECHANISM_%#x", tag)
	}
}

// NameFor returns the catalogued name for tag, or a formatted hex fallback
// for tags absent from the catalogue.
func NameFor(tag uint32) string {
	if name, ok := names[tag]; ok {
		return name
	}
	return fmt.Sprintf("%#08x", tag)
}
