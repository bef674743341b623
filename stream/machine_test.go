package stream

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func symmetricBlob() []byte {
	return buildBlob(blobParams{
		totalSize:       0x40,
		bufSize:         0x00,
		secondKeyOffset: 0x0000,
		primaryAttrs: [][]byte{
			tlvRecord(0x0000, []byte{0x04}),
			tlvRecord(0x0003, []byte{'k', 'e', 'y', '1', 0x00}),
		},
		signature: bytes.Repeat([]byte{0xFF}, 256),
	})
}

func asymmetricBlob() []byte {
	return buildBlob(blobParams{
		totalSize:       0x40,
		bufSize:         0x00,
		secondKeyOffset: 0x0123,
		primaryAttrs: [][]byte{
			tlvRecord(0x0000, []byte{0x02}),
			tlvRecord(0x0003, []byte{'p', 'u', 'b', 0x00}),
		},
		secondaryAttrs: [][]byte{
			tlvRecord(0x0000, []byte{0x03}),
			tlvRecord(0x0003, []byte{'p', 'r', 'v', 0x00}),
		},
		signature: bytes.Repeat([]byte{0xFF}, 256),
	})
}

func TestSymmetricEndToEnd(t *testing.T) {
	m := New(256)
	m.Feed(symmetricBlob())

	if m.Mode() != ModeSymmetric {
		t.Fatalf("Mode() = %v, want %v", m.Mode(), ModeSymmetric)
	}
	sections := m.Sections()
	if len(sections) != 1 {
		t.Fatalf("len(Sections()) = %d, want 1", len(sections))
	}
	if sections[0].Mode.String() != "Primary" {
		t.Fatalf("Sections()[0].Mode = %v, want Primary", sections[0].Mode)
	}
	want := map[string]string{
		"OBJ_ATTR_CLASS": "secret-key (symmetric)",
		"OBJ_ATTR_LABEL": "key1",
	}
	got := map[string]string{}
	for _, pair := range sections[0].Pairs {
		got[pair.Key] = pair.Value
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("pair %q = %q, want %q", k, got[k], v)
		}
	}
	if _, ok := got["SIGNATURE"]; !ok {
		t.Errorf("missing SIGNATURE pair in emitted section")
	}
	if m.AttrsProcessed() != 2 {
		t.Errorf("AttrsProcessed() = %d, want 2", m.AttrsProcessed())
	}
	if m.AttrCount() != m.AttrsProcessed() {
		t.Errorf("AttrCount() = %d, want it to match AttrsProcessed() = %d on a complete blob", m.AttrCount(), m.AttrsProcessed())
	}
	if m.SecondaryAttrCount() != 0 {
		t.Errorf("SecondaryAttrCount() = %d, want 0 in symmetric mode", m.SecondaryAttrCount())
	}
}

func TestAsymmetricEndToEndTwoSections(t *testing.T) {
	m := New(256)
	m.Feed(asymmetricBlob())

	if m.Mode() != ModeAsymmetric {
		t.Fatalf("Mode() = %v, want %v", m.Mode(), ModeAsymmetric)
	}
	sections := m.Sections()
	if len(sections) != 2 {
		t.Fatalf("len(Sections()) = %d, want 2", len(sections))
	}
	if sections[0].Mode.String() != "Primary" || sections[1].Mode.String() != "Secondary" {
		t.Fatalf("section order = %v, %v, want Primary, Secondary", sections[0].Mode, sections[1].Mode)
	}
	if m.AttrsProcessed() != 4 {
		t.Errorf("AttrsProcessed() = %d, want 4", m.AttrsProcessed())
	}
	if m.AttrCount() != m.AttrsProcessed() {
		t.Errorf("AttrCount() = %d, want it to match AttrsProcessed() = %d on a complete blob", m.AttrCount(), m.AttrsProcessed())
	}
	if m.PrimaryAttrCount() != m.PrimaryAttrsProcessed() || m.SecondaryAttrCount() != m.SecondaryAttrsProcessed() {
		t.Errorf("per-list counts mismatch: primary %d/%d, secondary %d/%d",
			m.PrimaryAttrsProcessed(), m.PrimaryAttrCount(), m.SecondaryAttrsProcessed(), m.SecondaryAttrCount())
	}
}

func TestUnknownTagDecodesAsBytes(t *testing.T) {
	m := New(256)
	blob := buildBlob(blobParams{
		totalSize:       0x40,
		bufSize:         0x00,
		secondKeyOffset: 0x0000,
		primaryAttrs: [][]byte{
			tlvRecord(0xDEADBEEF, []byte{0x01, 0x02, 0x03}),
		},
		signature: bytes.Repeat([]byte{0xFF}, 256),
	})
	m.Feed(blob)

	sections := m.Sections()
	if len(sections) != 1 || len(sections[0].Pairs) < 1 {
		t.Fatalf("unexpected sections: %+v", sections)
	}
	first := sections[0].Pairs[0]
	if first.Value != "010203" {
		t.Errorf("unknown tag value = %q, want %q", first.Value, "010203")
	}
}

func TestDecoderFallbackClassKey(t *testing.T) {
	m := New(256)
	blob := buildBlob(blobParams{
		totalSize:       0x40,
		bufSize:         0x00,
		secondKeyOffset: 0x0000,
		primaryAttrs: [][]byte{
			tlvRecord(0x0000, []byte{0x09}),
		},
		signature: bytes.Repeat([]byte{0xFF}, 256),
	})
	m.Feed(blob)

	sections := m.Sections()
	if len(sections) != 1 || len(sections[0].Pairs) < 1 {
		t.Fatalf("unexpected sections: %+v", sections)
	}
	if got := sections[0].Pairs[0].Value; got != "[9]" {
		t.Errorf("decoder fallback value = %q, want %q", got, "[9]")
	}
	if len(m.Diagnostics) == 0 {
		t.Fatal("expected a diagnostic for the ClassKey decode fallback")
	}
	last := m.Diagnostics[len(m.Diagnostics)-1]
	if !strings.Contains(last, "fell back") {
		t.Errorf("Diagnostics = %v, want an entry mentioning the fallback", m.Diagnostics)
	}
}

func TestCursorMonotonicity(t *testing.T) {
	blob := symmetricBlob()
	m := New(256)
	for i, b := range blob {
		m.Feed([]byte{b})
		if m.Cursor() != int64(i+1) {
			t.Fatalf("after feeding %d bytes, Cursor() = %d, want %d", i+1, m.Cursor(), i+1)
		}
	}
}

func TestOffsetEquationWithoutClamping(t *testing.T) {
	m := New(16)
	blob := buildBlob(blobParams{
		totalSize:       64,
		bufSize:         8,
		secondKeyOffset: 0x0000,
		primaryAttrs: [][]byte{
			tlvRecord(0x0000, []byte{0x04}),
		},
		signature: bytes.Repeat([]byte{0xFF}, 16),
	})
	// Consume only up to where attr_offset is resolved.
	m.Feed(blob[:16])
	m.Feed(blob[16:17])
	want := m.totalSize - m.bufSize - uint32(m.signatureLen)
	if m.AttrOffset() != want {
		t.Errorf("AttrOffset() = %d, want %d", m.AttrOffset(), want)
	}
}

func TestChunkingInvariance(t *testing.T) {
	blob := asymmetricBlob()

	whole := New(256)
	whole.Feed(blob)
	wantJSON, err := json.Marshal(&whole.sink)
	if err != nil {
		t.Fatalf("marshal reference output: %v", err)
	}

	for chunkSize := 1; chunkSize <= len(blob); chunkSize++ {
		m := New(256)
		for i := 0; i < len(blob); i += chunkSize {
			end := i + chunkSize
			if end > len(blob) {
				end = len(blob)
			}
			m.Feed(blob[i:end])
		}
		gotJSON, err := json.Marshal(&m.sink)
		if err != nil {
			t.Fatalf("chunk size %d: marshal: %v", chunkSize, err)
		}
		if !bytes.Equal(gotJSON, wantJSON) {
			t.Fatalf("chunk size %d produced different output:\ngot:  %s\nwant: %s", chunkSize, gotJSON, wantJSON)
		}
	}
}

func TestUnderrunLeavesAttrsProcessedBelowCount(t *testing.T) {
	blob := symmetricBlob()
	// Truncate right after the first TLV's type+length words (offset 44),
	// before any of its value bytes arrive.
	truncated := blob[:44]
	m := New(256)
	m.Feed(truncated)
	if m.AttrsProcessed() != 0 {
		t.Errorf("AttrsProcessed() = %d, want 0 on truncated input", m.AttrsProcessed())
	}
	if m.AttrCount() == 0 {
		t.Fatal("AttrCount() = 0, want the declared attr_count to survive truncation")
	}
	if m.AttrsProcessed() >= m.AttrCount() {
		t.Errorf("AttrsProcessed() = %d, AttrCount() = %d, want processed < count to signal a structural mismatch",
			m.AttrsProcessed(), m.AttrCount())
	}
}
