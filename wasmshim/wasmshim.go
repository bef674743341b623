// Package wasmshim exposes the streaming decoder across the WebAssembly
// linear-memory ABI: alloc/dealloc manage buffers the host writes
// attestation bytes into, parse drives a Machine over such a buffer and
// returns a freshly allocated buffer holding its JSON output, and
// consoleLog lets the module report diagnostics back to the host.
//
// Built only for GOOS=wasip1 GOARCH=wasm; every other platform sees an
// empty package.
//
//go:build wasip1 && wasm

package wasmshim

import (
	"fmt"
	"unsafe"

	"github.com/b4den/hsmattest/stream"
)

//go:wasmimport env consoleLog
func consoleLog(ptr unsafe.Pointer, len uint32)

func logString(s string) {
	b := []byte(s)
	if len(b) == 0 {
		return
	}
	consoleLog(unsafe.Pointer(&b[0]), uint32(len(b)))
}

// Alloc reserves len bytes of linear memory for the host to write into and
// returns a pointer to it. The caller must release it with Dealloc once
// done, matching the ABI's alloc(len) -> ptr.
//
//go:wasmexport alloc
func Alloc(length uint32) unsafe.Pointer {
	buf := make([]byte, length)
	if length == 0 {
		return nil
	}
	return unsafe.Pointer(&buf[0])
}

// Dealloc releases a buffer previously returned by Alloc or Parse. Go's
// garbage collector, not an explicit free, reclaims the backing array;
// Dealloc exists only to keep the ABI's alloc/dealloc pairing symmetric
// for callers migrating from the original allocator-free host contract.
//
//go:wasmexport dealloc
func Dealloc(ptr unsafe.Pointer, length uint32) {
	_ = ptr
	_ = length
}

// Parse drives a Machine over the bufLen bytes at bufPtr and writes its
// JSON output into a newly allocated buffer, returning that buffer's
// pointer and length packed into a single 64-bit value (pointer in the
// high 32 bits, length in the low 32 bits) since wasmexport functions may
// not return multiple values across the host boundary.
//
//go:wasmexport parse
func Parse(bufPtr unsafe.Pointer, bufLen uint32, signatureLen uint32) uint64 {
	input := unsafe.Slice((*byte)(bufPtr), bufLen)

	m := stream.New(int(signatureLen))
	m.Feed(input)

	for _, diag := range m.Diagnostics {
		logString(diag)
	}
	if m.AttrsProcessed() < m.AttrCount() {
		logString(fmt.Sprintf(
			"structural mismatch: %d of %d declared attributes decoded",
			m.AttrsProcessed(), m.AttrCount()))
	}

	out, err := m.Output()
	if err != nil {
		logString("parse: " + err.Error())
		return 0
	}
	if len(out) == 0 {
		return 0
	}
	outPtr := unsafe.Pointer(&out[0])
	return uint64(uintptr(outPtr))<<32 | uint64(len(out))
}

// ArraySum sums the len bytes at ptr. It exists purely to validate the
// allocator and pointer-marshaling convention that Parse depends on,
// mirroring the original module's own self-test export.
//
//go:wasmexport arraySum
func ArraySum(ptr unsafe.Pointer, length uint32) byte {
	data := unsafe.Slice((*byte)(ptr), length)
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}
