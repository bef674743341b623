//go:build !(wasip1 && wasm)

// Package wasmshim's linear-memory exports only build for GOOS=wasip1
// GOARCH=wasm; on every other platform the package is empty.
package wasmshim
