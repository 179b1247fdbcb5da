// Package runtime will hold the smart-contract execution environment: a
// WASM VM, native precompiled contracts, gas metering, and contract
// storage backed by pkg/trie.
//
// Not implemented here.
package runtime
