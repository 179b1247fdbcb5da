// Package verification will hold the multi-layer compute verification
// strategy for TxComputeTask results: redundant execution across multiple
// validators, TEE attestation, zero-knowledge proofs, and optimistic fraud
// proofs with a challenge period.
//
// Not implemented here.
package verification
