// Package compute will hold the GPU compute execution runtime backing
// TxComputeTask: a task execution engine, GPU resource metering,
// container/WASM isolation, job scheduling, and result storage
// integration.
//
// Not implemented here.
package compute
