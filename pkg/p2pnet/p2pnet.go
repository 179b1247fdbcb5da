// Package p2pnet will hold the peer-to-peer networking layer: peer
// discovery and connectivity, block propagation, transaction gossip, and
// validator discovery.
//
// Not implemented here: this package stays out of scope for the
// state-storage core, which only needs the trie, store, and block
// primitives a future networking layer would gossip.
package p2pnet
