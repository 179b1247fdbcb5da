package trie

import "github.com/solelabs/mbongo/pkg/types"

// ProofNode is one step of a membership/non-membership proof: the content
// hash of a node encountered along a key's path, paired with its encoded
// bytes so a verifier can re-derive the hash and walk the path itself.
type ProofNode struct {
	Hash    types.Hash
	Encoded []byte
}
