package trie

import "errors"

// ErrMissingNode indicates a child hash referenced by a branch or
// extension node could not be found in the store — fatal corruption, never
// treated as an empty subtree.
var ErrMissingNode = errors.New("trie: referenced node missing from store")

// ErrMalformedEncoding indicates a node's stored bytes did not decode as a
// well-formed branch, extension, or leaf.
var ErrMalformedEncoding = errors.New("trie: malformed node encoding")
