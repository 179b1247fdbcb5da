package trie

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/solelabs/mbongo/pkg/store"
	"github.com/solelabs/mbongo/pkg/types"
)

// Trie is a hexary Merkle Patricia Trie over an arbitrary NodeStore. The
// zero value is not usable; construct with NewInMemory or OpenPersistent.
// A Trie assumes a single writer; concurrent reads over a stable root are
// safe, but Insert/Delete must not race with each other or with Get.
type Trie struct {
	root *types.Hash // nil means the empty trie
	s    store.NodeStore
}

// NewInMemory returns an empty trie backed by a MemoryStore.
func NewInMemory() *Trie {
	return &Trie{s: store.NewMemoryStore()}
}

// OpenPersistent opens (creating if necessary) a Badger-backed trie rooted
// at path. The caller is responsible for tracking the root hash across
// process restarts; a freshly opened store starts as an empty trie.
func OpenPersistent(path string) (*Trie, error) {
	s, err := store.OpenBadgerStore(path)
	if err != nil {
		return nil, err
	}
	return &Trie{s: s}, nil
}

// Close releases the underlying store's resources.
func (t *Trie) Close() error {
	return t.s.Close()
}

// Root returns the current root hash, or the zero hash when the trie is
// empty.
func (t *Trie) Root() types.Hash {
	if t.root == nil {
		return types.ZeroHash
	}
	return *t.root
}

// SetRoot points the trie at an existing root hash, for resuming work
// against a previously persisted trie. Passing the zero hash empties the
// trie.
func (t *Trie) SetRoot(h types.Hash) {
	if h.IsZero() {
		t.root = nil
		return
	}
	root := h
	t.root = &root
}

func (t *Trie) getNode(h types.Hash) (node, error) {
	raw, err := t.s.Get(h)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrMissingNode
		}
		return nil, err
	}
	n, err := decodeNode(raw)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (t *Trie) putNode(n node) (types.Hash, error) {
	h := nodeHash(n)
	if err := t.s.Put(h, n.encode()); err != nil {
		return types.Hash{}, err
	}
	return h, nil
}

// Get returns the value stored under key, or (nil, false, nil) if absent.
func (t *Trie) Get(key []byte) ([]byte, bool, error) {
	if t.root == nil {
		return nil, false, nil
	}
	path := bytesToNibbles(key)
	cur := *t.root
	for {
		n, err := t.getNode(cur)
		if err != nil {
			return nil, false, err
		}
		switch nd := n.(type) {
		case *branchNode:
			if len(path) == 0 {
				if nd.value == nil {
					return nil, false, nil
				}
				return nd.value, true, nil
			}
			nib := path[0]
			path = path[1:]
			child := nd.children[nib]
			if child == nil {
				return nil, false, nil
			}
			cur = *child
		case *extensionNode:
			l := commonPrefixLen(nd.key, path)
			if l != len(nd.key) {
				return nil, false, nil
			}
			path = path[l:]
			cur = nd.child
		case *leafNode:
			if bytes.Equal(nd.key, path) {
				return nd.value, true, nil
			}
			return nil, false, nil
		default:
			return nil, false, fmt.Errorf("%w: unknown node type %T", ErrMalformedEncoding, n)
		}
	}
}

// Insert writes value under key, creating or rewriting whatever nodes are
// necessary, and updates the root.
func (t *Trie) Insert(key, value []byte) error {
	path := bytesToNibbles(key)
	var newRoot types.Hash
	var err error
	if t.root == nil {
		newRoot, err = t.putNode(&leafNode{key: path, value: value})
	} else {
		newRoot, err = t.insertAt(*t.root, path, value)
	}
	if err != nil {
		return err
	}
	t.root = &newRoot
	return nil
}

func (t *Trie) insertAt(h types.Hash, path, value []byte) (types.Hash, error) {
	n, err := t.getNode(h)
	if err != nil {
		return types.Hash{}, err
	}
	switch nd := n.(type) {
	case *leafNode:
		return t.insertAtLeaf(nd, path, value)
	case *extensionNode:
		return t.insertAtExtension(nd, path, value)
	case *branchNode:
		return t.insertAtBranch(nd, path, value)
	default:
		return types.Hash{}, fmt.Errorf("%w: unknown node type %T", ErrMalformedEncoding, n)
	}
}

func (t *Trie) insertAtLeaf(nd *leafNode, path, value []byte) (types.Hash, error) {
	l := commonPrefixLen(nd.key, path)

	if l == len(nd.key) && l == len(path) {
		return t.putNode(&leafNode{key: nd.key, value: value})
	}

	branch := &branchNode{}
	switch {
	case l == len(nd.key) && l < len(path):
		// The existing leaf's key is fully consumed: its value becomes the
		// branch's own value, and the new value continues one nibble deeper.
		branch.value = nd.value
		newLeaf := &leafNode{key: path[l+1:], value: value}
		newLeafHash, err := t.putNode(newLeaf)
		if err != nil {
			return types.Hash{}, err
		}
		branch.children[path[l]] = &newLeafHash
	case l < len(nd.key) && l == len(path):
		// Symmetric: the new path is fully consumed, so the new value
		// becomes the branch's value and the old leaf continues deeper.
		branch.value = value
		oldLeaf := &leafNode{key: nd.key[l+1:], value: nd.value}
		oldLeafHash, err := t.putNode(oldLeaf)
		if err != nil {
			return types.Hash{}, err
		}
		branch.children[nd.key[l]] = &oldLeafHash
	default:
		// Both the old key and the new path have remainders: two children,
		// no branch value.
		newLeaf := &leafNode{key: path[l+1:], value: value}
		newLeafHash, err := t.putNode(newLeaf)
		if err != nil {
			return types.Hash{}, err
		}
		oldLeaf := &leafNode{key: nd.key[l+1:], value: nd.value}
		oldLeafHash, err := t.putNode(oldLeaf)
		if err != nil {
			return types.Hash{}, err
		}
		branch.children[path[l]] = &newLeafHash
		branch.children[nd.key[l]] = &oldLeafHash
	}

	branchHash, err := t.putNode(branch)
	if err != nil {
		return types.Hash{}, err
	}
	if l == 0 {
		return branchHash, nil
	}
	return t.putNode(&extensionNode{key: path[:l], child: branchHash})
}

func (t *Trie) insertAtExtension(nd *extensionNode, path, value []byte) (types.Hash, error) {
	l := commonPrefixLen(nd.key, path)

	if l == len(nd.key) {
		newChild, err := t.insertAt(nd.child, path[l:], value)
		if err != nil {
			return types.Hash{}, err
		}
		return t.putNode(&extensionNode{key: nd.key, child: newChild})
	}

	// Split: the shared prefix becomes a wrapping extension (if non-empty)
	// over a fresh branch.
	branch := &branchNode{}

	// The old child's remaining key, after consuming nibble key[l].
	oldNib := nd.key[l]
	oldRemainder := nd.key[l+1:]
	var oldHash types.Hash
	if len(oldRemainder) == 0 {
		// No empty-key extensions are ever persisted: the old child sits
		// directly in the branch slot instead of behind a zero-key wrapper.
		oldHash = nd.child
	} else {
		h, err := t.putNode(&extensionNode{key: oldRemainder, child: nd.child})
		if err != nil {
			return types.Hash{}, err
		}
		oldHash = h
	}
	branch.children[oldNib] = &oldHash

	if l == len(path) {
		branch.value = value
	} else {
		newLeaf := &leafNode{key: path[l+1:], value: value}
		newLeafHash, err := t.putNode(newLeaf)
		if err != nil {
			return types.Hash{}, err
		}
		branch.children[path[l]] = &newLeafHash
	}

	branchHash, err := t.putNode(branch)
	if err != nil {
		return types.Hash{}, err
	}
	if l == 0 {
		return branchHash, nil
	}
	return t.putNode(&extensionNode{key: path[:l], child: branchHash})
}

func (t *Trie) insertAtBranch(nd *branchNode, path, value []byte) (types.Hash, error) {
	branch := &branchNode{children: nd.children, value: nd.value}
	if len(path) == 0 {
		branch.value = value
	} else {
		nib := path[0]
		var childHash types.Hash
		if existing := nd.children[nib]; existing != nil {
			h, err := t.insertAt(*existing, path[1:], value)
			if err != nil {
				return types.Hash{}, err
			}
			childHash = h
		} else {
			h, err := t.putNode(&leafNode{key: path[1:], value: value})
			if err != nil {
				return types.Hash{}, err
			}
			childHash = h
		}
		branch.children[nib] = &childHash
	}
	return t.putNode(branch)
}

// Delete removes key from the trie, reporting whether anything changed.
func (t *Trie) Delete(key []byte) (bool, error) {
	if t.root == nil {
		return false, nil
	}
	path := bytesToNibbles(key)
	changed, newRoot, err := t.deleteAt(*t.root, path)
	if err != nil {
		return false, err
	}
	if changed {
		t.root = newRoot
	}
	return changed, nil
}

func (t *Trie) deleteAt(h types.Hash, path []byte) (bool, *types.Hash, error) {
	n, err := t.getNode(h)
	if err != nil {
		return false, nil, err
	}
	switch nd := n.(type) {
	case *leafNode:
		if bytes.Equal(nd.key, path) {
			return true, nil, nil
		}
		return false, &h, nil
	case *extensionNode:
		return t.deleteAtExtension(h, nd, path)
	case *branchNode:
		return t.deleteAtBranch(h, nd, path)
	default:
		return false, nil, fmt.Errorf("%w: unknown node type %T", ErrMalformedEncoding, n)
	}
}

func (t *Trie) deleteAtExtension(h types.Hash, nd *extensionNode, path []byte) (bool, *types.Hash, error) {
	l := commonPrefixLen(nd.key, path)
	if l != len(nd.key) || len(path) < len(nd.key) {
		return false, &h, nil
	}
	changed, childNew, err := t.deleteAt(nd.child, path[l:])
	if err != nil {
		return false, nil, err
	}
	if !changed {
		return false, &h, nil
	}
	if childNew == nil {
		// The child vanished, so the extension over it vanishes too.
		return true, nil, nil
	}
	// If the child is itself an extension, merge the two keys into one; if
	// it collapsed to a leaf, fold this extension's key into the leaf.
	childNode, err := t.getNode(*childNew)
	if err != nil {
		return false, nil, err
	}
	if childLeaf, ok := childNode.(*leafNode); ok {
		merged := append(append([]byte{}, nd.key...), childLeaf.key...)
		newHash, err := t.putNode(&leafNode{key: merged, value: childLeaf.value})
		if err != nil {
			return false, nil, err
		}
		return true, &newHash, nil
	}
	if childExt, ok := childNode.(*extensionNode); ok {
		merged := append(append([]byte{}, nd.key...), childExt.key...)
		newHash, err := t.putNode(&extensionNode{key: merged, child: childExt.child})
		if err != nil {
			return false, nil, err
		}
		return true, &newHash, nil
	}
	newHash, err := t.putNode(&extensionNode{key: nd.key, child: *childNew})
	if err != nil {
		return false, nil, err
	}
	return true, &newHash, nil
}

func (t *Trie) deleteAtBranch(h types.Hash, nd *branchNode, path []byte) (bool, *types.Hash, error) {
	children := nd.children
	value := nd.value

	if len(path) == 0 {
		if value == nil {
			return false, &h, nil
		}
		value = nil
	} else {
		nib := path[0]
		existing := children[nib]
		if existing == nil {
			return false, &h, nil
		}
		changed, childNew, err := t.deleteAt(*existing, path[1:])
		if err != nil {
			return false, nil, err
		}
		if !changed {
			return false, &h, nil
		}
		children[nib] = childNew
	}

	count := 0
	lastIdx := -1
	if value != nil {
		count++
	}
	for i, c := range children {
		if c != nil {
			count++
			lastIdx = i
		}
	}

	switch {
	case count > 1:
		newHash, err := t.putNode(&branchNode{children: children, value: value})
		if err != nil {
			return false, nil, err
		}
		return true, &newHash, nil
	case count == 1 && value != nil:
		newHash, err := t.putNode(&leafNode{key: nil, value: value})
		if err != nil {
			return false, nil, err
		}
		return true, &newHash, nil
	case count == 1:
		childHash := *children[lastIdx]
		childNode, err := t.getNode(childHash)
		if err != nil {
			return false, nil, err
		}
		var newHash types.Hash
		switch c := childNode.(type) {
		case *leafNode:
			newKey := append([]byte{byte(lastIdx)}, c.key...)
			newHash, err = t.putNode(&leafNode{key: newKey, value: c.value})
		case *extensionNode:
			newKey := append([]byte{byte(lastIdx)}, c.key...)
			newHash, err = t.putNode(&extensionNode{key: newKey, child: c.child})
		case *branchNode:
			newHash, err = t.putNode(&extensionNode{key: []byte{byte(lastIdx)}, child: childHash})
		default:
			return false, nil, fmt.Errorf("%w: unknown node type %T", ErrMalformedEncoding, childNode)
		}
		if err != nil {
			return false, nil, err
		}
		return true, &newHash, nil
	default:
		return true, nil, nil
	}
}

// GetProof walks the path to key, collecting every node encountered (in
// root-to-leaf order) along with its encoding. The last entry is the
// terminal node: a matching or diverging leaf, an absent branch slot, or
// an extension mismatch. The returned bool reports whether key is present.
func (t *Trie) GetProof(key []byte) ([]ProofNode, bool, error) {
	if t.root == nil {
		return nil, false, nil
	}
	var proof []ProofNode
	path := bytesToNibbles(key)
	cur := *t.root
	for {
		raw, err := t.s.Get(cur)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return proof, false, ErrMissingNode
			}
			return proof, false, err
		}
		n, err := decodeNode(raw)
		if err != nil {
			return proof, false, err
		}
		proof = append(proof, ProofNode{Hash: nodeHash(n), Encoded: raw})

		switch nd := n.(type) {
		case *branchNode:
			if len(path) == 0 {
				return proof, nd.value != nil, nil
			}
			nib := path[0]
			path = path[1:]
			child := nd.children[nib]
			if child == nil {
				return proof, false, nil
			}
			cur = *child
		case *extensionNode:
			l := commonPrefixLen(nd.key, path)
			if l != len(nd.key) {
				return proof, false, nil
			}
			path = path[l:]
			cur = nd.child
		case *leafNode:
			return proof, bytes.Equal(nd.key, path), nil
		default:
			return proof, false, fmt.Errorf("%w: unknown node type %T", ErrMalformedEncoding, n)
		}
	}
}
