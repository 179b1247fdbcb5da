package trie

import (
	"fmt"

	"github.com/solelabs/mbongo/pkg/codec"
	"github.com/solelabs/mbongo/pkg/mbocrypto"
	"github.com/solelabs/mbongo/pkg/types"
)

type nodeKind byte

const (
	kindBranch nodeKind = iota
	kindExtension
	kindLeaf
)

// node is the internal union of the trie's three node shapes. Concrete
// types implement encode to produce the bytes node identity is derived
// from.
type node interface {
	encode() []byte
}

// branchNode has up to 16 children, one per nibble, plus an optional value
// for a key that terminates exactly at this node.
type branchNode struct {
	children [16]*types.Hash
	value    []byte // nil means absent
}

// extensionNode shares a nibble-key prefix among all keys below child.
type extensionNode struct {
	key   []byte // non-empty nibble path
	child types.Hash
}

// leafNode terminates a path, holding the remaining nibble key and a
// value.
type leafNode struct {
	key   []byte
	value []byte
}

func (n *branchNode) encode() []byte {
	e := codec.NewEncoder()
	e.PutDiscriminant(byte(kindBranch))
	for _, child := range n.children {
		e.PutOption(child != nil, func() {
			e.PutFixed(child[:])
		})
	}
	e.PutOption(n.value != nil, func() {
		e.PutBytes(n.value)
	})
	return e.Bytes()
}

func (n *extensionNode) encode() []byte {
	e := codec.NewEncoder()
	e.PutDiscriminant(byte(kindExtension))
	e.PutBytes(n.key)
	e.PutFixed(n.child[:])
	return e.Bytes()
}

func (n *leafNode) encode() []byte {
	e := codec.NewEncoder()
	e.PutDiscriminant(byte(kindLeaf))
	e.PutBytes(n.key)
	e.PutBytes(n.value)
	return e.Bytes()
}

// nodeHash returns the content address of n: BLAKE3 of its canonical
// encoding.
func nodeHash(n node) types.Hash {
	return types.Hash(mbocrypto.Sum(n.encode()))
}

// decodeNode reverses encode, reconstructing whichever concrete node type
// the leading discriminant byte names.
func decodeNode(data []byte) (node, error) {
	d := codec.NewDecoder(data)
	tag, err := d.ReadDiscriminant()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	switch nodeKind(tag) {
	case kindBranch:
		var n branchNode
		for i := range n.children {
			present, err := d.ReadOption(func() error {
				b, err := d.ReadFixed(32)
				if err != nil {
					return err
				}
				var h types.Hash
				copy(h[:], b)
				n.children[i] = &h
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
			}
			_ = present
		}
		_, err := d.ReadOption(func() error {
			v, err := d.ReadBytes()
			if err != nil {
				return err
			}
			n.value = v
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		if !d.Done() {
			return nil, fmt.Errorf("%w: trailing bytes after branch node", ErrMalformedEncoding)
		}
		return &n, nil
	case kindExtension:
		key, err := d.ReadBytes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		childBytes, err := d.ReadFixed(32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		if !d.Done() {
			return nil, fmt.Errorf("%w: trailing bytes after extension node", ErrMalformedEncoding)
		}
		var child types.Hash
		copy(child[:], childBytes)
		return &extensionNode{key: key, child: child}, nil
	case kindLeaf:
		key, err := d.ReadBytes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		value, err := d.ReadBytes()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
		}
		if !d.Done() {
			return nil, fmt.Errorf("%w: trailing bytes after leaf node", ErrMalformedEncoding)
		}
		return &leafNode{key: key, value: value}, nil
	default:
		return nil, fmt.Errorf("%w: unknown node discriminant %d", ErrMalformedEncoding, tag)
	}
}
