package trie

import (
	"bytes"
	"testing"

	"github.com/solelabs/mbongo/pkg/types"
)

func mustGet(t *testing.T, tr *Trie, key string) []byte {
	t.Helper()
	v, ok, err := tr.Get([]byte(key))
	if err != nil {
		t.Fatalf("Get(%q): %v", key, err)
	}
	if !ok {
		t.Fatalf("Get(%q): key not found", key)
	}
	return v
}

func mustAbsent(t *testing.T, tr *Trie, key []byte) {
	t.Helper()
	_, ok, err := tr.Get(key)
	if err != nil {
		t.Fatalf("Get(%v): %v", key, err)
	}
	if ok {
		t.Fatalf("Get(%v): expected absent, found a value", key)
	}
}

// Scenario 1: classic dog/do/doge overlapping-prefix insert.
func TestInsertOverlappingPrefixes(t *testing.T) {
	tr := NewInMemory()
	for _, kv := range [][2]string{{"dog", "puppy"}, {"do", "verb"}, {"doge", "coin"}} {
		if err := tr.Insert([]byte(kv[0]), []byte(kv[1])); err != nil {
			t.Fatalf("Insert(%q): %v", kv[0], err)
		}
	}

	if got := mustGet(t, tr, "dog"); string(got) != "puppy" {
		t.Fatalf("dog = %q, want puppy", got)
	}
	if got := mustGet(t, tr, "do"); string(got) != "verb" {
		t.Fatalf("do = %q, want verb", got)
	}
	if got := mustGet(t, tr, "doge"); string(got) != "coin" {
		t.Fatalf("doge = %q, want coin", got)
	}
	mustAbsent(t, tr, []byte("cat"))

	if tr.Root().IsZero() {
		t.Fatalf("non-empty trie reported zero root")
	}
}

// Scenario 2: overwrite then delete returns to the empty root.
func TestOverwriteThenDelete(t *testing.T) {
	tr := NewInMemory()
	if err := tr.Insert([]byte("dog"), []byte("puppy")); err != nil {
		t.Fatal(err)
	}
	if err := tr.Insert([]byte("dog"), []byte("canine")); err != nil {
		t.Fatal(err)
	}
	if got := mustGet(t, tr, "dog"); string(got) != "canine" {
		t.Fatalf("dog = %q, want canine", got)
	}

	changed, err := tr.Delete([]byte("dog"))
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !changed {
		t.Fatalf("first delete reported no change")
	}
	mustAbsent(t, tr, []byte("dog"))
	if tr.Root() != types.ZeroHash {
		t.Fatalf("root after deleting the only key should be zero, got %v", tr.Root())
	}

	changed, err = tr.Delete([]byte("dog"))
	if err != nil {
		t.Fatalf("Delete (second): %v", err)
	}
	if changed {
		t.Fatalf("deleting an absent key should report no change")
	}
}

// Scenario 3: byte-key prefixes surviving a middle delete.
func TestDeleteMiddleOfChain(t *testing.T) {
	tr := NewInMemory()
	keys := [][]byte{{0, 1}, {0, 1, 2}, {0, 1, 2, 3}}
	for i, k := range keys {
		if err := tr.Insert(k, []byte{byte(i + 1)}); err != nil {
			t.Fatalf("Insert(%v): %v", k, err)
		}
	}

	changed, err := tr.Delete([]byte{0, 1, 2})
	if err != nil || !changed {
		t.Fatalf("Delete([0,1,2]): changed=%v err=%v", changed, err)
	}

	if got := mustGet(t, tr, string([]byte{0, 1})); !bytes.Equal(got, []byte{1}) {
		t.Fatalf("[0,1] = %v, want [1]", got)
	}
	if got := mustGet(t, tr, string([]byte{0, 1, 2, 3})); !bytes.Equal(got, []byte{3}) {
		t.Fatalf("[0,1,2,3] = %v, want [3]", got)
	}
	mustAbsent(t, tr, []byte{0, 1, 2})
}

// Scenario 4: an empty value at a key is distinguishable from absence.
func TestEmptyValueIsRetrievable(t *testing.T) {
	tr := NewInMemory()
	if err := tr.Insert([]byte{0xFF, 0xFF, 0xFF}, []byte{2}); err != nil {
		t.Fatal(err)
	}
	if err := tr.Insert([]byte{0}, []byte{3}); err != nil {
		t.Fatal(err)
	}
	if err := tr.Insert([]byte{0, 1, 2}, []byte{}); err != nil {
		t.Fatal(err)
	}

	v, ok, err := tr.Get([]byte{0, 1, 2})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatalf("empty-value key reported absent")
	}
	if len(v) != 0 {
		t.Fatalf("expected empty value, got %v", v)
	}

	if got := mustGet(t, tr, string([]byte{0xFF, 0xFF, 0xFF})); !bytes.Equal(got, []byte{2}) {
		t.Fatalf("[0xFF,0xFF,0xFF] = %v, want [2]", got)
	}
	if got := mustGet(t, tr, string([]byte{0})); !bytes.Equal(got, []byte{3}) {
		t.Fatalf("[0] = %v, want [3]", got)
	}
}

func TestEmptyTrieRootIsZero(t *testing.T) {
	tr := NewInMemory()
	if tr.Root() != types.ZeroHash {
		t.Fatalf("empty trie root should be zero, got %v", tr.Root())
	}
	_, ok, err := tr.Get([]byte("anything"))
	if err != nil || ok {
		t.Fatalf("Get on empty trie: ok=%v err=%v", ok, err)
	}
}

func TestDeterministicRootAcrossFreshTries(t *testing.T) {
	build := func() *Trie {
		tr := NewInMemory()
		tr.Insert([]byte("dog"), []byte("puppy"))
		tr.Insert([]byte("doge"), []byte("coin"))
		tr.Insert([]byte("do"), []byte("verb"))
		return tr
	}
	a := build()
	b := build()
	if a.Root() != b.Root() {
		t.Fatalf("identical insert sequences produced different roots: %v != %v", a.Root(), b.Root())
	}
}

func TestEmptyStateAfterDeletingEverything(t *testing.T) {
	tr := NewInMemory()
	keys := []string{"dog", "doge", "do", "cat"}
	for _, k := range keys {
		if err := tr.Insert([]byte(k), []byte("v")); err != nil {
			t.Fatal(err)
		}
	}
	for _, k := range keys {
		if _, err := tr.Delete([]byte(k)); err != nil {
			t.Fatalf("Delete(%q): %v", k, err)
		}
	}
	if tr.Root() != types.ZeroHash {
		t.Fatalf("root after deleting every key should be zero, got %v", tr.Root())
	}
	for _, k := range keys {
		mustAbsent(t, tr, []byte(k))
	}
}

func TestGetProofSoundness(t *testing.T) {
	tr := NewInMemory()
	if err := tr.Insert([]byte("alice"), []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := tr.Insert([]byte("bob"), []byte("2")); err != nil {
		t.Fatal(err)
	}

	proof, found, err := tr.GetProof([]byte("alice"))
	if err != nil {
		t.Fatalf("GetProof: %v", err)
	}
	if !found {
		t.Fatalf("expected alice to be found")
	}
	if len(proof) == 0 {
		t.Fatalf("expected a non-empty proof")
	}
	if proof[0].Hash != tr.Root() {
		t.Fatalf("first proof entry hash %v != root %v", proof[0].Hash, tr.Root())
	}
	for _, p := range proof {
		if nodeHash(mustDecode(t, p.Encoded)) != p.Hash {
			t.Fatalf("proof entry hash does not match its own encoding")
		}
	}
}

func TestGetProofOnMissingKeyIsNonEmptyAndUnfound(t *testing.T) {
	tr := NewInMemory()
	if err := tr.Insert([]byte("alice"), []byte("1")); err != nil {
		t.Fatal(err)
	}
	proof, found, err := tr.GetProof([]byte("zzz"))
	if err != nil {
		t.Fatalf("GetProof: %v", err)
	}
	if found {
		t.Fatalf("expected zzz to be absent")
	}
	if len(proof) == 0 {
		t.Fatalf("expected a non-empty proof even for a diverging key")
	}
}

func mustDecode(t *testing.T, encoded []byte) node {
	t.Helper()
	n, err := decodeNode(encoded)
	if err != nil {
		t.Fatalf("decodeNode: %v", err)
	}
	return n
}

func TestInsertManyThenDeleteAllInReverseOrder(t *testing.T) {
	tr := NewInMemory()
	keys := [][]byte{
		[]byte("alpha"), []byte("alphabet"), []byte("beta"),
		[]byte{0, 1, 2}, []byte{0, 1, 2, 3}, []byte{0xFF},
	}
	for i, k := range keys {
		if err := tr.Insert(k, []byte{byte(i)}); err != nil {
			t.Fatalf("Insert(%v): %v", k, err)
		}
	}
	for i := len(keys) - 1; i >= 0; i-- {
		changed, err := tr.Delete(keys[i])
		if err != nil || !changed {
			t.Fatalf("Delete(%v): changed=%v err=%v", keys[i], changed, err)
		}
	}
	if tr.Root() != types.ZeroHash {
		t.Fatalf("root should be zero after deleting every inserted key")
	}
}
